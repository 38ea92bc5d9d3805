package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (catálogo).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}

// QuickServiceRepository define o porto de persistência para QuickService.
type QuickServiceRepository interface {
	Create(service *entity.QuickService) error
	GetByID(id string) (*entity.QuickService, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.QuickService, error)
	Update(service *entity.QuickService) error
	Delete(id string) error
}
