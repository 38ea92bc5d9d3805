package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// CustomerRepository define o porto de persistência para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Customer, error)
	// SearchByEmpresa filtra por nome ou telefone (ILIKE).
	SearchByEmpresa(empresaID, term string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
