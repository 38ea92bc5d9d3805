package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência para Empresa (tenant).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByReferralCode(code string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
	// GetActiveModules devolve os nomes dos módulos ativos da empresa.
	GetActiveModules(empresaID string) ([]string, error)
	SetModuleActive(empresaID, moduleName string, active bool) error
}
