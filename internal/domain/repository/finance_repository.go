package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/domain/entity"
)

// PayableRepository define o porto de persistência para contas a pagar.
type PayableRepository interface {
	Create(p *entity.Payable) error
	GetByID(id string) (*entity.Payable, error)
	ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Payable, error)
	MarkPaid(id string, paidAt time.Time) error
	// OpenTotal soma os títulos em aberto da empresa.
	OpenTotal(empresaID string) (decimal.Decimal, error)
}

// ReceivableRepository define o porto de persistência para contas a receber.
type ReceivableRepository interface {
	Create(r *entity.Receivable) error
	GetByID(id string) (*entity.Receivable, error)
	ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Receivable, error)
	MarkPaid(id string, paidAt time.Time) error
	OpenTotal(empresaID string) (decimal.Decimal, error)
}
