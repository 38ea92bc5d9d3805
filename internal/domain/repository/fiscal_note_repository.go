package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// FiscalNoteRepository define o porto de persistência para FiscalNote.
type FiscalNoteRepository interface {
	Create(note *entity.FiscalNote) error
	GetByID(id string) (*entity.FiscalNote, error)
	GetByOrder(orderID string) (*entity.FiscalNote, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.FiscalNote, error)
	Update(note *entity.FiscalNote) error
}
