package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

var _ repository.FiscalNoteRepository = (*FiscalNoteRepo)(nil)

// FiscalNoteRepo implementação sobre PostgreSQL.
type FiscalNoteRepo struct {
	q Querier
}

func NewFiscalNoteRepository(q Querier) *FiscalNoteRepo {
	return &FiscalNoteRepo{q: q}
}

const fiscalNoteColumns = `id, empresa_id, order_id, reference, status, number, serie_number, access_key, pdf_url, xml_url, issuer_msg, issued_at, created_at, updated_at`

func (r *FiscalNoteRepo) Create(note *entity.FiscalNote) error {
	query := `
		INSERT INTO fiscal_notes (` + fiscalNoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.EmpresaID, note.OrderID, note.Reference, note.Status,
		note.Number, note.SerieNumber, note.AccessKey, note.PDFURL, note.XMLURL,
		note.IssuerMsg, note.IssuedAt, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fiscal note: %w", err)
	}
	return nil
}

func (r *FiscalNoteRepo) GetByID(id string) (*entity.FiscalNote, error) {
	query := `SELECT ` + fiscalNoteColumns + ` FROM fiscal_notes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByOrder devolve a nota mais recente do pedido (nil se nunca houve emissão).
func (r *FiscalNoteRepo) GetByOrder(orderID string) (*entity.FiscalNote, error) {
	query := `SELECT ` + fiscalNoteColumns + ` FROM fiscal_notes
		WHERE order_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, orderID))
}

func (r *FiscalNoteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.FiscalNote, error) {
	query := `SELECT ` + fiscalNoteColumns + ` FROM fiscal_notes
		WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fiscal notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.FiscalNote
	for rows.Next() {
		note, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, note)
	}
	return list, rows.Err()
}

// Update regrava os campos mutáveis retornados pelo emissor.
func (r *FiscalNoteRepo) Update(note *entity.FiscalNote) error {
	query := `
		UPDATE fiscal_notes SET
			status = $2, number = $3, serie_number = $4, access_key = $5,
			pdf_url = $6, xml_url = $7, issuer_msg = $8, issued_at = $9,
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.Status, note.Number, note.SerieNumber, note.AccessKey,
		note.PDFURL, note.XMLURL, note.IssuerMsg, note.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("update fiscal note: %w", err)
	}
	return nil
}

func (r *FiscalNoteRepo) scanOne(row pgx.Row) (*entity.FiscalNote, error) {
	var n entity.FiscalNote
	err := row.Scan(&n.ID, &n.EmpresaID, &n.OrderID, &n.Reference, &n.Status,
		&n.Number, &n.SerieNumber, &n.AccessKey, &n.PDFURL, &n.XMLURL,
		&n.IssuerMsg, &n.IssuedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fiscal note: %w", err)
	}
	return &n, nil
}
