package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

var (
	_ repository.PayableRepository    = (*PayableRepo)(nil)
	_ repository.ReceivableRepository = (*ReceivableRepo)(nil)
)

// PayableRepo implementação de contas a pagar sobre PostgreSQL.
type PayableRepo struct {
	q Querier
}

func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

const payableColumns = `id, empresa_id, description, supplier, amount, due_date, status, paid_at, created_at, updated_at`

func (r *PayableRepo) Create(p *entity.Payable) error {
	query := `
		INSERT INTO payables (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.EmpresaID, p.Description, p.Supplier, p.Amount,
		p.DueDate, p.Status, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payable: %w", err)
	}
	return nil
}

func (r *PayableRepo) GetByID(id string) (*entity.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables WHERE id = $1`
	var p entity.Payable
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.Description, &p.Supplier, &p.Amount,
		&p.DueDate, &p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payable: %w", err)
	}
	return &p, nil
}

func (r *PayableRepo) ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables WHERE empresa_id = $1`
	args := []any{empresaID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY due_date ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payable
	for rows.Next() {
		var p entity.Payable
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Description, &p.Supplier, &p.Amount,
			&p.DueDate, &p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PayableRepo) MarkPaid(id string, paidAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE payables SET status = $2, paid_at = $3, updated_at = now() WHERE id = $1`,
		id, entity.FinanceStatusPago, paidAt)
	if err != nil {
		return fmt.Errorf("mark payable paid: %w", err)
	}
	return nil
}

// OpenTotal soma os títulos em aberto da empresa.
func (r *PayableRepo) OpenTotal(empresaID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM payables WHERE empresa_id = $1 AND status = $2`,
		empresaID, entity.FinanceStatusAberto).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payables: %w", err)
	}
	return total, nil
}

// ReceivableRepo implementação de contas a receber sobre PostgreSQL.
type ReceivableRepo struct {
	q Querier
}

func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

const receivableColumns = `id, empresa_id, customer_id, order_id, description, amount, due_date, status, paid_at, created_at, updated_at`

func (r *ReceivableRepo) Create(rec *entity.Receivable) error {
	query := `
		INSERT INTO receivables (` + receivableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.EmpresaID, nullable(rec.CustomerID), nullable(rec.OrderID),
		rec.Description, rec.Amount, rec.DueDate, rec.Status, rec.PaidAt,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

func (r *ReceivableRepo) GetByID(id string) (*entity.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables WHERE id = $1`
	rec, err := r.scanReceivable(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *ReceivableRepo) ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Receivable, error) {
	query := `SELECT ` + receivableColumns + ` FROM receivables WHERE empresa_id = $1`
	args := []any{empresaID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY due_date ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receivable
	for rows.Next() {
		rec, err := r.scanReceivable(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *ReceivableRepo) MarkPaid(id string, paidAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE receivables SET status = $2, paid_at = $3, updated_at = now() WHERE id = $1`,
		id, entity.FinanceStatusPago, paidAt)
	if err != nil {
		return fmt.Errorf("mark receivable paid: %w", err)
	}
	return nil
}

func (r *ReceivableRepo) OpenTotal(empresaID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM receivables WHERE empresa_id = $1 AND status = $2`,
		empresaID, entity.FinanceStatusAberto).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum receivables: %w", err)
	}
	return total, nil
}

func (r *ReceivableRepo) scanReceivable(row pgx.Row) (*entity.Receivable, error) {
	var rec entity.Receivable
	var customerID, orderID *string
	err := row.Scan(&rec.ID, &rec.EmpresaID, &customerID, &orderID, &rec.Description,
		&rec.Amount, &rec.DueDate, &rec.Status, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	if customerID != nil {
		rec.CustomerID = *customerID
	}
	if orderID != nil {
		rec.OrderID = *orderID
	}
	return &rec, nil
}
