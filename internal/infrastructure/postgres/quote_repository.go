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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementação sobre PostgreSQL.
type QuoteRepo struct {
	q Querier
}

func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, empresa_id, customer_id, code, status, total, valid_until, notes, order_id, created_at, updated_at, created_by`

// Create persiste o orçamento e as linhas.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.EmpresaID, quote.CustomerID, quote.Code, quote.Status,
		quote.Total, quote.ValidUntil, quote.Notes, nullable(quote.OrderID),
		quote.CreatedAt, quote.UpdatedAt, nullable(quote.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	for _, item := range quote.Items {
		if err := r.createItem(&item); err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteRepo) createItem(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (id, quote_id, product_id, service_id, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, nullable(item.ProductID), nullable(item.ServiceID),
		item.Description, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtém um orçamento com as linhas.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	quote, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || quote == nil {
		return nil, err
	}
	items, err := r.itemsByQuote(quote.ID)
	if err != nil {
		return nil, err
	}
	quote.Items = items
	return quote, nil
}

// ListByEmpresa lista orçamentos do tenant, filtro opcional de status.
func (r *QuoteRepo) ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE empresa_id = $1`
	args := []any{empresaID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		quote, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, quote := range list {
		items, err := r.itemsByQuote(quote.ID)
		if err != nil {
			return nil, err
		}
		quote.Items = items
	}
	return list, nil
}

// UpdateStatus grava o novo status do orçamento.
func (r *QuoteRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}

// MarkConverted grava o status convertido e o pedido gerado.
func (r *QuoteRepo) MarkConverted(id, orderID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2, order_id = $3, updated_at = now() WHERE id = $1`,
		id, entity.QuoteStatusConvertido, orderID)
	if err != nil {
		return fmt.Errorf("mark quote converted: %w", err)
	}
	return nil
}

// NextCode devolve o próximo código ORC-NNNNNN do tenant.
func (r *QuoteRepo) NextCode(empresaID string) (string, error) {
	query := `
		INSERT INTO quote_counters (empresa_id, last_value) VALUES ($1, 1)
		ON CONFLICT (empresa_id) DO UPDATE SET last_value = quote_counters.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, empresaID).Scan(&n); err != nil {
		return "", fmt.Errorf("next quote code: %w", err)
	}
	return fmt.Sprintf("ORC-%06d", n), nil
}

func (r *QuoteRepo) scanOne(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	var orderID, createdBy *string
	err := row.Scan(&q.ID, &q.EmpresaID, &q.CustomerID, &q.Code, &q.Status,
		&q.Total, &q.ValidUntil, &q.Notes, &orderID, &q.CreatedAt, &q.UpdatedAt, &createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if orderID != nil {
		q.OrderID = *orderID
	}
	if createdBy != nil {
		q.CreatedBy = *createdBy
	}
	return &q, nil
}

func (r *QuoteRepo) itemsByQuote(quoteID string) ([]entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, product_id, service_id, description, quantity, unit_price, subtotal
		FROM quote_items WHERE quote_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	var items []entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		var productID, serviceID *string
		if err := rows.Scan(&it.ID, &it.QuoteID, &productID, &serviceID,
			&it.Description, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		if productID != nil {
			it.ProductID = *productID
		}
		if serviceID != nil {
			it.ServiceID = *serviceID
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
