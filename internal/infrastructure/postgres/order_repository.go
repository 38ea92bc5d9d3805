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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação sobre PostgreSQL (usável com pool ou tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, empresa_id, customer_id, code, status, total, delivery_due, notes, created_at, updated_at, created_by`

// Create persiste o pedido e as linhas.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if order.CreatedBy != "" {
		createdBy = &order.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.EmpresaID, order.CustomerID, order.Code, order.Status,
		order.Total, order.DeliveryDue, order.Notes, order.CreatedAt, order.UpdatedAt, createdBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range order.Items {
		if err := r.createItem(&item); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) createItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, service_id, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, nullable(item.ProductID), nullable(item.ServiceID),
		item.Description, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtém um pedido com as linhas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || order == nil {
		return nil, err
	}
	items, err := r.itemsByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// ListByEmpresa lista pedidos do tenant (com linhas), filtro opcional de status.
func (r *OrderRepo) ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE empresa_id = $1`
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
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		items, err := r.itemsByOrder(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return list, nil
}

// UpdateStatus grava o novo status do pedido.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// NextCode devolve o próximo código PED-NNNNNN do tenant. Usa um contador
// por empresa com upsert atômico.
func (r *OrderRepo) NextCode(empresaID string) (string, error) {
	query := `
		INSERT INTO order_counters (empresa_id, last_value) VALUES ($1, 1)
		ON CONFLICT (empresa_id) DO UPDATE SET last_value = order_counters.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, empresaID).Scan(&n); err != nil {
		return "", fmt.Errorf("next order code: %w", err)
	}
	return fmt.Sprintf("PED-%06d", n), nil
}

// CountByEmpresa conta os pedidos do tenant (teto de plano).
func (r *OrderRepo) CountByEmpresa(empresaID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE empresa_id = $1`, empresaID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepo) scanOne(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var createdBy *string
	err := row.Scan(&o.ID, &o.EmpresaID, &o.CustomerID, &o.Code, &o.Status,
		&o.Total, &o.DeliveryDue, &o.Notes, &o.CreatedAt, &o.UpdatedAt, &createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if createdBy != nil {
		o.CreatedBy = *createdBy
	}
	return &o, nil
}

func (r *OrderRepo) itemsByOrder(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, service_id, description, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		var productID, serviceID *string
		if err := rows.Scan(&it.ID, &it.OrderID, &productID, &serviceID,
			&it.Description, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
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

// nullable converte string vazia em NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
