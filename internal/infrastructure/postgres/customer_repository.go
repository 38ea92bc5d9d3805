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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação sobre PostgreSQL (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, empresa_id, name, phone, email, document, address, notes, created_at, updated_at`

// Create persiste um cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.EmpresaID, customer.Name, customer.Phone, customer.Email,
		customer.Document, customer.Address, customer.Notes, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.Name, &c.Phone, &c.Email,
		&c.Document, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByEmpresa lista clientes do tenant com paginação.
func (r *CustomerRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE empresa_id = $1
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return r.scanMany(rows)
}

// SearchByEmpresa filtra clientes por nome ou telefone (ILIKE).
func (r *CustomerRepo) SearchByEmpresa(empresaID, term string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE empresa_id = $1 AND (name ILIKE $2 OR phone ILIKE $2)
		ORDER BY name ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, empresaID, "%"+term+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return r.scanMany(rows)
}

// Update atualiza um cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, document = $5, address = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Email,
		customer.Document, customer.Address, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scanMany(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.Name, &c.Phone, &c.Email,
			&c.Document, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
