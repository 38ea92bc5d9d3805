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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação sobre PostgreSQL (usável com pool ou tx).
// A coluna links é jsonb; registros antigos podem ter o array serializado
// como texto JSON, e o domínio (entity.LinkList) decodifica as duas formas.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, empresa_id, name, description, category, unit_price, materials, links, created_at, updated_at`

// Create persiste um produto do catálogo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.EmpresaID, product.Name, product.Description, product.Category,
		product.UnitPrice, product.Materials, linksParam(product.Links),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	var links []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.Name, &p.Description, &p.Category,
		&p.UnitPrice, &p.Materials, &links, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Links = entity.LinkList(links)
	return &p, nil
}

// ListByEmpresa lista produtos do tenant com paginação.
func (r *ProductRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE empresa_id = $1
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var links []byte
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Name, &p.Description, &p.Category,
			&p.UnitPrice, &p.Materials, &links, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Links = entity.LinkList(links)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um produto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, unit_price = $5, materials = $6, links = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category,
		product.UnitPrice, product.Materials, linksParam(product.Links), product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// linksParam converte LinkList para o parâmetro jsonb (NULL quando vazio).
func linksParam(links entity.LinkList) any {
	if len(links) == 0 {
		return nil
	}
	return []byte(links)
}
