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

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementação sobre PostgreSQL (usável com pool ou tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryItemColumns = `id, empresa_id, name, unit, category, current_quantity, minimum_quantity, finished_good, created_at, updated_at`

// Create persiste um item de estoque.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + inventoryItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.EmpresaID, item.Name, item.Unit, item.Category,
		item.CurrentQuantity, item.MinimumQuantity, item.FinishedGood,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtém o item bloqueando a linha (SELECT FOR UPDATE). Usar
// dentro de transação.
func (r *InventoryItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryItemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByEmpresa lista itens do tenant com paginação.
func (r *InventoryItemRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items WHERE empresa_id = $1
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	return r.scanMany(rows)
}

// ListBelowMinimum lista itens com quantidade corrente abaixo ou igual ao mínimo.
func (r *InventoryItemRepo) ListBelowMinimum(empresaID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE empresa_id = $1 AND current_quantity <= minimum_quantity
		ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	return r.scanMany(rows)
}

// Update atualiza os campos cadastrais do item (não a quantidade corrente).
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, unit = $3, category = $4, minimum_quantity = $5, finished_good = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.Category,
		item.MinimumQuantity, item.FinishedGood, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// UpdateQuantity grava apenas a quantidade corrente (registrador de movimentos).
func (r *InventoryItemRepo) UpdateQuantity(item *entity.InventoryItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET current_quantity = $2, updated_at = now() WHERE id = $1`,
		item.ID, item.CurrentQuantity,
	)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

// Delete remove um item por ID.
func (r *InventoryItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.EmpresaID, &it.Name, &it.Unit, &it.Category,
		&it.CurrentQuantity, &it.MinimumQuantity, &it.FinishedGood,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

func (r *InventoryItemRepo) scanMany(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.EmpresaID, &it.Name, &it.Unit, &it.Category,
			&it.CurrentQuantity, &it.MinimumQuantity, &it.FinishedGood,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
