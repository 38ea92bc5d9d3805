package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação sobre PostgreSQL (usável com pool ou tx).
// O histórico é imutável: só INSERT e SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const stockMovementColumns = `id, empresa_id, item_id, kind, quantity, quantity_before, quantity_after, reason, origin_kind, origin_id, created_at, created_by`

// Create persiste um movimento de estoque.
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if mov.CreatedBy != "" {
		createdBy = &mov.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.EmpresaID, mov.ItemID, mov.Kind,
		mov.Quantity, mov.QuantityBefore, mov.QuantityAfter,
		mov.Reason, mov.OriginKind, mov.OriginID, mov.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByItem lista o histórico de um item, do mais recente ao mais antigo.
func (r *StockMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + stockMovementColumns + `
		FROM stock_movements WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by item: %w", err)
	}
	return r.scanMany(rows)
}

// ListByOrigin lista os movimentos disparados por uma origem (pedido, serviço).
func (r *StockMovementRepo) ListByOrigin(originKind, originID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + stockMovementColumns + `
		FROM stock_movements WHERE origin_kind = $1 AND origin_id = $2
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, originKind, originID)
	if err != nil {
		return nil, fmt.Errorf("list movements by origin: %w", err)
	}
	return r.scanMany(rows)
}

func (r *StockMovementRepo) scanMany(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.ItemID, &m.Kind,
			&m.Quantity, &m.QuantityBefore, &m.QuantityAfter,
			&m.Reason, &m.OriginKind, &m.OriginID, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
