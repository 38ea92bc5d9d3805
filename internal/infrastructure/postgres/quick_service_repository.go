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

var _ repository.QuickServiceRepository = (*QuickServiceRepo)(nil)

// QuickServiceRepo implementação sobre PostgreSQL (usável com pool ou tx).
type QuickServiceRepo struct {
	q Querier
}

// NewQuickServiceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewQuickServiceRepository(q Querier) *QuickServiceRepo {
	return &QuickServiceRepo{q: q}
}

const quickServiceColumns = `id, empresa_id, name, description, category, unit_price, links, created_at, updated_at`

// Create persiste um serviço avulso.
func (r *QuickServiceRepo) Create(service *entity.QuickService) error {
	query := `
		INSERT INTO quick_services (` + quickServiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.EmpresaID, service.Name, service.Description, service.Category,
		service.UnitPrice, linksParam(service.Links), service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quick service: %w", err)
	}
	return nil
}

// GetByID obtém um serviço por ID.
func (r *QuickServiceRepo) GetByID(id string) (*entity.QuickService, error) {
	query := `SELECT ` + quickServiceColumns + ` FROM quick_services WHERE id = $1`
	var s entity.QuickService
	var links []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.EmpresaID, &s.Name, &s.Description, &s.Category,
		&s.UnitPrice, &links, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quick service: %w", err)
	}
	s.Links = entity.LinkList(links)
	return &s, nil
}

// ListByEmpresa lista serviços do tenant com paginação.
func (r *QuickServiceRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.QuickService, error) {
	query := `
		SELECT ` + quickServiceColumns + `
		FROM quick_services WHERE empresa_id = $1
		ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quick services: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuickService
	for rows.Next() {
		var s entity.QuickService
		var links []byte
		if err := rows.Scan(&s.ID, &s.EmpresaID, &s.Name, &s.Description, &s.Category,
			&s.UnitPrice, &links, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quick service: %w", err)
		}
		s.Links = entity.LinkList(links)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update atualiza um serviço.
func (r *QuickServiceRepo) Update(service *entity.QuickService) error {
	query := `
		UPDATE quick_services
		SET name = $2, description = $3, category = $4, unit_price = $5, links = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.Name, service.Description, service.Category,
		service.UnitPrice, linksParam(service.Links), service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quick service: %w", err)
	}
	return nil
}

// Delete remove um serviço por ID.
func (r *QuickServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quick_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quick service: %w", err)
	}
	return nil
}
