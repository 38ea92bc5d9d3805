package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação sobre PostgreSQL (usável com pool ou tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

const empresaColumns = `id, name, trade_name, cnpj, address, phone, email, status, referral_code, created_at, updated_at`

// Create persiste um ateliê.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (` + empresaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Name, empresa.TradeName, empresa.CNPJ, empresa.Address,
		empresa.Phone, empresa.Email, empresa.Status, empresa.ReferralCode,
		empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém um ateliê por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByReferralCode obtém o ateliê dono do código de indicação.
func (r *EmpresaRepo) GetByReferralCode(code string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE referral_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// List lista ateliês com paginação.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Name, &e.TradeName, &e.CNPJ, &e.Address,
			&e.Phone, &e.Email, &e.Status, &e.ReferralCode, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update atualiza um ateliê.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `
		UPDATE empresas
		SET name = $2, trade_name = $3, cnpj = $4, address = $5, phone = $6, email = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Name, empresa.TradeName, empresa.CNPJ, empresa.Address,
		empresa.Phone, empresa.Email, empresa.Status, empresa.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// GetActiveModules devolve os nomes dos módulos ativos do ateliê.
func (r *EmpresaRepo) GetActiveModules(empresaID string) ([]string, error) {
	query := `
		SELECT module_name FROM empresa_modules
		WHERE empresa_id = $1 AND is_active = true
		  AND (expires_at IS NULL OR expires_at > now())`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("get active modules: %w", err)
	}
	defer rows.Close()
	var modules []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		modules = append(modules, name)
	}
	return modules, rows.Err()
}

// SetModuleActive liga ou desliga um módulo do ateliê (upsert).
func (r *EmpresaRepo) SetModuleActive(empresaID, moduleName string, active bool) error {
	query := `
		INSERT INTO empresa_modules (id, empresa_id, module_name, is_active, activated_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now(), now())
		ON CONFLICT (empresa_id, module_name)
		DO UPDATE SET is_active = $4, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, uuid.New().String(), empresaID, moduleName, active)
	if err != nil {
		return fmt.Errorf("set module active: %w", err)
	}
	return nil
}

func (r *EmpresaRepo) scanOne(row pgx.Row) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(&e.ID, &e.Name, &e.TradeName, &e.CNPJ, &e.Address,
		&e.Phone, &e.Email, &e.Status, &e.ReferralCode, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}
