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

var _ repository.ReferralRepository = (*ReferralRepo)(nil)

// ReferralRepo implementação do programa de indicações sobre PostgreSQL.
// Cobre as três tabelas: referrals, referral_accounts e referral_rewards.
type ReferralRepo struct {
	q Querier
}

func NewReferralRepository(q Querier) *ReferralRepo {
	return &ReferralRepo{q: q}
}

const referralColumns = `id, empresa_id, referred_empresa_id, status, points, created_at, converted_at`

func (r *ReferralRepo) CreateReferral(ref *entity.Referral) error {
	query := `
		INSERT INTO referrals (` + referralColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ref.ID, ref.EmpresaID, ref.ReferredEmpresaID, ref.Status,
		ref.Points, ref.CreatedAt, ref.ConvertedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert referral: %w", err)
	}
	return nil
}

func (r *ReferralRepo) GetReferral(id string) (*entity.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE id = $1`
	return r.scanReferral(r.q.QueryRow(context.Background(), query, id))
}

// GetByReferred localiza a indicação pelo tenant indicado.
func (r *ReferralRepo) GetByReferred(referredEmpresaID string) (*entity.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE referred_empresa_id = $1`
	return r.scanReferral(r.q.QueryRow(context.Background(), query, referredEmpresaID))
}

func (r *ReferralRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals
		WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Referral
	for rows.Next() {
		ref, err := r.scanReferral(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ref)
	}
	return list, rows.Err()
}

func (r *ReferralRepo) MarkConverted(ref *entity.Referral) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE referrals SET status = $2, points = $3, converted_at = $4 WHERE id = $1`,
		ref.ID, ref.Status, ref.Points, ref.ConvertedAt)
	if err != nil {
		return fmt.Errorf("mark referral converted: %w", err)
	}
	return nil
}

func (r *ReferralRepo) GetAccount(empresaID string) (*entity.ReferralAccount, error) {
	query := `SELECT empresa_id, total_points, level, updated_at
		FROM referral_accounts WHERE empresa_id = $1`
	var acc entity.ReferralAccount
	err := r.q.QueryRow(context.Background(), query, empresaID).Scan(
		&acc.EmpresaID, &acc.TotalPoints, &acc.Level, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get referral account: %w", err)
	}
	return &acc, nil
}

// UpsertAccount grava (ou atualiza) o saldo de pontos e o nível do tenant.
func (r *ReferralRepo) UpsertAccount(acc *entity.ReferralAccount) error {
	query := `
		INSERT INTO referral_accounts (empresa_id, total_points, level, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (empresa_id) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			level        = EXCLUDED.level,
			updated_at   = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		acc.EmpresaID, acc.TotalPoints, acc.Level, acc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert referral account: %w", err)
	}
	return nil
}

func (r *ReferralRepo) CreateReward(rw *entity.Reward) error {
	query := `
		INSERT INTO referral_rewards (id, empresa_id, description, points_cost, redeemed_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		rw.ID, rw.EmpresaID, rw.Description, rw.PointsCost, rw.RedeemedAt)
	if err != nil {
		return fmt.Errorf("insert reward: %w", err)
	}
	return nil
}

func (r *ReferralRepo) ListRewards(empresaID string, limit, offset int) ([]*entity.Reward, error) {
	query := `SELECT id, empresa_id, description, points_cost, redeemed_at
		FROM referral_rewards WHERE empresa_id = $1
		ORDER BY redeemed_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reward
	for rows.Next() {
		var rw entity.Reward
		if err := rows.Scan(&rw.ID, &rw.EmpresaID, &rw.Description, &rw.PointsCost, &rw.RedeemedAt); err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		list = append(list, &rw)
	}
	return list, rows.Err()
}

func (r *ReferralRepo) scanReferral(row pgx.Row) (*entity.Referral, error) {
	var ref entity.Referral
	err := row.Scan(&ref.ID, &ref.EmpresaID, &ref.ReferredEmpresaID, &ref.Status,
		&ref.Points, &ref.CreatedAt, &ref.ConvertedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get referral: %w", err)
	}
	return &ref, nil
}
