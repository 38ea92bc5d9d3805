package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/referral"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

// ReferralUseCase cobre o programa de indicações: registro da indicação,
// conversão com crédito de pontos e consulta de conta e recompensas.
type ReferralUseCase struct {
	referralRepo repository.ReferralRepository
	empresaRepo  repository.EmpresaRepository
	log          *logger.Logger
}

// NewReferralUseCase constrói o caso de uso.
func NewReferralUseCase(referralRepo repository.ReferralRepository, empresaRepo repository.EmpresaRepository, log *logger.Logger) *ReferralUseCase {
	return &ReferralUseCase{referralRepo: referralRepo, empresaRepo: empresaRepo, log: log}
}

// Register registra que o tenant autenticado foi indicado pelo dono do
// código informado. Cada tenant só pode ser indicado uma vez.
func (uc *ReferralUseCase) Register(referredEmpresaID string, in dto.RegisterReferralRequest) (*dto.ReferralResponse, error) {
	referrer, err := uc.empresaRepo.GetByReferralCode(in.ReferralCode)
	if err != nil {
		return nil, err
	}
	if referrer == nil {
		return nil, domain.ErrNotFound
	}
	if referrer.ID == referredEmpresaID {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.referralRepo.GetByReferred(referredEmpresaID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	ref := &entity.Referral{
		ID:                uuid.New().String(),
		EmpresaID:         referrer.ID,
		ReferredEmpresaID: referredEmpresaID,
		Status:            entity.ReferralStatusPendente,
		CreatedAt:         time.Now(),
	}
	if err := uc.referralRepo.CreateReferral(ref); err != nil {
		return nil, err
	}
	return entityToReferralResponse(ref), nil
}

// Convert marca como convertida a indicação do tenant informado e credita
// os pontos ao indicador. Chamado pela assinatura quando o pagamento do
// primeiro plano pago é confirmado. Sem indicação pendente é um no-op.
func (uc *ReferralUseCase) Convert(referredEmpresaID string) error {
	ref, err := uc.referralRepo.GetByReferred(referredEmpresaID)
	if err != nil {
		return err
	}
	if ref == nil || ref.Status == entity.ReferralStatusConvertida {
		return nil
	}
	now := time.Now()
	ref.Status = entity.ReferralStatusConvertida
	ref.Points = referral.PointsPerConversion
	ref.ConvertedAt = &now
	if err := uc.referralRepo.MarkConverted(ref); err != nil {
		return err
	}
	acc, err := uc.referralRepo.GetAccount(ref.EmpresaID)
	if err != nil {
		return err
	}
	if acc == nil {
		acc = &entity.ReferralAccount{EmpresaID: ref.EmpresaID}
	}
	acc.TotalPoints += referral.PointsPerConversion
	acc.Level = referral.LevelFor(acc.TotalPoints)
	acc.UpdatedAt = now
	if err := uc.referralRepo.UpsertAccount(acc); err != nil {
		return err
	}
	uc.log.Info().
		Str("empresa_id", ref.EmpresaID).
		Str("referred_empresa_id", referredEmpresaID).
		Int("total_points", acc.TotalPoints).
		Str("level", acc.Level).
		Msg("indicação convertida")
	return nil
}

// List lista as indicações feitas pelo tenant.
func (uc *ReferralUseCase) List(empresaID string, limit, offset int) (*dto.ReferralListResponse, error) {
	list, err := uc.referralRepo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferralResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToReferralResponse(r))
	}
	return &dto.ReferralListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Account devolve a pontuação e o nível do tenant no programa. Tenant sem
// conta ainda aparece como bronze com zero pontos.
func (uc *ReferralUseCase) Account(empresaID string) (*dto.ReferralAccountResponse, error) {
	acc, err := uc.referralRepo.GetAccount(empresaID)
	if err != nil {
		return nil, err
	}
	points := 0
	if acc != nil {
		points = acc.TotalPoints
	}
	nextMin, nextLevel := referral.NextThreshold(points)
	resp := &dto.ReferralAccountResponse{
		EmpresaID:   empresaID,
		TotalPoints: points,
		Level:       referral.LevelFor(points),
	}
	if nextLevel != "" {
		resp.NextLevel = nextLevel
		resp.PointsToNext = nextMin - points
	}
	return resp, nil
}

// RedeemReward debita pontos por um benefício. Saldo insuficiente é conflito.
func (uc *ReferralUseCase) RedeemReward(empresaID string, in dto.RedeemRewardRequest) (*dto.RewardResponse, error) {
	if in.PointsCost <= 0 || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	acc, err := uc.referralRepo.GetAccount(empresaID)
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.TotalPoints < in.PointsCost {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	rw := &entity.Reward{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Description: in.Description,
		PointsCost:  in.PointsCost,
		RedeemedAt:  now,
	}
	if err := uc.referralRepo.CreateReward(rw); err != nil {
		return nil, err
	}
	acc.TotalPoints -= in.PointsCost
	acc.Level = referral.LevelFor(acc.TotalPoints)
	acc.UpdatedAt = now
	if err := uc.referralRepo.UpsertAccount(acc); err != nil {
		return nil, err
	}
	return entityToRewardResponse(rw), nil
}

// ListRewards lista os benefícios resgatados pelo tenant.
func (uc *ReferralUseCase) ListRewards(empresaID string, limit, offset int) ([]dto.RewardResponse, error) {
	list, err := uc.referralRepo.ListRewards(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RewardResponse, 0, len(list))
	for _, rw := range list {
		out = append(out, *entityToRewardResponse(rw))
	}
	return out, nil
}

func entityToRewardResponse(rw *entity.Reward) *dto.RewardResponse {
	return &dto.RewardResponse{
		ID:          rw.ID,
		Description: rw.Description,
		PointsCost:  rw.PointsCost,
		RedeemedAt:  rw.RedeemedAt,
	}
}

func entityToReferralResponse(r *entity.Referral) *dto.ReferralResponse {
	return &dto.ReferralResponse{
		ID:                r.ID,
		ReferredEmpresaID: r.ReferredEmpresaID,
		Status:            r.Status,
		Points:            r.Points,
		CreatedAt:         r.CreatedAt,
		ConvertedAt:       r.ConvertedAt,
	}
}
