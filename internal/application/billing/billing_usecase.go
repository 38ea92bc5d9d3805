// Package billing gerencia assinaturas dos ateliês junto ao provedor de
// cobrança externo. O provedor é consumido como JSON opaco; nenhum formato
// de gateway de pagamento vive aqui.
package billing

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

// ProviderSubscription é a forma opaca devolvida pelo provedor de cobrança.
type ProviderSubscription struct {
	ProviderID  string `json:"id"`
	Status      string `json:"status"`
	PaymentLink string `json:"payment_link"`
}

// ProviderClient é o porto para o provedor externo de cobrança recorrente.
type ProviderClient interface {
	CreateSubscription(ctx context.Context, empresaID, planID string) (*ProviderSubscription, error)
	ChangePlan(ctx context.Context, providerID, planID string) (*ProviderSubscription, error)
	Cancel(ctx context.Context, providerID string) error
	GetSubscription(ctx context.Context, providerID string) (*ProviderSubscription, error)
}

// ReferralConverter marca a indicação do tenant como convertida quando a
// primeira assinatura paga é ativada. Satisfeito pelo caso de uso de indicações.
type ReferralConverter interface {
	Convert(referredEmpresaID string) error
}

// BillingUseCase cobre a tabela de planos e o ciclo de vida da assinatura.
type BillingUseCase struct {
	subRepo     repository.SubscriptionRepository
	provider    ProviderClient
	referral    ReferralConverter
	readTimeout time.Duration
	log         *logger.Logger
}

// NewBillingUseCase constrói o caso de uso. readTimeout limita as consultas
// de status no provedor.
func NewBillingUseCase(
	subRepo repository.SubscriptionRepository,
	provider ProviderClient,
	referral ReferralConverter,
	readTimeout time.Duration,
	log *logger.Logger,
) *BillingUseCase {
	return &BillingUseCase{
		subRepo:     subRepo,
		provider:    provider,
		referral:    referral,
		readTimeout: readTimeout,
		log:         log,
	}
}

// ListPlans devolve a tabela fixa de planos, do mais barato ao mais caro.
func (uc *BillingUseCase) ListPlans() []dto.PlanResponse {
	out := make([]dto.PlanResponse, 0, len(entity.Plans))
	for _, p := range entity.Plans {
		out = append(out, dto.PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice,
			MaxOrders:    p.MaxOrders,
			MaxUsers:     p.MaxUsers,
			FiscalModule: p.FiscalModule,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthlyPrice.LessThan(out[j].MonthlyPrice) })
	return out
}

// Subscribe assina um plano para o tenant. Plano pago passa pelo provedor e
// devolve o link de pagamento; o plano gratuito ativa na hora.
func (uc *BillingUseCase) Subscribe(ctx context.Context, empresaID string, in dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	plan, ok := entity.Plans[in.PlanID]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.subRepo.GetCurrentByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Status != entity.SubStatusCancelada {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	sub := &entity.Subscription{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		PlanID:    plan.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if plan.MonthlyPrice.IsZero() {
		sub.Status = entity.SubStatusAtiva
		sub.StartedAt = &now
	} else {
		provided, err := uc.provider.CreateSubscription(ctx, empresaID, plan.ID)
		if err != nil {
			return nil, err
		}
		sub.Status = entity.SubStatusPendente
		sub.ProviderID = provided.ProviderID
		sub.PaymentLink = provided.PaymentLink
		if mapProviderStatus(provided.Status) == entity.SubStatusAtiva {
			sub.Status = entity.SubStatusAtiva
			sub.StartedAt = &now
		}
	}

	if err := uc.subRepo.Create(sub); err != nil {
		return nil, err
	}
	if sub.Status == entity.SubStatusAtiva && !plan.MonthlyPrice.IsZero() {
		uc.convertReferral(empresaID)
	}
	uc.log.Info().
		Str("empresa_id", empresaID).
		Str("plan", plan.ID).
		Str("status", sub.Status).
		Msg("assinatura criada")
	return entityToSubscriptionResponse(sub), nil
}

// ChangePlan troca o plano da assinatura corrente via provedor.
func (uc *BillingUseCase) ChangePlan(ctx context.Context, empresaID string, in dto.ChangePlanRequest) (*dto.SubscriptionResponse, error) {
	plan, ok := entity.Plans[in.PlanID]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	sub, err := uc.currentSubscription(empresaID)
	if err != nil {
		return nil, err
	}
	if sub.PlanID == plan.ID {
		return nil, domain.ErrConflict
	}

	if sub.ProviderID != "" {
		if _, err := uc.provider.ChangePlan(ctx, sub.ProviderID, plan.ID); err != nil {
			return nil, err
		}
	} else if !plan.MonthlyPrice.IsZero() {
		// upgrade a partir do gratuito cria a assinatura no provedor
		provided, err := uc.provider.CreateSubscription(ctx, empresaID, plan.ID)
		if err != nil {
			return nil, err
		}
		sub.ProviderID = provided.ProviderID
		sub.PaymentLink = provided.PaymentLink
		sub.Status = entity.SubStatusPendente
	}
	sub.PlanID = plan.ID
	sub.UpdatedAt = time.Now()
	if err := uc.subRepo.Update(sub); err != nil {
		return nil, err
	}
	return entityToSubscriptionResponse(sub), nil
}

// Cancel cancela a assinatura corrente.
func (uc *BillingUseCase) Cancel(ctx context.Context, empresaID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.currentSubscription(empresaID)
	if err != nil {
		return nil, err
	}
	if sub.ProviderID != "" {
		if err := uc.provider.Cancel(ctx, sub.ProviderID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	sub.Status = entity.SubStatusCancelada
	sub.CanceledAt = &now
	sub.UpdatedAt = now
	if err := uc.subRepo.Update(sub); err != nil {
		return nil, err
	}
	return entityToSubscriptionResponse(sub), nil
}

// Current devolve a assinatura corrente, sincronizando o status com o
// provedor quando há vínculo. A ativação do pagamento converte a indicação.
func (uc *BillingUseCase) Current(ctx context.Context, empresaID string) (*dto.SubscriptionResponse, error) {
	sub, err := uc.subRepo.GetCurrentByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	if sub.ProviderID != "" && sub.Status == entity.SubStatusPendente {
		ctx, cancel := context.WithTimeout(ctx, uc.readTimeout)
		defer cancel()
		provided, err := uc.provider.GetSubscription(ctx, sub.ProviderID)
		if err != nil {
			// status local continua valendo; sincroniza na próxima consulta
			uc.log.Warn().Err(err).
				Str("empresa_id", empresaID).
				Msg("cobrança: falha ao sincronizar assinatura")
			return entityToSubscriptionResponse(sub), nil
		}
		if status := mapProviderStatus(provided.Status); status != "" && status != sub.Status {
			sub.Status = status
			now := time.Now()
			if status == entity.SubStatusAtiva && sub.StartedAt == nil {
				sub.StartedAt = &now
			}
			sub.UpdatedAt = now
			if err := uc.subRepo.Update(sub); err != nil {
				return nil, err
			}
			if status == entity.SubStatusAtiva {
				uc.convertReferral(empresaID)
			}
		}
	}
	return entityToSubscriptionResponse(sub), nil
}

// convertReferral credita a indicação; falha só vai para o log.
func (uc *BillingUseCase) convertReferral(empresaID string) {
	if uc.referral == nil {
		return
	}
	if err := uc.referral.Convert(empresaID); err != nil {
		uc.log.Warn().Err(err).
			Str("empresa_id", empresaID).
			Msg("cobrança: falha ao converter indicação")
	}
}

func (uc *BillingUseCase) currentSubscription(empresaID string) (*entity.Subscription, error) {
	sub, err := uc.subRepo.GetCurrentByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.Status == entity.SubStatusCancelada {
		return nil, domain.ErrNotFound
	}
	return sub, nil
}

// mapProviderStatus normaliza o status textual do provedor ("" = desconhecido).
func mapProviderStatus(s string) string {
	switch s {
	case "active", "ativa":
		return entity.SubStatusAtiva
	case "pending", "pendente", "awaiting_payment":
		return entity.SubStatusPendente
	case "canceled", "cancelada":
		return entity.SubStatusCancelada
	case "past_due", "inadimplente":
		return entity.SubStatusInadimplente
	default:
		return ""
	}
}

func entityToSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:          s.ID,
		EmpresaID:   s.EmpresaID,
		PlanID:      s.PlanID,
		Status:      s.Status,
		PaymentLink: s.PaymentLink,
		StartedAt:   s.StartedAt,
		CanceledAt:  s.CanceledAt,
		CreatedAt:   s.CreatedAt,
	}
}
