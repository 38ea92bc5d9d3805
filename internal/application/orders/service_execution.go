package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// ServiceExecutionUseCase registra a execução de um serviço avulso fora de
// pedido (conserto no balcão, ajuste rápido) e dispara a baixa de estoque.
type ServiceExecutionUseCase struct {
	serviceRepo repository.QuickServiceRepository
	deducer     Deducer
}

// NewServiceExecutionUseCase constrói o caso de uso.
func NewServiceExecutionUseCase(serviceRepo repository.QuickServiceRepository, deducer Deducer) *ServiceExecutionUseCase {
	return &ServiceExecutionUseCase{serviceRepo: serviceRepo, deducer: deducer}
}

// Execute dispara a dedução para uma execução avulsa do serviço. O sumário
// devolve o que foi baixado; falha de baixa não é erro da execução.
func (uc *ServiceExecutionUseCase) Execute(ctx context.Context, empresaID, userID, serviceID string, quantity decimal.Decimal) (*dto.DeductionSummaryResponse, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if service.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}

	executionID := uuid.New().String()
	summary := uc.deducer.Deduct(ctx, inventory.DeductionInput{
		EmpresaID:  empresaID,
		UserID:     userID,
		SourceKind: inventory.SourceServico,
		SourceID:   executionID,
		SourceName: service.Name,
		Links:      service.Links,
		Quantity:   quantity,
	})
	return summaryToResponse(summary), nil
}

func summaryToResponse(s inventory.DeductionSummary) *dto.DeductionSummaryResponse {
	out := &dto.DeductionSummaryResponse{
		SourceKind: s.SourceKind,
		SourceName: s.SourceName,
		Strategy:   s.Strategy,
		Succeeded:  s.Succeeded,
		Failed:     s.Failed,
	}
	for _, r := range s.Results {
		out.Results = append(out.Results, dto.DeductionResultResponse{
			ItemID:   r.ItemID,
			ItemName: r.ItemName,
			Strategy: r.Strategy,
			Quantity: r.Quantity,
			Before:   r.Before,
			After:    r.After,
			Error:    r.Err,
		})
	}
	return out
}
