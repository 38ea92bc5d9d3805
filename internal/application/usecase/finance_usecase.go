package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// FinanceUseCase cobre contas a pagar, contas a receber e o resumo
// financeiro da empresa.
type FinanceUseCase struct {
	payableRepo    repository.PayableRepository
	receivableRepo repository.ReceivableRepository
}

// NewFinanceUseCase constrói o caso de uso.
func NewFinanceUseCase(payableRepo repository.PayableRepository, receivableRepo repository.ReceivableRepository) *FinanceUseCase {
	return &FinanceUseCase{payableRepo: payableRepo, receivableRepo: receivableRepo}
}

// CreatePayable cadastra uma conta a pagar em aberto.
func (uc *FinanceUseCase) CreatePayable(empresaID string, in dto.CreatePayableRequest) (*dto.PayableResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Payable{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Description: in.Description,
		Supplier:    in.Supplier,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		Status:      entity.FinanceStatusAberto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.payableRepo.Create(p); err != nil {
		return nil, err
	}
	return entityToPayableResponse(p), nil
}

// CreateReceivable cadastra uma conta a receber manual (sem pedido).
func (uc *FinanceUseCase) CreateReceivable(empresaID string, in dto.CreateReceivableRequest) (*dto.ReceivableResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Receivable{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		CustomerID:  in.CustomerID,
		Description: in.Description,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		Status:      entity.FinanceStatusAberto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.receivableRepo.Create(r); err != nil {
		return nil, err
	}
	return entityToReceivableResponse(r), nil
}

// ListPayables lista contas a pagar, com filtro opcional de status.
func (uc *FinanceUseCase) ListPayables(empresaID, status string, limit, offset int) (*dto.PayableListResponse, error) {
	list, err := uc.payableRepo.ListByEmpresa(empresaID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PayableResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToPayableResponse(p))
	}
	return &dto.PayableListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListReceivables lista contas a receber, com filtro opcional de status.
func (uc *FinanceUseCase) ListReceivables(empresaID, status string, limit, offset int) (*dto.ReceivableListResponse, error) {
	list, err := uc.receivableRepo.ListByEmpresa(empresaID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceivableResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToReceivableResponse(r))
	}
	return &dto.ReceivableListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// PayPayable marca uma conta a pagar como paga. Pagar duas vezes é
// rejeitado com ErrConflict.
func (uc *FinanceUseCase) PayPayable(empresaID, id string) (*dto.PayableResponse, error) {
	p, err := uc.payableRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if p.Status == entity.FinanceStatusPago {
		return nil, domain.ErrConflict
	}
	paidAt := time.Now()
	if err := uc.payableRepo.MarkPaid(id, paidAt); err != nil {
		return nil, err
	}
	p.Status = entity.FinanceStatusPago
	p.PaidAt = &paidAt
	return entityToPayableResponse(p), nil
}

// PayReceivable marca uma conta a receber como paga.
func (uc *FinanceUseCase) PayReceivable(empresaID, id string) (*dto.ReceivableResponse, error) {
	r, err := uc.receivableRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if r.Status == entity.FinanceStatusPago {
		return nil, domain.ErrConflict
	}
	paidAt := time.Now()
	if err := uc.receivableRepo.MarkPaid(id, paidAt); err != nil {
		return nil, err
	}
	r.Status = entity.FinanceStatusPago
	r.PaidAt = &paidAt
	return entityToReceivableResponse(r), nil
}

// Summary retorna os totais em aberto e o saldo projetado.
func (uc *FinanceUseCase) Summary(empresaID string) (*dto.FinanceSummaryResponse, error) {
	payables, err := uc.payableRepo.OpenTotal(empresaID)
	if err != nil {
		return nil, err
	}
	receivables, err := uc.receivableRepo.OpenTotal(empresaID)
	if err != nil {
		return nil, err
	}
	return &dto.FinanceSummaryResponse{
		OpenPayables:    payables,
		OpenReceivables: receivables,
		Balance:         receivables.Sub(payables),
	}, nil
}

func entityToPayableResponse(p *entity.Payable) *dto.PayableResponse {
	return &dto.PayableResponse{
		ID:          p.ID,
		EmpresaID:   p.EmpresaID,
		Description: p.Description,
		Supplier:    p.Supplier,
		Amount:      p.Amount,
		DueDate:     p.DueDate,
		Status:      p.Status,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
	}
}

func entityToReceivableResponse(r *entity.Receivable) *dto.ReceivableResponse {
	return &dto.ReceivableResponse{
		ID:          r.ID,
		EmpresaID:   r.EmpresaID,
		CustomerID:  r.CustomerID,
		OrderID:     r.OrderID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     r.DueDate,
		Status:      r.Status,
		PaidAt:      r.PaidAt,
		CreatedAt:   r.CreatedAt,
	}
}
