package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// QuotePDFRenderer gera o documento do orçamento para envio ao cliente.
type QuotePDFRenderer interface {
	RenderQuote(quote *entity.Quote, customerName, empresaName string) ([]byte, error)
}

// QuoteUseCase cobre orçamentos: CRUD, PDF e conversão em pedido.
type QuoteUseCase struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
	empresaRepo  repository.EmpresaRepository
	orderUC      *OrderUseCase
	pdf          QuotePDFRenderer
}

// NewQuoteUseCase constrói o caso de uso.
func NewQuoteUseCase(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	empresaRepo repository.EmpresaRepository,
	orderUC *OrderUseCase,
	pdf QuotePDFRenderer,
) *QuoteUseCase {
	return &QuoteUseCase{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		empresaRepo:  empresaRepo,
		orderUC:      orderUC,
		pdf:          pdf,
	}
}

// Create cria um orçamento com código ORC-NNNNNN sequencial por empresa.
// Nenhuma baixa de estoque acontece aqui; só a conversão cria pedido.
func (uc *QuoteUseCase) Create(empresaID, userID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.EmpresaID != empresaID {
		return nil, domain.ErrInvalidInput
	}

	quote := &entity.Quote{
		ID:         uuid.New().String(),
		EmpresaID:  empresaID,
		CustomerID: in.CustomerID,
		Status:     entity.QuoteStatusAberto,
		ValidUntil: in.ValidUntil,
		Notes:      in.Notes,
		CreatedBy:  userID,
	}
	total := decimal.Zero
	for _, li := range in.Items {
		if !li.Quantity.IsPositive() || li.Description == "" && li.ProductID == "" && li.ServiceID == "" {
			return nil, domain.ErrInvalidInput
		}
		item := entity.QuoteItem{
			ID:          uuid.New().String(),
			QuoteID:     quote.ID,
			ProductID:   li.ProductID,
			ServiceID:   li.ServiceID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Subtotal:    li.Quantity.Mul(li.UnitPrice),
		}
		total = total.Add(item.Subtotal)
		quote.Items = append(quote.Items, item)
	}
	quote.Total = total

	code, err := uc.quoteRepo.NextCode(empresaID)
	if err != nil {
		return nil, err
	}
	quote.Code = code
	now := time.Now()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return entityToQuoteResponse(quote), nil
}

// GetByID obtém um orçamento do tenant.
func (uc *QuoteUseCase) GetByID(empresaID, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.ownedQuote(empresaID, id)
	if err != nil || quote == nil {
		return nil, err
	}
	return entityToQuoteResponse(quote), nil
}

// List lista orçamentos do tenant, com filtro opcional de status.
func (uc *QuoteUseCase) List(empresaID, status string, limit, offset int) (*dto.QuoteListResponse, error) {
	list, err := uc.quoteRepo.ListByEmpresa(empresaID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *entityToQuoteResponse(q))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus muda o status do orçamento (aprovado, recusado, expirado).
// Orçamento convertido é imutável.
func (uc *QuoteUseCase) UpdateStatus(empresaID, id, status string) (*dto.QuoteResponse, error) {
	quote, err := uc.ownedQuote(empresaID, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Status == entity.QuoteStatusConvertido || status == entity.QuoteStatusConvertido {
		return nil, domain.ErrInvalidTransition
	}
	switch status {
	case entity.QuoteStatusAberto, entity.QuoteStatusAprovado, entity.QuoteStatusRecusado, entity.QuoteStatusExpirado:
	default:
		return nil, domain.ErrInvalidInput
	}
	if err := uc.quoteRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	quote.Status = status
	quote.UpdatedAt = time.Now()
	return entityToQuoteResponse(quote), nil
}

// Convert transforma o orçamento em pedido, copiando itens e cliente. A
// dedução de estoque roda na criação do pedido, como em qualquer venda.
func (uc *QuoteUseCase) Convert(ctx context.Context, empresaID, userID, id string) (*dto.OrderResponse, error) {
	quote, err := uc.ownedQuote(empresaID, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Status == entity.QuoteStatusConvertido {
		return nil, domain.ErrConflict
	}

	req := dto.CreateOrderRequest{
		CustomerID: quote.CustomerID,
		Notes:      quote.Notes,
	}
	for _, it := range quote.Items {
		req.Items = append(req.Items, dto.OrderItemInput{
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	order, err := uc.orderUC.Create(ctx, empresaID, userID, req)
	if err != nil {
		return nil, err
	}
	if err := uc.quoteRepo.MarkConverted(id, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

// RenderPDF gera o documento do orçamento.
func (uc *QuoteUseCase) RenderPDF(empresaID, id string) ([]byte, error) {
	quote, err := uc.ownedQuote(empresaID, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	customerName := ""
	if customer, err := uc.customerRepo.GetByID(quote.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	empresaName := ""
	if empresa, err := uc.empresaRepo.GetByID(empresaID); err == nil && empresa != nil {
		empresaName = empresa.Name
	}
	return uc.pdf.RenderQuote(quote, customerName, empresaName)
}

func (uc *QuoteUseCase) ownedQuote(empresaID, id string) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	if quote.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return quote, nil
}

func entityToQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	items := make([]dto.OrderItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &dto.QuoteResponse{
		ID:         q.ID,
		EmpresaID:  q.EmpresaID,
		CustomerID: q.CustomerID,
		Code:       q.Code,
		Status:     q.Status,
		Total:      q.Total,
		ValidUntil: q.ValidUntil,
		Notes:      q.Notes,
		OrderID:    q.OrderID,
		Items:      items,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
