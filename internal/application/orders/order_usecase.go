// Package orders implementa pedidos e orçamentos do ateliê, incluindo o
// disparo da baixa automática de estoque na criação do pedido.
package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

// Deducer resolve e efetiva baixas de estoque para uma venda. Satisfeito
// por inventory.DeductionResolver.
type Deducer interface {
	Deduct(ctx context.Context, input inventory.DeductionInput) inventory.DeductionSummary
}

// OrderUseCase cobre criação, consulta e transição de status de pedidos.
type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	customerRepo   repository.CustomerRepository
	productRepo    repository.ProductRepository
	serviceRepo    repository.QuickServiceRepository
	receivableRepo repository.ReceivableRepository
	subRepo        repository.SubscriptionRepository
	deducer        Deducer
	log            *logger.Logger
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.QuickServiceRepository,
	receivableRepo repository.ReceivableRepository,
	subRepo repository.SubscriptionRepository,
	deducer Deducer,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		serviceRepo:    serviceRepo,
		receivableRepo: receivableRepo,
		subRepo:        subRepo,
		deducer:        deducer,
		log:            log,
	}
}

// Create cria um pedido, gera o código sequencial e dispara a baixa de
// estoque item a item. A baixa é best-effort: o pedido é criado mesmo que
// nenhuma baixa aconteça.
func (uc *OrderUseCase) Create(ctx context.Context, empresaID, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPlanLimit(empresaID); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.EmpresaID != empresaID {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		CustomerID:  in.CustomerID,
		Status:      entity.OrderStatusOrcamento,
		DeliveryDue: in.DeliveryDue,
		Notes:       in.Notes,
		CreatedBy:   userID,
	}

	// Cada linha carrega a origem resolvida para o disparo da dedução.
	type lineSource struct {
		kind      string
		id        string
		name      string
		materials []string
		links     entity.LinkList
	}
	sources := make([]lineSource, 0, len(in.Items))

	total := decimal.Zero
	for _, li := range in.Items {
		if !li.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		item := entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		}
		var src lineSource
		switch {
		case li.ProductID != "" && li.ServiceID != "":
			return nil, domain.ErrInvalidInput
		case li.ProductID != "":
			p, err := uc.productRepo.GetByID(li.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil || p.EmpresaID != empresaID {
				return nil, domain.ErrInvalidInput
			}
			item.ProductID = p.ID
			if item.Description == "" {
				item.Description = p.Name
			}
			if item.UnitPrice.IsZero() {
				item.UnitPrice = p.UnitPrice
			}
			src = lineSource{kind: inventory.SourceProduto, id: p.ID, name: p.Name, materials: p.Materials, links: p.Links}
		case li.ServiceID != "":
			s, err := uc.serviceRepo.GetByID(li.ServiceID)
			if err != nil {
				return nil, err
			}
			if s == nil || s.EmpresaID != empresaID {
				return nil, domain.ErrInvalidInput
			}
			item.ServiceID = s.ID
			if item.Description == "" {
				item.Description = s.Name
			}
			if item.UnitPrice.IsZero() {
				item.UnitPrice = s.UnitPrice
			}
			src = lineSource{kind: inventory.SourceServico, id: s.ID, name: s.Name, links: s.Links}
		default:
			// texto livre: sem catálogo, sem baixa de estoque
			if item.Description == "" {
				return nil, domain.ErrInvalidInput
			}
		}
		item.Subtotal = item.Quantity.Mul(item.UnitPrice)
		total = total.Add(item.Subtotal)
		order.Items = append(order.Items, item)
		sources = append(sources, src)
	}
	order.Total = total

	code, err := uc.orderRepo.NextCode(empresaID)
	if err != nil {
		return nil, err
	}
	order.Code = code
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Baixa automática por linha de catálogo. Falhas ficam no log e no
	// sumário; nunca desfazem o pedido.
	for i, item := range order.Items {
		src := sources[i]
		if src.kind == "" {
			continue
		}
		uc.deducer.Deduct(ctx, inventory.DeductionInput{
			EmpresaID:  empresaID,
			UserID:     userID,
			SourceKind: src.kind,
			SourceID:   order.ID,
			SourceName: src.name,
			Materials:  src.materials,
			Links:      src.links,
			Quantity:   item.Quantity,
		})
	}

	return entityToOrderResponse(order), nil
}

// GetByID obtém um pedido do tenant.
func (uc *OrderUseCase) GetByID(empresaID, id string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(empresaID, id)
	if err != nil || order == nil {
		return nil, err
	}
	return entityToOrderResponse(order), nil
}

// List lista pedidos do tenant, com filtro opcional de status.
func (uc *OrderUseCase) List(empresaID, status string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByEmpresa(empresaID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *entityToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus aplica uma transição de status. Transição inválida devolve
// ErrInvalidTransition. Na entrega, gera a conta a receber do valor total.
func (uc *OrderUseCase) UpdateStatus(empresaID, id, status string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(empresaID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.ValidOrderTransition(order.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	if status == entity.OrderStatusEntregue {
		uc.createDeliveryReceivable(order)
	}
	return entityToOrderResponse(order), nil
}

// createDeliveryReceivable gera a conta a receber da entrega. Best-effort:
// falha vai para o log, a entrega não é desfeita.
func (uc *OrderUseCase) createDeliveryReceivable(order *entity.Order) {
	if !order.Total.IsPositive() {
		return
	}
	now := time.Now()
	r := &entity.Receivable{
		ID:          uuid.New().String(),
		EmpresaID:   order.EmpresaID,
		CustomerID:  order.CustomerID,
		OrderID:     order.ID,
		Description: "Pedido " + order.Code,
		Amount:      order.Total,
		DueDate:     now,
		Status:      entity.FinanceStatusAberto,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.receivableRepo.Create(r); err != nil {
		uc.log.Warn().Err(err).
			Str("order_id", order.ID).
			Str("code", order.Code).
			Msg("entrega: falha ao gerar conta a receber")
	}
}

// checkPlanLimit verifica o teto de pedidos do plano corrente. Sem
// assinatura o tenant é tratado como plano gratuito.
func (uc *OrderUseCase) checkPlanLimit(empresaID string) error {
	planID := entity.PlanGratuito
	sub, err := uc.subRepo.GetCurrentByEmpresa(empresaID)
	if err != nil {
		return err
	}
	if sub != nil && sub.Status == entity.SubStatusAtiva {
		planID = sub.PlanID
	}
	plan, ok := entity.Plans[planID]
	if !ok || plan.MaxOrders == 0 {
		return nil
	}
	count, err := uc.orderRepo.CountByEmpresa(empresaID)
	if err != nil {
		return err
	}
	if count >= plan.MaxOrders {
		return domain.ErrPlanLimit
	}
	return nil
}

func (uc *OrderUseCase) ownedOrder(empresaID, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if order.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func entityToOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
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
	return &dto.OrderResponse{
		ID:          o.ID,
		EmpresaID:   o.EmpresaID,
		CustomerID:  o.CustomerID,
		Code:        o.Code,
		Status:      o.Status,
		Total:       o.Total,
		DeliveryDue: o.DeliveryDue,
		Notes:       o.Notes,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
