package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/application/orders"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

const (
	testEmpresa = "emp-1"
	testUser    = "user-1"
)

type orderFixture struct {
	uc         *orders.OrderUseCase
	orderRepo  *fakeOrderRepo
	receivable *fakeReceivableRepo
	subRepo    *fakeSubRepo
	deducer    *fakeDeducer
}

func newOrderFixture() *orderFixture {
	customer := &entity.Customer{ID: "cli-1", EmpresaID: testEmpresa, Name: "Maria"}
	product := &entity.Product{
		ID:        "prod-1",
		EmpresaID: testEmpresa,
		Name:      "Camiseta Bordada",
		UnitPrice: decimal.NewFromInt(50),
		Materials: []string{"tecido", "linha"},
	}
	service := &entity.QuickService{
		ID:        "srv-1",
		EmpresaID: testEmpresa,
		Name:      "Barra de Calça",
		UnitPrice: decimal.NewFromInt(25),
	}

	f := &orderFixture{
		orderRepo:  newFakeOrderRepo(),
		receivable: &fakeReceivableRepo{},
		subRepo:    &fakeSubRepo{},
		deducer:    &fakeDeducer{},
	}
	f.uc = orders.NewOrderUseCase(
		f.orderRepo,
		newFakeCustomerRepo(customer),
		newFakeProductRepo(product),
		newFakeServiceRepo(service),
		f.receivable,
		f.subRepo,
		f.deducer,
		logger.Nop(),
	)
	return f
}

// Pedido com linha de catálogo e linha de texto livre: código sequencial,
// total correto e exatamente uma dedução (texto livre não baixa estoque).
func TestCreateOrder_DeduzSomenteLinhasDeCatalogo(t *testing.T) {
	f := newOrderFixture()

	resp, err := f.uc.Create(context.Background(), testEmpresa, testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(2)},
			{Description: "Aviamentos diversos", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PED-000001", resp.Code)
	assert.Equal(t, entity.OrderStatusOrcamento, resp.Status)
	// 2×50 (preço de catálogo) + 1×10
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(110)), "total %s", resp.Total)
	assert.Equal(t, "Camiseta Bordada", resp.Items[0].Description)

	require.Len(t, f.deducer.inputs, 1)
	in := f.deducer.inputs[0]
	assert.Equal(t, inventory.SourceProduto, in.SourceKind)
	assert.Equal(t, resp.ID, in.SourceID)
	assert.Equal(t, "Camiseta Bordada", in.SourceName)
	assert.Equal(t, []string{"tecido", "linha"}, in.Materials)
	assert.True(t, in.Quantity.Equal(decimal.NewFromInt(2)))
}

// Linha de serviço dispara dedução com origem de serviço.
func TestCreateOrder_LinhaDeServico(t *testing.T) {
	f := newOrderFixture()

	resp, err := f.uc.Create(context.Background(), testEmpresa, testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items: []dto.OrderItemInput{
			{ServiceID: "srv-1", Quantity: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(75)))
	require.Len(t, f.deducer.inputs, 1)
	assert.Equal(t, inventory.SourceServico, f.deducer.inputs[0].SourceKind)
	assert.Equal(t, "Barra de Calça", f.deducer.inputs[0].SourceName)
}

// Cliente de outro tenant é rejeitado.
func TestCreateOrder_ClienteDeOutroTenant(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.Create(context.Background(), "emp-2", testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items:      []dto.OrderItemInput{{Description: "x", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Plano gratuito trava no teto de pedidos.
func TestCreateOrder_LimiteDoPlanoGratuito(t *testing.T) {
	f := newOrderFixture()
	f.orderRepo.count = entity.Plans[entity.PlanGratuito].MaxOrders

	_, err := f.uc.Create(context.Background(), testEmpresa, testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items:      []dto.OrderItemInput{{Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)}},
	})
	assert.ErrorIs(t, err, domain.ErrPlanLimit)
}

// Assinatura ativa de plano pago não tem teto.
func TestCreateOrder_PlanoPagoSemTeto(t *testing.T) {
	f := newOrderFixture()
	f.orderRepo.count = 500
	f.subRepo.current = &entity.Subscription{
		EmpresaID: testEmpresa,
		PlanID:    entity.PlanProfissional,
		Status:    entity.SubStatusAtiva,
	}

	_, err := f.uc.Create(context.Background(), testEmpresa, testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items:      []dto.OrderItemInput{{Description: "x", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)}},
	})
	assert.NoError(t, err)
}

// Transições: pular etapa é rejeitado; a cadeia completa termina em entregue
// e gera a conta a receber do valor total.
func TestUpdateStatus_CadeiaAteEntrega(t *testing.T) {
	f := newOrderFixture()

	resp, err := f.uc.Create(context.Background(), testEmpresa, testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(testEmpresa, resp.ID, entity.OrderStatusPronto)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	for _, status := range []string{
		entity.OrderStatusAprovado,
		entity.OrderStatusProducao,
		entity.OrderStatusPronto,
		entity.OrderStatusEntregue,
	} {
		_, err = f.uc.UpdateStatus(testEmpresa, resp.ID, status)
		require.NoError(t, err, "transição para %s", status)
	}

	require.Len(t, f.receivable.created, 1)
	r := f.receivable.created[0]
	assert.Equal(t, resp.ID, r.OrderID)
	assert.True(t, r.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, entity.FinanceStatusAberto, r.Status)

	// pedido entregue é terminal
	_, err = f.uc.UpdateStatus(testEmpresa, resp.ID, entity.OrderStatusCancelado)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Cancelamento vale de qualquer status não terminal e não gera título.
func TestUpdateStatus_CancelamentoNaoGeraTitulo(t *testing.T) {
	f := newOrderFixture()

	resp, err := f.uc.Create(context.Background(), testEmpresa, testUser, dto.CreateOrderRequest{
		CustomerID: "cli-1",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(testEmpresa, resp.ID, entity.OrderStatusCancelado)
	require.NoError(t, err)
	assert.Empty(t, f.receivable.created)
}
