package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/orders"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
)

type fakePDFRenderer struct {
	rendered int
}

func (f *fakePDFRenderer) RenderQuote(q *entity.Quote, customerName, empresaName string) ([]byte, error) {
	f.rendered++
	return []byte("%PDF-fake"), nil
}

type fakeEmpresaRepo struct{}

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	return nil
}

func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	return &entity.Empresa{ID: id, Name: "Ateliê Teste"}, nil
}

func (f *fakeEmpresaRepo) GetByReferralCode(string) (*entity.Empresa, error) {
	return nil, nil
}

func (f *fakeEmpresaRepo) List(int, int) ([]*entity.Empresa, error) {
	return nil, nil
}

func (f *fakeEmpresaRepo) Update(e *entity.Empresa) error {
	return nil
}

func (f *fakeEmpresaRepo) GetActiveModules(string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmpresaRepo) SetModuleActive(string, string, bool) error {
	return nil
}

type quoteFixture struct {
	uc      *orders.QuoteUseCase
	quotes  *fakeQuoteRepo
	orderFx *orderFixture
	pdf     *fakePDFRenderer
}

func newQuoteFixture() *quoteFixture {
	orderFx := newOrderFixture()
	f := &quoteFixture{
		quotes:  newFakeQuoteRepo(),
		orderFx: orderFx,
		pdf:     &fakePDFRenderer{},
	}
	customer := &entity.Customer{ID: "cli-1", EmpresaID: testEmpresa, Name: "Maria"}
	f.uc = orders.NewQuoteUseCase(
		f.quotes,
		newFakeCustomerRepo(customer),
		&fakeEmpresaRepo{},
		orderFx.uc,
		f.pdf,
	)
	return f
}

func (f *quoteFixture) createQuote(t *testing.T) *dto.QuoteResponse {
	t.Helper()
	resp, err := f.uc.Create(testEmpresa, testUser, dto.CreateQuoteRequest{
		CustomerID: "cli-1",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	return resp
}

// Orçamento nasce aberto com código ORC e total calculado; nenhuma dedução.
func TestCreateQuote_NaoBaixaEstoque(t *testing.T) {
	f := newQuoteFixture()

	resp := f.createQuote(t)

	assert.Equal(t, "ORC-000001", resp.Code)
	assert.Equal(t, entity.QuoteStatusAberto, resp.Status)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(80)))
	assert.Empty(t, f.orderFx.deducer.inputs, "orçamento não pode deduzir estoque")
}

// Conversão copia itens, cria o pedido (que deduz) e marca o orçamento.
func TestConvertQuote_CriaPedidoEDeduz(t *testing.T) {
	f := newQuoteFixture()
	quote := f.createQuote(t)

	order, err := f.uc.Convert(context.Background(), testEmpresa, testUser, quote.ID)
	require.NoError(t, err)

	assert.Equal(t, "PED-000001", order.Code)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(80)), "preço do orçamento prevalece")
	require.Len(t, f.orderFx.deducer.inputs, 1)

	stored, err := f.quotes.GetByID(quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusConvertido, stored.Status)
	assert.Equal(t, order.ID, stored.OrderID)
}

// Converter duas vezes é conflito.
func TestConvertQuote_Duplicado(t *testing.T) {
	f := newQuoteFixture()
	quote := f.createQuote(t)

	_, err := f.uc.Convert(context.Background(), testEmpresa, testUser, quote.ID)
	require.NoError(t, err)

	_, err = f.uc.Convert(context.Background(), testEmpresa, testUser, quote.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Status convertido não é alcançável pelo endpoint de status.
func TestUpdateQuoteStatus_ConvertidoSomenteViaConvert(t *testing.T) {
	f := newQuoteFixture()
	quote := f.createQuote(t)

	_, err := f.uc.UpdateStatus(testEmpresa, quote.ID, entity.QuoteStatusConvertido)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.UpdateStatus(testEmpresa, quote.ID, entity.QuoteStatusAprovado)
	assert.NoError(t, err)
}

// PDF delega ao renderer com o orçamento do tenant.
func TestRenderQuotePDF(t *testing.T) {
	f := newQuoteFixture()
	quote := f.createQuote(t)

	data, err := f.uc.RenderPDF(testEmpresa, quote.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 1, f.pdf.rendered)

	_, err = f.uc.RenderPDF("emp-2", quote.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Execução avulsa de serviço dispara a dedução e devolve o sumário.
func TestServiceExecution_Deduz(t *testing.T) {
	service := &entity.QuickService{ID: "srv-1", EmpresaID: testEmpresa, Name: "Barra de Calça"}
	deducer := &fakeDeducer{}
	uc := orders.NewServiceExecutionUseCase(newFakeServiceRepo(service), deducer)

	summary, err := uc.Execute(context.Background(), testEmpresa, testUser, "srv-1", decimal.NewFromInt(2))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	require.Len(t, deducer.inputs, 1)
	assert.Equal(t, "Barra de Calça", deducer.inputs[0].SourceName)

	_, err = uc.Execute(context.Background(), testEmpresa, testUser, "srv-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), "emp-2", testUser, "srv-1", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
