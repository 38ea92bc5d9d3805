package fiscal_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/fiscal"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

const testEmpresa = "emp-1"

// ─────────────────────────────── fakes ───────────────────────────────

type fakeNoteRepo struct {
	notes map[string]*entity.FiscalNote
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*entity.FiscalNote)}
}

func (f *fakeNoteRepo) Create(n *entity.FiscalNote) error {
	cp := *n
	f.notes[n.ID] = &cp
	return nil
}

func (f *fakeNoteRepo) GetByID(id string) (*entity.FiscalNote, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNoteRepo) GetByOrder(orderID string) (*entity.FiscalNote, error) {
	for _, n := range f.notes {
		if n.OrderID == orderID {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNoteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.FiscalNote, error) {
	var out []*entity.FiscalNote
	for _, n := range f.notes {
		if n.EmpresaID == empresaID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Update(n *entity.FiscalNote) error {
	cp := *n
	f.notes[n.ID] = &cp
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) ListByEmpresa(string, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(string, string) error {
	return nil
}

func (f *fakeOrderRepo) NextCode(string) (string, error) {
	return "", nil
}

func (f *fakeOrderRepo) CountByEmpresa(string) (int, error) {
	return 0, nil
}

type fakeCustomerRepo struct{}

func (f *fakeCustomerRepo) Create(*entity.Customer) error {
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return &entity.Customer{ID: id, EmpresaID: testEmpresa, Name: "Maria"}, nil
}

func (f *fakeCustomerRepo) ListByEmpresa(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) SearchByEmpresa(string, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(*entity.Customer) error {
	return nil
}

func (f *fakeCustomerRepo) Delete(string) error {
	return nil
}

type fakeEmpresaRepo struct{}

func (f *fakeEmpresaRepo) Create(*entity.Empresa) error {
	return nil
}

func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	return &entity.Empresa{ID: id, Name: "Ateliê Teste", CNPJ: "12345678000199"}, nil
}

func (f *fakeEmpresaRepo) GetByReferralCode(string) (*entity.Empresa, error) {
	return nil, nil
}

func (f *fakeEmpresaRepo) List(int, int) ([]*entity.Empresa, error) {
	return nil, nil
}

func (f *fakeEmpresaRepo) Update(*entity.Empresa) error {
	return nil
}

func (f *fakeEmpresaRepo) GetActiveModules(string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmpresaRepo) SetModuleActive(string, string, bool) error {
	return nil
}

type fakeIssuer struct {
	emitted  []fiscal.IssuerEmission
	emitResp *fiscal.IssuerNote
	getResp  *fiscal.IssuerNote
}

func (f *fakeIssuer) Emit(_ context.Context, req fiscal.IssuerEmission) (*fiscal.IssuerNote, error) {
	f.emitted = append(f.emitted, req)
	return f.emitResp, nil
}

func (f *fakeIssuer) GetNote(context.Context, string) (*fiscal.IssuerNote, error) {
	return f.getResp, nil
}

// ─────────────────────────────── testes ───────────────────────────────

func newFixture(issuer *fakeIssuer) (*fiscal.FiscalUseCase, *fakeNoteRepo) {
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{
		"ord-1": {
			ID:         "ord-1",
			EmpresaID:  testEmpresa,
			CustomerID: "cli-1",
			Code:       "PED-000042",
			Status:     entity.OrderStatusEntregue,
			Total:      decimal.NewFromInt(150),
			Items: []entity.OrderItem{
				{Description: "Camiseta Bordada", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
			},
		},
		"ord-cancelado": {
			ID:        "ord-cancelado",
			EmpresaID: testEmpresa,
			Code:      "PED-000043",
			Status:    entity.OrderStatusCancelado,
		},
	}}
	noteRepo := newFakeNoteRepo()
	uc := fiscal.NewFiscalUseCase(noteRepo, orderRepo, &fakeCustomerRepo{}, &fakeEmpresaRepo{}, issuer, 5*time.Second, logger.Nop())
	return uc, noteRepo
}

func TestBuildReference(t *testing.T) {
	now := time.UnixMilli(1756722000123)

	ref := fiscal.BuildReference("PED-000042", now)

	assert.True(t, strings.HasPrefix(ref, "NFE-PED-000042-"), ref)
	assert.LessOrEqual(t, len(ref), 44)
	// sufixo são os 10 últimos dígitos do timestamp em ms
	ms := "1756722000123"
	assert.True(t, strings.HasSuffix(ref, ms[len(ms)-10:]), ref)
}

func TestEmit_CriaNotaComReferencia(t *testing.T) {
	issuer := &fakeIssuer{emitResp: &fiscal.IssuerNote{Status: "processando"}}
	uc, _ := newFixture(issuer)

	resp, err := uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	assert.Equal(t, entity.NFStatusProcessando, resp.Status)
	assert.Contains(t, resp.Reference, "PED-000042")
	require.Len(t, issuer.emitted, 1)
	sent := issuer.emitted[0]
	assert.Equal(t, "12345678000199", sent.IssuerCNPJ)
	assert.Equal(t, "Maria", sent.CustomerName)
	assert.Equal(t, "150.00", sent.Total)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "50.00", sent.Items[0].UnitPrice)
}

func TestEmit_PedidoCancelado(t *testing.T) {
	uc, _ := newFixture(&fakeIssuer{emitResp: &fiscal.IssuerNote{}})

	_, err := uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-cancelado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Nota viva bloqueia reemissão; nota rejeitada libera.
func TestEmit_Reemissao(t *testing.T) {
	issuer := &fakeIssuer{emitResp: &fiscal.IssuerNote{Status: "processando"}}
	uc, noteRepo := newFixture(issuer)

	first, err := uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	_, err = uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	stored := noteRepo.notes[first.ID]
	stored.Status = entity.NFStatusRejeitada

	_, err = uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-1"})
	assert.NoError(t, err)
}

func TestRefreshStatus_Autorizada(t *testing.T) {
	issuer := &fakeIssuer{
		emitResp: &fiscal.IssuerNote{Status: "processando"},
		getResp: &fiscal.IssuerNote{
			Status:      "autorizado",
			Number:      "123",
			SerieNumber: "1",
			AccessKey:   "35200114200166000187550010000000015123456789",
			PDFURL:      "https://emissor/nota.pdf",
			XMLURL:      "https://emissor/nota.xml",
		},
	}
	uc, _ := newFixture(issuer)

	created, err := uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	refreshed, err := uc.RefreshStatus(context.Background(), testEmpresa, created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.NFStatusAutorizada, refreshed.Status)
	assert.Equal(t, "123", refreshed.Number)
	assert.NotEmpty(t, refreshed.AccessKey)
	assert.NotNil(t, refreshed.IssuedAt)
}

func TestRefreshStatus_OutroTenant(t *testing.T) {
	issuer := &fakeIssuer{emitResp: &fiscal.IssuerNote{Status: "processando"}}
	uc, _ := newFixture(issuer)

	created, err := uc.Emit(context.Background(), testEmpresa, dto.EmitFiscalNoteRequest{OrderID: "ord-1"})
	require.NoError(t, err)

	_, err = uc.RefreshStatus(context.Background(), "emp-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
