package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/billing"
	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

const testEmpresa = "emp-1"

type fakeSubRepo struct {
	subs map[string]*entity.Subscription
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{subs: make(map[string]*entity.Subscription)}
}

func (f *fakeSubRepo) Create(s *entity.Subscription) error {
	cp := *s
	f.subs[s.ID] = &cp
	return nil
}

func (f *fakeSubRepo) GetByID(id string) (*entity.Subscription, error) {
	return f.subs[id], nil
}

func (f *fakeSubRepo) GetCurrentByEmpresa(empresaID string) (*entity.Subscription, error) {
	var latest *entity.Subscription
	for _, s := range f.subs {
		if s.EmpresaID != empresaID || s.Status == entity.SubStatusCancelada {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeSubRepo) Update(s *entity.Subscription) error {
	cp := *s
	f.subs[s.ID] = &cp
	return nil
}

type fakeProvider struct {
	status   string
	canceled []string
	created  int
	changed  int
}

func (f *fakeProvider) CreateSubscription(_ context.Context, empresaID, planID string) (*billing.ProviderSubscription, error) {
	f.created++
	return &billing.ProviderSubscription{
		ProviderID:  "prov-1",
		Status:      "pending",
		PaymentLink: "https://cobranca/pagar/prov-1",
	}, nil
}

func (f *fakeProvider) ChangePlan(_ context.Context, providerID, planID string) (*billing.ProviderSubscription, error) {
	f.changed++
	return &billing.ProviderSubscription{ProviderID: providerID, Status: "active"}, nil
}

func (f *fakeProvider) Cancel(_ context.Context, providerID string) error {
	f.canceled = append(f.canceled, providerID)
	return nil
}

func (f *fakeProvider) GetSubscription(_ context.Context, providerID string) (*billing.ProviderSubscription, error) {
	return &billing.ProviderSubscription{ProviderID: providerID, Status: f.status}, nil
}

type fakeConverter struct {
	converted []string
}

func (f *fakeConverter) Convert(empresaID string) error {
	f.converted = append(f.converted, empresaID)
	return nil
}

func newUC(repo *fakeSubRepo, provider *fakeProvider, conv *fakeConverter) *billing.BillingUseCase {
	return billing.NewBillingUseCase(repo, provider, conv, 5*time.Second, logger.Nop())
}

// Tabela de planos sai ordenada por preço e com os três planos fixos.
func TestListPlans(t *testing.T) {
	uc := newUC(newFakeSubRepo(), &fakeProvider{}, &fakeConverter{})

	plans := uc.ListPlans()

	require.Len(t, plans, 3)
	assert.Equal(t, entity.PlanGratuito, plans[0].ID)
	assert.Equal(t, entity.PlanProfissional, plans[1].ID)
	assert.Equal(t, entity.PlanPremium, plans[2].ID)
	assert.Equal(t, 20, plans[0].MaxOrders)
}

// Plano gratuito ativa sem passar pelo provedor.
func TestSubscribe_GratuitoAtivaDireto(t *testing.T) {
	provider := &fakeProvider{}
	uc := newUC(newFakeSubRepo(), provider, &fakeConverter{})

	resp, err := uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanGratuito})
	require.NoError(t, err)

	assert.Equal(t, entity.SubStatusAtiva, resp.Status)
	assert.Empty(t, resp.PaymentLink)
	assert.Zero(t, provider.created)
}

// Plano pago cria no provedor e devolve o link de pagamento pendente.
func TestSubscribe_PagoDevolveLink(t *testing.T) {
	provider := &fakeProvider{}
	uc := newUC(newFakeSubRepo(), provider, &fakeConverter{})

	resp, err := uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanProfissional})
	require.NoError(t, err)

	assert.Equal(t, entity.SubStatusPendente, resp.Status)
	assert.Equal(t, "https://cobranca/pagar/prov-1", resp.PaymentLink)
	assert.Equal(t, 1, provider.created)
}

// Assinatura viva bloqueia nova assinatura.
func TestSubscribe_Duplicada(t *testing.T) {
	uc := newUC(newFakeSubRepo(), &fakeProvider{}, &fakeConverter{})

	_, err := uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanGratuito})
	require.NoError(t, err)

	_, err = uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanPremium})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Quando o provedor confirma o pagamento, Current ativa a assinatura e
// converte a indicação do tenant.
func TestCurrent_AtivacaoConverteIndicacao(t *testing.T) {
	repo := newFakeSubRepo()
	provider := &fakeProvider{status: "active"}
	conv := &fakeConverter{}
	uc := newUC(repo, provider, conv)

	created, err := uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanProfissional})
	require.NoError(t, err)
	require.Equal(t, entity.SubStatusPendente, created.Status)

	current, err := uc.Current(context.Background(), testEmpresa)
	require.NoError(t, err)

	assert.Equal(t, entity.SubStatusAtiva, current.Status)
	assert.NotNil(t, current.StartedAt)
	assert.Equal(t, []string{testEmpresa}, conv.converted)
}

// Trocar para o mesmo plano é conflito; troca válida atualiza via provedor.
func TestChangePlan(t *testing.T) {
	provider := &fakeProvider{}
	uc := newUC(newFakeSubRepo(), provider, &fakeConverter{})

	_, err := uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanProfissional})
	require.NoError(t, err)

	_, err = uc.ChangePlan(context.Background(), testEmpresa, dto.ChangePlanRequest{PlanID: entity.PlanProfissional})
	assert.ErrorIs(t, err, domain.ErrConflict)

	resp, err := uc.ChangePlan(context.Background(), testEmpresa, dto.ChangePlanRequest{PlanID: entity.PlanPremium})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanPremium, resp.PlanID)
	assert.Equal(t, 1, provider.changed)
}

// Cancelamento propaga ao provedor e marca a assinatura.
func TestCancel(t *testing.T) {
	provider := &fakeProvider{}
	uc := newUC(newFakeSubRepo(), provider, &fakeConverter{})

	_, err := uc.Subscribe(context.Background(), testEmpresa, dto.CreateSubscriptionRequest{PlanID: entity.PlanProfissional})
	require.NoError(t, err)

	resp, err := uc.Cancel(context.Background(), testEmpresa)
	require.NoError(t, err)

	assert.Equal(t, entity.SubStatusCancelada, resp.Status)
	assert.NotNil(t, resp.CanceledAt)
	assert.Equal(t, []string{"prov-1"}, provider.canceled)

	_, err = uc.Cancel(context.Background(), testEmpresa)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
