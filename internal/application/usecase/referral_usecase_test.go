package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/referral"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

type fakeReferralRepo struct {
	referrals map[string]*entity.Referral
	accounts  map[string]*entity.ReferralAccount
	rewards   []*entity.Reward
}

func newFakeReferralRepo() *fakeReferralRepo {
	return &fakeReferralRepo{
		referrals: make(map[string]*entity.Referral),
		accounts:  make(map[string]*entity.ReferralAccount),
	}
}

func (f *fakeReferralRepo) CreateReferral(r *entity.Referral) error {
	cp := *r
	f.referrals[r.ID] = &cp
	return nil
}

func (f *fakeReferralRepo) GetReferral(id string) (*entity.Referral, error) {
	return f.referrals[id], nil
}

func (f *fakeReferralRepo) GetByReferred(referredEmpresaID string) (*entity.Referral, error) {
	for _, r := range f.referrals {
		if r.ReferredEmpresaID == referredEmpresaID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReferralRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Referral, error) {
	var out []*entity.Referral
	for _, r := range f.referrals {
		if r.EmpresaID == empresaID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReferralRepo) MarkConverted(r *entity.Referral) error {
	cp := *r
	f.referrals[r.ID] = &cp
	return nil
}

func (f *fakeReferralRepo) GetAccount(empresaID string) (*entity.ReferralAccount, error) {
	acc, ok := f.accounts[empresaID]
	if !ok {
		return nil, nil
	}
	cp := *acc
	return &cp, nil
}

func (f *fakeReferralRepo) UpsertAccount(acc *entity.ReferralAccount) error {
	cp := *acc
	f.accounts[acc.EmpresaID] = &cp
	return nil
}

func (f *fakeReferralRepo) CreateReward(rw *entity.Reward) error {
	f.rewards = append(f.rewards, rw)
	return nil
}

func (f *fakeReferralRepo) ListRewards(empresaID string, limit, offset int) ([]*entity.Reward, error) {
	var out []*entity.Reward
	for _, rw := range f.rewards {
		if rw.EmpresaID == empresaID {
			out = append(out, rw)
		}
	}
	return out, nil
}

type fakeEmpresaForReferral struct {
	byCode map[string]*entity.Empresa
}

func (f *fakeEmpresaForReferral) Create(*entity.Empresa) error {
	return nil
}

func (f *fakeEmpresaForReferral) GetByID(id string) (*entity.Empresa, error) {
	return nil, nil
}

func (f *fakeEmpresaForReferral) GetByReferralCode(code string) (*entity.Empresa, error) {
	return f.byCode[code], nil
}

func (f *fakeEmpresaForReferral) List(int, int) ([]*entity.Empresa, error) {
	return nil, nil
}

func (f *fakeEmpresaForReferral) Update(*entity.Empresa) error {
	return nil
}

func (f *fakeEmpresaForReferral) GetActiveModules(string) ([]string, error) {
	return nil, nil
}

func (f *fakeEmpresaForReferral) SetModuleActive(string, string, bool) error {
	return nil
}

func newReferralFixture() (*usecase.ReferralUseCase, *fakeReferralRepo) {
	repo := newFakeReferralRepo()
	empresas := &fakeEmpresaForReferral{byCode: map[string]*entity.Empresa{
		"ATL-AB12CD34": {ID: "emp-indicador", ReferralCode: "ATL-AB12CD34"},
	}}
	return usecase.NewReferralUseCase(repo, empresas, logger.Nop()), repo
}

// Registro: código válido cria indicação pendente; autoindicação e código
// desconhecido são rejeitados; segundo registro do mesmo indicado é duplicado.
func TestReferralRegister(t *testing.T) {
	uc, _ := newReferralFixture()

	resp, err := uc.Register("emp-indicado", dto.RegisterReferralRequest{ReferralCode: "ATL-AB12CD34"})
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralStatusPendente, resp.Status)
	assert.Zero(t, resp.Points)

	_, err = uc.Register("emp-indicado", dto.RegisterReferralRequest{ReferralCode: "ATL-AB12CD34"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Register("emp-indicador", dto.RegisterReferralRequest{ReferralCode: "ATL-AB12CD34"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register("emp-x", dto.RegisterReferralRequest{ReferralCode: "ATL-NAOEXISTE"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Conversão credita os pontos ao indicador e é idempotente.
func TestReferralConvert(t *testing.T) {
	uc, repo := newReferralFixture()

	_, err := uc.Register("emp-indicado", dto.RegisterReferralRequest{ReferralCode: "ATL-AB12CD34"})
	require.NoError(t, err)

	require.NoError(t, uc.Convert("emp-indicado"))
	require.NoError(t, uc.Convert("emp-indicado")) // segunda vez não recredita

	acc := repo.accounts["emp-indicador"]
	require.NotNil(t, acc)
	assert.Equal(t, referral.PointsPerConversion, acc.TotalPoints)
	assert.Equal(t, referral.LevelBronze, acc.Level)

	// sem indicação pendente é no-op
	assert.NoError(t, uc.Convert("emp-sem-indicacao"))
}

// Conta sem histórico aparece como bronze com o próximo nível calculado.
func TestReferralAccount(t *testing.T) {
	uc, repo := newReferralFixture()

	resp, err := uc.Account("emp-novo")
	require.NoError(t, err)
	assert.Equal(t, referral.LevelBronze, resp.Level)
	assert.Zero(t, resp.TotalPoints)
	assert.Equal(t, referral.LevelPrata, resp.NextLevel)
	assert.Equal(t, 200, resp.PointsToNext)

	repo.accounts["emp-top"] = &entity.ReferralAccount{EmpresaID: "emp-top", TotalPoints: 1200}
	resp, err = uc.Account("emp-top")
	require.NoError(t, err)
	assert.Equal(t, referral.LevelDiamante, resp.Level)
	assert.Empty(t, resp.NextLevel)
}

// Resgate debita pontos e pode rebaixar o nível; saldo insuficiente trava.
func TestReferralRedeemReward(t *testing.T) {
	uc, repo := newReferralFixture()
	repo.accounts["emp-1"] = &entity.ReferralAccount{
		EmpresaID:   "emp-1",
		TotalPoints: 250,
		Level:       referral.LevelPrata,
	}

	rw, err := uc.RedeemReward("emp-1", dto.RedeemRewardRequest{Description: "Mês grátis", PointsCost: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, rw.PointsCost)

	acc := repo.accounts["emp-1"]
	assert.Equal(t, 150, acc.TotalPoints)
	assert.Equal(t, referral.LevelBronze, acc.Level)

	_, err = uc.RedeemReward("emp-1", dto.RedeemRewardRequest{Description: "Outro", PointsCost: 500})
	assert.ErrorIs(t, err, domain.ErrConflict)

	rewards, err := uc.ListRewards("emp-1", 50, 0)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, "Mês grátis", rewards[0].Description)
}
