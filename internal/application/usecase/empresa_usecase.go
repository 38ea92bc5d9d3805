package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// EmpresaUseCase aplica regras de negócio para ateliês (tenants).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso com o porto de persistência.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create cadastra um novo ateliê. Gera ID, código de indicação e status inicial.
func (uc *EmpresaUseCase) Create(in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	now := time.Now()
	empresa := &entity.Empresa{
		ID:           uuid.New().String(),
		Name:         in.Name,
		TradeName:    in.TradeName,
		CNPJ:         in.CNPJ,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Status:       "active",
		ReferralCode: newReferralCode(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(empresa, nil), nil
}

// GetByID obtém um ateliê por ID, com os módulos ativos.
func (uc *EmpresaUseCase) GetByID(id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	modules, err := uc.repo.GetActiveModules(id)
	if err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(empresa, modules), nil
}

// List lista ateliês com paginação.
func (uc *EmpresaUseCase) List(limit, offset int) (*dto.EmpresaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmpresaResponse(e, nil))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// HasActiveModule verifica se o módulo está ativo (e não vencido) para a empresa.
func (uc *EmpresaUseCase) HasActiveModule(empresaID, moduleName string) (bool, error) {
	modules, err := uc.repo.GetActiveModules(empresaID)
	if err != nil {
		return false, err
	}
	for _, m := range modules {
		if m == moduleName {
			return true, nil
		}
	}
	return false, nil
}

// SetModule ativa ou desativa um módulo SaaS da empresa.
func (uc *EmpresaUseCase) SetModule(empresaID, moduleName string, active bool) error {
	switch moduleName {
	case entity.ModuleOrders, entity.ModuleInventory, entity.ModuleFinance,
		entity.ModuleFiscal, entity.ModuleBilling, entity.ModuleReferral:
	default:
		return domain.ErrInvalidInput
	}
	empresa, err := uc.repo.GetByID(empresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetModuleActive(empresaID, moduleName, active)
}

// newReferralCode gera um código curto legível (ATL-XXXXXXXX).
func newReferralCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ATL-" + raw[:8]
}

func entityToEmpresaResponse(e *entity.Empresa, modules []string) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:           e.ID,
		Name:         e.Name,
		TradeName:    e.TradeName,
		CNPJ:         e.CNPJ,
		Address:      e.Address,
		Phone:        e.Phone,
		Email:        e.Email,
		Status:       e.Status,
		ReferralCode: e.ReferralCode,
		Modules:      modules,
		CreatedAt:    e.CreatedAt,
	}
}
