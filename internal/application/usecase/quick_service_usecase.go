package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// QuickServiceUseCase aplica regras de negócio para serviços avulsos.
type QuickServiceUseCase struct {
	repo repository.QuickServiceRepository
}

// NewQuickServiceUseCase constrói o caso de uso.
func NewQuickServiceUseCase(repo repository.QuickServiceRepository) *QuickServiceUseCase {
	return &QuickServiceUseCase{repo: repo}
}

// Create cadastra um serviço avulso.
func (uc *QuickServiceUseCase) Create(empresaID string, in dto.CreateQuickServiceRequest) (*dto.QuickServiceResponse, error) {
	links, err := linksToRaw(in.Links)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	service := &entity.QuickService{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		UnitPrice:   in.UnitPrice,
		Links:       links,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return entityToQuickServiceResponse(service), nil
}

// GetByID obtém um serviço, validando o tenant.
func (uc *QuickServiceUseCase) GetByID(empresaID, id string) (*dto.QuickServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if service.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return entityToQuickServiceResponse(service), nil
}

// List lista serviços do tenant com paginação.
func (uc *QuickServiceUseCase) List(empresaID string, limit, offset int) (*dto.QuickServiceListResponse, error) {
	list, err := uc.repo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuickServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToQuickServiceResponse(s))
	}
	return &dto.QuickServiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualiza campos presentes no request.
func (uc *QuickServiceUseCase) Update(empresaID, id string, in dto.UpdateQuickServiceRequest) (*dto.QuickServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if service.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.UnitPrice != nil {
		service.UnitPrice = *in.UnitPrice
	}
	if in.Links != nil {
		links, err := linksToRaw(in.Links)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		service.Links = links
	}
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return entityToQuickServiceResponse(service), nil
}

// Delete remove um serviço do tenant.
func (uc *QuickServiceUseCase) Delete(empresaID, id string) error {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if service.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func entityToQuickServiceResponse(s *entity.QuickService) *dto.QuickServiceResponse {
	return &dto.QuickServiceResponse{
		ID:          s.ID,
		EmpresaID:   s.EmpresaID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		UnitPrice:   s.UnitPrice,
		Links:       json.RawMessage(s.Links),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
