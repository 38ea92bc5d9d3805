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

// ProductUseCase aplica regras de negócio para o catálogo de produtos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cadastra um produto. Vínculos explícitos são gravados como array JSON nativo.
func (uc *ProductUseCase) Create(empresaID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	links, err := linksToRaw(in.Links)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		UnitPrice:   in.UnitPrice,
		Materials:   in.Materials,
		Links:       links,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return entityToProductResponse(product), nil
}

// GetByID obtém um produto, validando o tenant.
func (uc *ProductUseCase) GetByID(empresaID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return entityToProductResponse(product), nil
}

// List lista produtos do tenant com paginação.
func (uc *ProductUseCase) List(empresaID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualiza campos presentes no request. Links nil mantém os atuais;
// lista vazia remove todos.
func (uc *ProductUseCase) Update(empresaID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.Materials != nil {
		product.Materials = in.Materials
	}
	if in.Links != nil {
		links, err := linksToRaw(in.Links)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.Links = links
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return entityToProductResponse(product), nil
}

// Delete remove um produto do tenant.
func (uc *ProductUseCase) Delete(empresaID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// linksToRaw serializa os vínculos do request como array JSON nativo.
func linksToRaw(links []dto.LinkDTO) (entity.LinkList, error) {
	if len(links) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return nil, err
	}
	return entity.LinkList(raw), nil
}

func entityToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		EmpresaID:   p.EmpresaID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		UnitPrice:   p.UnitPrice,
		Materials:   p.Materials,
		Links:       json.RawMessage(p.Links),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
