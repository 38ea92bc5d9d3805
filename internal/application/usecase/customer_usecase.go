package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// CustomerUseCase aplica regras de negócio para clientes do ateliê.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cadastra um cliente no tenant.
func (uc *CustomerUseCase) Create(empresaID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Document:  in.Document,
		Address:   in.Address,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return entityToCustomerResponse(customer), nil
}

// GetByID obtém um cliente, validando o tenant.
func (uc *CustomerUseCase) GetByID(empresaID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if customer.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return entityToCustomerResponse(customer), nil
}

// List lista clientes do tenant; term filtra por nome/telefone quando presente.
func (uc *CustomerUseCase) List(empresaID, term string, limit, offset int) (*dto.CustomerListResponse, error) {
	var (
		list []*entity.Customer
		err  error
	)
	if term != "" {
		list, err = uc.repo.SearchByEmpresa(empresaID, term, limit, offset)
	} else {
		list, err = uc.repo.ListByEmpresa(empresaID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update atualiza campos presentes no request.
func (uc *CustomerUseCase) Update(empresaID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if customer.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Document != nil {
		customer.Document = *in.Document
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return entityToCustomerResponse(customer), nil
}

// Delete remove um cliente do tenant.
func (uc *CustomerUseCase) Delete(empresaID, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func entityToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		EmpresaID: c.EmpresaID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Document:  c.Document,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
