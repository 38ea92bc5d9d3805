package dto

import "time"

// CreateCustomerRequest entrada para criar um cliente.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Document string `json:"document"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

// UpdateCustomerRequest entrada para atualizar um cliente (campos opcionais).
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Document *string `json:"document"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

// CustomerResponse saída de um cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Document  string    `json:"document"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
