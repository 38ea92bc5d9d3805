package dto

import "time"

// CreateEmpresaRequest entrada para cadastrar um ateliê.
type CreateEmpresaRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	TradeName string `json:"trade_name"`
	CNPJ      string `json:"cnpj"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// EmpresaResponse saída de um ateliê.
type EmpresaResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TradeName    string    `json:"trade_name"`
	CNPJ         string    `json:"cnpj"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	ReferralCode string    `json:"referral_code"`
	Modules      []string  `json:"modules,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmpresaListResponse lista paginada de ateliês.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UploadResponse saída de um upload de arquivo.
type UploadResponse struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}
