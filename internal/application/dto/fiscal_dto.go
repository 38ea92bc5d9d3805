package dto

import "time"

// EmitFiscalNoteRequest entrada para solicitar a emissão de NFe de um pedido.
type EmitFiscalNoteRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// FiscalNoteResponse saída de uma nota fiscal.
type FiscalNoteResponse struct {
	ID          string     `json:"id"`
	EmpresaID   string     `json:"empresa_id"`
	OrderID     string     `json:"order_id"`
	Reference   string     `json:"reference"`
	Status      string     `json:"status"`
	Number      string     `json:"number,omitempty"`
	SerieNumber string     `json:"serie_number,omitempty"`
	AccessKey   string     `json:"access_key,omitempty"`
	PDFURL      string     `json:"pdf_url,omitempty"`
	XMLURL      string     `json:"xml_url,omitempty"`
	IssuerMsg   string     `json:"issuer_msg,omitempty"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FiscalNoteListResponse lista paginada de notas.
type FiscalNoteListResponse struct {
	Items []FiscalNoteResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
