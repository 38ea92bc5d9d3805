package entity

import "time"

// Status de nota fiscal junto ao emissor externo.
const (
	NFStatusPendente    = "pendente"
	NFStatusProcessando = "processando"
	NFStatusAutorizada  = "autorizada"
	NFStatusRejeitada   = "rejeitada"
	NFStatusCancelada   = "cancelada"
)

// FiscalNote representa uma NFe emitida para um pedido via emissor externo.
// Reference é a chave opaca enviada ao emissor: NFE-{orderCode}-{10 últimos
// dígitos do timestamp}, sempre com no máximo 44 caracteres.
type FiscalNote struct {
	ID          string
	EmpresaID   string
	OrderID     string
	Reference   string
	Status      string
	Number      string // número do documento retornado pelo emissor
	SerieNumber string
	AccessKey   string // chave de acesso da NFe
	PDFURL      string
	XMLURL      string
	IssuerMsg   string // última mensagem de status/erro do emissor
	IssuedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
