// Package fiscal orquestra a emissão de NFe de pedidos via emissor externo.
// O emissor é consumido como JSON opaco: nenhuma regra fiscal (XML, assinatura,
// SEFAZ) vive aqui.
package fiscal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

// maxReferenceLen é o limite aceito pelo emissor para a referência.
const maxReferenceLen = 44

// IssuerItem uma linha enviada ao emissor.
type IssuerItem struct {
	Description string `json:"descricao"`
	Quantity    string `json:"quantidade"`
	UnitPrice   string `json:"valor_unitario"`
}

// IssuerEmission payload de emissão enviado ao emissor externo.
type IssuerEmission struct {
	Reference    string       `json:"referencia"`
	IssuerCNPJ   string       `json:"cnpj_emitente"`
	CustomerName string       `json:"nome_destinatario"`
	Total        string       `json:"valor_total"`
	Items        []IssuerItem `json:"itens"`
}

// IssuerNote é a forma opaca que o emissor devolve sobre uma nota.
type IssuerNote struct {
	Status      string `json:"status"`
	Number      string `json:"numero"`
	SerieNumber string `json:"serie"`
	AccessKey   string `json:"chave_acesso"`
	PDFURL      string `json:"url_pdf"`
	XMLURL      string `json:"url_xml"`
	Message     string `json:"mensagem"`
}

// IssuerClient é o porto para o emissor externo de NFe.
type IssuerClient interface {
	Emit(ctx context.Context, req IssuerEmission) (*IssuerNote, error)
	GetNote(ctx context.Context, reference string) (*IssuerNote, error)
}

// FiscalUseCase emite e acompanha notas fiscais de pedidos.
type FiscalUseCase struct {
	noteRepo     repository.FiscalNoteRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	empresaRepo  repository.EmpresaRepository
	issuer       IssuerClient
	readTimeout  time.Duration
	now          func() time.Time
	log          *logger.Logger
}

// NewFiscalUseCase constrói o caso de uso. readTimeout limita as consultas
// de status; a emissão herda o deadline do chamador.
func NewFiscalUseCase(
	noteRepo repository.FiscalNoteRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	empresaRepo repository.EmpresaRepository,
	issuer IssuerClient,
	readTimeout time.Duration,
	log *logger.Logger,
) *FiscalUseCase {
	return &FiscalUseCase{
		noteRepo:     noteRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		empresaRepo:  empresaRepo,
		issuer:       issuer,
		readTimeout:  readTimeout,
		now:          time.Now,
		log:          log,
	}
}

// Emit solicita a emissão da NFe de um pedido. Pedido cancelado não emite;
// pedido com nota viva (não rejeitada) não emite de novo.
func (uc *FiscalUseCase) Emit(ctx context.Context, empresaID string, in dto.EmitFiscalNoteRequest) (*dto.FiscalNoteResponse, error) {
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if order.Status == entity.OrderStatusCancelado {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.noteRepo.GetByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != entity.NFStatusRejeitada && existing.Status != entity.NFStatusCancelada {
		return nil, domain.ErrDuplicate
	}

	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	customerName := ""
	if customer, err := uc.customerRepo.GetByID(order.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}

	reference := BuildReference(order.Code, uc.now())
	req := IssuerEmission{
		Reference:    reference,
		IssuerCNPJ:   empresa.CNPJ,
		CustomerName: customerName,
		Total:        order.Total.StringFixed(2),
	}
	for _, it := range order.Items {
		req.Items = append(req.Items, IssuerItem{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitPrice.StringFixed(2),
		})
	}

	issued, err := uc.issuer.Emit(ctx, req)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	note := &entity.FiscalNote{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		OrderID:   order.ID,
		Reference: reference,
		Status:    entity.NFStatusProcessando,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyIssuerNote(note, issued, now)
	if err := uc.noteRepo.Create(note); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", order.ID).
		Str("reference", reference).
		Str("status", note.Status).
		Msg("emissão de NFe solicitada")
	return entityToFiscalNoteResponse(note), nil
}

// RefreshStatus reconsulta o emissor e atualiza a nota persistida. A
// consulta respeita o timeout de leitura configurado.
func (uc *FiscalUseCase) RefreshStatus(ctx context.Context, empresaID, noteID string) (*dto.FiscalNoteResponse, error) {
	note, err := uc.ownedNote(empresaID, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, uc.readTimeout)
	defer cancel()
	issued, err := uc.issuer.GetNote(ctx, note.Reference)
	if err != nil {
		return nil, err
	}

	applyIssuerNote(note, issued, uc.now())
	if err := uc.noteRepo.Update(note); err != nil {
		return nil, err
	}
	return entityToFiscalNoteResponse(note), nil
}

// GetByID obtém uma nota do tenant.
func (uc *FiscalUseCase) GetByID(empresaID, id string) (*dto.FiscalNoteResponse, error) {
	note, err := uc.ownedNote(empresaID, id)
	if err != nil || note == nil {
		return nil, err
	}
	return entityToFiscalNoteResponse(note), nil
}

// List lista as notas do tenant.
func (uc *FiscalUseCase) List(empresaID string, limit, offset int) (*dto.FiscalNoteListResponse, error) {
	list, err := uc.noteRepo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FiscalNoteResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *entityToFiscalNoteResponse(n))
	}
	return &dto.FiscalNoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// BuildReference monta a referência opaca enviada ao emissor:
// NFE-{código do pedido}-{10 últimos dígitos do timestamp em ms}, truncada
// em 44 caracteres.
func BuildReference(orderCode string, now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 10 {
		ms = ms[len(ms)-10:]
	}
	ref := fmt.Sprintf("NFE-%s-%s", orderCode, ms)
	if len(ref) > maxReferenceLen {
		ref = ref[:maxReferenceLen]
	}
	return ref
}

// applyIssuerNote copia para a nota os campos que o emissor devolveu.
func applyIssuerNote(note *entity.FiscalNote, issued *IssuerNote, now time.Time) {
	if issued == nil {
		return
	}
	status := mapIssuerStatus(issued.Status)
	if status != "" && status != note.Status {
		note.Status = status
		if status == entity.NFStatusAutorizada && note.IssuedAt == nil {
			issuedAt := now
			note.IssuedAt = &issuedAt
		}
	}
	if issued.Number != "" {
		note.Number = issued.Number
	}
	if issued.SerieNumber != "" {
		note.SerieNumber = issued.SerieNumber
	}
	if issued.AccessKey != "" {
		note.AccessKey = issued.AccessKey
	}
	if issued.PDFURL != "" {
		note.PDFURL = issued.PDFURL
	}
	if issued.XMLURL != "" {
		note.XMLURL = issued.XMLURL
	}
	if issued.Message != "" {
		note.IssuerMsg = issued.Message
	}
	note.UpdatedAt = now
}

// mapIssuerStatus normaliza o status textual do emissor para o nosso. Status
// desconhecido fica como está ("" = não mexe).
func mapIssuerStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "autorizado", "autorizada", "aprovado", "concluido":
		return entity.NFStatusAutorizada
	case "processando", "processando_autorizacao", "em_processamento":
		return entity.NFStatusProcessando
	case "rejeitado", "rejeitada", "erro", "erro_autorizacao":
		return entity.NFStatusRejeitada
	case "cancelado", "cancelada":
		return entity.NFStatusCancelada
	case "pendente":
		return entity.NFStatusPendente
	default:
		return ""
	}
}

func (uc *FiscalUseCase) ownedNote(empresaID, id string) (*entity.FiscalNote, error) {
	note, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	if note.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return note, nil
}

func entityToFiscalNoteResponse(n *entity.FiscalNote) *dto.FiscalNoteResponse {
	return &dto.FiscalNoteResponse{
		ID:          n.ID,
		EmpresaID:   n.EmpresaID,
		OrderID:     n.OrderID,
		Reference:   n.Reference,
		Status:      n.Status,
		Number:      n.Number,
		SerieNumber: n.SerieNumber,
		AccessKey:   n.AccessKey,
		PDFURL:      n.PDFURL,
		XMLURL:      n.XMLURL,
		IssuerMsg:   n.IssuerMsg,
		IssuedAt:    n.IssuedAt,
		CreatedAt:   n.CreatedAt,
	}
}
