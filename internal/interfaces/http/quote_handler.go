package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/orders"
)

// QuoteHandler trata as requisições HTTP de orçamentos (protegido, módulo orders).
type QuoteHandler struct {
	uc *orders.QuoteUseCase
}

func NewQuoteHandler(uc *orders.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar orçamento (sem baixa de estoque)
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Dados do orçamento"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CustomerID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id e items são obrigatórios"})
	}
	out, err := h.uc.Create(empresaID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter orçamento por ID
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar orçamentos (filtro opcional de status)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetEmpresaID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar o status do orçamento
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do orçamento"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/status [put]
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateStatus(GetEmpresaID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
	}
	return c.JSON(out)
}

// Convert godoc
// @Summary      Converter orçamento em pedido
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      201  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/convert [post]
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	out, err := h.uc.Convert(c.Context(), empresaID, GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RenderPDF godoc
// @Summary      Gerar o PDF do orçamento
// @Tags         quotes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do orçamento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) RenderPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.RenderPDF(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
