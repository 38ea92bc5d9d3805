package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/fiscal"
)

// FiscalHandler trata as requisições HTTP de notas fiscais (protegido, módulo fiscal).
type FiscalHandler struct {
	uc *fiscal.FiscalUseCase
}

func NewFiscalHandler(uc *fiscal.FiscalUseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// Emit godoc
// @Summary      Solicitar emissão de NFe para um pedido
// @Tags         fiscal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmitFiscalNoteRequest  true  "Pedido a faturar"
// @Success      201   {object}  dto.FiscalNoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fiscal/notes [post]
func (h *FiscalHandler) Emit(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.EmitFiscalNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id é obrigatório"})
	}
	out, err := h.uc.Emit(c.Context(), empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter nota fiscal por ID
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da nota"
// @Success      200  {object}  dto.FiscalNoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal/notes/{id} [get]
func (h *FiscalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar notas fiscais
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FiscalNoteListResponse
// @Router       /api/fiscal/notes [get]
func (h *FiscalHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetEmpresaID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Reconsultar o status da nota junto ao emissor
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da nota"
// @Success      200  {object}  dto.FiscalNoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal/notes/{id}/refresh [post]
func (h *FiscalHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.RefreshStatus(c.Context(), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
