package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/orders"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

// QuickServiceHandler trata as requisições HTTP de serviços rápidos (protegido).
// Além do CRUD, expõe a execução avulsa que dispara a baixa heurística de estoque.
type QuickServiceHandler struct {
	uc     *usecase.QuickServiceUseCase
	execUC *orders.ServiceExecutionUseCase
}

func NewQuickServiceHandler(uc *usecase.QuickServiceUseCase, execUC *orders.ServiceExecutionUseCase) *QuickServiceHandler {
	return &QuickServiceHandler{uc: uc, execUC: execUC}
}

// Create godoc
// @Summary      Cadastrar serviço rápido
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuickServiceRequest  true  "Dados do serviço"
// @Success      201   {object}  dto.QuickServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *QuickServiceHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.CreateQuickServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter serviço rápido por ID
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do serviço"
// @Success      200  {object}  dto.QuickServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [get]
func (h *QuickServiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serviço não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar serviços rápidos
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.QuickServiceListResponse
// @Router       /api/services [get]
func (h *QuickServiceHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetEmpresaID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar serviço rápido
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do serviço"
// @Param        body  body  dto.UpdateQuickServiceRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.QuickServiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/services/{id} [put]
func (h *QuickServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuickServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serviço não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover serviço rápido
// @Tags         services
// @Security     Bearer
// @Param        id  path  string  true  "ID do serviço"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [delete]
func (h *QuickServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// executeServiceRequest corpo da execução avulsa.
type executeServiceRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// Execute godoc
// @Summary      Executar serviço avulso (dispara baixa heurística de estoque)
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do serviço"
// @Param        body  body  executeServiceRequest  true  "Quantidade executada"
// @Success      200   {object}  dto.DeductionSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/services/{id}/execute [post]
func (h *QuickServiceHandler) Execute(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in executeServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.execUC.Execute(c.Context(), empresaID, GetUserID(c), c.Params("id"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
