package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

// EmpresaHandler trata as requisições HTTP de ateliês (tenants).
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar ateliê
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpresaRequest  true  "Dados do ateliê"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Obter o ateliê do token (com módulos ativos)
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/me [get]
func (h *EmpresaHandler) Me(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	out, err := h.uc.GetByID(empresaID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ateliê não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ateliês (backoffice da plataforma)
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.EmpresaListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	if GetRole(c) != "platform" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso restrito à plataforma"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// setModuleRequest corpo para ativar/desativar um módulo SaaS.
type setModuleRequest struct {
	Active bool `json:"active"`
}

// SetModule godoc
// @Summary      Ativar ou desativar um módulo SaaS do ateliê
// @Tags         empresas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nome do módulo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/empresas/me/modules/{name} [put]
func (h *EmpresaHandler) SetModule(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	if GetRole(c) != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "apenas admin altera módulos"})
	}
	name := c.Params("name")
	var in setModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.SetModule(empresaID, name, in.Active); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
