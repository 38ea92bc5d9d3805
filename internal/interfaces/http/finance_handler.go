package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

// FinanceHandler trata as requisições HTTP do financeiro (protegido, módulo finance).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreatePayable godoc
// @Summary      Lançar conta a pagar
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePayableRequest  true  "Dados do título"
// @Success      201   {object}  dto.PayableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/payables [post]
func (h *FinanceHandler) CreatePayable(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.CreatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreatePayable(empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateReceivable godoc
// @Summary      Lançar conta a receber
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceivableRequest  true  "Dados do título"
// @Success      201   {object}  dto.ReceivableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/receivables [post]
func (h *FinanceHandler) CreateReceivable(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.CreateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateReceivable(empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayables godoc
// @Summary      Listar contas a pagar (filtro opcional de status)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PayableListResponse
// @Router       /api/finance/payables [get]
func (h *FinanceHandler) ListPayables(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListPayables(GetEmpresaID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListReceivables godoc
// @Summary      Listar contas a receber (filtro opcional de status)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ReceivableListResponse
// @Router       /api/finance/receivables [get]
func (h *FinanceHandler) ListReceivables(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListReceivables(GetEmpresaID(c), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PayPayable godoc
// @Summary      Quitar conta a pagar
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do título"
// @Success      200  {object}  dto.PayableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/payables/{id}/pay [post]
func (h *FinanceHandler) PayPayable(c *fiber.Ctx) error {
	out, err := h.uc.PayPayable(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PayReceivable godoc
// @Summary      Quitar conta a receber
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do título"
// @Success      200  {object}  dto.ReceivableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/receivables/{id}/pay [post]
func (h *FinanceHandler) PayReceivable(c *fiber.Ctx) error {
	out, err := h.uc.PayReceivable(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumo financeiro (abertos a pagar/receber e saldo)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetEmpresaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
