package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/billing"
	"github.com/atelieplus/atelie-api/internal/application/dto"
)

// BillingHandler trata as requisições HTTP de planos e assinaturas (protegido).
type BillingHandler struct {
	uc *billing.BillingUseCase
}

func NewBillingHandler(uc *billing.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// ListPlans godoc
// @Summary      Listar os planos disponíveis
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlanResponse
// @Router       /api/billing/plans [get]
func (h *BillingHandler) ListPlans(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListPlans())
}

// Subscribe godoc
// @Summary      Assinar um plano (pago devolve link de pagamento pendente)
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubscriptionRequest  true  "Plano escolhido"
// @Success      201   {object}  dto.SubscriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/billing/subscriptions [post]
func (h *BillingHandler) Subscribe(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.CreateSubscriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.PlanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plan_id é obrigatório"})
	}
	out, err := h.uc.Subscribe(c.Context(), empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChangePlan godoc
// @Summary      Trocar o plano da assinatura atual
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePlanRequest  true  "Novo plano"
// @Success      200   {object}  dto.SubscriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/billing/subscriptions/plan [put]
func (h *BillingHandler) ChangePlan(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	var in dto.ChangePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.PlanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plan_id é obrigatório"})
	}
	out, err := h.uc.ChangePlan(c.Context(), empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar a assinatura atual
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/subscriptions [delete]
func (h *BillingHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), GetEmpresaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Obter a assinatura atual (sincroniza pendências com o provedor)
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SubscriptionResponse
// @Router       /api/billing/subscriptions/current [get]
func (h *BillingHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.Context(), GetEmpresaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
