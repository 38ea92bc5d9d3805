package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

// ReferralHandler trata as requisições HTTP do programa de indicações
// (protegido, módulo referral).
type ReferralHandler struct {
	uc *usecase.ReferralUseCase
}

func NewReferralHandler(uc *usecase.ReferralUseCase) *ReferralHandler {
	return &ReferralHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar que este ateliê foi indicado por outro
// @Tags         referrals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterReferralRequest  true  "Código de indicação"
// @Success      201   {object}  dto.ReferralResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/referrals [post]
func (h *ReferralHandler) Register(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.RegisterReferralRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ReferralCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "referral_code é obrigatório"})
	}
	out, err := h.uc.Register(empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar as indicações feitas pelo ateliê
// @Tags         referrals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ReferralListResponse
// @Router       /api/referrals [get]
func (h *ReferralHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetEmpresaID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Account godoc
// @Summary      Obter o saldo de pontos e o nível do programa
// @Tags         referrals
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReferralAccountResponse
// @Router       /api/referrals/account [get]
func (h *ReferralHandler) Account(c *fiber.Ctx) error {
	out, err := h.uc.Account(GetEmpresaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RedeemReward godoc
// @Summary      Resgatar um benefício por pontos
// @Tags         referrals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RedeemRewardRequest  true  "Benefício a resgatar"
// @Success      201   {object}  dto.RewardResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/referrals/rewards [post]
func (h *ReferralHandler) RedeemReward(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	var in dto.RedeemRewardRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RedeemReward(empresaID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRewards godoc
// @Summary      Listar os benefícios já resgatados
// @Tags         referrals
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.RewardResponse
// @Router       /api/referrals/rewards [get]
func (h *ReferralHandler) ListRewards(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListRewards(GetEmpresaID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
