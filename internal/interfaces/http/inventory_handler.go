package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

// InventoryHandler trata as requisições HTTP de estoque: itens, movimentações
// manuais e alertas de mínimo (protegido, módulo inventory).
type InventoryHandler struct {
	uc         *usecase.InventoryUseCase
	movementUC *inventory.RegisterMovementUseCase
}

func NewInventoryHandler(uc *usecase.InventoryUseCase, movementUC *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, movementUC: movementUC}
}

// CreateItem godoc
// @Summary      Cadastrar item de estoque
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.CreateInventoryItemRequest
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

// GetItem godoc
// @Summary      Obter item de estoque por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Listar itens de estoque
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InventoryItemListResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetEmpresaID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBelowMinimum godoc
// @Summary      Listar itens com estoque no mínimo ou abaixo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory/items/below-minimum [get]
func (h *InventoryHandler) ListBelowMinimum(c *fiber.Ctx) error {
	out, err := h.uc.ListBelowMinimum(GetEmpresaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Atualizar item de estoque (quantidade só muda por movimentação)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do item"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Dados a atualizar"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(GetEmpresaID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Remover item de estoque
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEmpresaID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterMovement godoc
// @Summary      Registrar movimentação manual de estoque
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Dados da movimentação"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id requerido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.movementUC.RegisterMovement(c.Context(), inventory.MovementInput{
		EmpresaID:         empresaID,
		UserID:            GetUserID(c),
		ItemID:            in.ItemID,
		CounterpartItemID: in.CounterpartItemID,
		Kind:              in.Kind,
		Quantity:          in.Quantity,
		Reason:            in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		MovementID:     result.MovementID,
		QuantityBefore: result.QuantityBefore,
		QuantityAfter:  result.QuantityAfter,
	})
}

// ListMovements godoc
// @Summary      Listar o histórico de movimentações de um item
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do item"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.StockMovementListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListMovements(GetEmpresaID(c), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMovementsByOrigin godoc
// @Summary      Listar as baixas disparadas por um pedido ou serviço
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        origin_kind  query  string  true  "Origem"  Enums(pedido, servico)
// @Param        origin_id    query  string  true  "ID da origem"
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovementsByOrigin(c *fiber.Ctx) error {
	out, err := h.uc.ListMovementsByOrigin(GetEmpresaID(c), c.Query("origin_kind"), c.Query("origin_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
