package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelieplus/atelie-api/internal/application/dto"
)

// moduleChecker é o contrato mínimo que o middleware precisa para verificar
// módulos. Implementado por *usecase.EmpresaUseCase; a interface evita o
// acoplamento direto.
type moduleChecker interface {
	HasActiveModule(empresaID, moduleName string) (bool, error)
}

// RequireModule devolve um middleware Fiber que verifica se a empresa do token
// tem o módulo ativo. Deve ser usado DEPOIS de AuthMiddleware (precisa de
// LocalEmpresaID).
//
// Comportamento:
//   - 403 Forbidden → módulo não contratado ou vencido.
//   - 503 Service Unavailable → falha de infraestrutura ao consultar o banco.
//   - Sem empresa_id no contexto responde 401.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		empresaID := GetEmpresaID(c)
		if empresaID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "empresa_id não encontrado no token",
			})
		}

		active, err := checker.HasActiveModule(empresaID, moduleName)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "não foi possível verificar o módulo, tente mais tarde",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "o módulo '" + moduleName + "' não está ativo para esta empresa",
			})
		}

		return c.Next()
	}
}
