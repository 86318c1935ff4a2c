package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/dto"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// permissionChecker es el contrato mínimo que necesita el middleware para verificar módulos.
// Lo implementa *usecase.UserUseCase; el uso de interfaz evita el import circular.
type permissionChecker interface {
	HasPermission(ctx context.Context, userID, module string) (bool, error)
}

// RequirePermission verifica que el usuario del token tenga el módulo habilitado.
// GERENCIA siempre pasa. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 → sin user_id en el contexto.
//   - 403 → módulo deshabilitado para el usuario (o usuario eliminado).
//   - 503 → fallo del almacén al consultar permisos.
func RequirePermission(module string, checker permissionChecker) fiber.Handler {
	return requireModule(module, checker, true)
}

// RequireOwnPermission igual que RequirePermission pero sin excepción para GERENCIA:
// el módulo debe estar habilitado en el propio usuario (gestión de accesos).
func RequireOwnPermission(module string, checker permissionChecker) fiber.Handler {
	return requireModule(module, checker, false)
}

func requireModule(module string, checker permissionChecker, managerBypass bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		if managerBypass && GetRole(c) == entity.RoleGerencia {
			return c.Next()
		}

		allowed, err := checker.HasPermission(c.UserContext(), userID, module)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "el módulo '" + module + "' no está habilitado para este usuario",
			})
		}
		return c.Next()
	}
}
