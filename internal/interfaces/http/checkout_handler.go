package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Equipos-api/internal/application/checkout"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
	"github.com/jhoicas/Equipos-api/internal/domain"
)

// CheckoutHandler maneja el flujo de retiro y devolución por lotes.
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Resolve godoc
// @Summary      Resolver un código para el lote
// @Description  Busca el equipo por código y devuelve la acción que implicaría
// @Description  como primer elemento de un lote (checkout o checkin).
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del equipo"
// @Success      200   {object}  dto.ResolveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/checkout/resolve/{code} [get]
func (h *CheckoutHandler) Resolve(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.uc.Resolve(companyID, code)
	if err != nil {
		if err == domain.ErrCodeNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CODE_NOT_FOUND", Message: "código no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar lote de retiros o devoluciones
// @Description  Valida el lote completo antes de escribir; procesa cada equipo
// @Description  en orden y devuelve el conteo de éxitos y fallos.
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitRequest  true  "codes, responsible, notes"
// @Success      200   {object}  dto.CommitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout/commit [post]
func (h *CheckoutHandler) Commit(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CommitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Commit(c.UserContext(), companyID, in)
	if err != nil {
		switch err {
		case domain.ErrNoResponsible:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "responsible es requerido"})
		case domain.ErrEmptyBatch:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BATCH", Message: "el lote no tiene equipos"})
		case domain.ErrCodeNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CODE_NOT_FOUND", Message: "algún código del lote no existe"})
		case domain.ErrAlreadyInBatch:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "el lote contiene códigos repetidos"})
		case domain.ErrMixedStatus:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MIXED_STATUS", Message: "el lote mezcla equipos disponibles y en uso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Commit parcial o totalmente fallido: 207 para que el cliente muestre
	// los códigos pendientes de reintento.
	if out.Failed > 0 {
		return c.Status(fiber.StatusMultiStatus).JSON(out)
	}
	return c.JSON(out)
}
