package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/application/usecase"
)

// CatalogHandler maneja los catálogos pequeños: categorías, medios de pago
// y tipos de movimiento.
type CatalogHandler struct {
	categoryUC      *usecase.CategoryUseCase
	paymentMethodUC *usecase.PaymentMethodUseCase
	typeMovementUC  *usecase.TypeMovementUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(
	categoryUC *usecase.CategoryUseCase,
	paymentMethodUC *usecase.PaymentMethodUseCase,
	typeMovementUC *usecase.TypeMovementUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		categoryUC:      categoryUC,
		paymentMethodUC: paymentMethodUC,
		typeMovementUC:  typeMovementUC,
	}
}

// ── Categorías ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.categoryUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.categoryUC.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	out, err := h.categoryUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.categoryUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Medios de pago ────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.paymentMethodUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListPaymentMethods(c *fiber.Ctx) error {
	out, err := h.paymentMethodUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetPaymentMethod(c *fiber.Ctx) error {
	out, err := h.paymentMethodUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdatePaymentMethod(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.paymentMethodUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeletePaymentMethod(c *fiber.Ctx) error {
	if err := h.paymentMethodUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Tipos de movimiento ───────────────────────────────────────────────────────

func (h *CatalogHandler) CreateTypeMovement(c *fiber.Ctx) error {
	var in dto.CreateTypeMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.typeMovementUC.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListTypeMovements(c *fiber.Ctx) error {
	out, err := h.typeMovementUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) GetTypeMovement(c *fiber.Ctx) error {
	out, err := h.typeMovementUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) UpdateTypeMovement(c *fiber.Ctx) error {
	var in dto.CreateTypeMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.typeMovementUC.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteTypeMovement(c *fiber.Ctx) error {
	if err := h.typeMovementUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
