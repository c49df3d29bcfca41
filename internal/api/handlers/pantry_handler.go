package handlers

import (
	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/presenters"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/pantry"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		GetPantryItems(c *fiber.Ctx) error
		SearchPantryItems(c *fiber.Ctx) error
		GetPantryItemsByProduct(c *fiber.Ctx) error
		GetPantryItemDetails(c *fiber.Ctx) error
		AddPantryItem(c *fiber.Ctx) error
		QuickPurchase(c *fiber.Ctx) error
		UpdatePantryItem(c *fiber.Ctx) error
		Consume(c *fiber.Ctx) error
		ConsumeBatch(c *fiber.Ctx) error
		Discard(c *fiber.Ctx) error
		DiscardExpired(c *fiber.Ctx) error
		DeletePantryItem(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func (h *pantryHandler) GetPantryItems(c *fiber.Ctx) error {
	items, err := h.pantryService.GetPantryItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetPantryItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) SearchPantryItems(c *fiber.Ctx) error {
	items, err := h.pantryService.SearchPantryItems(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetPantryItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetPantryItemsByProduct(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, err)
	}

	items, err := h.pantryService.GetPantryItemsByProduct(c.Context(), productID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetPantryItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetPantryItemDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, err)
	}

	item, err := h.pantryService.GetPantryItemByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetPantryItems, err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) AddPantryItem(c *fiber.Ctx) error {
	req := new(domain.PantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	res, err := h.pantryService.AddPantryItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddPantryItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

func (h *pantryHandler) QuickPurchase(c *fiber.Ctx) error {
	req := new(domain.QuickPurchaseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuickPurchase, err)
	}

	res, err := h.pantryService.QuickPurchase(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedQuickPurchase, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessQuickPurchase)
}

func (h *pantryHandler) UpdatePantryItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	req := new(domain.PantryItemUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	res, err := h.pantryService.UpdatePantryItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdatePantryItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) Consume(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsume, err)
	}

	req := new(domain.ConsumeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsume, err)
	}

	res, err := h.pantryService.Consume(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedConsume, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsume)
}

func (h *pantryHandler) ConsumeBatch(c *fiber.Ctx) error {
	req := new(domain.BatchConsumeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsume, err)
	}

	res, err := h.pantryService.ConsumeBatch(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedConsume, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsume)
}

func (h *pantryHandler) Discard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDiscard, err)
	}

	if err := h.pantryService.Discard(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDiscard, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDiscard)
}

func (h *pantryHandler) DiscardExpired(c *fiber.Ctx) error {
	if err := h.pantryService.DiscardExpired(c.Context()); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDiscard, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDiscardExpired)
}

func (h *pantryHandler) DeletePantryItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryItem, err)
	}

	if err := h.pantryService.DeletePantryItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeletePantryItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}
