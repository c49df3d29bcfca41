package handlers

import (
	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/presenters"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/shoppinglist"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetShoppingListItems(c *fiber.Ctx) error
		GetPendingItems(c *fiber.Ctx) error
		GetShoppingListItemDetails(c *fiber.Ctx) error
		AddShoppingListItem(c *fiber.Ctx) error
		UpdateShoppingListItem(c *fiber.Ctx) error
		MarkPurchased(c *fiber.Ctx) error
		MarkPurchasedBatch(c *fiber.Ctx) error
		Cancel(c *fiber.Ctx) error
		ClearPurchased(c *fiber.Ctx) error
		DeleteShoppingListItem(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) GetShoppingListItems(c *fiber.Ctx) error {
	pendingOnly := c.Query("pending") == "true"

	items, err := h.shoppingListService.GetShoppingListItems(c.Context(), pendingOnly)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetShoppingItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetShoppingItems)
}

func (h *shoppingListHandler) GetPendingItems(c *fiber.Ctx) error {
	items, err := h.shoppingListService.GetShoppingListItems(c.Context(), true)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetShoppingItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetShoppingItems)
}

func (h *shoppingListHandler) GetShoppingListItemDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingItems, err)
	}

	item, err := h.shoppingListService.GetShoppingListItemByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetShoppingItems, err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetShoppingItems)
}

func (h *shoppingListHandler) AddShoppingListItem(c *fiber.Ctx) error {
	req := new(domain.ShoppingListItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingListService.AddShoppingListItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddShoppingItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingListHandler) UpdateShoppingListItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	req := new(domain.ShoppingListItemUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	res, err := h.shoppingListService.UpdateShoppingListItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateShoppingItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingListHandler) MarkPurchased(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkPurchased, err)
	}

	if err := h.shoppingListService.MarkPurchased(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedMarkPurchased, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkPurchased)
}

func (h *shoppingListHandler) MarkPurchasedBatch(c *fiber.Ctx) error {
	req := new(domain.MarkPurchasedBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkPurchased, err)
	}

	if err := h.shoppingListService.MarkPurchasedBatch(c.Context(), req.IDs); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedMarkPurchased, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkPurchased)
}

func (h *shoppingListHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelItem, err)
	}

	if err := h.shoppingListService.Cancel(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedCancelItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelItem)
}

func (h *shoppingListHandler) ClearPurchased(c *fiber.Ctx) error {
	if err := h.shoppingListService.ClearPurchased(c.Context()); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedClearPurchased, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearPurchased)
}

func (h *shoppingListHandler) DeleteShoppingListItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingItem, err)
	}

	if err := h.shoppingListService.DeleteShoppingListItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteShoppingItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingItem)
}
