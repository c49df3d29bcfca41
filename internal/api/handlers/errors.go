package handlers

import (
	"errors"
	"strconv"

	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/gofiber/fiber/v2"
)

func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, domain.ErrParseID
	}
	return id, nil
}
