package handlers

import (
	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/presenters"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/dashboard"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetAlerts(c *fiber.Ctx) error
		GenerateShoppingList(c *fiber.Ctx) error
		AddSelectedAlerts(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
		validator        *validator.Validate
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService, validator *validator.Validate) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
		validator:        validator,
	}
}

func (h *dashboardHandler) GetAlerts(c *fiber.Ctx) error {
	res, err := h.dashboardService.GetAlerts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetAlerts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}

func (h *dashboardHandler) GenerateShoppingList(c *fiber.Ctx) error {
	res, err := h.dashboardService.GenerateShoppingList(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGenerateList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateList)
}

func (h *dashboardHandler) AddSelectedAlerts(c *fiber.Ctx) error {
	req := new(domain.AddSelectedAlertsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSelectedAlerts, err)
	}

	res, err := h.dashboardService.AddSelectedAlerts(c.Context(), req.PantryItemIDs)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddSelectedAlerts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSelectedAlerts)
}
