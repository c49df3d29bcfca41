package handlers

import (
	"github.com/ViniciusVRodrigues/despensa-backend/domain"
	"github.com/ViniciusVRodrigues/despensa-backend/internal/api/presenters"
	"github.com/ViniciusVRodrigues/despensa-backend/pkg/product"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
		GetProductsByCategory(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		CreateProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.productService.SearchProducts(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductsByCategory(c *fiber.Ctx) error {
	products, err := h.productService.GetProductsByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductDetails(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	p, err := h.productService.GetProductByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, p, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.ProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.CreateProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedCreateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	req := new(domain.ProductUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	res, err := h.productService.UpdateProduct(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	if err := h.productService.DeleteProduct(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteProduct, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}
