package domain

var (
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"

	MessageFailedCreateProduct = "failed to create product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"
	MessageFailedGetProducts   = "failed to retrieve products"
)

type (
	ProductRequest struct {
		Name            string `json:"name" validate:"required"`
		Category        string `json:"category" validate:"omitempty"`
		Unit            string `json:"unit" validate:"omitempty"`
		Description     string `json:"description" validate:"omitempty"`
		TrackExpiration bool   `json:"trackExpiration"`
	}

	ProductUpdateRequest struct {
		Name            string `json:"name" validate:"omitempty"`
		Category        string `json:"category" validate:"omitempty"`
		Unit            string `json:"unit" validate:"omitempty"`
		Description     string `json:"description" validate:"omitempty"`
		TrackExpiration *bool  `json:"trackExpiration" validate:"omitempty"`
	}

	ProductResponse struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		Category        string `json:"category"`
		Unit            string `json:"unit"`
		Description     string `json:"description"`
		TrackExpiration bool   `json:"trackExpiration"`
	}
)
