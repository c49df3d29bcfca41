package domain

import (
	"errors"
)

const (
	DateLayout = "2006-01-02"

	DefaultCategory = "Outros"
	DefaultUnit     = "un"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseID              = errors.New("failed to parse id")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidExpiryDate    = errors.New("invalid expiration date")
	ErrMissingProductRef    = errors.New("either productId or productName must be provided")
	ErrProductNotFound      = errors.New("product not found")
	ErrPantryItemNotFound   = errors.New("pantry item not found")
	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)
