package domain

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessQuickPurchase    = "purchase registered successfully"
	MessageSuccessConsume          = "consumption registered successfully"
	MessageSuccessDiscard          = "pantry item discarded successfully"
	MessageSuccessDiscardExpired   = "expired items discarded successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedQuickPurchase    = "failed to register purchase"
	MessageFailedConsume          = "failed to register consumption"
	MessageFailedDiscard          = "failed to discard pantry item"
)

type (
	PantryItemRequest struct {
		ProductID      int64   `json:"productId" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		ExpirationDate string  `json:"expirationDate" validate:"omitempty"`
		Location       string  `json:"location" validate:"omitempty"`
		Notes          string  `json:"notes" validate:"omitempty"`
	}

	PantryItemUpdateRequest struct {
		Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
		ExpirationDate string  `json:"expirationDate" validate:"omitempty"`
		Location       string  `json:"location" validate:"omitempty"`
		Notes          string  `json:"notes" validate:"omitempty"`
	}

	QuickPurchaseRequest struct {
		ProductID      int64   `json:"productId" validate:"omitempty"`
		ProductName    string  `json:"productName" validate:"omitempty"`
		Category       string  `json:"category" validate:"omitempty"`
		Unit           string  `json:"unit" validate:"omitempty"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		ExpirationDate string  `json:"expirationDate" validate:"omitempty"`
		Location       string  `json:"location" validate:"omitempty"`
		Notes          string  `json:"notes" validate:"omitempty"`
	}

	ConsumeRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	BatchConsumeItem struct {
		PantryItemID int64   `json:"pantryItemId" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	}

	BatchConsumeRequest struct {
		Items []BatchConsumeItem `json:"items" validate:"required,min=1,dive"`
	}

	PantryItemResponse struct {
		ID                  int64           `json:"id"`
		Product             ProductResponse `json:"product"`
		Quantity            float64         `json:"quantity"`
		ExpirationDate      *string         `json:"expirationDate"`
		AddedDate           string          `json:"addedDate"`
		Location            string          `json:"location"`
		Notes               string          `json:"notes"`
		IsExpired           bool            `json:"isExpired"`
		IsExpiringSoon      bool            `json:"isExpiringSoon"`
		IsLowStock          bool            `json:"isLowStock"`
		DaysUntilExpiration *int            `json:"daysUntilExpiration"`
	}

	ConsumptionResponse struct {
		ItemsConsumed        int      `json:"itemsConsumed"`
		DepletedItemIDs      []int64  `json:"depletedItemIds"`
		DepletedProductNames []string `json:"depletedProductNames"`
		Message              string   `json:"message"`
		HasDepletedItems     bool     `json:"hasDepletedItems"`
		LowStockWarnings     []string `json:"lowStockWarnings"`
	}
)
