package domain

var (
	MessageSuccessAddShoppingItem    = "shopping list item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping list item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping list item deleted successfully"
	MessageSuccessGetShoppingItems   = "shopping list items retrieved successfully"
	MessageSuccessMarkPurchased      = "shopping list item marked as purchased"
	MessageSuccessCancelItem         = "shopping list item cancelled"
	MessageSuccessClearPurchased     = "purchased items cleared successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping list item"
	MessageFailedUpdateShoppingItem = "failed to update shopping list item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping list item"
	MessageFailedGetShoppingItems   = "failed to retrieve shopping list items"
	MessageFailedMarkPurchased      = "failed to mark shopping list item as purchased"
	MessageFailedCancelItem         = "failed to cancel shopping list item"
	MessageFailedClearPurchased     = "failed to clear purchased items"
)

type (
	ShoppingListItemRequest struct {
		ProductID   int64   `json:"productId" validate:"omitempty"`
		ProductName string  `json:"productName" validate:"omitempty"`
		Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
		Priority    string  `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
		Notes       string  `json:"notes" validate:"omitempty"`
	}

	ShoppingListItemUpdateRequest struct {
		Quantity float64 `json:"quantity" validate:"omitempty,gt=0"`
		Priority string  `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
		Notes    *string `json:"notes" validate:"omitempty"`
	}

	MarkPurchasedBatchRequest struct {
		IDs []int64 `json:"ids" validate:"required,min=1"`
	}

	ShoppingListItemResponse struct {
		ID        int64           `json:"id"`
		Product   ProductResponse `json:"product"`
		Quantity  float64         `json:"quantity"`
		Priority  string          `json:"priority"`
		Status    string          `json:"status"`
		AddedAt   string          `json:"addedAt"`
		Notes     string          `json:"notes"`
		AutoAdded bool            `json:"autoAdded"`
	}
)
