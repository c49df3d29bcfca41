package domain

const (
	AlertTypeExpired      = "EXPIRED"
	AlertTypeExpiringSoon = "EXPIRING_SOON"
	AlertTypeLowStock     = "LOW_STOCK"

	// Notes stamped on shopping list items created from dashboard alerts.
	NotesAutoAddedFromAlerts = "Added automatically from alerts"
	NotesAddedFromAlerts     = "Added from alerts"
)

var (
	MessageSuccessGetAlerts         = "dashboard alerts retrieved successfully"
	MessageSuccessGenerateList      = "shopping list generated from alerts"
	MessageSuccessAddSelectedAlerts = "selected alerts added to shopping list"

	MessageFailedGetAlerts         = "failed to retrieve dashboard alerts"
	MessageFailedGenerateList      = "failed to generate shopping list from alerts"
	MessageFailedAddSelectedAlerts = "failed to add selected alerts to shopping list"
)

type (
	AlertItem struct {
		PantryItemID        int64   `json:"pantryItemId"`
		ProductName         string  `json:"productName"`
		Quantity            float64 `json:"quantity"`
		Unit                string  `json:"unit"`
		ExpirationDate      *string `json:"expirationDate"`
		DaysUntilExpiration *int    `json:"daysUntilExpiration"`
		AlertType           string  `json:"alertType"`
	}

	AlertSummary struct {
		ExpiringCount int `json:"expiringCount"`
		ExpiredCount  int `json:"expiredCount"`
		LowStockCount int `json:"lowStockCount"`
	}

	DashboardAlertsResponse struct {
		ExpiringSoon []AlertItem  `json:"expiringSoon"`
		Expired      []AlertItem  `json:"expired"`
		LowStock     []AlertItem  `json:"lowStock"`
		TotalAlerts  int          `json:"totalAlerts"`
		Summary      AlertSummary `json:"summary"`
	}

	AddSelectedAlertsRequest struct {
		PantryItemIDs []int64 `json:"pantryItemIds" validate:"required,min=1"`
	}
)
