package entities

import (
	"time"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"

	StatusPending   = "PENDING"
	StatusPurchased = "PURCHASED"
	StatusCancelled = "CANCELLED"
)

type ShoppingListItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `json:"-"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Priority  string    `gorm:"default:MEDIUM" json:"priority"`
	Status    string    `gorm:"default:PENDING" json:"status"`
	AddedAt   time.Time `json:"addedAt"`
	Notes     string    `json:"notes"`
	AutoAdded bool      `json:"autoAdded"`
}
