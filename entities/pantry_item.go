package entities

import (
	"time"
)

type PantryItem struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      int64      `json:"-"`
	Product        Product    `gorm:"foreignKey:ProductID" json:"product"`
	Quantity       float64    `gorm:"not null" json:"quantity"`
	ExpirationDate *time.Time `gorm:"type:date" json:"expirationDate,omitempty"`
	AddedDate      time.Time  `gorm:"type:date" json:"addedDate"`
	Location       string     `json:"location"`
	Notes          string     `json:"notes"`
}
