package entities

type Product struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Category        string `json:"category"`
	Unit            string `json:"unit"`
	Description     string `json:"description"`
	TrackExpiration bool   `json:"trackExpiration"`
}
