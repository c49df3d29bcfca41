package pantry

import (
	"time"

	"github.com/ViniciusVRodrigues/despensa-backend/entities"
)

// Thresholds configures the alert classifier. LowStock drives the low-stock
// flag and dashboard bucket; RunningLow is the coarser warning emitted after a
// consumption leaves an item close to empty.
type Thresholds struct {
	ExpiringSoonDays int
	LowStock         float64
	RunningLow       float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ExpiringSoonDays: 7,
		LowStock:         2,
		RunningLow:       5,
	}
}

// ItemFlags is the derived classification of a pantry item as of a given day.
// Flags are never persisted; they are recomputed on every read.
type ItemFlags struct {
	IsExpired           bool
	IsExpiringSoon      bool
	IsLowStock          bool
	DaysUntilExpiration *int
}

// Classify derives the alert flags for item as of now. Dates are compared at
// calendar-day granularity, so the time of day never changes the outcome: an
// item expiring today is expiring-soon, not expired, until the date rolls over.
func Classify(item *entities.PantryItem, now time.Time, t Thresholds) ItemFlags {
	flags := ItemFlags{
		IsLowStock: item.Quantity <= t.LowStock,
	}

	if item.ExpirationDate == nil {
		return flags
	}

	today := dateOf(now)
	expiration := dateOf(*item.ExpirationDate)

	days := int(expiration.Sub(today).Hours() / 24)
	flags.DaysUntilExpiration = &days
	flags.IsExpired = expiration.Before(today)
	flags.IsExpiringSoon = !flags.IsExpired && days >= 0 && days <= t.ExpiringSoonDays

	return flags
}

// dateOf reduces t to its calendar date, anchored at midnight UTC. Stored
// expiration dates are UTC midnights while clock readings carry the server's
// zone; comparing the date components keeps "expires 2025-06-15" equal to any
// clock reading on 2025-06-15, whatever the zone.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
