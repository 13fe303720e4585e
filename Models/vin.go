package Models

import (
	"time"

	"gorm.io/datatypes"
)

// VinCache stores the normalized payload of a successful VIN decode so
// repeated lookups for the same vehicle skip the registry round-trip.
// Failures are never cached.
type VinCache struct {
	Vin       string         `json:"vin" gorm:"primaryKey;type:varchar(17)"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

func (VinCache) TableName() string {
	return "vin_cache"
}
