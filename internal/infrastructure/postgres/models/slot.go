package models

import (
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

type InventorySlotModel struct {
	ID          string             `gorm:"primaryKey;type:uuid"`
	Code        string             `gorm:"uniqueIndex:idx_slot_code"`
	City        string
	State       string
	Latitude    float64            `gorm:"index:idx_slot_location"`
	Longitude   float64            `gorm:"index:idx_slot_location"`
	Format      domain.Format
	Orientation domain.Orientation `gorm:"index:idx_slot_location"`
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
