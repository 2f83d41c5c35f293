package models

import (
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"gorm.io/gorm"
)

// ReservationModel is tombstoned via gorm.DeletedAt; rows are never removed.
// The (slot, overlapping period) availability guard is an exclusion
// constraint installed by migration 0001.
type ReservationModel struct {
	ID          string                   `gorm:"primaryKey;type:uuid"`
	SlotID      string                   `gorm:"type:uuid;index:idx_reservation_slot"`
	FaceID      string                   `gorm:"type:uuid;index:idx_reservation_face"`
	ProposalID  string                   `gorm:"type:uuid;index:idx_reservation_proposal"`
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      domain.ReservationStatus
	GroupID     *int64                   `gorm:"index:idx_reservation_group"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt           `gorm:"index"`
}
