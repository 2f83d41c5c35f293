package allocdto

import "github.com/viaurbana/ooh-campaign-service/internal/domain"

type SkippedSlot struct {
	Request SlotRequest `json:"request"`
	Reason  string      `json:"reason"`
}

type AllocateOutput struct {
	BatchID      string                `json:"batch_id"`
	Reservations []*domain.Reservation `json:"reservations"`
	Skipped      []SkippedSlot         `json:"skipped"`
}

// ToggleOutput reports the net effect of one toggle: either one created
// reservation or the number of soft-deleted ones (a complete pair counts 2).
type ToggleOutput struct {
	Created *domain.Reservation `json:"created,omitempty"`
	Removed int64               `json:"removed"`
}
