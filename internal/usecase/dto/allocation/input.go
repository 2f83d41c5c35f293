package allocdto

import "github.com/viaurbana/ooh-campaign-service/internal/domain"

// SlotRequest asks for one addressable unit at a physical location.
type SlotRequest struct {
	Latitude    float64
	Longitude   float64
	Orientation domain.Orientation
	Bonus       bool
}

type AllocateInput struct {
	FaceID          string
	Requests        []SlotRequest
	Period          domain.CalendarPeriod
	GroupingEnabled bool
}

type ToggleInput struct {
	SlotID string
	FaceID string
	Bonus  bool
}
