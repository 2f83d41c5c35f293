package domain

import (
	"fmt"
	"time"
)

type Orientation string

const (
	OrientationFlow        Orientation = "F"
	OrientationCounterFlow Orientation = "CF"
)

// InventorySlot is one physically addressable advertising unit at a location.
// Several units may share coordinates and orientation (e.g. stacked faces on
// one structure); they are told apart by Code.
type InventorySlot struct {
	ID          string
	Code        string
	City        string
	State       string
	Latitude    float64
	Longitude   float64
	Format      Format
	Orientation Orientation
	Active      bool
}

// CoordinateKey buckets slots that share a physical location.
func (s *InventorySlot) CoordinateKey() string {
	return CoordinateKey(s.Latitude, s.Longitude)
}

func CoordinateKey(lat, lng float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lng)
}

type CalendarPeriod struct {
	Start time.Time
	End   time.Time
}

func (p CalendarPeriod) Overlaps(other CalendarPeriod) bool {
	return !p.Start.After(other.End) && !other.Start.After(p.End)
}

type ReservationStatus string

const (
	ReservationReserved   ReservationStatus = "RESERVED"
	ReservationBonus      ReservationStatus = "BONUS"
	ReservationSold       ReservationStatus = "SOLD"
	ReservationEliminated ReservationStatus = "ELIMINATED"
)

// Reservation books one inventory slot for one face request over a period.
// Reservations are soft-deleted only; DeletedAt is the tombstone.
type Reservation struct {
	ID         string
	SlotID     string
	FaceID     string
	ProposalID string
	Period     CalendarPeriod
	Status     ReservationStatus
	GroupID    *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

func (r *Reservation) Deleted() bool {
	return r.DeletedAt != nil
}

type SlotRepository interface {
	GetSlotByID(slotID string) (*InventorySlot, error)
	// FindUnitsAt returns the active addressable units sharing the given
	// coordinates and orientation, in stable code order.
	FindUnitsAt(lat, lng float64, orientation Orientation) ([]*InventorySlot, error)
}

type ReservationRepository interface {
	CreateReservation(reservation *Reservation) error
	GetReservationByID(reservationID string) (*Reservation, error)
	// FindActiveOverlapping returns every non-deleted reservation whose
	// period overlaps the given one.
	FindActiveOverlapping(period CalendarPeriod) ([]*Reservation, error)
	FindActiveByProposalID(proposalID string) ([]*Reservation, error)
	// FindActiveBySlotAndProposal returns nil when the slot carries no
	// active reservation inside the proposal.
	FindActiveBySlotAndProposal(slotID, proposalID string) (*Reservation, error)
	FindActiveByGroupID(groupID int64) ([]*Reservation, error)
	SoftDeleteReservations(reservationIDs []string) (int64, error)
	// NextGroupID atomically mints the next sequential group id. Ids are
	// monotonically increasing and never reused.
	NextGroupID() (int64, error)
}

type PeriodRepository interface {
	// CurrentPeriod returns the billing period covering the given date.
	CurrentPeriod(date time.Time) (*CalendarPeriod, error)
}
