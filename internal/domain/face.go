package domain

import "time"

type TrackStatus string

const (
	StatusApproved TrackStatus = "APPROVED"
	StatusPending  TrackStatus = "PENDING"
	StatusRejected TrackStatus = "REJECTED"
)

// Track identifies one of the two independent approval tracks.
type Track string

const (
	TrackDG  Track = "DG"
	TrackDCM Track = "DCM"
)

// FaceRequest is one requested advertising face ("cara") inside a proposal.
type FaceRequest struct {
	ID          string
	ProposalID  string
	City        string
	State       string
	Format      Format
	MediumType  MediumType
	Faces       int
	BonusFaces  int
	Cost        float64
	PublicRate  float64
	PeriodStart time.Time
	PeriodEnd   time.Time
	DGStatus    TrackStatus
	DCMStatus   TrackStatus
	DGReason    string
	DCMReason   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (f *FaceRequest) TotalFaces() int {
	return f.Faces + f.BonusFaces
}

// EffectiveTariff is the per-face cost. Zero faces means zero tariff.
func (f *FaceRequest) EffectiveTariff() float64 {
	total := f.TotalFaces()
	if total == 0 {
		return 0
	}
	return f.Cost / float64(total)
}

func (f *FaceRequest) TrackStatus(track Track) TrackStatus {
	if track == TrackDCM {
		return f.DCMStatus
	}
	return f.DGStatus
}

func (f *FaceRequest) FullyApproved() bool {
	return f.DGStatus == StatusApproved && f.DCMStatus == StatusApproved
}

func (f *FaceRequest) Rejected() bool {
	return f.DGStatus == StatusRejected || f.DCMStatus == StatusRejected
}
