package domain

import "time"

type Proposal struct {
	ID        string
	ClientID  string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthorizationSummary aggregates the dual-track state over every face of a
// proposal. Nothing here is stored; it is always derived from the faces.
type AuthorizationSummary struct {
	Total         int
	FullyApproved int
	PendingDG     int
	PendingDCM    int
	Rejected      int
	CanProceed    bool
}

// ApprovalTask is the outstanding sign-off work item for one proposal track.
type ApprovalTask struct {
	ID         string
	ProposalID string
	Track      Track
	Reason     string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

func (t *ApprovalTask) Resolved() bool {
	return t.ResolvedAt != nil
}

type ProposalRepository interface {
	GetProposalByID(proposalID string) (*Proposal, error)
}

type FaceRepository interface {
	GetFaceByID(faceID string) (*FaceRequest, error)
	GetFacesByProposalID(proposalID string) ([]*FaceRequest, error)
	// UpdateTrackStatuses bulk-moves every face of the proposal whose track
	// is in status `from` to status `to`, recording reason on that track.
	// Returns the number of faces updated.
	UpdateTrackStatuses(proposalID string, track Track, from, to TrackStatus, reason string) (int64, error)
	// SaveVerdict overwrites both track states of one face.
	SaveVerdict(faceID string, dg, dcm TrackStatus, dgReason, dcmReason string) error
}

type ApprovalTaskRepository interface {
	CreateTask(task *ApprovalTask) error
	FindOpenTasks(proposalID string) ([]*ApprovalTask, error)
	ResolveTask(proposalID string, track Track) error
	ResolveAllTasks(proposalID string) error
}
