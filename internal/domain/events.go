package domain

type AuthorizationRequiredEvent struct {
	Track      Track    `json:"track"`
	ProposalID string   `json:"proposal_id"`
	FaceIDs    []string `json:"face_ids"`
}

type AuthorizationApprovedEvent struct {
	Track      Track  `json:"track"`
	ProposalID string `json:"proposal_id"`
	Count      int64  `json:"count"`
}

type AuthorizationRejectedEvent struct {
	Track      Track  `json:"track"`
	ProposalID string `json:"proposal_id"`
	Count      int64  `json:"count"`
	Reason     string `json:"reason"`
}

type ReservationCreatedEvent struct {
	ProposalID string `json:"proposal_id"`
	Count      int    `json:"count"`
}

type ReservationDeletedEvent struct {
	ProposalID string `json:"proposal_id"`
	Count      int    `json:"count"`
}

type AllocationProgressEvent struct {
	BatchID    string `json:"batch_id"`
	ProposalID string `json:"proposal_id"`
	Processed  int    `json:"processed"`
	Total      int    `json:"total"`
	Created    int    `json:"created"`
}

// EventPublisher hands domain events to the external dispatcher. Delivery is
// fire-and-forget: callers log failures and carry on.
type EventPublisher interface {
	PublishAuthorizationRequired(event AuthorizationRequiredEvent) error
	PublishAuthorizationApproved(event AuthorizationApprovedEvent) error
	PublishAuthorizationRejected(event AuthorizationRejectedEvent) error
	PublishReservationCreated(event ReservationCreatedEvent) error
	PublishReservationDeleted(event ReservationDeletedEvent) error
	PublishAllocationProgress(event AllocationProgressEvent) error
}
