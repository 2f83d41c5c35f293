package authdto

// CheckPendingOutput lists, per track, the faces still waiting on a decision.
type CheckPendingOutput struct {
	HasPending bool     `json:"has_pending"`
	PendingDG  []string `json:"pending_dg"`
	PendingDCM []string `json:"pending_dcm"`
}
