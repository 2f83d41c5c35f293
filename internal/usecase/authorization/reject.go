package authorization

import (
	"fmt"
	"log/slog"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

// Reject bulk-moves every pending face of the proposal on the given track to
// rejected, recording the reason. Only the task for that track is resolved.
// The proposal's own status is deliberately left alone; what happens to a
// rejected proposal belongs to the surrounding workflow.
func (uc *DefaultAuthorizationUsecase) Reject(proposalID string, track domain.Track, reason string) error {
	if reason == "" {
		return domain.NewValidationError("reason", "rejection reason is required")
	}

	count, err := uc.FaceRepo.UpdateTrackStatuses(proposalID, track, domain.StatusPending, domain.StatusRejected, reason)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.NewStateError(fmt.Sprintf("no pending faces on track %s for proposal %s", track, proposalID))
	}

	if err := uc.TaskRepo.ResolveTask(proposalID, track); err != nil {
		slog.Error("failed to resolve approval task", "proposal_id", proposalID, "track", track, "error", err.Error())
	}

	if err := uc.Publisher.PublishAuthorizationRejected(domain.AuthorizationRejectedEvent{
		Track:      track,
		ProposalID: proposalID,
		Count:      count,
		Reason:     reason,
	}); err != nil {
		slog.Error("failed to publish authorization.rejected", "proposal_id", proposalID, "error", err.Error())
	}

	uc.auditDecision(proposalID, track, "rejected", reason, count)
	uc.Metrics.RecordDecision(string(track), "rejected", float64(count))

	return nil
}
