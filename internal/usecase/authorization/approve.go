package authorization

import (
	"fmt"
	"log/slog"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

// Approve bulk-moves every pending face of the proposal on the given track to
// approved. The other track is untouched. When nothing is left pending on any
// track every open approval task is resolved; otherwise only the task for the
// now-clear track is.
func (uc *DefaultAuthorizationUsecase) Approve(proposalID string, track domain.Track) (int64, error) {
	count, err := uc.FaceRepo.UpdateTrackStatuses(proposalID, track, domain.StatusPending, domain.StatusApproved, "")
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, domain.NewStateError(fmt.Sprintf("no pending faces on track %s for proposal %s", track, proposalID))
	}

	pending, err := uc.CheckPending(proposalID)
	if err != nil {
		return count, err
	}
	if !pending.HasPending {
		if err := uc.TaskRepo.ResolveAllTasks(proposalID); err != nil {
			slog.Error("failed to resolve approval tasks", "proposal_id", proposalID, "error", err.Error())
		}
	} else {
		if err := uc.TaskRepo.ResolveTask(proposalID, track); err != nil {
			slog.Error("failed to resolve approval task", "proposal_id", proposalID, "track", track, "error", err.Error())
		}
	}

	if err := uc.Publisher.PublishAuthorizationApproved(domain.AuthorizationApprovedEvent{
		Track:      track,
		ProposalID: proposalID,
		Count:      count,
	}); err != nil {
		slog.Error("failed to publish authorization.approved", "proposal_id", proposalID, "error", err.Error())
	}

	uc.auditDecision(proposalID, track, "approved", "", count)
	uc.Metrics.RecordDecision(string(track), "approved", float64(count))

	return count, nil
}
