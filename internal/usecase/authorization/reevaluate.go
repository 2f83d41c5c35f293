package authorization

import (
	"log/slog"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/criteria"
)

// Reevaluate recomputes both track states of one face from its current
// commercial terms. It runs when a face is created or its terms are edited;
// decisions already made by an operator are overwritten on purpose, since the
// deal they signed off on no longer exists.
func (uc *DefaultAuthorizationUsecase) Reevaluate(faceID string) (*criteria.Verdict, error) {
	face, err := uc.FaceRepo.GetFaceByID(faceID)
	if err != nil {
		return nil, err
	}

	verdict, err := uc.Evaluator.Evaluate(criteria.TermsFromFace(face))
	if err != nil {
		return nil, err
	}

	if err := uc.FaceRepo.SaveVerdict(face.ID, verdict.DGStatus, verdict.DCMStatus, verdict.DGReason, verdict.DCMReason); err != nil {
		return nil, err
	}

	uc.Metrics.RecordEvaluation(string(verdict.DGStatus), string(verdict.DCMStatus))

	if verdict.DGStatus == domain.StatusPending {
		uc.openTask(face.ProposalID, domain.TrackDG, verdict.DGReason, face.ID)
	}
	if verdict.DCMStatus == domain.StatusPending {
		uc.openTask(face.ProposalID, domain.TrackDCM, verdict.DCMReason, face.ID)
	}

	// A cleaner verdict may have cleared the last pending face on a track;
	// tasks with no pending work left behind them must not stay open.
	pending, err := uc.CheckPending(face.ProposalID)
	if err != nil {
		slog.Error("failed to check pending faces", "proposal_id", face.ProposalID, "error", err.Error())
		return verdict, nil
	}
	if len(pending.PendingDG) == 0 {
		uc.closeTask(face.ProposalID, domain.TrackDG)
	}
	if len(pending.PendingDCM) == 0 {
		uc.closeTask(face.ProposalID, domain.TrackDCM)
	}

	return verdict, nil
}

func (uc *DefaultAuthorizationUsecase) closeTask(proposalID string, track domain.Track) {
	if err := uc.TaskRepo.ResolveTask(proposalID, track); err != nil {
		slog.Error("failed to resolve approval task", "proposal_id", proposalID, "track", track, "error", err.Error())
	}
}

func (uc *DefaultAuthorizationUsecase) openTask(proposalID string, track domain.Track, reason, faceID string) {
	open, err := uc.TaskRepo.FindOpenTasks(proposalID)
	if err != nil {
		slog.Error("failed to list approval tasks", "proposal_id", proposalID, "error", err.Error())
		return
	}
	for _, task := range open {
		if task.Track == track {
			return
		}
	}

	if err := uc.TaskRepo.CreateTask(&domain.ApprovalTask{
		ProposalID: proposalID,
		Track:      track,
		Reason:     reason,
	}); err != nil {
		slog.Error("failed to create approval task", "proposal_id", proposalID, "track", track, "error", err.Error())
	}

	if err := uc.Publisher.PublishAuthorizationRequired(domain.AuthorizationRequiredEvent{
		Track:      track,
		ProposalID: proposalID,
		FaceIDs:    []string{faceID},
	}); err != nil {
		slog.Error("failed to publish authorization.required", "proposal_id", proposalID, "error", err.Error())
	}
}
