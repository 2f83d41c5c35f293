package authorization

import "github.com/viaurbana/ooh-campaign-service/internal/domain"

// Summarize folds the dual-track state of every face into one aggregate.
func (uc *DefaultAuthorizationUsecase) Summarize(proposalID string) (*domain.AuthorizationSummary, error) {
	faces, err := uc.FaceRepo.GetFacesByProposalID(proposalID)
	if err != nil {
		return nil, err
	}

	summary := &domain.AuthorizationSummary{Total: len(faces)}
	for _, face := range faces {
		if face.FullyApproved() {
			summary.FullyApproved++
		}
		if face.DGStatus == domain.StatusPending {
			summary.PendingDG++
		}
		if face.DCMStatus == domain.StatusPending {
			summary.PendingDCM++
		}
		if face.Rejected() {
			summary.Rejected++
		}
	}
	summary.CanProceed = summary.PendingDG == 0 && summary.PendingDCM == 0 && summary.Rejected == 0

	return summary, nil
}
