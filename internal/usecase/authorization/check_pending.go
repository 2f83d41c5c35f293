package authorization

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	authdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/authorization"
)

// CheckPending scans every face of the proposal and reports the ones still
// waiting per track. The aggregate is always derived, never stored.
func (uc *DefaultAuthorizationUsecase) CheckPending(proposalID string) (*authdto.CheckPendingOutput, error) {
	faces, err := uc.FaceRepo.GetFacesByProposalID(proposalID)
	if err != nil {
		return nil, err
	}

	out := &authdto.CheckPendingOutput{}
	for _, face := range faces {
		if face.DGStatus == domain.StatusPending {
			out.PendingDG = append(out.PendingDG, face.ID)
		}
		if face.DCMStatus == domain.StatusPending {
			out.PendingDCM = append(out.PendingDCM, face.ID)
		}
	}
	out.HasPending = len(out.PendingDG) > 0 || len(out.PendingDCM) > 0

	uc.Metrics.SetPendingFaces(string(domain.TrackDG), float64(len(out.PendingDG)))
	uc.Metrics.SetPendingFaces(string(domain.TrackDCM), float64(len(out.PendingDCM)))

	return out, nil
}
