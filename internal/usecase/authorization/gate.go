package authorization

import (
	"fmt"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

// GateActivation refuses to elevate a proposal to an active commitment while
// any face is still pending on either track.
func (uc *DefaultAuthorizationUsecase) GateActivation(proposalID string) error {
	if _, err := uc.ProposalRepo.GetProposalByID(proposalID); err != nil {
		return err
	}
	pending, err := uc.CheckPending(proposalID)
	if err != nil {
		return err
	}
	if pending.HasPending {
		return domain.NewStateError(fmt.Sprintf(
			"proposal %s has pending authorizations: %d on DG, %d on DCM",
			proposalID, len(pending.PendingDG), len(pending.PendingDCM)))
	}
	return nil
}
