package allocation

import (
	"log/slog"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

// DeleteReservations tombstones the given reservations. Totals are never
// cached on the reservation rows; downstream aggregation recomputes them.
func (uc *DefaultAllocationUsecase) DeleteReservations(reservationIDs []string) (int64, error) {
	if len(reservationIDs) == 0 {
		return 0, domain.NewValidationError("reservation_ids", "at least one reservation id is required")
	}

	perProposal := make(map[string]int)
	for _, id := range reservationIDs {
		reservation, err := uc.ReservationRepo.GetReservationByID(id)
		if err != nil {
			return 0, err
		}
		// Already-tombstoned ids are a no-op and must not inflate the
		// per-proposal event counts.
		if reservation.Deleted() {
			continue
		}
		perProposal[reservation.ProposalID]++
	}

	removed, err := uc.ReservationRepo.SoftDeleteReservations(reservationIDs)
	if err != nil {
		return 0, err
	}
	uc.Metrics.RecordReservationsDeleted(float64(removed))

	for proposalID, count := range perProposal {
		if err := uc.Publisher.PublishReservationDeleted(domain.ReservationDeletedEvent{
			ProposalID: proposalID,
			Count:      count,
		}); err != nil {
			slog.Error("failed to publish reservation.deleted", "proposal_id", proposalID, "error", err.Error())
		}
	}

	return removed, nil
}
