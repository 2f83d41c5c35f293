package allocation

import (
	"log/slog"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	allocdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/allocation"
)

// ToggleReservation flips one slot for one face: an existing active
// reservation inside the face's proposal is soft-deleted together with the
// rest of its group (a complete pair goes away as a pair); otherwise exactly
// one new reservation is created. Calling it twice is a no-op pair.
func (uc *DefaultAllocationUsecase) ToggleReservation(input *allocdto.ToggleInput) (*allocdto.ToggleOutput, error) {
	face, err := uc.FaceRepo.GetFaceByID(input.FaceID)
	if err != nil {
		return nil, err
	}
	slot, err := uc.SlotRepo.GetSlotByID(input.SlotID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.ReservationRepo.FindActiveBySlotAndProposal(slot.ID, face.ProposalID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		ids := []string{existing.ID}
		if existing.GroupID != nil {
			groupMates, err := uc.ReservationRepo.FindActiveByGroupID(*existing.GroupID)
			if err != nil {
				return nil, err
			}
			ids = ids[:0]
			for _, mate := range groupMates {
				ids = append(ids, mate.ID)
			}
		}
		removed, err := uc.ReservationRepo.SoftDeleteReservations(ids)
		if err != nil {
			return nil, err
		}
		uc.Metrics.RecordReservationsDeleted(float64(removed))
		if err := uc.Publisher.PublishReservationDeleted(domain.ReservationDeletedEvent{
			ProposalID: face.ProposalID,
			Count:      int(removed),
		}); err != nil {
			slog.Error("failed to publish reservation.deleted", "proposal_id", face.ProposalID, "error", err.Error())
		}
		return &allocdto.ToggleOutput{Removed: removed}, nil
	}

	status := domain.ReservationReserved
	if input.Bonus {
		status = domain.ReservationBonus
	}
	reservation := &domain.Reservation{
		SlotID:     slot.ID,
		FaceID:     face.ID,
		ProposalID: face.ProposalID,
		Period:     domain.CalendarPeriod{Start: face.PeriodStart, End: face.PeriodEnd},
		Status:     status,
	}
	if err := uc.ReservationRepo.CreateReservation(reservation); err != nil {
		return nil, err
	}

	uc.Metrics.RecordReservationCreated(string(status))
	if err := uc.Publisher.PublishReservationCreated(domain.ReservationCreatedEvent{
		ProposalID: face.ProposalID,
		Count:      1,
	}); err != nil {
		slog.Error("failed to publish reservation.created", "proposal_id", face.ProposalID, "error", err.Error())
	}

	return &allocdto.ToggleOutput{Created: reservation}, nil
}
