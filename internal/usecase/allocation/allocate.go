package allocation

import (
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	allocdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/allocation"
)

// progressEvery controls how often an allocation batch reports progress.
const progressEvery = 5

type plannedRequest struct {
	req     allocdto.SlotRequest
	groupID *int64
}

// Allocate books one addressable unit per requested slot for the period.
// Grouping pairs flow/counter-flow requests at the same coordinates into a
// complete group under one freshly minted group id. Requests that cannot be
// placed are reported in Skipped; only repository failures abort the batch.
func (uc *DefaultAllocationUsecase) Allocate(input *allocdto.AllocateInput) (*allocdto.AllocateOutput, error) {
	if input.FaceID == "" {
		return nil, domain.NewValidationError("face_id", "face id is required")
	}
	if input.Period.End.Before(input.Period.Start) {
		return nil, domain.NewValidationError("period", "period end precedes start")
	}

	started := time.Now()

	face, err := uc.FaceRepo.GetFaceByID(input.FaceID)
	if err != nil {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	batchID := idGenerator()

	overlapping, err := uc.ReservationRepo.FindActiveOverlapping(input.Period)
	if err != nil {
		return nil, err
	}
	unavailable := make(map[string]bool, len(overlapping))
	for _, reservation := range overlapping {
		unavailable[reservation.SlotID] = true
	}

	planned, err := uc.planRequests(input)
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]bool)
	var created []*domain.Reservation
	var skipped []allocdto.SkippedSlot
	processed := 0
	total := len(planned)

	for _, pr := range planned {
		processed++

		units, err := uc.SlotRepo.FindUnitsAt(pr.req.Latitude, pr.req.Longitude, pr.req.Orientation)
		if err != nil {
			return nil, err
		}
		var unit *domain.InventorySlot
		for _, candidate := range units {
			if !unavailable[candidate.ID] && !claimed[candidate.ID] {
				unit = candidate
				break
			}
		}
		if unit == nil {
			skipped = append(skipped, allocdto.SkippedSlot{Request: pr.req, Reason: "no unit available for the requested period"})
			uc.Metrics.RecordReservationSkipped("unavailable")
			continue
		}

		existing, err := uc.ReservationRepo.FindActiveBySlotAndProposal(unit.ID, face.ProposalID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			skipped = append(skipped, allocdto.SkippedSlot{Request: pr.req, Reason: "already reserved for this proposal"})
			uc.Metrics.RecordReservationSkipped("duplicate")
			claimed[unit.ID] = true
			continue
		}

		status := domain.ReservationReserved
		if pr.req.Bonus {
			status = domain.ReservationBonus
		}
		reservation := &domain.Reservation{
			SlotID:     unit.ID,
			FaceID:     face.ID,
			ProposalID: face.ProposalID,
			Period:     input.Period,
			Status:     status,
			GroupID:    pr.groupID,
		}
		if err := uc.ReservationRepo.CreateReservation(reservation); err != nil {
			if domain.IsConflict(err) {
				// Lost the unit to a concurrent batch between the
				// availability read and the insert. Skip and continue.
				skipped = append(skipped, allocdto.SkippedSlot{Request: pr.req, Reason: "slot taken by a concurrent allocation"})
				uc.Metrics.RecordReservationSkipped("conflict")
				unavailable[unit.ID] = true
				continue
			}
			return nil, err
		}

		claimed[unit.ID] = true
		created = append(created, reservation)
		uc.Metrics.RecordReservationCreated(string(status))

		if len(created)%progressEvery == 0 {
			uc.publishProgress(batchID, face.ProposalID, processed, total, len(created))
		}
	}

	uc.publishProgress(batchID, face.ProposalID, processed, total, len(created))
	if len(created) > 0 {
		if err := uc.Publisher.PublishReservationCreated(domain.ReservationCreatedEvent{
			ProposalID: face.ProposalID,
			Count:      len(created),
		}); err != nil {
			slog.Error("failed to publish reservation.created", "proposal_id", face.ProposalID, "error", err.Error())
		}
	}
	uc.Metrics.ObserveAllocation(input.GroupingEnabled, started)

	return &allocdto.AllocateOutput{BatchID: batchID, Reservations: created, Skipped: skipped}, nil
}

// planRequests orders the batch: complete groups first, then individual
// requests, so group ids stay contiguous and runs are deterministic.
func (uc *DefaultAllocationUsecase) planRequests(input *allocdto.AllocateInput) ([]plannedRequest, error) {
	if !input.GroupingEnabled {
		planned := make([]plannedRequest, 0, len(input.Requests))
		for _, req := range input.Requests {
			planned = append(planned, plannedRequest{req: req})
		}
		return planned, nil
	}

	buckets := make(map[string][]int)
	var bucketOrder []string
	for i, req := range input.Requests {
		key := domain.CoordinateKey(req.Latitude, req.Longitude)
		if _, seen := buckets[key]; !seen {
			bucketOrder = append(bucketOrder, key)
		}
		buckets[key] = append(buckets[key], i)
	}

	var grouped, individual []plannedRequest
	for _, key := range bucketOrder {
		indices := buckets[key]
		hasFlow, hasCounter := false, false
		for _, i := range indices {
			switch input.Requests[i].Orientation {
			case domain.OrientationFlow:
				hasFlow = true
			case domain.OrientationCounterFlow:
				hasCounter = true
			}
		}
		if hasFlow && hasCounter {
			groupID, err := uc.ReservationRepo.NextGroupID()
			if err != nil {
				return nil, err
			}
			for _, i := range indices {
				grouped = append(grouped, plannedRequest{req: input.Requests[i], groupID: &groupID})
			}
		} else {
			for _, i := range indices {
				individual = append(individual, plannedRequest{req: input.Requests[i]})
			}
		}
	}

	return append(grouped, individual...), nil
}

func (uc *DefaultAllocationUsecase) publishProgress(batchID, proposalID string, processed, total, created int) {
	if err := uc.Publisher.PublishAllocationProgress(domain.AllocationProgressEvent{
		BatchID:    batchID,
		ProposalID: proposalID,
		Processed:  processed,
		Total:      total,
		Created:    created,
	}); err != nil {
		slog.Error("failed to publish allocation.progress", "batch_id", batchID, "error", err.Error())
	}
}
