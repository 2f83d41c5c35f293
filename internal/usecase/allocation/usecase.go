package allocation

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/metrics"
	allocdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/allocation"
)

type AllocationUsecase interface {
	Allocate(input *allocdto.AllocateInput) (*allocdto.AllocateOutput, error)
	ToggleReservation(input *allocdto.ToggleInput) (*allocdto.ToggleOutput, error)
	DeleteReservations(reservationIDs []string) (int64, error)
}

type DefaultAllocationUsecase struct {
	FaceRepo        domain.FaceRepository
	SlotRepo        domain.SlotRepository
	ReservationRepo domain.ReservationRepository
	Publisher       domain.EventPublisher
	Metrics         *metrics.CampaignMetrics
}

func NewDefaultAllocationUsecase(
	faceRepo domain.FaceRepository,
	slotRepo domain.SlotRepository,
	reservationRepo domain.ReservationRepository,
	publisher domain.EventPublisher,
	campaignMetrics *metrics.CampaignMetrics) *DefaultAllocationUsecase {

	return &DefaultAllocationUsecase{
		FaceRepo:        faceRepo,
		SlotRepo:        slotRepo,
		ReservationRepo: reservationRepo,
		Publisher:       publisher,
		Metrics:         campaignMetrics,
	}
}
