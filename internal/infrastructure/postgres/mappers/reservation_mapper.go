package mappers

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainReservation(model *models.ReservationModel) *domain.Reservation {
	reservation := &domain.Reservation{
		ID:         model.ID,
		SlotID:     model.SlotID,
		FaceID:     model.FaceID,
		ProposalID: model.ProposalID,
		Period:     domain.CalendarPeriod{Start: model.PeriodStart, End: model.PeriodEnd},
		Status:     model.Status,
		GroupID:    model.GroupID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
	if model.DeletedAt.Valid {
		deletedAt := model.DeletedAt.Time
		reservation.DeletedAt = &deletedAt
	}
	return reservation
}

func ToGORMReservation(reservation *domain.Reservation) *models.ReservationModel {
	return &models.ReservationModel{
		ID:          reservation.ID,
		SlotID:      reservation.SlotID,
		FaceID:      reservation.FaceID,
		ProposalID:  reservation.ProposalID,
		PeriodStart: reservation.Period.Start,
		PeriodEnd:   reservation.Period.End,
		Status:      reservation.Status,
		GroupID:     reservation.GroupID,
		CreatedAt:   reservation.CreatedAt,
		UpdatedAt:   reservation.UpdatedAt,
	}
}
