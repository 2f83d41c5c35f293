package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReservationRepository struct {
	DB *gorm.DB
}

func NewDefaultReservationRepository(db *gorm.DB) *DefaultReservationRepository {
	return &DefaultReservationRepository{DB: db}
}

func (r *DefaultReservationRepository) CreateReservation(reservation *domain.Reservation) error {
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	model := mappers.ToGORMReservation(reservation)
	if err := r.DB.Create(model).Error; err != nil {
		if isAvailabilityViolation(err) {
			return domain.NewConflictError(fmt.Sprintf("slot %s already reserved for an overlapping period", reservation.SlotID))
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	reservation.CreatedAt = model.CreatedAt
	reservation.UpdatedAt = model.UpdatedAt

	return nil
}

// isAvailabilityViolation matches the unique key and the overlapping-period
// exclusion constraint installed by migration 0001.
func isAvailabilityViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}

func (r *DefaultReservationRepository) GetReservationByID(reservationID string) (*domain.Reservation, error) {
	var model models.ReservationModel
	err := r.DB.Unscoped().First(&model, "id = ?", reservationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("reservation", reservationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return mappers.ToDomainReservation(&model), nil
}

func (r *DefaultReservationRepository) FindActiveOverlapping(period domain.CalendarPeriod) ([]*domain.Reservation, error) {
	var reservationModels []models.ReservationModel
	if err := r.DB.
		Where("period_start <= ? AND period_end >= ?", period.End, period.Start).
		Find(&reservationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find overlapping reservations: %w", err)
	}

	return toDomainReservations(reservationModels), nil
}

func (r *DefaultReservationRepository) FindActiveByProposalID(proposalID string) ([]*domain.Reservation, error) {
	var reservationModels []models.ReservationModel
	if err := r.DB.
		Where("proposal_id = ?", proposalID).
		Find(&reservationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find proposal reservations: %w", err)
	}

	return toDomainReservations(reservationModels), nil
}

func (r *DefaultReservationRepository) FindActiveBySlotAndProposal(slotID, proposalID string) (*domain.Reservation, error) {
	var model models.ReservationModel
	err := r.DB.
		Where("slot_id = ? AND proposal_id = ?", slotID, proposalID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return mappers.ToDomainReservation(&model), nil
}

func (r *DefaultReservationRepository) FindActiveByGroupID(groupID int64) ([]*domain.Reservation, error) {
	var reservationModels []models.ReservationModel
	if err := r.DB.
		Where("group_id = ?", groupID).
		Find(&reservationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find group reservations: %w", err)
	}

	return toDomainReservations(reservationModels), nil
}

func (r *DefaultReservationRepository) SoftDeleteReservations(reservationIDs []string) (int64, error) {
	result := r.DB.Where("id IN (?)", reservationIDs).Delete(&models.ReservationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reservations: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// NextGroupID draws from a dedicated postgres sequence so concurrent batches
// can never mint the same id.
func (r *DefaultReservationRepository) NextGroupID() (int64, error) {
	var groupID int64
	if err := r.DB.Raw("SELECT nextval('reservation_group_seq')").Scan(&groupID).Error; err != nil {
		return 0, fmt.Errorf("failed to mint group id: %w", err)
	}

	return groupID, nil
}

func toDomainReservations(reservationModels []models.ReservationModel) []*domain.Reservation {
	reservations := make([]*domain.Reservation, len(reservationModels))
	for i, reservationModel := range reservationModels {
		reservations[i] = mappers.ToDomainReservation(&reservationModel)
	}
	return reservations
}
