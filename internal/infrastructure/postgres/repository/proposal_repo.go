package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProposalRepository struct {
	DB *gorm.DB
}

func NewDefaultProposalRepository(db *gorm.DB) *DefaultProposalRepository {
	return &DefaultProposalRepository{DB: db}
}

func (r *DefaultProposalRepository) GetProposalByID(proposalID string) (*domain.Proposal, error) {
	var model models.ProposalModel
	err := r.DB.First(&model, "id = ?", proposalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("proposal", proposalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	return &domain.Proposal{
		ID:        model.ID,
		ClientID:  model.ClientID,
		Name:      model.Name,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

type DefaultPeriodRepository struct {
	DB *gorm.DB
}

func NewDefaultPeriodRepository(db *gorm.DB) *DefaultPeriodRepository {
	return &DefaultPeriodRepository{DB: db}
}

func (r *DefaultPeriodRepository) CurrentPeriod(date time.Time) (*domain.CalendarPeriod, error) {
	var model models.BillingPeriodModel
	err := r.DB.
		Where("starts_at <= ? AND ends_at >= ?", date, date).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("billing period", date.Format("2006-01-02"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find billing period: %w", err)
	}

	return &domain.CalendarPeriod{Start: model.StartsAt, End: model.EndsAt}, nil
}
