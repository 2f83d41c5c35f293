package repository

import (
	"errors"
	"fmt"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCriteriaRepository struct {
	DB *gorm.DB
}

func NewDefaultCriteriaRepository(db *gorm.DB) *DefaultCriteriaRepository {
	return &DefaultCriteriaRepository{DB: db}
}

func (r *DefaultCriteriaRepository) FindActiveRule(format domain.Format, medium domain.MediumType, market domain.MarketBucket) (*domain.CriteriaRule, error) {
	var model models.CriteriaRuleModel
	err := r.DB.
		Where("format = ? AND medium_type = ? AND market = ? AND active = ?", format, medium, market, true).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find criteria rule: %w", err)
	}

	return mappers.ToDomainCriteriaRule(&model), nil
}
