package repository

import (
	"errors"
	"fmt"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSlotRepository struct {
	DB *gorm.DB
}

func NewDefaultSlotRepository(db *gorm.DB) *DefaultSlotRepository {
	return &DefaultSlotRepository{DB: db}
}

func (r *DefaultSlotRepository) GetSlotByID(slotID string) (*domain.InventorySlot, error) {
	var model models.InventorySlotModel
	err := r.DB.First(&model, "id = ?", slotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("slot", slotID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find slot: %w", err)
	}

	return mappers.ToDomainSlot(&model), nil
}

func (r *DefaultSlotRepository) FindUnitsAt(lat, lng float64, orientation domain.Orientation) ([]*domain.InventorySlot, error) {
	var slotModels []models.InventorySlotModel
	if err := r.DB.
		Where("latitude = ? AND longitude = ? AND orientation = ? AND active = ?", lat, lng, orientation, true).
		Order("code ASC").
		Find(&slotModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find units: %w", err)
	}

	slots := make([]*domain.InventorySlot, len(slotModels))
	for i, slotModel := range slotModels {
		slots[i] = mappers.ToDomainSlot(&slotModel)
	}

	return slots, nil
}
