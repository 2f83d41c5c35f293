package mappers

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainSlot(model *models.InventorySlotModel) *domain.InventorySlot {
	return &domain.InventorySlot{
		ID:          model.ID,
		Code:        model.Code,
		City:        model.City,
		State:       model.State,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Format:      model.Format,
		Orientation: model.Orientation,
		Active:      model.Active,
	}
}
