package mappers

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainCriteriaRule(model *models.CriteriaRuleModel) *domain.CriteriaRule {
	return &domain.CriteriaRule{
		ID:         model.ID,
		Format:     model.Format,
		MediumType: model.MediumType,
		Market:     model.Market,
		DGTariff:   domain.Band{Max: model.TariffMaxDG},
		DGFaces:    domain.Band{Max: model.FacesMaxDG},
		DCMTariff:  domain.Band{Min: model.TariffMinDCM, Max: model.TariffMaxDCM},
		DCMFaces:   domain.Band{Min: model.FacesMinDCM, Max: model.FacesMaxDCM},
		Active:     model.Active,
	}
}
