package models

import (
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

type CriteriaRuleModel struct {
	ID           string              `gorm:"primaryKey;type:uuid"`
	Format       domain.Format       `gorm:"index:idx_criteria_key"`
	MediumType   domain.MediumType   `gorm:"index:idx_criteria_key"`
	Market       domain.MarketBucket `gorm:"index:idx_criteria_key"`
	TariffMaxDG  *float64            `gorm:"column:tariff_max_dg"`
	FacesMaxDG   *float64            `gorm:"column:faces_max_dg"`
	TariffMinDCM *float64            `gorm:"column:tariff_min_dcm"`
	TariffMaxDCM *float64            `gorm:"column:tariff_max_dcm"`
	FacesMinDCM  *float64            `gorm:"column:faces_min_dcm"`
	FacesMaxDCM  *float64            `gorm:"column:faces_max_dcm"`
	Active       bool                `gorm:"index:idx_criteria_key"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
