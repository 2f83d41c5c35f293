package models

import (
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

type FaceModel struct {
	ID          string             `gorm:"primaryKey;type:uuid"`
	ProposalID  string             `gorm:"type:uuid;index:idx_face_proposal"`
	City        string
	State       string
	Format      domain.Format
	MediumType  domain.MediumType
	Faces       int
	BonusFaces  int
	Cost        float64
	PublicRate  float64
	PeriodStart time.Time
	PeriodEnd   time.Time
	DGStatus    domain.TrackStatus `gorm:"column:dg_status;index:idx_face_dg_status"`
	DCMStatus   domain.TrackStatus `gorm:"column:dcm_status;index:idx_face_dcm_status"`
	DGReason    string             `gorm:"column:dg_reason"`
	DCMReason   string             `gorm:"column:dcm_reason"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
