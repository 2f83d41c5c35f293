package models

import (
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

type ApprovalTaskModel struct {
	ID         string       `gorm:"primaryKey;type:uuid"`
	ProposalID string       `gorm:"type:uuid;index:idx_task_proposal"`
	Track      domain.Track `gorm:"index:idx_task_proposal"`
	Reason     string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
