package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DecisionEvent is one audit row for a manual authorization decision.
// Rows are append-only; the tracker writes them fire-and-forget.
type DecisionEvent struct {
	ID         uint `gorm:"primaryKey"`
	ProposalID string
	Track      string
	Decision   string
	Reason     string
	FacesMoved int64
	Timestamp  time.Time
}

type DecisionAuditLogger interface {
	LogDecision(ctx context.Context, event DecisionEvent) error
}

type PGDecisionAuditLogger struct {
	db *gorm.DB
}

func NewPGDecisionAuditLogger(db *gorm.DB) *PGDecisionAuditLogger {
	return &PGDecisionAuditLogger{db: db}
}

func (l *PGDecisionAuditLogger) LogDecision(ctx context.Context, event DecisionEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
