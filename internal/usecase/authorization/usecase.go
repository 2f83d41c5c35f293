package authorization

import (
	"context"
	"log/slog"
	"time"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/logger"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/metrics"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/criteria"
	authdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/authorization"
)

type AuthorizationUsecase interface {
	CheckPending(proposalID string) (*authdto.CheckPendingOutput, error)
	Approve(proposalID string, track domain.Track) (int64, error)
	Reject(proposalID string, track domain.Track, reason string) error
	Summarize(proposalID string) (*domain.AuthorizationSummary, error)
	GateActivation(proposalID string) error
	Reevaluate(faceID string) (*criteria.Verdict, error)
}

type DefaultAuthorizationUsecase struct {
	FaceRepo     domain.FaceRepository
	TaskRepo     domain.ApprovalTaskRepository
	ProposalRepo domain.ProposalRepository
	Evaluator    criteria.CriteriaEvaluator
	Publisher    domain.EventPublisher
	Audit        logger.DecisionAuditLogger
	Metrics      *metrics.CampaignMetrics
}

func NewDefaultAuthorizationUsecase(
	faceRepo domain.FaceRepository,
	taskRepo domain.ApprovalTaskRepository,
	proposalRepo domain.ProposalRepository,
	evaluator criteria.CriteriaEvaluator,
	publisher domain.EventPublisher,
	auditLogger logger.DecisionAuditLogger,
	campaignMetrics *metrics.CampaignMetrics) *DefaultAuthorizationUsecase {

	return &DefaultAuthorizationUsecase{
		FaceRepo:     faceRepo,
		TaskRepo:     taskRepo,
		ProposalRepo: proposalRepo,
		Evaluator:    evaluator,
		Publisher:    publisher,
		Audit:        auditLogger,
		Metrics:      campaignMetrics,
	}
}

func (uc *DefaultAuthorizationUsecase) auditDecision(proposalID string, track domain.Track, decision, reason string, count int64) {
	if uc.Audit == nil {
		return
	}
	if err := uc.Audit.LogDecision(context.Background(), logger.DecisionEvent{
		ProposalID: proposalID,
		Track:      string(track),
		Decision:   decision,
		Reason:     reason,
		FacesMoved: count,
		Timestamp:  time.Now(),
	}); err != nil {
		slog.Error("failed to audit authorization decision", "proposal_id", proposalID, "error", err.Error())
	}
}
