package mappers

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainTask(model *models.ApprovalTaskModel) *domain.ApprovalTask {
	return &domain.ApprovalTask{
		ID:         model.ID,
		ProposalID: model.ProposalID,
		Track:      model.Track,
		Reason:     model.Reason,
		CreatedAt:  model.CreatedAt,
		ResolvedAt: model.ResolvedAt,
	}
}

func ToGORMTask(task *domain.ApprovalTask) *models.ApprovalTaskModel {
	return &models.ApprovalTaskModel{
		ID:         task.ID,
		ProposalID: task.ProposalID,
		Track:      task.Track,
		Reason:     task.Reason,
		CreatedAt:  task.CreatedAt,
		ResolvedAt: task.ResolvedAt,
	}
}
