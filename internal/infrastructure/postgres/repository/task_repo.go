package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultApprovalTaskRepository struct {
	DB *gorm.DB
}

func NewDefaultApprovalTaskRepository(db *gorm.DB) *DefaultApprovalTaskRepository {
	return &DefaultApprovalTaskRepository{DB: db}
}

func (r *DefaultApprovalTaskRepository) CreateTask(task *domain.ApprovalTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	model := mappers.ToGORMTask(task)
	if err := r.DB.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create approval task: %w", err)
	}
	task.CreatedAt = model.CreatedAt

	return nil
}

func (r *DefaultApprovalTaskRepository) FindOpenTasks(proposalID string) ([]*domain.ApprovalTask, error) {
	var taskModels []models.ApprovalTaskModel
	if err := r.DB.
		Where("proposal_id = ? AND resolved_at IS NULL", proposalID).
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find approval tasks: %w", err)
	}

	tasks := make([]*domain.ApprovalTask, len(taskModels))
	for i, taskModel := range taskModels {
		tasks[i] = mappers.ToDomainTask(&taskModel)
	}

	return tasks, nil
}

func (r *DefaultApprovalTaskRepository) ResolveTask(proposalID string, track domain.Track) error {
	return r.resolve(r.DB.Where("proposal_id = ? AND track = ? AND resolved_at IS NULL", proposalID, track))
}

func (r *DefaultApprovalTaskRepository) ResolveAllTasks(proposalID string) error {
	return r.resolve(r.DB.Where("proposal_id = ? AND resolved_at IS NULL", proposalID))
}

func (r *DefaultApprovalTaskRepository) resolve(query *gorm.DB) error {
	if err := query.Model(&models.ApprovalTaskModel{}).
		Update("resolved_at", time.Now()).Error; err != nil {
		return fmt.Errorf("failed to resolve approval tasks: %w", err)
	}
	return nil
}
