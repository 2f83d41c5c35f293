package repository

import (
	"errors"
	"fmt"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/mappers"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultFaceRepository struct {
	DB *gorm.DB
}

func NewDefaultFaceRepository(db *gorm.DB) *DefaultFaceRepository {
	return &DefaultFaceRepository{DB: db}
}

func (r *DefaultFaceRepository) GetFaceByID(faceID string) (*domain.FaceRequest, error) {
	var model models.FaceModel
	err := r.DB.First(&model, "id = ?", faceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("face", faceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find face: %w", err)
	}

	return mappers.ToDomainFace(&model), nil
}

func (r *DefaultFaceRepository) GetFacesByProposalID(proposalID string) ([]*domain.FaceRequest, error) {
	var faceModels []models.FaceModel
	if err := r.DB.
		Where("proposal_id = ?", proposalID).
		Order("created_at ASC").
		Find(&faceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find faces: %w", err)
	}

	faces := make([]*domain.FaceRequest, len(faceModels))
	for i, faceModel := range faceModels {
		faces[i] = mappers.ToDomainFace(&faceModel)
	}

	return faces, nil
}

func (r *DefaultFaceRepository) UpdateTrackStatuses(proposalID string, track domain.Track, from, to domain.TrackStatus, reason string) (int64, error) {
	statusColumn, reasonColumn := trackColumns(track)

	updates := map[string]interface{}{statusColumn: to}
	if reason != "" {
		updates[reasonColumn] = reason
	}

	result := r.DB.Model(&models.FaceModel{}).
		Where("proposal_id = ?", proposalID).
		Where(statusColumn+" = ?", from).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update track statuses: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *DefaultFaceRepository) SaveVerdict(faceID string, dg, dcm domain.TrackStatus, dgReason, dcmReason string) error {
	result := r.DB.Model(&models.FaceModel{}).
		Where("id = ?", faceID).
		Updates(map[string]interface{}{
			"dg_status":  dg,
			"dcm_status": dcm,
			"dg_reason":  dgReason,
			"dcm_reason": dcmReason,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save verdict: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("face", faceID)
	}

	return nil
}

func trackColumns(track domain.Track) (status, reason string) {
	if track == domain.TrackDCM {
		return "dcm_status", "dcm_reason"
	}
	return "dg_status", "dg_reason"
}
