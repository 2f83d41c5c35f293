package mappers

import (
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/infrastructure/postgres/models"
)

func ToDomainFace(model *models.FaceModel) *domain.FaceRequest {
	return &domain.FaceRequest{
		ID:          model.ID,
		ProposalID:  model.ProposalID,
		City:        model.City,
		State:       model.State,
		Format:      model.Format,
		MediumType:  model.MediumType,
		Faces:       model.Faces,
		BonusFaces:  model.BonusFaces,
		Cost:        model.Cost,
		PublicRate:  model.PublicRate,
		PeriodStart: model.PeriodStart,
		PeriodEnd:   model.PeriodEnd,
		DGStatus:    model.DGStatus,
		DCMStatus:   model.DCMStatus,
		DGReason:    model.DGReason,
		DCMReason:   model.DCMReason,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMFace(face *domain.FaceRequest) *models.FaceModel {
	return &models.FaceModel{
		ID:          face.ID,
		ProposalID:  face.ProposalID,
		City:        face.City,
		State:       face.State,
		Format:      face.Format,
		MediumType:  face.MediumType,
		Faces:       face.Faces,
		BonusFaces:  face.BonusFaces,
		Cost:        face.Cost,
		PublicRate:  face.PublicRate,
		PeriodStart: face.PeriodStart,
		PeriodEnd:   face.PeriodEnd,
		DGStatus:    face.DGStatus,
		DCMStatus:   face.DCMStatus,
		DGReason:    face.DGReason,
		DCMReason:   face.DCMReason,
		CreatedAt:   face.CreatedAt,
		UpdatedAt:   face.UpdatedAt,
	}
}
