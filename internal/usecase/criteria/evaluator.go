package criteria

import (
	"fmt"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
)

// FaceTerms carries the commercial terms of one face request that drive the
// authorization verdict.
type FaceTerms struct {
	City       string
	State      string
	Format     domain.Format
	MediumType domain.MediumType
	Faces      int
	BonusFaces int
	Cost       float64
}

func TermsFromFace(face *domain.FaceRequest) FaceTerms {
	return FaceTerms{
		City:       face.City,
		State:      face.State,
		Format:     face.Format,
		MediumType: face.MediumType,
		Faces:      face.Faces,
		BonusFaces: face.BonusFaces,
		Cost:       face.Cost,
	}
}

// Verdict is the dual-track authorization outcome for one face.
type Verdict struct {
	DGStatus        domain.TrackStatus
	DCMStatus       domain.TrackStatus
	EffectiveTariff float64
	TotalFaces      int
	DGReason        string
	DCMReason       string
}

type CriteriaEvaluator interface {
	Evaluate(terms FaceTerms) (*Verdict, error)
}

type DefaultCriteriaEvaluator struct {
	CriteriaRepo domain.CriteriaRepository
}

func NewDefaultCriteriaEvaluator(criteriaRepo domain.CriteriaRepository) *DefaultCriteriaEvaluator {
	return &DefaultCriteriaEvaluator{CriteriaRepo: criteriaRepo}
}

// Evaluate decides, per approval track, whether the face needs sign-off.
// Both tracks are judged independently against the single active rule for
// (format, medium, market); no rule or a non-criteria format approves both.
func (e *DefaultCriteriaEvaluator) Evaluate(terms FaceTerms) (*Verdict, error) {
	if err := validateTerms(terms); err != nil {
		return nil, err
	}

	totalFaces := terms.Faces + terms.BonusFaces
	effectiveTariff := 0.0
	if totalFaces > 0 {
		effectiveTariff = terms.Cost / float64(totalFaces)
	}

	verdict := &Verdict{
		DGStatus:        domain.StatusApproved,
		DCMStatus:       domain.StatusApproved,
		EffectiveTariff: effectiveTariff,
		TotalFaces:      totalFaces,
	}

	if !terms.Format.RequiresCriteria() {
		return verdict, nil
	}

	medium := terms.MediumType
	if medium == "" {
		medium = domain.MediumTraditional
	}
	market := NormalizeMarket(terms.City, terms.State)

	rule, err := e.CriteriaRepo.FindActiveRule(terms.Format, medium, market)
	if err != nil {
		return nil, fmt.Errorf("criteria lookup: %w", err)
	}
	if rule == nil {
		return verdict, nil
	}

	if rule.DGTariff.Contains(effectiveTariff) {
		verdict.DGStatus = domain.StatusPending
		verdict.DGReason = fmt.Sprintf("effective tariff %.2f at or below DG limit", effectiveTariff)
	} else if rule.DGFaces.Contains(float64(totalFaces)) {
		verdict.DGStatus = domain.StatusPending
		verdict.DGReason = fmt.Sprintf("face count %d at or below DG limit", totalFaces)
	}

	if rule.DCMTariff.Contains(effectiveTariff) {
		verdict.DCMStatus = domain.StatusPending
		verdict.DCMReason = fmt.Sprintf("effective tariff %.2f inside DCM band", effectiveTariff)
	} else if rule.DCMFaces.Contains(float64(totalFaces)) {
		verdict.DCMStatus = domain.StatusPending
		verdict.DCMReason = fmt.Sprintf("face count %d inside DCM band", totalFaces)
	}

	return verdict, nil
}

func validateTerms(terms FaceTerms) error {
	if terms.Format == "" {
		return domain.NewValidationError("format", "format is required")
	}
	if terms.Faces < 0 || terms.BonusFaces < 0 {
		return domain.NewValidationError("faces", "face counts must not be negative")
	}
	if terms.Cost < 0 {
		return domain.NewValidationError("cost", "cost must not be negative")
	}
	return nil
}
