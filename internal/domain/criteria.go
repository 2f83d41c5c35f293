package domain

type Format string

const (
	FormatBillboard Format = "BILLBOARD"
	FormatWall      Format = "WALL"
	FormatShelter   Format = "SHELTER"
	FormatUrban     Format = "URBAN"
)

// RequiresCriteria reports whether the format is subject to authorization
// criteria at all. Every other format is approved outright.
func (f Format) RequiresCriteria() bool {
	return f == FormatBillboard || f == FormatWall
}

type MediumType string

const (
	MediumTraditional MediumType = "TRADITIONAL"
	MediumDigital     MediumType = "DIGITAL"
)

type MarketBucket string

const (
	MarketCapital     MarketBucket = "CAPITAL"
	MarketGuadalajara MarketBucket = "GUADALAJARA"
	MarketMonterrey   MarketBucket = "MONTERREY"
	MarketOther       MarketBucket = "OTHER"
)

// Band is an optional inclusive numeric range. A nil bound is open on that
// side; a band with neither bound defined matches nothing.
type Band struct {
	Min *float64
	Max *float64
}

func (b Band) Defined() bool {
	return b.Min != nil || b.Max != nil
}

func (b Band) Contains(v float64) bool {
	if !b.Defined() {
		return false
	}
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// CriteriaRule holds the authorization thresholds for one
// (format, medium type, market bucket) combination.
type CriteriaRule struct {
	ID         string
	Format     Format
	MediumType MediumType
	Market     MarketBucket
	DGTariff   Band
	DGFaces    Band
	DCMTariff  Band
	DCMFaces   Band
	Active     bool
}

type CriteriaRepository interface {
	// FindActiveRule returns the single active rule for the key, or nil
	// when no rule applies.
	FindActiveRule(format Format, medium MediumType, market MarketBucket) (*CriteriaRule, error)
}
