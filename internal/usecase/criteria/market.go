package criteria

import (
	"strings"
	"unicode"

	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Market names arrive free-form from the sales side, with or without accents,
// so matching folds diacritics before comparing.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return folded
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(foldAccents(s)))
}

var federalDistrictNames = []string{
	"distrito federal",
	"ciudad de mexico",
	"cdmx",
	"d.f.",
	"df",
}

// NormalizeMarket buckets a free-form city/state pair into one of the
// principal markets. A federal-district state forces the capital bucket no
// matter what the city string says.
func NormalizeMarket(city, state string) domain.MarketBucket {
	st := normalizeName(state)
	for _, name := range federalDistrictNames {
		if st == name || strings.HasPrefix(st, name+" ") {
			return domain.MarketCapital
		}
	}

	c := normalizeName(city)
	switch {
	case strings.HasPrefix(c, "mexico") || strings.Contains(c, "ciudad de mexico") || c == "cdmx":
		return domain.MarketCapital
	case strings.Contains(c, "guadalajara"):
		return domain.MarketGuadalajara
	case strings.Contains(c, "monterrey"):
		return domain.MarketMonterrey
	}
	return domain.MarketOther
}
