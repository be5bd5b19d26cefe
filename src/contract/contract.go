package contract

import (
	"time"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

// MoneynessRatioFor returns the fixed strike/spot ratio of a structure. ITM and OTM use the
// same numbers for calls and puts; the side-aware interpretation happens in the greeks.
func MoneynessRatioFor(structure eventmodels.Structure) float64 {
	switch structure {
	case eventmodels.StructureInTheMoney:
		return 90
	case eventmodels.StructureOutOfTheMoney:
		return 110
	default:
		return 100
	}
}

func StrikeFrom(spot float64, structure eventmodels.Structure) float64 {
	return utils.Round(spot*MoneynessRatioFor(structure)/100, 2)
}

// ExpiryFrom adds the tenor to today using calendar arithmetic. Month overflow rolls into
// the following month, e.g. Jan 31 + 1M is Mar 3 (or Mar 2 in a leap year).
func ExpiryFrom(tenor eventmodels.Tenor, today time.Time) string {
	expiry := today
	switch tenor {
	case eventmodels.Tenor2W:
		expiry = today.AddDate(0, 0, 14)
	case eventmodels.Tenor1M:
		expiry = today.AddDate(0, 1, 0)
	case eventmodels.Tenor2M:
		expiry = today.AddDate(0, 2, 0)
	case eventmodels.Tenor3M:
		expiry = today.AddDate(0, 3, 0)
	case eventmodels.Tenor6M:
		expiry = today.AddDate(0, 6, 0)
	case eventmodels.Tenor12M:
		expiry = today.AddDate(1, 0, 0)
	}

	return expiry.Format(eventmodels.ExpiryDateLayout)
}
