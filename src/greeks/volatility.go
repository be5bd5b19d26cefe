package greeks

import "github.com/jiaming2012/option-inquiry/src/eventmodels"

// IVSkewFactor models the smile: 1.0 on the 95-105 plateau, rising toward the wings, with
// out-of-the-money puts carrying the steepest wing.
func IVSkewFactor(ratio float64, side eventmodels.OptionType) float64 {
	if side == eventmodels.Put {
		switch {
		case ratio < 90:
			return 1.35
		case ratio < 95:
			return 1.2
		case ratio < 105:
			return 1.0
		case ratio < 110:
			return 1.15
		default:
			return 1.25
		}
	}

	switch {
	case ratio < 90:
		return 1.3
	case ratio < 95:
		return 1.15
	case ratio < 105:
		return 1.0
	case ratio < 110:
		return 1.1
	default:
		return 1.25
	}
}

func TermIVFactor(tenor eventmodels.Tenor) float64 {
	switch tenor {
	case eventmodels.Tenor2W:
		return 0.85
	case eventmodels.Tenor1M:
		return 1.0
	case eventmodels.Tenor2M:
		return 1.1
	case eventmodels.Tenor3M:
		return 1.2
	case eventmodels.Tenor6M:
		return 1.35
	case eventmodels.Tenor12M:
		return 1.5
	default:
		return 1.0
	}
}

func TermPriceFactor(tenor eventmodels.Tenor) float64 {
	switch tenor {
	case eventmodels.Tenor2W:
		return 0.5
	case eventmodels.Tenor1M:
		return 1
	case eventmodels.Tenor2M:
		return 1.5
	case eventmodels.Tenor3M:
		return 1.8
	case eventmodels.Tenor6M:
		return 2.5
	case eventmodels.Tenor12M:
		return 3.5
	default:
		return 1
	}
}

// PriceFactor scales a spot-less price estimate by moneyness.
func PriceFactor(ratio float64, side eventmodels.OptionType) float64 {
	if side == eventmodels.Put {
		switch {
		case ratio < 85:
			return 0.5
		case ratio < 95:
			return 0.7
		case ratio < 105:
			return 1.0
		case ratio < 115:
			return 1.4
		default:
			return 1.8
		}
	}

	switch {
	case ratio < 85:
		return 1.8
	case ratio < 95:
		return 1.4
	case ratio < 105:
		return 1.0
	case ratio < 115:
		return 0.7
	default:
		return 0.5
	}
}
