// Package greeks approximates option sensitivities from fixed lookup tables keyed by tenor,
// moneyness ratio (strike / spot * 100) and side. Nothing here is derived from a pricing
// model; the tables are design constants.
package greeks

import (
	"math"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

func Compute(side eventmodels.OptionType, tenor eventmodels.Tenor, ratio float64) Greeks {
	return Greeks{
		Delta: Delta(side, ratio),
		Gamma: Gamma(tenor, ratio),
		Theta: Theta(tenor, ratio, side),
		Vega:  Vega(tenor, ratio),
	}
}

var callDeltas = [9]float64{0.95, 0.85, 0.70, 0.60, 0.50, 0.40, 0.30, 0.15, 0.05}

// deltaBucket maps a ratio onto the nine delta buckets. The interior breakpoints are
// inclusive upper bounds; the outer edges are ratio < 80 and ratio >= 120.
func deltaBucket(ratio float64) int {
	switch {
	case ratio < 80:
		return 0
	case ratio <= 90:
		return 1
	case ratio <= 95:
		return 2
	case ratio <= 98:
		return 3
	case ratio <= 102:
		return 4
	case ratio <= 105:
		return 5
	case ratio <= 110:
		return 6
	case ratio < 120:
		return 7
	default:
		return 8
	}
}

// Delta is a nine-bucket step function. Put deltas mirror the call table.
func Delta(side eventmodels.OptionType, ratio float64) float64 {
	bucket := deltaBucket(ratio)
	if side == eventmodels.Put {
		return -callDeltas[len(callDeltas)-1-bucket]
	}

	return callDeltas[bucket]
}

// ProximityFactor shrinks gamma, theta and vega as the strike moves away from the money.
func ProximityFactor(ratio float64) float64 {
	distance := math.Abs(ratio - 100)
	switch {
	case distance <= 2:
		return 1.0
	case distance <= 5:
		return 0.9
	case distance <= 10:
		return 0.7
	default:
		return 0.5
	}
}

func Gamma(tenor eventmodels.Tenor, ratio float64) float64 {
	base := 0.10
	switch tenor {
	case eventmodels.Tenor2W:
		base = 0.18
	case eventmodels.Tenor1M:
		base = 0.15
	case eventmodels.Tenor2M:
		base = 0.12
	case eventmodels.Tenor3M:
		base = 0.09
	case eventmodels.Tenor6M:
		base = 0.06
	case eventmodels.Tenor12M:
		base = 0.03
	}

	return utils.Round(base*ProximityFactor(ratio), 4)
}

// Theta is negative except for deep in-the-money contracts, which carry a small positive value.
func Theta(tenor eventmodels.Tenor, ratio float64, side eventmodels.OptionType) float64 {
	base := -0.02
	switch tenor {
	case eventmodels.Tenor2W:
		base = -0.05
	case eventmodels.Tenor1M:
		base = -0.04
	case eventmodels.Tenor2M:
		base = -0.03
	case eventmodels.Tenor3M:
		base = -0.025
	case eventmodels.Tenor6M:
		base = -0.015
	case eventmodels.Tenor12M:
		base = -0.01
	}

	if IsDeepInTheMoney(side, ratio) {
		return utils.Round(math.Abs(base)*0.1, 4)
	}

	return utils.Round(base*ProximityFactor(ratio), 4)
}

func Vega(tenor eventmodels.Tenor, ratio float64) float64 {
	base := 0.20
	switch tenor {
	case eventmodels.Tenor2W:
		base = 0.12
	case eventmodels.Tenor1M:
		base = 0.15
	case eventmodels.Tenor2M:
		base = 0.18
	case eventmodels.Tenor3M:
		base = 0.21
	case eventmodels.Tenor6M:
		base = 0.25
	case eventmodels.Tenor12M:
		base = 0.30
	}

	return utils.Round(base*ProximityFactor(ratio), 4)
}

// IsDeepInTheMoney: calls below 80, puts above 120.
func IsDeepInTheMoney(side eventmodels.OptionType, ratio float64) bool {
	if side == eventmodels.Put {
		return ratio > 120
	}

	return ratio < 80
}

// IsDeepOutOfTheMoney: calls above 120, puts below 80.
func IsDeepOutOfTheMoney(side eventmodels.OptionType, ratio float64) bool {
	if side == eventmodels.Put {
		return ratio < 80
	}

	return ratio > 120
}
