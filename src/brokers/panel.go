// Package brokers synthesizes the per-broker quote panel. Every number is derived from the
// underlying code and broker codes, so equal inputs always give equal panels.
package brokers

import (
	"math"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/greeks"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

// Anchored spreads a real quoted price across the roster. ratio is the structure's
// moneyness ratio and drives the volatility smile.
func Anchored(basePrice float64, stockCode string, tenor eventmodels.Tenor, side eventmodels.OptionType, ratio float64) eventmodels.BrokerQuotes {
	stockSeed := utils.CharCodeSeed(stockCode)
	skew := greeks.IVSkewFactor(ratio, side)
	term := greeks.TermIVFactor(tenor)

	quotes := make(eventmodels.BrokerQuotes, 0, len(Roster))
	for i, b := range Roster {
		combined := CombinedSeed(stockSeed, b)
		price := basePrice * Variance(combined)
		iv := float64(4+i%3) * skew * term * IVJitter(combined)

		quotes = append(quotes, newQuote(b, price, iv))
	}

	return quotes
}

// Unanchored prices the contract from scratch when no real quote exists.
func Unanchored(stockCode string, tenor eventmodels.Tenor, side eventmodels.OptionType, spot, strike float64) eventmodels.BrokerQuotes {
	stockSeed := utils.CharCodeSeed(stockCode)
	ratio := PriceRatio(spot, strike)
	basePrice := TheoreticalPrice(stockSeed, tenor, side, spot, strike)
	skew := greeks.IVSkewFactor(ratio, side)
	term := greeks.TermIVFactor(tenor)

	quotes := make(eventmodels.BrokerQuotes, 0, len(Roster))
	for _, b := range Roster {
		combined := CombinedSeed(stockSeed, b)
		price := basePrice * Variance(combined) * moneynessAdjustment(side, ratio)
		iv := b.BaseIV * term * skew * IVJitter(combined)

		quotes = append(quotes, newQuote(b, price, iv))
	}

	return quotes
}

// PriceRatio is strike/spot*100, or 100 when either is unknown.
func PriceRatio(spot, strike float64) float64 {
	if spot > 0 && strike > 0 {
		return strike / spot * 100
	}

	return 100
}

// TheoreticalPrice is an intrinsic-plus-time-value rule of thumb. In-the-money contracts
// price their intrinsic ratio, the rest a seeded fraction of spot.
func TheoreticalPrice(stockSeed int, tenor eventmodels.Tenor, side eventmodels.OptionType, spot, strike float64) float64 {
	termFactor := greeks.TermPriceFactor(tenor)
	ratio := PriceRatio(spot, strike)

	if spot <= 0 {
		return float64(stockSeed%10+1) / 100 * termFactor * greeks.PriceFactor(ratio, side)
	}

	inTheMoney := ratio < 100
	intrinsic := (spot - strike) / spot
	if side == eventmodels.Put {
		inTheMoney = ratio > 100
		intrinsic = (strike - spot) / spot
	}

	if inTheMoney {
		return math.Max(math.Max(0, intrinsic)*termFactor*0.8, 0.01)
	}

	return float64(maxInt(5, stockSeed%15)) / 1000 * spot * termFactor
}

func moneynessAdjustment(side eventmodels.OptionType, ratio float64) float64 {
	switch {
	case greeks.IsDeepInTheMoney(side, ratio):
		return 1.2
	case greeks.IsDeepOutOfTheMoney(side, ratio):
		return 0.8
	default:
		return 1
	}
}

func newQuote(b Broker, price, iv float64) eventmodels.BrokerQuote {
	return eventmodels.BrokerQuote{
		BrokerID:          b.Code,
		Price:             utils.Round(price, 4),
		ImpliedVolatility: utils.FormatPercent(iv),
		DisplayColor:      b.Color,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
