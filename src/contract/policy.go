package contract

import (
	"fmt"
	"time"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

// Policy resolves strike, ratio and expiry for one structure. ATM, ITM and OTM carry a
// fixed ratio; Custom carries the caller's strike and optional expiry.
type Policy struct {
	Structure    eventmodels.Structure
	fixedRatio   float64
	customStrike float64
	customExpiry string
}

func NewPolicy(req eventmodels.QuoteRequest) (Policy, error) {
	if req.Structure != eventmodels.StructureCustom {
		if err := req.Structure.Validate(); err != nil {
			return Policy{}, fmt.Errorf("contract.NewPolicy: %v: %w", err, eventmodels.InvalidRequestErr)
		}

		return Policy{
			Structure:  req.Structure,
			fixedRatio: MoneynessRatioFor(req.Structure),
		}, nil
	}

	if req.CustomStrike == nil || *req.CustomStrike <= 0 {
		return Policy{}, fmt.Errorf("contract.NewPolicy: custom structure requires a positive strike: %w", eventmodels.InvalidRequestErr)
	}

	return Policy{
		Structure:    eventmodels.StructureCustom,
		customStrike: *req.CustomStrike,
		customExpiry: req.CustomExpiry,
	}, nil
}

func (p Policy) IsCustom() bool {
	return p.Structure == eventmodels.StructureCustom
}

func (p Policy) Strike(spot float64) float64 {
	if p.IsCustom() {
		return p.customStrike
	}

	return utils.Round(spot*p.fixedRatio/100, 2)
}

// Ratio is the moneyness ratio used for greeks and the quoted result.
func (p Policy) Ratio(spot float64) float64 {
	if !p.IsCustom() {
		return p.fixedRatio
	}

	if spot <= 0 {
		return 100
	}

	return p.customStrike / spot * 100
}

func (p Policy) Expiry(tenor eventmodels.Tenor, today time.Time) string {
	if p.IsCustom() && p.customExpiry != "" {
		return p.customExpiry
	}

	return ExpiryFrom(tenor, today)
}
