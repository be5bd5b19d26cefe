package brokers

import (
	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

// Summary is the panel aggregate every result is priced from. Bid and Ask are always derived
// from Last, never computed independently.
type Summary struct {
	Last              float64
	Bid               float64
	Ask               float64
	ImpliedVolatility string
}

func Summarize(panel eventmodels.BrokerQuotes) Summary {
	last := AveragePrice(panel)
	return Summary{
		Last:              last,
		Bid:               utils.Round(last*0.95, 4),
		Ask:               utils.Round(last*1.05, 4),
		ImpliedVolatility: AverageIV(panel),
	}
}

func AveragePrice(panel eventmodels.BrokerQuotes) float64 {
	mean, err := stats.Mean(panel.Prices())
	if err != nil {
		return 0
	}

	return utils.Round(mean, 4)
}

// AverageIV averages the panel's percentage strings into another percentage string.
func AverageIV(panel eventmodels.BrokerQuotes) string {
	ivs := make([]float64, 0, len(panel))
	for _, q := range panel {
		ivs = append(ivs, utils.ParsePercent(q.ImpliedVolatility))
	}

	mean, err := stats.Mean(ivs)
	if err != nil {
		return utils.FormatPercent(0)
	}

	return utils.FormatPercent(mean)
}
