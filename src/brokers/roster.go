package brokers

import "github.com/jiaming2012/option-inquiry/src/utils"

type Broker struct {
	Code   string
	Color  string
	BaseIV float64
}

// Roster is the fixed, ordered set of brokers quoted on every panel.
var Roster = []Broker{
	{Code: "YAQZ", Color: "#E74C3C", BaseIV: 4.31},
	{Code: "YHQZ", Color: "#3498DB", BaseIV: 4.95},
	{Code: "ZXZZ", Color: "#2ECC71", BaseIV: 4.34},
	{Code: "ZSQH", Color: "#F39C12", BaseIV: 5.33},
	{Code: "ZJ", Color: "#9B59B6", BaseIV: 3.08},
	{Code: "GJQZ", Color: "#F1C40F", BaseIV: 4.70},
}

// CombinedSeed mixes the underlying seed with the broker code, in [0, 1000).
func CombinedSeed(stockSeed int, b Broker) int {
	return (stockSeed + utils.CharCodeSeed(b.Code)) % 1000
}

// Variance is the broker's price multiplier in [0.85, 1.15).
func Variance(combinedSeed int) float64 {
	return 0.85 + (float64(combinedSeed)/1000)*0.3
}

// IVJitter is the broker's volatility multiplier in [0.9, 1.098].
func IVJitter(combinedSeed int) float64 {
	return 0.9 + float64(combinedSeed%100)/500
}
