package eventmodels

type BrokerQuote struct {
	BrokerID          string  `json:"broker"`
	Price             float64 `json:"price"`
	ImpliedVolatility string  `json:"impliedVolatility"`
	DisplayColor      string  `json:"color,omitempty"`
}

type BrokerQuotes []BrokerQuote

func (q BrokerQuotes) Prices() []float64 {
	prices := make([]float64, len(q))
	for i, quote := range q {
		prices[i] = quote.Price
	}

	return prices
}
