package eventmodels

type UnderlyingInfo struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	SpotPrice float64 `json:"price"`
	Synthetic bool    `json:"synthetic"`
}
