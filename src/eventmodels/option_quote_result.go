package eventmodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type QuoteSource string

const (
	QuoteSourceAnchored    QuoteSource = "anchored"
	QuoteSourceSynthesized QuoteSource = "synthesized"
)

// OptionQuoteResult is a fully populated quote. It is built once per request and never mutated.
type OptionQuoteResult struct {
	UnderlyingCode    string       `json:"stockCode"`
	UnderlyingName    string       `json:"stockName"`
	SpotPrice         float64      `json:"currentPrice"`
	Side              OptionType   `json:"optionType"`
	Tenor             Tenor        `json:"term"`
	Strike            float64      `json:"strikePrice"`
	MoneynessRatio    float64      `json:"strikePriceRatio"`
	Expiry            string       `json:"expiryDate"`
	Bid               float64      `json:"bidPrice"`
	Ask               float64      `json:"askPrice"`
	Last              float64      `json:"lastPrice"`
	Delta             float64      `json:"delta"`
	Gamma             float64      `json:"gamma"`
	Theta             float64      `json:"theta"`
	Vega              float64      `json:"vega"`
	ImpliedVolatility string       `json:"impliedVolatility"`
	Volume            int          `json:"volume"`
	OpenInterest      int          `json:"openInterest"`
	QuoteSource       string       `json:"quoteSource"`
	QuoteTimestamp    time.Time    `json:"quoteTime"`
	PriceSource       QuoteSource  `json:"priceSource"`
	BrokerPanel       BrokerQuotes `json:"brokerQuotes"`
}

func (r OptionQuoteResult) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	display.WriteString(fmt.Sprintf("%s %s %s %s strike %s (%.2f%%) expiry %s\n",
		r.UnderlyingCode, r.UnderlyingName, r.Tenor, strings.ToUpper(string(r.Side)),
		p.Sprintf("%.2f", r.Strike), r.MoneynessRatio, r.Expiry))
	display.WriteString(fmt.Sprintf("spot %s  bid %.4f  last %.4f  ask %.4f  iv %s\n",
		p.Sprintf("%.2f", r.SpotPrice), r.Bid, r.Last, r.Ask, r.ImpliedVolatility))
	display.WriteString(fmt.Sprintf("delta %.4f  gamma %.4f  theta %.4f  vega %.4f\n", r.Delta, r.Gamma, r.Theta, r.Vega))

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Broker", "Price", "IV"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, q := range r.BrokerPanel {
		table.Append([]string{q.BrokerID, fmt.Sprintf("%.4f", q.Price), q.ImpliedVolatility})
	}

	table.Render()
	return display.String()
}
