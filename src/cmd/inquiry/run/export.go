package run

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

type QuoteRow struct {
	StockCode         string  `csv:"stock_code"`
	StockName         string  `csv:"stock_name"`
	SpotPrice         float64 `csv:"spot_price"`
	OptionType        string  `csv:"option_type"`
	Term              string  `csv:"term"`
	Strike            float64 `csv:"strike"`
	StrikeRatio       float64 `csv:"strike_ratio"`
	Expiry            string  `csv:"expiry"`
	Bid               float64 `csv:"bid"`
	Last              float64 `csv:"last"`
	Ask               float64 `csv:"ask"`
	ImpliedVolatility string  `csv:"implied_volatility"`
	Delta             float64 `csv:"delta"`
	Gamma             float64 `csv:"gamma"`
	Theta             float64 `csv:"theta"`
	Vega              float64 `csv:"vega"`
	PriceSource       string  `csv:"price_source"`
	QuoteTime         string  `csv:"quote_time"`
}

func NewQuoteRow(r *eventmodels.OptionQuoteResult) *QuoteRow {
	return &QuoteRow{
		StockCode:         r.UnderlyingCode,
		StockName:         r.UnderlyingName,
		SpotPrice:         r.SpotPrice,
		OptionType:        string(r.Side),
		Term:              string(r.Tenor),
		Strike:            r.Strike,
		StrikeRatio:       r.MoneynessRatio,
		Expiry:            r.Expiry,
		Bid:               r.Bid,
		Last:              r.Last,
		Ask:               r.Ask,
		ImpliedVolatility: r.ImpliedVolatility,
		Delta:             r.Delta,
		Gamma:             r.Gamma,
		Theta:             r.Theta,
		Vega:              r.Vega,
		PriceSource:       string(r.PriceSource),
		QuoteTime:         r.QuoteTimestamp.Format(time.RFC3339),
	}
}

func ExportToCsv(outDir string, results []*eventmodels.OptionQuoteResult, outFilePrefix string, now time.Time) (string, error) {
	outFilePath := path.Join(outDir, fmt.Sprintf("%s_%s.csv", outFilePrefix, now.Format("2006-01-02_15-04-05")))

	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return "", fmt.Errorf("ExportToCsv: failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outFilePath)
	if err != nil {
		return "", fmt.Errorf("ExportToCsv: failed to create file: %w", err)
	}
	defer file.Close()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		return gocsv.NewSafeCSVWriter(csv.NewWriter(out))
	})

	rows := make([]*QuoteRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, NewQuoteRow(r))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("ExportToCsv: failed to write to file: %w", err)
	}

	return outFilePath, nil
}
