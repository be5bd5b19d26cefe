package run

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

func TestExportToCsv(t *testing.T) {
	now := time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC)
	results := []*eventmodels.OptionQuoteResult{
		{
			UnderlyingCode:    "600519",
			UnderlyingName:    "贵州茅台",
			SpotPrice:         1500,
			Side:              eventmodels.Call,
			Tenor:             eventmodels.Tenor1M,
			Strike:            1500,
			MoneynessRatio:    100,
			Expiry:            "2025-08-04",
			Bid:               2.375,
			Last:              2.5,
			Ask:               2.625,
			ImpliedVolatility: "4.50%",
			Delta:             0.5,
			PriceSource:       eventmodels.QuoteSourceAnchored,
			QuoteTimestamp:    now,
		},
	}

	outDir := filepath.Join(t.TempDir(), "quotes")
	path, err := ExportToCsv(outDir, results, "inquiry", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "inquiry_2025-07-04_09-30-00.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "stock_code,stock_name,spot_price,option_type,term"))
	assert.Contains(t, lines[1], "600519,贵州茅台,1500,call,1M,1500,100,2025-08-04,2.375,2.5,2.625,4.50%")
	assert.Contains(t, lines[1], "anchored,2025-07-04T09:30:00Z")
}
