package inquiry

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/tables"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

var fixedNow = time.Date(2025, 7, 4, 10, 30, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewEngine(DefaultConfig(), opts...)
}

func quoteTables() eventmodels.Tables {
	return eventmodels.Tables{
		tables.DefaultSheetNames.Reference: eventmodels.Table{
			eventmodels.RowFromPairs("代码", "600519", "标的", "贵州茅台", "现价", "1,500.00"),
		},
		tables.DefaultSheetNames.VanillaQuote: eventmodels.Table{
			eventmodels.RowFromPairs(
				"证券代码", "600519",
				"证券简称", "贵州茅台",
				"1m(Exp.25/08/04）", "2.5",
				"1m( 90call )", "6.1",
				"1m( 110call )", "0.9",
			),
		},
	}
}

func request(code string, side eventmodels.OptionType, tenor eventmodels.Tenor, structure eventmodels.Structure) eventmodels.QuoteRequest {
	return eventmodels.QuoteRequest{
		UnderlyingCode: code,
		Side:           side,
		Tenor:          tenor,
		Structure:      structure,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

type fakeRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *fakeRecorder) Observe(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func TestSynthesizeUnknownUnderlying(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Synthesize(eventmodels.Tables{}, request("600000", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "600000", result.UnderlyingCode)
	assert.Equal(t, "股票600000", result.UnderlyingName)
	assert.Equal(t, 104.0, result.SpotPrice)
	assert.Equal(t, 104.0, result.Strike)
	assert.Equal(t, 100.0, result.MoneynessRatio)
	assert.Equal(t, 0.5, result.Delta)
	assert.Equal(t, "2025-08-04", result.Expiry)
	assert.Equal(t, 978, result.Volume)
	assert.Equal(t, 6082, result.OpenInterest)
	assert.Equal(t, DefaultQuoteSourceLabel, result.QuoteSource)
	assert.Equal(t, fixedNow, result.QuoteTimestamp)
	assert.Equal(t, eventmodels.QuoteSourceSynthesized, result.PriceSource)
	assert.Len(t, result.BrokerPanel, 6)
}

func TestSynthesizeAnchored(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney))
	require.NoError(t, err)

	assert.Equal(t, eventmodels.QuoteSourceAnchored, result.PriceSource)
	assert.Equal(t, "贵州茅台", result.UnderlyingName)
	assert.Equal(t, 1500.0, result.SpotPrice)
	assert.Equal(t, 1500.0, result.Strike)

	for _, q := range result.BrokerPanel {
		assert.GreaterOrEqual(t, q.Price, 2.5*0.85)
		assert.LessOrEqual(t, q.Price, 2.5*1.15)
	}

	assert.GreaterOrEqual(t, result.Last, 2.5*0.85)
	assert.LessOrEqual(t, result.Last, 2.5*1.15)

	t.Run("put falls back to synthesis when the sheet has no put column", func(t *testing.T) {
		put, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Put, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney))
		require.NoError(t, err)
		assert.Equal(t, eventmodels.QuoteSourceSynthesized, put.PriceSource)
	})

	t.Run("itm and otm anchor on their side columns", func(t *testing.T) {
		tbl := eventmodels.Tables{
			tables.DefaultSheetNames.VanillaQuote: eventmodels.Table{
				eventmodels.RowFromPairs(
					"证券代码", "600519",
					"1m( 90call )", "6.1",
					"1m( 110call )", "0.9",
					"1m( 110put )", "7.2",
					"1m( 90put )", "0.8",
					"1m(Exp.25/08/04）", "2.5",
				),
			},
		}

		cases := []struct {
			side      eventmodels.OptionType
			structure eventmodels.Structure
			base      float64
		}{
			{eventmodels.Call, eventmodels.StructureInTheMoney, 6.1},
			{eventmodels.Call, eventmodels.StructureOutOfTheMoney, 0.9},
			{eventmodels.Put, eventmodels.StructureInTheMoney, 7.2},
			{eventmodels.Put, eventmodels.StructureOutOfTheMoney, 0.8},
			{eventmodels.Call, eventmodels.StructureAtTheMoney, 2.5},
		}

		for _, tc := range cases {
			result, err := engine.Synthesize(tbl, request("600519", tc.side, eventmodels.Tenor1M, tc.structure))
			require.NoError(t, err)
			assert.Equal(t, eventmodels.QuoteSourceAnchored, result.PriceSource, "%s %s", tc.side, tc.structure)

			for _, q := range result.BrokerPanel {
				assert.GreaterOrEqual(t, q.Price, utils.Round(tc.base*0.85, 4), "%s %s", tc.side, tc.structure)
				assert.LessOrEqual(t, q.Price, utils.Round(tc.base*1.15, 4), "%s %s", tc.side, tc.structure)
			}
		}
	})
}

func TestSynthesizeInvariants(t *testing.T) {
	engine := newTestEngine()
	sides := []eventmodels.OptionType{eventmodels.Call, eventmodels.Put}
	structures := []eventmodels.Structure{eventmodels.StructureAtTheMoney, eventmodels.StructureInTheMoney, eventmodels.StructureOutOfTheMoney}

	for _, code := range []string{"600519", "000001"} {
		for _, side := range sides {
			for _, tenor := range eventmodels.Tenors {
				for _, structure := range structures {
					req := request(code, side, tenor, structure)
					result, err := engine.Synthesize(quoteTables(), req)
					require.NoError(t, err)

					assert.Equal(t, result.Bid, utils.Round(result.Last*0.95, 4), "%+v", req)
					assert.Equal(t, result.Ask, utils.Round(result.Last*1.05, 4), "%+v", req)
					assert.LessOrEqual(t, result.Bid, result.Last)
					assert.LessOrEqual(t, result.Last, result.Ask)
					assert.Len(t, result.BrokerPanel, 6)

					if side == eventmodels.Call {
						assert.True(t, result.Delta > 0 && result.Delta < 1)
					} else {
						assert.True(t, result.Delta < 0 && result.Delta > -1)
					}

					again, err := engine.Synthesize(quoteTables(), req)
					require.NoError(t, err)
					assert.Equal(t, result, again)
				}
			}
		}
	}
}

func TestSynthesizeGreekOrdering(t *testing.T) {
	engine := newTestEngine()

	t.Run("longer tenor has more vega", func(t *testing.T) {
		short, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Call, eventmodels.Tenor2W, eventmodels.StructureAtTheMoney))
		require.NoError(t, err)
		long, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Call, eventmodels.Tenor12M, eventmodels.StructureAtTheMoney))
		require.NoError(t, err)

		assert.Equal(t, 0.12, short.Vega)
		assert.Equal(t, 0.30, long.Vega)
	})

	t.Run("in the money call has more delta", func(t *testing.T) {
		itm, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureInTheMoney))
		require.NoError(t, err)
		otm, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureOutOfTheMoney))
		require.NoError(t, err)

		assert.Equal(t, 0.85, itm.Delta)
		assert.Equal(t, 0.30, otm.Delta)
		assert.Equal(t, 1350.0, itm.Strike)
		assert.Equal(t, 1650.0, otm.Strike)
	})
}

func TestSynthesizeCustom(t *testing.T) {
	engine := newTestEngine()

	t.Run("custom strike and expiry", func(t *testing.T) {
		req := request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureCustom)
		req.CustomStrike = floatPtr(1200)
		req.CustomExpiry = "2025-12-31"

		result, err := engine.Synthesize(quoteTables(), req)
		require.NoError(t, err)
		assert.Equal(t, 1200.0, result.Strike)
		assert.Equal(t, 80.0, result.MoneynessRatio)
		assert.Equal(t, "2025-12-31", result.Expiry)
		assert.Equal(t, eventmodels.QuoteSourceSynthesized, result.PriceSource)
	})

	t.Run("custom without expiry uses the tenor", func(t *testing.T) {
		req := request("600519", eventmodels.Put, eventmodels.Tenor3M, eventmodels.StructureCustom)
		req.CustomStrike = floatPtr(1500)

		result, err := engine.Synthesize(quoteTables(), req)
		require.NoError(t, err)
		assert.Equal(t, "2025-10-04", result.Expiry)
		assert.Equal(t, -0.5, result.Delta)
	})

	t.Run("missing or non-positive strike is rejected", func(t *testing.T) {
		for _, strike := range []*float64{nil, floatPtr(0), floatPtr(-5)} {
			req := request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureCustom)
			req.CustomStrike = strike

			result, err := engine.Synthesize(quoteTables(), req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, eventmodels.InvalidRequestErr)
		}
	})
}

func TestSynthesizeRejections(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		name     string
		req      eventmodels.QuoteRequest
		expected error
	}{
		{"empty code", request(" ", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney), eventmodels.InvalidRequestErr},
		{"unknown side", request("600519", "straddle", eventmodels.Tenor1M, eventmodels.StructureAtTheMoney), eventmodels.InvalidRequestErr},
		{"unknown tenor", request("600519", eventmodels.Call, "5Y", eventmodels.StructureAtTheMoney), eventmodels.InvalidRequestErr},
		{"unknown structure", request("600519", eventmodels.Call, eventmodels.Tenor1M, "deep"), eventmodels.InvalidRequestErr},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Synthesize(quoteTables(), tc.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	t.Run("snowball is unsupported", func(t *testing.T) {
		req := request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney)
		req.ProductType = eventmodels.ProductTypeSnowball

		result, err := engine.Synthesize(quoteTables(), req)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, eventmodels.UnsupportedProductErr)
	})
}

func TestSynthesizeRecoversFromPanic(t *testing.T) {
	recorder := &fakeRecorder{}
	engine := newTestEngine(WithRecorder(recorder), WithClock(func() time.Time { panic("clock failure") }))

	result, err := engine.Synthesize(quoteTables(), request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney))
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, eventmodels.InternalFaultErr))
	assert.Equal(t, []string{OutcomeFault}, recorder.outcomes)
}

func TestSynthesizeBatch(t *testing.T) {
	recorder := &fakeRecorder{}
	engine := newTestEngine(WithRecorder(recorder))

	reqs := []eventmodels.QuoteRequest{
		request("600519", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney),
		request("", eventmodels.Call, eventmodels.Tenor1M, eventmodels.StructureAtTheMoney),
		request("600000", eventmodels.Put, eventmodels.Tenor6M, eventmodels.StructureOutOfTheMoney),
	}

	results, errs := engine.SynthesizeBatch(quoteTables(), reqs)
	require.Len(t, results, 3)
	require.Len(t, errs, 3)

	assert.NoError(t, errs[0])
	assert.Equal(t, "600519", results[0].UnderlyingCode)
	assert.ErrorIs(t, errs[1], eventmodels.InvalidRequestErr)
	assert.Nil(t, results[1])
	assert.NoError(t, errs[2])
	assert.Equal(t, "600000", results[2].UnderlyingCode)

	single, err := engine.Synthesize(quoteTables(), reqs[2])
	require.NoError(t, err)
	assert.Equal(t, single, results[2])

	assert.ElementsMatch(t, []string{OutcomeAnchored, OutcomeRejected, OutcomeSynthesized, OutcomeSynthesized}, recorder.outcomes)
}

func TestListUnderlyings(t *testing.T) {
	engine := newTestEngine()

	underlyings := engine.ListUnderlyings(quoteTables())
	require.Len(t, underlyings, 1)
	assert.Equal(t, "600519", underlyings[0].Code)
	assert.Equal(t, 1500.0, underlyings[0].SpotPrice)
}
