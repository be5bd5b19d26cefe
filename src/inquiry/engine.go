package inquiry

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/brokers"
	"github.com/jiaming2012/option-inquiry/src/contract"
	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/greeks"
	"github.com/jiaming2012/option-inquiry/src/tables"
	"github.com/jiaming2012/option-inquiry/src/utils"
)

const (
	OutcomeAnchored    = "anchored"
	OutcomeSynthesized = "synthesized"
	OutcomeRejected    = "rejected"
	OutcomeFault       = "fault"
)

// Recorder observes the outcome of every synthesis call.
type Recorder interface {
	Observe(outcome string, elapsed time.Duration)
}

// Engine synthesizes option quotes. It holds configuration only; tables and requests are
// passed per call, so one Engine can serve concurrent callers.
type Engine struct {
	cfg      Config
	now      func() time.Time
	recorder Recorder
}

type Option func(*Engine)

// WithClock fixes the clock used for the quote timestamp and the expiry calculation.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg.withDefaults(),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Synthesize returns a complete quote for req, or a nil result and an error wrapping one of
// InvalidRequestErr, NotFoundErr, UnsupportedProductErr or InternalFaultErr. It never panics.
func (e *Engine) Synthesize(t eventmodels.Tables, req eventmodels.QuoteRequest) (result *eventmodels.OptionQuoteResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(requestFields(req)).Errorf("Engine.Synthesize: recovered from panic: %v", r)
			result = nil
			err = fmt.Errorf("Engine.Synthesize: %v: %w", r, eventmodels.InternalFaultErr)
		}

		e.observe(result, err, time.Since(start))
	}()

	return e.synthesize(t, req.Normalize())
}

func (e *Engine) synthesize(t eventmodels.Tables, req eventmodels.QuoteRequest) (*eventmodels.OptionQuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Product() == eventmodels.ProductTypeSnowball {
		return nil, fmt.Errorf("Engine.Synthesize: %s quotes: %w", req.Product(), eventmodels.UnsupportedProductErr)
	}

	policy, err := contract.NewPolicy(req)
	if err != nil {
		return nil, err
	}

	underlying := tables.FindUnderlying(t, e.cfg.Sheets, req.UnderlyingCode)
	if underlying.SpotPrice <= 0 {
		return nil, fmt.Errorf("Engine.Synthesize: no usable spot price for %s: %w", req.UnderlyingCode, eventmodels.NotFoundErr)
	}

	spot := underlying.SpotPrice
	strike := policy.Strike(spot)
	ratio := policy.Ratio(spot)

	panel, source := e.buildPanel(t, req, policy, underlying, strike)
	summary := brokers.Summarize(panel)
	g := greeks.Compute(req.Side, req.Tenor, ratio)
	seed := utils.CharCodeSeed(underlying.Code)
	now := e.now()

	return &eventmodels.OptionQuoteResult{
		UnderlyingCode:    underlying.Code,
		UnderlyingName:    underlying.Name,
		SpotPrice:         spot,
		Side:              req.Side,
		Tenor:             req.Tenor,
		Strike:            strike,
		MoneynessRatio:    utils.Round(ratio, 4),
		Expiry:            policy.Expiry(req.Tenor, now),
		Bid:               summary.Bid,
		Ask:               summary.Ask,
		Last:              summary.Last,
		Delta:             g.Delta,
		Gamma:             g.Gamma,
		Theta:             g.Theta,
		Vega:              g.Vega,
		ImpliedVolatility: summary.ImpliedVolatility,
		Volume:            100 + (seed*37)%5000,
		OpenInterest:      500 + (seed*53)%10000,
		QuoteSource:       e.cfg.QuoteSourceLabel,
		QuoteTimestamp:    now,
		PriceSource:       source,
		BrokerPanel:       panel,
	}, nil
}

// buildPanel anchors the panel to a real quote when the vanilla sheet has one and falls back
// to full synthesis otherwise. Custom strikes are never quoted in the sheet.
func (e *Engine) buildPanel(t eventmodels.Tables, req eventmodels.QuoteRequest, policy contract.Policy, underlying eventmodels.UnderlyingInfo, strike float64) (eventmodels.BrokerQuotes, eventmodels.QuoteSource) {
	if !policy.IsCustom() {
		quote, found := tables.FindQuotedPrice(t, e.cfg.Sheets, underlying.Code, req.Tenor, req.Side, req.Structure)
		if found {
			log.WithFields(requestFields(req)).WithField("column", quote.Column).Debugf("anchoring panel to quoted price %v", quote.Price)
			return brokers.Anchored(quote.Price, underlying.Code, req.Tenor, req.Side, policy.Ratio(underlying.SpotPrice)), eventmodels.QuoteSourceAnchored
		}

		log.WithFields(requestFields(req)).Debug("no quoted price found, synthesizing panel")
	}

	return brokers.Unanchored(underlying.Code, req.Tenor, req.Side, underlying.SpotPrice, strike), eventmodels.QuoteSourceSynthesized
}

// SynthesizeBatch quotes every request concurrently against the same read-only tables.
// Results and errors line up with reqs.
func (e *Engine) SynthesizeBatch(t eventmodels.Tables, reqs []eventmodels.QuoteRequest) ([]*eventmodels.OptionQuoteResult, []error) {
	results := make([]*eventmodels.OptionQuoteResult, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req eventmodels.QuoteRequest) {
			defer wg.Done()
			results[i], errs[i] = e.Synthesize(t, req)
		}(i, req)
	}

	wg.Wait()
	return results, errs
}

func (e *Engine) ListUnderlyings(t eventmodels.Tables) []eventmodels.UnderlyingInfo {
	return tables.ListUnderlyings(t, e.cfg.Sheets)
}

func (e *Engine) observe(result *eventmodels.OptionQuoteResult, err error, elapsed time.Duration) {
	if e.recorder == nil {
		return
	}

	outcome := OutcomeSynthesized
	switch {
	case errors.Is(err, eventmodels.InternalFaultErr):
		outcome = OutcomeFault
	case err != nil:
		outcome = OutcomeRejected
	case result != nil && result.PriceSource == eventmodels.QuoteSourceAnchored:
		outcome = OutcomeAnchored
	}

	e.recorder.Observe(outcome, elapsed)
}

func requestFields(req eventmodels.QuoteRequest) log.Fields {
	return log.Fields{
		"underlying": req.UnderlyingCode,
		"side":       req.Side,
		"tenor":      req.Tenor,
		"structure":  req.Structure,
	}
}
