package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := NewRegistry()

	r.Observe("anchored", time.Millisecond)
	r.Observe("anchored", 2*time.Millisecond)
	r.Observe("rejected", time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Quotes.WithLabelValues("anchored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Quotes.WithLabelValues("rejected")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.Quotes.WithLabelValues("fault")))
}

func TestGauges(t *testing.T) {
	r := NewRegistry()

	r.SetInquiryRecords(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.InquiryRecords))

	r.RecordWorkbookLoad(nil)
	r.RecordWorkbookLoad(errors.New("missing file"))
	r.RecordWorkbookLoad(nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.WorkbookLoads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.WorkbookLoads.WithLabelValues("error")))
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.Observe("synthesized", time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `option_inquiry_quotes_total{source="synthesized"} 1`)
	assert.Contains(t, string(body), "option_inquiry_synthesis_duration_seconds_bucket")
}
