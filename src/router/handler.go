package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
	"github.com/jiaming2012/option-inquiry/src/ingest"
	"github.com/jiaming2012/option-inquiry/src/inquiry"
	"github.com/jiaming2012/option-inquiry/src/metrics"
)

type errorResponse struct {
	Type string `json:"type"`
	Msg  string `json:"message"`
}

func NewErrorResponse(errType string, message string) *errorResponse {
	return &errorResponse{
		Type: errType,
		Msg:  message,
	}
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("SetResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(errType string, statusCode int, err error, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := NewErrorResponse(errType, err.Error())
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		return encodeErr
	}

	return nil
}

// setError maps web errors and engine sentinels onto status codes.
func setError(err error, w http.ResponseWriter) {
	var webErr *eventmodels.WebError
	switch {
	case errors.As(err, &webErr):
		setErrorResponse("request", webErr.StatusCode, err, w)
	case errors.Is(err, eventmodels.InvalidRequestErr):
		setErrorResponse("invalid_request", http.StatusBadRequest, err, w)
	case errors.Is(err, eventmodels.NotFoundErr):
		setErrorResponse("not_found", http.StatusNotFound, err, w)
	case errors.Is(err, eventmodels.UnsupportedProductErr):
		setErrorResponse("unsupported_product", http.StatusUnprocessableEntity, err, w)
	default:
		log.Errorf("synthesis failed: %v", err)
		setErrorResponse("internal", http.StatusInternalServerError, err, w)
	}
}

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type handler struct {
	engine  *inquiry.Engine
	tables  *ingest.Cache
	records *RecordStore
	now     func() time.Time
}

type QuotesResponse struct {
	Quotes []*eventmodels.OptionQuoteResult `json:"quotes"`
}

type StocksResponse struct {
	Stocks []eventmodels.UnderlyingInfo `json:"stocks"`
}

type SaveRecordRequest struct {
	Request eventmodels.QuoteRequest       `json:"request"`
	Result  *eventmodels.OptionQuoteResult `json:"result,omitempty"`
	Note    string                         `json:"note,omitempty"`
}

type RecordsQuery struct {
	StockCode string `schema:"stockCode"`
	Limit     int    `schema:"limit"`
}

type RecordsResponse struct {
	Records []*eventmodels.InquiryRecord `json:"records"`
	Total   int                          `json:"total"`
}

type ReloadResponse struct {
	Sheets   int       `json:"sheets"`
	LoadedAt time.Time `json:"loadedAt"`
}

func (h *handler) handleInquiry(w http.ResponseWriter, r *http.Request) {
	var req eventmodels.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		setErrorResponse("invalid_request", http.StatusBadRequest, fmt.Errorf("handleInquiry: failed to decode body: %w", err), w)
		return
	}

	result, err := h.engine.Synthesize(h.tables.Tables(), req)
	if err != nil {
		setError(err, w)
		return
	}

	if err := setResponse(result, w); err != nil {
		log.Errorf("handleInquiry: %v", err)
	}
}

// handleQuotes quotes one contract from the query string. Without a term every tenor is
// quoted.
func (h *handler) handleQuotes(w http.ResponseWriter, r *http.Request) {
	var req eventmodels.QuoteRequest
	if err := decoder.Decode(&req, r.URL.Query()); err != nil {
		setErrorResponse("invalid_request", http.StatusBadRequest, fmt.Errorf("handleQuotes: failed to decode query: %w", err), w)
		return
	}

	reqs := []eventmodels.QuoteRequest{req}
	if req.Tenor == "" {
		reqs = make([]eventmodels.QuoteRequest, 0, len(eventmodels.Tenors))
		for _, tenor := range eventmodels.Tenors {
			req.Tenor = tenor
			reqs = append(reqs, req)
		}
	}

	results, errs := h.engine.SynthesizeBatch(h.tables.Tables(), reqs)
	for _, err := range errs {
		if err != nil {
			setError(err, w)
			return
		}
	}

	if err := setResponse(QuotesResponse{Quotes: results}, w); err != nil {
		log.Errorf("handleQuotes: %v", err)
	}
}

func (h *handler) handleStocks(w http.ResponseWriter, r *http.Request) {
	stocks := h.engine.ListUnderlyings(h.tables.Tables())
	if stocks == nil {
		stocks = []eventmodels.UnderlyingInfo{}
	}

	if err := setResponse(StocksResponse{Stocks: stocks}, w); err != nil {
		log.Errorf("handleStocks: %v", err)
	}
}

// handleSaveRecord stores an inquiry. A record sent without a result is quoted first.
func (h *handler) handleSaveRecord(w http.ResponseWriter, r *http.Request) {
	var body SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		setErrorResponse("invalid_request", http.StatusBadRequest, fmt.Errorf("handleSaveRecord: failed to decode body: %w", err), w)
		return
	}

	body.Request = body.Request.Normalize()
	if err := body.Request.Validate(); err != nil {
		setError(err, w)
		return
	}

	if body.Result == nil {
		result, err := h.engine.Synthesize(h.tables.Tables(), body.Request)
		if err != nil {
			setError(err, w)
			return
		}

		body.Result = result
	}

	record := eventmodels.NewInquiryRecord(body.Request, body.Result, body.Note, h.now())
	h.records.Save(record)

	log.WithField("id", record.ID).Infof("saved inquiry record for %s", record.Request.UnderlyingCode)

	if err := setResponse(record, w); err != nil {
		log.Errorf("handleSaveRecord: %v", err)
	}
}

func (h *handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	var query RecordsQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		setErrorResponse("invalid_request", http.StatusBadRequest, fmt.Errorf("handleListRecords: failed to decode query: %w", err), w)
		return
	}

	records := h.records.List(query.StockCode, query.Limit)
	if err := setResponse(RecordsResponse{Records: records, Total: h.records.Len()}, w); err != nil {
		log.Errorf("handleListRecords: %v", err)
	}
}

func (h *handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		setError(eventmodels.NewWebError(http.StatusBadRequest, "invalid record id", err), w)
		return
	}

	record, found := h.records.Get(id)
	if !found {
		setError(eventmodels.NewWebError(http.StatusNotFound, "record not found", fmt.Errorf("record %s not found", id)), w)
		return
	}

	if err := setResponse(record, w); err != nil {
		log.Errorf("handleGetRecord: %v", err)
	}
}

func (h *handler) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.tables.Reload(r.Context()); err != nil {
		setErrorResponse("reload", http.StatusBadGateway, err, w)
		return
	}

	resp := ReloadResponse{Sheets: len(h.tables.Tables()), LoadedAt: h.tables.LoadedAt()}
	if err := setResponse(resp, w); err != nil {
		log.Errorf("handleReload: %v", err)
	}
}

// SetupHandler mounts the option inquiry API on router. reg may be nil, in which case
// /metrics is not served.
func SetupHandler(router *mux.Router, engine *inquiry.Engine, tables *ingest.Cache, records *RecordStore, reg *metrics.Registry) {
	h := &handler{
		engine:  engine,
		tables:  tables,
		records: records,
		now:     time.Now,
	}

	option := router.PathPrefix("/stocks-front/option").Subrouter()
	option.HandleFunc("/inquiry", h.handleInquiry).Methods(http.MethodPost)
	option.HandleFunc("/quotes", h.handleQuotes).Methods(http.MethodGet)
	option.HandleFunc("/stocks", h.handleStocks).Methods(http.MethodGet)
	option.HandleFunc("/inquiry/record", h.handleSaveRecord).Methods(http.MethodPost)
	option.HandleFunc("/inquiry/records", h.handleListRecords).Methods(http.MethodGet)
	option.HandleFunc("/inquiry/records/{id}", h.handleGetRecord).Methods(http.MethodGet)
	option.HandleFunc("/tables/reload", h.handleReload).Methods(http.MethodPost)

	if reg != nil {
		router.Handle("/metrics", reg.Handler()).Methods(http.MethodGet)
	}
}
