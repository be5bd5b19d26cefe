package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

type InquiryRecord struct {
	ID        uuid.UUID          `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	Request   QuoteRequest       `json:"request"`
	Result    *OptionQuoteResult `json:"result,omitempty"`
	Note      string             `json:"note,omitempty"`
}

func NewInquiryRecord(req QuoteRequest, result *OptionQuoteResult, note string, now time.Time) *InquiryRecord {
	return &InquiryRecord{
		ID:        uuid.New(),
		CreatedAt: now,
		Request:   req,
		Result:    result,
		Note:      note,
	}
}
