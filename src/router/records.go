package router

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

// RecordStore keeps saved inquiry records in memory, in save order.
type RecordStore struct {
	mu       sync.RWMutex
	records  []*eventmodels.InquiryRecord
	byID     map[uuid.UUID]*eventmodels.InquiryRecord
	onChange func(n int)
}

func NewRecordStore(onChange func(n int)) *RecordStore {
	return &RecordStore{
		byID:     make(map[uuid.UUID]*eventmodels.InquiryRecord),
		onChange: onChange,
	}
}

func (s *RecordStore) Save(record *eventmodels.InquiryRecord) {
	s.mu.Lock()
	s.records = append(s.records, record)
	s.byID[record.ID] = record
	n := len(s.records)
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(n)
	}
}

func (s *RecordStore) Get(id uuid.UUID) (*eventmodels.InquiryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, found := s.byID[id]
	return record, found
}

// List returns records newest first. An empty stockCode matches every record and a
// non-positive limit returns all matches.
func (s *RecordStore) List(stockCode string, limit int) []*eventmodels.InquiryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*eventmodels.InquiryRecord, 0)
	for i := len(s.records) - 1; i >= 0; i-- {
		record := s.records[i]
		if stockCode != "" && record.Request.UnderlyingCode != stockCode {
			continue
		}

		out = append(out, record)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
