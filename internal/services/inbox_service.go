package services

import (
	"fmt"

	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/db"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/inbox"
)

// InboxService composes the normalizer output and the store. It owns the
// fixed dashboard window size so handlers stay thin.
type InboxService struct {
	store       db.StoreInterface
	recentLimit int
}

// NewInboxService creates a new inbox service. A non-positive recentLimit
// falls back to the default window of 100 records.
func NewInboxService(store db.StoreInterface, recentLimit int) *InboxService {
	if recentLimit <= 0 {
		recentLimit = 100
	}
	return &InboxService{store: store, recentLimit: recentLimit}
}

// Ingest persists one normalized message plus the verbatim raw payload and
// returns the assigned record id. Normalization already applied the fallback
// values, so nothing here is validated or rejected.
func (s *InboxService) Ingest(msg inbox.Message, providerRaw string) (int64, error) {
	rec := &db.SMSRecord{
		FromNumber:  msg.From,
		ToNumber:    msg.To,
		Body:        msg.Text,
		ProviderRaw: providerRaw,
	}

	id, err := s.store.Append(rec)
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}

	return id, nil
}

// Recent returns the dashboard window: the newest records, newest first.
func (s *InboxService) Recent() ([]*db.SMSRecord, error) {
	records, err := s.store.Recent(s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("read recent records: %w", err)
	}

	return records, nil
}
