package ledger

import (
	"io"
	"log/slog"
	"sync"

	"gradebook/internal/domain"
	"gradebook/internal/gpa"
)

// CreditsKey is the single storage slot holding the persisted credit list.
const CreditsKey = "credits"

// Service owns the in-memory credit list and mirrors every mutation to the
// storage backend. The GPA is recomputed on every mutation and on hydration;
// it is never persisted.
type Service struct {
	kv  domain.KV
	log *slog.Logger

	mu      sync.Mutex
	records domain.CreditList
	average float64
}

// New returns a ledger backed by kv. A nil logger discards all events.
func New(kv domain.KV, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{kv: kv, log: log}
}

// Load hydrates the ledger from storage, once at start. A missing key,
// malformed JSON, or a schema violation all fall back to the empty list; the
// reason is logged at debug level and never surfaced.
func (s *Service) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.average = 0

	raw, ok, err := s.kv.Get(CreditsKey)
	if err != nil {
		s.log.Debug("reading persisted credits failed, starting empty", "err", err)
		return
	}
	if !ok {
		return
	}
	records, err := domain.DecodeRecords(raw)
	if err != nil {
		s.log.Debug("discarding persisted credits", "err", err)
		return
	}
	s.records = records
	s.average = gpa.Calculate(s.records)
}

// Add appends a record and persists the updated list. An unknown grade or
// credits outside the allowed range make the call a no-op: nothing is
// appended, recomputed, or written.
func (s *Service) Add(grade domain.Grade, credits int, note string) error {
	record := domain.CreditRecord{Grade: grade, Credits: credits, Note: note}
	if err := domain.ValidateRecord(record); err != nil {
		s.log.Debug("ignoring invalid entry", "err", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return s.commit()
}

// Remove deletes the record at index, preserving the order of the rest. An
// out-of-range index is a no-op.
func (s *Service) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		s.log.Debug("ignoring out-of-range removal", "index", index, "len", len(s.records))
		return nil
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return s.commit()
}

// RemoveAll clears the list and deletes the storage key entirely. Deleting
// the key, rather than writing an empty array, is deliberate: a later Load
// takes the missing-key path.
func (s *Service) RemoveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.average = 0
	return s.kv.Delete(CreditsKey)
}

// Replace swaps the whole list, validating first. Used by import.
func (s *Service) Replace(records domain.CreditList) error {
	records, err := domain.ValidateRecords(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records.Clone()
	return s.commit()
}

// commit recomputes the GPA and writes the full list. Callers hold the lock.
func (s *Service) commit() error {
	s.average = gpa.Calculate(s.records)
	raw, err := domain.EncodeRecords(s.records)
	if err != nil {
		return err
	}
	return s.kv.Set(CreditsKey, raw)
}

// Records returns a snapshot of the current list.
func (s *Service) Records() domain.CreditList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.Clone()
}

// GPA returns the raw, unrounded grade-point average.
func (s *Service) GPA() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.average
}

// FormatGPA returns the display form, rounded half-up to two decimals.
func (s *Service) FormatGPA() string {
	return gpa.Format(s.GPA())
}

// Compile-time assertion that Service implements domain.Ledger.
var _ domain.Ledger = (*Service)(nil)
