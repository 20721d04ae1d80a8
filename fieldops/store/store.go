package store

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"ambe.com/fieldops/fieldops/model"
)

// ErrRecordLocked is returned when a mutation targets a record that has been
// confirmed by the central system. Locked records need the administrative
// override path, not the capture UI.
var ErrRecordLocked = errors.New("attendance record is locked")

// RecordStore is the offline buffer of per-employee, per-day attendance
// records. It owns the persisted storage exclusively; every other component
// goes through this type. All mutations are flushed to storage before the
// call returns.
type RecordStore struct {
	mu      sync.Mutex
	records map[string]model.AttendanceRecord // keyed by employeeID
	storage Storage

	// loadWarning is set when the persisted buffer was unreadable and the
	// store started empty. The UI layer surfaces it to the operator.
	loadWarning error
}

// New loads the buffer from storage. A corrupt or unreadable buffer is not
// fatal: the store starts empty and remembers the load error as a warning.
func New(storage Storage) *RecordStore {
	s := &RecordStore{storage: storage}

	records, err := storage.Load()
	if err != nil {
		log.Printf("attendance buffer unreadable, starting empty: %v", err)
		s.loadWarning = err
		records = map[string]model.AttendanceRecord{}
	}
	if records == nil {
		records = map[string]model.AttendanceRecord{}
	}
	s.records = records
	return s
}

// LoadWarning reports whether the persisted buffer could not be read at
// startup. Nil means a clean load.
func (s *RecordStore) LoadWarning() error {
	return s.loadWarning
}

// Get returns a copy of the buffered record for the employee, if any.
func (s *RecordStore) Get(employeeID string) (model.AttendanceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[employeeID]
	if !ok {
		return model.AttendanceRecord{}, false
	}
	return rec.Clone(), true
}

// All returns copies of every buffered record.
func (s *RecordStore) All() []model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AttendanceRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	return out
}

// Upsert replaces the employee's buffered record. It fails with
// ErrRecordLocked when the existing record has been confirmed by sync.
// The new record always starts unsynced: its content differs from whatever
// the central system last accepted.
func (s *RecordStore) Upsert(employeeID string, rec model.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[employeeID]; ok && existing.IsLocked {
		return fmt.Errorf("employee %s on %s: %w", employeeID, existing.Date, ErrRecordLocked)
	}

	rec.EmployeeID = employeeID
	rec.IsSynced = false
	rec.IsLocked = false
	s.records[employeeID] = rec.Clone()

	return s.flush()
}

// MarkSynced confirms exactly the records that were submitted, matched by
// record identity. A record captured after the snapshot was taken has a
// different ID and is left untouched, even for the same employee.
func (s *RecordStore) MarkSynced(batch []model.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, submitted := range batch {
		current, ok := s.records[submitted.EmployeeID]
		if !ok || current.ID != submitted.ID {
			continue
		}
		current.IsSynced = true
		current.IsLocked = true
		s.records[submitted.EmployeeID] = current
		changed = true
	}

	if !changed {
		return nil
	}
	return s.flush()
}

// Unsynced returns a snapshot (deep copies) of every record not yet
// confirmed by the central system.
func (s *RecordStore) Unsynced() []model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.AttendanceRecord
	for _, rec := range s.records {
		if !rec.IsSynced {
			out = append(out, rec.Clone())
		}
	}
	return out
}

func (s *RecordStore) UnsyncedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, rec := range s.records {
		if !rec.IsSynced {
			n++
		}
	}
	return n
}

// flush persists the buffer. Callers hold the mutex. The in-memory mutation
// stays applied even when the flush fails: a crash loses at most the most
// recent update, matching the durability contract.
func (s *RecordStore) flush() error {
	if err := s.storage.Save(s.records); err != nil {
		return fmt.Errorf("persist attendance buffer: %w", err)
	}
	return nil
}
