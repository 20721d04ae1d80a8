package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ambe.com/fieldops/fieldops/model"
)

// Storage is the durable backing of the device buffer. Save must not return
// until the buffer is flushed; Load returning an error means the persisted
// data is unreadable and the caller starts from an empty buffer.
type Storage interface {
	Load() (map[string]model.AttendanceRecord, error)
	Save(records map[string]model.AttendanceRecord) error
}

// JSONFileStorage keeps the whole buffer as one JSON document. Writes go
// through a temp file plus rename so a crash mid-write never corrupts the
// previous snapshot.
type JSONFileStorage struct {
	Path string
}

func NewJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{Path: path}
}

func (s *JSONFileStorage) Load() (map[string]model.AttendanceRecord, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return map[string]model.AttendanceRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read buffer file: %w", err)
	}

	if len(data) == 0 {
		return map[string]model.AttendanceRecord{}, nil
	}

	var records map[string]model.AttendanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse buffer file %s: %w", s.Path, err)
	}
	if records == nil {
		records = map[string]model.AttendanceRecord{}
	}
	return records, nil
}

func (s *JSONFileStorage) Save(records map[string]model.AttendanceRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal buffer: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create buffer dir: %w", err)
		}
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write buffer file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace buffer file: %w", err)
	}
	return nil
}
