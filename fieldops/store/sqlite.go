package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"ambe.com/fieldops/fieldops/model"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage persists the buffer in a local SQLite database, one row per
// employee with the record serialized as JSON. Suited to devices where a
// single JSON file gets too large to rewrite on every capture photo.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open buffer db: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS attendance_buffer (
	employee_id TEXT PRIMARY KEY,
	record      TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create buffer table: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Load() (map[string]model.AttendanceRecord, error) {
	rows, err := s.db.Query(`SELECT employee_id, record FROM attendance_buffer`)
	if err != nil {
		return nil, fmt.Errorf("read buffer db: %w", err)
	}
	defer rows.Close()

	records := map[string]model.AttendanceRecord{}
	for rows.Next() {
		var employeeID, payload string
		if err := rows.Scan(&employeeID, &payload); err != nil {
			return nil, fmt.Errorf("scan buffer row: %w", err)
		}
		var rec model.AttendanceRecord
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, fmt.Errorf("parse buffer row for %s: %w", employeeID, err)
		}
		records[employeeID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read buffer db: %w", err)
	}
	return records, nil
}

func (s *SQLiteStorage) Save(records map[string]model.AttendanceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin buffer tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM attendance_buffer`); err != nil {
		return fmt.Errorf("clear buffer table: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO attendance_buffer (employee_id, record) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare buffer insert: %w", err)
	}
	defer stmt.Close()

	for employeeID, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record for %s: %w", employeeID, err)
		}
		if _, err := stmt.Exec(employeeID, string(payload)); err != nil {
			return fmt.Errorf("insert buffer row for %s: %w", employeeID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
