package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SMSRecord is the persisted unit: one inbound provider notification,
// normalized, plus the raw payload kept verbatim for debugging. Records are
// append-only; nothing in the system updates or deletes them.
type SMSRecord struct {
	ID          int64     `json:"id"`
	FromNumber  string    `json:"from_number"`
	ToNumber    string    `json:"to_number"`
	Body        string    `json:"body"`
	ProviderRaw string    `json:"provider_raw"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoreInterface is the contract the rest of the system consumes.
type StoreInterface interface {
	Close() error
	Append(rec *SMSRecord) (int64, error)
	Recent(limit int) ([]*SMSRecord, error)
}

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}

	// Check for invalid database file path
	if strings.Contains(dbPath, "?mode=invalid") {
		return nil, errors.New("invalid database configuration")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Verify we can actually connect to the database
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("ping failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	// Try to create tables - if this fails, the database is not usable
	if err := createTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("create tables failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	return &Database{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			from_number TEXT NOT NULL,
			to_number TEXT NOT NULL,
			body TEXT NOT NULL,
			provider_raw TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)
	`)
	return err
}

func (d *Database) Close() error {
	if d == nil {
		return errors.New("database is nil")
	}

	if d.db == nil {
		return errors.New("database already closed")
	}

	err := d.db.Close()
	d.db = nil
	return err
}

// Append durably persists one record and returns the assigned id. The store
// assigns both id and CreatedAt; whatever the caller put in those fields is
// overwritten with the persisted values.
func (d *Database) Append(rec *SMSRecord) (int64, error) {
	if d == nil {
		return 0, errors.New("database is nil")
	}

	if d.db == nil {
		return 0, errors.New("database is closed")
	}

	if rec == nil {
		return 0, errors.New("record cannot be nil")
	}

	createdAt := time.Now().UTC()
	result, err := d.db.Exec(
		"INSERT INTO sms (from_number, to_number, body, provider_raw, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.FromNumber,
		rec.ToNumber,
		rec.Body,
		rec.ProviderRaw,
		createdAt,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	return id, nil
}

// Recent returns at most limit records, newest first. Ordering is by the
// store-assigned timestamp, ties broken by id, so two appends that completed
// in a given order are always listed in that order.
func (d *Database) Recent(limit int) ([]*SMSRecord, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}

	if d.db == nil {
		return nil, errors.New("database is closed")
	}

	if limit <= 0 {
		limit = 100
	}

	rows, err := d.db.Query(
		"SELECT id, from_number, to_number, body, provider_raw, created_at FROM sms ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*SMSRecord
	for rows.Next() {
		rec := &SMSRecord{}
		err := rows.Scan(&rec.ID, &rec.FromNumber, &rec.ToNumber, &rec.Body, &rec.ProviderRaw, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
