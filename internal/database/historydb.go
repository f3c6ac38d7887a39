package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/phonescan/internal/model"
)

// ErrAppendFailed is returned when an analysis record cannot be appended
// to the history. Callers typically log it as a warning; a failed append
// never suppresses the report itself.
var ErrAppendFailed = errors.New("failed to append analysis record")

// HistoryDB provides SQLite-based storage for analysis history.
// It manages connection pooling and provides append and query operations.
//
// Design decision: We use a single database file for all numbers rather
// than one file per number. This simplifies history queries across
// numbers and backup/restore operations.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "phonescan.db")

	// Check if we should create the database or require it to exist
	if !opts.CreateIfNotExists {
		// Check if database file exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		// Ensure directory exists
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	// SQLite only supports one writer; a single connection also serializes
	// concurrent appends from batch analyses.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	// Enable WAL mode if requested
	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Create tables
	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Analysis history stores one record per completed analysis.
	-- additional_info holds the full report as JSON; the other columns
	-- are denormalized for cheap listing without JSON parsing.
	CREATE TABLE IF NOT EXISTS analysis_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		phone_number TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		provider TEXT,
		location TEXT,
		valid INTEGER,
		type TEXT,
		additional_info TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_history_number ON analysis_history(phone_number);
	CREATE INDEX IF NOT EXISTS idx_history_timestamp ON analysis_history(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// HistoryRecord represents one stored analysis.
type HistoryRecord struct {
	// ID is the unique identifier of the record in the database.
	ID int64

	// PhoneNumber is the number exactly as the user entered it.
	PhoneNumber string

	// Timestamp is when the analysis was performed.
	Timestamp time.Time

	// Provider is the carrier name resolved at analysis time.
	Provider string

	// Location is the region label resolved at analysis time.
	Location string

	// Valid is the numbering-plan validity verdict.
	Valid bool

	// Category is the usage category label (e.g. "Regular Mobile").
	Category string

	// Report is the full analysis report. Nil when only the summary
	// columns were loaded or the stored JSON is malformed.
	Report *model.AnalysisReport
}

// Append appends one analysis record to the history.
// Records are never updated or deduplicated; re-analyzing a number adds
// a new record.
func (hdb *HistoryDB) Append(ctx context.Context, report *model.AnalysisReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: serialize report: %s", ErrAppendFailed, err)
	}

	query := `
	INSERT INTO analysis_history (phone_number, timestamp, provider, location, valid, type, additional_info)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	valid := 0
	if report.Validation.IsValid {
		valid = 1
	}

	_, err = hdb.db.ExecContext(ctx, query,
		report.OriginalInput,
		report.AnalyzedAt.UTC().Format(time.RFC3339Nano),
		report.Provider.Identity.Name,
		report.Location.Region,
		valid,
		string(report.Number.Category),
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrAppendFailed, err)
	}

	return nil
}

// ListNumbers returns all distinct numbers in the history.
func (hdb *HistoryDB) ListNumbers(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT phone_number FROM analysis_history
	ORDER BY phone_number
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list numbers: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan number: %w", err)
		}
		numbers = append(numbers, number)
	}

	return numbers, rows.Err()
}

// GetHistory retrieves all analysis records for a number, newest first.
func (hdb *HistoryDB) GetHistory(ctx context.Context, number string) ([]HistoryRecord, error) {
	query := `
	SELECT id, phone_number, timestamp, provider, location, valid, type, additional_info
	FROM analysis_history
	WHERE phone_number = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		record, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetRecordByID retrieves one analysis record by its database ID.
// Returns nil when no record exists.
func (hdb *HistoryDB) GetRecordByID(ctx context.Context, id int64) (*HistoryRecord, error) {
	query := `
	SELECT id, phone_number, timestamp, provider, location, valid, type, additional_info
	FROM analysis_history
	WHERE id = ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	record, err := scanHistoryRecord(rows)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// scanHistoryRecord reads one row into a HistoryRecord.
func scanHistoryRecord(rows *sql.Rows) (HistoryRecord, error) {
	var record HistoryRecord
	var timestamp string
	var valid int
	var reportJSON sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.PhoneNumber,
		&timestamp,
		&record.Provider,
		&record.Location,
		&valid,
		&record.Category,
		&reportJSON,
	)
	if err != nil {
		return HistoryRecord{}, fmt.Errorf("failed to scan history record: %w", err)
	}

	record.Timestamp = parseTimestamp(timestamp)
	record.Valid = valid != 0

	if reportJSON.Valid && reportJSON.String != "" {
		var report model.AnalysisReport
		if err := json.Unmarshal([]byte(reportJSON.String), &report); err == nil {
			record.Report = &report
		}
		// Malformed stored JSON leaves Report nil; the summary columns
		// are still usable.
	}

	return record, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,          // Format used by Append
	time.RFC3339,              // RFC3339 without fractional seconds
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	// Return zero time if no format matches
	// This is a fallback to avoid breaking functionality for edge cases
	return time.Time{}
}
