package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/veritas/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "veritas.db"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("analysis record not found")

// AnalysisDB stores analysis results in SQLite.
type AnalysisDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures AnalysisDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging so the history command can read
	// while the server writes.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
func Open(dbDir string, opts Options) (*AnalysisDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AnalysisDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Path returns the database file path.
func (adb *AnalysisDB) Path() string {
	return adb.dbPath
}

// Close closes the database connection.
func (adb *AnalysisDB) Close() error {
	return adb.db.Close()
}

func (adb *AnalysisDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT NOT NULL UNIQUE,
		content_type TEXT NOT NULL,
		content TEXT NOT NULL,
		content_digest TEXT NOT NULL,
		verdict TEXT NOT NULL,
		confidence INTEGER NOT NULL,
		confidence_basis TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		strategy TEXT NOT NULL DEFAULT '',
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_verdict ON analyses(verdict);
	CREATE INDEX IF NOT EXISTS idx_analyses_digest ON analyses(content_digest);
	CREATE INDEX IF NOT EXISTS idx_analyses_timestamp ON analyses(timestamp);
	`

	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// AnalysisRecord is one stored analysis.
type AnalysisRecord struct {
	ID            int64                 `json:"id"`
	RequestID     string                `json:"request_id"`
	Request       model.AnalysisRequest `json:"request"`
	ContentDigest string                `json:"content_digest"`
	Result        model.AnalysisResult  `json:"result"`
	Timestamp     time.Time             `json:"timestamp"`
}

// ContentDigest returns the hex SHA3-256 digest of a request's type and content.
// Equal requests have equal digests.
func ContentDigest(req model.AnalysisRequest) string {
	sum := sha3.Sum256([]byte(string(req.Type) + "\x00" + req.Content))
	return hex.EncodeToString(sum[:])
}

// SaveResult stores one analysis. An empty requestID gets a fresh UUID.
func (adb *AnalysisDB) SaveResult(ctx context.Context, requestID string, req model.AnalysisRequest, res model.AnalysisResult) error {
	if requestID == "" {
		requestID = uuid.NewString()
	}

	query := `
	INSERT INTO analyses (request_id, content_type, content, content_digest, verdict, confidence, confidence_basis, summary, error, strategy)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := adb.db.ExecContext(ctx, query,
		requestID,
		string(req.Type),
		req.Content,
		ContentDigest(req),
		string(res.Verdict),
		res.Confidence.Percent,
		res.Confidence.Basis.String(),
		res.Summary,
		res.Error,
		res.Strategy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT id, request_id, content_type, content, content_digest, verdict, confidence,
	       confidence_basis, summary, error, strategy, timestamp
	FROM analyses
`

// ListFilter narrows ListRecent.
type ListFilter struct {
	// Limit caps the number of records. Zero or less means 20.
	Limit int

	// Verdict keeps only records with this verdict when non-empty.
	Verdict model.Verdict
}

// ListRecent returns the newest analyses first.
func (adb *AnalysisDB) ListRecent(ctx context.Context, filter ListFilter) ([]*AnalysisRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if filter.Verdict != "" {
		rows, err = adb.db.QueryContext(ctx, selectColumns+`WHERE verdict = ? ORDER BY id DESC LIMIT ?`,
			string(filter.Verdict), limit)
	} else {
		rows, err = adb.db.QueryContext(ctx, selectColumns+`ORDER BY id DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []*AnalysisRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return records, nil
}

// GetByRequestID returns the analysis stored under requestID.
func (adb *AnalysisDB) GetByRequestID(ctx context.Context, requestID string) (*AnalysisRecord, error) {
	row := adb.db.QueryRowContext(ctx, selectColumns+`WHERE request_id = ?`, requestID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// CountByVerdict returns the number of stored analyses per verdict.
func (adb *AnalysisDB) CountByVerdict(ctx context.Context) (map[model.Verdict]int, error) {
	rows, err := adb.db.QueryContext(ctx, `SELECT verdict, COUNT(*) FROM analyses GROUP BY verdict`)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Verdict]int)
	for rows.Next() {
		var verdict string
		var n int
		if err := rows.Scan(&verdict, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[model.Verdict(verdict)] = n
	}
	return counts, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*AnalysisRecord, error) {
	var (
		rec         AnalysisRecord
		contentType string
		verdict     string
		percent     int
		basis       string
		timestamp   string
	)
	err := s.Scan(
		&rec.ID,
		&rec.RequestID,
		&contentType,
		&rec.Request.Content,
		&rec.ContentDigest,
		&verdict,
		&percent,
		&basis,
		&rec.Result.Summary,
		&rec.Result.Error,
		&rec.Result.Strategy,
		&timestamp,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan analysis: %w", err)
	}

	rec.Request.Type = model.ContentType(contentType)
	rec.Result.Verdict = model.Verdict(verdict)
	rec.Result.Confidence = model.Confidence{Percent: percent, Basis: model.ParseConfidenceBasis(basis)}
	rec.Timestamp = parseTimestamp(timestamp)
	return &rec, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// More specific formats come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp tries each known format and returns the zero time when
// none matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
