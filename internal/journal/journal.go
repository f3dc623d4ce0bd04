// Package journal keeps a persistent record of connectivity transitions and
// warnings in a sqlite file. The tool exists for resilience testing; the
// journal is the answer to "when exactly was the link down, and did the
// toggle ever fail". All writes are best-effort: journal trouble never
// reaches the state machine.
package journal

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/TFury30/LagSwitch/internal/netswitch"
)

// DefaultFileName is the journal database created next to the settings files.
const DefaultFileName = "lagswitch.db"

const (
	categoryTransition = "transition"
	categoryLog        = "log"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id       TEXT PRIMARY KEY,
	at       TEXT NOT NULL,
	category TEXT NOT NULL,
	detail   TEXT NOT NULL,
	ok       INTEGER NOT NULL,
	error    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS events_at ON events (at);
`

// Entry is one journal row.
type Entry struct {
	ID       string
	At       time.Time
	Category string
	Detail   string
	OK       bool
	Error    string
}

// Journal is a sqlite-backed event log.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	// sqlite allows one writer; serialize at the pool level instead of
	// surfacing SQLITE_BUSY to callers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// RecordTransition stores one attempted state transition. Safe on a nil
// receiver so callers can wire the observer unconditionally.
func (j *Journal) RecordTransition(tr netswitch.Transition) {
	if j == nil {
		return
	}
	detail := fmt.Sprintf("%s: %s -> %s", tr.Event, tr.From, tr.To)
	errText := ""
	if tr.Err != nil {
		errText = tr.Err.Error()
	}
	j.insert(tr.At, categoryTransition, detail, tr.Err == nil, errText)
}

// RecordLog stores one captured log record (Warn and above are teed here).
func (j *Journal) RecordLog(at time.Time, level slog.Level, msg string) {
	if j == nil {
		return
	}
	j.insert(at, categoryLog, fmt.Sprintf("%s: %s", level, msg), level < slog.LevelWarn, "")
}

func (j *Journal) insert(at time.Time, category, detail string, ok bool, errText string) {
	_, err := j.db.Exec(
		`INSERT INTO events (id, at, category, detail, ok, error) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		at.UTC().Format(time.RFC3339Nano),
		category,
		detail,
		boolInt(ok),
		errText,
	)
	if err != nil {
		slog.Debug("[journal] insert failed", "error", err, "detail", detail)
	}
}

// Recent returns up to limit entries, newest first. A nil journal has no
// entries.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if j == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.db.Query(
		`SELECT id, at, category, detail, ok, error FROM events ORDER BY at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		var ok int
		if err := rows.Scan(&e.ID, &at, &e.Category, &e.Detail, &ok, &e.Error); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		e.At, _ = time.Parse(time.RFC3339Nano, at)
		e.OK = ok != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
