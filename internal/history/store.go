package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"concordance/internal/config"
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// connectionPragmas are applied by the driver to every pooled connection.
const connectionPragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

const summaryColumns = "id, input_path, output, tokenizer, sentences, tokens, words, distinct_words, longest_word, created_at"

// Store manages history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	keep int
}

// Open initializes or connects to the history database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryPath()
	db, err := sql.Open("sqlite", dbPath+"?"+connectionPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite allows one writer at a time; a single connection queues
	// concurrent Record calls in the pool rather than in the busy handler.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	store := &Store{db: db, path: dbPath, keep: cfg.History.Keep}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record persists run, assigning an ID and creation time when they are unset.
// When a retention limit is configured, older runs beyond it are pruned.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if strings.TrimSpace(run.InputPath) == "" {
		return nil, errors.New("record run: input path is required")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()
	if run.Output == "" {
		run.Output = OutputStdout
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, input_path, output, tokenizer,
            sentences, tokens, words, distinct_words, longest_word,
            lines, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.InputPath,
		run.Output,
		run.Tokenizer,
		run.Stats.Sentences,
		run.Stats.Tokens,
		run.Stats.Words,
		run.Stats.DistinctWords,
		run.Stats.LongestWord,
		joinLines(run.Lines),
		run.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	if s.keep > 0 {
		if _, err := s.Prune(ctx, s.keep); err != nil {
			return nil, err
		}
	}
	return &run, nil
}

// List returns up to limit runs, newest first, without report lines. A
// non-positive limit returns every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + summaryColumns + ` FROM runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Get fetches a run, including its report lines, by full ID or unique prefix.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+summaryColumns+`, lines FROM runs
         WHERE substr(id, 1, length(?)) = ?
         ORDER BY created_at DESC LIMIT 2`,
		id, id,
	)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		for _, m := range matches {
			if m.ID == id {
				return m, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}
}

// Prune deletes all but the newest keep runs and reports how many were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune runs: keep must be zero or positive, got %d", keep)
	}
	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM runs WHERE id NOT IN (
            SELECT id FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?
        )`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return removed, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }, withLines bool) (*Run, error) {
	var (
		run        Run
		createdRaw string
		lines      sql.NullString
	)
	dest := []any{
		&run.ID,
		&run.InputPath,
		&run.Output,
		&run.Tokenizer,
		&run.Stats.Sentences,
		&run.Stats.Tokens,
		&run.Stats.Words,
		&run.Stats.DistinctWords,
		&run.Stats.LongestWord,
		&createdRaw,
	}
	if withLines {
		dest = append(dest, &lines)
	}
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}

	if ts, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		run.CreatedAt = ts
	}
	if withLines {
		run.Lines = splitLines(lines.String)
	}
	return &run, nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func splitLines(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, "\n")
}
