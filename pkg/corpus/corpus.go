package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultQuery selects every stored utterance in insertion order.
const DefaultQuery = `SELECT utterance_text FROM corpus_utterances ORDER BY utterance_id;`

// Learner is anything that can remember a whitespace-split token sequence,
// such as a *markov.Brain.
type Learner interface {
	Remember(words []string)
}

// LoadStats summarizes a Load call.
type LoadStats struct {
	Rows    int // Rows read from the query
	Learned int // Rows long enough to be remembered
	Skipped int // Rows with fewer than three tokens
}

// SetupSchema creates the utterance table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaUtterances = `
CREATE TABLE IF NOT EXISTS corpus_utterances (
    utterance_id INTEGER PRIMARY KEY,
    utterance_text TEXT NOT NULL
);
`
	if _, err := db.Exec(schemaUtterances); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}
	return nil
}

// Loader reads utterances out of a database and feeds them to a Learner.
type Loader struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewLoader creates a Loader over db. Logs are discarded until SetLogger is
// called.
func NewLoader(db *sql.DB) *Loader {
	return &Loader{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Loader.
func (l *Loader) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Load runs query, which must return a single text column, and remembers every
// row as its own token sequence. An empty query means DefaultQuery. Rows are
// handed to the learner as they are scanned, so a failure part way through
// leaves the earlier rows learned.
func (l *Loader) Load(ctx context.Context, query string, learner Learner) (LoadStats, error) {
	if query == "" {
		query = DefaultQuery
	}

	var stats LoadStats
	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return stats, fmt.Errorf("could not query corpus: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var text sql.NullString
		if err = rows.Scan(&text); err != nil {
			return stats, fmt.Errorf("could not scan corpus row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++

		words := strings.Fields(text.String)
		if len(words) < 3 {
			stats.Skipped++
			continue
		}
		learner.Remember(words)
		stats.Learned++
	}
	if err = rows.Err(); err != nil {
		return stats, fmt.Errorf("error after iterating corpus rows: %w", err)
	}

	l.logger.InfoContext(ctx, "Corpus loaded",
		slog.Int("rows", stats.Rows),
		slog.Int("learned", stats.Learned),
		slog.Int("skipped", stats.Skipped),
	)
	return stats, nil
}
