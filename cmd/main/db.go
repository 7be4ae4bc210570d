package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// corpusDSN turns a past_memory_db setting into a read-only SQLite URI. A value
// that is already a "file:" URI is used as given.
func corpusDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?mode=ro"
}

// openCorpusDB opens the corpus database with the driver selected at build
// time and checks that it is reachable.
func openCorpusDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, corpusDSN(path))
	if err != nil {
		return nil, err
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not reach corpus database %q: %w", path, err)
	}
	return db, nil
}
