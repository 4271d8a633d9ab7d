package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/testutil"
)

func setupStores(t *testing.T) (repository.Stores, *sql.DB, db.UnitOfWork) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteStores(database), database, testutil.NewTestUoW(database)
}

func setupJSONStores(t *testing.T) repository.Stores {
	t.Helper()
	store, err := repository.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating json store: %v", err)
	}
	return store.Stores()
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Location = time.UTC
	return opts
}

func timePtr(t time.Time) *time.Time { return &t }
