//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/hockey-league/db/migrations"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	os.Exit(runWithPostgres(m))
}

func runWithPostgres(m *testing.M) int {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("hockey"),
		tcpostgres.WithUsername("hockey"),
		tcpostgres.WithPassword("hockey"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres container: %v\n", err)
		return 1
	}
	defer func() {
		_ = container.Terminate(ctx)
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres connection string: %v\n", err)
		return 1
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open postgres: %v\n", err)
		return 1
	}
	defer db.Close()

	if err := applyMigrations(db); err != nil {
		fmt.Fprintf(os.Stderr, "apply migrations: %v\n", err)
		return 1
	}

	testDB = db
	return m.Run()
}

func applyMigrations(db *sqlx.DB) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	driver, err := migratepostgres.WithInstance(db.DB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// seedMatch inserts a fresh match with unique ids so tests do not share rows.
func seedMatch(t *testing.T, eventID string, home, away int) match.Match {
	t.Helper()

	suffix := fmt.Sprintf("%s-%d", t.Name(), time.Now().UnixNano())
	m := match.Match{
		ID:                    "match-" + suffix,
		EventID:               eventID,
		HomeTeamID:            "home-" + suffix,
		AwayTeamID:            "away-" + suffix,
		HomeScoreUnidentified: home,
		AwayScoreUnidentified: away,
		Status:                match.StatusInProgress,
	}
	if err := UpsertMatches(context.Background(), testDB, []match.Match{m}); err != nil {
		t.Fatalf("seed match: %v", err)
	}
	return m
}
