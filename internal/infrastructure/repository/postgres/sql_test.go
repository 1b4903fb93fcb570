package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		err := fmt.Errorf("get match counters: %w", sql.ErrNoRows)
		if !isNotFound(err) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation matches does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("boom")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestNullableRoundTrip(t *testing.T) {
	if got := stringPtr(nullableString(nil)); got != nil {
		t.Fatalf("expected nil string, got %q", *got)
	}

	scorer := "player-1"
	got := stringPtr(nullableString(&scorer))
	if got == nil || *got != scorer {
		t.Fatalf("unexpected string pointer: %v", got)
	}

	if got := intPtr(nullableInt(nil)); got != nil {
		t.Fatalf("expected nil int, got %d", *got)
	}

	minutes := 17
	gotInt := intPtr(nullableInt(&minutes))
	if gotInt == nil || *gotInt != minutes {
		t.Fatalf("unexpected int pointer: %v", gotInt)
	}
}
