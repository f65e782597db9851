package pkg_test

import (
	"testing"

	"Mobilia/internal/pkg"
)

func TestParseULIDPtr(t *testing.T) {
	t.Parallel()

	t.Run("nil e vazio viram nil sem erro", func(t *testing.T) {
		if got, err := pkg.ParseULIDPtr(nil); got != nil || err != nil {
			t.Fatalf("nil input: got %v, %v", got, err)
		}
		empty := ""
		if got, err := pkg.ParseULIDPtr(&empty); got != nil || err != nil {
			t.Fatalf("empty input: got %v, %v", got, err)
		}
	})

	t.Run("ulid valido", func(t *testing.T) {
		raw := pkg.GenerateULID()
		got, err := pkg.ParseULIDPtr(&raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.String() != raw {
			t.Fatalf("expected %s, got %v", raw, got)
		}
	})

	t.Run("formato invalido", func(t *testing.T) {
		raw := "nao-e-ulid"
		if _, err := pkg.ParseULIDPtr(&raw); err == nil {
			t.Fatal("expected error for malformed ulid")
		}
	})
}
