package metastore

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFetchedAtMissingKeyReturnsFalse(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "meta.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	_, ok, err := s.FetchedAt("ETHUSDT", "klines", "202401")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("FetchedAt: want ok=false for missing key")
	}
}

func TestMarkFetchedThenFetchedAtRoundTrips(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "meta.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	if err := s.MarkFetched("ETHUSDT", "klines", "202401", want); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.FetchedAt("ETHUSDT", "klines", "202401")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("FetchedAt: want ok=true after MarkFetched")
	}
	if !got.Equal(want) {
		t.Errorf("FetchedAt = %s, want %s", got, want)
	}
}

func TestMarkFetchedOverwritesExistingTimestamp(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "meta.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if err := s.MarkFetched("ETHUSDT", "klines", "202401", first); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkFetched("ETHUSDT", "klines", "202401", second); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.FetchedAt("ETHUSDT", "klines", "202401")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(second) {
		t.Errorf("FetchedAt = %s, want %s (overwritten)", got, second)
	}
}
