package timeutil

import (
	"testing"
	"time"
)

func TestTruncFuncs(t *testing.T) {
	ts := time.Date(2024, 3, 15, 13, 45, 30, 999, time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"TruncSecond", TruncSecond(ts), time.Date(2024, 3, 15, 13, 45, 30, 0, time.UTC)},
		{"TruncMinute", TruncMinute(ts), time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)},
		{"TruncHour", TruncHour(ts), time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)},
		{"TruncDay", TruncDay(ts), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"TruncMonth", TruncMonth(ts), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"TruncYear", TruncYear(ts), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestNextMonthCrossesYearBoundary(t *testing.T) {
	dec := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	got := NextMonth(dec)
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextMonth(%s) = %s, want %s", dec, got, want)
	}
}

func TestParseFixedForms(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"202403", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"20240315", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024031513", time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)},
		{"202403151345", time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)},
		{"20240315134530", time.Date(2024, 3, 15, 13, 45, 30, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFixed(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseFixed(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFixedRejectsUnsupportedLength(t *testing.T) {
	if _, err := ParseFixed("123"); err == nil {
		t.Fatal("ParseFixed: want error for unsupported length")
	}
}

func TestYYYYMM(t *testing.T) {
	got := YYYYMM(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if got != "202403" {
		t.Errorf("YYYYMM = %q, want \"202403\"", got)
	}
}
