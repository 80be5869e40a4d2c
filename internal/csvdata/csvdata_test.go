package csvdata

import (
	"testing"
	"time"
)

func TestDecodeKline(t *testing.T) {
	row := []string{
		"1704067200000", "2000.0", "2010.5", "1990.0", "2005.25", "12.5",
		"1704067259000", "25065.625", "42", "6.25", "12532.8125", "0",
	}
	k, err := DecodeKline(row)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !k.OpenTime.Equal(want) {
		t.Errorf("OpenTime = %s, want %s", k.OpenTime, want)
	}
	if k.Trades != 42 {
		t.Errorf("Trades = %d, want 42", k.Trades)
	}
	if k.DateTime() != k.OpenTime {
		t.Error("DateTime() should return OpenTime")
	}
}

func TestDecodeKlineTooFewColumns(t *testing.T) {
	if _, err := DecodeKline([]string{"1", "2", "3"}); err == nil {
		t.Fatal("DecodeKline: want error for short row")
	}
}

func TestDecodeKlineMalformedNumber(t *testing.T) {
	row := []string{
		"not-a-number", "2000.0", "2010.5", "1990.0", "2005.25", "12.5",
		"1704067259000", "25065.625", "42", "6.25", "12532.8125", "0",
	}
	if _, err := DecodeKline(row); err == nil {
		t.Fatal("DecodeKline: want error for malformed open_time")
	}
}

func TestDecodeFundingRate(t *testing.T) {
	row := []string{"1704067200000", "ETHUSDT", "0.0001", "2000.0"}
	f, err := DecodeFundingRate(row)
	if err != nil {
		t.Fatal(err)
	}
	if f.Symbol != "ETHUSDT" {
		t.Errorf("Symbol = %q, want ETHUSDT", f.Symbol)
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !f.FundingTime.Equal(want) {
		t.Errorf("FundingTime = %s, want %s", f.FundingTime, want)
	}
	if f.DateTime() != f.FundingTime {
		t.Error("DateTime() should return FundingTime")
	}
}

func TestDecodeFundingRateTooFewColumns(t *testing.T) {
	if _, err := DecodeFundingRate([]string{"1", "ETHUSDT"}); err == nil {
		t.Fatal("DecodeFundingRate: want error for short row")
	}
}
