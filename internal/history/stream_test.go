package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeKlineFile(t *testing.T, dir, symbol, yyyymm string, rows []string) {
	t.Helper()
	path := filepath.Join(dir, symbol, string(KindKlines), priceInterval)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := ""
	for _, r := range rows {
		content += r + "\n"
	}
	if err := os.WriteFile(filepath.Join(path, yyyymm+".csv"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func klineRow(openMS, closeMS int64, price string) string {
	return "" +
		itoa(openMS) + "," + price + "," + price + "," + price + "," + price + ",1," +
		itoa(closeMS) + ",1,1,1,1"
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestStreamTakeInOrder(t *testing.T) {
	dir := t.TempDir()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	writeKlineFile(t, dir, "BTCUSDT", "202401", []string{
		klineRow(t0.UnixMilli(), t0.Add(59*time.Second).UnixMilli(), "100"),
		klineRow(t1.UnixMilli(), t1.Add(59*time.Second).UnixMilli(), "101"),
	})

	begin := t0
	end := t0.Add(2 * time.Minute)
	s := Open(dir, "BTCUSDT", KindKlines, begin, end)
	defer s.Close()

	rec, ok, err := s.Take(t0)
	if err != nil || !ok {
		t.Fatalf("Take(t0) = %v, %v, %v", rec, ok, err)
	}
	if !rec.DateTime().Equal(t0) {
		t.Errorf("DateTime = %v, want %v", rec.DateTime(), t0)
	}

	// No record at t0+30s: head (t1) is still in the future.
	_, ok, err = s.Take(t0.Add(30 * time.Second))
	if err != nil || ok {
		t.Fatalf("Take(t0+30s) should be empty, got ok=%v err=%v", ok, err)
	}

	rec, ok, err = s.Take(t1)
	if err != nil || !ok {
		t.Fatalf("Take(t1) = %v, %v, %v", rec, ok, err)
	}
	if !rec.DateTime().Equal(t1) {
		t.Errorf("DateTime = %v, want %v", rec.DateTime(), t1)
	}

	_, ok, err = s.Take(t1.Add(time.Minute))
	if err != nil || ok {
		t.Fatalf("stream should be exhausted, got ok=%v err=%v", ok, err)
	}
}

func TestStreamMissingMonthIsEmpty(t *testing.T) {
	dir := t.TempDir()
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	s := Open(dir, "ETHUSDT", KindFundingRate, begin, end)
	defer s.Close()

	_, ok, err := s.Take(begin)
	if err != nil || ok {
		t.Fatalf("missing archive should yield no records, got ok=%v err=%v", ok, err)
	}
}

func TestStreamMalformedRowReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "BTCUSDT", string(KindKlines), priceInterval)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(path, "202401.csv"), []byte("not,enough,columns\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := Open(dir, "BTCUSDT", KindKlines, begin, end)
	defer s.Close()

	_, _, err := s.Take(begin)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}
