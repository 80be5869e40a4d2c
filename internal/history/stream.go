// Package history implements the lazy, chronologically-ordered historical
// data stream the event loop polls once per tick.
//
// Each (symbol, kind) pair gets its own producer goroutine, managed by a
// golang.org/x/sync/errgroup. A decode failure is sent down the stream's
// channel and returned by the next Take call; Close cancels a producer
// that is blocked offering a record nobody wants anymore and waits for it.
package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"destiny/internal/csvdata"
	"destiny/internal/timeutil"
)

// Kind names one of the four archive streams the core reads per symbol.
type Kind string

const (
	KindFundingRate      Kind = "fundingRate"
	KindKlines           Kind = "klines"
	KindIndexPriceKlines Kind = "indexPriceKlines"
	KindMarkPriceKlines  Kind = "markPriceKlines"
)

// bufferCapacity is the bounded channel size between producer and consumer.
const bufferCapacity = 10000

// priceInterval is the only kline interval the core consumes for price refresh.
const priceInterval = "1m"

type item struct {
	rec csvdata.Record
	err error
}

// Stream is a lazy, finite, non-restartable chronological sequence of
// records for a fixed (symbol, kind, begin, end) tuple.
type Stream struct {
	ch     chan item
	cancel context.CancelFunc
	group  *errgroup.Group

	pending    csvdata.Record
	hasPending bool
	exhausted  bool
	err        error
}

// Open starts the producer and returns a Stream ready for Take calls.
func Open(cacheDir, symbol string, kind Kind, begin, end time.Time) *Stream {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	s := &Stream{
		ch:     make(chan item, bufferCapacity),
		cancel: cancel,
		group:  g,
	}
	g.Go(func() error {
		return produce(ctx, s.ch, cacheDir, symbol, kind, begin, end)
	})
	return s
}

// Take advances through the sequence until the head record's timestamp is
// >= at. A head exactly at `at` is consumed and returned; a head after `at`
// is left pending; an exhausted or errored sequence returns (nil, false, err).
func (s *Stream) Take(at time.Time) (csvdata.Record, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}

	for {
		if !s.hasPending {
			if s.exhausted {
				return nil, false, nil
			}
			it, ok := <-s.ch
			if !ok {
				s.exhausted = true
				return nil, false, nil
			}
			if it.err != nil {
				s.err = it.err
				return nil, false, it.err
			}
			s.pending = it.rec
			s.hasPending = true
		}

		t := s.pending.DateTime()
		switch {
		case t.Before(at):
			// Stale record nobody asked for in time; drop and keep advancing.
			s.hasPending = false
			continue
		case t.Equal(at):
			rec := s.pending
			s.hasPending = false
			return rec, true, nil
		default:
			return nil, false, nil
		}
	}
}

// Close cancels the producer (unblocking it if it is offering a record on
// a full buffer) and waits for it to exit.
func (s *Stream) Close() {
	s.cancel()
	_ = s.group.Wait()
}

func produce(ctx context.Context, ch chan<- item, cacheDir, symbol string, kind Kind, begin, end time.Time) error {
	defer close(ch)

	month := timeutil.TruncMonth(begin)
	endMonth := timeutil.TruncMonth(end)

	for !month.After(endMonth) {
		records, err := loadMonth(cacheDir, symbol, kind, month)
		if err != nil {
			select {
			case ch <- item{err: err}:
			case <-ctx.Done():
			}
			return err
		}

		for _, rec := range records {
			t := rec.DateTime()
			if t.Before(begin) || t.After(end) {
				continue
			}
			select {
			case ch <- item{rec: rec}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		month = timeutil.NextMonth(month)
	}
	return nil
}

// loadMonth reads one monthly CSV file. A missing file is an empty month,
// not an error — gaps in the archive are legal.
func loadMonth(cacheDir, symbol string, kind Kind, month time.Time) ([]csvdata.Record, error) {
	path := monthPath(cacheDir, symbol, kind, month)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("history: read %s: %w", path, err)
	}

	records := make([]csvdata.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := decodeRow(kind, row)
		if err != nil {
			return nil, fmt.Errorf("history: decode %s row %d: %w", path, i, err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].DateTime().Before(records[j].DateTime())
	})
	return records, nil
}

func decodeRow(kind Kind, row []string) (csvdata.Record, error) {
	if kind == KindFundingRate {
		return csvdata.DecodeFundingRate(row)
	}
	return csvdata.DecodeKline(row)
}

// monthPath resolves the on-disk path for one monthly archive file,
// following the on-disk cache layout.
func monthPath(cacheDir, symbol string, kind Kind, month time.Time) string {
	filename := timeutil.YYYYMM(month) + ".csv"
	if kind == KindFundingRate {
		return filepath.Join(cacheDir, symbol, string(kind), filename)
	}
	return filepath.Join(cacheDir, symbol, string(kind), priceInterval, filename)
}
