// Package download fetches the monthly archival CSV files the history
// stream reads, from a remote archive mirror, into the on-disk cache layout
// history.Open expects. Requests are rate-limited by nothing — the archive
// is a static mirror with no documented quota — but concurrent requests for
// the same file are deduplicated with singleflight, mirroring the resty
// client wrapping the bot's exchange REST client uses for retry and base
// URL configuration.
package download

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"destiny/internal/history"
	"destiny/internal/metastore"
	"destiny/internal/timeutil"
)

// Fetcher downloads monthly archive files into a local cache directory,
// skipping files already present on disk. If meta is non-nil, every
// successful fetch (and every 404 treated as an empty month) is also
// recorded there, so a caller can distinguish "never attempted" from
// "fetched, archive had nothing for this month" even after the CSV itself
// is pruned from the cache directory.
type Fetcher struct {
	http     *resty.Client
	cacheDir string
	meta     *metastore.Store
	group    singleflight.Group
}

// New builds a Fetcher against baseURL, writing into cacheDir. meta may be
// nil to skip fetch-history bookkeeping.
func New(baseURL, cacheDir string, timeout time.Duration, meta *metastore.Store) *Fetcher {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() >= 500
		})

	return &Fetcher{http: httpClient, cacheDir: cacheDir, meta: meta}
}

// Fetch downloads every monthly file for (symbol, kind) spanning
// [trunc_month(begin), trunc_month(end)] that is not already cached.
func (f *Fetcher) Fetch(symbol string, kind history.Kind, begin, end time.Time) error {
	month := timeutil.TruncMonth(begin)
	endMonth := timeutil.TruncMonth(end)

	for !month.After(endMonth) {
		if err := f.fetchMonth(symbol, kind, month); err != nil {
			return err
		}
		month = timeutil.NextMonth(month)
	}
	return nil
}

// fetchMonth downloads one monthly file, deduplicating concurrent callers
// asking for the same (symbol, kind, month) via singleflight.
func (f *Fetcher) fetchMonth(symbol string, kind history.Kind, month time.Time) error {
	localPath := monthPath(f.cacheDir, symbol, kind, month)
	if _, err := os.Stat(localPath); err == nil {
		return nil
	}

	key := localPath
	_, err, _ := f.group.Do(key, func() (any, error) {
		return nil, f.download(symbol, kind, month, localPath)
	})
	return err
}

func (f *Fetcher) download(symbol string, kind history.Kind, month time.Time, localPath string) error {
	remotePath := remotePath(symbol, kind, month)

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("download: mkdir %s: %w", filepath.Dir(localPath), err)
	}

	tmpPath := localPath + ".tmp"
	resp, err := f.http.R().SetOutput(tmpPath).Get(remotePath)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("download: get %s: %w", remotePath, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		os.Remove(tmpPath)
		return f.markFetched(symbol, kind, month)
	}
	if resp.StatusCode() != http.StatusOK {
		os.Remove(tmpPath)
		return fmt.Errorf("download: get %s: status %d", remotePath, resp.StatusCode())
	}

	if err := os.Rename(tmpPath, localPath); err != nil {
		return fmt.Errorf("download: rename %s: %w", tmpPath, err)
	}
	return f.markFetched(symbol, kind, month)
}

func (f *Fetcher) markFetched(symbol string, kind history.Kind, month time.Time) error {
	if f.meta == nil {
		return nil
	}
	if err := f.meta.MarkFetched(symbol, string(kind), timeutil.YYYYMM(month), time.Now()); err != nil {
		return fmt.Errorf("download: record fetch %s/%s/%s: %w", symbol, kind, timeutil.YYYYMM(month), err)
	}
	return nil
}

// monthPath mirrors history's on-disk cache layout.
func monthPath(cacheDir, symbol string, kind history.Kind, month time.Time) string {
	filename := timeutil.YYYYMM(month) + ".csv"
	if kind == history.KindFundingRate {
		return filepath.Join(cacheDir, symbol, string(kind), filename)
	}
	return filepath.Join(cacheDir, symbol, string(kind), "1m", filename)
}

// remotePath mirrors the archive's remote layout, one flat path per file.
func remotePath(symbol string, kind history.Kind, month time.Time) string {
	filename := timeutil.YYYYMM(month) + ".csv"
	return fmt.Sprintf("/%s/%s/%s", symbol, kind, filename)
}
