// Package fetcher downloads a user's complete check-in history page by page.
// Fetching is strictly sequential: one request at a time, a minimum delay
// between requests, and bounded retries per page. Artifacts are written only
// after the whole history has been fetched, so a failed download never
// leaves a truncated collection behind.
package fetcher

import (
	"time"

	"swarmscraper/pkg/config"
	"swarmscraper/pkg/foursquare"
	"swarmscraper/pkg/logger"
	"swarmscraper/pkg/ratelimit"
	"swarmscraper/pkg/retry"
	"swarmscraper/pkg/storage"
)

// Client is the slice of the API client the fetcher needs
type Client interface {
	HistoryPage(userID string, offset, limit int) (*foursquare.CheckinGroup, error)
}

// ProgressFunc receives the running count of fetched check-ins and the
// endpoint-reported total (0 when the endpoint reports none)
type ProgressFunc func(fetched, total int)

// Fetcher assembles a complete Collection from the paginated history endpoint
type Fetcher struct {
	client   Client
	limiter  ratelimit.Limiter
	retryCfg *retry.Config
	pageSize int
	logger   logger.Logger
	progress ProgressFunc

	// now is swappable for tests
	now func() time.Time
}

// New creates a fetcher from the fetch configuration
func New(client Client, cfg *config.FetchConfig, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.GetLogger()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > foursquare.MaxPageSize {
		pageSize = foursquare.DefaultPageSize
	}

	retryCfg := &retry.Config{
		MaxAttempts: cfg.MaxRetries,
		Backoff: &retry.ExponentialBackoff{
			BaseDelay:    cfg.RetryDelay,
			MaxDelay:     60 * time.Second,
			Multiplier:   2.0,
			JitterFactor: 0.1,
		},
		RetryIf: retry.DefaultRetryIf,
		Logger:  log,
	}

	return &Fetcher{
		client:   client,
		limiter:  ratelimit.NewInterval(cfg.RequestDelay),
		retryCfg: retryCfg,
		pageSize: pageSize,
		logger:   log,
		now:      time.Now,
	}
}

// SetLimiter replaces the rate limiter (used by tests)
func (f *Fetcher) SetLimiter(l ratelimit.Limiter) {
	f.limiter = l
}

// SetProgress registers a progress callback invoked after every page
func (f *Fetcher) SetProgress(fn ProgressFunc) {
	f.progress = fn
}

// FetchAll pages through the user's history and returns the complete
// collection. Pagination stops at the first short page, or once the
// cumulative count reaches the endpoint-reported total, whichever signal
// fires first; an absent total leaves short-page detection in charge.
func (f *Fetcher) FetchAll(userID string) (*foursquare.Collection, error) {
	f.logger.InfoWithFields("starting check-in download", map[string]interface{}{
		"user_id":   userID,
		"page_size": f.pageSize,
	})

	var all []foursquare.CheckIn
	offset := 0
	total := 0

	for {
		f.limiter.Wait()

		page, err := retry.DoWithResult(func() (*foursquare.CheckinGroup, error) {
			return f.client.HistoryPage(userID, offset, f.pageSize)
		}, f.retryCfg)
		if err != nil {
			f.logger.ErrorWithFields("download aborted", map[string]interface{}{
				"user_id": userID,
				"offset":  offset,
				"fetched": len(all),
				"error":   err.Error(),
			})
			return nil, err
		}

		if total == 0 {
			total = page.Count
		}

		all = append(all, page.Items...)

		f.logger.InfoWithFields("fetched history page", map[string]interface{}{
			"offset":  offset,
			"items":   len(page.Items),
			"fetched": len(all),
			"total":   total,
		})
		if f.progress != nil {
			f.progress(len(all), total)
		}

		// Short page (including empty) is the authoritative end signal
		if len(page.Items) < f.pageSize {
			break
		}
		if total > 0 && offset+len(page.Items) >= total {
			break
		}

		offset += f.pageSize
	}

	// The declared total is what was actually fetched, not the endpoint's
	// claim, so downstream consumers never see a mismatched count.
	return &foursquare.Collection{
		DownloadedAt:  f.now().UTC(),
		UserID:        userID,
		TotalCheckins: len(all),
		Checkins:      all,
	}, nil
}

// Download fetches the complete history and persists both artifacts. Nothing
// is written unless the full download succeeded.
func (f *Fetcher) Download(userID string, store *storage.Manager) (*foursquare.Collection, error) {
	col, err := f.FetchAll(userID)
	if err != nil {
		return nil, err
	}

	if err := store.SaveCollection(col); err != nil {
		return nil, err
	}
	if err := store.SaveSummaries(col.Summaries()); err != nil {
		return nil, err
	}

	f.logger.InfoWithFields("download complete", map[string]interface{}{
		"user_id":    userID,
		"checkins":   col.TotalCheckins,
		"collection": store.CollectionPath(),
		"summary":    store.SummaryPath(),
	})

	return col, nil
}
