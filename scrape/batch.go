package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/novelgrab/novelgrab"
)

// Runner executes a batch of scrape attempts strictly sequentially, in
// input order. One browser session is in flight at a time; it is released
// before the next URL starts.
type Runner struct {
	Scraper novelgrab.PageScraper
	Writer  novelgrab.ArtifactWriter
	History novelgrab.HistoryStore  // optional
	Robots  novelgrab.RobotsChecker // optional
	Limiter *DomainLimiter          // optional
	Logger  *slog.Logger
}

// Run scrapes every URL in order, writes the combined artifact, and returns
// the summary. When the caller supplies no selector, the selector the first
// URL discovers is reused verbatim for the rest of the batch; the batch is
// assumed to target a single site template. Per-page failures are recorded
// in their results and never interrupt the batch; only artifact write
// failure is returned as an error.
func (r *Runner) Run(ctx context.Context, urls []string, selector string, appendMode bool, progress novelgrab.ProgressFunc) (*novelgrab.BatchSummary, error) {
	runID := uuid.New().String()
	logger := r.logger().With("run_id", runID)

	if r.History != nil {
		run := &novelgrab.Run{ID: runID, StartedAt: time.Now().UTC(), URLCount: len(urls)}
		if err := r.History.CreateRun(ctx, run); err != nil {
			logger.Warn("recording run", "err", err)
		}
	}

	supplied := selector != ""
	summary := &novelgrab.BatchSummary{}
	seenHashes := make(map[uint64]string)

	for i, pageURL := range urls {
		logger.Info("scraping", "position", i+1, "total", len(urls), "url", pageURL)

		result := r.scrapeOne(ctx, pageURL, selector)
		summary.Results = append(summary.Results, result)
		if result.Succeeded() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}

		if i == 0 && !supplied && result.Selector != "" {
			selector = result.Selector
			logger.Info("reusing detected selector for remaining urls", "selector", selector)
		}

		if result.Succeeded() {
			hash := xxhash.Sum64String(result.Content)
			if prev, ok := seenHashes[hash]; ok {
				// Identical captures usually mean an anti-bot
				// interstitial, not two identical chapters.
				logger.Warn("identical content captured twice", "url", pageURL, "duplicate_of", prev)
			} else {
				seenHashes[hash] = pageURL
			}
		}

		if r.History != nil {
			if err := r.History.RecordResult(ctx, runID, i, result); err != nil {
				logger.Warn("recording result", "url", pageURL, "err", err)
			}
		}

		if progress != nil {
			progress(novelgrab.ProgressEvent{
				URL:      pageURL,
				Position: i + 1,
				Total:    len(urls),
				Selector: result.Selector,
				Err:      result.Err,
			})
		}
	}

	if err := r.Writer.WriteArtifact(summary.Results, appendMode); err != nil {
		return summary, err
	}

	return summary, nil
}

// scrapeOne applies the robots gate and pacing before handing the URL to
// the page scraper. Gate failures become per-URL results, not batch errors.
func (r *Runner) scrapeOne(ctx context.Context, pageURL, selector string) *novelgrab.ScrapeResult {
	if r.Robots != nil {
		allowed, err := r.Robots.Allowed(ctx, pageURL)
		if err != nil {
			r.logger().Warn("robots check failed, proceeding", "url", pageURL, "err", err)
		} else if !allowed {
			return &novelgrab.ScrapeResult{URL: pageURL, Err: "disallowed by robots.txt"}
		}
	}

	if r.Limiter != nil {
		if host := hostOf(pageURL); host != "" {
			if err := r.Limiter.Wait(ctx, host); err != nil {
				return &novelgrab.ScrapeResult{URL: pageURL, Err: err.Error()}
			}
		}
	}

	return r.Scraper.ScrapePage(ctx, pageURL, selector)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
