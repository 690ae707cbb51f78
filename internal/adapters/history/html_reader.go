package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/SscSPs/growth_estimator/internal/middleware"
)

// HTMLTableReader downloads a web page and reads the first HTML table
// that carries the Revenue, Net Income and Market Share columns.
// Timeouts and retries belong to the download only.
type HTMLTableReader struct {
	client    *http.Client
	retries   int
	backoff   time.Duration
	userAgent string
}

// HTMLOption configures an HTMLTableReader.
type HTMLOption func(*HTMLTableReader)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTMLOption {
	return func(r *HTMLTableReader) { r.client = c }
}

// WithRetries sets how many times a failed download is retried.
func WithRetries(n int, backoff time.Duration) HTMLOption {
	return func(r *HTMLTableReader) {
		r.retries = n
		r.backoff = backoff
	}
}

// WithUserAgent sets the User-Agent header of each download.
func WithUserAgent(ua string) HTMLOption {
	return func(r *HTMLTableReader) { r.userAgent = ua }
}

// NewHTMLTableReader creates a reader whose downloads time out after timeout.
func NewHTMLTableReader(timeout time.Duration, opts ...HTMLOption) *HTMLTableReader {
	r := &HTMLTableReader{
		client:    &http.Client{Timeout: timeout},
		backoff:   500 * time.Millisecond,
		userAgent: "growth-estimator/1.0",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errRetryable marks download failures worth another attempt.
var errRetryable = errors.New("retryable download failure")

// LoadHistory downloads url and parses its history table.
func (r *HTMLTableReader) LoadHistory(ctx context.Context, url string) (*domain.FinancialHistory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying history download",
				slog.String("url", url),
				slog.Int("attempt", attempt+1),
				slog.String("error", lastErr.Error()))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff * time.Duration(attempt)):
			}
		}

		body, err := r.fetch(ctx, url)
		if err == nil {
			defer body.Close()
			return r.Parse(body)
		}
		if !errors.Is(err, errRetryable) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to download history from %s after %d attempts: %w", url, r.retries+1, lastErr)
}

func (r *HTMLTableReader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid history URL %q: %v", apperrors.ErrValidation, url, err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", errRetryable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned 404", apperrors.ErrNotFound, url)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned status %d", errRetryable, url, resp.StatusCode)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
}

// Parse reads the first matching table of an HTML document.
func (r *HTMLTableReader) Parse(in io.Reader) (*domain.FinancialHistory, error) {
	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse HTML: %v", apperrors.ErrValidation, err)
	}

	var (
		history *domain.FinancialHistory
		lastErr error
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}
		header := cellTexts(rows.First())
		if _, err := indexColumns(header); err != nil {
			lastErr = err
			return true
		}

		var records [][]string
		rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
			records = append(records, cellTexts(tr))
		})
		history, lastErr = buildHistory(header, records)
		return false
	})

	if history != nil {
		return history, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: page has no table", apperrors.ErrMissingData)
}

func cellTexts(tr *goquery.Selection) []string {
	var out []string
	tr.Find("th, td").Each(func(_ int, c *goquery.Selection) {
		out = append(out, strings.TrimSpace(c.Text()))
	})
	return out
}
