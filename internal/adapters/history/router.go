package history

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/growth_estimator/internal/middleware"
)

// Router picks a table provider from the shape of the source string:
//
//	http://..., https://...  HTML table download
//	db://TICKER              financial_history table
//	*.xlsx, *.xlsx#Sheet     Excel workbook
//	*.csv                    CSV file
type Router struct {
	HTML     portsrepo.HistoryReader
	Database portsrepo.HistoryReader // nil when no database is configured
	XLSX     portsrepo.HistoryReader
	CSV      portsrepo.HistoryReader
}

var _ portsrepo.HistoryReader = (*Router)(nil)

// LoadHistory dispatches source to the matching reader.
func (r *Router) LoadHistory(ctx context.Context, source string) (*domain.FinancialHistory, error) {
	source = strings.TrimSpace(source)
	reader, kind, err := r.readerFor(source)
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Loading financial history",
		slog.String("source", source),
		slog.String("kind", kind))
	return reader.LoadHistory(ctx, source)
}

func (r *Router) readerFor(source string) (portsrepo.HistoryReader, string, error) {
	lower := strings.ToLower(source)
	path, _ := splitSheet(lower)

	var (
		reader portsrepo.HistoryReader
		kind   string
	)
	switch {
	case source == "":
		return nil, "", fmt.Errorf("%w: history source is required", apperrors.ErrValidation)
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		reader, kind = r.HTML, "html"
	case strings.HasPrefix(lower, DatabaseScheme):
		reader, kind = r.Database, "database"
	case filepath.Ext(path) == ".xlsx", filepath.Ext(path) == ".xlsm":
		reader, kind = r.XLSX, "xlsx"
	case filepath.Ext(lower) == ".csv":
		reader, kind = r.CSV, "csv"
	default:
		return nil, "", fmt.Errorf("%w: unsupported history source %q (expected .csv, .xlsx, http(s):// or db://)", apperrors.ErrValidation, source)
	}

	if reader == nil {
		return nil, "", fmt.Errorf("%w: %s history sources are not configured", apperrors.ErrValidation, kind)
	}
	return reader, kind, nil
}

// RouterOptions configures NewRouter.
type RouterOptions struct {
	DownloadTimeout time.Duration
	DownloadRetries int
	UserAgent       string
	// Finder backs db:// sources; nil leaves them unsupported.
	Finder portsrepo.HistoryFinder
}

// NewRouter wires every table provider.
func NewRouter(opts RouterOptions) *Router {
	htmlOpts := []HTMLOption{WithRetries(opts.DownloadRetries, 500*time.Millisecond)}
	if opts.UserAgent != "" {
		htmlOpts = append(htmlOpts, WithUserAgent(opts.UserAgent))
	}

	r := &Router{
		HTML: NewHTMLTableReader(opts.DownloadTimeout, htmlOpts...),
		XLSX: NewXLSXReader(),
		CSV:  NewCSVReader(),
	}
	if opts.Finder != nil {
		r.Database = NewDatabaseReader(opts.Finder)
	}
	return r
}
