package history

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
)

// CSVReader loads a history table from a CSV file whose first row is the header.
type CSVReader struct {
	Comma rune // Field delimiter; ',' when zero
}

// NewCSVReader creates a comma-separated reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{Comma: ','}
}

// LoadHistory reads the CSV file at path.
func (r *CSVReader) LoadHistory(ctx context.Context, path string) (*domain.FinancialHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: history file %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open history file %s: %w", path, err)
	}
	defer f.Close()

	return r.Parse(ctx, f)
}

// Parse reads a CSV history table from in.
func (r *CSVReader) Parse(_ context.Context, in io.Reader) (*domain.FinancialHistory, error) {
	reader := csv.NewReader(in)
	if r.Comma != 0 {
		reader.Comma = r.Comma
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed CSV: %v", apperrors.ErrValidation, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: CSV file is empty", apperrors.ErrMissingData)
	}
	// Excel's "CSV UTF-8" export starts with a byte order mark.
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	return buildHistory(records[0], records[1:])
}
