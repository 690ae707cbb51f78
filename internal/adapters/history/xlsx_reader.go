package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/growth_estimator/internal/apperrors"
	"github.com/SscSPs/growth_estimator/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

var workbookExtensions = []string{".xlsx", ".xlsm"}

// XLSXReader loads a history table from an Excel workbook.
// The source may name a sheet after a '#', e.g. "acme.xlsx#Financials";
// otherwise the first sheet is read. The header is the first non-blank row.
type XLSXReader struct{}

// NewXLSXReader creates an Excel reader.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// LoadHistory reads the workbook named by source.
func (r *XLSXReader) LoadHistory(_ context.Context, source string) (*domain.FinancialHistory, error) {
	path, sheet := splitSheet(source)

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: history workbook %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: cannot open workbook %s: %v", apperrors.ErrValidation, path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook %s has no sheets", apperrors.ErrMissingData, path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q in %s: %v", apperrors.ErrNotFound, sheet, path, err)
	}

	for i, row := range rows {
		if !isBlank(row) {
			return buildHistory(row, rows[i+1:])
		}
	}
	return nil, fmt.Errorf("%w: sheet %q in %s is empty", apperrors.ErrMissingData, sheet, path)
}

// splitSheet separates "book.xlsx#Sheet" into path and sheet. A '#' only
// names a sheet when it directly follows a workbook extension.
func splitSheet(source string) (path, sheet string) {
	lower := strings.ToLower(source)
	for _, ext := range workbookExtensions {
		if i := strings.LastIndex(lower, ext+"#"); i >= 0 {
			return source[:i+len(ext)], source[i+len(ext)+1:]
		}
	}
	return source, ""
}
