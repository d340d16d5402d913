// internal/catalog/ingest.go
package catalog

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/egpt/storebuilder/internal/models"
)

var (
	// ErrUnsupportedFile means the filename failed the extension gate and
	// no parse was attempted.
	ErrUnsupportedFile = errors.New("Please upload an Excel file (.xlsx or .xls)")

	// ErrParseFailed is the single generic error for corrupt or unreadable
	// workbooks. Row validation never runs when parsing fails.
	ErrParseFailed = errors.New("Failed to parse Excel file. Please check the format.")
)

// Recognized header names. Row 1 of the first sheet is matched against
// these exactly; unrecognized columns are ignored, missing columns map to
// zero values.
const (
	ColProductName      = "Product Name"
	ColShortDescription = "Short Description"
	ColPrice            = "Price"
	ColCategory         = "Category"
	ColStock            = "Stock"
	ColImageURL         = "Image URL"
)

// CheckExtension is the file-type gate. It only inspects the name; the
// bytes are not sniffed.
func CheckExtension(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return nil
	}
	return ErrUnsupportedFile
}

// Parse reads the first sheet of a workbook into products. Each row after
// the header becomes one Product; numeric cells are coerced permissively,
// with non-numeric values becoming 0. Parse has no side effects, so
// re-parsing the same bytes yields the same list.
func Parse(r io.Reader) ([]models.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrParseFailed
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrParseFailed
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrParseFailed
	}
	if len(rows) == 0 {
		return []models.Product{}, nil
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[name] = i
	}

	products := make([]models.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		products = append(products, models.Product{
			Name:             cell(ColProductName),
			ShortDescription: cell(ColShortDescription),
			Price:            toNumber(cell(ColPrice)),
			Category:         cell(ColCategory),
			Stock:            int(toNumber(cell(ColStock))),
			ImageURL:         cell(ColImageURL),
		})
	}

	return products, nil
}

// Validate accumulates one message per violated field per row. Row numbers
// are spreadsheet rows, so data row i reports as row i+2 to account for
// the header. A non-empty return means the caller must not hand the list
// to the enhancement stage.
func Validate(products []models.Product) []string {
	var errs []string

	for i, p := range products {
		row := i + 2
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Product name is required", row))
		}
		if strings.TrimSpace(p.ShortDescription) == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Description is required", row))
		}
		if p.Price <= 0 {
			errs = append(errs, fmt.Sprintf("Row %d: Price must be greater than 0", row))
		}
		if strings.TrimSpace(p.Category) == "" {
			errs = append(errs, fmt.Sprintf("Row %d: Category is required", row))
		}
		if p.Stock < 0 {
			errs = append(errs, fmt.Sprintf("Row %d: Stock cannot be negative", row))
		}
	}

	return errs
}

// Ingest runs the full pipeline: extension gate, parse, validate. The
// parsed list is returned alongside any validation messages, but callers
// must treat a non-empty message list as a failed ingestion.
func Ingest(filename string, r io.Reader) ([]models.Product, []string, error) {
	if err := CheckExtension(filename); err != nil {
		return nil, nil, err
	}

	products, err := Parse(r)
	if err != nil {
		return nil, nil, err
	}

	return products, Validate(products), nil
}

func toNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
