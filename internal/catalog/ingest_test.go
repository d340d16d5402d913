// internal/catalog/ingest_test.go
package catalog

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var defaultHeader = []interface{}{
	"Product Name", "Short Description", "Price", "Category", "Stock", "Image URL",
}

func workbookBytes(t *testing.T, header []interface{}, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestCheckExtension(t *testing.T) {
	assert.NoError(t, CheckExtension("catalog.xlsx"))
	assert.NoError(t, CheckExtension("catalog.xls"))
	assert.NoError(t, CheckExtension("CATALOG.XLSX"))
	assert.ErrorIs(t, CheckExtension("catalog.csv"), ErrUnsupportedFile)
	assert.ErrorIs(t, CheckExtension("catalog"), ErrUnsupportedFile)
	assert.ErrorIs(t, CheckExtension("catalog.xlsx.txt"), ErrUnsupportedFile)
}

func TestParseValidCatalog(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "Handmade necklace", 1200, "Jewelry", 50, "https://example.com/n.jpg"},
		{"Earrings", "Beaded earrings", 800, "Jewelry", 40, "https://example.com/e.jpg"},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Row order is preserved
	assert.Equal(t, "Necklace", products[0].Name)
	assert.Equal(t, "Handmade necklace", products[0].ShortDescription)
	assert.Equal(t, float64(1200), products[0].Price)
	assert.Equal(t, "Jewelry", products[0].Category)
	assert.Equal(t, 50, products[0].Stock)
	assert.Equal(t, "https://example.com/n.jpg", products[0].ImageURL)
	assert.Equal(t, "Earrings", products[1].Name)
}

func TestParseIsIdempotent(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "desc", 1200, "Jewelry", 50, "url"},
	})

	first, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	second, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseCorruptFile(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("this is not a workbook")))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestParseHeaderOnly(t *testing.T) {
	data := workbookBytes(t, defaultHeader, nil)

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestParseIgnoresUnrecognizedColumns(t *testing.T) {
	header := []interface{}{"Product Name", "Short Description", "Price", "Category", "Stock", "Image URL", "Warehouse"}
	data := workbookBytes(t, header, [][]interface{}{
		{"Necklace", "desc", 1200, "Jewelry", 50, "url", "East"},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Necklace", products[0].Name)
}

func TestParseMissingColumnsDefault(t *testing.T) {
	header := []interface{}{"Product Name", "Price"}
	data := workbookBytes(t, header, [][]interface{}{
		{"Necklace", 1200},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "", products[0].ShortDescription)
	assert.Equal(t, "", products[0].Category)
	assert.Equal(t, 0, products[0].Stock)
	assert.Equal(t, "", products[0].ImageURL)
}

func TestParseCoercesNonNumericToZero(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "desc", "twelve", "Jewelry", "many", "url"},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, float64(0), products[0].Price)
	assert.Equal(t, 0, products[0].Stock)
}

func TestParseCaseSensitiveHeaders(t *testing.T) {
	header := []interface{}{"product name", "Short Description", "Price", "Category", "Stock", "Image URL"}
	data := workbookBytes(t, header, [][]interface{}{
		{"Necklace", "desc", 1200, "Jewelry", 50, "url"},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 1)
	// "product name" does not match the recognized header exactly
	assert.Equal(t, "", products[0].Name)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "desc", 1200, "Jewelry", 50, "url"},
		{"", "desc", 0, "", -1, ""},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, products, 2)

	errs := Validate(products)
	require.Len(t, errs, 4)
	assert.Contains(t, errs, "Row 3: Product name is required")
	assert.Contains(t, errs, "Row 3: Price must be greater than 0")
	assert.Contains(t, errs, "Row 3: Category is required")
	assert.Contains(t, errs, "Row 3: Stock cannot be negative")
}

func TestValidateCleanCatalog(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "desc", 1200, "Jewelry", 50, "url"},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, Validate(products))
}

func TestValidateBlankDescription(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "   ", 1200, "Jewelry", 50, "url"},
	})

	products, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)

	errs := Validate(products)
	require.Len(t, errs, 1)
	assert.Equal(t, "Row 2: Description is required", errs[0])
}

func TestIngestRejectsExtensionBeforeParse(t *testing.T) {
	_, _, err := Ingest("catalog.csv", bytes.NewReader([]byte("anything")))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestIngestReturnsProductsAlongsideErrors(t *testing.T) {
	data := workbookBytes(t, defaultHeader, [][]interface{}{
		{"Necklace", "desc", 1200, "Jewelry", 50, "url"},
		{"", "desc", 0, "", -1, ""},
	})

	products, rowErrors, err := Ingest("sample.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, rowErrors, 4)
	assert.Len(t, products, 2)
}
