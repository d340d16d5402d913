// internal/catalog/template.go
package catalog

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// TemplateFilename is the download name offered for the generated
// template workbook.
const TemplateFilename = "egpt-product-template.xlsx"

var templateHeader = []interface{}{
	ColProductName, ColShortDescription, ColPrice, ColCategory, ColStock, ColImageURL,
}

var templateRows = [][]interface{}{
	{"Bohemian Necklace", "Handmade necklace with beads and stones", 1200, "Jewelry", 50, "https://images.pexels.com/photos/1020370/pexels-photo-1020370.jpeg"},
	{"Beaded Earrings", "Colorful handmade earrings with beads", 800, "Jewelry", 40, "https://images.pexels.com/photos/1445528/pexels-photo-1445528.jpeg"},
	{"Silver Ring", "Elegant silver ring with gemstone", 1500, "Jewelry", 25, "https://images.pexels.com/photos/1300957/pexels-photo-1300957.jpeg"},
}

var templateInstructions = [][]interface{}{
	{"Field", "Description", "Example"},
	{ColProductName, "The name of your product", "Bohemian Necklace"},
	{ColShortDescription, "Brief description of the product", "Handmade necklace with beads and stones"},
	{ColPrice, "Product price (numbers only)", "1200"},
	{ColCategory, "Product category", "Jewelry"},
	{ColStock, "Available quantity", "50"},
	{ColImageURL, "Link to product image", "https://example.com/image.jpg"},
}

// WriteTemplate generates the downloadable template workbook: a
// "Products" sheet with the recognized header and three example rows, and
// an "Instructions" sheet describing each field.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const productsSheet = "Products"
	if err := f.SetSheetName(f.GetSheetName(0), productsSheet); err != nil {
		return fmt.Errorf("failed to create products sheet: %w", err)
	}

	if err := f.SetSheetRow(productsSheet, "A1", &templateHeader); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}
	for i, row := range templateRows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(productsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sample row %d: %w", i+2, err)
		}
	}

	const instructionsSheet = "Instructions"
	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return fmt.Errorf("failed to create instructions sheet: %w", err)
	}
	for i, row := range templateInstructions {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(instructionsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write instruction row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write template workbook: %w", err)
	}
	return nil
}
