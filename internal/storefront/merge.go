// internal/storefront/merge.go
package storefront

import "github.com/egpt/storebuilder/internal/models"

// Storefront is the display-ready assembly handed to the renderer.
type Storefront struct {
	Brand    models.Brand     `json:"brand"`
	Theme    models.Theme     `json:"theme"`
	Products []models.Product `json:"products"`
}

// Merge overlays enhancement results onto the original catalog. Products
// keep their original order; each one takes the description and image of
// the first result whose name matches exactly, or keeps its own fields
// when no result matches.
func Merge(products []models.Product, results []models.EnhancedProduct) []models.Product {
	merged := make([]models.Product, len(products))
	for i, p := range products {
		for _, r := range results {
			if r.ProductName == p.Name {
				p.UpdatedDescription = r.UpdatedDescription
				p.UpdatedImageURL = r.UpdatedImageURL
				break
			}
		}
		merged[i] = p
	}
	return merged
}

// DisplayDescription returns the enhanced description when present,
// otherwise the original.
func DisplayDescription(p models.Product) string {
	if p.UpdatedDescription != "" {
		return p.UpdatedDescription
	}
	return p.ShortDescription
}

// DisplayImageURL returns the enhanced image reference when present,
// otherwise the original.
func DisplayImageURL(p models.Product) string {
	if p.UpdatedImageURL != "" {
		return p.UpdatedImageURL
	}
	return p.ImageURL
}

// Assemble builds the final storefront from a theme, the original catalog
// and the enhancement response.
func Assemble(theme models.Theme, products []models.Product, resp *models.EnhancementResponse) Storefront {
	return Storefront{
		Brand:    resp.Brand,
		Theme:    theme,
		Products: Merge(products, resp.Products),
	}
}
