// internal/enhance/images.go
package enhance

import "strings"

type categoryImage struct {
	Category string
	URL      string
}

// categoryImages is the finite category-to-image table. Lookups are
// case-insensitive; anything not listed falls back to defaultProductImage,
// so the mapping is total over all category strings.
var categoryImages = []categoryImage{
	{"jewelry", "https://images.pexels.com/photos/1020370/pexels-photo-1020370.jpeg"},
	{"clothing", "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg"},
	{"accessories", "https://images.pexels.com/photos/1445528/pexels-photo-1445528.jpeg"},
	{"home", "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg"},
}

const defaultProductImage = "https://images.pexels.com/photos/1300957/pexels-photo-1300957.jpeg"

// ImageForCategory maps a product category to its representative image
// URL. The category string itself is never mutated.
func ImageForCategory(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	for _, ci := range categoryImages {
		if ci.Category == key {
			return ci.URL
		}
	}
	return defaultProductImage
}
