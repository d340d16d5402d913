// internal/models/theme.go
package models

type LayoutType string

const (
	LayoutGrid    LayoutType = "grid"
	LayoutList    LayoutType = "list"
	LayoutMasonry LayoutType = "masonry"
)

type ThemeStyle struct {
	PrimaryColor   string     `json:"primary_color"`
	SecondaryColor string     `json:"secondary_color"`
	FontFamily     string     `json:"font_family"`
	LayoutType     LayoutType `json:"layout_type"`
}

// Theme is a pre-seeded visual style for the storefront renderer. The
// catalog is fixed at build time and immutable at runtime.
type Theme struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	PreviewImage string     `json:"preview_image"`
	Style        ThemeStyle `json:"style"`
}

var themes = []Theme{
	{
		ID:           "modern",
		Name:         "Modern Minimalist",
		Description:  "Clean lines, plenty of white space, and contemporary typography",
		PreviewImage: "https://images.pexels.com/photos/4041392/pexels-photo-4041392.jpeg",
		Style: ThemeStyle{
			PrimaryColor:   "#2563EB",
			SecondaryColor: "#F8FAFC",
			FontFamily:     "Inter, sans-serif",
			LayoutType:     LayoutGrid,
		},
	},
	{
		ID:           "classic",
		Name:         "Classic Elegance",
		Description:  "Timeless design with sophisticated colors and traditional layouts",
		PreviewImage: "https://images.pexels.com/photos/6214476/pexels-photo-6214476.jpeg",
		Style: ThemeStyle{
			PrimaryColor:   "#059669",
			SecondaryColor: "#F0FDF4",
			FontFamily:     "Playfair Display, serif",
			LayoutType:     LayoutList,
		},
	},
	{
		ID:           "vibrant",
		Name:         "Vibrant Creative",
		Description:  "Bold colors, dynamic layouts, and creative typography",
		PreviewImage: "https://images.pexels.com/photos/3965548/pexels-photo-3965548.jpeg",
		Style: ThemeStyle{
			PrimaryColor:   "#EA580C",
			SecondaryColor: "#FFF7ED",
			FontFamily:     "Poppins, sans-serif",
			LayoutType:     LayoutMasonry,
		},
	},
}

// Themes returns a copy of the theme catalog so callers cannot mutate the
// seeded entries.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

func ThemeByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
