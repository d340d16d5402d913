// internal/models/brand.go
package models

import (
	"fmt"
	"html"
)

const (
	BrandName    = "Egpt"
	BrandTagline = "Type, Launch, and Sell in 10 mins"
)

type BrandSEO struct {
	Title string `json:"title"`
}

type Brand struct {
	Name    string    `json:"name"`
	Tagline string    `json:"tagline"`
	LogoSVG string    `json:"logo_svg,omitempty"`
	SEO     *BrandSEO `json:"seo,omitempty"`
}

func DefaultBrand() Brand {
	return Brand{
		Name:    BrandName,
		Tagline: BrandTagline,
	}
}

// LogoSpec is a typed description of the generated brand logo: a rounded
// rectangle with the brand name centered in it. Keeping the logo as data
// instead of raw markup means the brand name is escaped exactly once, at
// render time.
type LogoSpec struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	CornerRadius int    `json:"corner_radius"`
	Fill         string `json:"fill"`
	Text         string `json:"text"`
	TextColor    string `json:"text_color"`
	FontFamily   string `json:"font_family"`
	FontSize     int    `json:"font_size"`
}

func DefaultLogo(text string) LogoSpec {
	return LogoSpec{
		Width:        100,
		Height:       40,
		CornerRadius: 8,
		Fill:         "#2563EB",
		Text:         text,
		TextColor:    "white",
		FontFamily:   "Arial, sans-serif",
		FontSize:     14,
	}
}

// SVG renders the logo as inline vector markup. The text node is
// HTML-escaped so a hostile brand name cannot break out of the element.
func (l LogoSpec) SVG() string {
	return fmt.Sprintf(
		`<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+
			`<rect width="%d" height="%d" fill="%s" rx="%d"/>`+
			`<text x="%d" y="%d" text-anchor="middle" fill="%s" font-family="%s" font-size="%d" font-weight="bold">%s</text>`+
			`</svg>`,
		l.Width, l.Height,
		l.Width, l.Height, l.Fill, l.CornerRadius,
		l.Width/2, l.Height/2+l.FontSize/2-2, l.TextColor, l.FontFamily, l.FontSize,
		html.EscapeString(l.Text),
	)
}
