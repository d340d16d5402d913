// internal/models/product.go
package models

// Product is one catalog entry parsed from an uploaded spreadsheet.
// UpdatedDescription and UpdatedImageURL stay empty until the enhancement
// stage has run and its result has been merged back.
type Product struct {
	Name               string  `json:"product_name"`
	ShortDescription   string  `json:"short_description"`
	Price              float64 `json:"price"`
	Category           string  `json:"category"`
	Stock              int     `json:"stock"`
	ImageURL           string  `json:"image_url"`
	UpdatedDescription string  `json:"updated_description,omitempty"`
	UpdatedImageURL    string  `json:"updated_image_url,omitempty"`
}

type ImageGenerationOptions struct {
	Enable                  bool   `json:"enable"`
	PromptStyle             string `json:"prompt_style"`
	UseUserImageAsReference bool   `json:"use_user_image_as_reference"`
}

type EnhancementOptions struct {
	Locale          string                 `json:"locale"`
	Currency        string                 `json:"currency"`
	ImageGeneration ImageGenerationOptions `json:"image_generation"`
	MaxProducts     int                    `json:"max_products"`
}

type EnhancementRequest struct {
	Brand      Brand              `json:"brand"`
	UserPrompt string             `json:"user_prompt"`
	Products   []Product          `json:"products"`
	Options    EnhancementOptions `json:"options"`
}

// EnhancedProduct is the per-product payload of an enhancement response.
// ProductName is the join key used by the storefront merge.
type EnhancedProduct struct {
	ProductName        string `json:"product_name"`
	UpdatedDescription string `json:"updated_description"`
	UpdatedImageURL    string `json:"updated_image_url"`
}

type EnhancementResponse struct {
	Brand    Brand             `json:"brand"`
	Products []EnhancedProduct `json:"products"`
}

func DefaultEnhancementOptions() EnhancementOptions {
	return EnhancementOptions{
		Locale:   "en-IN",
		Currency: "INR",
		ImageGeneration: ImageGenerationOptions{
			Enable:                  true,
			PromptStyle:             "product photo on white background, soft shadows",
			UseUserImageAsReference: true,
		},
		MaxProducts: 100,
	}
}
