// internal/enhance/enhancer_test.go
package enhance

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egpt/storebuilder/internal/models"
)

func testRequest(products ...models.Product) *models.EnhancementRequest {
	return &models.EnhancementRequest{
		Brand:      models.DefaultBrand(),
		UserPrompt: "a handmade jewelry brand",
		Products:   products,
		Options:    models.DefaultEnhancementOptions(),
	}
}

func seededEnhancer(seed int64) *Enhancer {
	return NewEnhancer(0, rand.New(rand.NewSource(seed)))
}

func TestEnhanceProducesOneResultPerProductInOrder(t *testing.T) {
	e := seededEnhancer(1)

	resp, err := e.Enhance(context.Background(), testRequest(
		models.Product{Name: "A", ShortDescription: "first", Category: "Jewelry"},
		models.Product{Name: "B", ShortDescription: "second", Category: "Clothing"},
		models.Product{Name: "C", ShortDescription: "third", Category: "Home"},
	))
	require.NoError(t, err)
	require.Len(t, resp.Products, 3)
	assert.Equal(t, "A", resp.Products[0].ProductName)
	assert.Equal(t, "B", resp.Products[1].ProductName)
	assert.Equal(t, "C", resp.Products[2].ProductName)
}

func TestEnhanceDescriptionShape(t *testing.T) {
	e := seededEnhancer(7)

	resp, err := e.Enhance(context.Background(), testRequest(
		models.Product{Name: "A", ShortDescription: "Handmade necklace", Category: "Jewelry"},
	))
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)

	desc := resp.Products[0].UpdatedDescription
	assert.True(t, strings.HasPrefix(desc, "Handmade necklace, "))
	assert.True(t, strings.HasSuffix(desc, "."))

	clause := strings.TrimSuffix(strings.TrimPrefix(desc, "Handmade necklace, "), ".")
	assert.Contains(t, clauses, clause)
}

func TestEnhanceIsDeterministicUnderSeed(t *testing.T) {
	req := testRequest(
		models.Product{Name: "A", ShortDescription: "first", Category: "Jewelry"},
		models.Product{Name: "B", ShortDescription: "second", Category: "Unknown"},
	)

	first, err := seededEnhancer(42).Enhance(context.Background(), req)
	require.NoError(t, err)
	second, err := seededEnhancer(42).Enhance(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnhanceImageMapping(t *testing.T) {
	e := seededEnhancer(3)

	resp, err := e.Enhance(context.Background(), testRequest(
		models.Product{Name: "A", ShortDescription: "d", Category: "Jewelry"},
		models.Product{Name: "B", ShortDescription: "d", Category: "Unknown"},
	))
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)

	assert.Equal(t, ImageForCategory("jewelry"), resp.Products[0].UpdatedImageURL)
	assert.Equal(t, defaultProductImage, resp.Products[1].UpdatedImageURL)
}

func TestEnhanceHonorsMaxProducts(t *testing.T) {
	e := seededEnhancer(3)

	req := testRequest(
		models.Product{Name: "A", ShortDescription: "d", Category: "Jewelry"},
		models.Product{Name: "B", ShortDescription: "d", Category: "Jewelry"},
		models.Product{Name: "C", ShortDescription: "d", Category: "Jewelry"},
	)
	req.Options.MaxProducts = 2

	resp, err := e.Enhance(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "A", resp.Products[0].ProductName)
	assert.Equal(t, "B", resp.Products[1].ProductName)
}

func TestEnhanceHonorsImageGenerationToggle(t *testing.T) {
	e := seededEnhancer(3)

	req := testRequest(
		models.Product{Name: "A", ShortDescription: "d", Category: "Jewelry", ImageURL: "https://example.com/mine.jpg"},
	)
	req.Options.ImageGeneration.Enable = false

	resp, err := e.Enhance(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "https://example.com/mine.jpg", resp.Products[0].UpdatedImageURL)
}

func TestEnhanceBrandEnrichment(t *testing.T) {
	e := seededEnhancer(3)

	resp, err := e.Enhance(context.Background(), testRequest(
		models.Product{Name: "A", ShortDescription: "d", Category: "Jewelry"},
	))
	require.NoError(t, err)

	assert.Equal(t, "Egpt — Type, Launch, and Sell in 10 mins", resp.Brand.SEO.Title)
	assert.Contains(t, resp.Brand.LogoSVG, "<svg")
	assert.Contains(t, resp.Brand.LogoSVG, ">Egpt<")
}

func TestEnhanceCancellation(t *testing.T) {
	e := NewEnhancer(500*time.Millisecond, rand.New(rand.NewSource(1)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	resp, err := e.Enhance(ctx, testRequest(
		models.Product{Name: "A", ShortDescription: "d", Category: "Jewelry"},
	))
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestImageForCategoryIsTotal(t *testing.T) {
	cases := []string{"", "Jewelry", "JEWELRY", " jewelry ", "clothing", "accessories", "home", "gadgets", "日本語"}
	for _, c := range cases {
		assert.NotEmpty(t, ImageForCategory(c), "category %q", c)
	}
	assert.Equal(t, ImageForCategory("Jewelry"), ImageForCategory("jewelry"))
	assert.Equal(t, defaultProductImage, ImageForCategory("gadgets"))
	assert.Equal(t, defaultProductImage, ImageForCategory(""))
}
