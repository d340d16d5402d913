// internal/enhance/enhancer.go
package enhance

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/egpt/storebuilder/internal/models"
)

// clauses is the fixed set of marketing clauses appended to product
// descriptions. One is chosen uniformly at random per product.
var clauses = []string{
	"perfect for any occasion",
	"crafted with premium materials",
	"designed for modern lifestyle",
	"exclusively handmade",
	"elegant and sophisticated",
}

// Enhancer is the local stand-in for the remote enhancement service. The
// delay simulates network latency and carries no contract of its own. The
// random source is injectable so tests get reproducible clause picks.
type Enhancer struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEnhancer(delay time.Duration, rng *rand.Rand) *Enhancer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enhancer{delay: delay, rng: rng}
}

// Enhance produces one result per input product, in input order. Every
// product is expected to have already passed catalog validation. The
// request's max_products cap and image_generation toggle are honored even
// by this stub so a real backend swaps in without a contract change.
// Cancellation returns ctx.Err() with no partial result.
func (e *Enhancer) Enhance(ctx context.Context, req *models.EnhancementRequest) (*models.EnhancementResponse, error) {
	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := req.Products
	if req.Options.MaxProducts > 0 && len(products) > req.Options.MaxProducts {
		products = products[:req.Options.MaxProducts]
	}

	enhanced := make([]models.EnhancedProduct, 0, len(products))
	for _, p := range products {
		imageURL := p.ImageURL
		if req.Options.ImageGeneration.Enable {
			imageURL = ImageForCategory(p.Category)
		}
		enhanced = append(enhanced, models.EnhancedProduct{
			ProductName:        p.Name,
			UpdatedDescription: fmt.Sprintf("%s, %s.", p.ShortDescription, e.clause()),
			UpdatedImageURL:    imageURL,
		})
	}

	brand := req.Brand
	brand.LogoSVG = models.DefaultLogo(brand.Name).SVG()
	brand.SEO = &models.BrandSEO{
		Title: fmt.Sprintf("%s — %s", brand.Name, brand.Tagline),
	}

	logrus.WithFields(logrus.Fields{
		"products": len(enhanced),
		"locale":   req.Options.Locale,
		"images":   req.Options.ImageGeneration.Enable,
	}).Info("Enhancement completed")

	return &models.EnhancementResponse{
		Brand:    brand,
		Products: enhanced,
	}, nil
}

func (e *Enhancer) clause() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clauses[e.rng.Intn(len(clauses))]
}
