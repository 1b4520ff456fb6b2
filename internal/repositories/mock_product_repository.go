package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type mockProductRepository struct {
	products []models.Product
	delay    time.Duration
}

// NewMockProductRepo serves the seeded demo catalog after delay, the way the
// storefront's demo backend answers. A nil products slice means the seed set.
func NewMockProductRepo(products []models.Product, delay time.Duration) ProductRepository {
	if products == nil {
		products = SeedProducts()
	}

	return &mockProductRepository{products: products, delay: delay}
}

func (r *mockProductRepository) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *mockProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	return cloneProducts(r.products, func(models.Product) bool { return true }), nil
}

func (r *mockProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	for _, p := range r.products {
		if p.ID == id {
			c := p.Clone()
			return &c, nil
		}
	}

	return nil, nil
}

func (r *mockProductRepository) GetProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	return cloneProducts(r.products, func(p models.Product) bool { return p.Category == category }), nil
}

func (r *mockProductRepository) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)

	return cloneProducts(r.products, func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q)
	}), nil
}

func cloneProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := []models.Product{}

	for _, p := range products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}

	return out
}

func price(v float64) *float64 {
	return &v
}

// SeedProducts is the demo catalog: three phones followed by three laptops.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Description: "Apple's most advanced iPhone with powerful camera system and A17 Pro chip.",
			Price:       999,
			Rating:      4.8,
			Reviews:     127,
			Category:    models.CategoryPhone,
			Brand:       "Apple",
			InStock:     true,
			Images: []string{
				"https://images.pexels.com/photos/18996524/pexels-photo-18996524/free-photo-of-iphone-15-pro-titanium-blue.jpeg",
				"https://images.pexels.com/photos/18996526/pexels-photo-18996526/free-photo-of-iphone-15-pro-titanium-blue.jpeg",
			},
			Colors: []string{"Natural Titanium", "Blue Titanium", "White Titanium", "Black Titanium"},
			Specifications: map[string]string{
				"display": `6.1" Super Retina XDR display`,
				"chip":    "A17 Pro chip",
				"camera":  "48MP main camera",
				"battery": "Up to 23 hours video playback",
				"storage": "256GB",
				"os":      "iOS 17",
			},
			Features: []string{"Dynamic Island", "Always-On display", "ProMotion technology", "Ceramic Shield front", "Titanium design", "Water resistant (IP68)"},
		},
		{
			ID:            "2",
			Name:          "Samsung Galaxy S24 Ultra",
			Description:   "The ultimate Galaxy AI phone with powerful camera and S Pen included.",
			Price:         1199,
			DiscountPrice: price(1099),
			Rating:        4.7,
			Reviews:       94,
			Category:      models.CategoryPhone,
			Brand:         "Samsung",
			InStock:       true,
			Images: []string{
				"https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
				"https://images.pexels.com/photos/13588627/pexels-photo-13588627.jpeg",
			},
			Colors: []string{"Titanium Black", "Titanium Gray", "Titanium Violet", "Titanium Yellow"},
			Specifications: map[string]string{
				"display": `6.8" Dynamic AMOLED 2X display`,
				"chip":    "Snapdragon 8 Gen 3",
				"camera":  "200MP main camera",
				"battery": "5,000 mAh",
				"storage": "256GB",
				"os":      "Android 14",
			},
			Features: []string{"S Pen included", "AI-powered camera features", "Armor Aluminum frame", "120Hz adaptive refresh rate", "Ray tracing for gaming", "IP68 water resistance"},
		},
		{
			ID:            "3",
			Name:          "Google Pixel 8 Pro",
			Description:   "Google's flagship phone with the most advanced Pixel camera and AI capabilities.",
			Price:         999,
			DiscountPrice: price(899),
			Rating:        4.6,
			Reviews:       82,
			Category:      models.CategoryPhone,
			Brand:         "Google",
			InStock:       true,
			Images: []string{
				"https://images.pexels.com/photos/16814428/pexels-photo-16814428/free-photo-of-google-pixel-7-pro-in-obsidian.jpeg",
				"https://images.pexels.com/photos/13598468/pexels-photo-13598468.jpeg",
			},
			Colors: []string{"Obsidian", "Porcelain", "Bay"},
			Specifications: map[string]string{
				"display": `6.7" Super Actua display`,
				"chip":    "Google Tensor G3",
				"camera":  "50MP Octa PD wide camera",
				"battery": "5,050 mAh",
				"storage": "128GB",
				"os":      "Android 14",
			},
			Features: []string{"Google AI", "Magic Editor", "Call Screen", "Adaptive Battery", "Live Translate", "IP68 water resistance"},
		},
		{
			ID:          "4",
			Name:        `MacBook Pro 16"`,
			Description: "Supercharged by M3 Pro and M3 Max. The most powerful MacBook Pro ever.",
			Price:       2499,
			Rating:      4.9,
			Reviews:     67,
			Category:    models.CategoryLaptop,
			Brand:       "Apple",
			InStock:     true,
			Images: []string{
				"https://images.pexels.com/photos/303383/pexels-photo-303383.jpeg",
				"https://images.pexels.com/photos/1229861/pexels-photo-1229861.jpeg",
			},
			Colors: []string{"Space Black", "Silver"},
			Specifications: map[string]string{
				"display": `16.2" Liquid Retina XDR display`,
				"chip":    "M3 Pro or M3 Max chip",
				"memory":  "Up to 128GB unified memory",
				"storage": "Up to 8TB SSD storage",
				"battery": "Up to 22 hours",
				"ports":   "Thunderbolt 4, HDMI, SDXC",
			},
			Features: []string{"Liquid Retina XDR display", "Up to 38-core GPU", "High-fidelity six-speaker sound system", "Studio-quality mic array", "Magic Keyboard with Touch ID", "Force Touch trackpad"},
		},
		{
			ID:            "5",
			Name:          "Dell XPS 15",
			Description:   "Premium 15-inch laptop with InfinityEdge display and powerful performance.",
			Price:         1899,
			DiscountPrice: price(1799),
			Rating:        4.6,
			Reviews:       54,
			Category:      models.CategoryLaptop,
			Brand:         "Dell",
			InStock:       true,
			Images: []string{
				"https://images.pexels.com/photos/6446709/pexels-photo-6446709.jpeg",
				"https://images.pexels.com/photos/7974/pexels-photo.jpg",
			},
			Colors: []string{"Platinum Silver with Black Carbon Fiber", "Frost with Arctic White"},
			Specifications: map[string]string{
				"display":   `15.6" 4K UHD+ display`,
				"processor": "13th Gen Intel Core i9",
				"graphics":  "NVIDIA GeForce RTX 4070",
				"memory":    "32GB DDR5",
				"storage":   "1TB SSD",
				"battery":   "Up to 12 hours",
			},
			Features: []string{"InfinityEdge display", "CNC machined aluminum", "Quad-speaker design", "Killer Wi-Fi 6E", "Advanced thermal design", "HD webcam with Windows Hello"},
		},
		{
			ID:          "6",
			Name:        "ASUS ROG Zephyrus G14",
			Description: "Ultra-slim gaming laptop with powerful AMD processor and NVIDIA graphics.",
			Price:       1649,
			Rating:      4.7,
			Reviews:     48,
			Category:    models.CategoryLaptop,
			Brand:       "ASUS",
			InStock:     true,
			Images: []string{
				"https://images.pexels.com/photos/7974/pexels-photo.jpg",
				"https://images.pexels.com/photos/1229861/pexels-photo-1229861.jpeg",
			},
			Colors: []string{"Eclipse Gray", "Moonlight White"},
			Specifications: map[string]string{
				"display":   `14" QHD 165Hz display`,
				"processor": "AMD Ryzen 9 7940HS",
				"graphics":  "NVIDIA GeForce RTX 4070",
				"memory":    "16GB DDR5",
				"storage":   "1TB SSD",
				"battery":   "Up to 10 hours",
			},
			Features: []string{"AniMe Matrix LED display", "Dolby Atmos sound system", "RGB keyboard", "Intelligent cooling", "ROG Nebula Display", "Wi-Fi 6E"},
		},
	}
}
