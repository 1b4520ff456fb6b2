package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
)

// ProductRepository is the catalog data source. The catalog store only calls
// GetAllProducts; the narrower reads exist for tooling and direct lookups.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, description, price, discount_price, rating, reviews,
		category, brand, in_stock, images, colors, specifications, features`

func (r *productRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY position`

	return r.queryProducts(dbCtx, query)
}

// GetProductByID returns nil, nil when no product has the id.
func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) GetProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY position`

	return r.queryProducts(dbCtx, query, string(category))
}

func (r *productRepository) SearchProducts(ctx context.Context, search string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR brand ILIKE '%' || $1 || '%'
		ORDER BY position`

	return r.queryProducts(dbCtx, query, search)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		product    models.Product
		discount   sql.NullFloat64
		category   string
		imagesJSON []byte
		colorsJSON []byte
		specsJSON  []byte
		featJSON   []byte
	)

	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &discount,
		&product.Rating, &product.Reviews, &category, &product.Brand, &product.InStock,
		&imagesJSON, &colorsJSON, &specsJSON, &featJSON)
	if err != nil {
		return nil, err
	}

	if discount.Valid {
		product.DiscountPrice = &discount.Float64
	}
	product.Category = models.Category(category)

	for _, col := range []struct {
		name string
		data []byte
		dest any
	}{
		{"images", imagesJSON, &product.Images},
		{"colors", colorsJSON, &product.Colors},
		{"specifications", specsJSON, &product.Specifications},
		{"features", featJSON, &product.Features},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product %s: %w", col.name, err)
		}
	}

	return &product, nil
}
