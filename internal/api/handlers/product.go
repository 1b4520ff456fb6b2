package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	catalog   stores.CatalogStore
	validator *validator.Validate
}

func NewProductHandler(catalog stores.CatalogStore) *ProductHandler {
	return &ProductHandler{catalog: catalog, validator: validator.New()}
}

// ListProducts serves the listing page.
// for eg: GET /products?category=phone&min_price=900&max_price=1000&brand=Apple&brand=Google&sort=price-asc
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !catalogReady(w, h.catalog) {
			return
		}

		q := r.URL.Query()

		query := models.ListingQuery{
			Category: models.Category(q.Get("category")),
			Search:   strings.TrimSpace(q.Get("search")),
			Brands:   queryValues(q["brand"]),
			Sort:     models.SortOption(q.Get("sort")),
		}

		var err error
		if query.MinPrice, err = optionalFloat(r, "min_price"); err != nil {
			response.Error(w, err)
			return
		}
		if query.MaxPrice, err = optionalFloat(r, "max_price"); err != nil {
			response.Error(w, err)
			return
		}

		if !utils.Validate(w, query, h.validator) {
			logger.Warn("Invalid listing query", slog.String("query", r.URL.RawQuery))
			return
		}

		response.Success(w, http.StatusOK, h.catalog.Listing(query))
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !catalogReady(w, h.catalog) {
			return
		}

		id, ok := pathID(w, r, "Product")
		if !ok {
			return
		}

		product, found := h.catalog.FetchProductByID(id)
		if !found {
			middleware.LoggerFromContext(r.Context()).Debug("Product not found", slog.String("productId", id))
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) ListBrands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !catalogReady(w, h.catalog) {
			return
		}

		response.Success(w, http.StatusOK, h.catalog.Brands())
	}
}

// QuickSearch backs the header search box.
// for eg: GET /products/search?q=pixel&category=phone&min_price=0&max_price=3000
func (h *ProductHandler) QuickSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !catalogReady(w, h.catalog) {
			return
		}

		q := r.URL.Query()

		query := models.QuickSearchQuery{
			Term:     strings.TrimSpace(q.Get("q")),
			Category: strings.ToLower(strings.TrimSpace(q.Get("category"))),
		}

		minPrice, err := optionalFloat(r, "min_price")
		if err != nil {
			response.Error(w, err)
			return
		}
		maxPrice, err := optionalFloat(r, "max_price")
		if err != nil {
			response.Error(w, err)
			return
		}
		if minPrice != nil {
			query.MinPrice = *minPrice
		}
		if maxPrice != nil {
			query.MaxPrice = *maxPrice
		}

		if !utils.Validate(w, query, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.catalog.QuickSearch(query))
	}
}
