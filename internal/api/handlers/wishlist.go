package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type WishlistHandler struct {
	registry  stores.Registry
	catalog   stores.CatalogStore
	validator *validator.Validate
}

func NewWishlistHandler(registry stores.Registry, catalog stores.CatalogStore) *WishlistHandler {
	return &WishlistHandler{registry: registry, catalog: catalog, validator: validator.New()}
}

func wishlistView(wishlist stores.WishlistStore) models.ProductList {
	items := wishlist.Items()
	return models.ProductList{Items: items, Count: len(items)}
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, wishlistView(sess.Wishlist))
	}
}

// AddItem snapshots the catalog's product as it is right now.
func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		var req models.AddProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if !catalogReady(w, h.catalog) {
			return
		}

		product, found := h.catalog.FetchProductByID(req.ProductID)
		if !found {
			logger.Warn("Wishlist add for unknown product", slog.String("productId", req.ProductID))
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		sess.Wishlist.AddToWishlist(r.Context(), product)

		response.Success(w, http.StatusOK, wishlistView(sess.Wishlist))
	}
}

func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "Product")
		if !ok {
			return
		}

		sess.Wishlist.RemoveFromWishlist(r.Context(), id)

		response.Success(w, http.StatusOK, wishlistView(sess.Wishlist))
	}
}

// MoveToCart answers with both collections so the client can redraw the
// wishlist and the cart badge from one response.
func (h *WishlistHandler) MoveToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "Product")
		if !ok {
			return
		}

		sess.Wishlist.MoveToCart(r.Context(), id)

		middleware.LoggerFromContext(r.Context()).Info("Wishlist item moved to cart", slog.String("productId", id))
		response.Success(w, http.StatusOK, map[string]any{
			"wishlist": wishlistView(sess.Wishlist),
			"cart":     cartView(sess.Cart),
		})
	}
}
