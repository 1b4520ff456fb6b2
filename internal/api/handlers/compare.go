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

type CompareHandler struct {
	registry  stores.Registry
	catalog   stores.CatalogStore
	validator *validator.Validate
}

func NewCompareHandler(registry stores.Registry, catalog stores.CatalogStore) *CompareHandler {
	return &CompareHandler{registry: registry, catalog: catalog, validator: validator.New()}
}

func compareView(compare stores.CompareStore) models.ProductList {
	items := compare.Items()
	return models.ProductList{Items: items, Count: len(items), Capacity: stores.MaxCompareItems}
}

func (h *CompareHandler) GetCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, compareView(sess.Compare))
	}
}

// AddItem never reports a full set as an error; the returned collection
// shows whether the product made it in.
func (h *CompareHandler) AddItem() http.HandlerFunc {
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
			logger.Warn("Compare add for unknown product", slog.String("productId", req.ProductID))
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		sess.Compare.AddToCompare(r.Context(), product)

		response.Success(w, http.StatusOK, compareView(sess.Compare))
	}
}

func (h *CompareHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "Product")
		if !ok {
			return
		}

		sess.Compare.RemoveFromCompare(r.Context(), id)

		response.Success(w, http.StatusOK, compareView(sess.Compare))
	}
}

func (h *CompareHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		sess.Compare.ClearCompare(r.Context())

		response.Success(w, http.StatusOK, compareView(sess.Compare))
	}
}
