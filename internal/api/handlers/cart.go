package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	registry  stores.Registry
	validator *validator.Validate
}

func NewCartHandler(registry stores.Registry) *CartHandler {
	return &CartHandler{
		registry:  registry,
		validator: validator.New(),
	}
}

func cartView(cart stores.CartStore) models.CartView {
	return models.CartView{
		Items:      cart.Items(),
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.TotalItems(),
		Error:      cart.Err(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, cartView(sess.Cart))
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		sess.Cart.AddToCart(r.Context(), models.CartItem{
			ID:       req.ProductID,
			Name:     utils.SanitizeText(req.Name),
			Price:    req.Price,
			Image:    req.Image,
			Quantity: req.Quantity,
			Color:    utils.SanitizeText(req.Color),
		})

		logger.Info("Item added to cart", slog.String("productId", req.ProductID), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, cartView(sess.Cart))
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "Product")
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := sess.Cart.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
			logger.Warn("Cart quantity rejected", slog.String("productId", id), slog.Int("quantity", req.Quantity))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cartView(sess.Cart))
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "Product")
		if !ok {
			return
		}

		sess.Cart.RemoveFromCart(r.Context(), id)

		response.Success(w, http.StatusOK, cartView(sess.Cart))
	}
}
