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

type SupplierHandler struct {
	suppliers stores.SupplierStore
	validator *validator.Validate
}

func NewSupplierHandler(suppliers stores.SupplierStore) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, validator: validator.New()}
}

func (h *SupplierHandler) ListSuppliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.suppliers.Suppliers())
	}
}

func (h *SupplierHandler) CreateSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateSupplierRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create supplier input")
			return
		}

		sanitizeCreate(&req)

		supplier := h.suppliers.AddSupplier(r.Context(), req)

		response.Success(w, http.StatusCreated, supplier)
	}
}

func (h *SupplierHandler) GetSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r, "Supplier")
		if !ok {
			return
		}

		supplier, found := h.suppliers.GetSupplierByID(id)
		if !found {
			response.Error(w, errors.NotFoundError("Supplier not found"))
			return
		}

		response.Success(w, http.StatusOK, supplier)
	}
}

func (h *SupplierHandler) UpdateSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathID(w, r, "Supplier")
		if !ok {
			return
		}

		var req models.UpdateSupplierRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update supplier input", slog.String("supplierId", id))
			return
		}

		sanitizeUpdate(&req)

		supplier, found := h.suppliers.UpdateSupplier(r.Context(), id, req)
		if !found {
			response.Error(w, errors.NotFoundError("Supplier not found"))
			return
		}

		response.Success(w, http.StatusOK, supplier)
	}
}

func (h *SupplierHandler) DeleteSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r, "Supplier")
		if !ok {
			return
		}

		if !h.suppliers.DeleteSupplier(r.Context(), id) {
			response.Error(w, errors.NotFoundError("Supplier not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// for eg: GET /suppliers/by-product?name=Smartphones
func (h *SupplierHandler) SuppliersByProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			response.Error(w, errors.AddValidationError("name", "is required"))
			return
		}

		response.Success(w, http.StatusOK, h.suppliers.GetSuppliersByProduct(name))
	}
}

// for eg: GET /suppliers/by-category?category=laptop
func (h *SupplierHandler) SuppliersByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		if category == "" {
			response.Error(w, errors.AddValidationError("category", "is required"))
			return
		}

		response.Success(w, http.StatusOK, h.suppliers.GetSuppliersByCategory(category))
	}
}

func sanitizeCreate(req *models.CreateSupplierRequest) {
	req.Name = utils.SanitizeText(req.Name)
	req.Description = utils.SanitizeText(req.Description)
	req.Location = utils.SanitizeText(req.Location)
	req.ResponseTime = utils.SanitizeText(req.ResponseTime)
	req.ProductionCapacity = utils.SanitizeText(req.ProductionCapacity)
	req.Employees = utils.SanitizeText(req.Employees)
	req.AnnualRevenue = utils.SanitizeText(req.AnnualRevenue)
	req.MainProducts = utils.SanitizeAll(req.MainProducts)
	req.Certifications = utils.SanitizeAll(req.Certifications)
	sanitizeContact(&req.Contact)
}

func sanitizeUpdate(req *models.UpdateSupplierRequest) {
	for _, field := range []*string{
		req.Name, req.Description, req.Location, req.ResponseTime,
		req.ProductionCapacity, req.Employees, req.AnnualRevenue,
	} {
		if field != nil {
			*field = utils.SanitizeText(*field)
		}
	}

	req.MainProducts = utils.SanitizeAll(req.MainProducts)
	req.Certifications = utils.SanitizeAll(req.Certifications)

	if req.Contact != nil {
		sanitizeContact(req.Contact)
	}
}

func sanitizeContact(c *models.SupplierContact) {
	c.Name = utils.SanitizeText(c.Name)
	c.Position = utils.SanitizeText(c.Position)
	c.Phone = utils.SanitizeText(c.Phone)
	c.Address = utils.SanitizeText(c.Address)
}
