package stores

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
)

// SupplierStore is a process-wide, memory-only directory.
type SupplierStore interface {
	Suppliers() []models.Supplier
	AddSupplier(ctx context.Context, req models.CreateSupplierRequest) models.Supplier
	UpdateSupplier(ctx context.Context, id string, req models.UpdateSupplierRequest) (models.Supplier, bool)
	DeleteSupplier(ctx context.Context, id string) bool
	GetSupplierByID(id string) (models.Supplier, bool)
	GetSuppliersByProduct(productName string) []models.Supplier
	GetSuppliersByCategory(category string) []models.Supplier
}

type supplierStore struct {
	mu        sync.RWMutex
	suppliers []models.Supplier
}

func NewSupplierStore() SupplierStore {
	return &supplierStore{suppliers: []models.Supplier{}}
}

func (s *supplierStore) Suppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSuppliers(s.suppliers, func(models.Supplier) bool { return true })
}

func (s *supplierStore) AddSupplier(ctx context.Context, req models.CreateSupplierRequest) models.Supplier {
	supplier := models.Supplier{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Logo:               req.Logo,
		Description:        req.Description,
		Location:           req.Location,
		MainProducts:       slices.Clone(req.MainProducts),
		Certifications:     slices.Clone(req.Certifications),
		ResponseTime:       req.ResponseTime,
		Verified:           req.Verified,
		Rating:             req.Rating,
		TotalReviews:       req.TotalReviews,
		ProductionCapacity: req.ProductionCapacity,
		YearEstablished:    req.YearEstablished,
		BusinessType:       req.BusinessType,
		Employees:          req.Employees,
		AnnualRevenue:      req.AnnualRevenue,
		Contact:            req.Contact,
		SocialMedia:        cloneSocial(req.SocialMedia),
	}

	s.mu.Lock()
	s.suppliers = append(s.suppliers, supplier)
	s.mu.Unlock()

	middleware.LoggerFromContext(ctx).Info("Supplier added", slog.String("supplierId", supplier.ID))

	return cloneSupplier(supplier)
}

// UpdateSupplier merges the non-nil fields into the stored record. It
// reports false, changing nothing, when the id is unknown.
func (s *supplierStore) UpdateSupplier(ctx context.Context, id string, req models.UpdateSupplierRequest) (models.Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Supplier{}, false
	}

	sup := &s.suppliers[i]

	setIf(&sup.Name, req.Name)
	setIf(&sup.Logo, req.Logo)
	setIf(&sup.Description, req.Description)
	setIf(&sup.Location, req.Location)
	setIf(&sup.ResponseTime, req.ResponseTime)
	setIf(&sup.Verified, req.Verified)
	setIf(&sup.Rating, req.Rating)
	setIf(&sup.TotalReviews, req.TotalReviews)
	setIf(&sup.ProductionCapacity, req.ProductionCapacity)
	setIf(&sup.YearEstablished, req.YearEstablished)
	setIf(&sup.BusinessType, req.BusinessType)
	setIf(&sup.Employees, req.Employees)
	setIf(&sup.AnnualRevenue, req.AnnualRevenue)
	setIf(&sup.Contact, req.Contact)

	if req.MainProducts != nil {
		sup.MainProducts = slices.Clone(req.MainProducts)
	}
	if req.Certifications != nil {
		sup.Certifications = slices.Clone(req.Certifications)
	}
	if req.SocialMedia != nil {
		sup.SocialMedia = cloneSocial(req.SocialMedia)
	}

	middleware.LoggerFromContext(ctx).Info("Supplier updated", slog.String("supplierId", id))

	return cloneSupplier(*sup), true
}

func (s *supplierStore) DeleteSupplier(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.suppliers = slices.Delete(s.suppliers, i, i+1)
	middleware.LoggerFromContext(ctx).Info("Supplier deleted", slog.String("supplierId", id))

	return true
}

func (s *supplierStore) GetSupplierByID(id string) (models.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Supplier{}, false
	}

	return cloneSupplier(s.suppliers[i]), true
}

// GetSuppliersByProduct matches main product names exactly.
func (s *supplierStore) GetSuppliersByProduct(productName string) []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSuppliers(s.suppliers, func(sup models.Supplier) bool {
		return slices.Contains(sup.MainProducts, productName)
	})
}

// GetSuppliersByCategory is a case-insensitive substring match against main
// product names.
func (s *supplierStore) GetSuppliersByCategory(category string) []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(category)

	return cloneSuppliers(s.suppliers, func(sup models.Supplier) bool {
		return slices.ContainsFunc(sup.MainProducts, func(p string) bool {
			return strings.Contains(strings.ToLower(p), needle)
		})
	})
}

func (s *supplierStore) indexOf(id string) int {
	return slices.IndexFunc(s.suppliers, func(sup models.Supplier) bool { return sup.ID == id })
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func cloneSocial(sm *models.SocialMedia) *models.SocialMedia {
	if sm == nil {
		return nil
	}

	c := *sm
	return &c
}

func cloneSupplier(sup models.Supplier) models.Supplier {
	sup.MainProducts = slices.Clone(sup.MainProducts)
	sup.Certifications = slices.Clone(sup.Certifications)
	sup.SocialMedia = cloneSocial(sup.SocialMedia)

	return sup
}

func cloneSuppliers(suppliers []models.Supplier, keep func(models.Supplier) bool) []models.Supplier {
	out := []models.Supplier{}
	for _, sup := range suppliers {
		if keep(sup) {
			out = append(out, cloneSupplier(sup))
		}
	}

	return out
}
