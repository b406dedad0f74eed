package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorcheck-backend/review-service/services"
	"vendorcheck-backend/shared/database"
	"vendorcheck-backend/shared/database/models"
	"vendorcheck-backend/shared/utils/query"
)

type SupplierHandler struct {
	db    *gorm.DB
	logos *services.LogoService
}

func NewSupplierHandler(db *gorm.DB, logos *services.LogoService) *SupplierHandler {
	return &SupplierHandler{db: db, logos: logos}
}

type SupplierListItem struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Domain      string   `json:"domain"`
	Country     string   `json:"country,omitempty"`
	LogoURL     string   `json:"logo_url,omitempty"`
	Rating      *float64 `json:"rating"`
	ReviewCount int64    `json:"review_count"`
}

type SupplierDetail struct {
	SupplierListItem
	Description string              `json:"description,omitempty"`
	Reviews     []PublicReviewEntry `json:"reviews"`
}

// PublicReviewEntry is a review as shown on a vendor's public profile.
// Anonymous reviews carry no reviewer identity and no comment.
type PublicReviewEntry struct {
	Token           uuid.UUID `json:"token"`
	ReviewerCompany string    `json:"reviewer_company,omitempty"`
	DealDate        time.Time `json:"deal_date"`
	AverageScore    float64   `json:"average_score"`
	DealAgain       bool      `json:"deal_again"`
	Comment         string    `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// GET /api/suppliers
// @Summary List vendors
// @Description Browse vendors with search, filters, sorting and pagination
// @Tags suppliers
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Records per page"
// @Param search query string false "Search in name and domain"
// @Success 200 {object} map[string]interface{} "Vendors with pagination"
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	params := query.ParseListParams(c)

	base := h.db.Model(&models.Supplier{})
	base = query.ApplyFilters(base, params.Filters, map[string]string{
		"country": "country",
		"domain":  "domain",
	})
	base = query.ApplySearch(base, params.Search, []string{"name", "domain"})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list vendors"})
		return
	}

	q := query.ApplySort(base, params.Sort, map[string]string{
		"name":       "name",
		"country":    "country",
		"created_at": "created_at",
	})
	q = query.ApplyPagination(q, params.Page, params.Limit)

	var suppliers []models.Supplier
	if err := q.Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list vendors"})
		return
	}

	items := make([]SupplierListItem, len(suppliers))
	for i := range suppliers {
		items[i] = h.buildListItem(&suppliers[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"pagination": query.BuildPaginationResponse(params.Page, params.Limit, total),
	})
}

// GET /api/suppliers/:slug
// @Summary Vendor profile
// @Description A vendor's profile with its rating and published reviews
// @Tags suppliers
// @Produce json
// @Param slug path string true "Vendor slug"
// @Success 200 {object} handlers.SupplierDetail
// @Failure 404 {object} map[string]string "Vendor not found"
// @Router /suppliers/{slug} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	supplier, err := database.GetSupplierBySlug(h.db, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var reviews []models.Review
	if err := h.db.Preload("ReviewerSupplier").
		Where("reviewed_supplier_id = ? AND published = ?", supplier.ID, true).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load vendor reviews"})
		return
	}

	entries := make([]PublicReviewEntry, len(reviews))
	for i := range reviews {
		r := &reviews[i]
		entry := PublicReviewEntry{
			Token:        r.Token,
			DealDate:     r.DealDate,
			AverageScore: r.AverageScore(),
			DealAgain:    r.DealAgain,
			CreatedAt:    r.CreatedAt,
		}
		if !r.Anonymous {
			entry.ReviewerCompany = r.ReviewerSupplier.Name
			entry.Comment = r.Comment
		}
		entries[i] = entry
	}

	c.JSON(http.StatusOK, SupplierDetail{
		SupplierListItem: h.buildListItem(supplier),
		Description:      supplier.Description,
		Reviews:          entries,
	})
}

// POST /api/suppliers/logo
// @Summary Upload company logo
// @Description Upload a logo for the caller's own company
// @Tags suppliers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param logo formData file true "Logo image (PNG, JPEG or WebP, max 2 MB)"
// @Success 200 {object} map[string]string "Logo URL"
// @Failure 400 {object} map[string]string "Invalid file"
// @Failure 403 {object} map[string]string "No company affiliation"
// @Router /suppliers/logo [post]
func (h *SupplierHandler) UploadLogo(c *gin.Context) {
	_, supplierID, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if supplierID == uuid.Nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account has no company affiliation."})
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo file is required"})
		return
	}

	logoURL, err := h.logos.UploadLogo(c.Request.Context(), supplierID, file)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("❌ Failed to store logo for supplier %s: %v", supplierID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store the logo. Please try again."})
		return
	}

	if err := h.db.Model(&models.Supplier{}).
		Where("id = ?", supplierID).
		Update("logo_url", logoURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the logo. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": logoURL})
}

func (h *SupplierHandler) buildListItem(s *models.Supplier) SupplierListItem {
	item := SupplierListItem{
		Name:    s.Name,
		Slug:    s.Slug,
		Domain:  s.Domain,
		Country: s.Country,
		LogoURL: s.LogoURL,
	}

	stars, count, ok, err := database.SupplierRating(h.db, s.ID)
	if err != nil {
		log.Printf("⚠️ Failed to compute rating for %s: %v", s.Slug, err)
		return item
	}
	item.ReviewCount = count
	if ok {
		// Absent until the first review: a missing rating renders as
		// null, never as 0 stars.
		item.Rating = &stars
	}
	return item
}
