package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorcheck-backend/shared/clients"
	"vendorcheck-backend/shared/database"
	"vendorcheck-backend/shared/database/models"
	"vendorcheck-backend/shared/utils/domain"
	"vendorcheck-backend/shared/utils/eligibility"
	"vendorcheck-backend/shared/utils/metrics"
	"vendorcheck-backend/shared/utils/query"
)

type ReviewHandler struct {
	db            *gorm.DB
	notifications *clients.NotificationClient
	metrics       *metrics.Metrics
}

func NewReviewHandler(db *gorm.DB, m *metrics.Metrics) *ReviewHandler {
	return &ReviewHandler{
		db:            db,
		notifications: clients.NewNotificationClient(),
		metrics:       m,
	}
}

type ReviewScores struct {
	Cost          int `json:"cost" binding:"required,min=1,max=10"`
	Accuracy      int `json:"accuracy" binding:"required,min=1,max=10"`
	Compliance    int `json:"compliance" binding:"required,min=1,max=10"`
	Communication int `json:"communication" binding:"required,min=1,max=10"`
	Quality       int `json:"quality" binding:"required,min=1,max=10"`
	Support       int `json:"support" binding:"required,min=1,max=10"`
	Timeliness    int `json:"timeliness" binding:"required,min=1,max=10"`
}

type CreateReviewRequest struct {
	// Domain identifying the vendor being assessed. Any email or URL form
	// is accepted and canonicalized server-side.
	VendorDomain string       `json:"vendor_domain" binding:"required" example:"acme-logistics.com"`
	VendorName   string       `json:"vendor_name" example:"Acme Logistics"`
	DealDate     time.Time    `json:"deal_date" binding:"required"`
	Scores       ReviewScores `json:"scores" binding:"required"`
	DealAgain    bool         `json:"deal_again"`
	Anonymous    bool         `json:"anonymous"`
	Comment      string       `json:"comment"`
}

type UpdateReviewRequest struct {
	DealDate  *time.Time    `json:"deal_date"`
	Scores    *ReviewScores `json:"scores"`
	DealAgain *bool         `json:"deal_again"`
	Anonymous *bool         `json:"anonymous"`
	Comment   *string       `json:"comment"`
}

type ReviewResponse struct {
	Token           uuid.UUID    `json:"token"`
	VendorName      string       `json:"vendor_name"`
	VendorSlug      string       `json:"vendor_slug"`
	ReviewerCompany string       `json:"reviewer_company,omitempty"`
	DealDate        time.Time    `json:"deal_date"`
	Scores          ReviewScores `json:"scores"`
	AverageScore    float64      `json:"average_score"`
	DealAgain       bool         `json:"deal_again"`
	Anonymous       bool         `json:"anonymous"`
	Comment         string       `json:"comment,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// POST /api/reviews
// @Summary Submit a vendor review
// @Description Assess a vendor after passing the eligibility rules. The vendor record is created on first mention of its domain.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body CreateReviewRequest true "Review data"
// @Success 201 {object} handlers.ReviewResponse "Review created"
// @Failure 400 {object} map[string]string "Invalid request or domain"
// @Failure 403 {object} map[string]interface{} "Eligibility rule denial"
// @Failure 409 {object} map[string]string "Already reviewed"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, supplierID, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := validateReviewContent(req.DealDate, req.Anonymous, req.Comment, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendorDomain, err := domain.Normalize(req.VendorDomain)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor domain"})
		return
	}

	var review models.Review
	var vendor *models.Supplier
	err = h.db.Transaction(func(tx *gorm.DB) error {
		vendor, err = database.FindOrCreateSupplier(tx, vendorDomain, req.VendorName, "")
		if err != nil {
			return err
		}

		// Eligibility runs inside the transaction so the duplicate and
		// reciprocal checks see a consistent snapshot.
		if err := eligibility.Evaluate(&supplierID, vendor.ID, database.NewReviewLookup(tx)); err != nil {
			return err
		}

		token, err := uuid.NewV7()
		if err != nil {
			return err
		}

		review = models.Review{
			Token:              token,
			UserID:             userID,
			ReviewerSupplierID: supplierID,
			ReviewedSupplierID: vendor.ID,
			DealDate:           req.DealDate,
			Cost:               req.Scores.Cost,
			Accuracy:           req.Scores.Accuracy,
			Compliance:         req.Scores.Compliance,
			Communication:      req.Scores.Communication,
			Quality:            req.Scores.Quality,
			Support:            req.Scores.Support,
			Timeliness:         req.Scores.Timeliness,
			DealAgain:          req.DealAgain,
			Anonymous:          req.Anonymous,
			Published:          true,
			Comment:            req.Comment,
		}
		return tx.Create(&review).Error
	})

	if err != nil {
		var denial *eligibility.Denial
		switch {
		case errors.As(err, &denial):
			h.metrics.IncEligibility(denial.Rule)
			status := http.StatusForbidden
			if denial.Rule == "duplicate_review" {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": denial.Message, "rule": denial.Rule})
		case errors.Is(err, eligibility.ErrNoSupplier):
			c.JSON(http.StatusForbidden, gin.H{"error": "Your account has no company affiliation."})
		default:
			log.Printf("❌ Failed to create review: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save the review. Please try again."})
		}
		return
	}

	h.metrics.IncEligibility("allowed")
	h.metrics.IncReviewCreated()

	go h.notifyVendor(&review, vendor)

	var reviewerCompany models.Supplier
	h.db.First(&reviewerCompany, "id = ?", supplierID)

	c.JSON(http.StatusCreated, buildReviewResponse(&review, vendor, reviewerCompany.Name))
}

// GET /api/reviews/mine
// @Summary List my reviews
// @Description Reviews authored by the current user, newest first
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Records per page"
// @Success 200 {object} map[string]interface{} "Reviews with pagination"
// @Router /reviews/mine [get]
func (h *ReviewHandler) ListMyReviews(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	params := query.ParseListParams(c)

	base := h.db.Model(&models.Review{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list reviews"})
		return
	}

	var reviews []models.Review
	q := query.ApplySort(base.Preload("ReviewedSupplier"), params.Sort, map[string]string{
		"created_at": "created_at",
		"deal_date":  "deal_date",
	})
	q = query.ApplyPagination(q, params.Page, params.Limit)
	if err := q.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list reviews"})
		return
	}

	items := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		items[i] = buildReviewResponse(&reviews[i], &reviews[i].ReviewedSupplier, "")
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"pagination": query.BuildPaginationResponse(params.Page, params.Limit, total),
	})
}

// GET /api/reviews/:token
// @Summary Get one of my reviews
// @Description Fetch a review by its token. Only the author can read it here.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param token path string true "Review token"
// @Success 200 {object} handlers.ReviewResponse
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{token} [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, ok := h.ownReviewByToken(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildReviewResponse(review, &review.ReviewedSupplier, ""))
}

// PUT /api/reviews/:token
// @Summary Update my review
// @Description Author-only edit. The deal date stays validated against the review's original creation time.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "Review token"
// @Param review body UpdateReviewRequest true "Fields to change"
// @Success 200 {object} handlers.ReviewResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{token} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, ok := h.ownReviewByToken(c)
	if !ok {
		return
	}

	if req.DealDate != nil {
		review.DealDate = *req.DealDate
	}
	if req.Scores != nil {
		review.Cost = req.Scores.Cost
		review.Accuracy = req.Scores.Accuracy
		review.Compliance = req.Scores.Compliance
		review.Communication = req.Scores.Communication
		review.Quality = req.Scores.Quality
		review.Support = req.Scores.Support
		review.Timeliness = req.Scores.Timeliness
	}
	if req.DealAgain != nil {
		review.DealAgain = *req.DealAgain
	}
	if req.Anonymous != nil {
		review.Anonymous = *req.Anonymous
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	// The window is anchored to when the review was first written, so an
	// old review cannot be kept alive by repeatedly nudging its deal date.
	if err := validateReviewContent(review.DealDate, review.Anonymous, review.Comment, review.CreatedAt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateScores(review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Save(review).Error; err != nil {
		log.Printf("❌ Failed to update review %s: %v", review.Token, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update the review. Please try again."})
		return
	}

	c.JSON(http.StatusOK, buildReviewResponse(review, &review.ReviewedSupplier, ""))
}

// DELETE /api/reviews/:token
// @Summary Delete my review
// @Description Author-only soft delete. Deleting frees the author/vendor pair for a future review.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param token path string true "Review token"
// @Success 200 {object} map[string]string "Review deleted"
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{token} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	review, ok := h.ownReviewByToken(c)
	if !ok {
		return
	}

	if err := h.db.Delete(review).Error; err != nil {
		log.Printf("❌ Failed to delete review %s: %v", review.Token, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete the review. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// ownReviewByToken loads the token-addressed review and enforces authorship,
// writing the error response itself. A foreign review reads as 404, not 403,
// so tokens cannot be probed for existence.
func (h *ReviewHandler) ownReviewByToken(c *gin.Context) (*models.Review, bool) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}

	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return nil, false
	}

	var review models.Review
	if err := h.db.Preload("ReviewedSupplier").
		Where("token = ? AND user_id = ?", token, userID).
		First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return nil, false
	}

	return &review, true
}

// notifyVendor mails the reviewed vendor's registered users about the new
// assessment. Failures only log: notification is best-effort and must never
// fail the submission.
func (h *ReviewHandler) notifyVendor(review *models.Review, vendor *models.Supplier) {
	var reviewerCompany models.Supplier
	if err := h.db.First(&reviewerCompany, "id = ?", review.ReviewerSupplierID).Error; err != nil {
		log.Printf("⚠️ Could not resolve reviewer company for notification: %v", err)
		return
	}

	reviewerName := reviewerCompany.Name
	if review.Anonymous {
		reviewerName = "An anonymous company"
	}

	var recipients []models.User
	if err := h.db.Where("supplier_id = ? AND status = ?", vendor.ID, "ACTIVE").Find(&recipients).Error; err != nil {
		log.Printf("⚠️ Could not resolve vendor recipients for notification: %v", err)
		return
	}

	for _, u := range recipients {
		err := h.notifications.SendReviewCreatedEmail(clients.ReviewCreatedEmailRequest{
			Email:           u.Email,
			SupplierName:    vendor.Name,
			ReviewerCompany: reviewerName,
			AverageScore:    review.AverageScore(),
			ReviewToken:     review.Token.String(),
		})
		if err != nil {
			log.Printf("⚠️ Failed to send review notification to %s: %v", u.Email, err)
		}
	}
}

// currentIdentity pulls the authenticated user and company out of the
// middleware-populated context.
func currentIdentity(c *gin.Context) (userID, supplierID uuid.UUID, ok bool) {
	rawUser, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, uuid.Nil, false
	}
	uid, isUUID := rawUser.(uuid.UUID)
	if !isUUID {
		return uuid.Nil, uuid.Nil, false
	}

	if rawSupplier, exists := c.Get("supplierID"); exists {
		if sid, ok := rawSupplier.(uuid.UUID); ok {
			return uid, sid, true
		}
	}
	return uid, uuid.Nil, true
}

// validateReviewContent enforces the content constraints shared by create
// and update. anchor is the time the deal-date window is measured from.
func validateReviewContent(dealDate time.Time, anonymous bool, comment string, anchor time.Time) error {
	if dealDate.After(time.Now()) {
		return errors.New("deal date cannot be in the future")
	}
	if dealDate.Before(anchor.Add(-models.DealDateWindow)) {
		return errors.New("deal date is too far in the past")
	}
	if len(comment) > models.MaxCommentLength {
		return errors.New("comment is too long")
	}
	if anonymous && comment != "" {
		return errors.New("anonymous reviews cannot carry a comment")
	}
	return nil
}

func validateScores(r *models.Review) error {
	for _, score := range []int{r.Cost, r.Accuracy, r.Compliance, r.Communication, r.Quality, r.Support, r.Timeliness} {
		if score < 1 || score > 10 {
			return errors.New("scores must be between 1 and 10")
		}
	}
	return nil
}

func buildReviewResponse(r *models.Review, vendor *models.Supplier, reviewerCompany string) ReviewResponse {
	return ReviewResponse{
		Token:           r.Token,
		VendorName:      vendor.Name,
		VendorSlug:      vendor.Slug,
		ReviewerCompany: reviewerCompany,
		DealDate:        r.DealDate,
		Scores: ReviewScores{
			Cost:          r.Cost,
			Accuracy:      r.Accuracy,
			Compliance:    r.Compliance,
			Communication: r.Communication,
			Quality:       r.Quality,
			Support:       r.Support,
			Timeliness:    r.Timeliness,
		},
		AverageScore: r.AverageScore(),
		DealAgain:    r.DealAgain,
		Anonymous:    r.Anonymous,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
