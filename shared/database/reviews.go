package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorcheck-backend/shared/database/models"
	"vendorcheck-backend/shared/utils/rating"
)

// ReviewLookup adapts GORM review queries to the eligibility engine's
// lookup contract. Soft-deleted rows are excluded by GORM's default scope,
// so a deleted review frees the direction again.
type ReviewLookup struct {
	db *gorm.DB
}

func NewReviewLookup(db *gorm.DB) *ReviewLookup {
	return &ReviewLookup{db: db}
}

// Exists reports whether any live review runs in the given
// reviewer-company → reviewed-company direction.
func (l *ReviewLookup) Exists(reviewerSupplierID, reviewedSupplierID uuid.UUID) (bool, error) {
	var count int64
	err := l.db.Model(&models.Review{}).
		Where("reviewer_supplier_id = ? AND reviewed_supplier_id = ?", reviewerSupplierID, reviewedSupplierID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SupplierRating computes a supplier's star rating over its live published
// reviews. The boolean mirrors rating.AverageRating: false means the
// supplier has no rating yet.
func SupplierRating(db *gorm.DB, supplierID uuid.UUID) (float64, int64, bool, error) {
	var reviews []models.Review
	err := db.Select("quality", "accuracy", "communication", "cost", "compliance", "timeliness", "support").
		Where("reviewed_supplier_id = ? AND published = ?", supplierID, true).
		Find(&reviews).Error
	if err != nil {
		return 0, 0, false, err
	}

	metrics := make([]rating.Metrics, len(reviews))
	for i := range reviews {
		metrics[i] = reviews[i].Metrics()
	}

	stars, ok := rating.AverageRating(metrics)
	return stars, int64(len(reviews)), ok, nil
}
