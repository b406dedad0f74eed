package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorcheck-backend/shared/utils/rating"
)

// MaxCommentLength caps the free-text comment on a review.
const MaxCommentLength = 160

// DealDateWindow is how far before a review's original creation its deal
// date may lie. Re-validated on every author update against the original
// CreatedAt, not the update time.
const DealDateWindow = 3 * 365 * 24 * time.Hour

// Review is one company's scored assessment of a vendor. The partial unique
// index keeps one live review per author and target; soft-deleted rows free
// the slot.
type Review struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token              uuid.UUID `json:"token" gorm:"type:uuid;uniqueIndex;not null"`
	UserID             uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:udx_reviews_author_target,where:deleted_at IS NULL"`
	ReviewerSupplierID uuid.UUID `json:"reviewer_supplier_id" gorm:"type:uuid;not null;index"`
	ReviewedSupplierID uuid.UUID `json:"reviewed_supplier_id" gorm:"type:uuid;not null;index;uniqueIndex:udx_reviews_author_target,where:deleted_at IS NULL"`
	DealDate           time.Time `json:"deal_date" gorm:"not null"`

	// Metric scores, each 1-10
	Cost          int `json:"cost" gorm:"not null"`
	Accuracy      int `json:"accuracy" gorm:"not null"`
	Compliance    int `json:"compliance" gorm:"not null"`
	Communication int `json:"communication" gorm:"not null"`
	Quality       int `json:"quality" gorm:"not null"`
	Support       int `json:"support" gorm:"not null"`
	Timeliness    int `json:"timeliness" gorm:"not null"`

	DealAgain bool           `json:"deal_again" gorm:"default:false"`
	Anonymous bool           `json:"anonymous" gorm:"default:false"`
	Published bool           `json:"published" gorm:"default:true"`
	Comment   string         `json:"comment" gorm:"size:160"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User             User     `json:"user" gorm:"foreignKey:UserID"`
	ReviewerSupplier Supplier `json:"reviewer_supplier" gorm:"foreignKey:ReviewerSupplierID"`
	ReviewedSupplier Supplier `json:"reviewed_supplier" gorm:"foreignKey:ReviewedSupplierID"`
}

// Metrics returns the review's scores in aggregation form.
func (r *Review) Metrics() rating.Metrics {
	return rating.Metrics{
		Quality:       r.Quality,
		Accuracy:      r.Accuracy,
		Communication: r.Communication,
		Cost:          r.Cost,
		Compliance:    r.Compliance,
		Timeliness:    r.Timeliness,
		Support:       r.Support,
	}
}

// AverageScore is the review's mean metric score on the 0-10 scale.
func (r *Review) AverageScore() float64 {
	return rating.AverageScore(r.Metrics())
}
