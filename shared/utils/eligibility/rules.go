package eligibility

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ReviewLookup answers whether a live (non-deleted) review exists for the
// given reviewer-company → reviewed-company direction.
type ReviewLookup interface {
	Exists(reviewerSupplierID, reviewedSupplierID uuid.UUID) (bool, error)
}

// ErrNoSupplier signals that the reviewer has no company affiliation. That is
// a precondition violation on the caller's side, not a business denial:
// affiliation is assigned at registration and must be present before the
// engine runs.
var ErrNoSupplier = errors.New("reviewer has no supplier affiliation")

// Denial is the business-rule rejection returned when a rule fails. The
// message is safe to surface to the end user as-is.
type Denial struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (d *Denial) Error() string {
	return d.Message
}

// rule checks one eligibility constraint. A nil return means the rule passed;
// a *Denial return stops the chain; any other error is infrastructural.
type rule func(reviewerSupplierID, targetSupplierID uuid.UUID, lookup ReviewLookup) error

// rules run in fixed order, first failure wins.
var rules = []rule{
	denySelfReview,
	denyDuplicateReview,
	denyReciprocalReview,
}

// Evaluate runs the review eligibility chain for one submission. It must be
// re-run on every submission: the outcome depends on the current review
// records and nothing is cached.
func Evaluate(reviewerSupplierID *uuid.UUID, targetSupplierID uuid.UUID, lookup ReviewLookup) error {
	if reviewerSupplierID == nil || *reviewerSupplierID == uuid.Nil {
		return ErrNoSupplier
	}

	for _, r := range rules {
		if err := r(*reviewerSupplierID, targetSupplierID, lookup); err != nil {
			return err
		}
	}
	return nil
}

func denySelfReview(reviewerSupplierID, targetSupplierID uuid.UUID, _ ReviewLookup) error {
	if reviewerSupplierID == targetSupplierID {
		return &Denial{
			Rule:    "self_review",
			Message: "You cannot assess your own vendor.",
		}
	}
	return nil
}

// denyDuplicateReview blocks a second assessment of the same vendor by the
// same company. The check is company-wide on purpose: the per-user DB
// uniqueness constraint stays in place underneath it as a narrower backstop.
func denyDuplicateReview(reviewerSupplierID, targetSupplierID uuid.UUID, lookup ReviewLookup) error {
	exists, err := lookup.Exists(reviewerSupplierID, targetSupplierID)
	if err != nil {
		return fmt.Errorf("duplicate review lookup: %w", err)
	}
	if exists {
		return &Denial{
			Rule:    "duplicate_review",
			Message: "Your company has already assessed this vendor.",
		}
	}
	return nil
}

func denyReciprocalReview(reviewerSupplierID, targetSupplierID uuid.UUID, lookup ReviewLookup) error {
	exists, err := lookup.Exists(targetSupplierID, reviewerSupplierID)
	if err != nil {
		return fmt.Errorf("reciprocal review lookup: %w", err)
	}
	if exists {
		return &Denial{
			Rule:    "reciprocal_review",
			Message: "You cannot assess a vendor that has already assessed your company.",
		}
	}
	return nil
}
