package eligibility

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type direction struct {
	reviewer uuid.UUID
	reviewed uuid.UUID
}

// fakeLookup is an in-memory ReviewLookup seeded with existing review
// directions.
type fakeLookup struct {
	existing map[direction]bool
	err      error
}

func (f *fakeLookup) Exists(reviewerSupplierID, reviewedSupplierID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[direction{reviewer: reviewerSupplierID, reviewed: reviewedSupplierID}], nil
}

func newFakeLookup(dirs ...direction) *fakeLookup {
	existing := make(map[direction]bool, len(dirs))
	for _, d := range dirs {
		existing[d] = true
	}
	return &fakeLookup{existing: existing}
}

func TestEvaluateAllowsFirstReview(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()

	err := Evaluate(&orgA, orgB, newFakeLookup())
	assert.NoError(t, err)
}

func TestEvaluateDeniesSelfReview(t *testing.T) {
	orgA := uuid.New()

	err := Evaluate(&orgA, orgA, newFakeLookup())

	var denial *Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "self_review", denial.Rule)
	assert.Equal(t, "You cannot assess your own vendor.", denial.Message)
}

func TestEvaluateDeniesDuplicateReview(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()
	lookup := newFakeLookup(direction{reviewer: orgA, reviewed: orgB})

	err := Evaluate(&orgA, orgB, lookup)

	var denial *Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "duplicate_review", denial.Rule)
	assert.Equal(t, "Your company has already assessed this vendor.", denial.Message)
}

func TestEvaluateDeniesReciprocalReview(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()
	// B already assessed A; A may not assess B back.
	lookup := newFakeLookup(direction{reviewer: orgB, reviewed: orgA})

	err := Evaluate(&orgA, orgB, lookup)

	var denial *Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "reciprocal_review", denial.Rule)
	assert.Equal(t, "You cannot assess a vendor that has already assessed your company.", denial.Message)
}

func TestEvaluateFirstFailureWins(t *testing.T) {
	orgA := uuid.New()
	// Self review and duplicate both apply; the self-review message must win.
	lookup := newFakeLookup(direction{reviewer: orgA, reviewed: orgA})

	err := Evaluate(&orgA, orgA, lookup)

	var denial *Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, "self_review", denial.Rule)
}

func TestEvaluateMissingAffiliationIsPreconditionViolation(t *testing.T) {
	orgB := uuid.New()

	err := Evaluate(nil, orgB, newFakeLookup())
	assert.ErrorIs(t, err, ErrNoSupplier)

	nilID := uuid.Nil
	err = Evaluate(&nilID, orgB, newFakeLookup())
	assert.ErrorIs(t, err, ErrNoSupplier)

	var denial *Denial
	assert.False(t, errors.As(err, &denial), "missing affiliation must not read as a business denial")
}

func TestEvaluateSurfacesLookupErrors(t *testing.T) {
	orgA := uuid.New()
	orgB := uuid.New()
	lookupErr := errors.New("connection refused")

	err := Evaluate(&orgA, orgB, &fakeLookup{err: lookupErr})

	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	var denial *Denial
	assert.False(t, errors.As(err, &denial))
}
