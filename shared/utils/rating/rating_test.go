package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniform(score int) Metrics {
	return Metrics{
		Quality:       score,
		Accuracy:      score,
		Communication: score,
		Cost:          score,
		Compliance:    score,
		Timeliness:    score,
		Support:       score,
	}
}

func TestAverageScore(t *testing.T) {
	assert.Equal(t, 10.0, AverageScore(uniform(10)))
	assert.Equal(t, 1.0, AverageScore(uniform(1)))

	mixed := Metrics{
		Quality:       8,
		Accuracy:      6,
		Communication: 7,
		Cost:          5,
		Compliance:    9,
		Timeliness:    7,
		Support:       7,
	}
	assert.InDelta(t, 7.0, AverageScore(mixed), 1e-9)
}

func TestAverageRatingSinglePerfectReview(t *testing.T) {
	stars, ok := AverageRating([]Metrics{uniform(10)})
	assert.True(t, ok)
	assert.Equal(t, 5.0, stars)
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	// Reviews averaging 7.5/10 combined map to 3.8 stars (7.5/2 rounded).
	stars, ok := AverageRating([]Metrics{uniform(7), uniform(8)})
	assert.True(t, ok)
	assert.Equal(t, 3.8, stars)
}

func TestAverageRatingMixedReviews(t *testing.T) {
	stars, ok := AverageRating([]Metrics{uniform(10), uniform(1)})
	assert.True(t, ok)
	// (10 + 1) / 2 = 5.5 -> 2.75 stars -> 2.8 rounded.
	assert.Equal(t, 2.8, stars)
}

func TestAverageRatingNoReviews(t *testing.T) {
	stars, ok := AverageRating(nil)
	assert.False(t, ok, "a supplier with zero reviews has no rating")
	assert.Equal(t, 0.0, stars)

	_, ok = AverageRating([]Metrics{})
	assert.False(t, ok)
}
