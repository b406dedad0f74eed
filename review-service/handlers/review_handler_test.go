package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorcheck-backend/shared/database/models"
)

func TestValidateReviewContent(t *testing.T) {
	now := time.Now()

	t.Run("accepts a recent deal", func(t *testing.T) {
		err := validateReviewContent(now.AddDate(0, -6, 0), false, "Solid partner.", now)
		assert.NoError(t, err)
	})

	t.Run("rejects a future deal date", func(t *testing.T) {
		err := validateReviewContent(now.Add(24*time.Hour), false, "", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "future")
	})

	t.Run("rejects a deal older than the window", func(t *testing.T) {
		err := validateReviewContent(now.Add(-models.DealDateWindow-24*time.Hour), false, "", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too far in the past")
	})

	t.Run("window is anchored to the original creation time", func(t *testing.T) {
		created := now.AddDate(-1, 0, 0)
		dealDate := created.Add(-models.DealDateWindow + 24*time.Hour)

		// Valid against the original creation time even though it is
		// more than the window before today.
		assert.NoError(t, validateReviewContent(dealDate, false, "", created))
		assert.Error(t, validateReviewContent(dealDate.Add(-48*time.Hour), false, "", created))
	})

	t.Run("rejects an oversized comment", func(t *testing.T) {
		err := validateReviewContent(now, false, strings.Repeat("x", models.MaxCommentLength+1), now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too long")
	})

	t.Run("comment at the limit passes", func(t *testing.T) {
		err := validateReviewContent(now, false, strings.Repeat("x", models.MaxCommentLength), now)
		assert.NoError(t, err)
	})

	t.Run("anonymous review cannot carry a comment", func(t *testing.T) {
		err := validateReviewContent(now, true, "Great service!", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "anonymous")

		assert.NoError(t, validateReviewContent(now, true, "", now))
	})
}

func TestValidateScores(t *testing.T) {
	valid := &models.Review{
		Cost: 5, Accuracy: 8, Compliance: 10, Communication: 1,
		Quality: 7, Support: 3, Timeliness: 9,
	}
	assert.NoError(t, validateScores(valid))

	tooLow := *valid
	tooLow.Support = 0
	assert.Error(t, validateScores(&tooLow))

	tooHigh := *valid
	tooHigh.Quality = 11
	assert.Error(t, validateScores(&tooHigh))
}
