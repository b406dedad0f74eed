package rating

import "math"

// MetricCount is the number of scored metrics on a current-form review.
const MetricCount = 7

// Metrics holds the seven 1-10 scores of one review.
type Metrics struct {
	Quality       int
	Accuracy      int
	Communication int
	Cost          int
	Compliance    int
	Timeliness    int
	Support       int
}

// AverageScore is the arithmetic mean of a review's metrics on the 0-10
// scale.
func AverageScore(m Metrics) float64 {
	sum := m.Quality + m.Accuracy + m.Communication + m.Cost + m.Compliance + m.Timeliness + m.Support
	return float64(sum) / MetricCount
}

// AverageRating maps a supplier's reviews onto the 0-5 star scale: the mean
// of per-review average scores, halved, rounded to one decimal. The second
// return is false when there are no reviews - an unrated supplier has no
// rating, not a zero rating.
func AverageRating(reviews []Metrics) (float64, bool) {
	if len(reviews) == 0 {
		return 0, false
	}

	var sum float64
	for _, m := range reviews {
		sum += AverageScore(m)
	}

	stars := sum / float64(len(reviews)) / 2
	return math.Round(stars*10) / 10, true
}
