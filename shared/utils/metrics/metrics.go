package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the review platform's hot paths.
type Metrics struct {
	// OTP codes issued, by flow ("registration", "login")
	OTPIssued *prometheus.CounterVec

	// OTP verification results, by flow and result
	// ("success", "invalid", "expired", "exhausted")
	OTPVerifications *prometheus.CounterVec

	// Eligibility outcomes, by result ("allowed", "self_review",
	// "duplicate_review", "reciprocal_review")
	EligibilityOutcome *prometheus.CounterVec

	// Reviews created
	ReviewsCreated prometheus.Counter
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		OTPIssued: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vendorcheck_otp_issued_total",
			Help: "Total verification codes issued by flow",
		}, []string{"flow"}),

		OTPVerifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vendorcheck_otp_verifications_total",
			Help: "Total verification attempts by flow and result",
		}, []string{"flow", "result"}),

		EligibilityOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vendorcheck_review_eligibility_total",
			Help: "Total eligibility evaluations by outcome",
		}, []string{"outcome"}),

		ReviewsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vendorcheck_reviews_created_total",
			Help: "Total reviews created",
		}),
	}
}

// IncOTPIssued records an issued verification code.
func (m *Metrics) IncOTPIssued(flow string) {
	if m != nil {
		m.OTPIssued.WithLabelValues(flow).Inc()
	}
}

// IncOTPVerification records a verification attempt result.
func (m *Metrics) IncOTPVerification(flow, result string) {
	if m != nil {
		m.OTPVerifications.WithLabelValues(flow, result).Inc()
	}
}

// IncEligibility records an eligibility evaluation outcome.
func (m *Metrics) IncEligibility(outcome string) {
	if m != nil {
		m.EligibilityOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncReviewCreated records a created review.
func (m *Metrics) IncReviewCreated() {
	if m != nil {
		m.ReviewsCreated.Inc()
	}
}
