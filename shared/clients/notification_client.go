package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vendorcheck-backend/shared/config"
)

// NotificationClient handles communication with notification service
type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewNotificationClient creates a new notification client
func NewNotificationClient() *NotificationClient {
	cfg := config.GetConfig()
	return &NotificationClient{
		baseURL: cfg.NotificationServiceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Email request structs
type VerificationCodeEmailRequest struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	VerificationCode string `json:"verification_code"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

type ReviewCreatedEmailRequest struct {
	Email           string  `json:"email"`
	SupplierName    string  `json:"supplier_name"`
	ReviewerCompany string  `json:"reviewer_company"`
	AverageScore    float64 `json:"average_score"`
	ReviewToken     string  `json:"review_token"`
}

// EmailResponse represents email service response
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

// SendVerificationCodeEmail dispatches a registration/login OTP code
func (nc *NotificationClient) SendVerificationCodeEmail(to, name, code string, expiresInMinutes int) error {
	request := VerificationCodeEmailRequest{
		Email:            to,
		Name:             name,
		VerificationCode: code,
		ExpiresInMinutes: expiresInMinutes,
	}
	return nc.sendEmailRequest("/api/notifications/email/verification-code", request)
}

// SendReviewCreatedEmail alerts a supplier that a new assessment was published
func (nc *NotificationClient) SendReviewCreatedEmail(req ReviewCreatedEmailRequest) error {
	return nc.sendEmailRequest("/api/notifications/email/review-created", req)
}

// Generic email sender
func (nc *NotificationClient) sendEmailRequest(endpoint string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s%s", nc.baseURL, endpoint)
	resp, err := nc.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification service returned status: %d", resp.StatusCode)
	}

	return nil
}
