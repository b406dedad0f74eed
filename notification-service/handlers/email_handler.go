package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vendorcheck-backend/notification-service/services"
	"vendorcheck-backend/shared/config"
	"vendorcheck-backend/shared/database"
	"vendorcheck-backend/shared/database/models"
	"vendorcheck-backend/shared/database/models/notification"
)

// EmailHandler handles email-related HTTP requests
type EmailHandler struct {
	emailService *services.EmailService
	config       *config.Config
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService *services.EmailService, cfg *config.Config) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		config:       cfg,
	}
}

// VerificationCodeEmailRequest carries one verification code dispatch
type VerificationCodeEmailRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Name             string `json:"name"`
	VerificationCode string `json:"verification_code" binding:"required"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

// ReviewCreatedEmailRequest carries one new-assessment alert
type ReviewCreatedEmailRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	SupplierName    string  `json:"supplier_name" binding:"required"`
	ReviewerCompany string  `json:"reviewer_company"`
	AverageScore    float64 `json:"average_score"`
	ReviewToken     string  `json:"review_token"`
}

// SendEmail godoc
// @Summary Send email
// @Description Send an email through the notification service
// @Tags email
// @Accept json
// @Produce json
// @Param email body services.EmailRequest true "Email request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/send [post]
func (eh *EmailHandler) SendEmail(c *gin.Context) {
	var request services.EmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response, err := eh.emailService.SendEmail(request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SendVerificationCodeEmail godoc
// @Summary Send verification code email
// @Description Send a login/registration verification code using template
// @Tags email
// @Accept json
// @Produce json
// @Param email body VerificationCodeEmailRequest true "Verification code email request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/verification-code [post]
func (eh *EmailHandler) SendVerificationCodeEmail(c *gin.Context) {
	var request VerificationCodeEmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if request.ExpiresInMinutes <= 0 {
		request.ExpiresInMinutes = 2
	}

	response, err := eh.emailService.SendVerificationCodeEmail(
		request.Email, request.Name, request.VerificationCode, request.ExpiresInMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send verification code email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SendReviewCreatedEmail godoc
// @Summary Send review-created email
// @Description Mail a vendor member about a new assessment, store the notification and push it over WebSocket
// @Tags email
// @Accept json
// @Produce json
// @Param email body ReviewCreatedEmailRequest true "Review created email request"
// @Success 200 {object} services.EmailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/notifications/email/review-created [post]
func (eh *EmailHandler) SendReviewCreatedEmail(c *gin.Context) {
	var request ReviewCreatedEmailRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	response, err := eh.emailService.SendReviewCreatedEmail(
		request.Email, request.SupplierName, request.ReviewerCompany,
		request.AverageScore, request.ReviewToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send review notification email",
			"details": err.Error(),
		})
		return
	}

	eh.storeAndPushReviewAlert(request)

	c.JSON(http.StatusOK, response)
}

// storeAndPushReviewAlert persists the in-app notification and pushes it to
// the recipient's live connections. Failures only log: the email already went
// out and the HTTP response must not flip on a secondary channel.
func (eh *EmailHandler) storeAndPushReviewAlert(request ReviewCreatedEmailRequest) {
	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", request.Email).First(&user).Error; err != nil {
		log.Printf("⚠️ Review alert recipient %s has no account, skipping in-app notification", request.Email)
		return
	}

	title := "New assessment received"
	message := fmt.Sprintf("%s assessed %s with an average score of %.1f/10",
		request.ReviewerCompany, request.SupplierName, request.AverageScore)

	notif := notification.Notification{
		UserID:     &user.ID,
		SupplierID: user.SupplierID,
		Type:       "review_created",
		Level:      notification.NotificationLevelInfo,
		Title:      title,
		Message:    message,
		Entity:     "review",
	}
	if token, err := uuid.Parse(request.ReviewToken); err == nil {
		notif.EntityID = &token
	}

	if err := db.Create(&notif).Error; err != nil {
		log.Printf("⚠️ Failed to store review notification for %s: %v", request.Email, err)
	}

	wsMessage := &notification.WebSocketMessage{
		Type:      "review_created",
		Level:     notification.NotificationLevelInfo,
		Title:     title,
		Message:   message,
		Timestamp: notification.GetCurrentTime(),
		EntityID:  notif.EntityID,
		Entity:    "review",
		UserID:    &user.ID,
	}

	if err := services.GetWebSocketManager().SendToUser(user.ID.String(), wsMessage); err != nil {
		log.Printf("📭 User %s not connected for live review alert", user.ID)
	}
}
