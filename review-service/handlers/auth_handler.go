package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorcheck-backend/shared/clients"
	"vendorcheck-backend/shared/config"
	"vendorcheck-backend/shared/database"
	"vendorcheck-backend/shared/database/models"
	"vendorcheck-backend/shared/database/models/auth"
	utils "vendorcheck-backend/shared/utils/auth"
	"vendorcheck-backend/shared/utils/cache"
	"vendorcheck-backend/shared/utils/domain"
	"vendorcheck-backend/shared/utils/metrics"
	"vendorcheck-backend/shared/utils/otp"
)

type AuthHandler struct {
	db            *gorm.DB
	cache         *cache.CacheManager
	otpStore      *otp.Store
	notifications *clients.NotificationClient
	metrics       *metrics.Metrics
}

func NewAuthHandler(db *gorm.DB, cm *cache.CacheManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:            db,
		cache:         cm,
		otpStore:      otp.NewStore(cm),
		notifications: clients.NewNotificationClient(),
		metrics:       m,
	}
}

// genericCodeSentMessage is returned by login initiation whether or not the
// account exists, so responses cannot be used to probe for accounts.
const genericCodeSentMessage = "If an account exists for this address, a verification code has been sent."

// pendingRegistration is the transient signup state parked in the cache
// between registration submission and OTP confirmation.
type pendingRegistration struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	BackupEmail    string `json:"backup_email,omitempty"`
	Domain         string `json:"domain"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyCountry string `json:"company_country,omitempty"`
}

func pendingRegistrationKey(email string) string {
	return "pendingreg:" + otp.EmailHash(email)
}

// Request/Response structs

type RegisterRequest struct {
	FirstName      string `json:"first_name" binding:"required" example:"Jane"`
	LastName       string `json:"last_name" binding:"required" example:"Doe"`
	Email          string `json:"email" binding:"required,email" example:"jane@acme.com"`
	BackupEmail    string `json:"backup_email" binding:"omitempty,email"`
	CompanyName    string `json:"company_name" example:"Acme GmbH"`
	CompanyCountry string `json:"company_country" example:"Germany"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type ResendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@acme.com"`
}

type LoginResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	User         UserInfo  `json:"user"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UserInfo struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	Status       string    `json:"status"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// POST /api/auth/register
// @Summary Start registration
// @Description Validate a work email, park the signup and send a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param register body RegisterRequest true "Registration data"
// @Success 200 {object} map[string]string "Verification code sent"
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 422 {object} map[string]string "Personal email provider rejected"
// @Failure 429 {object} map[string]string "Too many registration attempts"
// @Failure 503 {object} map[string]string "Verification code could not be sent"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	denylist := config.GetConfig().BlockedEmailProviders
	if domain.IsBlockedProvider(req.Email, denylist) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please register with your company email address, not a personal one."})
		return
	}
	if req.BackupEmail != "" && domain.IsBlockedProvider(req.BackupEmail, denylist) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please use a company email address for your backup email as well."})
		return
	}

	emailDomain, err := domain.Normalize(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email domain"})
		return
	}

	var existingUser models.User
	if err := h.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	pending := pendingRegistration{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		BackupEmail:    req.BackupEmail,
		Domain:         emailDomain,
		CompanyName:    req.CompanyName,
		CompanyCountry: req.CompanyCountry,
	}
	if err := h.cache.PutJSON(pendingRegistrationKey(req.Email), pending, otp.TTL); err != nil {
		log.Printf("❌ Failed to store pending registration for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start registration. Please try again."})
		return
	}

	if err := h.issueAndDispatchCode(c, req.Email, req.FirstName, "registration"); err != nil {
		// Do not leave half-written flow state behind a failed dispatch.
		h.cache.Forget(pendingRegistrationKey(req.Email))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not send the verification code. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "A verification code has been sent to your email address.",
	})
}

// POST /api/auth/register/verify
// @Summary Confirm registration
// @Description Verify the emailed code and create the account and its supplier
// @Tags auth
// @Accept json
// @Produce json
// @Param verify body VerifyCodeRequest true "Email and verification code"
// @Success 201 {object} handlers.LoginResponse "Account created and logged in"
// @Failure 400 {object} map[string]string "Invalid or expired code"
// @Failure 429 {object} map[string]string "Too many failed attempts"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /auth/register/verify [post]
func (h *AuthHandler) RegisterVerify(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var pending pendingRegistration
	found, err := h.cache.GetJSON(pendingRegistrationKey(req.Email), &pending)
	if err != nil {
		log.Printf("❌ Failed to read pending registration for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify the code. Please try again."})
		return
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your registration session has expired. Please start again."})
		return
	}

	if !h.verifyCode(c, req.Email, req.Code, "registration") {
		return
	}

	// Code accepted: create the supplier (first registrant from this
	// domain) and the account in one transaction.
	var user models.User
	var supplier *models.Supplier
	err = h.db.Transaction(func(tx *gorm.DB) error {
		supplier, err = database.FindOrCreateSupplier(tx, pending.Domain, pending.CompanyName, pending.CompanyCountry)
		if err != nil {
			return err
		}

		user = models.User{
			Email:         pending.Email,
			FirstName:     pending.FirstName,
			LastName:      pending.LastName,
			Status:        "ACTIVE",
			EmailVerified: true,
			SupplierID:    &supplier.ID,
		}
		if pending.BackupEmail != "" {
			user.BackupEmail = &pending.BackupEmail
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		log.Printf("❌ Failed to create account for %s: %v", pending.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create your account. Please try again."})
		return
	}

	// Flow state is consumed on success.
	h.cache.Forget(pendingRegistrationKey(req.Email))
	h.otpStore.Forget(req.Email)

	h.recordAttempt(pending.Email, c.ClientIP(), c.GetHeader("User-Agent"), true, "")

	response, err := h.startSession(c, &user, supplier.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account created but login failed. Please log in."})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// POST /api/auth/register/resend
// @Summary Resend registration code
// @Description Re-issue the registration verification code, subject to the resend cooldown
// @Tags auth
// @Accept json
// @Produce json
// @Param resend body ResendCodeRequest true "Email"
// @Success 200 {object} map[string]string "Verification code sent"
// @Failure 400 {object} map[string]string "No registration in progress"
// @Failure 429 {object} map[string]string "Resend cooldown active"
// @Router /auth/register/resend [post]
func (h *AuthHandler) RegisterResend(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var pending pendingRegistration
	found, err := h.cache.GetJSON(pendingRegistrationKey(req.Email), &pending)
	if err != nil {
		log.Printf("❌ Failed to read pending registration for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not resend the code. Please try again."})
		return
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your registration session has expired. Please start again."})
		return
	}

	h.resendCode(c, req.Email, pending.FirstName, "registration")
}

// POST /api/auth/login
// @Summary Start login
// @Description Send a login verification code. The response is identical whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login email"
// @Success 200 {object} map[string]string "Generic acknowledgement"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]string "Personal email provider rejected"
// @Failure 429 {object} map[string]string "Too many login attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if domain.IsBlockedProvider(req.Email, config.GetConfig().BlockedEmailProviders) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Please log in with your company email address."})
		return
	}

	if err := h.checkFailedAttempts(req.Email, c.ClientIP()); err != nil {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts. Please try again later."})
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND status = ?", req.Email, "ACTIVE").First(&user).Error; err != nil {
		// Same response as the success path: account existence must not
		// be observable from the outside.
		c.JSON(http.StatusOK, gin.H{"message": genericCodeSentMessage})
		return
	}

	if err := h.issueAndDispatchCode(c, user.Email, user.FirstName, "login"); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not send the verification code. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": genericCodeSentMessage})
}

// POST /api/auth/login/verify
// @Summary Complete login
// @Description Verify the emailed login code and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param verify body VerifyCodeRequest true "Email and verification code"
// @Success 200 {object} handlers.LoginResponse "Logged in"
// @Failure 400 {object} map[string]string "Invalid or expired code"
// @Failure 429 {object} map[string]string "Too many failed attempts"
// @Router /auth/login/verify [post]
func (h *AuthHandler) LoginVerify(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.verifyCode(c, req.Email, req.Code, "login") {
		return
	}

	var user models.User
	if err := h.db.Preload("Supplier").Where("email = ? AND status = ?", req.Email, "ACTIVE").First(&user).Error; err != nil {
		// A code can only verify if one was issued, and codes are only
		// issued for existing accounts. Reaching this means the account
		// was removed mid-flow.
		h.recordAttempt(req.Email, c.ClientIP(), c.GetHeader("User-Agent"), false, "user_not_found")
		c.JSON(http.StatusBadRequest, gin.H{"error": otp.ErrInvalidCode.Error()})
		return
	}

	h.otpStore.Forget(req.Email)
	h.recordAttempt(user.Email, c.ClientIP(), c.GetHeader("User-Agent"), true, "")

	response, err := h.startSession(c, &user, user.Supplier.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// POST /api/auth/login/resend
// @Summary Resend login code
// @Description Re-issue the login verification code, subject to the resend cooldown
// @Tags auth
// @Accept json
// @Produce json
// @Param resend body ResendCodeRequest true "Email"
// @Success 200 {object} map[string]string "Generic acknowledgement"
// @Failure 429 {object} map[string]string "Resend cooldown active"
// @Router /auth/login/resend [post]
func (h *AuthHandler) LoginResend(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND status = ?", req.Email, "ACTIVE").First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"message": genericCodeSentMessage})
		return
	}

	h.resendCode(c, user.Email, user.FirstName, "login")
}

// POST /api/auth/logout
// @Summary User logout
// @Description Close the current session
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Logged out successfully"
// @Failure 401 {object} map[string]string "Invalid token"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token required"})
		return
	}

	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	claims, err := utils.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	tokenHash := tokenString[:32]
	userID, _ := uuid.Parse(claims.UserID)
	if err := h.db.Model(&auth.UserSession{}).
		Where("user_id = ? AND token_hash = ? AND is_active = ?", userID, tokenHash, true).
		Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// POST /api/auth/refresh
// @Summary Refresh JWT token
// @Description Refresh an expired JWT token using a valid refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "Refresh token"
// @Success 200 {object} handlers.RefreshResponse "Successfully refreshed tokens"
// @Failure 401 {object} map[string]string "Invalid refresh token or user inactive"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateRefreshJWT(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	userID, _ := uuid.Parse(claims.UserID)
	var userSession auth.UserSession
	if err := h.db.Where("user_id = ? AND refresh_token = ? AND is_active = ?",
		userID, req.RefreshToken, true).First(&userSession).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not found or expired"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if user.Status != "ACTIVE" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
		return
	}

	var supplierID uuid.UUID
	if user.SupplierID != nil {
		supplierID = *user.SupplierID
	}

	newToken, err := utils.GenerateJWT(user.ID, user.Email, supplierID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	newRefreshToken, err := utils.GenerateRefreshJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate refresh token"})
		return
	}

	expireDuration := utils.GetJWTExpireDuration()
	userSession.TokenHash = newToken[:32]
	userSession.RefreshToken = newRefreshToken
	userSession.ExpiresAt = time.Now().Add(expireDuration)
	userSession.UpdatedAt = time.Now()

	if err := h.db.Save(&userSession).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update session"})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{
		Token:        newToken,
		RefreshToken: newRefreshToken,
		ExpiresAt:    time.Now().Add(expireDuration),
	})
}

// issueAndDispatchCode issues a fresh code bound to the caller's origin,
// arms the resend cooldown and hands the plaintext to the notification
// service. A dispatch failure tears the code down again so no orphaned
// cache entry survives.
func (h *AuthHandler) issueAndDispatchCode(c *gin.Context, email, name, flow string) error {
	code, err := h.otpStore.Issue(email, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		log.Printf("❌ Failed to issue verification code for %s: %v", email, err)
		return err
	}
	if err := h.otpStore.ArmCooldown(email); err != nil {
		log.Printf("❌ Failed to arm resend cooldown for %s: %v", email, err)
	}

	h.metrics.IncOTPIssued(flow)

	expiresIn := int(otp.TTL.Minutes())
	if err := h.notifications.SendVerificationCodeEmail(email, name, code, expiresIn); err != nil {
		log.Printf("❌ Failed to dispatch verification code to %s: %v", email, err)
		h.otpStore.Forget(email)
		return err
	}

	return nil
}

// verifyCode runs OTP verification and writes the HTTP error response on
// failure. Returns true when the code was accepted.
func (h *AuthHandler) verifyCode(c *gin.Context, email, code, flow string) bool {
	err := h.otpStore.Verify(email, code, c.ClientIP(), c.GetHeader("User-Agent"))
	if err == nil {
		h.metrics.IncOTPVerification(flow, "success")
		return true
	}

	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	switch {
	case errors.Is(err, otp.ErrExpired):
		h.metrics.IncOTPVerification(flow, "expired")
		h.recordAttempt(email, ip, ua, false, "code_expired")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, otp.ErrTooManyAttempts):
		h.metrics.IncOTPVerification(flow, "exhausted")
		h.recordAttempt(email, ip, ua, false, "attempts_exhausted")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, otp.ErrInvalidCode):
		h.metrics.IncOTPVerification(flow, "invalid")
		h.recordAttempt(email, ip, ua, false, "code_invalid")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ Verification store failure for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify the code. Please try again."})
	}

	return false
}

// resendCode re-issues a code under the cooldown gate and writes the HTTP
// response either way.
func (h *AuthHandler) resendCode(c *gin.Context, email, name, flow string) {
	code, err := h.otpStore.Resend(email, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		if errors.Is(err, otp.ErrResendCooldown) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code."})
			return
		}
		log.Printf("❌ Failed to re-issue verification code for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not resend the code. Please try again."})
		return
	}

	h.metrics.IncOTPIssued(flow)

	expiresIn := int(otp.TTL.Minutes())
	if err := h.notifications.SendVerificationCodeEmail(email, name, code, expiresIn); err != nil {
		log.Printf("❌ Failed to dispatch verification code to %s: %v", email, err)
		h.otpStore.Forget(email)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not send the verification code. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "A new verification code has been sent."})
}

// startSession opens a session for a verified user and builds the login
// response.
func (h *AuthHandler) startSession(c *gin.Context, user *models.User, supplierName string) (*LoginResponse, error) {
	var supplierID uuid.UUID
	if user.SupplierID != nil {
		supplierID = *user.SupplierID
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, supplierID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	sessionID, _ := utils.GenerateSessionID()
	expireDuration := utils.GetJWTExpireDuration()
	userSession := auth.UserSession{
		UserID:       user.ID,
		SessionID:    sessionID,
		TokenHash:    token[:32],
		RefreshToken: refreshToken,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		ExpiresAt:    time.Now().Add(expireDuration),
		IsActive:     true,
	}

	if err := h.db.Create(&userSession).Error; err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(expireDuration),
		User: UserInfo{
			ID:           user.ID,
			Email:        user.Email,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			SupplierID:   supplierID,
			SupplierName: supplierName,
			Status:       user.Status,
		},
	}, nil
}

// checkFailedAttempts blocks further tries after repeated recent failures
// for the same email or IP.
func (h *AuthHandler) checkFailedAttempts(email, ipAddress string) error {
	var count int64
	h.db.Model(&auth.LoginAttempt{}).
		Where("(email = ? OR ip_address = ?) AND successful = ? AND created_at > ?",
			email, ipAddress, false, time.Now().Add(-15*time.Minute)).
		Count(&count)

	if count >= 5 {
		return errors.New("too many failed attempts")
	}
	return nil
}

func (h *AuthHandler) recordAttempt(email, ipAddress, userAgent string, successful bool, failureType string) {
	attempt := auth.LoginAttempt{
		Email:       email,
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
		Successful:  successful,
		FailureType: failureType,
		Attempts:    1,
		LastAttempt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	h.db.Create(&attempt)
}
