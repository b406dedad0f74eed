package main

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vendorcheck-backend/docs"
	"vendorcheck-backend/review-service/handlers"
	"vendorcheck-backend/review-service/middleware"
	"vendorcheck-backend/review-service/services"
	"vendorcheck-backend/shared/config"
	"vendorcheck-backend/shared/database"
	"vendorcheck-backend/shared/utils/cache"
	"vendorcheck-backend/shared/utils/metrics"
)

// getIntConfig is a helper function to get integer configuration values
func getIntConfig(key string, defaultValue int) int {
	strValue := config.GetConfig().GetField(key)
	if strValue == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: Could not convert %s value '%s' to int, using default %d", key, strValue, defaultValue)
		return defaultValue
	}

	return intValue
}

// @title VendorCheck Review API
// @version 1.0
// @description Vendor assessment platform: company accounts, email-code login and scored vendor reviews
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Initialize cache (verification codes and pending registrations)
	if err := cache.InitCacheManager(); err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cache.GetCacheManager().Close()

	// Logo storage
	logoService, err := services.NewLogoService()
	if err != nil {
		log.Fatalf("Failed to initialize logo storage: %v", err)
	}

	appMetrics := metrics.New()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(database.GetDB(), cache.GetCacheManager(), appMetrics)
	reviewHandler := handlers.NewReviewHandler(database.GetDB(), appMetrics)
	supplierHandler := handlers.NewSupplierHandler(database.GetDB(), logoService)

	// Initialize rate limiter
	rateLimiterCleanupTime := 30 * time.Minute
	rateLimiter := middleware.NewRateLimiter(rateLimiterCleanupTime)

	// Rate limiting configs
	generalConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig("RateLimitMaxRequests", 100),
		TimeWindow:    time.Duration(getIntConfig("RateLimitTimeWindowSeconds", 60)) * time.Second,
		BlockDuration: time.Duration(getIntConfig("RateLimitBlockDurationMinutes", 15)) * time.Minute,
	}

	loginConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig("LoginRateLimitMaxAttempts", 5),
		TimeWindow:    time.Duration(getIntConfig("LoginRateLimitWindowSeconds", 300)) * time.Second,
		BlockDuration: time.Duration(getIntConfig("LoginRateLimitBlockMinutes", 30)) * time.Minute,
	}

	registerConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig("RegisterRateLimitMaxAttempts", 3),
		TimeWindow:    time.Duration(getIntConfig("RegisterRateLimitWindowHours", 24)) * time.Hour,
		BlockDuration: time.Duration(getIntConfig("RegisterRateLimitBlockHours", 48)) * time.Hour,
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.GetConfig().FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Registration flow
	router.POST("/api/auth/register", rateLimiter.RegistrationRateLimitMiddleware(registerConfig), authHandler.Register)
	router.POST("/api/auth/register/verify", rateLimiter.LoginRateLimitMiddleware(loginConfig), authHandler.RegisterVerify)
	router.POST("/api/auth/register/resend", rateLimiter.LoginRateLimitMiddleware(loginConfig), authHandler.RegisterResend)

	// Login flow
	router.POST("/api/auth/login", rateLimiter.LoginRateLimitMiddleware(loginConfig), authHandler.Login)
	router.POST("/api/auth/login/verify", rateLimiter.LoginRateLimitMiddleware(loginConfig), authHandler.LoginVerify)
	router.POST("/api/auth/login/resend", rateLimiter.LoginRateLimitMiddleware(loginConfig), authHandler.LoginResend)

	// Session management
	router.POST("/api/auth/logout", middleware.AuthMiddleware(), authHandler.Logout)
	router.POST("/api/auth/refresh", rateLimiter.RateLimitMiddleware(generalConfig), authHandler.Refresh)

	// Vendor directory (public)
	router.GET("/api/suppliers", rateLimiter.RateLimitMiddleware(generalConfig), supplierHandler.ListSuppliers)
	router.GET("/api/suppliers/:slug", rateLimiter.RateLimitMiddleware(generalConfig), supplierHandler.GetSupplier)

	// Company logo
	router.POST("/api/suppliers/logo", middleware.AuthMiddleware(), supplierHandler.UploadLogo)

	// Reviews
	router.POST("/api/reviews", middleware.AuthMiddleware(), reviewHandler.CreateReview)
	router.GET("/api/reviews/mine", middleware.AuthMiddleware(), reviewHandler.ListMyReviews)
	router.GET("/api/reviews/:token", middleware.AuthMiddleware(), reviewHandler.GetReview)
	router.PUT("/api/reviews/:token", middleware.AuthMiddleware(), reviewHandler.UpdateReview)
	router.DELETE("/api/reviews/:token", middleware.AuthMiddleware(), reviewHandler.DeleteReview)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "review",
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := strings.Split(config.GetConfig().ReviewServiceURL, ":")[2]
	log.Printf("Review Service starting on port %s...", port)
	router.Run(":" + port)
}
