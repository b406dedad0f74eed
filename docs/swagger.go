// Package docs VendorCheck API documentation
package docs

// Swagger documentation info
// @title VendorCheck API
// @version 1.0
// @description Central API documentation - For all VendorCheck services
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.vendorcheck.io/support
// @contact.email support@vendorcheck.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// Review Service Endpoints
// @tag.name auth
// @tag.description Email-code registration, login and session management

// @tag.name suppliers
// @tag.description Vendor directory and company profiles

// @tag.name reviews
// @tag.description Scored vendor assessments

// Notification Service Endpoints
// @tag.name email
// @tag.description Outbound email delivery

// @tag.name notifications
// @tag.description Stored in-app notifications

// @tag.name websocket
// @tag.description Real-time notification delivery
