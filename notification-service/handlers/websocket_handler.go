package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendorcheck-backend/notification-service/services"
	"vendorcheck-backend/shared/database/models/notification"
)

// HandleWebSocket handles WebSocket connection requests
// @Summary WebSocket Connection
// @Description Establish WebSocket connection for real-time notifications
// @Tags websocket
// @Param user_id path string true "User ID"
// @Param supplier_id query string false "Supplier ID, enables company-wide alerts"
// @Router /ws/notifications/{user_id} [get]
func HandleWebSocket(c *gin.Context) {
	wsManager := services.GetWebSocketManager()
	wsManager.HandleWebSocketConnection(c)
}

// SendWebSocketMessage sends message via WebSocket service
// @Summary Send WebSocket Message
// @Description Send real-time message to a specific user or a whole company
// @Tags websocket
// @Accept json
// @Produce json
// @Param payload body SendMessageRequest true "Message payload"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /ws/send [post]
func SendWebSocketMessage(c *gin.Context) {
	var request SendMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	wsManager := services.GetWebSocketManager()

	if request.SupplierID != "" {
		delivered := wsManager.SendToSupplier(request.SupplierID, request.Message)
		c.JSON(http.StatusOK, gin.H{
			"message":     "WebSocket message sent successfully",
			"supplier_id": request.SupplierID,
			"delivered":   delivered,
		})
		return
	}

	if err := wsManager.SendToUser(request.UserID, request.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "WebSocket message sent successfully",
		"user_id": request.UserID,
	})
}

// SendMessageRequest represents the request payload for sending WebSocket
// messages. One of UserID or SupplierID selects the recipients.
type SendMessageRequest struct {
	UserID     string                         `json:"user_id"`
	SupplierID string                         `json:"supplier_id"`
	Message    *notification.WebSocketMessage `json:"message" binding:"required"`
}
