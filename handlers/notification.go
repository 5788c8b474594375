package handlers

import (
	"net/http"

	"eventra/middleware"
	"eventra/services/notification"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the in-app notification store.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// MyNotifications handles GET /api/notifications.
func (h *NotificationHandler) MyNotifications(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	notifications, err := h.Service.ListForUser(c.Request.Context(), actor.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	err := h.Service.MarkRead(c.Request.Context(), actor.ID, c.Param("id"))
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
	case notification.ErrNotFound:
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case notification.ErrNotRecipient:
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification as read", "")
	}
}
