package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/httpresp"
	"github.com/bookmycut/salon-scheduler/internal/middleware"
	"github.com/bookmycut/salon-scheduler/internal/notification"
)

// NotificationHandler serves the authenticated user's own notifications;
// ownership is enforced by the store, not the route.
type NotificationHandler struct {
	store *notification.Store
}

func NewNotificationHandler(store *notification.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	page := parsePageQuery(c)

	notifications, total, err := h.store.ListByUser(userID, page.Page, page.Size)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, notifications, page.Page, page.Size, total)
}

func (h *NotificationHandler) ListUnread(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	notifications, err := h.store.ListUnread(userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	count, err := h.store.CountUnread(userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	n, err := h.store.MarkRead(id, userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, n)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.store.MarkAllRead(userID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(204)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return
	}

	if err := h.store.Delete(id, userID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(204)
}
