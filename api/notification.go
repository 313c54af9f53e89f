package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/token"
)

type listNotificationsQuery struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1"`
}

//	@Summary		List my notifications
//	@Tags			notifications
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum number of notifications (default 50)"
//	@Success		200		{array}	db.Notification
//	@Security		accessToken
//	@Router			/users/me/notifications [get]
func (server *Server) listMyNotifications(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	var query listNotificationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}

	notifications, err := server.notifications.List(c, authPayload.UserID, query.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

type unreadCountResponse struct {
	Count int64 `json:"count" example:"3"`
}

//	@Summary	Count my unread notifications
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{object}	unreadCountResponse
//	@Security	accessToken
//	@Router		/users/me/notifications/unread-count [get]
func (server *Server) countUnreadNotifications(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	count, err := server.notifications.UnreadCount(c, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

//	@Summary		Mark a notification as read
//	@Description	Idempotent. Another user's notification is reported as not found.
//	@Tags			notifications
//	@Produce		json
//	@Param			notificationID	path		string	true	"Notification ID"
//	@Success		200				{object}	db.Notification
//	@Failure		404				{object}	errorBody
//	@Security		accessToken
//	@Router			/users/me/notifications/{notificationID}/read [patch]
func (server *Server) markNotificationAsRead(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	notificationID, ok := parseUUIDParam(c, "notificationID")
	if !ok {
		return
	}

	notification, err := server.notifications.MarkRead(c, notificationID, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

type markAllReadResponse struct {
	Updated int64 `json:"updated" example:"4"`
}

//	@Summary	Mark all my notifications as read
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{object}	markAllReadResponse
//	@Security	accessToken
//	@Router		/users/me/notifications/read-all [patch]
func (server *Server) markAllNotificationsAsRead(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	updated, err := server.notifications.MarkAllRead(c, authPayload.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, markAllReadResponse{Updated: updated})
}
