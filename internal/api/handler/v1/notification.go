package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackhub/hackhub-api/internal/api/handler/v1/request"
	"github.com/hackhub/hackhub-api/internal/api/handler/v1/response"
	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/service"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	Send(ctx context.Context, kind domain.NotificationKind, message string, recipientID uint) error
}

type NotificationHandler struct {
	svc  NotificationService
	uSvc UserService
	hub  *StreamHub
}

func NewNotificationHandler(svc NotificationService, uSvc UserService, hub *StreamHub) *NotificationHandler {
	return &NotificationHandler{
		svc:  svc,
		uSvc: uSvc,
		hub:  hub,
	}
}

// HandleListNotifications godoc
// @Summary      List the requester's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200 {array}  domain.Notification
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleListNotifications(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	notifications, err := h.svc.ListForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListNotifications -> h.svc.ListForUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// HandleMarkRead godoc
// @Summary      Mark one of the requester's notifications as read
// @Tags         notifications
// @Produce      json
// @Param        notificationID   path       int  true "notification ID"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /notifications/{notificationID}/read [post]
// @Security     BearerAuth
func (h *NotificationHandler) HandleMarkRead(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	notificationID, err := parseIDParam(ctx, "notificationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid notification ID: %w", err)))

		return
	}

	if err = h.svc.MarkRead(ctx.Request.Context(), notificationID, user.ID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("notification", "ID", notificationID))

			return
		}

		err = fmt.Errorf("v1.HandleMarkRead -> h.svc.MarkRead -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSendNotification godoc
// @Summary      Send a notification to a user over a chosen channel
// @Tags         notifications
// @Produce      json
// @Param        request   body      request.SendNotificationRequest true "request body"
// @Success      202
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /notifications/send [post]
// @Security     BearerAuth
func (h *NotificationHandler) HandleSendNotification(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}
	if user.Role != domain.RoleOrganizer {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("user %v is not an organizer", user.ID)))

		return
	}

	var req request.SendNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	err := h.svc.Send(ctx.Request.Context(), domain.NotificationKind(req.Kind), req.Message, req.RecipientID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.RecipientID))

			return
		}

		err = fmt.Errorf("v1.HandleSendNotification -> h.svc.Send -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusAccepted)
}

// HandleStream godoc
// @Summary      Open a websocket stream of the requester's in-app notifications
// @Tags         notifications
// @Produce      json
// @Success      101 {string} string "Switching Protocols to WebSocket"
// @Failure      401 {object} response.Err
// @Router       /notifications/stream [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleStream(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Error("failed to upgrade notification stream", zap.Error(err))

		return
	}

	client := &streamClient{
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: user.ID,
	}
	h.hub.register <- client

	go client.writePump()
	go client.readPump(h.hub)
}
