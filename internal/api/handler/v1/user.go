package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackhub/hackhub-api/internal/api/handler/v1/response"
	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uint, role domain.Role) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200 {object} response.UserResponse
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ctx.JSON(http.StatusOK, response.NewUserResponse(user))
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Success      200 {object} response.UserResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /users/{userID} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID: %w", err)))

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewUserResponse(user))
}

// HandleListUsers godoc
// @Summary      List users, optionally filtered by role
// @Tags         users
// @Produce      json
// @Param        role   query      string  false "role filter"
// @Success      200 {array}  response.UserResponse
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	var (
		users []domain.User
		err   error
	)

	if role := ctx.Query("role"); role != "" {
		users, err = h.svc.ListUsersByRole(ctx.Request.Context(), domain.Role(role))
	} else {
		users, err = h.svc.ListUsers(ctx.Request.Context())
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRole))

			return
		}

		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, response.NewUserResponse(u))
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleUpdateRole godoc
// @Summary      Change a user's role
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Param        request  body       object true "request body"
// @Success      200 {object} response.UserResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /users/{userID}/role [put]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateRole(ctx *gin.Context) {
	requester, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if requester.Role != domain.RoleOrganizer {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("user %v is not an organizer", requester.ID)))

		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid user ID: %w", err)))

		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.UpdateRole(ctx.Request.Context(), userID, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRole))

			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateRole -> h.svc.UpdateRole -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewUserResponse(user))
}
