package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hackhub/hackhub-api/internal/api/handler/v1/request"
	"github.com/hackhub/hackhub-api/internal/api/handler/v1/response"
	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/service"
)

type SupportService interface {
	CreateRequest(ctx context.Context, teamID uint, title, description string) (domain.SupportRequest, error)
	AssignMentor(ctx context.Context, requestID, mentorID uint) (domain.SupportRequest, error)
	ScheduleCall(ctx context.Context, requestID uint, startTime time.Time) (domain.SupportRequest, error)
	CancelCall(ctx context.Context, requestID uint) (domain.SupportRequest, error)
	Resolve(ctx context.Context, requestID uint) (domain.SupportRequest, error)
	GetRequest(ctx context.Context, id uint) (domain.SupportRequest, error)
	ListRequestsByMentor(ctx context.Context, mentorID uint) ([]domain.SupportRequest, error)
	ListRequestsByTeam(ctx context.Context, teamID uint) ([]domain.SupportRequest, error)
	ListPendingRequests(ctx context.Context) ([]domain.SupportRequest, error)
}

type SupportHandler struct {
	svc  SupportService
	uSvc UserService
}

func NewSupportHandler(svc SupportService, uSvc UserService) *SupportHandler {
	return &SupportHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateRequest godoc
// @Summary      Open a support request for the requester's team
// @Tags         support
// @Produce      json
// @Param        request   body      request.CreateSupportRequest true "request body"
// @Success      201 {object} domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /support-requests [post]
// @Security     BearerAuth
func (h *SupportHandler) HandleCreateRequest(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateSupportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if user.TeamID == nil || *user.TeamID != req.TeamID {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("user %v is not a member of team %v", user.ID, req.TeamID)))

		return
	}

	created, err := h.svc.CreateRequest(ctx.Request.Context(), req.TeamID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", req.TeamID))

			return
		}

		err = fmt.Errorf("v1.HandleCreateRequest -> h.svc.CreateRequest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleAssignMentor godoc
// @Summary      Assign a mentor to a support request
// @Tags         support
// @Produce      json
// @Param        requestID   path       int  true "support request ID"
// @Param        request   body      request.AssignMentorRequest true "request body"
// @Success      200 {object} domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /support-requests/{requestID}/mentor [put]
// @Security     BearerAuth
func (h *SupportHandler) HandleAssignMentor(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}
	if user.Role != domain.RoleMentor && user.Role != domain.RoleOrganizer {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("user %v may not assign mentors", user.ID)))

		return
	}

	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid request ID: %w", err)))

		return
	}

	var req request.AssignMentorRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.AssignMentor(ctx.Request.Context(), requestID, req.MentorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupportRequestNotFound):
			response.RenderErr(ctx, response.ErrNotFound("support request", "ID", requestID))
		case errors.Is(err, service.ErrSupportRequestResolved):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSupportRequestResolved))
		case errors.Is(err, service.ErrRoleViolation):
			response.RenderErr(ctx, response.ErrBadRequest(
				fmt.Errorf("user %v is not a mentor", req.MentorID)))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.MentorID))
		default:
			err = fmt.Errorf("v1.HandleAssignMentor -> h.svc.AssignMentor -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleScheduleCall godoc
// @Summary      Book a one-hour mentoring call on the calendar
// @Tags         support
// @Produce      json
// @Param        requestID   path       int  true "support request ID"
// @Param        request   body      request.ScheduleCallRequest true "request body"
// @Success      200 {object} domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      502 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /support-requests/{requestID}/call [post]
// @Security     BearerAuth
func (h *SupportHandler) HandleScheduleCall(ctx *gin.Context) {
	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid request ID: %w", err)))

		return
	}

	var req request.ScheduleCallRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.ScheduleCall(ctx.Request.Context(), requestID, req.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupportRequestNotFound):
			response.RenderErr(ctx, response.ErrNotFound("support request", "ID", requestID))
		case errors.Is(err, service.ErrSupportRequestResolved):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSupportRequestResolved))
		case errors.Is(err, service.ErrMentorNotAssigned):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMentorNotAssigned))
		default:
			err = fmt.Errorf("v1.HandleScheduleCall -> h.svc.ScheduleCall -> %w", err)
			response.RenderErr(ctx, response.ErrBadGateway(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleCancelCall godoc
// @Summary      Cancel the booked mentoring call
// @Tags         support
// @Produce      json
// @Param        requestID   path       int  true "support request ID"
// @Success      200 {object} domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      502 {object} response.Err
// @Router       /support-requests/{requestID}/call [delete]
// @Security     BearerAuth
func (h *SupportHandler) HandleCancelCall(ctx *gin.Context) {
	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid request ID: %w", err)))

		return
	}

	updated, err := h.svc.CancelCall(ctx.Request.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupportRequestNotFound):
			response.RenderErr(ctx, response.ErrNotFound("support request", "ID", requestID))
		case errors.Is(err, service.ErrNoScheduledCall):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNoScheduledCall))
		default:
			err = fmt.Errorf("v1.HandleCancelCall -> h.svc.CancelCall -> %w", err)
			response.RenderErr(ctx, response.ErrBadGateway(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleResolve godoc
// @Summary      Mark a support request as resolved
// @Tags         support
// @Produce      json
// @Param        requestID   path       int  true "support request ID"
// @Success      200 {object} domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /support-requests/{requestID}/resolve [post]
// @Security     BearerAuth
func (h *SupportHandler) HandleResolve(ctx *gin.Context) {
	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid request ID: %w", err)))

		return
	}

	updated, err := h.svc.Resolve(ctx.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, service.ErrSupportRequestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("support request", "ID", requestID))

			return
		}

		err = fmt.Errorf("v1.HandleResolve -> h.svc.Resolve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleGetRequest godoc
// @Summary      Get a support request
// @Tags         support
// @Produce      json
// @Param        requestID   path       int  true "support request ID"
// @Success      200 {object} domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /support-requests/{requestID} [get]
// @Security     BearerAuth
func (h *SupportHandler) HandleGetRequest(ctx *gin.Context) {
	requestID, err := parseIDParam(ctx, "requestID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid request ID: %w", err)))

		return
	}

	found, err := h.svc.GetRequest(ctx.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, service.ErrSupportRequestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("support request", "ID", requestID))

			return
		}

		err = fmt.Errorf("v1.HandleGetRequest -> h.svc.GetRequest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, found)
}

// HandleListRequests godoc
// @Summary      List support requests
// @Description  Mentors see their assigned requests, team members their team's; "pending" lists unassigned ones.
// @Tags         support
// @Produce      json
// @Param        pending   query      bool  false "only unassigned requests"
// @Success      200 {array}  domain.SupportRequest
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /support-requests [get]
// @Security     BearerAuth
func (h *SupportHandler) HandleListRequests(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var (
		requests []domain.SupportRequest
		err      error
	)

	switch {
	case ctx.Query("pending") == "true":
		requests, err = h.svc.ListPendingRequests(ctx.Request.Context())
	case user.Role == domain.RoleMentor:
		requests, err = h.svc.ListRequestsByMentor(ctx.Request.Context(), user.ID)
	case user.TeamID != nil:
		requests, err = h.svc.ListRequestsByTeam(ctx.Request.Context(), *user.TeamID)
	default:
		requests = []domain.SupportRequest{}
	}

	if err != nil {
		err = fmt.Errorf("v1.HandleListRequests -> h.svc.ListRequests -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, requests)
}
