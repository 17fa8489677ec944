package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackhub/hackhub-api/internal/api/handler/v1/request"
	"github.com/hackhub/hackhub-api/internal/api/handler/v1/response"
	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/service"
)

type HackathonService interface {
	CreateHackathon(ctx context.Context, hackathon domain.Hackathon) (domain.Hackathon, error)
	GetHackathon(ctx context.Context, id uint) (*domain.Hackathon, error)
	ListHackathons(ctx context.Context) ([]domain.Hackathon, error)
	ListHackathonsByStatus(ctx context.Context, status domain.Status) ([]domain.Hackathon, error)
	ListHackathonsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Hackathon, error)
	AssignJudge(ctx context.Context, hackathonID, judgeID uint) (*domain.Hackathon, error)
	UpdateStatus(ctx context.Context, hackathonID uint, newStatus domain.Status) (*domain.Hackathon, error)
	DeclareWinner(ctx context.Context, hackathonID, teamID uint) (*domain.Team, error)
	AddMentor(ctx context.Context, hackathonID, mentorID uint) error
	RemoveMentor(ctx context.Context, hackathonID, mentorID uint) error
	GetMentors(ctx context.Context, hackathonID uint) ([]*domain.User, error)
}

type HackathonHandler struct {
	svc  HackathonService
	uSvc UserService
}

func NewHackathonHandler(svc HackathonService, uSvc UserService) *HackathonHandler {
	return &HackathonHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListHackathons godoc
// @Summary      List hackathons, optionally filtered by status or organizer
// @Tags         hackathons
// @Produce      json
// @Param        status   query      string  false "status filter"
// @Param        mine     query      bool    false "only hackathons organized by the requester"
// @Success      200 {array}  response.HackathonResponse
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons [get]
// @Security     BearerAuth
func (h *HackathonHandler) HandleListHackathons(ctx *gin.Context) {
	var (
		hackathons []domain.Hackathon
		err        error
	)

	switch {
	case ctx.Query("mine") == "true":
		user, respErr := getUserFromContext(ctx, h.uSvc)
		if respErr != nil {
			response.RenderErr(ctx, respErr)

			return
		}
		hackathons, err = h.svc.ListHackathonsByOrganizer(ctx.Request.Context(), user.ID)

	case ctx.Query("status") != "":
		hackathons, err = h.svc.ListHackathonsByStatus(ctx.Request.Context(), domain.Status(ctx.Query("status")))

	default:
		hackathons, err = h.svc.ListHackathons(ctx.Request.Context())
	}

	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidStatus))

			return
		}

		err = fmt.Errorf("v1.HandleListHackathons -> h.svc.ListHackathons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewHackathonResponses(hackathons))
}

// HandleGetHackathon godoc
// @Summary      Get a hackathon with its teams, members, mentors and judge
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Success      200 {object} response.HackathonResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID} [get]
// @Security     BearerAuth
func (h *HackathonHandler) HandleGetHackathon(ctx *gin.Context) {
	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	hackathon, err := h.svc.GetHackathon(ctx.Request.Context(), hackathonID)
	if err != nil {
		if errors.Is(err, service.ErrHackathonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))

			return
		}

		err = fmt.Errorf("v1.HandleGetHackathon -> h.svc.GetHackathon -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewHackathonResponse(hackathon))
}

// HandleCreateHackathon godoc
// @Summary      Create a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        request   body      request.CreateHackathonRequest true "request body"
// @Success      201 {object} response.HackathonResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons [post]
// @Security     BearerAuth
func (h *HackathonHandler) HandleCreateHackathon(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateHackathonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateHackathon(ctx.Request.Context(), domain.Hackathon{
		Name:                 req.Name,
		Description:          req.Description,
		Rules:                req.Rules,
		RegistrationDeadline: req.RegistrationDeadline,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		MaxTeamSize:          req.MaxTeamSize,
		OrganizerID:          user.ID,
		PrizePoolCents:       req.PrizePoolCents,
		PrizeCurrency:        req.PrizeCurrency,
	})
	if err != nil {
		if errors.Is(err, service.ErrRoleViolation) {
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("user %v is not an organizer", user.ID)))

			return
		}

		err = fmt.Errorf("v1.HandleCreateHackathon -> h.svc.CreateHackathon -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewHackathonResponse(&created))
}

// HandleUpdateStatus godoc
// @Summary      Change a hackathon's lifecycle status
// @Description  Moving to CONCLUDED determines the winner and pays out the prize pool.
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Param        request   body      request.UpdateStatusRequest true "request body"
// @Success      200 {object} response.HackathonResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      502 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/status [put]
// @Security     BearerAuth
func (h *HackathonHandler) HandleUpdateStatus(ctx *gin.Context) {
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

	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	var req request.UpdateStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	hackathon, err := h.svc.UpdateStatus(ctx.Request.Context(), hackathonID, domain.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidStatus))
		case errors.Is(err, service.ErrHackathonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))
		case hackathon != nil:
			// The status change persisted but the prize payout failed.
			response.RenderErr(ctx, response.ErrBadGateway(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateStatus -> h.svc.UpdateStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewHackathonResponse(hackathon))
}

// HandleAssignJudge godoc
// @Summary      Assign a judge to a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Param        request   body      request.AssignJudgeRequest true "request body"
// @Success      200 {object} response.HackathonResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/judge [put]
// @Security     BearerAuth
func (h *HackathonHandler) HandleAssignJudge(ctx *gin.Context) {
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

	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	var req request.AssignJudgeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	hackathon, err := h.svc.AssignJudge(ctx.Request.Context(), hackathonID, req.JudgeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleViolation):
			response.RenderErr(ctx, response.ErrBadRequest(
				fmt.Errorf("user %v is not a judge", req.JudgeID)))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.JudgeID))
		case errors.Is(err, service.ErrHackathonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))
		default:
			err = fmt.Errorf("v1.HandleAssignJudge -> h.svc.AssignJudge -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewHackathonResponse(hackathon))
}

// HandleDeclareWinner godoc
// @Summary      Declare a team the winner of a concluded hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Param        request   body      request.DeclareWinnerRequest true "request body"
// @Success      200 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/winner [put]
// @Security     BearerAuth
func (h *HackathonHandler) HandleDeclareWinner(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}
	if user.Role != domain.RoleOrganizer && user.Role != domain.RoleJudge {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("user %v may not declare winners", user.ID)))

		return
	}

	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	var req request.DeclareWinnerRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.DeclareWinner(ctx.Request.Context(), hackathonID, req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHackathonNotConcluded):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrHackathonNotConcluded))
		case errors.Is(err, service.ErrTeamNotInHackathon):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTeamNotInHackathon))
		case errors.Is(err, service.ErrHackathonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))
		default:
			err = fmt.Errorf("v1.HandleDeclareWinner -> h.svc.DeclareWinner -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponse(team))
}

// HandleAddMentor godoc
// @Summary      Register a mentor on a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Param        request   body      request.AddMentorRequest true "request body"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/mentors [post]
// @Security     BearerAuth
func (h *HackathonHandler) HandleAddMentor(ctx *gin.Context) {
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

	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	var req request.AddMentorRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.AddMentor(ctx.Request.Context(), hackathonID, req.MentorID); err != nil {
		switch {
		case errors.Is(err, service.ErrRoleViolation):
			response.RenderErr(ctx, response.ErrBadRequest(
				fmt.Errorf("user %v is not a mentor", req.MentorID)))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.MentorID))
		case errors.Is(err, service.ErrHackathonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))
		default:
			err = fmt.Errorf("v1.HandleAddMentor -> h.svc.AddMentor -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRemoveMentor godoc
// @Summary      Remove a mentor from a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Param        mentorID      path       int  true "mentor ID"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/mentors/{mentorID} [delete]
// @Security     BearerAuth
func (h *HackathonHandler) HandleRemoveMentor(ctx *gin.Context) {
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

	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	mentorID, err := parseIDParam(ctx, "mentorID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid mentor ID: %w", err)))

		return
	}

	if err = h.svc.RemoveMentor(ctx.Request.Context(), hackathonID, mentorID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", mentorID))
		case errors.Is(err, service.ErrHackathonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))
		default:
			err = fmt.Errorf("v1.HandleRemoveMentor -> h.svc.RemoveMentor -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetMentors godoc
// @Summary      List the mentors of a hackathon
// @Tags         hackathons
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Success      200 {array}  response.UserResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/mentors [get]
// @Security     BearerAuth
func (h *HackathonHandler) HandleGetMentors(ctx *gin.Context) {
	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	mentors, err := h.svc.GetMentors(ctx.Request.Context(), hackathonID)
	if err != nil {
		if errors.Is(err, service.ErrHackathonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", hackathonID))

			return
		}

		err = fmt.Errorf("v1.HandleGetMentors -> h.svc.GetMentors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	result := make([]response.UserResponse, 0, len(mentors))
	for _, m := range mentors {
		result = append(result, response.NewUserResponse(*m))
	}

	ctx.JSON(http.StatusOK, result)
}
