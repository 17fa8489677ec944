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

type TeamService interface {
	CreateTeam(ctx context.Context, hackathonID uint, name string, creatorID uint) (domain.Team, error)
	JoinTeam(ctx context.Context, teamID, userID uint) (*domain.Team, error)
	LeaveTeam(ctx context.Context, teamID, userID uint) error
	SubmitProject(ctx context.Context, teamID, userID uint, name, description, repositoryURL string) (*domain.Team, error)
	EvaluateTeam(ctx context.Context, teamID, judgeID uint, score float64, feedback string) (*domain.Team, error)
	ResetEvaluation(ctx context.Context, teamID uint) (*domain.Team, error)
	GetTeam(ctx context.Context, id uint) (*domain.Team, error)
	ListTeamsByHackathon(ctx context.Context, hackathonID uint) ([]domain.Team, error)
	DeleteTeam(ctx context.Context, teamID, requesterID uint) error
}

type TeamHandler struct {
	svc  TeamService
	uSvc UserService
}

func NewTeamHandler(svc TeamService, uSvc UserService) *TeamHandler {
	return &TeamHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateTeam godoc
// @Summary      Create a team in a hackathon
// @Tags         teams
// @Produce      json
// @Param        request   body      request.CreateTeamRequest true "request body"
// @Success      201 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleCreateTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.CreateTeam(ctx.Request.Context(), req.HackathonID, req.Name, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyInTeam):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyInTeam))
		case errors.Is(err, service.ErrRegistrationClosed):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrRegistrationClosed))
		case errors.Is(err, service.ErrHackathonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("hackathon", "ID", req.HackathonID))
		default:
			err = fmt.Errorf("v1.HandleCreateTeam -> h.svc.CreateTeam -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.NewTeamResponse(&team))
}

// HandleGetTeam godoc
// @Summary      Get a team with its members
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Success      200 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID} [get]
// @Security     BearerAuth
func (h *TeamHandler) HandleGetTeam(ctx *gin.Context) {
	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	team, err := h.svc.GetTeam(ctx.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))

			return
		}

		err = fmt.Errorf("v1.HandleGetTeam -> h.svc.GetTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponse(team))
}

// HandleListTeams godoc
// @Summary      List the teams of a hackathon
// @Tags         teams
// @Produce      json
// @Param        hackathonID   path       int  true "hackathon ID"
// @Success      200 {array}  response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /hackathons/{hackathonID}/teams [get]
// @Security     BearerAuth
func (h *TeamHandler) HandleListTeams(ctx *gin.Context) {
	hackathonID, err := parseIDParam(ctx, "hackathonID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid hackathon ID: %w", err)))

		return
	}

	teams, err := h.svc.ListTeamsByHackathon(ctx.Request.Context(), hackathonID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTeams -> h.svc.ListTeamsByHackathon -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponses(teams))
}

// HandleJoinTeam godoc
// @Summary      Join a team
// @Description  A user already in another team leaves it implicitly, unless they created it.
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Success      200 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID}/join [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleJoinTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	team, err := h.svc.JoinTeam(ctx.Request.Context(), teamID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))
		case errors.Is(err, service.ErrTeamFull):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTeamFull))
		case errors.Is(err, service.ErrProtectedCreator):
			response.RenderErr(ctx, response.ErrConflict(service.ErrProtectedCreator))
		case errors.Is(err, service.ErrConflictingMembership):
			response.RenderErr(ctx, response.ErrConflict(service.ErrConflictingMembership))
		default:
			err = fmt.Errorf("v1.HandleJoinTeam -> h.svc.JoinTeam -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponse(team))
}

// HandleLeaveTeam godoc
// @Summary      Leave a team
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      409 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID}/leave [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleLeaveTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	if err = h.svc.LeaveTeam(ctx.Request.Context(), teamID, user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))
		case errors.Is(err, service.ErrNotTeamMember):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNotTeamMember))
		case errors.Is(err, service.ErrProtectedCreator):
			response.RenderErr(ctx, response.ErrConflict(service.ErrProtectedCreator))
		default:
			err = fmt.Errorf("v1.HandleLeaveTeam -> h.svc.LeaveTeam -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSubmitProject godoc
// @Summary      Submit or replace the team's project
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Param        request   body      request.SubmitProjectRequest true "request body"
// @Success      200 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID}/project [put]
// @Security     BearerAuth
func (h *TeamHandler) HandleSubmitProject(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	var req request.SubmitProjectRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.SubmitProject(ctx.Request.Context(), teamID, user.ID, req.Name, req.Description, req.RepositoryURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))
		case errors.Is(err, service.ErrNotTeamMember):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotTeamMember))
		case errors.Is(err, service.ErrHackathonNotInProgress):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrHackathonNotInProgress))
		default:
			err = fmt.Errorf("v1.HandleSubmitProject -> h.svc.SubmitProject -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponse(team))
}

// HandleEvaluateTeam godoc
// @Summary      Evaluate a team's project
// @Description  Score must be between 0 and 10; a later evaluation overwrites the earlier one.
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Param        request   body      request.EvaluateTeamRequest true "request body"
// @Success      200 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID}/evaluation [put]
// @Security     BearerAuth
func (h *TeamHandler) HandleEvaluateTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	var req request.EvaluateTeamRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	team, err := h.svc.EvaluateTeam(ctx.Request.Context(), teamID, user.ID, *req.Score, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleViolation):
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("user %v is not a judge", user.ID)))
		case errors.Is(err, service.ErrScoreOutOfRange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrScoreOutOfRange))
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))
		default:
			err = fmt.Errorf("v1.HandleEvaluateTeam -> h.svc.EvaluateTeam -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponse(team))
}

// HandleResetEvaluation godoc
// @Summary      Clear a team's evaluation
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Success      200 {object} response.TeamResponse
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID}/evaluation [delete]
// @Security     BearerAuth
func (h *TeamHandler) HandleResetEvaluation(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}
	if user.Role != domain.RoleJudge {
		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("user %v is not a judge", user.ID)))

		return
	}

	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	team, err := h.svc.ResetEvaluation(ctx.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))

			return
		}

		err = fmt.Errorf("v1.HandleResetEvaluation -> h.svc.ResetEvaluation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTeamResponse(team))
}

// HandleDeleteTeam godoc
// @Summary      Disband a team
// @Tags         teams
// @Produce      json
// @Param        teamID   path       int  true "team ID"
// @Success      204
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /teams/{teamID} [delete]
// @Security     BearerAuth
func (h *TeamHandler) HandleDeleteTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	teamID, err := parseIDParam(ctx, "teamID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid team ID: %w", err)))

		return
	}

	if err = h.svc.DeleteTeam(ctx.Request.Context(), teamID, user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "ID", teamID))
		case errors.Is(err, service.ErrRoleViolation):
			response.RenderErr(ctx, response.ErrPermissionDenied(
				fmt.Errorf("user %v did not create this team", user.ID)))
		default:
			err = fmt.Errorf("v1.HandleDeleteTeam -> h.svc.DeleteTeam -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
