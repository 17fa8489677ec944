package response

import (
	"time"

	"github.com/hackhub/hackhub-api/internal/domain"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	TeamID   *uint  `json:"team_id,omitempty"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     string(user.Role),
		TeamID:   user.TeamID,
	}
}

type TeamResponse struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	HackathonID uint               `json:"hackathon_id"`
	CreatorID   uint               `json:"creator_id"`
	Project     *domain.Project    `json:"project,omitempty"`
	Evaluation  *domain.Evaluation `json:"evaluation,omitempty"`
	Members     []UserResponse     `json:"members"`
}

func NewTeamResponse(team *domain.Team) TeamResponse {
	resp := TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		HackathonID: team.HackathonID,
		CreatorID:   team.CreatorID,
		Project:     team.Project,
		Evaluation:  team.Evaluation,
		Members:     make([]UserResponse, 0, len(team.Members)),
	}
	for _, m := range team.Members {
		resp.Members = append(resp.Members, NewUserResponse(*m))
	}

	return resp
}

type HackathonResponse struct {
	ID                   uint           `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Rules                string         `json:"rules"`
	RegistrationDeadline time.Time      `json:"registration_deadline"`
	StartDate            time.Time      `json:"start_date"`
	EndDate              time.Time      `json:"end_date"`
	Status               string         `json:"status"`
	MaxTeamSize          int            `json:"max_team_size"`
	OrganizerID          uint           `json:"organizer_id"`
	Organizer            *UserResponse  `json:"organizer,omitempty"`
	Judge                *UserResponse  `json:"judge,omitempty"`
	Mentors              []UserResponse `json:"mentors,omitempty"`
	Teams                []TeamResponse `json:"teams,omitempty"`
	WinnerTeamID         *uint          `json:"winner_team_id,omitempty"`
	PrizePoolCents       int64          `json:"prize_pool_cents"`
	PrizeCurrency        string         `json:"prize_currency"`
}

func NewHackathonResponse(hackathon *domain.Hackathon) HackathonResponse {
	resp := HackathonResponse{
		ID:                   hackathon.ID,
		Name:                 hackathon.Name,
		Description:          hackathon.Description,
		Rules:                hackathon.Rules,
		RegistrationDeadline: hackathon.RegistrationDeadline,
		StartDate:            hackathon.StartDate,
		EndDate:              hackathon.EndDate,
		Status:               string(hackathon.Status),
		MaxTeamSize:          hackathon.MaxTeamSize,
		OrganizerID:          hackathon.OrganizerID,
		WinnerTeamID:         hackathon.WinnerTeamID,
		PrizePoolCents:       hackathon.PrizePoolCents,
		PrizeCurrency:        hackathon.PrizeCurrency,
	}

	if hackathon.Organizer != nil {
		organizer := NewUserResponse(*hackathon.Organizer)
		resp.Organizer = &organizer
	}
	if hackathon.Judge != nil {
		judge := NewUserResponse(*hackathon.Judge)
		resp.Judge = &judge
	}
	for _, m := range hackathon.Mentors {
		resp.Mentors = append(resp.Mentors, NewUserResponse(*m))
	}
	for _, t := range hackathon.Teams {
		resp.Teams = append(resp.Teams, NewTeamResponse(t))
	}

	return resp
}

func NewHackathonResponses(hackathons []domain.Hackathon) []HackathonResponse {
	result := make([]HackathonResponse, 0, len(hackathons))
	for i := range hackathons {
		result = append(result, NewHackathonResponse(&hackathons[i]))
	}
	return result
}

func NewTeamResponses(teams []domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, NewTeamResponse(&teams[i]))
	}
	return result
}
