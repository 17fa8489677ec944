package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateHackathonRequest struct {
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Rules                string    `json:"rules"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	MaxTeamSize          int       `json:"max_team_size"`
	PrizePoolCents       int64     `json:"prize_pool_cents"`
	PrizeCurrency        string    `json:"prize_currency"`
}

func (req *CreateHackathonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.RegistrationDeadline, validation.Required),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
		validation.Field(&req.MaxTeamSize, validation.Required, validation.Min(1)),
		validation.Field(&req.PrizePoolCents, validation.Min(0)),
		validation.Field(&req.PrizeCurrency, validation.Length(0, 3)),
	)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("REGISTRATION", "IN_PROGRESS", "JUDGING", "CONCLUDED")),
	)
}

type AssignJudgeRequest struct {
	JudgeID uint `json:"judge_id"`
}

func (req *AssignJudgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.JudgeID, validation.Required),
	)
}

type DeclareWinnerRequest struct {
	TeamID uint `json:"team_id"`
}

func (req *DeclareWinnerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TeamID, validation.Required),
	)
}

type AddMentorRequest struct {
	MentorID uint `json:"mentor_id"`
}

func (req *AddMentorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MentorID, validation.Required),
	)
}
