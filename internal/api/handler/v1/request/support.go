package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSupportRequest struct {
	TeamID      uint   `json:"team_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (req *CreateSupportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TeamID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
	)
}

type AssignMentorRequest struct {
	MentorID uint `json:"mentor_id"`
}

func (req *AssignMentorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MentorID, validation.Required),
	)
}

type ScheduleCallRequest struct {
	StartTime time.Time `json:"start_time"`
}

func (req *ScheduleCallRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StartTime, validation.Required),
	)
}
