package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateTeamRequest struct {
	Name        string `json:"name"`
	HackathonID uint   `json:"hackathon_id"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.HackathonID, validation.Required),
	)
}

type SubmitProjectRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	RepositoryURL string `json:"repository_url"`
}

func (req *SubmitProjectRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.RepositoryURL, validation.Required, is.URL),
	)
}

type EvaluateTeamRequest struct {
	Score    *float64 `json:"score"`
	Feedback string   `json:"feedback"`
}

func (req *EvaluateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Score, validation.NotNil),
		validation.Field(&req.Feedback, validation.Length(0, 2000)),
	)
}
