package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SendNotificationRequest struct {
	RecipientID uint   `json:"recipient_id"`
	Kind        string `json:"kind"`
	Message     string `json:"message"`
}

func (req *SendNotificationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RecipientID, validation.Required),
		validation.Field(&req.Kind, validation.Required, validation.In("EMAIL", "IN_APP")),
		validation.Field(&req.Message, validation.Required, validation.Length(1, 2000)),
	)
}
