package dto

import (
	"github.com/oxygenfit/salesconsole/internal/validator"
)

type QARequest struct {
	Question string `json:"question" validate:"required"`
}

func (r *QARequest) Validate() error {
	return validator.ValidateRequest(r)
}

type QAResponse struct {
	Question string `json:"question"`
	Intent   string `json:"intent"`
	Answer   string `json:"answer"`
}
