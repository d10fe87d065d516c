package entities

import (
	"strings"

	apperrors "github.com/zatekoja/hospitalservices/pkg/errors"
)

// Comment is free text left by a user on a hospital or a service
type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Attachment
	Label string `json:"label,omitempty"`
}

// Validate checks the comment before it is written
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return apperrors.NewValidationError(apperrors.CodeInvalidInput, "comment text can not be empty")
	}
	return c.Attachment.Validate()
}
