package entity

import (
	"time"

	"github.com/google/uuid"
)

// Summary pairs a source transcript and instruction with the generated
// output text. SummaryText is the only mutable content field; ShareId is
// assigned at creation and never reassigned.
type Summary struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Title           string
	OriginalContent string
	Prompt          string
	SummaryText     string
	ShareId         string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
