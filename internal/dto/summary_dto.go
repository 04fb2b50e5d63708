package dto

import (
	"time"

	"github.com/google/uuid"
)

// JSON field names follow the original client contract (camelCase).

type CreateSummaryRequest struct {
	Transcript string `form:"transcript"`
	Prompt     string `form:"prompt" validate:"required"`
}

type SummaryResponse struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	OriginalContent string     `json:"originalContent"`
	Prompt          string     `json:"prompt"`
	SummaryText     string     `json:"summaryText"`
	ShareId         string     `json:"shareId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type RenameSummaryRequest struct {
	Id    uuid.UUID
	Title string `json:"title" validate:"required"`
}

type SaveSummaryTextRequest struct {
	Id          uuid.UUID
	SummaryText string `json:"summaryText" validate:"required"`
}

type ShareSummaryRequest struct {
	Id        uuid.UUID
	Recipient string `json:"recipient" validate:"required,email"`
}

// PublishSummaryActivityMessage is the payload of the in-process
// summary activity topic.
type PublishSummaryActivityMessage struct {
	SummaryId uuid.UUID `json:"summary_id"`
	UserId    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
}
