package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromptTemplate is a reusable summarization instruction. UserId is nil
// for the built-in defaults and set for a user's custom prompts.
type PromptTemplate struct {
	Id         uuid.UUID
	Title      string
	PromptText string
	UserId     *uuid.UUID
	CreatedAt  time.Time
}
