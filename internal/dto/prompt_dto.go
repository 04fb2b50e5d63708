package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePromptTemplateRequest struct {
	Title      string `json:"title" validate:"required"`
	PromptText string `json:"promptText" validate:"required"`
}

type PromptTemplateResponse struct {
	Id         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	PromptText string    `json:"promptText"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}
