package dto

import (
	"ai-summarizer-be/pkg/refine"

	"github.com/google/uuid"
)

// Stateless pass-through refinement (the original /refine contract).

type RefineRequest struct {
	CurrentSummary   string `json:"currentSummary"`
	RefinementPrompt string `json:"refinementPrompt" validate:"required"`
}

type RefineResponse struct {
	RefinedText string `json:"refinedText"`
}

// Server-held refinement session.

type SessionRefineRequest struct {
	Instruction string `json:"instruction" validate:"required"`
}

type RefineSessionResponse struct {
	SummaryId    uuid.UUID         `json:"summaryId"`
	WorkingText  string            `json:"workingText"`
	PreviousText string            `json:"previousText"`
	Exchanges    []refine.Exchange `json:"exchanges"`
	State        string            `json:"state"`
}

func NewRefineSessionResponse(view refine.SessionView) *RefineSessionResponse {
	return &RefineSessionResponse{
		SummaryId:    view.SummaryID,
		WorkingText:  view.WorkingText,
		PreviousText: view.PreviousText,
		Exchanges:    view.Exchanges,
		State:        view.State,
	}
}
