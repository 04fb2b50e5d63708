package mapper

import (
	"time"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/model"
)

type SummaryMapper struct{}

func NewSummaryMapper() *SummaryMapper {
	return &SummaryMapper{}
}

func (m *SummaryMapper) ToEntity(s *model.Summary) *entity.Summary {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Summary{
		Id:              s.Id,
		UserId:          s.UserId,
		Title:           s.Title,
		OriginalContent: s.OriginalContent,
		Prompt:          s.Prompt,
		SummaryText:     s.SummaryText,
		ShareId:         s.ShareId,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *SummaryMapper) ToModel(s *entity.Summary) *model.Summary {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Summary{
		Id:              s.Id,
		UserId:          s.UserId,
		Title:           s.Title,
		OriginalContent: s.OriginalContent,
		Prompt:          s.Prompt,
		SummaryText:     s.SummaryText,
		ShareId:         s.ShareId,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *SummaryMapper) ToEntities(summaries []*model.Summary) []*entity.Summary {
	entities := make([]*entity.Summary, len(summaries))
	for i, s := range summaries {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
