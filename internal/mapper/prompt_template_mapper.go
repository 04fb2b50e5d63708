package mapper

import (
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/model"
)

type PromptTemplateMapper struct{}

func NewPromptTemplateMapper() *PromptTemplateMapper {
	return &PromptTemplateMapper{}
}

func (m *PromptTemplateMapper) ToEntity(p *model.PromptTemplate) *entity.PromptTemplate {
	if p == nil {
		return nil
	}
	return &entity.PromptTemplate{
		Id:         p.Id,
		Title:      p.Title,
		PromptText: p.PromptText,
		UserId:     p.UserId,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *PromptTemplateMapper) ToModel(p *entity.PromptTemplate) *model.PromptTemplate {
	if p == nil {
		return nil
	}
	return &model.PromptTemplate{
		Id:         p.Id,
		Title:      p.Title,
		PromptText: p.PromptText,
		UserId:     p.UserId,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *PromptTemplateMapper) ToEntities(prompts []*model.PromptTemplate) []*entity.PromptTemplate {
	entities := make([]*entity.PromptTemplate, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
