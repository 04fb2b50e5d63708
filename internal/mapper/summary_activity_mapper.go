package mapper

import (
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/model"
)

type SummaryActivityMapper struct{}

func NewSummaryActivityMapper() *SummaryActivityMapper {
	return &SummaryActivityMapper{}
}

func (m *SummaryActivityMapper) ToEntity(a *model.SummaryActivity) *entity.SummaryActivity {
	if a == nil {
		return nil
	}
	return &entity.SummaryActivity{
		Id:        a.Id,
		SummaryId: a.SummaryId,
		UserId:    a.UserId,
		Action:    a.Action,
		CreatedAt: a.CreatedAt,
	}
}

func (m *SummaryActivityMapper) ToModel(a *entity.SummaryActivity) *model.SummaryActivity {
	if a == nil {
		return nil
	}
	return &model.SummaryActivity{
		Id:        a.Id,
		SummaryId: a.SummaryId,
		UserId:    a.UserId,
		Action:    a.Action,
		CreatedAt: a.CreatedAt,
	}
}

func (m *SummaryActivityMapper) ToEntities(activities []*model.SummaryActivity) []*entity.SummaryActivity {
	entities := make([]*entity.SummaryActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
