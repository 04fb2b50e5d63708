package implementation

import (
	"context"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/mapper"
	"ai-summarizer-be/internal/model"
	"ai-summarizer-be/internal/repository/contract"
	"ai-summarizer-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SummaryActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryActivityMapper
}

func NewSummaryActivityRepository(db *gorm.DB) contract.SummaryActivityRepository {
	return &SummaryActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryActivityMapper(),
	}
}

func (r *SummaryActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SummaryActivityRepositoryImpl) Create(ctx context.Context, activity *entity.SummaryActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *SummaryActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SummaryActivity, error) {
	var models []*model.SummaryActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
