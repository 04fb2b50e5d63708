package implementation

import (
	"context"
	"errors"

	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/mapper"
	"ai-summarizer-be/internal/model"
	"ai-summarizer-be/internal/repository/contract"
	"ai-summarizer-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptTemplateMapper
}

func NewPromptTemplateRepository(db *gorm.DB) contract.PromptTemplateRepository {
	return &PromptTemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptTemplateMapper(),
	}
}

func (r *PromptTemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromptTemplateRepositoryImpl) Create(ctx context.Context, prompt *entity.PromptTemplate) error {
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptTemplateRepositoryImpl) CreateMany(ctx context.Context, prompts []*entity.PromptTemplate) error {
	if len(prompts) == 0 {
		return nil
	}
	models := make([]*model.PromptTemplate, len(prompts))
	for i, p := range prompts {
		models[i] = r.mapper.ToModel(p)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *PromptTemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PromptTemplate{}, id).Error
}

func (r *PromptTemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTemplate, error) {
	var m model.PromptTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromptTemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTemplate, error) {
	var models []*model.PromptTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PromptTemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PromptTemplate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
