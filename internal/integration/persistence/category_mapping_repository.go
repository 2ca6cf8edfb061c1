package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
	"github.com/transaction-categorizer/backend/internal/integration/persistence/model"
)

// categoryMappingRepository implements the adapter.CategoryMappingRepository interface.
type categoryMappingRepository struct {
	db *gorm.DB
}

// NewCategoryMappingRepository creates a new category mapping repository instance.
func NewCategoryMappingRepository(db *gorm.DB) adapter.CategoryMappingRepository {
	return &categoryMappingRepository{
		db: db,
	}
}

// Save stores a mapping, replacing any existing mapping for the same
// description. Concurrent classifications of the same description may
// both reach this point; the on-conflict clause keeps the table at one
// row per description either way.
func (r *categoryMappingRepository) Save(ctx context.Context, mapping *entity.CategoryMapping) error {
	mappingModel := model.CategoryMappingFromEntity(mapping)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "description"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "updated_at"}),
	}).Create(mappingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByDescription retrieves a single mapping, or nil when absent.
func (r *categoryMappingRepository) FindByDescription(ctx context.Context, description string) (*entity.CategoryMapping, error) {
	var mappingModel model.CategoryMappingModel
	result := r.db.WithContext(ctx).Where("description = ?", description).First(&mappingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return mappingModel.ToEntity(), nil
}

// FindAllByDescriptions retrieves every known mapping for the given descriptions.
func (r *categoryMappingRepository) FindAllByDescriptions(ctx context.Context, descriptions []string) ([]*entity.CategoryMapping, error) {
	if len(descriptions) == 0 {
		return []*entity.CategoryMapping{}, nil
	}

	var mappingModels []model.CategoryMappingModel
	result := r.db.WithContext(ctx).Where("description IN ?", descriptions).Find(&mappingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	mappings := make([]*entity.CategoryMapping, 0, len(mappingModels))
	for i := range mappingModels {
		mappings = append(mappings, mappingModels[i].ToEntity())
	}
	return mappings, nil
}
