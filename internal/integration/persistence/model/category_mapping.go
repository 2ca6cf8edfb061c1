package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// CategoryMappingModel represents the category_mappings table. The unique
// index on Description enforces one authoritative mapping per description.
type CategoryMappingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category    string    `gorm:"type:varchar(64);not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryMappingModel.
func (CategoryMappingModel) TableName() string {
	return "category_mappings"
}

// ToEntity converts a CategoryMappingModel to a domain CategoryMapping entity.
func (m *CategoryMappingModel) ToEntity() *entity.CategoryMapping {
	return &entity.CategoryMapping{
		Description: m.Description,
		Category:    m.Category,
	}
}

// CategoryMappingFromEntity creates a CategoryMappingModel from a domain entity.
func CategoryMappingFromEntity(mapping *entity.CategoryMapping) *CategoryMappingModel {
	return &CategoryMappingModel{
		ID:          uuid.New(),
		Description: mapping.Description,
		Category:    mapping.Category,
	}
}
