package adapter

import (
	"context"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// CategoryMappingRepository defines the interface for the persistent
// description-to-category cache.
type CategoryMappingRepository interface {
	// Save stores a resolved mapping. At most one mapping exists per
	// description; saving an already-known description replaces it.
	Save(ctx context.Context, mapping *entity.CategoryMapping) error

	// FindByDescription retrieves a single mapping, or nil when the
	// description has never been resolved.
	FindByDescription(ctx context.Context, description string) (*entity.CategoryMapping, error)

	// FindAllByDescriptions retrieves every known mapping for the given
	// descriptions. Unknown descriptions are simply absent from the result;
	// an empty input yields an empty slice.
	FindAllByDescriptions(ctx context.Context, descriptions []string) ([]*entity.CategoryMapping, error)
}
