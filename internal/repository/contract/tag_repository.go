package contract

import (
	"context"

	"second-brain-be/internal/entity"
	"second-brain-be/internal/repository/specification"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
}
