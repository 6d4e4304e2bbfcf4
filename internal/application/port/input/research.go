package input

import (
	"context"

	"venture-agent/internal/domain/entity"
)

// ResearchRunner drives the full research workflow for one query.
type ResearchRunner interface {
	Run(ctx context.Context, query string) (*entity.ResearchState, error)
}
