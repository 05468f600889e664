package repositories

import (
	"context"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
)

// UserRepository defines read access to the human participant pool
type UserRepository interface {
	// FindByIDs retrieves users whose id is in the given set.
	// Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*entities.User, error)
}

// AgentRepository defines read access to the automated agent pool
type AgentRepository interface {
	// FindByIDs retrieves agents whose id is in the given set.
	// Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*entities.Agent, error)
}
