package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/meetwise-team/meeting-pipeline/internal/domain/entities"
	"github.com/meetwise-team/meeting-pipeline/internal/domain/repositories"
)

// agentRepository implements the AgentRepository interface
type agentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) repositories.AgentRepository {
	return &agentRepository{db: db}
}

// FindByIDs retrieves agents whose id is in the given set
func (r *agentRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.Agent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var agents []*entities.Agent
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&agents).Error
	return agents, err
}
