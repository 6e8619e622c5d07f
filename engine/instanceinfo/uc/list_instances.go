package uc

import (
	"context"
	"fmt"

	"github.com/mecsphere/appo/engine/instanceinfo"
)

// ListInstances use case for retrieving all instance info records of a tenant
type ListInstances struct {
	repo     Repository
	tenantID string
}

// NewListInstances creates a new list instances use case
func NewListInstances(repo Repository, tenantID string) *ListInstances {
	return &ListInstances{
		repo:     repo,
		tenantID: tenantID,
	}
}

// Execute lists instance info records in the order the repository returns
// them.
func (uc *ListInstances) Execute(ctx context.Context) ([]*instanceinfo.AppInstanceInfo, error) {
	infos, err := uc.repo.ListInstanceInfos(ctx, uc.tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list instance infos: %w", err)
	}
	return infos, nil
}
