package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/mecsphere/appo/engine/instanceinfo"
)

// GetInstance use case for retrieving one instance info record
type GetInstance struct {
	repo          Repository
	tenantID      string
	appInstanceID string
}

// NewGetInstance creates a new get instance use case
func NewGetInstance(repo Repository, tenantID, appInstanceID string) *GetInstance {
	return &GetInstance{
		repo:          repo,
		tenantID:      tenantID,
		appInstanceID: appInstanceID,
	}
}

// Execute retrieves an instance info record by its key
func (uc *GetInstance) Execute(ctx context.Context) (*instanceinfo.AppInstanceInfo, error) {
	info, err := uc.repo.GetInstanceInfo(ctx, uc.tenantID, uc.appInstanceID)
	if err != nil {
		if errors.Is(err, ErrInstanceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get instance info %s: %w", uc.appInstanceID, err)
	}
	return info, nil
}
