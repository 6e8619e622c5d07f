package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/mecsphere/appo/pkg/logger"
)

// DeleteInstance use case for deleting an instance info record
type DeleteInstance struct {
	repo          Repository
	tenantID      string
	appInstanceID string
}

// NewDeleteInstance creates a new delete instance use case
func NewDeleteInstance(repo Repository, tenantID, appInstanceID string) *DeleteInstance {
	return &DeleteInstance{
		repo:          repo,
		tenantID:      tenantID,
		appInstanceID: appInstanceID,
	}
}

// Execute deletes an instance info record
func (uc *DeleteInstance) Execute(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := uc.repo.DeleteInstanceInfo(ctx, uc.tenantID, uc.appInstanceID); err != nil {
		if errors.Is(err, ErrInstanceNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete instance info %s: %w", uc.appInstanceID, err)
	}
	log.Info("Application instance info deleted",
		"tenant_id", uc.tenantID, "app_instance_id", uc.appInstanceID)
	return nil
}
