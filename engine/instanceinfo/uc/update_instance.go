package uc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/pkg/logger"
)

// UpdateInstance use case for updating an instance info record
type UpdateInstance struct {
	repo          Repository
	appInstanceID string
	input         *instanceinfo.AppInstanceInfo
}

// NewUpdateInstance creates a new update instance use case. appInstanceID is
// the path-supplied identifier and always wins over whatever the body
// carries.
func NewUpdateInstance(repo Repository, appInstanceID string, input *instanceinfo.AppInstanceInfo) *UpdateInstance {
	return &UpdateInstance{
		repo:          repo,
		appInstanceID: appInstanceID,
		input:         input,
	}
}

// Execute updates an instance info record
func (uc *UpdateInstance) Execute(ctx context.Context) (*instanceinfo.AppInstanceInfo, error) {
	log := logger.FromContext(ctx)
	info := *uc.input
	info.AppInstanceID = uc.appInstanceID
	info.UpdateTime = time.Now().UTC()
	updated, err := uc.repo.UpdateInstanceInfo(ctx, &info)
	if err != nil {
		if errors.Is(err, ErrInstanceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update instance info %s: %w", uc.appInstanceID, err)
	}
	log.Info("Application instance info updated",
		"tenant_id", updated.TenantID, "app_instance_id", updated.AppInstanceID)
	return updated, nil
}
