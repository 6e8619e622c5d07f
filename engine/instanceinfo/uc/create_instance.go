package uc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/pkg/logger"
)

// CreateInstance use case for creating an instance info record
type CreateInstance struct {
	repo  Repository
	input *instanceinfo.AppInstanceInfo
}

// NewCreateInstance creates a new create instance use case
func NewCreateInstance(repo Repository, input *instanceinfo.AppInstanceInfo) *CreateInstance {
	return &CreateInstance{
		repo:  repo,
		input: input,
	}
}

// Execute creates a new instance info record. The tenant id on the record is
// the one taken from the request path, set by the caller.
func (uc *CreateInstance) Execute(ctx context.Context) (*instanceinfo.AppInstanceInfo, error) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC()
	info := *uc.input
	info.CreateTime = now
	info.UpdateTime = now
	if err := uc.repo.CreateInstanceInfo(ctx, &info); err != nil {
		if errors.Is(err, ErrInstanceExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create instance info %s: %w", info.AppInstanceID, err)
	}
	log.Info("Application instance info created",
		"tenant_id", info.TenantID, "app_instance_id", info.AppInstanceID)
	return &info, nil
}
