package uc

import (
	"context"

	"github.com/mecsphere/appo/engine/instanceinfo"
)

// Repository defines all data access operations for application instance
// info records, keyed by (tenant id, app instance id).
type Repository interface {
	GetInstanceInfo(ctx context.Context, tenantID, appInstanceID string) (*instanceinfo.AppInstanceInfo, error)
	ListInstanceInfos(ctx context.Context, tenantID string) ([]*instanceinfo.AppInstanceInfo, error)
	CreateInstanceInfo(ctx context.Context, info *instanceinfo.AppInstanceInfo) error
	UpdateInstanceInfo(ctx context.Context, info *instanceinfo.AppInstanceInfo) (*instanceinfo.AppInstanceInfo, error)
	DeleteInstanceInfo(ctx context.Context, tenantID, appInstanceID string) error
}
