package instancerouter

import (
	"time"

	"github.com/mecsphere/appo/engine/instanceinfo"
)

// AppInstanceInfoDTO is the transport shape for instance info records. Every
// entity field has a same-named counterpart here; conversion is an explicit
// field-by-field copy so mapping gaps fail at compile time instead of
// silently at runtime.
type AppInstanceInfoDTO struct {
	TenantID          string    `json:"tenant_id"`
	AppInstanceID     string    `json:"app_instance_id"    binding:"required"`
	AppName           string    `json:"app_name"           binding:"required"`
	AppPackageID      string    `json:"app_package_id"`
	AppDescriptor     string    `json:"app_descriptor"`
	MecHost           string    `json:"mec_host"`
	ApplcmHost        string    `json:"applcm_host"`
	OperationalStatus string    `json:"operational_status"`
	OperationInfo     string    `json:"operation_info"`
	CreateTime        time.Time `json:"create_time"`
	UpdateTime        time.Time `json:"update_time"`
}

// ToDTO converts an entity to its transport shape.
func ToDTO(info *instanceinfo.AppInstanceInfo) AppInstanceInfoDTO {
	return AppInstanceInfoDTO{
		TenantID:          info.TenantID,
		AppInstanceID:     info.AppInstanceID,
		AppName:           info.AppName,
		AppPackageID:      info.AppPackageID,
		AppDescriptor:     info.AppDescriptor,
		MecHost:           info.MecHost,
		ApplcmHost:        info.ApplcmHost,
		OperationalStatus: info.OperationalStatus,
		OperationInfo:     info.OperationInfo,
		CreateTime:        info.CreateTime,
		UpdateTime:        info.UpdateTime,
	}
}

// ToModel converts a transport shape back to the entity.
func (d *AppInstanceInfoDTO) ToModel() *instanceinfo.AppInstanceInfo {
	return &instanceinfo.AppInstanceInfo{
		TenantID:          d.TenantID,
		AppInstanceID:     d.AppInstanceID,
		AppName:           d.AppName,
		AppPackageID:      d.AppPackageID,
		AppDescriptor:     d.AppDescriptor,
		MecHost:           d.MecHost,
		ApplcmHost:        d.ApplcmHost,
		OperationalStatus: d.OperationalStatus,
		OperationInfo:     d.OperationInfo,
		CreateTime:        d.CreateTime,
		UpdateTime:        d.UpdateTime,
	}
}
