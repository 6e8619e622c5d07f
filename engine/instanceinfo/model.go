package instanceinfo

import "time"

// AppInstanceInfo is the record tracked for each deployed application
// instance within a tenant.
type AppInstanceInfo struct {
	TenantID          string    `json:"tenant_id"          db:"tenant_id"`
	AppInstanceID     string    `json:"app_instance_id"    db:"app_instance_id"`
	AppName           string    `json:"app_name"           db:"app_name"`
	AppPackageID      string    `json:"app_package_id"     db:"app_package_id"`
	AppDescriptor     string    `json:"app_descriptor"     db:"app_descriptor"`
	MecHost           string    `json:"mec_host"           db:"mec_host"`
	ApplcmHost        string    `json:"applcm_host"        db:"applcm_host"`
	OperationalStatus string    `json:"operational_status" db:"operational_status"`
	OperationInfo     string    `json:"operation_info"     db:"operation_info"`
	CreateTime        time.Time `json:"create_time"        db:"create_time"`
	UpdateTime        time.Time `json:"update_time"        db:"update_time"`
}
