package instancerouter

import (
	"testing"
	"time"

	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/stretchr/testify/assert"
)

func TestDTOConversion(t *testing.T) {
	t.Run("Should preserve every field across a round trip", func(t *testing.T) {
		now := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
		entity := &instanceinfo.AppInstanceInfo{
			TenantID:          "18db0283-3c67-4042-a708-a8e4c9ad60a2",
			AppInstanceID:     "71c5de0a-3b2c-4c15-9d8b-5f6e3e1b2a4c",
			AppName:           "positioning-service",
			AppPackageID:      "pkg-001",
			AppDescriptor:     "location lookup for parked vehicles",
			MecHost:           "192.0.2.10",
			ApplcmHost:        "192.0.2.20",
			OperationalStatus: "Instantiated",
			OperationInfo:     "instantiation completed",
			CreateTime:        now,
			UpdateTime:        now.Add(time.Minute),
		}
		dto := ToDTO(entity)
		assert.Equal(t, entity, dto.ToModel())
	})
}
