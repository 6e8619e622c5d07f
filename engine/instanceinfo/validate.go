package instanceinfo

import (
	"fmt"
	"regexp"

	"github.com/mecsphere/appo/pkg/config"
)

// PatternSet holds the compiled identifier patterns enforced on path
// parameters. The grammars come from configuration; see
// config.ValidationConfig.
type PatternSet struct {
	tenantID      *regexp.Regexp
	appInstanceID *regexp.Regexp
}

// NewPatternSet compiles the configured identifier patterns once at startup.
func NewPatternSet(cfg *config.ValidationConfig) (*PatternSet, error) {
	tenantID, err := regexp.Compile(cfg.TenantIDPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling tenant id pattern: %w", err)
	}
	appInstanceID, err := regexp.Compile(cfg.AppInstanceIDPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling app instance id pattern: %w", err)
	}
	return &PatternSet{tenantID: tenantID, appInstanceID: appInstanceID}, nil
}

// ValidTenantID reports whether the value matches the tenant id pattern.
func (p *PatternSet) ValidTenantID(v string) bool {
	return p.tenantID.MatchString(v)
}

// ValidAppInstanceID reports whether the value matches the application
// instance id pattern.
func (p *PatternSet) ValidAppInstanceID(v string) bool {
	return p.appInstanceID.MatchString(v)
}
