package testutil

import (
	"context"
	"sync"

	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
)

// InMemoryRepo is a map-backed uc.Repository for tests. It records how many
// calls it received so handler tests can assert that validation failures
// never reach the repository.
type InMemoryRepo struct {
	mu      sync.Mutex
	records map[string]*instanceinfo.AppInstanceInfo
	calls   int
	err     error
}

// NewInMemoryRepo creates an empty in-memory repository.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{records: make(map[string]*instanceinfo.AppInstanceInfo)}
}

// SetError makes every subsequent operation fail with err.
func (r *InMemoryRepo) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Calls returns the number of repository operations invoked.
func (r *InMemoryRepo) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func key(tenantID, appInstanceID string) string {
	return tenantID + "/" + appInstanceID
}

func (r *InMemoryRepo) GetInstanceInfo(_ context.Context, tenantID, appInstanceID string) (*instanceinfo.AppInstanceInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	info, ok := r.records[key(tenantID, appInstanceID)]
	if !ok {
		return nil, uc.ErrInstanceNotFound
	}
	cp := *info
	return &cp, nil
}

func (r *InMemoryRepo) ListInstanceInfos(_ context.Context, tenantID string) ([]*instanceinfo.AppInstanceInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []*instanceinfo.AppInstanceInfo
	for _, info := range r.records {
		if info.TenantID == tenantID {
			cp := *info
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepo) CreateInstanceInfo(_ context.Context, info *instanceinfo.AppInstanceInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	k := key(info.TenantID, info.AppInstanceID)
	if _, exists := r.records[k]; exists {
		return uc.ErrInstanceExists
	}
	cp := *info
	r.records[k] = &cp
	return nil
}

func (r *InMemoryRepo) UpdateInstanceInfo(_ context.Context, info *instanceinfo.AppInstanceInfo) (*instanceinfo.AppInstanceInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	k := key(info.TenantID, info.AppInstanceID)
	existing, ok := r.records[k]
	if !ok {
		return nil, uc.ErrInstanceNotFound
	}
	cp := *info
	cp.CreateTime = existing.CreateTime
	r.records[k] = &cp
	out := cp
	return &out, nil
}

func (r *InMemoryRepo) DeleteInstanceInfo(_ context.Context, tenantID, appInstanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	k := key(tenantID, appInstanceID)
	if _, ok := r.records[k]; !ok {
		return uc.ErrInstanceNotFound
	}
	delete(r.records, k)
	return nil
}
