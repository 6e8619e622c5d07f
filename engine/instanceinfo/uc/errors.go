package uc

import "errors"

var (
	// ErrInstanceNotFound is returned when no record exists for the
	// requested (tenant id, app instance id) pair.
	ErrInstanceNotFound = errors.New("application instance info not found")
	// ErrInstanceExists is returned when creating a record whose key is
	// already taken within the tenant.
	ErrInstanceExists = errors.New("application instance info already exists")
)
