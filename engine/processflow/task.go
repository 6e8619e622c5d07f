package processflow

import (
	"context"
	"errors"
)

// Variable keys written into the execution of a process instance. Task
// implementations downstream in the process graph read outcomes back under
// these names.
const (
	ResponseKey      = "Response"
	ResponseCodeKey  = "ResponseCode"
	ErrorResponseKey = "ErrResponse"
	FlowExceptionKey = "ProcessflowException"
)

// ErrEmptyResponseCode signals that a writer was invoked without a response
// code. The execution is left untouched in that case.
var ErrEmptyResponseCode = errors.New("response code must not be empty")

// Execution is the per-process-instance variable bag owned by the
// orchestration engine. Implementations are not required to be exclusive:
// concurrent tasks writing the same key race with last-write-wins semantics,
// as provided by the engine.
type Execution interface {
	SetVariable(ctx context.Context, key, value string) error
}

// SetResponseAttributes records a successful task outcome on the execution.
func SetResponseAttributes(ctx context.Context, exec Execution, response, responseCode string) error {
	if responseCode == "" {
		return ErrEmptyResponseCode
	}
	if err := exec.SetVariable(ctx, ResponseKey, response); err != nil {
		return err
	}
	return exec.SetVariable(ctx, ResponseCodeKey, responseCode)
}

// SetErrorResponseAttributes records a failed task outcome on the execution.
func SetErrorResponseAttributes(ctx context.Context, exec Execution, response, responseCode string) error {
	if responseCode == "" {
		return ErrEmptyResponseCode
	}
	if err := exec.SetVariable(ctx, ErrorResponseKey, response); err != nil {
		return err
	}
	return exec.SetVariable(ctx, ResponseCodeKey, responseCode)
}

// SetExceptionResponseAttributes records an unexpected task failure on the
// execution.
func SetExceptionResponseAttributes(ctx context.Context, exec Execution, response, responseCode string) error {
	if responseCode == "" {
		return ErrEmptyResponseCode
	}
	if err := exec.SetVariable(ctx, ResponseCodeKey, responseCode); err != nil {
		return err
	}
	return exec.SetVariable(ctx, FlowExceptionKey, response)
}

// Protocol returns the URL scheme prefix for the given ssl flag. Only the
// literal string "true" selects https; process definitions pass the flag as
// a string variable, so any other value, including other casings, falls back
// to the non-secure scheme.
func Protocol(isSslEnabled string) string {
	if isSslEnabled == "true" {
		return "https://"
	}
	return "http://"
}
