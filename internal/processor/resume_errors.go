package processor

import (
	"errors"
	"fmt"
)

// Base error kinds.
var (
	// ErrInvalidConfiguration marks a vocabulary or alias table that cannot
	// start the pipeline. It is raised at initialization, before any
	// document is processed.
	ErrInvalidConfiguration = errors.New("invalid parser configuration")
	// ErrExtractTextFailed marks a document adapter failure.
	ErrExtractTextFailed = errors.New("failed to extract document text")
)

// PipelineError carries the operation and detail alongside a base error.
type PipelineError struct {
	Op      string
	BaseErr error
	Detail  string
}

func (e *PipelineError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (op:%s): %s", e.BaseErr, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s (op:%s)", e.BaseErr, e.Op)
}

func (e *PipelineError) Unwrap() error {
	return e.BaseErr
}

// Is supports errors.Is comparison against the base error kinds.
func (e *PipelineError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewConfigurationError wraps a configuration validation failure.
func NewConfigurationError(err error) error {
	return &PipelineError{
		Op:      "configure",
		BaseErr: ErrInvalidConfiguration,
		Detail:  err.Error(),
	}
}

// NewExtractError wraps a document adapter failure.
func NewExtractError(file string, err error) error {
	return &PipelineError{
		Op:      "extract",
		BaseErr: ErrExtractTextFailed,
		Detail:  fmt.Sprintf("%s: %v", file, err),
	}
}
