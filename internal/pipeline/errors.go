package pipeline

import (
	"fmt"

	"github.com/rohmanhakim/parks-explorer/pkg/failure"
)

type PipelineErrorCause string

const (
	ErrCauseStateUnknown  = "state not listed in directory"
	ErrCauseAPIKeyMissing = "search API key not configured"
)

// PipelineError covers failures the pipeline raises itself, before any
// fetch or parse is attempted. Downstream fetch and extraction errors
// pass through unchanged.
type PipelineError struct {
	Message string
	Cause   PipelineErrorCause
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline error: %s", e.Message)
}

func (e *PipelineError) Severity() failure.Severity {
	return failure.SeverityFatal
}
