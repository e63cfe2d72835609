package extractor

import (
	"fmt"

	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/rohmanhakim/parks-explorer/pkg/failure"
)

type ExtractionErrorCause string

const (
	ErrCauseElementMissing   = "expected element missing"
	ErrCauseMalformedPayload = "malformed payload"
)

// ExtractionError signals that a payload no longer matches the assumed
// upstream structure. Always fatal for the operation it occurs in.
type ExtractionError struct {
	Message   string
	Retryable bool
	Cause     ExtractionErrorCause
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %s", e.Cause)
}

func (e *ExtractionError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapExtractionErrorToMetadataCause maps extractor-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapExtractionErrorToMetadataCause(err *ExtractionError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseElementMissing, ErrCauseMalformedPayload:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
