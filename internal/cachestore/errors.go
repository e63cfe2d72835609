package cachestore

import (
	"fmt"

	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/rohmanhakim/parks-explorer/pkg/failure"
)

type StoreErrorCause string

const (
	ErrCauseEncodeFailure = "failed to encode mapping"
	ErrCauseWriteFailure  = "failed to write mapping"
	ErrCauseSwapFailure   = "failed to swap mapping file"
)

type StoreError struct {
	Message   string
	Retryable bool
	Cause     StoreErrorCause
	Path      string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("cache store error: %s", e.Cause)
}

func (e *StoreError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapStoreErrorToMetadataCause maps store-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapStoreErrorToMetadataCause(err *StoreError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseEncodeFailure, ErrCauseWriteFailure, ErrCauseSwapFailure:
		return metadata.CauseStorageFailure
	default:
		return metadata.CauseUnknown
	}
}
