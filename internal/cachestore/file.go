package cachestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rohmanhakim/parks-explorer/internal/metadata"
	"github.com/rohmanhakim/parks-explorer/pkg/failure"
)

/*
Responsibilities
- Hold the full key→entry mapping in memory for the process lifetime
- Persist the complete mapping on every write
- Recover silently from an unreadable or missing cache file

Persistence Format
- A single JSON document: {"entries": {key: entry}}
- The file is fully rewritten on every mutation, never appended to;
  appending would concatenate top-level documents and corrupt the format
- Writes go to a sibling temp file which is then renamed over the
  target, so the file never holds a half-written document

Load failures are recovered locally: the store starts empty and emits a
warn-level event, but startup never fails.
*/

// storeDocument is the on-disk shape of the persisted mapping.
type storeDocument struct {
	Entries map[string]Entry `json:"entries"`
}

type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
	sink    metadata.EventSink
}

// NewFileStore opens the store backed by the file at path, loading the
// persisted mapping into memory. Any read or parse failure yields an
// empty mapping; it is recorded through the sink but never surfaced.
func NewFileStore(path string, sink metadata.EventSink) *FileStore {
	s := &FileStore{
		path:    path,
		entries: make(map[string]Entry),
		sink:    sink,
	}
	s.load()
	return s
}

func (s *FileStore) load() {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.recordLoadFailure(err)
		}
		return
	}

	var doc storeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		s.recordLoadFailure(err)
		return
	}
	if doc.Entries != nil {
		s.entries = doc.Entries
	}
}

func (s *FileStore) recordLoadFailure(err error) {
	s.sink.RecordError(
		time.Now(),
		"cachestore",
		"FileStore.load",
		metadata.CauseStorageFailure,
		fmt.Sprintf("starting with an empty cache: %v", err),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrPath, s.path),
		},
	)
}

// Get retrieves an entry by key.
func (s *FileStore) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	return entry, exists
}

// Put inserts or overwrites the entry for key, then persists the entire
// mapping. The in-memory mapping is updated even when persistence fails.
func (s *FileStore) Put(key string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry

	if err := s.persist(); err != nil {
		var storeErr *StoreError
		if se, ok := err.(*StoreError); ok {
			storeErr = se
		} else {
			storeErr = &StoreError{Message: err.Error(), Cause: ErrCauseWriteFailure, Path: s.path}
		}
		s.sink.RecordError(
			time.Now(),
			"cachestore",
			"FileStore.Put",
			mapStoreErrorToMetadataCause(storeErr),
			storeErr.Message,
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrPath, s.path),
				metadata.NewAttr(metadata.AttrKey, key),
			},
		)
		return storeErr
	}
	return nil
}

// persist writes the complete mapping to a sibling temp file and renames
// it over the target. Caller must hold s.mu.
func (s *FileStore) persist() failure.ClassifiedError {
	content, err := json.Marshal(storeDocument{Entries: s.entries})
	if err != nil {
		return &StoreError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseEncodeFailure,
			Path:      s.path,
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &StoreError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseWriteFailure,
			Path:      s.path,
		}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &StoreError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseWriteFailure,
			Path:      tmpPath,
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &StoreError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseWriteFailure,
			Path:      tmpPath,
		}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &StoreError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCauseSwapFailure,
			Path:      s.path,
		}
	}
	return nil
}

// Len returns the number of cached entries.
// Primarily useful for tests and diagnostics.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
