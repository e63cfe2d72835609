package metadata

import (
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
)

// InitLogger configures the process-wide apex/log backend.
// PARKS_EXPLORER_LOG selects the level; anything unparseable (or empty)
// means warn, keeping the interactive loop quiet by default.
func InitLogger() {
	log.SetHandler(cli.New(os.Stderr))

	level, err := log.ParseLevel(os.Getenv("PARKS_EXPLORER_LOG"))
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
}

// SilenceLogger discards all log output. Used by tests.
func SilenceLogger() {
	log.SetHandler(discard.New())
}

// LogSink renders events through apex/log.
// It implements EventSink and is the only place in the repo that decides
// how events look; components only emit them.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	entry := log.WithFields(log.Fields{
		"package": packageName,
		"action":  action,
		"cause":   causeLabel(cause),
	})
	for _, attr := range attrs {
		entry = entry.WithField(string(attr.Key), attr.Value)
	}
	entry.Error(details)
}

func (s *LogSink) RecordFetch(
	fetchUrl string,
	httpStatus int,
	duration time.Duration,
	contentType string,
) {
	log.WithFields(log.Fields{
		"url":          fetchUrl,
		"status":       httpStatus,
		"duration_ms":  duration.Milliseconds(),
		"content_type": contentType,
	}).Info("fetching")
}

func (s *LogSink) RecordCacheHit(key string) {
	log.WithField("key", key).Info("using cache")
}

func (s *LogSink) RecordCacheWrite(key string, contentHash string) {
	log.WithFields(log.Fields{
		"key":  key,
		"hash": contentHash,
	}).Debug("cache write")
}

func causeLabel(cause ErrorCause) string {
	switch cause {
	case CauseNetworkFailure:
		return "network failure"
	case CauseContentInvalid:
		return "content invalid"
	case CauseStorageFailure:
		return "storage failure"
	}
	return "unknown"
}
