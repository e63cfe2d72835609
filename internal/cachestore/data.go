package cachestore

import "encoding/json"

// Kind tags which of the two payload shapes an Entry carries.
// The extractor's two parsing paths are statically distinguished by it.
type Kind string

const (
	// KindText marks a raw text payload (HTML pages).
	KindText Kind = "text"
	// KindJSON marks a structured JSON document (search responses).
	KindJSON Kind = "json"
)

// Entry is one cached payload. Owned exclusively by the store; callers
// treat it as immutable. Overwritten on re-put, never mutated in place.
type Entry struct {
	Kind Kind            `json:"kind"`
	Text string          `json:"text,omitempty"`
	JSON json.RawMessage `json:"json,omitempty"`
}

func NewTextEntry(text string) Entry {
	return Entry{
		Kind: KindText,
		Text: text,
	}
}

// NewJSONEntry stores raw verbatim, malformed or not. Marshaling a
// json.RawMessage re-validates its contents, so a payload that is not
// well-formed JSON is carried in the string field instead; Bytes
// returns the same bytes either way.
func NewJSONEntry(raw []byte) Entry {
	if !json.Valid(raw) {
		return Entry{
			Kind: KindJSON,
			Text: string(raw),
		}
	}
	doc := make(json.RawMessage, len(raw))
	copy(doc, raw)
	return Entry{
		Kind: KindJSON,
		JSON: doc,
	}
}

// Bytes returns the payload regardless of kind.
func (e Entry) Bytes() []byte {
	if e.Kind == KindJSON && e.JSON != nil {
		return []byte(e.JSON)
	}
	return []byte(e.Text)
}
