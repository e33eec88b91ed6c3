package holidays

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// feedShape tags which of the accepted response layouts a feed body used.
type feedShape int

const (
	feedShapeUnknown feedShape = iota
	// {"holidays": ["2025-01-01", ...]}
	feedShapeObject
	// ["2025-01-01", ...]
	feedShapeArray
)

func (s feedShape) String() string {
	switch s {
	case feedShapeObject:
		return "object"
	case feedShapeArray:
		return "array"
	default:
		return "unknown"
	}
}

// feedDocument is a decoded feed body. The shape is resolved once here so the
// rest of the package only deals with entries.
type feedDocument struct {
	shape   feedShape
	entries []string
	// skipped counts array items that were not strings.
	skipped int
}

// decodeFeed resolves the body into a feedDocument. Any layout other than an
// object with a "holidays" array or a bare array is an error.
func decodeFeed(body []byte) (feedDocument, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return feedDocument{}, fmt.Errorf("empty body")
	}

	var items []json.RawMessage
	shape := feedShapeUnknown
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return feedDocument{}, fmt.Errorf("decode array: %w", err)
		}
		shape = feedShapeArray
	case '{':
		var obj struct {
			Holidays json.RawMessage `json:"holidays"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return feedDocument{}, fmt.Errorf("decode object: %w", err)
		}
		field := bytes.TrimSpace(obj.Holidays)
		if len(field) == 0 || field[0] != '[' {
			return feedDocument{}, fmt.Errorf("object has no holidays array")
		}
		if err := json.Unmarshal(field, &items); err != nil {
			return feedDocument{}, fmt.Errorf("decode holidays field: %w", err)
		}
		shape = feedShapeObject
	default:
		return feedDocument{}, fmt.Errorf("unexpected %s layout", feedShapeUnknown)
	}

	doc := feedDocument{shape: shape, entries: make([]string, 0, len(items))}
	for _, raw := range items {
		var entry string
		if err := json.Unmarshal(raw, &entry); err != nil {
			doc.skipped++
			continue
		}
		doc.entries = append(doc.entries, entry)
	}
	return doc, nil
}
