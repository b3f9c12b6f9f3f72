package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The server is inconsistent about list payloads: most endpoints return a
// bare JSON array, some wrap it in an object keyed by the collection name
// ({"products": [...]}). decodeList accepts exactly those two shapes and
// rejects everything else so a malformed payload never turns into a silent
// empty collection.
func decodeList[T any](raw []byte, wrapKey string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty list payload")
	}

	switch trimmed[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return out, nil

	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("decode list wrapper: %w", err)
		}
		inner, ok := wrapper[wrapKey]
		if !ok {
			return nil, fmt.Errorf("list wrapper missing %q key", wrapKey)
		}
		var out []T
		if err := json.Unmarshal(inner, &out); err != nil {
			return nil, fmt.Errorf("decode wrapped list: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unexpected list payload shape")
	}
}
