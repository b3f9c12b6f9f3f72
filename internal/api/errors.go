package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/marvakt/ChocoLuxe/internal/shared/apperr"
)

// Error is a non-2xx response from the remote API, classified into the
// shared taxonomy. Fields carries per-field validation messages when the
// server sends a DRF-style field map.
type Error struct {
	Status int
	Kind   apperr.Kind
	Msg    string
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Kind, e.Msg)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Kind)
}

func IsConflict(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == apperr.Conflict
}

func IsUnauthorized(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == apperr.Unauthorized
}

// FirstFieldError returns the first field-level validation message, if any.
// Map iteration order is not stable, so prefer well-known fields first.
func FirstFieldError(err error) (field, msg string, ok bool) {
	var ae *Error
	if !errors.As(err, &ae) || len(ae.Fields) == 0 {
		return "", "", false
	}
	for _, f := range []string{"username", "email", "password"} {
		if m, found := ae.Fields[f]; found {
			return f, m, true
		}
	}
	for f, m := range ae.Fields {
		return f, m, true
	}
	return "", "", false
}

func kindForStatus(status int) apperr.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperr.Invalid
	case http.StatusUnauthorized:
		return apperr.Unauthorized
	case http.StatusForbidden:
		return apperr.Forbidden
	case http.StatusNotFound:
		return apperr.NotFound
	case http.StatusConflict:
		return apperr.Conflict
	default:
		return apperr.Internal
	}
}

// parseError builds an *Error from a non-2xx body. The server answers in a
// few shapes: {"error": "..."}, {"detail": "..."}, or a DRF field map
// {"email": ["msg", ...]}. All are handled best effort.
func parseError(status int, body []byte) *Error {
	e := &Error{Status: status, Kind: kindForStatus(status)}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return e
	}

	for _, key := range []string{"error", "detail", "message"} {
		if v, ok := raw[key]; ok {
			var s string
			if json.Unmarshal(v, &s) == nil && s != "" {
				e.Msg = s
			}
			delete(raw, key)
		}
	}

	for field, v := range raw {
		var msgs []string
		if json.Unmarshal(v, &msgs) == nil && len(msgs) > 0 {
			if e.Fields == nil {
				e.Fields = map[string]string{}
			}
			e.Fields[field] = msgs[0]
			continue
		}
		var s string
		if json.Unmarshal(v, &s) == nil && s != "" {
			if e.Fields == nil {
				e.Fields = map[string]string{}
			}
			e.Fields[field] = s
		}
	}
	return e
}
