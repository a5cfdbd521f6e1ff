package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinel errors callers can match with errors.Is.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnavailable        = errors.New("server unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Error is the normalized failure every API call returns on a non-2xx
// response or a transport fault. UserMessage is computed exactly once,
// by NormalizeMessage for server responses and by normalizeTransport for
// network faults, and is the single string surfaced to the operator.
//
// Body keeps the raw response payload so callers that understand a
// structured contract (field errors, auth failure codes) can still
// switch on structure instead of message text.
type Error struct {
	Status      int
	UserMessage string
	Body        []byte
	err         error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %d: %s", e.Status, e.UserMessage)
	}
	return "api: " + e.UserMessage
}

func (e *Error) Unwrap() error { return e.err }

// FieldErrors decodes the structured field→messages mapping from the
// response body, when one is present. The second return is false when the
// body carries no such mapping.
func (e *Error) FieldErrors() (map[string][]string, bool) {
	var envelope struct {
		Errors map[string]json.RawMessage `json:"errors"`
	}
	if json.Unmarshal(e.Body, &envelope) != nil || len(envelope.Errors) == 0 {
		return nil, false
	}
	out := make(map[string][]string, len(envelope.Errors))
	for field, raw := range envelope.Errors {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			out[field] = append(out[field], s)
			continue
		}
		var list []string
		if json.Unmarshal(raw, &list) == nil {
			out[field] = append(out[field], list...)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// errorBody captures the shapes a failure payload may take. Raw fields are
// kept unparsed so flattening can preserve the document order of the
// field-error mapping.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	ErrMsg  string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// NormalizeMessage derives the single user-facing message for a failed
// response. It is a pure function of (status, statusText, body); the 401
// session side effect lives in the client, not here.
//
// Precedence, first match wins:
//  1. body.detail.message
//  2. body.message
//  3. body.error
//  4. body.errors (field → message or messages), flattened and joined ", "
//  5. body as a list of error objects/strings, joined ", "
//  6. status-code table, with "Error {status}: {statusText}" as the default
func NormalizeMessage(status int, statusText string, body []byte) string {
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if len(eb.Detail) > 0 {
			var detail struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(eb.Detail, &detail) == nil && detail.Message != "" {
				return detail.Message
			}
		}
		if eb.Message != "" {
			return eb.Message
		}
		if eb.ErrMsg != "" {
			return eb.ErrMsg
		}
		if msg, ok := flattenFieldErrors(eb.Errors); ok {
			return msg
		}
	}
	if msg, ok := flattenErrorList(body); ok {
		return msg
	}
	return statusMessage(status, statusText)
}

// flattenFieldErrors joins every message of a field→messages mapping with
// ", ", walking the JSON object in document order rather than Go map order
// so the output is deterministic and mirrors the server's ordering.
func flattenFieldErrors(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return "", false
	}
	var parts []string
	for dec.More() {
		if _, err := dec.Token(); err != nil { // field name
			return "", false
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return "", false
		}
		switch v := value.(type) {
		case string:
			parts = append(parts, v)
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

// flattenErrorList handles a body that is itself a sequence of error
// objects or bare strings: each element contributes its "message" field,
// or itself when it is a string.
func flattenErrorList(body []byte) (string, bool) {
	var list []json.RawMessage
	if json.Unmarshal(body, &list) != nil || len(list) == 0 {
		return "", false
	}
	var parts []string
	for _, raw := range list {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			parts = append(parts, s)
			continue
		}
		var obj struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &obj) == nil && obj.Message != "" {
			parts = append(parts, obj.Message)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func statusMessage(status int, statusText string) string {
	switch status {
	case 400:
		return "Invalid request. Please check your input."
	case 401:
		return "Unauthorized. Please login again."
	case 403:
		return "Access denied. You don't have permission to perform this action."
	case 404:
		return "Resource not found."
	case 409:
		return "Conflict. The resource already exists."
	case 422:
		return "Validation error. Please check your input."
	case 500:
		return "Server error. Please try again later."
	default:
		if statusText == "" {
			statusText = "Unknown error"
		}
		return fmt.Sprintf("Error %d: %s", status, statusText)
	}
}

// normalizeTransport classifies a failure where no response was received
// at all: timeouts, refused connections, DNS faults.
func normalizeTransport(err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "Request timeout. Please try again."
	}
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return "Network error. Please check your connection."
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "An unexpected error occurred. Please try again."
}
