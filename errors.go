// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
)

// ArgumentError reports a local precondition failure: a required argument
// was nil or blank, or the client was constructed without an API key. It is
// always raised before any network call is attempted.
type ArgumentError struct {
	// Name is the offending parameter, in the wire naming of the remote
	// API (for example "agent_id").
	Name string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("convai: argument %q %s", e.Name, e.Reason)
}

// APIError is the base remote failure type, carrying the HTTP status and
// the best-available message extracted from the response body. Statuses
// without a dedicated refinement surface as *APIError directly.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Message is extracted from the response body when available, else a
	// generic description.
	Message string

	// Body is the raw response body, kept for callers that need more than
	// the extracted message.
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("convai: API error %d: %s", e.StatusCode, e.Message)
}

// BadRequestError reports an HTTP 400 response.
type BadRequestError struct{ APIError }

// AuthenticationError reports an HTTP 401 response.
type AuthenticationError struct{ APIError }

// ForbiddenError reports an HTTP 403 response.
type ForbiddenError struct{ APIError }

// NotFoundError reports an HTTP 404 response.
type NotFoundError struct{ APIError }

// UnprocessableEntityError reports an HTTP 422 response.
type UnprocessableEntityError struct{ APIError }

// RateLimitError reports an HTTP 429 response.
type RateLimitError struct{ APIError }

// Unwrap exposes the embedded APIError so errors.As can catch broadly.
func (e *BadRequestError) Unwrap() error { return &e.APIError }

func (e *AuthenticationError) Unwrap() error { return &e.APIError }

func (e *ForbiddenError) Unwrap() error { return &e.APIError }

func (e *NotFoundError) Unwrap() error { return &e.APIError }

func (e *UnprocessableEntityError) Unwrap() error { return &e.APIError }

func (e *RateLimitError) Unwrap() error { return &e.APIError }

// newAPIError builds the typed error for a non-2xx response. The mapping is
// the single canonical table used everywhere in the library.
func newAPIError(statusCode int, body []byte) error {
	base := APIError{
		StatusCode: statusCode,
		Message:    extractMessage(statusCode, body),
		Body:       body,
	}

	switch statusCode {
	case http.StatusBadRequest:
		return &BadRequestError{base}
	case http.StatusUnauthorized:
		return &AuthenticationError{base}
	case http.StatusForbidden:
		return &ForbiddenError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	case http.StatusUnprocessableEntity:
		return &UnprocessableEntityError{base}
	case http.StatusTooManyRequests:
		return &RateLimitError{base}
	default:
		return &base
	}
}

// extractMessage pulls a human-readable message out of an error response
// body. The API answers with {"detail": "..."}, {"detail": {"message":
// "..."}} or, for validation failures, {"detail": [{"msg": "..."}, ...]}.
func extractMessage(statusCode int, body []byte) string {
	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if msg := detailMessage(envelope.Detail); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("request failed with status %d", statusCode)
}

func detailMessage(detail any) string {
	switch d := detail.(type) {
	case string:
		return strings.TrimSpace(d)
	case map[string]any:
		if msg, ok := d["message"].(string); ok {
			return strings.TrimSpace(msg)
		}
	case []any:
		var msgs []string
		for _, item := range d {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if msg, ok := entry["msg"].(string); ok && msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// requireString validates a required string argument, trimming surrounding
// whitespace before the blank check.
func requireString(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ArgumentError{Name: name, Reason: "must not be blank"}
	}
	return nil
}

// requireNotNil validates a required non-string argument.
func requireNotNil(name string, value any) error {
	if value == nil {
		return &ArgumentError{Name: name, Reason: "must not be nil"}
	}
	return nil
}

// requireReader validates a required file part.
func requireReader(name string, part *FilePart) error {
	if part == nil || part.Reader == nil {
		return &ArgumentError{Name: name, Reason: "must supply file content"}
	}
	return nil
}
