// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

// Package convai provides a Go client for the ElevenLabs Conversational AI
// REST API.
//
// The client is a thin translation layer: each service method maps one
// remote operation to one HTTP request and returns the parsed response
// unchanged. Domain entities (agents, conversations, tools, ...) are owned
// by the remote service and surfaced as opaque [Document] values; the
// library never validates or normalizes their shape.
//
// Basic usage:
//
//	client, err := convai.NewClient(convai.WithAPIKey("..."))
//	if err != nil {
//		log.Fatal(err)
//	}
//	agent, err := client.Agents.Create(ctx, &convai.AgentCreateParams{
//		Name:               "Support Agent",
//		ConversationConfig: convai.Document{},
//	})
//
// Failures split into two disjoint classes: local precondition failures
// ([ArgumentError], raised before any network call when a required argument
// is missing or blank) and remote API failures (the [APIError] taxonomy,
// mapped from the HTTP status of a non-2xx response). The library never
// retries, caches, or reinterprets either class.
package convai

import "io"

// Version is the current version of the convai module.
const Version = "0.1.0"

// DefaultBaseURL is the production endpoint of the ElevenLabs API.
const DefaultBaseURL = "https://api.elevenlabs.io"

// apiKeyHeader is the header every authenticated request carries.
const apiKeyHeader = "xi-api-key"

// defaultUserAgent identifies this library to the remote service.
const defaultUserAgent = "go-convai/" + Version

// Document is a decoded JSON object returned by the API. The remote service
// owns the schema; callers index into it as needed.
type Document = map[string]any

// FilePart describes one file field of a multipart upload.
type FilePart struct {
	// Reader supplies the file content. It is consumed once per request.
	Reader io.Reader

	// Filename is the name reported in the multipart part header.
	Filename string

	// ContentType is optional; when empty the part is sent as
	// application/octet-stream.
	ContentType string
}

// String returns a pointer to v, for optional string parameters.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional integer parameters.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional boolean parameters.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v, for optional float parameters.
func Float(v float64) *float64 { return &v }
