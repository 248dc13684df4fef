// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"log/slog"
	"net/http"
)

// ClientOption configures a [Client] at construction time.
type ClientOption func(*Client)

// WithAPIKey sets the API key explicitly, overriding the
// ELEVENLABS_API_KEY environment variable.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithBaseURL points the client at a different API endpoint, for example a
// test server. A trailing slash is trimmed.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the [*http.Client] used for all requests. Timeouts,
// proxies, and connection pooling are whatever this client provides; the
// library adds no policy of its own.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the [*slog.Logger] for the client. The default logger
// discards everything.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithInterceptors appends request interceptors, applied in order around
// every dispatched request.
func WithInterceptors(interceptors ...Interceptor) ClientOption {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, interceptors...)
	}
}
