// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// Interceptor is a middleware function that can observe or modify an
// outgoing request before handing it to the next invoker in the chain.
type Interceptor func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error)

// Invoker represents the next handler in the interceptor chain.
type Invoker func(ctx context.Context, req *http.Request) (*http.Response, error)

// chainInterceptors chains multiple interceptors together.
func chainInterceptors(interceptors []Interceptor, invoker Invoker) Invoker {
	if len(interceptors) == 0 {
		return invoker
	}

	// Build the chain from right to left
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor := interceptors[i]
		next := invoker
		invoker = func(ctx context.Context, req *http.Request) (*http.Response, error) {
			return interceptor(ctx, req, next)
		}
	}

	return invoker
}

// LoggingInterceptor logs each request and its outcome through logger.
func LoggingInterceptor(logger *slog.Logger) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		logger.DebugContext(ctx, "request", "method", req.Method, "url", req.URL.String())

		resp, err := invoker(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "request failed", "method", req.Method, "url", req.URL.String(), "error", err)
			return nil, err
		}

		logger.DebugContext(ctx, "response", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)
		return resp, nil
	}
}

// HeaderInterceptor adds custom headers to every request.
func HeaderInterceptor(headers map[string]string) Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return invoker(ctx, req)
	}
}

// RequestIDInterceptor stamps each request with a fresh X-Request-Id so
// calls can be correlated with the remote service's logs.
func RequestIDInterceptor() Interceptor {
	return func(ctx context.Context, req *http.Request, invoker Invoker) (*http.Response, error) {
		req.Header.Set("X-Request-Id", uuid.NewString())
		return invoker(ctx, req)
	}
}
