// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// UserService wraps /v1/user.
type UserService struct {
	client *Client
}

// Get returns the authenticated user's profile.
func (s *UserService) Get(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/user", nil)
}

// GetSubscription returns the user's subscription and quota information.
func (s *UserService) GetSubscription(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/user/subscription", nil)
}
