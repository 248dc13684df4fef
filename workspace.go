// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// WorkspaceService wraps the convai workspace settings endpoints.
type WorkspaceService struct {
	client *Client
}

// GetSettings retrieves the workspace's convai settings.
func (s *WorkspaceService) GetSettings(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/convai/settings", nil)
}

// UpdateSettings patches the workspace's convai settings. Only the keys
// present in settings are changed.
func (s *WorkspaceService) UpdateSettings(ctx context.Context, settings Document) (Document, error) {
	if err := requireNotNil("settings", anyOrNil(settings)); err != nil {
		return nil, err
	}
	return s.client.patch(ctx, "/v1/convai/settings", settings)
}

// GetDashboardSettings retrieves the convai dashboard configuration.
func (s *WorkspaceService) GetDashboardSettings(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/convai/settings/dashboard", nil)
}

// UpdateDashboardSettings patches the convai dashboard configuration.
func (s *WorkspaceService) UpdateDashboardSettings(ctx context.Context, settings Document) (Document, error) {
	if err := requireNotNil("settings", anyOrNil(settings)); err != nil {
		return nil, err
	}
	return s.client.patch(ctx, "/v1/convai/settings/dashboard", settings)
}
