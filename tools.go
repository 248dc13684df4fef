// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// ToolsService wraps the agent tool endpoints under /v1/convai/tools.
type ToolsService struct {
	client *Client
}

// List returns the workspace's tools.
func (s *ToolsService) List(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/convai/tools", nil)
}

// Get retrieves a tool by ID.
func (s *ToolsService) Get(ctx context.Context, toolID string) (Document, error) {
	if err := requireString("tool_id", toolID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/tools/"+pathEscape(toolID), nil)
}

// Create registers a new tool from its configuration document.
func (s *ToolsService) Create(ctx context.Context, toolConfig Document) (Document, error) {
	if err := requireNotNil("tool_config", anyOrNil(toolConfig)); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/convai/tools", Document{"tool_config": toolConfig})
}

// Update replaces a tool's configuration.
func (s *ToolsService) Update(ctx context.Context, toolID string, toolConfig Document) (Document, error) {
	if err := requireString("tool_id", toolID); err != nil {
		return nil, err
	}
	if err := requireNotNil("tool_config", anyOrNil(toolConfig)); err != nil {
		return nil, err
	}
	return s.client.patch(ctx, "/v1/convai/tools/"+pathEscape(toolID), Document{"tool_config": toolConfig})
}

// Delete removes a tool.
func (s *ToolsService) Delete(ctx context.Context, toolID string) (Document, error) {
	if err := requireString("tool_id", toolID); err != nil {
		return nil, err
	}
	return s.client.delete(ctx, "/v1/convai/tools/"+pathEscape(toolID), nil)
}

// GetDependentAgents returns the agents configured to use a tool.
func (s *ToolsService) GetDependentAgents(ctx context.Context, toolID string, params *DependentAgentsParams) (Document, error) {
	if err := requireString("tool_id", toolID); err != nil {
		return nil, err
	}

	q := newQuery()
	if params != nil {
		q.setInt("page_size", params.PageSize).setString("cursor", params.Cursor)
	}
	return s.client.get(ctx, "/v1/convai/tools/"+pathEscape(toolID)+"/dependent-agents", q)
}

// anyOrNil normalizes a nil map into an untyped nil so requireNotNil can
// reject it.
func anyOrNil(doc Document) any {
	if doc == nil {
		return nil
	}
	return doc
}
