// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// WorkspaceResourcesService wraps resource sharing endpoints under
// /v1/workspace/resources.
type WorkspaceResourcesService struct {
	client *Client
}

// ResourceShareParams are the arguments for
// [WorkspaceResourcesService.Share] and Unshare. Exactly one principal
// (role plus user email, group, or workspace API key) is expected by the
// remote API; the library passes the provided fields through.
type ResourceShareParams struct {
	// Role to grant, for example "viewer" or "editor". Required for Share.
	Role string

	UserEmail         *string
	GroupID           *string
	WorkspaceAPIKeyID *string
}

// Get retrieves a shared resource's metadata.
func (s *WorkspaceResourcesService) Get(ctx context.Context, resourceID, resourceType string) (Document, error) {
	if err := requireString("resource_id", resourceID); err != nil {
		return nil, err
	}
	if err := requireString("resource_type", resourceType); err != nil {
		return nil, err
	}
	q := newQuery().set("resource_type", resourceType)
	return s.client.get(ctx, "/v1/workspace/resources/"+pathEscape(resourceID), q)
}

// Share grants a principal access to a resource.
func (s *WorkspaceResourcesService) Share(ctx context.Context, resourceID, resourceType string, params *ResourceShareParams) (Document, error) {
	if err := requireString("resource_id", resourceID); err != nil {
		return nil, err
	}
	if err := requireString("resource_type", resourceType); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, &ArgumentError{Name: "role", Reason: "must not be blank"}
	}
	if err := requireString("role", params.Role); err != nil {
		return nil, err
	}

	body := Document{"resource_type": resourceType, "role": params.Role}
	if params.UserEmail != nil {
		body["user_email"] = *params.UserEmail
	}
	if params.GroupID != nil {
		body["group_id"] = *params.GroupID
	}
	if params.WorkspaceAPIKeyID != nil {
		body["workspace_api_key_id"] = *params.WorkspaceAPIKeyID
	}
	return s.client.post(ctx, "/v1/workspace/resources/"+pathEscape(resourceID)+"/share", body)
}

// Unshare revokes a principal's access to a resource.
func (s *WorkspaceResourcesService) Unshare(ctx context.Context, resourceID, resourceType string, params *ResourceShareParams) (Document, error) {
	if err := requireString("resource_id", resourceID); err != nil {
		return nil, err
	}
	if err := requireString("resource_type", resourceType); err != nil {
		return nil, err
	}

	body := Document{"resource_type": resourceType}
	if params != nil {
		if params.UserEmail != nil {
			body["user_email"] = *params.UserEmail
		}
		if params.GroupID != nil {
			body["group_id"] = *params.GroupID
		}
		if params.WorkspaceAPIKeyID != nil {
			body["workspace_api_key_id"] = *params.WorkspaceAPIKeyID
		}
	}
	return s.client.post(ctx, "/v1/workspace/resources/"+pathEscape(resourceID)+"/unshare", body)
}
