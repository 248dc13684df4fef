// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// WorkspaceMembersService wraps workspace membership and invite endpoints
// under /v1/workspace.
type WorkspaceMembersService struct {
	client *Client
}

// MemberUpdateParams are the arguments for
// [WorkspaceMembersService.UpdateMember].
type MemberUpdateParams struct {
	IsLocked      *bool
	WorkspaceRole *string
}

// UpdateMember changes a member's lock state or role.
func (s *WorkspaceMembersService) UpdateMember(ctx context.Context, email string, params *MemberUpdateParams) (Document, error) {
	if err := requireString("email", email); err != nil {
		return nil, err
	}

	body := Document{"email": email}
	if params != nil {
		if params.IsLocked != nil {
			body["is_locked"] = *params.IsLocked
		}
		if params.WorkspaceRole != nil {
			body["workspace_role"] = *params.WorkspaceRole
		}
	}
	return s.client.post(ctx, "/v1/workspace/members", body)
}

// Invite sends a workspace invite to an email address.
func (s *WorkspaceMembersService) Invite(ctx context.Context, email string) (Document, error) {
	if err := requireString("email", email); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/workspace/invites/add", Document{"email": email})
}

// InviteBulk sends invites to several email addresses at once.
func (s *WorkspaceMembersService) InviteBulk(ctx context.Context, emails []string) (Document, error) {
	if len(emails) == 0 {
		return nil, &ArgumentError{Name: "emails", Reason: "must not be empty"}
	}
	return s.client.post(ctx, "/v1/workspace/invites/add-bulk", Document{"emails": emails})
}

// DeleteInvite revokes a pending invite.
func (s *WorkspaceMembersService) DeleteInvite(ctx context.Context, email string) (Document, error) {
	if err := requireString("email", email); err != nil {
		return nil, err
	}
	return s.client.deleteWithBody(ctx, "/v1/workspace/invites", Document{"email": email})
}
