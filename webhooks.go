// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// WebhooksService wraps /v1/workspace/webhooks. Verifying inbound webhook
// payloads is handled separately by the webhook subpackage.
type WebhooksService struct {
	client *Client
}

// WebhookListParams are the arguments for [WebhooksService.List].
type WebhookListParams struct {
	// IncludeUsages also reports which features use each webhook.
	IncludeUsages *bool
}

// List returns the workspace's configured webhooks.
func (s *WebhooksService) List(ctx context.Context, params *WebhookListParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setBool("include_usages", params.IncludeUsages)
	}
	return s.client.get(ctx, "/v1/workspace/webhooks", q)
}
