// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// SecretsService wraps the workspace secret endpoints under
// /v1/convai/secrets. Secret values are write-only; list and get responses
// never include them.
type SecretsService struct {
	client *Client
}

// List returns the workspace's secrets, values redacted.
func (s *SecretsService) List(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/convai/secrets", nil)
}

// Create stores a new secret.
func (s *SecretsService) Create(ctx context.Context, name, value string) (Document, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	if err := requireString("value", value); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/convai/secrets", Document{
		"type":  "new",
		"name":  name,
		"value": value,
	})
}

// Update replaces a secret's value.
func (s *SecretsService) Update(ctx context.Context, secretID, name, value string) (Document, error) {
	if err := requireString("secret_id", secretID); err != nil {
		return nil, err
	}
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	if err := requireString("value", value); err != nil {
		return nil, err
	}
	return s.client.patch(ctx, "/v1/convai/secrets/"+pathEscape(secretID), Document{
		"type":  "update",
		"name":  name,
		"value": value,
	})
}

// Delete removes a secret. The API rejects deleting secrets still
// referenced by agents or tools.
func (s *SecretsService) Delete(ctx context.Context, secretID string) (Document, error) {
	if err := requireString("secret_id", secretID); err != nil {
		return nil, err
	}
	return s.client.delete(ctx, "/v1/convai/secrets/"+pathEscape(secretID), nil)
}
