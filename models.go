// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// ModelsService wraps /v1/models.
type ModelsService struct {
	client *Client
}

// List returns the available speech models. The endpoint answers with a
// top-level JSON array, one document per model.
func (s *ModelsService) List(ctx context.Context) ([]Document, error) {
	return s.client.getList(ctx, "/v1/models", nil)
}
