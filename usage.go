// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"context"
	"strconv"
)

// UsageService wraps /v1/usage.
type UsageService struct {
	client *Client
}

// CharacterStatsParams are the arguments for
// [UsageService.GetCharacterStats].
type CharacterStatsParams struct {
	// StartUnix is the start of the reporting window, unix millis. Required.
	StartUnix int64

	// EndUnix is the end of the reporting window, unix millis. Required.
	EndUnix int64

	IncludeWorkspaceMetrics *bool

	// BreakdownType groups the metrics, for example "voice" or "user".
	BreakdownType *string
}

// GetCharacterStats reports character usage over a time window.
func (s *UsageService) GetCharacterStats(ctx context.Context, params *CharacterStatsParams) (Document, error) {
	if params == nil || params.StartUnix == 0 {
		return nil, &ArgumentError{Name: "start_unix", Reason: "must not be zero"}
	}
	if params.EndUnix == 0 {
		return nil, &ArgumentError{Name: "end_unix", Reason: "must not be zero"}
	}

	q := newQuery().
		set("start_unix", strconv.FormatInt(params.StartUnix, 10)).
		set("end_unix", strconv.FormatInt(params.EndUnix, 10)).
		setBool("include_workspace_metrics", params.IncludeWorkspaceMetrics).
		setString("breakdown_type", params.BreakdownType)
	return s.client.get(ctx, "/v1/usage/character-stats", q)
}
