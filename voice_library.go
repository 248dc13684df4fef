// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// VoiceLibraryService wraps the shared voice library endpoints.
type VoiceLibraryService struct {
	client *Client
}

// SharedVoicesParams filter and page [VoiceLibraryService.GetSharedVoices].
type SharedVoicesParams struct {
	PageSize *int
	Page     *int
	Category *string
	Gender   *string
	Age      *string
	Language *string
	Search   *string
	Featured *bool

	// UseCases serializes as repeated query keys.
	UseCases []string
}

// GetSharedVoices searches the community voice library.
func (s *VoiceLibraryService) GetSharedVoices(ctx context.Context, params *SharedVoicesParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setInt("page_size", params.PageSize).
			setInt("page", params.Page).
			setString("category", params.Category).
			setString("gender", params.Gender).
			setString("age", params.Age).
			setString("language", params.Language).
			setString("search", params.Search).
			setBool("featured", params.Featured).
			addStrings("use_cases", params.UseCases)
	}
	return s.client.get(ctx, "/v1/shared-voices", q)
}

// AddSharedVoice copies a shared voice into the workspace under a new name.
func (s *VoiceLibraryService) AddSharedVoice(ctx context.Context, publicUserID, voiceID, newName string) (Document, error) {
	if err := requireString("public_user_id", publicUserID); err != nil {
		return nil, err
	}
	if err := requireString("voice_id", voiceID); err != nil {
		return nil, err
	}
	if err := requireString("new_name", newName); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/voices/add/"+pathEscape(publicUserID)+"/"+pathEscape(voiceID), Document{
		"new_name": newName,
	})
}
