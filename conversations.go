// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// ConversationsService wraps the conversation history endpoints under
// /v1/convai/conversations.
type ConversationsService struct {
	client *Client
}

// ConversationListParams filter and page [ConversationsService.List].
type ConversationListParams struct {
	AgentID             *string
	CallSuccessful      *string
	CallStartBeforeUnix *int64
	CallStartAfterUnix  *int64
	PageSize            *int
	Cursor              *string
}

// List pages through recorded conversations.
func (s *ConversationsService) List(ctx context.Context, params *ConversationListParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setString("agent_id", params.AgentID).
			setString("call_successful", params.CallSuccessful).
			setInt64("call_start_before_unix", params.CallStartBeforeUnix).
			setInt64("call_start_after_unix", params.CallStartAfterUnix).
			setInt("page_size", params.PageSize).
			setString("cursor", params.Cursor)
	}
	return s.client.get(ctx, "/v1/convai/conversations", q)
}

// Get retrieves a conversation, including its transcript and analysis.
func (s *ConversationsService) Get(ctx context.Context, conversationID string) (Document, error) {
	if err := requireString("conversation_id", conversationID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/conversations/"+pathEscape(conversationID), nil)
}

// Delete removes a conversation and its recording.
func (s *ConversationsService) Delete(ctx context.Context, conversationID string) (Document, error) {
	if err := requireString("conversation_id", conversationID); err != nil {
		return nil, err
	}
	return s.client.delete(ctx, "/v1/convai/conversations/"+pathEscape(conversationID), nil)
}

// GetAudio downloads the conversation recording as raw audio bytes.
func (s *ConversationsService) GetAudio(ctx context.Context, conversationID string) ([]byte, error) {
	if err := requireString("conversation_id", conversationID); err != nil {
		return nil, err
	}
	return s.client.getBinary(ctx, "/v1/convai/conversations/"+pathEscape(conversationID)+"/audio", nil)
}

// SendFeedback records a thumbs-up or thumbs-down for a conversation.
func (s *ConversationsService) SendFeedback(ctx context.Context, conversationID string, like bool) (Document, error) {
	if err := requireString("conversation_id", conversationID); err != nil {
		return nil, err
	}
	feedback := "dislike"
	if like {
		feedback = "like"
	}
	return s.client.post(ctx, "/v1/convai/conversations/"+pathEscape(conversationID)+"/feedback", Document{
		"feedback": feedback,
	})
}

// GetSignedURL returns a short-lived signed WebSocket URL for starting a
// conversation with an agent that requires authorization.
func (s *ConversationsService) GetSignedURL(ctx context.Context, agentID string) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	q := newQuery().set("agent_id", agentID)
	return s.client.get(ctx, "/v1/convai/conversation/get-signed-url", q)
}

// GetToken returns a WebRTC session token for an agent.
func (s *ConversationsService) GetToken(ctx context.Context, agentID string) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	q := newQuery().set("agent_id", agentID)
	return s.client.get(ctx, "/v1/convai/conversation/token", q)
}
