// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// BatchCallingService wraps the outbound batch calling endpoints under
// /v1/convai/batch-calling.
type BatchCallingService struct {
	client *Client
}

// BatchCallRecipient is one callee in a batch submission.
type BatchCallRecipient struct {
	PhoneNumber string `json:"phone_number"`

	// ConversationInitiationClientData optionally overrides agent
	// configuration and dynamic variables for this recipient.
	ConversationInitiationClientData Document `json:"conversation_initiation_client_data,omitempty"`
}

// BatchCallSubmitParams are the arguments for [BatchCallingService.Submit].
type BatchCallSubmitParams struct {
	// CallName labels the batch in the dashboard. Required.
	CallName string

	// AgentID is the agent placing the calls. Required.
	AgentID string

	// AgentPhoneNumberID is the phone number to call from. Required.
	AgentPhoneNumberID string

	// Recipients lists the callees. Required, non-empty.
	Recipients []BatchCallRecipient

	// ScheduledTimeUnix schedules the batch instead of starting it
	// immediately.
	ScheduledTimeUnix *int64
}

// BatchCallListParams page [BatchCallingService.List].
type BatchCallListParams struct {
	Limit   *int
	LastDoc *string
}

// Submit queues a batch of outbound calls.
func (s *BatchCallingService) Submit(ctx context.Context, params *BatchCallSubmitParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "call_name", Reason: "must not be blank"}
	}
	if err := requireString("call_name", params.CallName); err != nil {
		return nil, err
	}
	if err := requireString("agent_id", params.AgentID); err != nil {
		return nil, err
	}
	if err := requireString("agent_phone_number_id", params.AgentPhoneNumberID); err != nil {
		return nil, err
	}
	if len(params.Recipients) == 0 {
		return nil, &ArgumentError{Name: "recipients", Reason: "must not be empty"}
	}

	body := Document{
		"call_name":             params.CallName,
		"agent_id":              params.AgentID,
		"agent_phone_number_id": params.AgentPhoneNumberID,
		"recipients":            params.Recipients,
	}
	if params.ScheduledTimeUnix != nil {
		body["scheduled_time_unix"] = *params.ScheduledTimeUnix
	}
	return s.client.post(ctx, "/v1/convai/batch-calling/submit", body)
}

// List pages through the workspace's batch calling jobs.
func (s *BatchCallingService) List(ctx context.Context, params *BatchCallListParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setInt("limit", params.Limit).setString("last_doc", params.LastDoc)
	}
	return s.client.get(ctx, "/v1/convai/batch-calling/workspace", q)
}

// Get retrieves a batch calling job with its per-recipient status.
func (s *BatchCallingService) Get(ctx context.Context, batchID string) (Document, error) {
	if err := requireString("batch_id", batchID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/batch-calling/"+pathEscape(batchID), nil)
}

// Cancel stops a running batch; already-connected calls finish normally.
func (s *BatchCallingService) Cancel(ctx context.Context, batchID string) (Document, error) {
	if err := requireString("batch_id", batchID); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/convai/batch-calling/"+pathEscape(batchID)+"/cancel", nil)
}

// Retry re-dials the batch's failed and no-answer recipients.
func (s *BatchCallingService) Retry(ctx context.Context, batchID string) (Document, error) {
	if err := requireString("batch_id", batchID); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/convai/batch-calling/"+pathEscape(batchID)+"/retry", nil)
}
