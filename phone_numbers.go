// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// PhoneNumbersService wraps the telephony endpoints under
// /v1/convai/phone-numbers.
type PhoneNumbersService struct {
	client *Client
}

// PhoneNumberCreateParams are the arguments for
// [PhoneNumbersService.Create]. Provider is "twilio" or "sip_trunk"; the
// provider-specific credential fields ride in ProviderConfig.
type PhoneNumberCreateParams struct {
	// PhoneNumber in E.164 form. Required.
	PhoneNumber string

	// Label shown in the dashboard. Required.
	Label string

	// Provider backing this number. Required.
	Provider string

	// ProviderConfig carries provider-specific fields such as sid and
	// token for Twilio.
	ProviderConfig Document
}

// PhoneNumberUpdateParams are the arguments for
// [PhoneNumbersService.Update].
type PhoneNumberUpdateParams struct {
	// AgentID assigns the number to an agent; nil leaves the assignment
	// unchanged.
	AgentID *string
}

// Create imports a phone number from a telephony provider.
func (s *PhoneNumbersService) Create(ctx context.Context, params *PhoneNumberCreateParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "phone_number", Reason: "must not be blank"}
	}
	if err := requireString("phone_number", params.PhoneNumber); err != nil {
		return nil, err
	}
	if err := requireString("label", params.Label); err != nil {
		return nil, err
	}
	if err := requireString("provider", params.Provider); err != nil {
		return nil, err
	}

	body := Document{
		"phone_number": params.PhoneNumber,
		"label":        params.Label,
		"provider":     params.Provider,
	}
	for key, value := range params.ProviderConfig {
		body[key] = value
	}
	return s.client.post(ctx, "/v1/convai/phone-numbers/create", body)
}

// List returns the workspace's phone numbers.
func (s *PhoneNumbersService) List(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/convai/phone-numbers", nil)
}

// Get retrieves a phone number by ID.
func (s *PhoneNumbersService) Get(ctx context.Context, phoneNumberID string) (Document, error) {
	if err := requireString("phone_number_id", phoneNumberID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/phone-numbers/"+pathEscape(phoneNumberID), nil)
}

// Update changes a phone number's agent assignment.
func (s *PhoneNumbersService) Update(ctx context.Context, phoneNumberID string, params *PhoneNumberUpdateParams) (Document, error) {
	if err := requireString("phone_number_id", phoneNumberID); err != nil {
		return nil, err
	}

	body := Document{}
	if params != nil && params.AgentID != nil {
		body["agent_id"] = *params.AgentID
	}
	return s.client.patch(ctx, "/v1/convai/phone-numbers/"+pathEscape(phoneNumberID), body)
}

// Delete releases a phone number.
func (s *PhoneNumbersService) Delete(ctx context.Context, phoneNumberID string) (Document, error) {
	if err := requireString("phone_number_id", phoneNumberID); err != nil {
		return nil, err
	}
	return s.client.delete(ctx, "/v1/convai/phone-numbers/"+pathEscape(phoneNumberID), nil)
}
