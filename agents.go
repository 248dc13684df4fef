// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// AgentsService wraps the conversational agent endpoints under
// /v1/convai/agents.
type AgentsService struct {
	client *Client
}

// AgentCreateParams are the arguments for [AgentsService.Create].
type AgentCreateParams struct {
	// ConversationConfig is the agent's conversation configuration, in the
	// shape the remote API defines. Required.
	ConversationConfig Document

	Name            *string
	PlatformSettings Document
	Tags            []string
}

// AgentUpdateParams are the arguments for [AgentsService.Update]. Nil
// fields are left untouched on the remote agent.
type AgentUpdateParams struct {
	ConversationConfig Document
	Name               *string
	PlatformSettings   Document
	Tags               []string
}

// AgentListParams filter and page [AgentsService.List]. Nil fields are
// omitted from the query string.
type AgentListParams struct {
	Cursor        *string
	PageSize      *int
	Search        *string
	SortBy        *string
	SortDirection *string
}

// AgentDuplicateParams are the arguments for [AgentsService.Duplicate].
type AgentDuplicateParams struct {
	Name *string
}

// SimulateConversationParams are the arguments for
// [AgentsService.SimulateConversation] and its streaming variant.
type SimulateConversationParams struct {
	// SimulationSpecification drives the simulated user. Required.
	SimulationSpecification Document

	ExtraEvaluationCriteria []Document
}

// Create registers a new agent and returns the created document, which
// carries the assigned agent_id.
func (s *AgentsService) Create(ctx context.Context, params *AgentCreateParams) (Document, error) {
	if params == nil || params.ConversationConfig == nil {
		return nil, &ArgumentError{Name: "conversation_config", Reason: "must not be nil"}
	}

	body := Document{"conversation_config": params.ConversationConfig}
	if params.Name != nil {
		body["name"] = *params.Name
	}
	if params.PlatformSettings != nil {
		body["platform_settings"] = params.PlatformSettings
	}
	if params.Tags != nil {
		body["tags"] = params.Tags
	}
	return s.client.post(ctx, "/v1/convai/agents/create", body)
}

// Get retrieves an agent by ID.
func (s *AgentsService) Get(ctx context.Context, agentID string) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/agents/"+pathEscape(agentID), nil)
}

// Update patches an agent's settings.
func (s *AgentsService) Update(ctx context.Context, agentID string, params *AgentUpdateParams) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}

	body := Document{}
	if params != nil {
		if params.ConversationConfig != nil {
			body["conversation_config"] = params.ConversationConfig
		}
		if params.Name != nil {
			body["name"] = *params.Name
		}
		if params.PlatformSettings != nil {
			body["platform_settings"] = params.PlatformSettings
		}
		if params.Tags != nil {
			body["tags"] = params.Tags
		}
	}
	return s.client.patch(ctx, "/v1/convai/agents/"+pathEscape(agentID), body)
}

// Delete removes an agent.
func (s *AgentsService) Delete(ctx context.Context, agentID string) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	return s.client.delete(ctx, "/v1/convai/agents/"+pathEscape(agentID), nil)
}

// List pages through the workspace's agents.
func (s *AgentsService) List(ctx context.Context, params *AgentListParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setString("cursor", params.Cursor).
			setInt("page_size", params.PageSize).
			setString("search", params.Search).
			setString("sort_by", params.SortBy).
			setString("sort_direction", params.SortDirection)
	}
	return s.client.get(ctx, "/v1/convai/agents", q)
}

// Duplicate clones an existing agent, optionally under a new name.
func (s *AgentsService) Duplicate(ctx context.Context, agentID string, params *AgentDuplicateParams) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}

	body := Document{}
	if params != nil && params.Name != nil {
		body["name"] = *params.Name
	}
	return s.client.post(ctx, "/v1/convai/agents/"+pathEscape(agentID)+"/duplicate", body)
}

// GetLink returns the shareable link document for an agent.
func (s *AgentsService) GetLink(ctx context.Context, agentID string) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/agents/"+pathEscape(agentID)+"/link", nil)
}

// UploadAvatar replaces the agent's avatar image via a multipart upload.
func (s *AgentsService) UploadAvatar(ctx context.Context, agentID string, avatar *FilePart) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	if err := requireReader("avatar_file", avatar); err != nil {
		return nil, err
	}
	return s.client.postMultipart(ctx, "/v1/convai/agents/"+pathEscape(agentID)+"/avatar", map[string]any{
		"avatar_file": avatar,
	})
}

// SimulateConversation runs a full simulated conversation against the agent
// and returns the analysis document.
func (s *AgentsService) SimulateConversation(ctx context.Context, agentID string, params *SimulateConversationParams) (Document, error) {
	body, err := simulateConversationBody(agentID, params)
	if err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/convai/agents/"+pathEscape(agentID)+"/simulate-conversation", body)
}

// SimulateConversationStream runs the same simulation but streams the
// response chunks as they are produced.
func (s *AgentsService) SimulateConversationStream(ctx context.Context, agentID string, params *SimulateConversationParams) (*Stream, error) {
	body, err := simulateConversationBody(agentID, params)
	if err != nil {
		return nil, err
	}
	return s.client.postStreaming(ctx, "/v1/convai/agents/"+pathEscape(agentID)+"/simulate-conversation/stream", nil, body)
}

func simulateConversationBody(agentID string, params *SimulateConversationParams) (Document, error) {
	if err := requireString("agent_id", agentID); err != nil {
		return nil, err
	}
	if params == nil || params.SimulationSpecification == nil {
		return nil, &ArgumentError{Name: "simulation_specification", Reason: "must not be nil"}
	}

	body := Document{"simulation_specification": params.SimulationSpecification}
	if params.ExtraEvaluationCriteria != nil {
		body["extra_evaluation_criteria"] = params.ExtraEvaluationCriteria
	}
	return body, nil
}
