// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envConfig is the environment fallback for client configuration, applied
// when the corresponding option is not given.
type envConfig struct {
	APIKey  string `env:"ELEVENLABS_API_KEY"`
	BaseURL string `env:"ELEVENLABS_BASE_URL"`
}

// Client holds the configuration for talking to the API and exposes one
// service per remote resource family. Configuration is fixed at
// construction; the client keeps no other state between calls, so a Client
// is safe to reuse across sequential calls.
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	logger       *slog.Logger
	userAgent    string
	interceptors []Interceptor

	Agents                    *AgentsService
	Conversations             *ConversationsService
	KnowledgeBase             *KnowledgeBaseService
	Tools                     *ToolsService
	Workspace                 *WorkspaceService
	WorkspaceMembers          *WorkspaceMembersService
	WorkspaceResources        *WorkspaceResourcesService
	BatchCalling              *BatchCallingService
	PhoneNumbers              *PhoneNumbersService
	Secrets                   *SecretsService
	Models                    *ModelsService
	Usage                     *UsageService
	User                      *UserService
	Webhooks                  *WebhooksService
	VoiceLibrary              *VoiceLibraryService
	TextToSpeech              *TextToSpeechService
	PronunciationDictionaries *PronunciationDictionariesService
}

// NewClient creates a client. The API key comes from [WithAPIKey] or the
// ELEVENLABS_API_KEY environment variable; construction fails with an
// [*ArgumentError] when neither is set, before any network activity.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	var fallback envConfig
	if err := env.Parse(&fallback); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		c.apiKey = fallback.APIKey
	}
	if c.baseURL == DefaultBaseURL && fallback.BaseURL != "" {
		c.baseURL = fallback.BaseURL
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	if strings.TrimSpace(c.apiKey) == "" {
		return nil, &ArgumentError{Name: "api_key", Reason: "must be set via WithAPIKey or ELEVENLABS_API_KEY"}
	}

	c.Agents = &AgentsService{client: c}
	c.Conversations = &ConversationsService{client: c}
	c.KnowledgeBase = &KnowledgeBaseService{client: c}
	c.Tools = &ToolsService{client: c}
	c.Workspace = &WorkspaceService{client: c}
	c.WorkspaceMembers = &WorkspaceMembersService{client: c}
	c.WorkspaceResources = &WorkspaceResourcesService{client: c}
	c.BatchCalling = &BatchCallingService{client: c}
	c.PhoneNumbers = &PhoneNumbersService{client: c}
	c.Secrets = &SecretsService{client: c}
	c.Models = &ModelsService{client: c}
	c.Usage = &UsageService{client: c}
	c.User = &UserService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	c.VoiceLibrary = &VoiceLibraryService{client: c}
	c.TextToSpeech = &TextToSpeechService{client: c}
	c.PronunciationDictionaries = &PronunciationDictionariesService{client: c}

	return c, nil
}

// BaseURL returns the endpoint the client is configured against.
func (c *Client) BaseURL() string {
	return c.baseURL
}
