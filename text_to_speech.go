// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// TextToSpeechService wraps /v1/text-to-speech.
type TextToSpeechService struct {
	client *Client
}

// TextToSpeechParams are the arguments for [TextToSpeechService.Convert]
// and ConvertStream.
type TextToSpeechParams struct {
	// Text to synthesize. Required.
	Text string

	ModelID       *string
	LanguageCode  *string
	VoiceSettings Document
	Seed          *int

	// OutputFormat, for example "mp3_44100_128", rides in the query string.
	OutputFormat *string
}

// Convert synthesizes speech and returns the complete audio as raw bytes.
func (s *TextToSpeechService) Convert(ctx context.Context, voiceID string, params *TextToSpeechParams) ([]byte, error) {
	path, body, q, err := textToSpeechRequest(voiceID, params, "")
	if err != nil {
		return nil, err
	}
	return s.client.postBinary(ctx, path, q, body)
}

// ConvertStream synthesizes speech and streams the audio chunks as they
// are produced.
func (s *TextToSpeechService) ConvertStream(ctx context.Context, voiceID string, params *TextToSpeechParams) (*Stream, error) {
	path, body, q, err := textToSpeechRequest(voiceID, params, "/stream")
	if err != nil {
		return nil, err
	}
	return s.client.postStreaming(ctx, path, q, body)
}

func textToSpeechRequest(voiceID string, params *TextToSpeechParams, suffix string) (string, Document, *query, error) {
	if err := requireString("voice_id", voiceID); err != nil {
		return "", nil, nil, err
	}
	if params == nil {
		return "", nil, nil, &ArgumentError{Name: "text", Reason: "must not be blank"}
	}
	if err := requireString("text", params.Text); err != nil {
		return "", nil, nil, err
	}

	body := Document{"text": params.Text}
	if params.ModelID != nil {
		body["model_id"] = *params.ModelID
	}
	if params.LanguageCode != nil {
		body["language_code"] = *params.LanguageCode
	}
	if params.VoiceSettings != nil {
		body["voice_settings"] = params.VoiceSettings
	}
	if params.Seed != nil {
		body["seed"] = *params.Seed
	}

	q := newQuery().setString("output_format", params.OutputFormat)

	return "/v1/text-to-speech/" + pathEscape(voiceID) + suffix, body, q, nil
}
