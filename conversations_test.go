// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-convai/convai"
)

func TestConversations_GetAudio(t *testing.T) {
	audio := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/convai/conversations/conv123/audio" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	})

	got, err := client.Conversations.GetAudio(context.Background(), "conv123")
	if err != nil {
		t.Fatalf("GetAudio failed: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("audio bytes = %v, want %v", got, audio)
	}
}

func TestConversations_GetAudio_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "conversation not found"}`))
	})

	_, err := client.Conversations.GetAudio(context.Background(), "conv123")

	var notFound *convai.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %v, want *NotFoundError", err)
	}
	if notFound.Message != "conversation not found" {
		t.Errorf("Message = %q", notFound.Message)
	}
}

func TestConversations_SendFeedback(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	if _, err := client.Conversations.SendFeedback(context.Background(), "conv123", true); err != nil {
		t.Fatalf("SendFeedback failed: %v", err)
	}
	if gotBody["feedback"] != "like" {
		t.Errorf("feedback = %v", gotBody["feedback"])
	}

	if _, err := client.Conversations.SendFeedback(context.Background(), "conv123", false); err != nil {
		t.Fatalf("SendFeedback failed: %v", err)
	}
	if gotBody["feedback"] != "dislike" {
		t.Errorf("feedback = %v", gotBody["feedback"])
	}
}

func TestConversations_GetSignedURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/convai/conversation/get-signed-url" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("agent_id"); got != "agent_abc123" {
			t.Errorf("agent_id = %q", got)
		}
		w.Write([]byte(`{"signed_url": "wss://api.elevenlabs.io/ws?token=abc"}`))
	})

	doc, err := client.Conversations.GetSignedURL(context.Background(), "agent_abc123")
	if err != nil {
		t.Fatalf("GetSignedURL failed: %v", err)
	}
	if doc["signed_url"] == "" {
		t.Error("signed_url missing from response")
	}
}

func TestConversations_List_RateLimited(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail": "too many concurrent requests"}`))
	})

	_, err := client.Conversations.List(context.Background(), nil)

	var rateLimited *convai.RateLimitError
	if !errors.As(err, &rateLimited) {
		t.Fatalf("got %v, want *RateLimitError", err)
	}
}
