// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-convai/convai"
)

func TestKnowledgeBase_Delete_Force(t *testing.T) {
	var gotMethod, gotURI string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.KnowledgeBase.Delete(context.Background(), "doc123", &convai.KnowledgeBaseDeleteParams{
		Force: convai.Bool(true),
	})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q, want DELETE", gotMethod)
	}
	if gotURI != "/v1/convai/knowledge-base/doc123?force=true" {
		t.Errorf("request URI = %q", gotURI)
	}
}

func TestKnowledgeBase_Delete_EmptyBodyResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	doc, err := client.KnowledgeBase.Delete(context.Background(), "doc123", nil)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil document for empty body, got %v", doc)
	}
}

func TestKnowledgeBase_List_RepeatedTypeKeys(t *testing.T) {
	var gotRawQuery string
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"documents": []}`))
	})

	_, err := client.KnowledgeBase.List(context.Background(), &convai.KnowledgeBaseListParams{
		PageSize: convai.Int(5),
		Types:    []string{"url", "file"},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := url.Values{"page_size": {"5"}, "types": {"url", "file"}}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	// Repeated keys, not a comma-joined value.
	if strings.Contains(gotRawQuery, "url%2Cfile") || strings.Contains(gotRawQuery, "url,file") {
		t.Errorf("types serialized as a joined value: %q", gotRawQuery)
	}
}

func TestKnowledgeBase_CreateFromFile(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "Handbook" {
			t.Errorf("name field = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "handbook.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		w.Write([]byte(`{"id": "doc123"}`))
	})

	doc, err := client.KnowledgeBase.CreateFromFile(context.Background(), &convai.CreateFromFileParams{
		Name: convai.String("Handbook"),
		File: &convai.FilePart{
			Reader:      strings.NewReader("%PDF-1.4 fake"),
			Filename:    "handbook.pdf",
			ContentType: "application/pdf",
		},
	})
	if err != nil {
		t.Fatalf("CreateFromFile failed: %v", err)
	}
	if doc["id"] != "doc123" {
		t.Errorf("id = %v", doc["id"])
	}
}

func TestKnowledgeBase_CreateFromFile_OmitsNilName(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, ok := r.MultipartForm.Value["name"]; ok {
			t.Error("name field present, should be omitted")
		}
		w.Write([]byte(`{"id": "doc123"}`))
	})

	_, err := client.KnowledgeBase.CreateFromFile(context.Background(), &convai.CreateFromFileParams{
		File: &convai.FilePart{Reader: strings.NewReader("content"), Filename: "notes.txt"},
	})
	if err != nil {
		t.Fatalf("CreateFromFile failed: %v", err)
	}
}

func TestKnowledgeBase_CreateFromURL_BlankURL(t *testing.T) {
	client, counter := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.KnowledgeBase.CreateFromURL(context.Background(), &convai.CreateFromURLParams{URL: "  "})
	if err == nil {
		t.Fatal("expected error for blank URL")
	}
	if counter.count() != 0 {
		t.Errorf("network calls = %d, want 0", counter.count())
	}
}

func TestKnowledgeBase_RAGIndexPaths(t *testing.T) {
	var uris []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		uris = append(uris, r.Method+" "+r.URL.RequestURI())
		w.Write([]byte(`{}`))
	})

	if _, err := client.KnowledgeBase.ComputeRAGIndex(context.Background(), "doc123", "e5_mistral_7b_instruct"); err != nil {
		t.Fatalf("ComputeRAGIndex failed: %v", err)
	}
	if _, err := client.KnowledgeBase.DeleteRAGIndex(context.Background(), "doc123", "rag456"); err != nil {
		t.Fatalf("DeleteRAGIndex failed: %v", err)
	}

	want := []string{
		"POST /v1/convai/knowledge-base/doc123/rag-index",
		"DELETE /v1/convai/knowledge-base/doc123/rag-index/rag456",
	}
	if diff := cmp.Diff(want, uris); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}
