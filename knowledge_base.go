// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "context"

// KnowledgeBaseService wraps the knowledge base endpoints under
// /v1/convai/knowledge-base. Documents are created from a URL, a block of
// text, or an uploaded file, and can be indexed for RAG afterwards.
type KnowledgeBaseService struct {
	client *Client
}

// KnowledgeBaseListParams filter and page [KnowledgeBaseService.List].
// Types serializes as repeated query keys (types=url&types=file).
type KnowledgeBaseListParams struct {
	PageSize               *int
	Cursor                 *string
	Search                 *string
	ShowOnlyOwnedDocuments *bool
	Types                  []string
}

// CreateFromURLParams are the arguments for
// [KnowledgeBaseService.CreateFromURL].
type CreateFromURLParams struct {
	// URL of the page to scrape into a document. Required.
	URL string

	Name *string
}

// CreateFromTextParams are the arguments for
// [KnowledgeBaseService.CreateFromText].
type CreateFromTextParams struct {
	// Text content of the document. Required.
	Text string

	Name *string
}

// CreateFromFileParams are the arguments for
// [KnowledgeBaseService.CreateFromFile].
type CreateFromFileParams struct {
	// File is the document to upload. Required.
	File *FilePart

	Name *string
}

// KnowledgeBaseDeleteParams are the arguments for
// [KnowledgeBaseService.Delete].
type KnowledgeBaseDeleteParams struct {
	// Force deletes the document even when agents still depend on it.
	Force *bool
}

// DependentAgentsParams page [KnowledgeBaseService.GetDependentAgents].
type DependentAgentsParams struct {
	PageSize *int
	Cursor   *string
}

// List pages through the workspace's knowledge base documents.
func (s *KnowledgeBaseService) List(ctx context.Context, params *KnowledgeBaseListParams) (Document, error) {
	q := newQuery()
	if params != nil {
		q.setInt("page_size", params.PageSize).
			setString("cursor", params.Cursor).
			setString("search", params.Search).
			setBool("show_only_owned_documents", params.ShowOnlyOwnedDocuments).
			addStrings("types", params.Types)
	}
	return s.client.get(ctx, "/v1/convai/knowledge-base", q)
}

// Get retrieves a knowledge base document's metadata.
func (s *KnowledgeBaseService) Get(ctx context.Context, documentationID string) (Document, error) {
	if err := requireString("documentation_id", documentationID); err != nil {
		return nil, err
	}
	return s.client.get(ctx, "/v1/convai/knowledge-base/"+pathEscape(documentationID), nil)
}

// CreateFromURL scrapes a web page into a new document.
func (s *KnowledgeBaseService) CreateFromURL(ctx context.Context, params *CreateFromURLParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "url", Reason: "must not be blank"}
	}
	if err := requireString("url", params.URL); err != nil {
		return nil, err
	}

	body := Document{"url": params.URL}
	if params.Name != nil {
		body["name"] = *params.Name
	}
	return s.client.post(ctx, "/v1/convai/knowledge-base/url", body)
}

// CreateFromText creates a new document from raw text.
func (s *KnowledgeBaseService) CreateFromText(ctx context.Context, params *CreateFromTextParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "text", Reason: "must not be blank"}
	}
	if err := requireString("text", params.Text); err != nil {
		return nil, err
	}

	body := Document{"text": params.Text}
	if params.Name != nil {
		body["name"] = *params.Name
	}
	return s.client.post(ctx, "/v1/convai/knowledge-base/text", body)
}

// CreateFromFile uploads a file as a new document.
func (s *KnowledgeBaseService) CreateFromFile(ctx context.Context, params *CreateFromFileParams) (Document, error) {
	if params == nil {
		return nil, &ArgumentError{Name: "file", Reason: "must supply file content"}
	}
	if err := requireReader("file", params.File); err != nil {
		return nil, err
	}

	fields := map[string]any{"file": params.File}
	if params.Name != nil {
		fields["name"] = *params.Name
	}
	return s.client.postMultipart(ctx, "/v1/convai/knowledge-base/file", fields)
}

// Delete removes a document. Force deletes it even when agents depend on
// it; without force the API rejects such deletes.
func (s *KnowledgeBaseService) Delete(ctx context.Context, documentationID string, params *KnowledgeBaseDeleteParams) (Document, error) {
	if err := requireString("documentation_id", documentationID); err != nil {
		return nil, err
	}

	q := newQuery()
	if params != nil {
		q.setBool("force", params.Force)
	}
	return s.client.delete(ctx, "/v1/convai/knowledge-base/"+pathEscape(documentationID), q)
}

// GetContent downloads the document's full content unparsed.
func (s *KnowledgeBaseService) GetContent(ctx context.Context, documentationID string) ([]byte, error) {
	if err := requireString("documentation_id", documentationID); err != nil {
		return nil, err
	}
	return s.client.getBinary(ctx, "/v1/convai/knowledge-base/"+pathEscape(documentationID)+"/content", nil)
}

// GetDependentAgents pages through the agents using a document.
func (s *KnowledgeBaseService) GetDependentAgents(ctx context.Context, documentationID string, params *DependentAgentsParams) (Document, error) {
	if err := requireString("documentation_id", documentationID); err != nil {
		return nil, err
	}

	q := newQuery()
	if params != nil {
		q.setInt("page_size", params.PageSize).setString("cursor", params.Cursor)
	}
	return s.client.get(ctx, "/v1/convai/knowledge-base/"+pathEscape(documentationID)+"/dependent-agents", q)
}

// ComputeRAGIndex starts (or reports) RAG indexing of a document with the
// given embedding model.
func (s *KnowledgeBaseService) ComputeRAGIndex(ctx context.Context, documentationID, model string) (Document, error) {
	if err := requireString("documentation_id", documentationID); err != nil {
		return nil, err
	}
	if err := requireString("model", model); err != nil {
		return nil, err
	}
	return s.client.post(ctx, "/v1/convai/knowledge-base/"+pathEscape(documentationID)+"/rag-index", Document{
		"model": model,
	})
}

// DeleteRAGIndex removes one RAG index of a document.
func (s *KnowledgeBaseService) DeleteRAGIndex(ctx context.Context, documentationID, ragIndexID string) (Document, error) {
	if err := requireString("documentation_id", documentationID); err != nil {
		return nil, err
	}
	if err := requireString("rag_index_id", ragIndexID); err != nil {
		return nil, err
	}
	return s.client.delete(ctx, "/v1/convai/knowledge-base/"+pathEscape(documentationID)+"/rag-index/"+pathEscape(ragIndexID), nil)
}

// GetRAGIndexOverview reports RAG index usage across the workspace.
func (s *KnowledgeBaseService) GetRAGIndexOverview(ctx context.Context) (Document, error) {
	return s.client.get(ctx, "/v1/convai/knowledge-base/rag-index-overview", nil)
}
