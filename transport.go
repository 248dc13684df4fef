// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"

	"github.com/go-json-experiment/json"
)

// The transport layer performs one HTTP exchange per call and normalizes
// the outcome: a 2xx response yields the parsed (or raw) payload, any other
// status yields exactly one typed error from the taxonomy in errors.go.
// Nothing is retried, cached, or carried across calls.

// get issues a GET and returns the decoded JSON body.
func (c *Client) get(ctx context.Context, path string, q *query) (Document, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, q, "", nil)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, req)
}

// getList issues a GET against an endpoint whose response body is a
// top-level JSON array.
func (c *Client) getList(ctx context.Context, path string, q *query) ([]Document, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, q, "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	var docs []Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return docs, nil
}

// delete issues a DELETE and returns the decoded JSON body. Endpoints that
// answer with an empty body yield a nil Document.
func (c *Client) delete(ctx context.Context, path string, q *query) (Document, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, path, q, "", nil)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, req)
}

// deleteWithBody issues a DELETE carrying a JSON body, for the few
// endpoints that identify their target in the payload.
func (c *Client) deleteWithBody(ctx context.Context, path string, body any) (Document, error) {
	return c.sendJSON(ctx, http.MethodDelete, path, body)
}

// post issues a POST with a JSON body.
func (c *Client) post(ctx context.Context, path string, body any) (Document, error) {
	return c.sendJSON(ctx, http.MethodPost, path, body)
}

// patch issues a PATCH with a JSON body.
func (c *Client) patch(ctx context.Context, path string, body any) (Document, error) {
	return c.sendJSON(ctx, http.MethodPatch, path, body)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body any) (Document, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, nil, "application/json", payload)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, req)
}

// postMultipart issues a POST with a multipart/form-data body. Field values
// may be string, []string (repeated field), *FilePart, or any other scalar
// (formatted with fmt.Sprint); nil values are omitted.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]any) (Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeMultipartField(writer, name, fields[name]); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, req)
}

func writeMultipartField(writer *multipart.Writer, name string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return writer.WriteField(name, v)
	case []string:
		for _, item := range v {
			if err := writer.WriteField(name, item); err != nil {
				return err
			}
		}
		return nil
	case *FilePart:
		if v == nil {
			return nil
		}
		part, err := writer.CreatePart(filePartHeader(name, v))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, v.Reader); err != nil {
			return fmt.Errorf("copy file part %q: %w", name, err)
		}
		return nil
	default:
		return writer.WriteField(name, fmt.Sprint(v))
	}
}

// getBinary issues a GET and returns the raw response body unparsed, for
// audio and dictionary downloads.
func (c *Client) getBinary(ctx context.Context, path string, q *query) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, q, "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// postBinary issues a POST with a JSON body and returns the raw response
// body unparsed, for synthesis endpoints that answer with audio.
func (c *Client) postBinary(ctx context.Context, path string, q *query, body any) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, q, "application/json", payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// postStreaming issues a POST with a JSON body and returns a [Stream]
// delivering the raw response chunks in arrival order. A non-2xx status is
// reported as a typed error before any stream is returned.
func (c *Client) postStreaming(ctx context.Context, path string, q *query, body any) (*Stream, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, q, "application/json", payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("read response body: %w", readErr)
		}
		return nil, newAPIError(resp.StatusCode, data)
	}

	return newStream(resp), nil
}

// newRequest assembles an authenticated request against the configured
// base URL.
func (c *Client) newRequest(ctx context.Context, method, path string, q *query, contentType string, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if encoded := q.encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// do dispatches a request through the interceptor chain.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	invoker := func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return c.httpClient.Do(req.WithContext(ctx))
	}
	invoker = chainInterceptors(c.interceptors, invoker)

	c.logger.DebugContext(ctx, "dispatch", "method", req.Method, "url", req.URL.String())

	resp, err := invoker(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// doJSON dispatches a request and decodes the JSON response body.
func (c *Client) doJSON(ctx context.Context, req *http.Request) (Document, error) {
	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return doc, nil
}

func filePartHeader(name string, part *FilePart) textproto.MIMEHeader {
	contentType := part.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, name, part.Filename))
	header.Set("Content-Type", contentType)
	return header
}

// pathEscape escapes an identifier for use as a single path segment.
func pathEscape(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}
