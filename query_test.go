// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import "testing"

func TestQuery_OmitsNilValues(t *testing.T) {
	q := newQuery().
		setInt("page_size", Int(10)).
		setString("search", String("test")).
		setString("sort_by", nil).
		setBool("featured", nil).
		setInt64("call_start_before_unix", nil)

	got := q.encode()
	want := "page_size=10&search=test"
	if got != want {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}

func TestQuery_RepeatedKeys(t *testing.T) {
	q := newQuery().addStrings("types", []string{"url", "file"})

	got := q.encode()
	want := "types=url&types=file"
	if got != want {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}

func TestQuery_PercentEncoding(t *testing.T) {
	q := newQuery().setString("search", String("café & bar"))

	got := q.encode()
	want := "search=caf%C3%A9+%26+bar"
	if got != want {
		t.Errorf("encode() = %q, want %q", got, want)
	}
}

func TestQuery_NilQueryEncodesEmpty(t *testing.T) {
	var q *query
	if got := q.encode(); got != "" {
		t.Errorf("encode() = %q, want empty", got)
	}
}
