// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"net/url"
	"strconv"
)

// query accumulates URL query parameters. Nil-valued optional parameters
// are never added, so they are omitted from the request entirely rather
// than sent empty. Slice parameters serialize as repeated keys.
type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

// set adds a required parameter.
func (q *query) set(key, value string) *query {
	q.values.Set(key, value)
	return q
}

func (q *query) setString(key string, value *string) *query {
	if value != nil {
		q.values.Set(key, *value)
	}
	return q
}

func (q *query) setInt(key string, value *int) *query {
	if value != nil {
		q.values.Set(key, strconv.Itoa(*value))
	}
	return q
}

func (q *query) setInt64(key string, value *int64) *query {
	if value != nil {
		q.values.Set(key, strconv.FormatInt(*value, 10))
	}
	return q
}

func (q *query) setBool(key string, value *bool) *query {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}
	return q
}

// addStrings adds one key per element, producing repeated keys such as
// types=url&types=file.
func (q *query) addStrings(key string, values []string) *query {
	for _, v := range values {
		q.values.Add(key, v)
	}
	return q
}

// encode returns the percent-encoded query string, empty when no
// parameters were added.
func (q *query) encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}
