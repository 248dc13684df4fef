// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "wsec_1234567890abcdef"

func signedHeader(secret string, issued time.Time, payload []byte) string {
	ts := issued.Unix()
	return fmt.Sprintf("t=%d,v0=%s", ts, Sign([]byte(secret), ts, payload))
}

func newTestValidator(now time.Time) *Validator {
	v := NewValidator(testSecret, 0)
	v.now = func() time.Time { return now }
	return v
}

func TestValidator_Verify(t *testing.T) {
	now := time.Unix(1700000000, 0)
	payload := []byte(`{"type": "post_call_transcription", "data": {"conversation_id": "conv123"}}`)
	header := signedHeader(testSecret, now, payload)

	v := newTestValidator(now)
	require.NoError(t, v.Verify(payload, header))
}

func TestValidator_Verify_TamperedPayload(t *testing.T) {
	now := time.Unix(1700000000, 0)
	payload := []byte(`{"amount": 10}`)
	header := signedHeader(testSecret, now, payload)

	v := newTestValidator(now)
	err := v.Verify([]byte(`{"amount": 9999}`), header)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestValidator_Verify_WrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)
	payload := []byte(`{}`)
	header := signedHeader("wsec_other", now, payload)

	v := newTestValidator(now)
	assert.ErrorIs(t, v.Verify(payload, header), ErrSignatureMismatch)
}

func TestValidator_Verify_StaleTimestamp(t *testing.T) {
	now := time.Unix(1700000000, 0)
	payload := []byte(`{}`)
	header := signedHeader(testSecret, now.Add(-time.Hour), payload)

	v := newTestValidator(now)
	assert.ErrorIs(t, v.Verify(payload, header), ErrStaleTimestamp)
}

func TestValidator_Verify_FutureTimestamp(t *testing.T) {
	now := time.Unix(1700000000, 0)
	payload := []byte(`{}`)
	header := signedHeader(testSecret, now.Add(time.Hour), payload)

	v := newTestValidator(now)
	assert.ErrorIs(t, v.Verify(payload, header), ErrStaleTimestamp)
}

func TestValidator_Verify_MalformedHeaders(t *testing.T) {
	v := newTestValidator(time.Unix(1700000000, 0))

	for _, header := range []string{
		"",
		"   ",
		"t=abc,v0=def",
		"v0=deadbeef",
		"t=1700000000",
		"garbage",
	} {
		assert.ErrorIs(t, v.Verify([]byte(`{}`), header), ErrMissingSignature, "header %q", header)
	}
}

func TestNewValidator_DefaultTolerance(t *testing.T) {
	v := NewValidator(testSecret, 0)
	assert.Equal(t, DefaultTolerance, v.tolerance)

	v = NewValidator(testSecret, 5*time.Minute)
	assert.Equal(t, 5*time.Minute, v.tolerance)
}
