// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

// Package webhook verifies the signatures the platform attaches to
// post-call webhook deliveries.
//
// Each delivery carries an ElevenLabs-Signature header of the form
// "t=<unix>,v0=<hex>", where the hex digest is HMAC-SHA256 over
// "<unix>.<payload>" keyed with the webhook secret. Verification checks
// the timestamp against a freshness tolerance and compares digests in
// constant time.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the HTTP header carrying the delivery signature.
const SignatureHeader = "ElevenLabs-Signature"

// DefaultTolerance is the maximum accepted age of a delivery timestamp.
const DefaultTolerance = 30 * time.Minute

// Verification failures.
var (
	// ErrMissingSignature is returned when the header is absent or not in
	// the t=...,v0=... form.
	ErrMissingSignature = errors.New("webhook: missing or malformed signature header")

	// ErrStaleTimestamp is returned when the delivery timestamp falls
	// outside the validator's tolerance.
	ErrStaleTimestamp = errors.New("webhook: signature timestamp outside tolerance")

	// ErrSignatureMismatch is returned when the digest does not match the
	// payload.
	ErrSignatureMismatch = errors.New("webhook: signature mismatch")
)

// Validator verifies webhook deliveries against a shared secret.
type Validator struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewValidator creates a Validator for the given webhook secret. A
// non-positive tolerance selects [DefaultTolerance].
func NewValidator(secret string, tolerance time.Duration) *Validator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Validator{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}
}

// Verify checks payload against the ElevenLabs-Signature header value.
// It returns nil for an authentic, fresh delivery.
func (v *Validator) Verify(payload []byte, header string) error {
	timestamp, digest, err := parseHeader(header)
	if err != nil {
		return err
	}

	issued := time.Unix(timestamp, 0)
	age := v.now().Sub(issued)
	if age > v.tolerance || age < -v.tolerance {
		return ErrStaleTimestamp
	}

	expected := Sign(v.secret, timestamp, payload)
	if !hmac.Equal([]byte(digest), []byte(expected)) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign computes the hex HMAC-SHA256 digest of "<timestamp>.<payload>".
// Exposed so tests and local tooling can produce valid signatures.
func Sign(secret []byte, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// parseHeader splits "t=<unix>,v0=<hex>" into its parts.
func parseHeader(header string) (timestamp int64, digest string, err error) {
	if strings.TrimSpace(header) == "" {
		return 0, "", ErrMissingSignature
	}

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", ErrMissingSignature
			}
		case "v0":
			digest = value
		}
	}

	if timestamp == 0 || digest == "" {
		return 0, "", ErrMissingSignature
	}
	return timestamp, digest, nil
}
