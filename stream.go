// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai

import (
	"context"
	"io"
	"net/http"
	"sync"
)

// Stream delivers the chunks of a streaming response in arrival order. A
// background goroutine reads the response body and forwards each chunk over
// a channel with a buffer of one, so delivery is one-at-a-time with no
// further buffering guarantee. The stream is finite and not restartable.
type Stream struct {
	resp    *http.Response
	chunks  chan []byte
	ctx     context.Context
	cancel  context.CancelFunc
	readErr error
	errMu   sync.Mutex
	closed  bool
	closeMu sync.Mutex
}

func newStream(resp *http.Response) *Stream {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Stream{
		resp:   resp,
		chunks: make(chan []byte, 1),
		ctx:    ctx,
		cancel: cancel,
	}

	go s.readLoop()

	return s
}

// Chunks returns the channel of response chunks. It is closed when the
// stream ends; check [Stream.Err] afterwards.
func (s *Stream) Chunks() <-chan []byte {
	return s.chunks
}

// Err reports the read error that ended the stream, nil after a clean EOF.
// It is valid once the Chunks channel has been closed.
func (s *Stream) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.readErr
}

// Close cancels the stream and releases the underlying connection. It is
// safe to call more than once.
func (s *Stream) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cancel()

	return s.resp.Body.Close()
}

// ForEach invokes fn once per chunk, in arrival order, on the caller's
// stack. It returns once the stream ends, reporting the stream's read error
// or the first error returned by fn.
func (s *Stream) ForEach(fn func(chunk []byte) error) error {
	defer s.Close()

	for chunk := range s.chunks {
		if err := fn(chunk); err != nil {
			return err
		}
	}
	return s.Err()
}

func (s *Stream) readLoop() {
	defer close(s.chunks)

	buf := make([]byte, 4096)
	for {
		n, err := s.resp.Body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.chunks <- chunk:
			case <-s.ctx.Done():
				return
			}
		}
		if err != nil {
			if err != io.EOF && s.ctx.Err() == nil {
				s.errMu.Lock()
				s.readErr = err
				s.errMu.Unlock()
			}
			return
		}
	}
}
