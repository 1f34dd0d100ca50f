// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2017 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "github.com/google/uuid"

// CorrelationToken identifies one in-flight request/response exchange on
// a pipelined connection. The RPC runtime that dispatches requests and
// matches replies is out of scope (spec.md §1); this type exists only so
// a caller can satisfy §5's ordering invariant: the token for the
// request currently being decoded is popped before ConsumePartial is
// called, and must be handed back to the front of the queue if
// ConsumePartial returns ErrInsufficientData, so the next delivery
// resumes the same exchange rather than advancing to the next one.
type CorrelationToken uuid.UUID

// NewCorrelationToken returns a fresh, randomly-generated token.
func NewCorrelationToken() CorrelationToken {
	return CorrelationToken(uuid.New())
}

func (t CorrelationToken) String() string {
	return uuid.UUID(t).String()
}

// TokenQueue is a minimal FIFO of correlation tokens, giving a caller
// just enough structure to implement the pop-before-decode,
// return-on-InsufficientData discipline without building the full RPC
// runtime.
type TokenQueue struct {
	tokens []CorrelationToken
}

// Push appends a token to the back of the queue.
func (q *TokenQueue) Push(t CorrelationToken) {
	q.tokens = append(q.tokens, t)
}

// Pop removes and returns the token at the front of the queue.
func (q *TokenQueue) Pop() (CorrelationToken, bool) {
	if len(q.tokens) == 0 {
		return CorrelationToken{}, false
	}
	t := q.tokens[0]
	q.tokens = q.tokens[1:]
	return t, true
}

// PushFront restores a popped token to the front of the queue, used when
// decoding it returned ErrInsufficientData and the exchange must be
// retried from the same token on the next delivery.
func (q *TokenQueue) PushFront(t CorrelationToken) {
	q.tokens = append([]CorrelationToken{t}, q.tokens...)
}

// Len reports how many tokens are queued.
func (q *TokenQueue) Len() int {
	return len(q.tokens)
}
