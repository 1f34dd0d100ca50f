// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"errors"

	"github.com/mysqlwire/client/internal/wirearena"
	"github.com/mysqlwire/client/internal/wirebuf"
)

// MultiStatementDriver inspects the status bits on a completed Reply and
// tells the caller whether the reply decoder must be invoked again on
// the same stream for the next statement's reply (§4.6). It holds no
// bytes itself; it is a thin wrapper around Reply.IsMultiStatement so a
// caller driving a multi-statement query has one obvious place to look.
type MultiStatementDriver struct {
	cur     *wirebuf.Cursor
	arena   *wirearena.Arena
	tokens  *TokenQueue
	current *Reply
	popped  bool
}

// NewMultiStatementDriver returns a driver bound to cur and arena, both
// of which the caller continues to feed/own across the whole
// multi-statement exchange. tokens may be nil if the caller does not
// need §2b's correlation discipline (e.g. a single-statement connection
// with no pipelining); when non-nil, Next pops the front token before
// decoding each fresh reply and hands it back to the front if decoding
// runs out of bytes, so the next delivery resumes the same exchange.
func NewMultiStatementDriver(cur *wirebuf.Cursor, arena *wirearena.Arena, tokens *TokenQueue) *MultiStatementDriver {
	return &MultiStatementDriver{cur: cur, arena: arena, tokens: tokens}
}

// Next decodes the next reply in a (possibly multi-statement) sequence.
// If a previous call returned ErrInsufficientData, Next resumes the same
// in-progress Reply rather than starting a new one (the caller must feed
// more bytes into cur between calls). It returns the completed *Reply,
// whether the caller must call Next again for a further reply, and any
// decode error. isAuth should be true only for the very first call on a
// freshly-opened connection.
func (d *MultiStatementDriver) Next(isAuth bool) (reply *Reply, hasMore bool, err error) {
	if d.current == nil {
		d.current = &Reply{}
		if d.tokens != nil {
			if tok, ok := d.tokens.Pop(); ok {
				d.current.SetToken(tok)
				d.popped = true
			}
		}
	} else if d.tokens != nil && !d.popped && d.current.Token() != (CorrelationToken{}) {
		// The previous call handed this reply's token back to the front of
		// the queue when it ran out of bytes; take it again while decoding.
		d.tokens.Pop()
		d.popped = true
	}
	_, isMulti, err := d.current.ConsumePartial(d.cur, d.arena, isAuth)
	if err != nil {
		if d.popped && errors.Is(err, ErrInsufficientData) {
			d.tokens.PushFront(d.current.Token())
			d.popped = false
		}
		return nil, false, err
	}
	d.popped = false
	reply = d.current
	d.current = nil
	return reply, isMulti, nil
}
