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
	"github.com/mysqlwire/client/internal/wirearena"
	"github.com/mysqlwire/client/internal/wirebuf"
)

// Kind identifies which variant of the Reply sum type is active (§3).
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindOk
	KindError
	KindEof
	KindResultSet
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "Auth"
	case KindOk:
		return "Ok"
	case KindError:
		return "Error"
	case KindEof:
		return "Eof"
	case KindResultSet:
		return "ResultSet"
	default:
		return "Unknown"
	}
}

// Reply is the decoded result of one server-to-client packet (or packet
// sequence, for ResultSet). It starts as KindUnknown and transitions
// monotonically to exactly one terminal variant (§3). A Reply (and the
// Arena it was decoded with) is scoped to one request/response exchange.
type Reply struct {
	kind Kind

	auth      *AuthGreeting
	ok        *OkPacket
	err       *ServerError
	eof       *EofPacket
	resultSet *resultSetBuilder

	token CorrelationToken
}

// Kind returns the active variant.
func (r *Reply) Kind() Kind {
	return r.kind
}

// Token returns the correlation token this Reply was decoded against, or
// the zero CorrelationToken if the caller never assigned one (§2b). Set
// via SetToken before the first ConsumePartial call.
func (r *Reply) Token() CorrelationToken {
	return r.token
}

// SetToken assigns the correlation token this Reply is matched to. It
// must be called, if at all, before the first ConsumePartial call; it is
// a no-op once the Reply has started decoding, since by then the token
// popped for this exchange is already committed.
func (r *Reply) SetToken(t CorrelationToken) {
	if r.kind != KindUnknown || r.resultSet != nil {
		return
	}
	r.token = t
}

// Auth returns the decoded greeting, or nil if Kind() != KindAuth.
func (r *Reply) Auth() *AuthGreeting {
	return r.auth
}

// Ok returns the decoded OK packet, or nil if Kind() != KindOk.
func (r *Reply) Ok() *OkPacket {
	return r.ok
}

// Error returns the decoded server error, or nil if Kind() != KindError.
func (r *Reply) Error() *ServerError {
	return r.err
}

// Eof returns the decoded EOF packet, or nil if Kind() != KindEof.
func (r *Reply) Eof() *EofPacket {
	return r.eof
}

// ColumnCount returns the ResultSet's column count, or 0 if Kind() !=
// KindResultSet.
func (r *Reply) ColumnCount() uint64 {
	if r.resultSet == nil {
		return 0
	}
	return r.resultSet.rs.ColumnCount
}

// Column returns the i'th column of the ResultSet, or nil if Kind() !=
// KindResultSet.
func (r *Reply) Column(i int) *Column {
	if r.resultSet == nil || i < 0 || i >= len(r.resultSet.rs.Columns) {
		return nil
	}
	return r.resultSet.rs.Columns[i]
}

// RowCount returns the number of rows decoded so far.
func (r *Reply) RowCount() uint64 {
	if r.resultSet == nil {
		return 0
	}
	return r.resultSet.rs.RowCount
}

// NextRow advances the ResultSet's row cursor (§6).
func (r *Reply) NextRow() *Row {
	if r.resultSet == nil {
		return nil
	}
	return r.resultSet.rs.NextRow()
}

// Status returns the server status bits carried by this reply's
// terminal packet (OK, or the ResultSet's second EOF), used by the
// multi-statement driver (§4.6).
func (r *Reply) Status() ServerStatus {
	switch r.kind {
	case KindOk:
		return r.ok.Status
	case KindResultSet:
		return r.resultSet.rs.Eof2.Status
	case KindEof:
		return r.eof.Status
	default:
		return 0
	}
}

// IsMultiStatement reports whether this reply signals more replies
// follow on the same stream (§4.6).
func (r *Reply) IsMultiStatement() bool {
	return r.Status().IsMultiStatement()
}

// ConsumePartial is the sole entry point of the reply decoder (§6): it
// drains as much of cur as is available, transitioning the Reply toward
// a terminal Kind. It returns (true, isMulti, nil) once the Reply is
// complete, (false, false, ErrInsufficientData) if cur ran dry first
// (the Reply's partial state is preserved for the next call), and a
// non-nil non-ErrInsufficientData error for MalformedPacket/OutOfMemory.
//
// isAuth must be true only for the very first reply decoded on a freshly
// opened connection; the discriminator then treats the packet as an
// Auth-greeting unless its tag byte is 0x00 (an immediate OK), per §4.3.
//
// Re-invoking ConsumePartial on an already-complete Reply with an empty
// cursor is a no-op that returns (true, r.IsMultiStatement(), nil) (§8).
func (r *Reply) ConsumePartial(cur *wirebuf.Cursor, arena *wirearena.Arena, isAuth bool) (done bool, isMulti bool, err error) {
	if r.kind != KindUnknown {
		return true, r.IsMultiStatement(), nil
	}

	// Once a ResultSet has started, every subsequent packet (more
	// columns, rows, the two EOFs) belongs to it regardless of what its
	// own leading byte looks like: re-running the top-level
	// discriminator on resumption would misread a row packet or a
	// second EOF as a fresh reply kind.
	if r.resultSet != nil {
		return r.consumeResultSet(cur, arena)
	}

	tag, payloadSize, ok := peekDiscriminator(cur)
	if !ok {
		return false, false, ErrInsufficientData
	}

	// A freshly-opened connection's first reply is unconditionally the
	// Auth greeting, regardless of its discriminator byte, unless it is
	// an immediate OK (some servers/proxies short-circuit straight to
	// success without ever sending a greeting) (§4.3).
	if isAuth {
		if tag == 0x00 {
			return r.consumeOk(cur, arena)
		}
		return r.consumeAuth(cur, arena)
	}

	switch {
	case tag == 0x00:
		return r.consumeOk(cur, arena)
	case tag == 0xFF:
		return r.consumeError(cur, arena)
	case tag == 0xFE && payloadSize <= 5:
		return r.consumeEof(cur)
	case tag >= 0x01 && tag <= 0xFA:
		return r.consumeResultSet(cur, arena)
	default:
		return false, false, malformed("unexpected discriminator byte 0x%02X", tag)
	}
}

func (r *Reply) consumeOk(cur *wirebuf.Cursor, arena *wirearena.Arena) (bool, bool, error) {
	pkt, err := frame(cur)
	if err != nil {
		return false, false, err
	}
	ok, err := decodeOk(pkt.payload, arena)
	if err != nil {
		return false, false, err
	}
	r.ok = &ok
	r.kind = KindOk
	return true, r.IsMultiStatement(), nil
}

func (r *Reply) consumeError(cur *wirebuf.Cursor, arena *wirearena.Arena) (bool, bool, error) {
	pkt, err := frame(cur)
	if err != nil {
		return false, false, err
	}
	se, err := decodeError(pkt.payload, arena)
	if err != nil {
		return false, false, err
	}
	r.err = se
	r.kind = KindError
	return true, false, nil
}

func (r *Reply) consumeEof(cur *wirebuf.Cursor) (bool, bool, error) {
	pkt, err := frame(cur)
	if err != nil {
		return false, false, err
	}
	eof, err := decodeEof(pkt.payload)
	if err != nil {
		return false, false, err
	}
	r.eof = &eof
	r.kind = KindEof
	return true, r.IsMultiStatement(), nil
}

func (r *Reply) consumeAuth(cur *wirebuf.Cursor, arena *wirearena.Arena) (bool, bool, error) {
	pkt, err := frame(cur)
	if err != nil {
		return false, false, err
	}
	g, err := decodeAuthGreeting(pkt.payload, arena)
	if err != nil {
		return false, false, err
	}
	r.auth = g
	r.kind = KindAuth
	return true, false, nil
}

func (r *Reply) consumeResultSet(cur *wirebuf.Cursor, arena *wirearena.Arena) (bool, bool, error) {
	if r.resultSet == nil {
		r.resultSet = newResultSetBuilder()
	}
	done, err := r.resultSet.continueBuild(cur, arena)
	if err != nil {
		return false, false, err
	}
	if !done {
		return false, false, ErrInsufficientData
	}
	r.kind = KindResultSet
	return true, r.IsMultiStatement(), nil
}
