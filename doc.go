// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

// Package mysqlwire implements the client side of the MySQL wire protocol
// (text protocol, 4.1+): packet framing, reply decoding, the
// mysql_native_password authentication handshake, and a typed accessor
// over decoded row fields.
//
// The decoder is a pure function of its inputs: it never blocks and never
// owns a socket. Feed it bytes as they arrive over whatever transport you
// use (net.Conn, a test harness, a replayed capture) and call
// ConsumePartial repeatedly; it returns ErrInsufficientData whenever it
// needs more bytes and resumes exactly where it left off on the next
// call. The binary (prepared-statement) protocol, TLS/compression
// negotiation and connection pooling are out of scope; see DESIGN.md.
package mysqlwire
