// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "github.com/mysqlwire/client/internal/wirebuf"

// packetHeaderSize is the 4-byte {payload_size: u24, seq: u8} header
// every MySQL packet begins with (§3).
const packetHeaderSize = 4

// maxPayloadSize is the largest value a 3-byte little-endian payload_size
// field can hold (2^24 - 1), per §3's invariant.
const maxPayloadSize = 1<<24 - 1

// framedPacket is one fully-buffered packet: its header fields plus its
// payload, the latter drawn exactly once from the cursor per §4.2 step 4.
type framedPacket struct {
	payloadSize uint32
	seq         byte
	payload     []byte
}

// frame recognizes the 4-byte MySQL header and, once a whole packet is
// buffered, consumes header and payload from cur and returns them
// together. It returns ErrInsufficientData (without consuming anything)
// if the cursor does not yet hold a complete packet.
//
// Sequence numbers are not validated here: per spec.md §4.2, this is a
// client-side codec and the server-assigned sequence is informational.
func frame(cur *wirebuf.Cursor) (*framedPacket, error) {
	hdr := cur.Peek(packetHeaderSize)
	if hdr == nil {
		return nil, ErrInsufficientData
	}
	payloadSize := readUint24(hdr[0:3])
	seq := hdr[3]

	if payloadSize > maxPayloadSize {
		return nil, malformed("payload_size %d exceeds 2^24-1", payloadSize)
	}
	if cur.Size() < packetHeaderSize+int(payloadSize) {
		return nil, ErrInsufficientData
	}

	cur.Consume(packetHeaderSize)
	payload := cur.Consume(int(payloadSize))
	return &framedPacket{payloadSize: payloadSize, seq: seq, payload: payload}, nil
}

// peekDiscriminator previews the fifth byte (the first payload byte) of
// the next packet, plus the packet's total declared payload_size, without
// consuming anything. Used by the reply discriminator (§4.3) and the EOF
// fast-path probe (§4.4), both of which must decide how to dispatch
// before committing to consuming the packet.
func peekDiscriminator(cur *wirebuf.Cursor) (tag byte, payloadSize uint32, ok bool) {
	hdr := cur.Peek(packetHeaderSize + 1)
	if hdr == nil {
		return 0, 0, false
	}
	return hdr[4], readUint24(hdr[0:3]), true
}

// writePacketHeader prepends a {payload_size, seq} header to payload and
// returns the full wire packet.
func writePacketHeader(payload []byte, seq byte) []byte {
	out := make([]byte, 0, packetHeaderSize+len(payload))
	out = append(out, putUint24(uint32(len(payload)))...)
	out = append(out, seq)
	out = append(out, payload...)
	return out
}
