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

// EofPacket is the decoded EOF_Packet (§3, §4.4).
type EofPacket struct {
	Warnings uint16
	Status   ServerStatus
}

// decodeEof decodes an EOF_Packet payload (the 0xFE marker already known
// to be at payload[0]).
func decodeEof(payload []byte) (EofPacket, error) {
	if len(payload) < 1 || payload[0] != 0xFE {
		return EofPacket{}, malformed("EOF packet missing 0xFE marker")
	}
	if len(payload) < 5 {
		return EofPacket{}, malformed("short EOF packet payload: got %d bytes", len(payload))
	}
	return EofPacket{
		Warnings: readUint16(payload[1:3]),
		Status:   ServerStatus(readUint16(payload[3:5])),
	}, nil
}

// isEofPacket is the fast-path probe (§4.4): a packet is "at EOF" iff its
// fifth byte (first payload byte) is 0xFE and its declared payload_size
// is <= 5. Anywhere else, 0xFE as a LENENC prefix means "read 8 more
// little-endian bytes", which is why payload_size, not just the tag
// byte, must be consulted.
func isEofPacket(cur *wirebuf.Cursor) (isEof bool, ok bool) {
	tag, payloadSize, avail := peekDiscriminator(cur)
	if !avail {
		return false, false
	}
	return tag == 0xFE && payloadSize <= 5, true
}
