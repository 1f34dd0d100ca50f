// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "github.com/mysqlwire/client/internal/wirearena"

// decodeError decodes an ERR_Packet payload (the 0xFF marker already
// known to be at payload[0]) into a *ServerError. The message is the
// payload after its 9-byte head (1 tag + 2 code + 1 '#' + 5 sqlstate),
// i.e. payload_size - 9 bytes, less one more when a trailing NUL is
// present and stripped.
func decodeError(payload []byte, arena *wirearena.Arena) (*ServerError, error) {
	if len(payload) < 1 || payload[0] != 0xFF {
		return nil, malformed("ERROR packet missing 0xFF marker")
	}
	if len(payload) < 9 {
		return nil, malformed("short ERROR packet payload: got %d bytes", len(payload))
	}

	code := readUint16(payload[1:3])
	// payload[3] is the '#' sqlstate marker; decoders strip it (§3).
	sqlstate := payload[4:9]

	message := payload[9:]
	if len(message) > 0 && message[len(message)-1] == 0x00 {
		message = message[:len(message)-1]
	}

	return &ServerError{
		Code:     code,
		SQLState: arena.Intern(sqlstate),
		Message:  arena.Intern(message),
	}, nil
}
