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

// OkPacket is the decoded OK_Packet (§3, §4.4).
type OkPacket struct {
	AffectedRows uint64
	LastInsertID uint64
	Status       ServerStatus
	Warnings     uint16
	Info         string
}

// decodeOk decodes an OK_Packet payload (the 0x00 marker already known to
// be at payload[0] by the caller). arena is used for the borrowed Info
// string.
func decodeOk(payload []byte, arena *wirearena.Arena) (OkPacket, error) {
	if len(payload) < 1 || payload[0] != 0x00 {
		return OkPacket{}, malformed("OK packet missing 0x00 marker")
	}
	pos := 1

	affectedRows, _, n, err := lenencInt(payload[pos:])
	if err != nil {
		return OkPacket{}, err
	}
	pos += n

	lastInsertID, _, n, err := lenencInt(payload[pos:])
	if err != nil {
		return OkPacket{}, err
	}
	pos += n

	if len(payload)-pos < 4 {
		return OkPacket{}, malformed("short OK packet payload: got %d bytes", len(payload))
	}
	status := ServerStatus(readUint16(payload[pos : pos+2]))
	pos += 2
	warnings := readUint16(payload[pos : pos+2])
	pos += 2

	info := payload[pos:]
	// A trailing NUL, if present, is the string terminator and is
	// stripped rather than retained as data (§4.4).
	if len(info) > 0 && info[len(info)-1] == 0x00 {
		info = info[:len(info)-1]
	}

	return OkPacket{
		AffectedRows: affectedRows,
		LastInsertID: lastInsertID,
		Status:       status,
		Warnings:     warnings,
		Info:         arena.Intern(info),
	}, nil
}
