// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

const (
	clientCapabilityNoSchema   = 0xA285
	clientCapabilityWithSchema = 0xA68D
	extendedCapability         = 0x0007
	maxPacketSize              = 16_777_216
)

// buildLoginPacket builds the Client Authentication Packet payload
// (§4.7): client capability, extended capability, max packet size,
// charset, 23 zero filler bytes, NUL-terminated user, 1-byte token
// length + token, and an optional NUL-terminated schema.
func buildLoginPacket(cfg *Config, serverCapability uint16, token []byte) []byte {
	capability := clientCapabilityNoSchema
	if cfg.Schema != "" {
		capability = clientCapabilityWithSchema
	}

	size := 2 + 2 + 4 + 1 + 23 + len(cfg.User) + 1 + 1 + len(token)
	if cfg.Schema != "" {
		size += len(cfg.Schema) + 1
	}

	out := make([]byte, 0, size)
	out = append(out, putUint16(uint16(capability))...)
	out = append(out, putUint16(uint16(extendedCapability))...)
	out = append(out, putUint32(uint32(maxPacketSize))...)
	out = append(out, cfg.Charset)
	out = append(out, make([]byte, 23)...)
	out = append(out, []byte(cfg.User)...)
	out = append(out, 0x00)
	out = append(out, byte(len(token)))
	out = append(out, token...)
	if cfg.Schema != "" {
		out = append(out, []byte(cfg.Schema)...)
		out = append(out, 0x00)
	}
	return out
}
