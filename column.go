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

// Column is one column definition from a ResultSet's column block (§3).
type Column struct {
	Catalog     string
	Database    string
	Table       string
	OriginTable string
	Name        string
	OriginName  string
	Collation   uint16
	Length      uint32
	Type        FieldType
	Flag        FieldFlag
	Decimal     byte
}

// Unsigned reports whether the column's UNSIGNED flag is set.
func (c *Column) Unsigned() bool {
	return c.Flag.Has(FlagUnsigned)
}

// decodeColumn decodes one Column-definition packet payload (§4.4):
// six LENENC strings, a reserved byte, then fixed-width metadata.
func decodeColumn(payload []byte, arena *wirearena.Arena) (*Column, error) {
	pos := 0
	readStr := func() (string, error) {
		s, isNull, n, err := lenencString(payload[pos:])
		if err != nil {
			return "", err
		}
		pos += n
		if isNull {
			return "", nil
		}
		return arena.Intern(s), nil
	}

	col := &Column{}
	var err error
	if col.Catalog, err = readStr(); err != nil {
		return nil, err
	}
	if col.Database, err = readStr(); err != nil {
		return nil, err
	}
	if col.Table, err = readStr(); err != nil {
		return nil, err
	}
	if col.OriginTable, err = readStr(); err != nil {
		return nil, err
	}
	if col.Name, err = readStr(); err != nil {
		return nil, err
	}
	if col.OriginName, err = readStr(); err != nil {
		return nil, err
	}

	// one reserved (filler) byte, then collation/length/type/flag/decimal.
	const tailSize = 1 + 2 + 4 + 1 + 2 + 1
	if len(payload)-pos < tailSize {
		return nil, malformed("short column-definition payload: got %d bytes", len(payload))
	}
	pos++ // reserved
	col.Collation = readUint16(payload[pos : pos+2])
	pos += 2
	col.Length = readUint32(payload[pos : pos+4])
	pos += 4
	col.Type = FieldType(payload[pos])
	pos++
	col.Flag = FieldFlag(readUint16(payload[pos : pos+2]))
	pos += 2
	col.Decimal = payload[pos]
	pos++
	// two reserved (filler) bytes sometimes follow in the wire format;
	// decimal is the last field this codec needs so anything past it is
	// ignored rather than validated strictly against payload_size, since
	// servers are free to append extra filler here.

	return col, nil
}
