// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

// FieldType is the wire type code carried by a Column definition.
type FieldType byte

// Field type codes, per the MySQL client/server protocol.
const (
	FieldTypeDecimal    FieldType = 0x00
	FieldTypeTiny       FieldType = 0x01
	FieldTypeShort      FieldType = 0x02
	FieldTypeLong       FieldType = 0x03
	FieldTypeFloat      FieldType = 0x04
	FieldTypeDouble     FieldType = 0x05
	FieldTypeNULL       FieldType = 0x06
	FieldTypeTimestamp  FieldType = 0x07
	FieldTypeLongLong   FieldType = 0x08
	FieldTypeInt24      FieldType = 0x09
	FieldTypeDate       FieldType = 0x0A
	FieldTypeTime       FieldType = 0x0B
	FieldTypeDateTime   FieldType = 0x0C
	FieldTypeYear       FieldType = 0x0D
	FieldTypeNewDate    FieldType = 0x0E
	FieldTypeVarChar    FieldType = 0x0F
	FieldTypeBit        FieldType = 0x10
	FieldTypeJSON       FieldType = 0xF5
	FieldTypeNewDecimal FieldType = 0xF6
	FieldTypeEnum       FieldType = 0xF7
	FieldTypeSet        FieldType = 0xF8
	FieldTypeTinyBLOB   FieldType = 0xF9
	FieldTypeMediumBLOB FieldType = 0xFA
	FieldTypeLongBLOB   FieldType = 0xFB
	FieldTypeBLOB       FieldType = 0xFC
	FieldTypeVarString  FieldType = 0xFD
	FieldTypeString     FieldType = 0xFE
	FieldTypeGeometry   FieldType = 0xFF
)

var fieldTypeNames = map[FieldType]string{
	FieldTypeDecimal:    "DECIMAL",
	FieldTypeTiny:       "TINY",
	FieldTypeShort:      "SHORT",
	FieldTypeLong:       "LONG",
	FieldTypeFloat:      "FLOAT",
	FieldTypeDouble:     "DOUBLE",
	FieldTypeNULL:       "NULL",
	FieldTypeTimestamp:  "TIMESTAMP",
	FieldTypeLongLong:   "LONGLONG",
	FieldTypeInt24:      "INT24",
	FieldTypeDate:       "DATE",
	FieldTypeTime:       "TIME",
	FieldTypeDateTime:   "DATETIME",
	FieldTypeYear:       "YEAR",
	FieldTypeNewDate:    "NEWDATE",
	FieldTypeVarChar:    "VARCHAR",
	FieldTypeBit:        "BIT",
	FieldTypeJSON:       "JSON",
	FieldTypeNewDecimal: "NEWDECIMAL",
	FieldTypeEnum:       "ENUM",
	FieldTypeSet:        "SET",
	FieldTypeTinyBLOB:   "TINY_BLOB",
	FieldTypeMediumBLOB: "MEDIUM_BLOB",
	FieldTypeLongBLOB:   "LONG_BLOB",
	FieldTypeBLOB:       "BLOB",
	FieldTypeVarString:  "VAR_STRING",
	FieldTypeString:     "STRING",
	FieldTypeGeometry:   "GEOMETRY",
}

// String implements fmt.Stringer for diagnostics.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// FieldFlag is the bitfield carried by a Column definition.
type FieldFlag uint16

// Field flag bits, per the MySQL client/server protocol.
const (
	FlagNotNull     FieldFlag = 0x0001
	FlagPriKey      FieldFlag = 0x0002
	FlagUnique      FieldFlag = 0x0004
	FlagMultiKey    FieldFlag = 0x0008
	FlagBlob        FieldFlag = 0x0010
	FlagUnsigned    FieldFlag = 0x0020
	FlagZerofill    FieldFlag = 0x0040
	FlagBinary      FieldFlag = 0x0080
	FlagEnum        FieldFlag = 0x0100
	FlagAutoIncr    FieldFlag = 0x0200
	FlagTimestamp   FieldFlag = 0x0400
	FlagSet         FieldFlag = 0x0800
)

// Has reports whether bit is set in f.
func (f FieldFlag) Has(bit FieldFlag) bool {
	return f&bit != 0
}

// accessorKind classifies which Field getter is valid for a given
// (FieldType, unsigned) pair, per spec.md §4.5.
type accessorKind int

const (
	accessorString accessorKind = iota
	accessorI8
	accessorU8
	accessorI16
	accessorU16
	accessorI32
	accessorU32
	accessorI64
	accessorU64
	accessorF32
	accessorF64
	accessorNull
)

func (t FieldType) accessorKind(unsigned bool) accessorKind {
	switch t {
	case FieldTypeTiny:
		if unsigned {
			return accessorU8
		}
		return accessorI8
	case FieldTypeShort, FieldTypeYear:
		if unsigned {
			return accessorU16
		}
		return accessorI16
	case FieldTypeInt24, FieldTypeLong:
		if unsigned {
			return accessorU32
		}
		return accessorI32
	case FieldTypeLongLong:
		if unsigned {
			return accessorU64
		}
		return accessorI64
	case FieldTypeFloat:
		return accessorF32
	case FieldTypeDouble:
		return accessorF64
	case FieldTypeNULL:
		return accessorNull
	default:
		// DECIMAL, NEWDECIMAL, VARCHAR, VAR_STRING, STRING, BIT, ENUM,
		// SET, the BLOB family, GEOMETRY, JSON, TIME, DATE, NEWDATE,
		// TIMESTAMP, DATETIME: all borrowed strings in the text protocol.
		return accessorString
	}
}
