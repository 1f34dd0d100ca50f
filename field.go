// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2017 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"strconv"

	"github.com/mysqlwire/client/internal/wirearena"
	"github.com/mysqlwire/client/internal/wirelog"
	"go.uber.org/zap"
)

// Field is one cell in a Row, typed per its owning Column (§3, §4.5). The
// active member of the numeric union is selected by (column.Type,
// column.Unsigned()); calling any other typed getter returns a zero value
// and logs a guarded TypeMismatch diagnostic rather than panicking or
// returning an error (§7).
type Field struct {
	column   *Column
	isNull   bool
	kind     accessorKind
	i64      int64
	u64      uint64
	f64      float64
	str      string
}

// IsNull reports whether this field's value is SQL NULL.
func (f *Field) IsNull() bool {
	return f.isNull
}

// Column returns the Column this field belongs to.
func (f *Field) Column() *Column {
	return f.column
}

func (f *Field) mismatch(wanted string) {
	wirelog.L.Warn("mysqlwire: field type mismatch",
		zap.String("column", f.column.Name),
		zap.String("declared", f.column.Type.String()),
		zap.String("wanted", wanted),
	)
}

// Int64 returns the field's value as a signed integer (TINY/SHORT/YEAR/
// INT24/LONG/LONGLONG, all signed variants). Returns 0 on mismatch.
func (f *Field) Int64() int64 {
	switch f.kind {
	case accessorI8, accessorI16, accessorI32, accessorI64:
		return f.i64
	default:
		f.mismatch("signed integer")
		return 0
	}
}

// Uint64 returns the field's value as an unsigned integer. Returns 0 on
// mismatch.
func (f *Field) Uint64() uint64 {
	switch f.kind {
	case accessorU8, accessorU16, accessorU32, accessorU64:
		return f.u64
	default:
		f.mismatch("unsigned integer")
		return 0
	}
}

// Float32 returns the field's value as a 32-bit float. Returns 0 on
// mismatch.
func (f *Field) Float32() float32 {
	if f.kind != accessorF32 {
		f.mismatch("float32")
		return 0
	}
	return float32(f.f64)
}

// Float64 returns the field's value as a 64-bit float. Returns 0 on
// mismatch.
func (f *Field) Float64() float64 {
	if f.kind != accessorF64 {
		f.mismatch("float64")
		return 0
	}
	return f.f64
}

// String returns the field's value as a borrowed string. Valid for every
// column type the text protocol represents as text (DECIMAL, VARCHAR,
// BLOB family, TIME/DATE/DATETIME/TIMESTAMP, JSON, ...). Returns "" on
// mismatch; numeric columns do not satisfy this accessor even though
// their wire representation happens to be ASCII digits, to catch
// schema/driver mismatches rather than silently stringify numbers.
func (f *Field) String() string {
	if f.kind != accessorString {
		f.mismatch("string")
		return ""
	}
	return f.str
}

// integer returns the active accessor's value as an int64 (unsigned
// values converted), or 0 for non-integer kinds.
func (f *Field) integer() int64 {
	switch f.kind {
	case accessorI8, accessorI16, accessorI32, accessorI64:
		return f.i64
	case accessorU8, accessorU16, accessorU32, accessorU64:
		return int64(f.u64)
	default:
		return 0
	}
}

// decodeTextField decodes one cell of a text-protocol row packet for the
// given column (§4.5). n is the number of bytes the cell occupied on the
// wire (including its LENENC length header), for the caller to advance
// its read position by.
func decodeTextField(payload []byte, col *Column, arena *wirearena.Arena) (*Field, int, error) {
	f := &Field{column: col, kind: col.Type.accessorKind(col.Unsigned())}

	raw, isNull, n, err := lenencString(payload)
	if err != nil {
		return nil, 0, err
	}
	if isNull {
		f.isNull = true
		f.kind = accessorNull
		return f, n, nil
	}

	switch f.kind {
	case accessorI8, accessorI16, accessorI32, accessorI64:
		if prefix := leadingIntPrefix(raw, true); prefix != nil {
			if v, perr := strconv.ParseInt(string(prefix), 10, 64); perr == nil {
				f.i64 = v
			}
		}
	case accessorU8, accessorU16, accessorU32, accessorU64:
		if prefix := leadingIntPrefix(raw, false); prefix != nil {
			if v, perr := strconv.ParseUint(string(prefix), 10, 64); perr == nil {
				f.u64 = v
			}
		}
	case accessorF32, accessorF64:
		if prefix := leadingFloatPrefix(raw); prefix != nil {
			if v, perr := strconv.ParseFloat(string(prefix), 64); perr == nil {
				f.f64 = v
			}
		}
	case accessorNull:
		f.isNull = true
	default: // accessorString
		f.str = arena.Intern(raw)
	}

	return f, n, nil
}

// leadingIntPrefix returns the leading substring of raw that forms a
// valid decimal integer, or nil if raw has no numeric prefix at all
// (§4.5: "optional leading - for signed; trailing non-digit terminates
// parse", mirroring the original implementation's istringstream
// extraction, which stops at the first non-digit and leaves the target
// at its zero value rather than failing the whole field). allowSign
// permits a leading '-' for signed columns; unsigned columns never do.
func leadingIntPrefix(raw []byte, allowSign bool) []byte {
	i := 0
	if allowSign && i < len(raw) && raw[i] == '-' {
		i++
	}
	start := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == start {
		return nil
	}
	return raw[:i]
}

// leadingFloatPrefix returns the leading substring of raw that forms a
// valid decimal float (optional sign, digits, optional fractional part,
// optional exponent), or nil if raw has no numeric prefix at all. Same
// stop-at-first-non-digit leniency as leadingIntPrefix.
func leadingFloatPrefix(raw []byte) []byte {
	i := 0
	if i < len(raw) && (raw[i] == '-' || raw[i] == '+') {
		i++
	}
	intStart := i
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	hasInt := i > intStart

	hasFrac := false
	if i < len(raw) && raw[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
			j++
		}
		hasFrac = j > fracStart
		if hasInt || hasFrac {
			i = j
		}
	}

	if !hasInt && !hasFrac {
		return nil
	}

	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < len(raw) && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		expStart := j
		for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	return raw[:i]
}
