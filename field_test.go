// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2017 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"testing"

	"github.com/mysqlwire/client/internal/wirearena"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextFieldSignedInteger(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "age", Type: FieldTypeLong}
	payload := append(lenencIntBytes(2), []byte("-7")...)
	f, n, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.False(t, f.IsNull())
	require.Equal(t, int64(-7), f.Int64())
	require.Equal(t, uint64(0), f.Uint64()) // mismatch: guarded, returns zero
}

func TestDecodeTextFieldUnsignedInteger(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "id", Type: FieldTypeLong, Flag: FlagUnsigned}
	payload := append(lenencIntBytes(1), []byte("9")...)
	f, _, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, uint64(9), f.Uint64())
	require.Equal(t, int64(0), f.Int64()) // mismatch: guarded, returns zero
}

func TestDecodeTextFieldFloat(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "score", Type: FieldTypeDouble}
	payload := append(lenencIntBytes(4), []byte("3.25")...)
	f, _, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.InDelta(t, 3.25, f.Float64(), 0.0001)
	require.Equal(t, float32(0), f.Float32()) // mismatch: guarded, returns zero
}

func TestDecodeTextFieldString(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "name", Type: FieldTypeVarChar}
	payload := append(lenencIntBytes(5), []byte("hello")...)
	f, _, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, "hello", f.String())
	require.Equal(t, int64(0), f.Int64()) // mismatch: guarded, returns zero
}

func TestDecodeTextFieldNull(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "opt", Type: FieldTypeVarChar}
	payload := []byte{0xFB}
	f, n, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, f.IsNull())
}

// Numeric parsing is lenient (§4.5): a non-digit terminates the parse
// rather than failing the field, mirroring the original implementation's
// istringstream extraction. A cell with no numeric prefix at all parses
// to the zero value instead of erroring.
func TestDecodeTextFieldNoNumericPrefixIsZero(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "age", Type: FieldTypeLong}
	payload := append(lenencIntBytes(3), []byte("abc")...)
	f, n, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.False(t, f.IsNull())
	require.Equal(t, int64(0), f.Int64())
}

func TestDecodeTextFieldTrailingGarbageStopsParse(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "age", Type: FieldTypeLong}
	payload := append(lenencIntBytes(5), []byte("42abc")...)
	f, _, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, int64(42), f.Int64())
}

func TestDecodeTextFieldUnsignedColumnIgnoresLeadingMinus(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "id", Type: FieldTypeLong, Flag: FlagUnsigned}
	payload := append(lenencIntBytes(2), []byte("-7")...)
	f, _, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.Equal(t, uint64(0), f.Uint64(), "unsigned columns don't accept a leading '-'; no digits means zero")
}

func TestDecodeTextFieldFloatTrailingGarbageStopsParse(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col := &Column{Name: "score", Type: FieldTypeDouble}
	payload := append(lenencIntBytes(9), []byte("3.25xyzzy")...)
	f, _, err := decodeTextField(payload, col, arena)
	require.NoError(t, err)
	require.InDelta(t, 3.25, f.Float64(), 0.0001)
}

func TestFieldTypeAccessorKindTable(t *testing.T) {
	cases := []struct {
		typ      FieldType
		unsigned bool
		kind     accessorKind
	}{
		{FieldTypeTiny, false, accessorI8},
		{FieldTypeTiny, true, accessorU8},
		{FieldTypeShort, false, accessorI16},
		{FieldTypeYear, true, accessorU16},
		{FieldTypeLong, false, accessorI32},
		{FieldTypeInt24, true, accessorU32},
		{FieldTypeLongLong, false, accessorI64},
		{FieldTypeLongLong, true, accessorU64},
		{FieldTypeFloat, false, accessorF32},
		{FieldTypeDouble, false, accessorF64},
		{FieldTypeNULL, false, accessorNull},
		{FieldTypeVarChar, false, accessorString},
		{FieldTypeNewDecimal, false, accessorString},
		{FieldTypeJSON, false, accessorString},
	}
	for _, c := range cases {
		require.Equal(t, c.kind, c.typ.accessorKind(c.unsigned), "type=%v unsigned=%v", c.typ, c.unsigned)
	}
}

func TestRowScanAllAggregatesMismatches(t *testing.T) {
	arena := wirearena.New()
	defer arena.Release()

	col1 := &Column{Name: "a", Type: FieldTypeLong}
	col2 := &Column{Name: "b", Type: FieldTypeVarChar}

	f1, _, err := decodeTextField(append(lenencIntBytes(1), []byte("1")...), col1, arena)
	require.NoError(t, err)
	f2, _, err := decodeTextField(append(lenencIntBytes(1), []byte("x")...), col2, arena)
	require.NoError(t, err)

	row := &Row{fields: []*Field{f1, f2}}
	require.Equal(t, 2, row.FieldCount())

	err = row.ScanAll(func(col *Column, f *Field) error {
		if col.Name == "a" {
			_ = f.String() // wrong accessor: col "a" is a LONG, not a string
			return &TypeMismatchError{Column: col.Name, Declared: col.Type, Wanted: "string"}
		}
		return nil
	})
	require.Error(t, err)
}
