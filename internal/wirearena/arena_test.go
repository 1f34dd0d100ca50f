// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2013 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package wirearena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocCopiesBytes(t *testing.T) {
	a := New()
	defer a.Release()

	src := []byte("hello")
	got := a.Alloc(src)
	require.Equal(t, src, got)

	src[0] = 'H'
	require.Equal(t, "hello", string(got), "Alloc must copy, not alias, the caller's slice")
}

func TestArenaAllocSurvivesFurtherGrowth(t *testing.T) {
	a := New()
	defer a.Release()

	first := a.Alloc([]byte("first"))
	for i := 0; i < 64; i++ {
		a.Alloc([]byte("padding-to-force-growth"))
	}
	require.Equal(t, "first", string(first), "a previously returned slice must survive later Allocs reallocating the backing buffer")
}

func TestArenaInternReturnsEqualStringsForEqualBytes(t *testing.T) {
	a := New()
	defer a.Release()

	s1 := a.Intern([]byte("users"))
	s2 := a.Intern([]byte("users"))
	require.Equal(t, s1, s2)
}

func TestArenaInternEmptyIsEmptyString(t *testing.T) {
	a := New()
	defer a.Release()
	require.Equal(t, "", a.Intern(nil))
}

func TestArenaAllocEmptyIsNil(t *testing.T) {
	a := New()
	defer a.Release()
	require.Nil(t, a.Alloc(nil))
}
