// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"testing"

	"github.com/mysqlwire/client/internal/wirebuf"
	"github.com/stretchr/testify/require"
)

func TestFrameInsufficientHeader(t *testing.T) {
	cur := wirebuf.NewCursor()
	cur.Feed([]byte{0x03, 0x00})
	_, err := frame(cur)
	require.ErrorIs(t, err, ErrInsufficientData)
	require.Equal(t, 2, cur.Size())
}

func TestFrameInsufficientPayload(t *testing.T) {
	cur := wirebuf.NewCursor()
	cur.Feed([]byte{0x03, 0x00, 0x00, 0x00, 0xAA})
	_, err := frame(cur)
	require.ErrorIs(t, err, ErrInsufficientData)
	require.Equal(t, 5, cur.Size())
}

func TestFrameCompletesAcrossTwoFeeds(t *testing.T) {
	cur := wirebuf.NewCursor()
	cur.Feed([]byte{0x03, 0x00, 0x00, 0x01, 0xAA})
	_, err := frame(cur)
	require.ErrorIs(t, err, ErrInsufficientData)

	cur.Feed([]byte{0xBB, 0xCC})
	pkt, err := frame(cur)
	require.NoError(t, err)
	require.Equal(t, uint32(3), pkt.payloadSize)
	require.Equal(t, byte(1), pkt.seq)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, pkt.payload)
	require.Equal(t, 0, cur.Size())
}

// 0xFFFFFF is the largest payload_size a 3-byte header can carry and is
// within maxPayloadSize, so it is not malformed: frame waits for the
// whole payload.
func TestFrameMaxPayloadSizeAwaitsFullPayload(t *testing.T) {
	cur := wirebuf.NewCursor()
	cur.Feed([]byte{0xFF, 0xFF, 0xFF, 0x00})
	_, err := frame(cur)
	require.ErrorIs(t, err, ErrInsufficientData)
	require.Equal(t, 4, cur.Size())
}

func TestPeekDiscriminatorDoesNotConsume(t *testing.T) {
	cur := wirebuf.NewCursor()
	cur.Feed([]byte{0x07, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00})
	tag, size, ok := peekDiscriminator(cur)
	require.True(t, ok)
	require.Equal(t, byte(0x00), tag)
	require.Equal(t, uint32(7), size)
	require.Equal(t, 7, cur.Size())
}

func TestWritePacketHeaderRoundTrips(t *testing.T) {
	wire := writePacketHeader([]byte{0xAA, 0xBB, 0xCC}, 5)
	cur := wirebuf.NewCursor()
	cur.Feed(wire)
	pkt, err := frame(cur)
	require.NoError(t, err)
	require.Equal(t, byte(5), pkt.seq)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, pkt.payload)
}
