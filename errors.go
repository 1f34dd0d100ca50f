// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2013 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"errors"
	"fmt"

	"github.com/mysqlwire/client/internal/wirelog"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInsufficientData is not a true error: it signals that the cursor
// does not yet hold a full packet (or payload) and the caller must feed
// more bytes and call ConsumePartial again. Any partially-decoded state
// is preserved across the call.
var ErrInsufficientData = errors.New("mysqlwire: insufficient data, feed more bytes and retry")

// MalformedPacketError is returned when the discriminator byte is
// outside the defined set, a reserved LENENC prefix appears where it must
// not, or a decoder finds the framed payload too short for its mandatory
// fixed-width fields. Bytes left over after a decoder's last field are
// not checked against the packet's declared payload_size. Fatal for the
// connection.
type MalformedPacketError struct {
	Reason string
}

func (e *MalformedPacketError) Error() string {
	return "mysqlwire: malformed packet: " + e.Reason
}

// malformed builds a *MalformedPacketError and logs it once at the
// decoder boundary, so every MalformedPacket path (§9) is diagnosable
// without each decoder carrying its own wirelog call.
func malformed(reason string, args ...interface{}) error {
	msg := fmt.Sprintf(reason, args...)
	wirelog.L.Warn("mysqlwire: malformed packet", zap.String("reason", msg))
	return pkgerrors.WithStack(&MalformedPacketError{Reason: msg})
}

// ServerError is a decoded MySQL ERR_Packet. It is non-fatal at the codec
// layer: the caller sees Reply.Kind() == KindError and may decide how to
// proceed.
type ServerError struct {
	Code     uint16
	SQLState string
	Message  string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("mysqlwire: server error %d (%s): %s", e.Code, e.SQLState, e.Message)
}

// AuthFailedError wraps a ServerError seen during AwaitingLoginResult.
// Fatal for the connection: the auth state machine transitions to Failed
// and will not retry.
type AuthFailedError struct {
	*ServerError
}

func (e *AuthFailedError) Error() string {
	return "mysqlwire: authentication failed: " + e.ServerError.Error()
}

// TypeMismatchError describes a Field accessor called for a variant that
// does not match the column's declared type. The Field accessors do not
// return it: they return a zero value and log the mismatch via wirelog.
// A caller can return it from a Row.ScanAll callback to report the
// mismatch. It carries no stack trace (pkgerrors.WithStack is
// deliberately not applied): it is a routine guard, not a bug signal.
type TypeMismatchError struct {
	Column   string
	Declared FieldType
	Wanted   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("mysqlwire: field %q is %s, not %s", e.Column, e.Declared, e.Wanted)
}

// OutOfMemoryError is returned when the Arena capability refuses an
// allocation. Fatal for the reply being decoded.
type OutOfMemoryError struct {
	Requested int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("mysqlwire: arena out of memory (requested %d bytes)", e.Requested)
}
