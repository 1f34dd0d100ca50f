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
	"github.com/mysqlwire/client/internal/wirearena"
	"github.com/mysqlwire/client/internal/wirelog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AuthGreeting is the decoded initial server handshake packet (§3, §4.7).
type AuthGreeting struct {
	Protocol           byte
	ServerVersion      string
	ThreadID           uint32
	Salt               []byte
	Capability         uint16
	Language           byte
	Status             uint16
	ExtendedCapability uint16
	AuthPluginLength   byte
	Salt2              []byte
}

// FullSalt returns Salt||Salt2, the combined challenge used by
// mysql_native_password and other salt-based auth plugins (§4.7).
func (g *AuthGreeting) FullSalt() []byte {
	full := make([]byte, 0, len(g.Salt)+len(g.Salt2))
	full = append(full, g.Salt...)
	full = append(full, g.Salt2...)
	return full
}

const reservedGreetingBytes = 10

// decodeAuthGreeting decodes the Auth-greeting payload (§4.7).
func decodeAuthGreeting(payload []byte, arena *wirearena.Arena) (*AuthGreeting, error) {
	pos := 0
	if len(payload) < 1 {
		return nil, malformed("empty Auth-greeting payload")
	}
	g := &AuthGreeting{Protocol: payload[pos]}
	pos++

	version, n, err := nulTermString(payload[pos:])
	if err != nil {
		return nil, err
	}
	g.ServerVersion = arena.Intern(version)
	pos += n

	if len(payload)-pos < 4 {
		return nil, malformed("short Auth-greeting payload: got %d bytes", len(payload))
	}
	g.ThreadID = readUint32(payload[pos : pos+4])
	pos += 4

	salt, n, err := nulTermString(payload[pos:])
	if err != nil {
		return nil, err
	}
	g.Salt = arena.Alloc(salt)
	pos += n

	if len(payload)-pos < 2+1+2+2+1+reservedGreetingBytes {
		return nil, malformed("short Auth-greeting payload: got %d bytes", len(payload))
	}
	g.Capability = readUint16(payload[pos : pos+2])
	pos += 2
	g.Language = payload[pos]
	pos++
	g.Status = readUint16(payload[pos : pos+2])
	pos += 2
	g.ExtendedCapability = readUint16(payload[pos : pos+2])
	pos += 2
	g.AuthPluginLength = payload[pos]
	pos++
	pos += reservedGreetingBytes

	salt2, n, err := nulTermString(payload[pos:])
	if err != nil {
		return nil, err
	}
	g.Salt2 = arena.Alloc(salt2)
	pos += n

	return g, nil
}

// authPhase is one state of the per-connection authentication state
// machine (§4.7). State lives here, on a value the caller owns one per
// connection — never in a package-level singleton (spec.md §9).
type authPhase int

const (
	AwaitingGreeting authPhase = iota
	AwaitingLoginResult
	Authenticated
	Failed
)

func (p authPhase) String() string {
	switch p {
	case AwaitingGreeting:
		return "AwaitingGreeting"
	case AwaitingLoginResult:
		return "AwaitingLoginResult"
	case Authenticated:
		return "Authenticated"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// AuthState drives one connection's handshake: AwaitingGreeting ->
// AwaitingLoginResult -> Authenticated, or -> Failed on a server Error
// (§4.7). It is created fresh per connection; cancellation (the
// transport aborting before Authenticated) is handled by simply
// discarding the AuthState — no retry happens at this layer.
type AuthState struct {
	cfg    *Config
	phase  authPhase
	plugin AuthPlugin
	failed *AuthFailedError
}

// NewAuthState returns a fresh state machine in AwaitingGreeting for one
// connection, using cfg to select credentials and the auth plugin.
func NewAuthState(cfg *Config) *AuthState {
	return &AuthState{cfg: cfg, phase: AwaitingGreeting}
}

// Phase returns the current state.
func (as *AuthState) Phase() authPhase {
	return as.phase
}

// Err returns the *AuthFailedError once a server Error has moved the state
// to Failed, else nil. When Failed was reached on an unexpected reply kind,
// Err returns nil; that error is only returned by HandleLoginResult.
func (as *AuthState) Err() error {
	if as.failed == nil {
		return nil
	}
	return as.failed
}

// HandleGreeting consumes the decoded Auth-greeting, computes the
// mysql_native_password (or configured plugin's) challenge response,
// builds the login packet, and writes it via the supplied transport
// callback (§6, §4.7). It transitions AwaitingGreeting -> AwaitingLoginResult.
func (as *AuthState) HandleGreeting(g *AuthGreeting, write func([]byte) error) error {
	if as.phase != AwaitingGreeting {
		return errors.Errorf("mysqlwire: HandleGreeting called in phase %s", as.phase)
	}

	plugin, ok := LookupAuthPlugin(as.cfg.AuthPluginName)
	if !ok {
		return errors.Errorf("mysqlwire: unknown auth plugin %q", as.cfg.AuthPluginName)
	}
	as.plugin = plugin

	token, err := plugin.Respond(g.FullSalt(), as.cfg)
	if err != nil {
		return errors.Wrap(err, "mysqlwire: computing auth response")
	}

	login := buildLoginPacket(as.cfg, g.Capability, token)
	if err := write(writePacketHeader(login, 1)); err != nil {
		return errors.Wrap(err, "mysqlwire: writing login packet")
	}

	as.phase = AwaitingLoginResult
	return nil
}

// HandleLoginResult consumes the reply to the login packet: an OK
// transitions to Authenticated, an Error transitions to the terminal
// Failed state carrying the server's error (§4.7).
func (as *AuthState) HandleLoginResult(reply *Reply) error {
	if as.phase != AwaitingLoginResult {
		return errors.Errorf("mysqlwire: HandleLoginResult called in phase %s", as.phase)
	}

	switch reply.Kind() {
	case KindOk:
		as.phase = Authenticated
		return nil
	case KindError:
		as.failed = &AuthFailedError{ServerError: reply.Error()}
		as.phase = Failed
		wirelog.L.Warn("mysqlwire: authentication failed",
			zap.Uint16("code", as.failed.Code),
			zap.String("sqlstate", as.failed.SQLState),
		)
		return as.failed
	default:
		as.phase = Failed
		return errors.Errorf("mysqlwire: unexpected reply kind %v awaiting login result", reply.Kind())
	}
}
