// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2023 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupAuthPluginBuiltins(t *testing.T) {
	native, ok := LookupAuthPlugin("mysql_native_password")
	require.True(t, ok)
	require.Equal(t, "mysql_native_password", native.Name())

	ed25519, ok := LookupAuthPlugin("client_ed25519_signature")
	require.True(t, ok)
	require.Equal(t, "client_ed25519_signature", ed25519.Name())
}

func TestLookupAuthPluginUnknown(t *testing.T) {
	_, ok := LookupAuthPlugin("does_not_exist")
	require.False(t, ok)
}

type stubPlugin struct{ name string }

func (s stubPlugin) Name() string { return s.name }
func (s stubPlugin) Respond(salt []byte, cfg *Config) ([]byte, error) {
	return []byte("stub"), nil
}

func TestRegisterAuthPluginThenLookup(t *testing.T) {
	RegisterAuthPlugin(stubPlugin{name: "test_stub_plugin"})
	p, ok := LookupAuthPlugin("test_stub_plugin")
	require.True(t, ok)
	resp, err := p.Respond(nil, &Config{})
	require.NoError(t, err)
	require.Equal(t, []byte("stub"), resp)
}
