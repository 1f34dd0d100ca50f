// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2023 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "sync"

// AuthPlugin computes the challenge-response bytes for one authentication
// method, given the server's salt and the connection Config. The
// registry below is process-wide and stateless (it just maps a name to a
// stateless algorithm); the plugin selected for one connection's
// handshake is held on that connection's AuthState, never in the
// registry itself, and the computed response bytes go straight into the
// login packet without being retained (spec.md §9's
// "process-wide auth singleton" smell applies to state, not to the
// registry of available algorithms).
type AuthPlugin interface {
	// Name returns the plugin's wire name, e.g. "mysql_native_password".
	Name() string

	// Respond computes the auth-response bytes to place in the login
	// packet, given the server's salt bytes and the connection's Config.
	// An empty password yields an empty response.
	Respond(salt []byte, cfg *Config) ([]byte, error)
}

// pluginRegistry is a name -> AuthPlugin lookup table.
type pluginRegistry struct {
	mu      sync.RWMutex
	plugins map[string]AuthPlugin
}

var globalPluginRegistry = &pluginRegistry{plugins: make(map[string]AuthPlugin)}

// RegisterAuthPlugin registers plugin in the global registry under
// plugin.Name(). Intended to be called from init() in the file that
// implements a given plugin, mirroring the teacher's registration idiom.
func RegisterAuthPlugin(plugin AuthPlugin) {
	globalPluginRegistry.mu.Lock()
	defer globalPluginRegistry.mu.Unlock()
	globalPluginRegistry.plugins[plugin.Name()] = plugin
}

// LookupAuthPlugin returns the registered plugin for name, if any.
func LookupAuthPlugin(name string) (AuthPlugin, bool) {
	globalPluginRegistry.mu.RLock()
	defer globalPluginRegistry.mu.RUnlock()
	p, ok := globalPluginRegistry.plugins[name]
	return p, ok
}
