// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

// Config holds the handshake-relevant connection parameters. DSN parsing,
// pooling and retry policy live above this codec and are out of scope
// (spec.md §1); Config carries only what the auth state machine and
// login packet builder need.
type Config struct {
	User     string
	Password string
	Schema   string // optional; empty means no default schema

	// Charset is the 1-byte charset id sent in the login packet.
	// NewConfig sets it to 0x21 (utf8_general_ci) when zero; a Config
	// built without NewConfig sends the value as is.
	Charset byte

	// AuthPluginName selects which registered AuthPlugin computes the
	// challenge response. NewConfig sets it to "mysql_native_password"
	// when empty; an empty name is otherwise an unknown plugin.
	AuthPluginName string
}

// Option configures a Config.
type Option func(*Config)

// WithCredentials sets the username and password.
func WithCredentials(user, password string) Option {
	return func(c *Config) {
		c.User = user
		c.Password = password
	}
}

// WithSchema sets the default schema to request during login.
func WithSchema(schema string) Option {
	return func(c *Config) {
		c.Schema = schema
	}
}

// WithAuthPlugin selects a non-default AuthPlugin by name.
func WithAuthPlugin(name string) Option {
	return func(c *Config) {
		c.AuthPluginName = name
	}
}

// NewConfig builds a Config from options, filling in defaults.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{Charset: 0x21, AuthPluginName: "mysql_native_password"}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Charset == 0 {
		cfg.Charset = 0x21
	}
	if cfg.AuthPluginName == "" {
		cfg.AuthPluginName = "mysql_native_password"
	}
	return cfg
}
