// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2023 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// clientEd25519Plugin implements the client_ed25519_signature
// authentication plugin used by MariaDB, a second registry member
// wired in to exercise filippo.io/edwards25519 (a direct teacher
// dependency) alongside mysql_native_password. It follows MariaDB's
// ref10 ed25519 signing scheme: sign the server's salt with a key
// derived from SHA512(password).
type clientEd25519Plugin struct{}

func init() {
	RegisterAuthPlugin(clientEd25519Plugin{})
}

func (clientEd25519Plugin) Name() string { return "client_ed25519_signature" }

func (clientEd25519Plugin) Respond(salt []byte, cfg *Config) ([]byte, error) {
	if cfg.Password == "" {
		return nil, nil
	}

	h := sha512.Sum512([]byte(cfg.Password))

	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return nil, err
	}
	pub := (&edwards25519.Point{}).ScalarBaseMult(s)

	mh := sha512.New()
	mh.Write(h[32:])
	mh.Write(salt)
	messageDigest := mh.Sum(nil)
	r, err := edwards25519.NewScalar().SetUniformBytes(messageDigest)
	if err != nil {
		return nil, err
	}
	R := (&edwards25519.Point{}).ScalarBaseMult(r)

	kh := sha512.New()
	kh.Write(R.Bytes())
	kh.Write(pub.Bytes())
	kh.Write(salt)
	hramDigest := kh.Sum(nil)
	k, err := edwards25519.NewScalar().SetUniformBytes(hramDigest)
	if err != nil {
		return nil, err
	}

	S := k.MultiplyAdd(k, s, r)

	return append(R.Bytes(), S.Bytes()...), nil
}
