// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2012 Julien Schmidt. All rights reserved.
// http://www.julienschmidt.com
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

// Package wirelog holds the package-level diagnostic logger used for
// non-fatal guarded failures (TypeMismatch) and for malformed-packet /
// auth-failure reporting. It is never on the hot decode path: a
// well-formed stream produces zero log output.
package wirelog

import "go.uber.org/zap"

// L is the package-level structured logger. Replace it (e.g. in a
// binary's main) with zap.ReplaceGlobals-style injection via Set.
var L = zap.NewNop()

// Set installs logger as the package-level logger. Passing nil installs
// a no-op logger.
func Set(logger *zap.Logger) {
	if logger == nil {
		L = zap.NewNop()
		return
	}
	L = logger
}
