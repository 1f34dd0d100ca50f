// Go MySQL Driver - A MySQL-Driver for Go's database/sql package
//
// Copyright 2017 The Go-MySQL-Driver Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysqlwire

import "github.com/hashicorp/go-multierror"

// multierrorAccumulator collects TypeMismatch diagnostics from
// Row.ScanAll without aborting the scan on the first bad cell
// (SPEC_FULL §4.9).
type multierrorAccumulator struct {
	err *multierror.Error
}

func newMultierrorAccumulator() *multierrorAccumulator {
	return &multierrorAccumulator{err: &multierror.Error{}}
}

func (a *multierrorAccumulator) append(err error) {
	a.err = multierror.Append(a.err, err)
}

func (a *multierrorAccumulator) errorOrNil() error {
	return a.err.ErrorOrNil()
}
