// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"github.com/hostvm/counter-program-go/protocol/primitives"
)

// Record is a host-owned byte buffer lent exclusively to a program for the
// duration of a single invocation. The program mutates Data in place and must
// not retain a reference past the call boundary; the host decides whether the
// mutation is persisted.
type Record struct {
	Address  primitives.RecordAddress
	Owner    primitives.Identity
	Writable bool
	Data     []byte
}

// IsZeroed reports whether every byte of the record's buffer is zero. An
// all-zero buffer is the only marker of an uninitialized record.
func (r *Record) IsZeroed() bool {
	for _, b := range r.Data {
		if b != 0 {
			return false
		}
	}
	return true
}
