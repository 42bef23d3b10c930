// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/orbs-network/scribe/log"
)

func RecordAddress(value primitives.RecordAddress) *log.Field {
	return log.Stringable("record-address", value)
}

func Identity(key string, value primitives.Identity) *log.Field {
	return log.Stringable(key, value)
}
