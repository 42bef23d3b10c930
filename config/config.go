// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"time"
)

type HostConfig interface {
	// identity the counter program executes under, derived from its name
	ProgramName() string
	ProgramIdentity() primitives.Identity

	// ledger
	MaxRecordSizeBytes() uint32

	// instrumentation
	MetricsReportInterval() time.Duration
}
