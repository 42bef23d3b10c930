// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.Service("counter-program")

// Program applies counter state transitions to records the host lends for the
// duration of a single invocation. The program holds no state of its own;
// everything it knows lives in the record buffers.
type Program interface {
	Dispatch(callerIdentity primitives.Identity, records []*protocol.Record, instructionData []byte) error
}

type service struct {
	logger log.Logger
}

func NewCounterProgram(parentLogger log.Logger) Program {
	return &service{
		logger: parentLogger.WithTags(LogTag),
	}
}

func firstRecord(records []*protocol.Record) (*protocol.Record, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(protocol.ErrMissingRecord, "invocation supplied no record handles")
	}
	return records[0], nil
}
