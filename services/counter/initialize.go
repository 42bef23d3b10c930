// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"encoding/binary"
	"github.com/hostvm/counter-program-go/instrumentation/logfields"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

// initialize writes the payload's little-endian uint64 into the first 8 bytes
// of the first record. Validation short-circuits on the first failure; the
// order of checks is part of the contract.
func (s *service) initialize(callerIdentity primitives.Identity, records []*protocol.Record, payload []byte) error {
	record, err := firstRecord(records)
	if err != nil {
		return err
	}

	if !record.Owner.Equal(callerIdentity) {
		return errors.Wrapf(protocol.ErrAccessDenied, "record %s is owned by %s, not by the calling program %s", record.Address, record.Owner, callerIdentity)
	}

	if !record.Writable {
		return errors.Wrapf(protocol.ErrPermissionDenied, "record %s", record.Address)
	}

	if !record.IsZeroed() {
		return errors.Wrapf(protocol.ErrAlreadyInitialized, "record %s holds nonzero data", record.Address)
	}

	if len(record.Data) < protocol.COUNTER_SIZE_BYTES {
		return errors.Wrapf(protocol.ErrBufferTooSmall, "record %s buffer is %d bytes, counter needs %d", record.Address, len(record.Data), protocol.COUNTER_SIZE_BYTES)
	}

	initialValue := binary.LittleEndian.Uint64(payload)
	binary.LittleEndian.PutUint64(record.Data[:protocol.COUNTER_SIZE_BYTES], initialValue)

	s.logger.Info("record initialized", logfields.RecordAddress(record.Address), log.Uint64("counter", initialValue))
	return nil
}
