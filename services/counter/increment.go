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
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

// increment advances the counter in the first record's leading 8 bytes by one,
// wrapping silently at the uint64 boundary. Unlike initialize, increment does
// not compare the record's owner against the caller; writability is the only
// access check.
func (s *service) increment(records []*protocol.Record) error {
	record, err := firstRecord(records)
	if err != nil {
		return err
	}

	if !record.Writable {
		return errors.Wrapf(protocol.ErrPermissionDenied, "record %s", record.Address)
	}

	if len(record.Data) < protocol.COUNTER_SIZE_BYTES {
		return errors.Wrapf(protocol.ErrBufferTooSmall, "record %s buffer is %d bytes, counter needs %d", record.Address, len(record.Data), protocol.COUNTER_SIZE_BYTES)
	}

	counter := binary.LittleEndian.Uint64(record.Data[:protocol.COUNTER_SIZE_BYTES]) + 1
	binary.LittleEndian.PutUint64(record.Data[:protocol.COUNTER_SIZE_BYTES], counter)

	s.logger.Info("counter incremented", logfields.RecordAddress(record.Address), log.Uint64("counter", counter))
	return nil
}
