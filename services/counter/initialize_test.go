// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter_test

import (
	"encoding/binary"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/services/counter"
	"github.com/hostvm/counter-program-go/test/builders"
	"github.com/hostvm/counter-program-go/test/with"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestInitializeWritesLittleEndianValue(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)

		for _, value := range []uint64{0, 1, 256, 0xdeadbeef, math.MaxUint64} {
			record := builders.Record().WithOwner(programIdentity).Build()

			err := program.Dispatch(programIdentity, []*protocol.Record{record}, protocol.EncodeInitializeInstruction(value))
			require.NoError(t, err)
			require.Equal(t, value, binary.LittleEndian.Uint64(record.Data), "counter %d was not encoded correctly", value)
		}
	})
}

func TestInitializeLeavesBytesBeyondCounterUntouched(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		record := builders.Record().WithOwner(programIdentity).WithSizeBytes(16).Build()

		err := program.Dispatch(programIdentity, []*protocol.Record{record}, protocol.EncodeInitializeInstruction(math.MaxUint64))
		require.NoError(t, err)
		require.EqualValues(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 0, 0, 0, 0}, record.Data)
	})
}

func TestInitializeRequiresMatchingOwner(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		record := builders.Record().WithOwner(builders.AnIdentity("SomeoneElse")).Build()

		err := program.Dispatch(programIdentity, []*protocol.Record{record}, protocol.EncodeInitializeInstruction(1))
		require.Equal(t, protocol.ErrAccessDenied, errors.Cause(err))
		require.True(t, record.IsZeroed(), "failed initialize must not mutate the record")
	})
}

func TestInitializeRequiresWritableRecord(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		record := builders.Record().WithOwner(programIdentity).NotWritable().Build()

		err := program.Dispatch(programIdentity, []*protocol.Record{record}, protocol.EncodeInitializeInstruction(1))
		require.Equal(t, protocol.ErrPermissionDenied, errors.Cause(err))
		require.True(t, record.IsZeroed(), "failed initialize must not mutate the record")
	})
}

func TestInitializeRejectsRecordHoldingNonZeroData(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		record := builders.Record().WithOwner(programIdentity).WithCounter(7).Build()
		snapshot := append([]byte(nil), record.Data...)

		err := program.Dispatch(programIdentity, []*protocol.Record{record}, protocol.EncodeInitializeInstruction(9))
		require.Equal(t, protocol.ErrAlreadyInitialized, errors.Cause(err))
		require.Equal(t, snapshot, record.Data, "failed initialize must leave the buffer byte-for-byte unchanged")
	})
}

func TestInitializeRejectsBufferShorterThanCounter(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		record := builders.Record().WithOwner(programIdentity).WithSizeBytes(4).Build()

		err := program.Dispatch(programIdentity, []*protocol.Record{record}, protocol.EncodeInitializeInstruction(1))
		require.Equal(t, protocol.ErrBufferTooSmall, errors.Cause(err))
		require.True(t, record.IsZeroed())
	})
}

// a counter initialized to zero is indistinguishable from an uninitialized
// record: the all-zero buffer is the only initialization marker, so a second
// zero-value initialize passes the check and rewrites the same zeroes
func TestInitializeWithZeroValueLeavesRecordUninitialized(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		record := builders.Record().WithOwner(programIdentity).Build()
		records := []*protocol.Record{record}

		err := program.Dispatch(programIdentity, records, protocol.EncodeInitializeInstruction(0))
		require.NoError(t, err)
		snapshot := append([]byte(nil), record.Data...)

		err = program.Dispatch(programIdentity, records, protocol.EncodeInitializeInstruction(0))
		require.NoError(t, err)
		require.Equal(t, snapshot, record.Data)
	})
}

func TestInitializeConsumesOnlyTheFirstRecord(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		program := counter.NewCounterProgram(harness.Logger)
		target := builders.Record().WithOwner(programIdentity).Build()
		extra := builders.Record().WithOwner(builders.AnIdentity("SomeoneElse")).WithCounter(99).Build()
		extraSnapshot := append([]byte(nil), extra.Data...)

		err := program.Dispatch(programIdentity, []*protocol.Record{target, extra}, protocol.EncodeInitializeInstruction(5))
		require.NoError(t, err)
		require.Equal(t, uint64(5), binary.LittleEndian.Uint64(target.Data))
		require.Equal(t, extraSnapshot, extra.Data, "records past the first must be ignored")
	})
}
