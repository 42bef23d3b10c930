// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package host_test

import (
	"context"
	"github.com/hostvm/counter-program-go/config"
	"github.com/hostvm/counter-program-go/crypto/digest"
	"github.com/hostvm/counter-program-go/instrumentation/metric"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/hostvm/counter-program-go/services/counter"
	"github.com/hostvm/counter-program-go/services/host"
	"github.com/hostvm/counter-program-go/services/host/adapter"
	"github.com/hostvm/counter-program-go/services/host/adapter/memory"
	"github.com/hostvm/counter-program-go/test/builders"
	"github.com/hostvm/counter-program-go/test/with"
	"github.com/orbs-network/go-mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

type driver struct {
	config config.HostConfig
	host   host.Host
}

func newDriver(harness *with.LoggingHarness, persistence adapter.RecordPersistence) *driver {
	cfg := config.ForTests()
	registry := metric.NewRegistry()
	program := counter.NewCounterProgram(harness.Logger)
	return &driver{
		config: cfg,
		host:   host.NewHost(cfg, program, persistence, harness.Logger, registry),
	}
}

func (d *driver) aRecordAddress(seed string) primitives.RecordAddress {
	return digest.CalcRecordAddress(d.config.ProgramIdentity(), []byte(seed))
}

func (d *driver) createProgramOwnedRecord(t *testing.T, address primitives.RecordAddress) {
	_, err := d.host.CreateRecord(context.Background(), &host.CreateRecordInput{
		Address:   address,
		Owner:     d.config.ProgramIdentity(),
		SizeBytes: protocol.COUNTER_SIZE_BYTES,
	})
	require.NoError(t, err)
}

func (d *driver) invoke(address primitives.RecordAddress, instruction []byte) error {
	_, err := d.host.ProcessInvocation(context.Background(), &host.ProcessInvocationInput{
		RecordRefs:      []*host.RecordRef{{Address: address, Writable: true}},
		InstructionData: instruction,
	})
	return err
}

func (d *driver) readCounter(t *testing.T, address primitives.RecordAddress) uint64 {
	out, err := d.host.GetCounter(context.Background(), &host.GetCounterInput{Address: address})
	require.NoError(t, err)
	return out.Value
}

func TestProcessInvocationCommitsOnSuccess(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		d := newDriver(harness, memory.NewRecordPersistence(metric.NewRegistry()))
		address := d.aRecordAddress("commit-on-success")
		d.createProgramOwnedRecord(t, address)

		require.NoError(t, d.invoke(address, protocol.EncodeInitializeInstruction(7)))
		require.Equal(t, uint64(7), d.readCounter(t, address))

		require.NoError(t, d.invoke(address, protocol.EncodeIncrementInstruction()))
		require.Equal(t, uint64(8), d.readCounter(t, address))
	})
}

func TestProcessInvocationDiscardsStateOnFailure(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		d := newDriver(harness, memory.NewRecordPersistence(metric.NewRegistry()))
		address := d.aRecordAddress("discard-on-failure")
		d.createProgramOwnedRecord(t, address)

		require.NoError(t, d.invoke(address, protocol.EncodeInitializeInstruction(5)))

		err := d.invoke(address, protocol.EncodeInitializeInstruction(9))
		require.Equal(t, protocol.ErrAlreadyInitialized, errors.Cause(err))
		require.Equal(t, uint64(5), d.readCounter(t, address), "failed invocation must not change persisted state")
	})
}

func TestProcessInvocationRejectsReadOnlyMutation(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		d := newDriver(harness, memory.NewRecordPersistence(metric.NewRegistry()))
		address := d.aRecordAddress("read-only")
		d.createProgramOwnedRecord(t, address)

		_, err := d.host.ProcessInvocation(context.Background(), &host.ProcessInvocationInput{
			RecordRefs:      []*host.RecordRef{{Address: address, Writable: false}},
			InstructionData: protocol.EncodeIncrementInstruction(),
		})
		require.Equal(t, protocol.ErrPermissionDenied, errors.Cause(err))
		require.Equal(t, uint64(0), d.readCounter(t, address))
	})
}

func TestProcessInvocationRejectsMissingRecord(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		d := newDriver(harness, memory.NewRecordPersistence(metric.NewRegistry()))

		err := d.invoke(d.aRecordAddress("never-created"), protocol.EncodeIncrementInstruction())
		require.Error(t, err)
		require.Contains(t, err.Error(), "does not exist")
	})
}

func TestProcessInvocationPropagatesPersistenceReadErrors(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		persistenceMock := &adapter.RecordPersistenceMock{}
		persistenceMock.When("ReadRecord", mock.Any).Return(nil, false, errors.New("disk failure")).Times(1)

		d := newDriver(harness, persistenceMock)

		err := d.invoke(d.aRecordAddress("disk-failure"), protocol.EncodeIncrementInstruction())
		require.EqualError(t, errors.Cause(err), "disk failure")

		ok, errCalled := persistenceMock.Verify()
		require.True(t, ok, "persistence mock called incorrectly")
		require.NoError(t, errCalled)
	})
}

func TestProcessInvocationCommitsOnlyWritableRecords(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		target := digest.CalcRecordAddress(config.ForTests().ProgramIdentity(), []byte("target"))
		extra := digest.CalcRecordAddress(config.ForTests().ProgramIdentity(), []byte("extra"))

		persistenceMock := &adapter.RecordPersistenceMock{}
		persistenceMock.When("ReadRecord", target).Return(&adapter.StoredRecord{
			Owner: config.ForTests().ProgramIdentity(),
			Data:  make([]byte, protocol.COUNTER_SIZE_BYTES),
		}, true, nil).Times(1)
		persistenceMock.When("ReadRecord", extra).Return(&adapter.StoredRecord{
			Owner: builders.AnIdentity("SomeoneElse"),
			Data:  []byte{9, 9},
		}, true, nil).Times(1)
		persistenceMock.When("WriteRecordData", target, mock.Any).Return(nil).Times(1)

		d := newDriver(harness, persistenceMock)

		_, err := d.host.ProcessInvocation(context.Background(), &host.ProcessInvocationInput{
			RecordRefs: []*host.RecordRef{
				{Address: target, Writable: true},
				{Address: extra, Writable: false},
			},
			InstructionData: protocol.EncodeInitializeInstruction(3),
		})
		require.NoError(t, err)

		ok, errCalled := persistenceMock.Verify()
		require.True(t, ok, "read-only records must not be written back")
		require.NoError(t, errCalled)
	})
}
