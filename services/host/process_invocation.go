// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package host

import (
	"context"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

// RecordRef names a ledger record an invocation wants lent to the program,
// and whether the caller requests write access to it.
type RecordRef struct {
	Address  primitives.RecordAddress
	Writable bool
}

type ProcessInvocationInput struct {
	RecordRefs      []*RecordRef
	InstructionData []byte
}

type ProcessInvocationOutput struct {
}

func (s *service) ProcessInvocation(ctx context.Context, input *ProcessInvocationInput) (*ProcessInvocationOutput, error) {
	start := time.Now()
	defer s.metrics.invocationTime.RecordSince(start)

	records, err := s.lendRecords(input.RecordRefs)
	if err != nil {
		s.metrics.failedInvocations.Inc()
		return nil, err
	}

	if err := s.program.Dispatch(s.config.ProgramIdentity(), records, input.InstructionData); err != nil {
		s.metrics.failedInvocations.Inc()
		s.logger.Info("invocation rejected by program", log.Error(err))
		return nil, err
	}

	if err := s.commitRecords(records); err != nil {
		s.metrics.failedInvocations.Inc()
		return nil, err
	}

	s.metrics.committedInvocations.Inc()
	s.metrics.invocationRate.Measure(1)
	return &ProcessInvocationOutput{}, nil
}

// lendRecords resolves each ref against the ledger and hands the program a
// private copy of every buffer; mutations reach persistence only through
// commitRecords after the program reported success.
func (s *service) lendRecords(refs []*RecordRef) ([]*protocol.Record, error) {
	records := make([]*protocol.Record, 0, len(refs))
	for _, ref := range refs {
		stored, found, err := s.persistence.ReadRecord(ref.Address)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errors.Errorf("record %s does not exist", ref.Address)
		}
		records = append(records, &protocol.Record{
			Address:  ref.Address,
			Owner:    stored.Owner,
			Writable: ref.Writable,
			Data:     stored.Data,
		})
	}
	return records, nil
}

func (s *service) commitRecords(records []*protocol.Record) error {
	for _, record := range records {
		if !record.Writable {
			continue
		}
		if err := s.persistence.WriteRecordData(record.Address, record.Data); err != nil {
			return errors.Wrapf(err, "failed committing record %s", record.Address)
		}
	}
	return nil
}
