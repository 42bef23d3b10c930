// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package host

import (
	"context"
	"github.com/hostvm/counter-program-go/instrumentation/logfields"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type CreateRecordInput struct {
	Address   primitives.RecordAddress
	Owner     primitives.Identity
	SizeBytes uint32
}

type CreateRecordOutput struct {
}

// CreateRecord allocates a zeroed record in the ledger. Allocation is a host
// concern; programs only ever see records that already exist.
func (s *service) CreateRecord(ctx context.Context, input *CreateRecordInput) (*CreateRecordOutput, error) {
	if len(input.Address) == 0 {
		return nil, errors.New("record address is missing")
	}
	if len(input.Owner) == 0 {
		return nil, errors.New("record owner is missing")
	}
	if input.SizeBytes > s.config.MaxRecordSizeBytes() {
		return nil, errors.Errorf("requested record size %d exceeds the configured maximum %d", input.SizeBytes, s.config.MaxRecordSizeBytes())
	}

	if err := s.persistence.CreateRecord(input.Address, input.Owner, input.SizeBytes); err != nil {
		return nil, err
	}

	s.logger.Info("record allocated", logfields.RecordAddress(input.Address), logfields.Identity("owner", input.Owner), log.Uint32("size-bytes", input.SizeBytes))
	return &CreateRecordOutput{}, nil
}
