// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package host

import (
	"context"
	"encoding/binary"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/pkg/errors"
)

type GetCounterInput struct {
	Address primitives.RecordAddress
}

type GetCounterOutput struct {
	Value uint64
}

// GetCounter is the read path: it decodes the counter out of a record without
// lending it to the program.
func (s *service) GetCounter(ctx context.Context, input *GetCounterInput) (*GetCounterOutput, error) {
	stored, found, err := s.persistence.ReadRecord(input.Address)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Errorf("record %s does not exist", input.Address)
	}
	if len(stored.Data) < protocol.COUNTER_SIZE_BYTES {
		return nil, errors.Wrapf(protocol.ErrBufferTooSmall, "record %s buffer is %d bytes", input.Address, len(stored.Data))
	}

	return &GetCounterOutput{
		Value: binary.LittleEndian.Uint64(stored.Data[:protocol.COUNTER_SIZE_BYTES]),
	}, nil
}
