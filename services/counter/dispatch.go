// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/pkg/errors"
)

// Dispatch routes the instruction to the transition selected by its opcode
// byte. Routing is a pure step; every failure is terminal for the invocation.
func (s *service) Dispatch(callerIdentity primitives.Identity, records []*protocol.Record, instructionData []byte) error {
	if len(instructionData) == 0 {
		return errors.Wrap(protocol.ErrMalformedInstruction, "instruction data is empty")
	}

	switch protocol.Opcode(instructionData[0]) {
	case protocol.OPCODE_INITIALIZE:
		if len(instructionData) != protocol.INITIALIZE_INSTRUCTION_SIZE_BYTES {
			return errors.Wrapf(protocol.ErrMalformedInstruction, "initialize instruction is %d bytes, expected exactly %d", len(instructionData), protocol.INITIALIZE_INSTRUCTION_SIZE_BYTES)
		}
		return s.initialize(callerIdentity, records, instructionData[1:])
	case protocol.OPCODE_INCREMENT:
		// any bytes trailing the opcode are ignored
		return s.increment(records)
	default:
		return errors.Wrapf(protocol.ErrUnsupportedOperation, "opcode %d", instructionData[0])
	}
}
