// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"encoding/binary"
)

// Opcode is the first byte of an instruction buffer and selects which state
// transition the program performs.
type Opcode uint8

const (
	OPCODE_INITIALIZE Opcode = 0
	OPCODE_INCREMENT  Opcode = 1
)

const (
	COUNTER_SIZE_BYTES = 8

	// an initialize instruction is the opcode byte followed by the initial
	// counter value, little-endian
	INITIALIZE_INSTRUCTION_SIZE_BYTES = 1 + COUNTER_SIZE_BYTES
)

func EncodeInitializeInstruction(initialValue uint64) []byte {
	buf := make([]byte, INITIALIZE_INSTRUCTION_SIZE_BYTES)
	buf[0] = byte(OPCODE_INITIALIZE)
	binary.LittleEndian.PutUint64(buf[1:], initialValue)
	return buf
}

func EncodeIncrementInstruction() []byte {
	return []byte{byte(OPCODE_INCREMENT)}
}
