// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"encoding/binary"
	"github.com/hostvm/counter-program-go/crypto/digest"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/protocol/primitives"
)

// AnIdentity derives a deterministic identity from a human-readable name, so
// tests read as scenarios rather than byte soup.
func AnIdentity(name string) primitives.Identity {
	identity, err := digest.CalcProgramIdentity(name)
	if err != nil {
		panic(err)
	}
	return identity
}

type recordBuilder struct {
	address  primitives.RecordAddress
	owner    primitives.Identity
	writable bool
	data     []byte
}

func Record() *recordBuilder {
	owner := AnIdentity("RecordOwner")
	return &recordBuilder{
		address:  digest.CalcRecordAddress(owner, []byte("a-record")),
		owner:    owner,
		writable: true,
		data:     make([]byte, protocol.COUNTER_SIZE_BYTES),
	}
}

func (b *recordBuilder) WithAddress(address primitives.RecordAddress) *recordBuilder {
	b.address = address
	return b
}

func (b *recordBuilder) WithOwner(owner primitives.Identity) *recordBuilder {
	b.owner = owner
	return b
}

func (b *recordBuilder) NotWritable() *recordBuilder {
	b.writable = false
	return b
}

func (b *recordBuilder) WithSizeBytes(sizeBytes int) *recordBuilder {
	b.data = make([]byte, sizeBytes)
	return b
}

func (b *recordBuilder) WithData(data []byte) *recordBuilder {
	b.data = data
	return b
}

// WithCounter encodes an already-initialized counter into the buffer.
func (b *recordBuilder) WithCounter(value uint64) *recordBuilder {
	binary.LittleEndian.PutUint64(b.data[:protocol.COUNTER_SIZE_BYTES], value)
	return b
}

func (b *recordBuilder) Build() *protocol.Record {
	return &protocol.Record{
		Address:  b.address,
		Owner:    b.owner,
		Writable: b.writable,
		Data:     b.data,
	}
}
