// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/hostvm/counter-program-go/protocol/primitives"
)

// StoredRecord is the persisted form of a record: the owning authority and
// the raw buffer. Implementations return private copies; callers own what
// they receive.
type StoredRecord struct {
	Owner primitives.Identity
	Data  []byte
}

type RecordPersistence interface {
	CreateRecord(address primitives.RecordAddress, owner primitives.Identity, sizeBytes uint32) error
	ReadRecord(address primitives.RecordAddress) (*StoredRecord, bool, error)
	WriteRecordData(address primitives.RecordAddress, data []byte) error
}
