// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/orbs-network/go-mock"
)

type RecordPersistenceMock struct {
	mock.Mock
}

func (m *RecordPersistenceMock) CreateRecord(address primitives.RecordAddress, owner primitives.Identity, sizeBytes uint32) error {
	ret := m.Called(address, owner, sizeBytes)
	return ret.Error(0)
}

func (m *RecordPersistenceMock) ReadRecord(address primitives.RecordAddress) (*StoredRecord, bool, error) {
	ret := m.Called(address)
	if out := ret.Get(0); out != nil {
		return out.(*StoredRecord), ret.Bool(1), ret.Error(2)
	} else {
		return nil, ret.Bool(1), ret.Error(2)
	}
}

func (m *RecordPersistenceMock) WriteRecordData(address primitives.RecordAddress, data []byte) error {
	ret := m.Called(address, data)
	return ret.Error(0)
}
