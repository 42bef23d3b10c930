// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"github.com/hostvm/counter-program-go/instrumentation/metric"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/hostvm/counter-program-go/services/host/adapter"
	"github.com/pkg/errors"
	"sync"
)

type metrics struct {
	numberOfRecords *metric.Gauge
	residentBytes   *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfRecords: m.NewGauge("RecordPersistence.TotalNumberOfRecords.Count"),
		residentBytes:   m.NewGauge("RecordPersistence.ResidentBytes.Count"),
	}
}

type storedRecord struct {
	owner primitives.Identity
	data  []byte
}

type InMemoryRecordPersistence struct {
	metrics *metrics
	mutex   sync.RWMutex
	records map[string]*storedRecord
}

func NewRecordPersistence(metricFactory metric.Factory) *InMemoryRecordPersistence {
	return &InMemoryRecordPersistence{
		metrics: newMetrics(metricFactory),
		records: make(map[string]*storedRecord),
	}
}

func (p *InMemoryRecordPersistence) CreateRecord(address primitives.RecordAddress, owner primitives.Identity, sizeBytes uint32) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, ok := p.records[address.KeyForMap()]; ok {
		return errors.Errorf("record %s already exists", address)
	}

	p.records[address.KeyForMap()] = &storedRecord{
		owner: owner,
		data:  make([]byte, sizeBytes),
	}

	p.metrics.numberOfRecords.Inc()
	p.metrics.residentBytes.Add(int64(sizeBytes))
	return nil
}

func (p *InMemoryRecordPersistence) ReadRecord(address primitives.RecordAddress) (*adapter.StoredRecord, bool, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	record, ok := p.records[address.KeyForMap()]
	if !ok {
		return nil, false, nil
	}

	// callers receive a private copy of the buffer; the stored one changes
	// only through WriteRecordData
	data := make([]byte, len(record.data))
	copy(data, record.data)

	return &adapter.StoredRecord{Owner: record.owner, Data: data}, true, nil
}

func (p *InMemoryRecordPersistence) WriteRecordData(address primitives.RecordAddress, data []byte) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	record, ok := p.records[address.KeyForMap()]
	if !ok {
		return errors.Errorf("record %s does not exist", address)
	}

	if len(data) != len(record.data) {
		return errors.Errorf("record %s is %d bytes and cannot be resized to %d", address, len(record.data), len(data))
	}

	copy(record.data, data)
	return nil
}
