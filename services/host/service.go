// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package host

import (
	"context"
	"github.com/hostvm/counter-program-go/instrumentation/metric"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/hostvm/counter-program-go/services/counter"
	"github.com/hostvm/counter-program-go/services/host/adapter"
	"github.com/orbs-network/scribe/log"
	"time"
)

var LogTag = log.Service("record-host")

type Config interface {
	ProgramIdentity() primitives.Identity
	MaxRecordSizeBytes() uint32
}

// Host lends ledger records to the program one invocation at a time and
// persists the mutated buffers only when the invocation succeeds.
type Host interface {
	ProcessInvocation(ctx context.Context, input *ProcessInvocationInput) (*ProcessInvocationOutput, error)
	CreateRecord(ctx context.Context, input *CreateRecordInput) (*CreateRecordOutput, error)
	GetCounter(ctx context.Context, input *GetCounterInput) (*GetCounterOutput, error)
}

type service struct {
	config      Config
	logger      log.Logger
	program     counter.Program
	persistence adapter.RecordPersistence
	metrics     *metrics
}

type metrics struct {
	invocationTime       *metric.Histogram
	invocationRate       *metric.Rate
	committedInvocations *metric.Gauge
	failedInvocations    *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		invocationTime:       m.NewLatency("Host.InvocationProcessTime.Millis", 10*time.Second),
		invocationRate:       m.NewRate("Host.InvocationsPerSecond"),
		committedInvocations: m.NewGauge("Host.CommittedInvocations.Count"),
		failedInvocations:    m.NewGauge("Host.FailedInvocations.Count"),
	}
}

func NewHost(config Config, program counter.Program, persistence adapter.RecordPersistence, parentLogger log.Logger, metricFactory metric.Factory) Host {
	return &service{
		config:      config,
		logger:      parentLogger.WithTags(LogTag),
		program:     program,
		persistence: persistence,
		metrics:     newMetrics(metricFactory),
	}
}
