// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/hostvm/counter-program-go/crypto/digest"
	"github.com/hostvm/counter-program-go/protocol/primitives"
	"github.com/pkg/errors"
	"time"
)

type hardCodedConfig struct {
	programName           string
	programIdentity       primitives.Identity
	maxRecordSizeBytes    uint32
	metricsReportInterval time.Duration
}

func NewHardCodedConfig(programName string, maxRecordSizeBytes uint32, metricsReportInterval time.Duration) (HostConfig, error) {
	identity, err := digest.CalcProgramIdentity(programName)
	if err != nil {
		return nil, errors.Wrap(err, "invalid program name")
	}
	return &hardCodedConfig{
		programName:           programName,
		programIdentity:       identity,
		maxRecordSizeBytes:    maxRecordSizeBytes,
		metricsReportInterval: metricsReportInterval,
	}, nil
}

// ForProduction is the default host preset.
func ForProduction() HostConfig {
	cfg, err := NewHardCodedConfig("CounterProgram", 10*1024, 30*time.Second)
	if err != nil {
		panic(err)
	}
	return cfg
}

// ForTests keeps records small and reports metrics rarely enough to stay out
// of test output.
func ForTests() HostConfig {
	cfg, err := NewHardCodedConfig("CounterProgram", 1024, 0)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *hardCodedConfig) ProgramName() string {
	return c.programName
}

func (c *hardCodedConfig) ProgramIdentity() primitives.Identity {
	return c.programIdentity
}

func (c *hardCodedConfig) MaxRecordSizeBytes() uint32 {
	return c.maxRecordSizeBytes
}

func (c *hardCodedConfig) MetricsReportInterval() time.Duration {
	return c.metricsReportInterval
}
