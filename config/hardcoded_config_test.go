// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/hostvm/counter-program-go/crypto/digest"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNewHardCodedConfigDerivesProgramIdentity(t *testing.T) {
	cfg, err := NewHardCodedConfig("CounterProgram", 1024, time.Second)
	require.NoError(t, err)
	require.Len(t, []byte(cfg.ProgramIdentity()), digest.IDENTITY_SIZE_BYTES)
	require.Equal(t, "CounterProgram", cfg.ProgramName())
	require.EqualValues(t, 1024, cfg.MaxRecordSizeBytes())
}

func TestNewHardCodedConfigRequiresProgramName(t *testing.T) {
	_, err := NewHardCodedConfig("", 1024, time.Second)
	require.Error(t, err)
}

func TestPresetsAreValid(t *testing.T) {
	require.NotPanics(t, func() { ForProduction() })
	require.NotPanics(t, func() { ForTests() })
	require.True(t, ForProduction().ProgramIdentity().Equal(ForTests().ProgramIdentity()), "presets run the same program")
}
