// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"github.com/hostvm/counter-program-go/test/with"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRegistryExportAll(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("a.gauge").Add(12)
	r.NewRate("a.rate")
	r.NewLatency("a.latency", time.Second)

	all := r.ExportAll()
	require.Len(t, all, 3)
	require.Contains(t, all, "a.gauge")
	require.Contains(t, all, "a.rate")
	require.Contains(t, all, "a.latency")
}

func TestRegistryString(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("a.gauge").Add(12)

	require.Contains(t, r.String(), "a.gauge")
	require.Contains(t, r.String(), "12")
}

func TestRegistryReportEveryShutsDownWithContext(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		ctx, cancel := context.WithCancel(context.Background())

		r := NewRegistry()
		r.NewGauge("a.gauge").Add(12)
		handle := r.ReportEvery(ctx, time.Millisecond, harness.Logger)

		time.Sleep(10 * time.Millisecond) // let at least one report fire
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
		defer shutdownCancel()
		handle.WaitUntilShutdown(shutdownCtx)
	})
}
