// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/hostvm/counter-program-go/config"
	"github.com/hostvm/counter-program-go/instrumentation/logfields"
	"github.com/hostvm/counter-program-go/instrumentation/metric"
	"github.com/hostvm/counter-program-go/services/counter"
	"github.com/hostvm/counter-program-go/services/host"
	"github.com/hostvm/counter-program-go/services/host/adapter/memory"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// HostProcess wires the ledger, the counter program and the host service
// together and owns their lifecycle.
type HostProcess struct {
	govnr.TreeSupervisor

	logger         log.Logger
	cancelFunc     context.CancelFunc
	metricRegistry metric.Registry
	host           host.Host
	shutdownCond   *sync.Cond
}

func NewHostProcess(parentCtx context.Context, cfg config.HostConfig, logger log.Logger) *HostProcess {
	ctx, cancel := context.WithCancel(parentCtx)

	registry := metric.NewRegistry()
	persistence := memory.NewRecordPersistence(registry)
	program := counter.NewCounterProgram(logger)
	hostService := host.NewHost(cfg, program, persistence, logger, registry)

	p := &HostProcess{
		logger:         logger,
		cancelFunc:     cancel,
		metricRegistry: registry,
		host:           hostService,
		shutdownCond:   sync.NewCond(&sync.Mutex{}),
	}

	if interval := cfg.MetricsReportInterval(); interval > 0 {
		p.Supervise(registry.ReportEvery(ctx, interval, logger))
	}

	logger.Info("host process started", log.String("program", cfg.ProgramName()), logfields.Identity("program-identity", cfg.ProgramIdentity()))
	return p
}

func (p *HostProcess) Host() host.Host {
	return p.host
}

func (p *HostProcess) GracefulShutdown(shutdownContext context.Context) {
	p.cancelFunc()
	p.WaitUntilShutdown(shutdownContext)
	p.shutdownCond.Broadcast()
}

// WaitUntilShutdownByOSSignal blocks until the process is told to shut down,
// either by an OS signal or by a direct GracefulShutdown call.
func (p *HostProcess) WaitUntilShutdownByOSSignal() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	govnr.Once(logfields.GovnrErrorer(p.logger), func() {
		<-signalChan
		p.logger.Info("terminating host process gracefully due to os signal received")
		p.GracefulShutdown(context.Background())
	})

	p.shutdownCond.L.Lock()
	p.shutdownCond.Wait()
	p.shutdownCond.L.Unlock()
}
