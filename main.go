// Copyright 2026 the counter-program-go authors
// This file is part of the counter-program-go library in the HostVM project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"github.com/hostvm/counter-program-go/bootstrap"
	"github.com/hostvm/counter-program-go/config"
	"github.com/hostvm/counter-program-go/crypto/digest"
	"github.com/hostvm/counter-program-go/protocol"
	"github.com/hostvm/counter-program-go/services/host"
	"github.com/orbs-network/scribe/log"
	"os"
)

func main() {
	initialValue := flag.Uint64("initial-value", 0, "counter value the demo record is initialized with")
	increments := flag.Int("increments", 3, "number of increment invocations to perform")
	flag.Parse()

	logger := log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()))
	cfg := config.ForProduction()

	ctx := context.Background()
	process := bootstrap.NewHostProcess(ctx, cfg, logger)

	if err := runCounterDemo(ctx, process.Host(), cfg, logger, *initialValue, *increments); err != nil {
		logger.Error("demo flow failed", log.Error(err))
		os.Exit(1)
	}

	process.GracefulShutdown(ctx)
}

// runCounterDemo allocates a program-owned record, initializes its counter
// and advances it a few times, mirroring what an external caller would submit
// through the host.
func runCounterDemo(ctx context.Context, h host.Host, cfg config.HostConfig, logger log.Logger, initialValue uint64, increments int) error {
	owner := cfg.ProgramIdentity()
	address := digest.CalcRecordAddress(owner, []byte("demo-counter"))
	refs := []*host.RecordRef{{Address: address, Writable: true}}

	if _, err := h.CreateRecord(ctx, &host.CreateRecordInput{
		Address:   address,
		Owner:     owner,
		SizeBytes: protocol.COUNTER_SIZE_BYTES,
	}); err != nil {
		return err
	}

	if _, err := h.ProcessInvocation(ctx, &host.ProcessInvocationInput{
		RecordRefs:      refs,
		InstructionData: protocol.EncodeInitializeInstruction(initialValue),
	}); err != nil {
		return err
	}

	for i := 0; i < increments; i++ {
		if _, err := h.ProcessInvocation(ctx, &host.ProcessInvocationInput{
			RecordRefs:      refs,
			InstructionData: protocol.EncodeIncrementInstruction(),
		}); err != nil {
			return err
		}
	}

	out, err := h.GetCounter(ctx, &host.GetCounterInput{Address: address})
	if err != nil {
		return err
	}

	logger.Info("demo finished", log.Uint64("counter", out.Value))
	return nil
}
