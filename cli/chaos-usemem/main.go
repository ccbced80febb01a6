// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DataDog/chaos-usemem/command"
	"github.com/DataDog/chaos-usemem/config"
	"github.com/DataDog/chaos-usemem/coordinator"
	"github.com/DataDog/chaos-usemem/env"
	chaoslog "github.com/DataDog/chaos-usemem/log"
	"github.com/DataDog/chaos-usemem/o11y/tags"
	"github.com/DataDog/chaos-usemem/process"
	"github.com/DataDog/chaos-usemem/stress"
	"github.com/DataDog/chaos-usemem/sysinfo"
	"github.com/DataDog/chaos-usemem/types"
)

var rootCmd = &cobra.Command{
	Use:   "chaos-usemem [flags] TOTAL_SIZE",
	Short: "Allocate TOTAL_SIZE bytes of memory in each worker process and write every single byte of it",
	Long: `Allocate TOTAL_SIZE bytes of memory in each worker process and write every single byte of it,
optionally after wasting some CPU time, to drive the system into memory pressure or out of memory conditions.

Sizes accept the K, M and G suffixes (powers of 1000), add an i for powers of 1024 (e.g. 512M, 2GiB).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE:       loadConfig,
	RunE:          run,
}

var (
	log *zap.SugaredLogger
	cfg config.Config
	fs  = afero.NewOsFs()
)

func init() {
	if err := config.AddFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error

	cfg, err = config.Load(log, fs, cmd.Flags(), args)
	if err != nil {
		return err
	}

	log = chaoslog.NewZapLogger(cfg.Verbose)

	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := chaoslog.WithLogger(cmd.Context(), log)
	processManager := process.NewManager()
	allocator := stress.NewAllocator()

	deps := stress.WorkerDeps{
		Burner:    stress.NewCPUBurner(stress.NewSignalAlarm(), process.NewRuntime()),
		Saturator: stress.NewMemorySaturator(allocator),
		Entropy:   stress.NewEntropySource(fs, stress.DefaultEntropyPath),
		Allocator: allocator,
		Process:   processManager,
	}

	index, isWorker, err := env.LookupWorkerIndex()
	if err != nil {
		return err
	}

	// spawned workers only do their own share of the work
	if isWorker {
		_, err := stress.NewWorker(index, cfg, deps).Run(ctx)

		return err
	}

	if memory, err := sysinfo.Snapshot(); err != nil {
		log.Warnw("unable to read the system memory", tags.ErrorKey, err)
	} else {
		requested := cfg.TargetSize.Bytes() * uint64(cfg.Workers)

		log.Infow(fmt.Sprintf("Memory status: %s", memory),
			tags.TotalMemoryKey, memory.Total,
			tags.AvailableKey, memory.Available,
			tags.WorkersKey, cfg.Workers,
		)

		if !memory.Fits(requested) {
			log.Infow("the requested memory exceeds the available memory", tags.BytesKey, requested)
		}
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("unable to find the executable spawning workers: %w", err)
	}

	_, err = coordinator.New(cfg, coordinator.Deps{
		Process:    processManager,
		Commands:   command.NewFactory(),
		Executable: executable,
		Worker:     stress.NewWorker(types.OriginalWorkerIndex, cfg, deps),
	}).Run(ctx)

	return err
}

func main() {
	// diagnostics are always written, status lines wait for the loaded configuration
	log = chaoslog.NewZapLogger(false)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Errorw("chaos-usemem failed", tags.ErrorKey, err)

		_ = log.Sync()

		os.Exit(1)
	}
}
