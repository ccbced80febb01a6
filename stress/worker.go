// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stress

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/DataDog/chaos-usemem/config"
	"github.com/DataDog/chaos-usemem/log"
	"github.com/DataDog/chaos-usemem/o11y/tags"
	"github.com/DataDog/chaos-usemem/process"
	"github.com/DataDog/chaos-usemem/types"
)

// WorkerReport is what a worker tells about its completed saturation
type WorkerReport struct {
	Index   int
	PID     int
	Bytes   int
	Elapsed time.Duration
}

// Worker burns cpu then saturates memory within the current process
type Worker interface {
	Run(ctx context.Context) (WorkerReport, error)
	// State returns where the worker is in its lifecycle
	State() types.WorkerState
}

// WorkerDeps are the building blocks a worker is made of
type WorkerDeps struct {
	Burner    CPUBurner
	Saturator MemorySaturator
	Entropy   EntropySource
	Allocator Allocator
	Process   process.Manager
}

type worker struct {
	index int
	cfg   config.Config
	deps  WorkerDeps
	state types.WorkerState
}

// NewWorker creates the worker with the given ordinal
func NewWorker(index int, cfg config.Config, deps WorkerDeps) Worker {
	return &worker{
		index: index,
		cfg:   cfg,
		deps:  deps,
		state: types.WorkerStateStarting,
	}
}

// Run executes the cpu burn phase to completion then fills a single memory region of the target size,
// any failure is returned as a types.WorkerError naming the worker and the requested size
func (w *worker) Run(ctx context.Context) (WorkerReport, error) {
	logger := log.FromContext(ctx).With(tags.WorkerKey, w.index)
	report := WorkerReport{
		Index: w.index,
		PID:   w.deps.Process.ProcessID(),
	}
	started := time.Now()

	w.transition(types.WorkerStateRunning)

	if w.cfg.CPUTime > 0 {
		logger.Infow(fmt.Sprintf("Wasting %d seconds of CPU time by busy-waiting ...", w.cfg.CPUTime), tags.CPUTimeKey, w.cfg.CPUTime)

		if err := w.deps.Burner.Burn(w.cfg.CPUTime); err != nil {
			return report, w.fail(w.cfg.TargetSize.Bytes(), err)
		}
	}

	chunkSize, err := w.cfg.ChunkSize.Int()
	if err != nil {
		return report, w.fail(w.cfg.ChunkSize.Bytes(), err)
	}

	chunk, err := FillChunk(w.deps.Allocator, w.deps.Entropy, chunkSize)
	if err != nil {
		return report, w.fail(w.cfg.ChunkSize.Bytes(), fmt.Errorf("unable to fill the random chunk: %w", err))
	}

	logger.Debugw("random chunk filled", tags.ChunkSizeKey, chunkSize)

	size, err := w.cfg.TargetSize.Int()
	if err != nil {
		return report, w.fail(w.cfg.TargetSize.Bytes(), err)
	}

	written, err := w.deps.Saturator.Saturate(size, chunk)
	if err != nil {
		return report, w.fail(w.cfg.TargetSize.Bytes(), fmt.Errorf("unable to saturate memory: %w", err))
	}

	report.Bytes = written
	report.Elapsed = time.Since(started)

	w.transition(types.WorkerStateDone)

	logger.Infow(fmt.Sprintf("Successfully written %d bytes of RAM.", written),
		tags.PidKey, report.PID,
		tags.SizeKey, humanize.IBytes(uint64(written)),
		tags.DurationKey, report.Elapsed,
	)

	return report, nil
}

func (w *worker) State() types.WorkerState {
	return w.state
}

func (w *worker) fail(size uint64, err error) error {
	w.transition(types.WorkerStateFailed)

	return types.WorkerError{
		Index: w.index,
		Size:  size,
		Err:   err,
	}
}

func (w *worker) transition(next types.WorkerState) {
	if w.state.CanTransitionTo(next) {
		w.state = next
	}
}
