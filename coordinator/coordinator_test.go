// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package coordinator_test

import (
	"context"
	"errors"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/DataDog/chaos-usemem/command"
	"github.com/DataDog/chaos-usemem/config"
	. "github.com/DataDog/chaos-usemem/coordinator"
	"github.com/DataDog/chaos-usemem/env"
	"github.com/DataDog/chaos-usemem/log"
	"github.com/DataDog/chaos-usemem/memsize"
	"github.com/DataDog/chaos-usemem/process"
	"github.com/DataDog/chaos-usemem/stress"
	"github.com/DataDog/chaos-usemem/types"
)

var _ = Describe("Coordinator", func() {
	const (
		executable = "/usr/local/bin/chaos-usemem"
		pgid       = 100
	)

	var (
		ctx     context.Context
		cfg     config.Config
		manager *process.ManagerMock
		factory *command.FactoryMock
		worker  *stress.WorkerMock
		cmds    map[int]*command.CmdMock
	)

	// expectSpawn registers a worker process command for the given ordinal
	expectSpawn := func(index int, startErr error) *command.CmdMock {
		cmd := &command.CmdMock{}
		cmd.On("Start").Return(startErr).Once()
		cmd.On("PID").Return(1000 + index).Maybe()
		cmds[index] = cmd

		factory.On("NewCmd", mock.Anything, executable, cfg.Args(), []string{env.WorkerIndexEntry(index)}).Return(cmd).Once()

		return cmd
	}

	newCoordinator := func() *Coordinator {
		return New(cfg, Deps{
			Process:    manager,
			Commands:   factory,
			Executable: executable,
			Worker:     worker,
		})
	}

	BeforeEach(func() {
		ctx = log.WithLogger(context.Background(), zaptest.NewLogger(GinkgoT()).Sugar())
		cfg = config.Config{
			TargetSize: memsize.MustParse("64Mi"),
			ChunkSize:  memsize.MustParse("4Mi"),
			Workers:    3,
			Verbose:    true,
		}

		manager = &process.ManagerMock{}
		manager.On("NewProcessGroup").Return(pgid, nil).Once()
		manager.On("ProcessID").Return(pgid).Maybe()

		factory = &command.FactoryMock{}
		worker = &stress.WorkerMock{}
		cmds = map[int]*command.CmdMock{}
	})

	AfterEach(func() {
		manager.AssertExpectations(GinkgoT())
		factory.AssertExpectations(GinkgoT())
		worker.AssertExpectations(GinkgoT())

		for _, cmd := range cmds {
			cmd.AssertExpectations(GinkgoT())
		}
	})

	Context("every worker succeeds", func() {
		It("spawns N-1 workers, runs the first one itself and waits for exactly N-1 exits", func() {
			for index := 2; index <= 3; index++ {
				cmd := expectSpawn(index, nil)
				cmd.On("Wait").Return(nil).Once()
				cmd.On("ExitCode").Return(0).Once()
			}

			worker.On("Run", mock.Anything).Return(stress.WorkerReport{Index: 1, Bytes: 64 << 20}, nil).Once()

			result, err := newCoordinator().Run(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ProcessGroupID).To(Equal(pgid))
			Expect(result.Workers).To(HaveLen(3))

			for i, w := range result.Workers {
				Expect(w.Index).To(Equal(i + 1))
				Expect(w.State).To(Equal(types.WorkerStateDone))
				Expect(w.ExitCode).To(Equal(0))
			}

			Expect(result.Workers[0].PID).To(Equal(pgid))
			Expect(result.Workers[2].PID).To(Equal(1003))

			waits := 0
			for _, cmd := range cmds {
				for _, call := range cmd.Calls {
					if call.Method == "Wait" {
						waits++
					}
				}
			}
			Expect(waits).To(Equal(2))

			Expect(result.Pending()).To(BeEmpty())
			manager.AssertNotCalled(GinkgoT(), "SignalGroup", mock.Anything, mock.Anything)
		})

		It("neither spawns nor waits with a single worker", func() {
			cfg.Workers = 1
			worker.On("Run", mock.Anything).Return(stress.WorkerReport{Index: 1}, nil).Once()

			result, err := newCoordinator().Run(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Workers).To(HaveLen(1))
			Expect(result.Workers[0].State).To(Equal(types.WorkerStateDone))

			factory.AssertNotCalled(GinkgoT(), "NewCmd", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	})

	Context("a worker cannot be spawned", func() {
		BeforeEach(func() {
			cfg.Workers = 4
		})

		It("terminates the whole process group and spawns no further worker", func() {
			expectSpawn(2, nil)
			expectSpawn(3, errors.New("fork/exec: resource temporarily unavailable"))
			manager.On("SignalGroup", pgid, syscall.SIGTERM).Return(nil).Once()

			result, err := newCoordinator().Run(ctx)
			Expect(err).To(MatchError(ErrSpawn))
			Expect(err.Error()).To(ContainSubstring("unable to spawn worker 3"))

			Expect(result.Workers[1].State).To(Equal(types.WorkerStateRunning))
			Expect(result.Workers[2].State).To(Equal(types.WorkerStateFailed))
			Expect(result.Workers[3].State).To(Equal(types.WorkerStateStarting))
			Expect(result.Pending()).To(Equal([]int{1, 2, 4}))

			factory.AssertNumberOfCalls(GinkgoT(), "NewCmd", 2)
			worker.AssertNotCalled(GinkgoT(), "Run", mock.Anything)
			cmds[2].AssertNotCalled(GinkgoT(), "Wait")
		})

		It("reports the signaling failure along with the spawn failure", func() {
			expectSpawn(2, errors.New("EAGAIN"))
			manager.On("SignalGroup", pgid, syscall.SIGTERM).Return(errors.New("ESRCH")).Once()

			_, err := newCoordinator().Run(ctx)
			Expect(err).To(MatchError(ErrSpawn))
			Expect(err.Error()).To(ContainSubstring("ESRCH"))
		})
	})

	It("does not spawn anything when the process group cannot be created", func() {
		manager.ExpectedCalls = nil
		manager.On("NewProcessGroup").Return(process.NotFoundProcessPID, errors.New("EPERM")).Once()

		_, err := newCoordinator().Run(ctx)
		Expect(err).To(MatchError(ContainSubstring("unable to create the workers process group: EPERM")))

		factory.AssertNotCalled(GinkgoT(), "NewCmd", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	Context("a worker fails", func() {
		It("waits for every child and reports killed children", func() {
			killed := expectSpawn(2, nil)
			killed.On("Wait").Return(errors.New("signal: killed")).Once()
			killed.On("ExitCode").Return(-1).Once()

			succeeded := expectSpawn(3, nil)
			succeeded.On("Wait").Return(nil).Once()
			succeeded.On("ExitCode").Return(0).Once()

			worker.On("Run", mock.Anything).Return(stress.WorkerReport{Index: 1}, nil).Once()

			result, err := newCoordinator().Run(ctx)
			Expect(err).To(MatchError(ContainSubstring("worker 2 (pid 1002) did not complete: signal: killed")))

			Expect(result.Workers[0].State).To(Equal(types.WorkerStateDone))
			Expect(result.Workers[1].State).To(Equal(types.WorkerStateFailed))
			Expect(result.Workers[1].ExitCode).To(Equal(-1))
			Expect(result.Workers[2].State).To(Equal(types.WorkerStateDone))
		})

		It("still waits for spawned workers when the original worker fails", func() {
			for index := 2; index <= 3; index++ {
				cmd := expectSpawn(index, nil)
				cmd.On("Wait").Return(nil).Once()
				cmd.On("ExitCode").Return(0).Once()
			}

			workerErr := types.WorkerError{Index: 1, Size: 64 << 20, Err: stress.ErrAllocation}
			worker.On("Run", mock.Anything).Return(stress.WorkerReport{Index: 1}, workerErr).Once()

			result, err := newCoordinator().Run(ctx)
			Expect(err).To(MatchError(stress.ErrAllocation))
			Expect(result.Workers[0].State).To(Equal(types.WorkerStateFailed))
			Expect(result.Workers[1].State).To(Equal(types.WorkerStateDone))
			Expect(result.Workers[2].State).To(Equal(types.WorkerStateDone))
		})
	})
})
