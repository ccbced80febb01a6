// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build linux

package stress

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sys/unix"
)

type signalAlarm struct{}

// NewSignalAlarm returns an alarm backed by a real-time interval timer delivering SIGALRM
func NewSignalAlarm() Alarm {
	return signalAlarm{}
}

// Arm starts a one-shot ITIMER_REAL timer, the SIGALRM handler only sets the flag
func (signalAlarm) Arm(d time.Duration, fired *atomic.Bool) (func(), error) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(sigs, unix.SIGALRM)

	go func() {
		select {
		case <-sigs:
			fired.Store(true)
		case <-done:
		}
	}()

	var once sync.Once

	disarm := func() {
		once.Do(func() {
			_, _ = unix.Setitimer(unix.ItimerReal, unix.Itimerval{})
			signal.Stop(sigs)
			close(done)
		})
	}

	timer := unix.Itimerval{
		Value: unix.NsecToTimeval(d.Nanoseconds()),
	}

	if _, err := unix.Setitimer(unix.ItimerReal, timer); err != nil {
		disarm()

		return nil, fmt.Errorf("unable to set the real-time interval timer: %w", err)
	}

	return disarm, nil
}
