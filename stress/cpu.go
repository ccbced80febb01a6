// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stress

import (
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/DataDog/chaos-usemem/config"
	"github.com/DataDog/chaos-usemem/process"
)

// seriesResetThreshold bounds the series index so the sum never overflows
const seriesResetThreshold = 1e9

// Alarm delivers a one-shot asynchronous notification
type Alarm interface {
	// Arm schedules fired to be set once d has elapsed, the returned func cancels the alarm
	Arm(d time.Duration, fired *atomic.Bool) (disarm func(), err error)
}

type cpuBurner struct {
	alarm   Alarm
	runtime process.Runtime
}

// NewCPUBurner creates a CPU burner relying on the given alarm to stop
func NewCPUBurner(alarm Alarm, runtime process.Runtime) CPUBurner {
	return cpuBurner{
		alarm:   alarm,
		runtime: runtime,
	}
}

// Burn sums a converging series on a locked OS thread until the alarm fires
func (c cpuBurner) Burn(seconds uint) error {
	if seconds == 0 {
		return nil
	}

	if uint64(seconds) > config.MaxCPUTime {
		return fmt.Errorf("a %d seconds cpu burn exceeds the maximum of %d seconds", seconds, config.MaxCPUTime)
	}

	// lock the goroutine on the actual thread so a single core does the work
	c.runtime.LockOSThread()
	defer c.runtime.UnlockOSThread()

	fired := atomic.NewBool(false)

	disarm, err := c.alarm.Arm(time.Duration(seconds)*time.Second, fired)
	if err != nil {
		return fmt.Errorf("unable to arm the %d seconds cpu burn alarm: %w", seconds, err)
	}
	defer disarm()

	spin(fired)

	return nil
}

// spin sums 1/n² until fired is set
func spin(fired *atomic.Bool) float64 {
	x, n := 0.0, 1.0

	for !fired.Load() {
		x += 1 / (n * n)
		n++

		if n > seriesResetThreshold {
			x, n = 0, 1
		}
	}

	return x
}
