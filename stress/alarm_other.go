// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

//go:build !linux

package stress

import (
	"time"

	"go.uber.org/atomic"
)

type signalAlarm struct{}

// NewSignalAlarm returns an alarm backed by a runtime timer where interval timers are not available
func NewSignalAlarm() Alarm {
	return signalAlarm{}
}

func (signalAlarm) Arm(d time.Duration, fired *atomic.Bool) (func(), error) {
	t := time.AfterFunc(d, func() {
		fired.Store(true)
	})

	return func() { t.Stop() }, nil
}
