// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

import "fmt"

// WorkerError is a fatal worker failure carrying the worker ordinal and the size it was working on
type WorkerError struct {
	Index int
	Size  uint64
	Err   error
}

func (w WorkerError) Error() string {
	return fmt.Sprintf("worker %d (%d bytes requested): %s", w.Index, w.Size, w.Err)
}

func (w WorkerError) Unwrap() error {
	return w.Err
}
