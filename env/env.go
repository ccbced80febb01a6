// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package env

import (
	"fmt"
	"os"
	"strconv"
)

//nolint:golint
const (
	WorkerIndex = "CHAOS_USEMEM_WORKER_INDEX"
)

// WorkerIndexEntry returns the environment entry handing the given ordinal to a worker process
func WorkerIndexEntry(index int) string {
	return fmt.Sprintf("%s=%d", WorkerIndex, index)
}

// LookupWorkerIndex returns the worker ordinal handed by the coordinator,
// found is false for the original process
func LookupWorkerIndex() (index int, found bool, err error) {
	value, found := os.LookupEnv(WorkerIndex)
	if !found {
		return 0, false, nil
	}

	index, err = strconv.Atoi(value)
	if err != nil || index < 2 {
		return 0, true, fmt.Errorf("invalid %s value %q, expected an integer greater than 1", WorkerIndex, value)
	}

	return index, true, nil
}
