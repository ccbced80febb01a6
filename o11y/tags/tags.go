// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package tags

// structured log keys
const (
	WorkerKey      = "worker"
	WorkersKey     = "workers"
	PidKey         = "pid"
	PgidKey        = "pgid"
	StateKey       = "state"
	PendingKey     = "pending"
	ExitCodeKey    = "exitCode"
	ErrorKey       = "error"
	SizeKey        = "size"
	ChunkSizeKey   = "chunkSize"
	CPUTimeKey     = "cpuTime"
	BytesKey       = "bytes"
	DurationKey    = "duration"
	TotalMemoryKey = "totalMemory"
	AvailableKey   = "availableMemory"
	ConfigKey      = "config"
	ProgramKey     = "program"
	SubstituteKey  = "substitute"
	LineKey        = "line"
	UIDKey         = "uid"
	ExecutableKey  = "executable"
)
