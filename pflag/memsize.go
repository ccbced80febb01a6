// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.
package pflag

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/DataDog/chaos-usemem/memsize"
)

type memorySize struct {
	inner *memsize.Size
}

// NewMemorySize will create a new cobra pflag that updates the provided size when the flag is set through a command line
// the flag accepts the memsize grammar (e.g. 4096, 512M, 2GiB)
func NewMemorySize(v *memsize.Size) (pflag.Value, error) {
	if v == nil {
		return nil, fmt.Errorf("given size must not be nil")
	}

	return &memorySize{v}, nil
}

// String returns the canonical representation of the underlying size
func (m *memorySize) String() string {
	return m.inner.String()
}

// Set parses the provided string and stores the resulting size
// it will be called by cobra on command line parsing
func (m *memorySize) Set(v string) error {
	s, err := memsize.Parse(v)
	if err != nil {
		return err
	}

	*m.inner = s

	return nil
}

// Type provides the type name displayed in the flag usage
func (m *memorySize) Type() string {
	return "size"
}
