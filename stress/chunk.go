// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package stress

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// DefaultEntropyPath is the non-blocking system randomness device
const DefaultEntropyPath = "/dev/urandom"

// EntropySource provides the bytes a random chunk is filled with
type EntropySource interface {
	Open() (io.ReadCloser, error)
}

type fileEntropySource struct {
	fs   afero.Fs
	path string
}

// NewEntropySource returns an entropy source reading the given file
func NewEntropySource(fs afero.Fs, path string) EntropySource {
	return fileEntropySource{
		fs:   fs,
		path: path,
	}
}

func (f fileEntropySource) Open() (io.ReadCloser, error) {
	file, err := f.fs.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", f.path, err)
	}

	return file, nil
}

// FillChunk allocates a zeroed buffer of size bytes, overwrites it with bytes read from src
// and makes it read-only
func FillChunk(allocator Allocator, src EntropySource, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrAllocation, size)
	}

	chunk, err := allocator.Allocate(size)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot allocate a %d bytes chunk: %w", ErrAllocation, size, err)
	}

	r, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	defer r.Close() //nolint:errcheck

	if _, err := io.ReadFull(r, chunk); err != nil {
		return nil, fmt.Errorf("%w: unable to read %d bytes: %w", ErrEntropy, size, err)
	}

	if err := allocator.ReadOnly(chunk); err != nil {
		return nil, fmt.Errorf("unable to protect the random chunk: %w", err)
	}

	return chunk, nil
}
