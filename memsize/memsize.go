// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package memsize parses human readable memory quantities such as "512M",
// "2GiB" or "4096" into exact byte counts.
//
// The grammar is an unsigned base 10 integer followed by an optional unit:
//
//	B, b   bytes (no-op)
//	K, k   x base
//	M, m   x base^2
//	G, g   x base^3
//
// The base is 1000 unless an "i" appears anywhere in the suffix ("Ki", "MiB"),
// in which case it is 1024.
package memsize

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

const (
	decimalBase uint64 = 1000
	binaryBase  uint64 = 1024

	// maxMagnitude is the highest magnitude a unit letter can request (G)
	maxMagnitude = 3
)

// ErrInvalidSize is returned for any text that does not follow the size grammar
var ErrInvalidSize = errors.New("invalid memory size")

// Size is an immutable byte count
type Size uint64

// Parse converts the given text into a Size
func Parse(text string) (Size, error) {
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, fmt.Errorf("%w %q: expected leading digits", ErrInvalidSize, text)
	}

	value, err := strconv.ParseUint(text[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidSize, text, err)
	}

	base := decimalBase
	magnitude := 0

	for _, c := range text[end:] {
		switch c {
		case 'B', 'b':
		case 'K', 'k':
			magnitude = 1
		case 'M', 'm':
			magnitude = 2
		case 'G', 'g':
			magnitude = 3
		case 'i':
			base = binaryBase
		default:
			return 0, fmt.Errorf("%w %q: unrecognized unit character %q", ErrInvalidSize, text, c)
		}
	}

	for ; magnitude > 0; magnitude-- {
		hi, lo := bits.Mul64(value, base)
		if hi != 0 {
			return 0, fmt.Errorf("%w %q: value overflows 64 bits", ErrInvalidSize, text)
		}

		value = lo
	}

	return Size(value), nil
}

// MustParse is like Parse but panics on invalid input, for constants and tests
func MustParse(text string) Size {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return s
}

// Bytes returns the byte count
func (s Size) Bytes() uint64 {
	return uint64(s)
}

// Int returns the byte count as an int, failing if it cannot be addressed on this platform
func (s Size) Int() (int, error) {
	if uint64(s) > math.MaxInt {
		return 0, fmt.Errorf("size of %d bytes exceeds the addressable maximum of %d bytes", uint64(s), math.MaxInt)
	}

	return int(s), nil
}

// String returns the shortest exact representation of the size that Parse accepts back
func (s Size) String() string {
	v := uint64(s)
	if v == 0 {
		return "0"
	}

	units := [maxMagnitude + 1]string{"", "K", "M", "G"}

	for magnitude := maxMagnitude; magnitude > 0; magnitude-- {
		if binary := pow(binaryBase, magnitude); v%binary == 0 {
			return fmt.Sprintf("%d%si", v/binary, units[magnitude])
		}

		if decimal := pow(decimalBase, magnitude); v%decimal == 0 {
			return fmt.Sprintf("%d%s", v/decimal, units[magnitude])
		}
	}

	return strconv.FormatUint(v, 10)
}

func pow(base uint64, magnitude int) uint64 {
	result := uint64(1)
	for ; magnitude > 0; magnitude-- {
		result *= base
	}

	return result
}
