// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

// Package nolimits runs a trusted program without cpu time limit:
// the wrapper looks up the program it was invoked as in a root owned mapping file,
// lifts RLIMIT_CPU, drops to the caller real user id then replaces itself with the mapped program.
package nolimits

import (
	"bufio"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/DataDog/chaos-usemem/o11y/tags"
)

// DefaultConfigPath is the trusted mapping of wrapper names to absolute program paths
const DefaultConfigPath = "/etc/security/nolimits.conf"

var (
	// ErrNotFound is returned when the invoked name has no mapping
	ErrNotFound = errors.New("wrapper command not found in configuration file")
	// ErrNotAbsolute is returned when the mapped program is not an absolute path
	ErrNotAbsolute = errors.New("wrapped command is not an absolute path")
)

// System is the set of privileged operations the wrapper relies on
type System interface {
	// Getuid returns the caller real user id
	Getuid() int
	// RelaxCPULimit sets both the soft and hard RLIMIT_CPU to infinity
	RelaxCPULimit() error
	// Setuid permanently changes the user id of the process
	Setuid(uid int) error
	// Exec replaces the current process image, it only returns on failure
	Exec(path string, argv []string, env []string) error
}

// Lookup returns the program mapped to name in the configuration file at path;
// the file holds "name: /absolute/path" lines, # starts a comment, malformed lines are reported and skipped
func Lookup(logger *zap.SugaredLogger, fs afero.Fs, path, name string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: unable to open %s: %w", ErrNotFound, path, err)
	}
	defer file.Close() //nolint:errcheck

	scanner := bufio.NewScanner(file)

	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()

		if end := strings.IndexByte(line, '#'); end >= 0 {
			line = line[:end]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		program, substitute, found := strings.Cut(line, ":")
		if !found {
			logger.Warnw("malformed line in configuration file, ignoring",
				tags.LineKey, lineno,
				tags.ConfigKey, path,
				"content", line,
			)

			continue
		}

		if strings.TrimSpace(program) == name {
			return strings.TrimSpace(substitute), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}

	return "", fmt.Errorf("%w: %q in %s", ErrNotFound, name, path)
}

// Run resolves the program argv[0] stands for, matching the invoked name first then its base name,
// and executes it with the same arguments once the cpu limit is lifted and privileges are dropped;
// any failure aborts before the exec
func Run(logger *zap.SugaredLogger, sys System, fs afero.Fs, configPath string, argv, env []string) error {
	if len(argv) == 0 {
		return errors.New("empty argument list, unable to find the invoked name")
	}

	substitute, err := Lookup(logger, fs, configPath, argv[0])
	if errors.Is(err, ErrNotFound) && filepath.Base(argv[0]) != argv[0] {
		substitute, err = Lookup(logger, fs, configPath, filepath.Base(argv[0]))
	}

	if err != nil {
		return err
	}

	if !filepath.IsAbs(substitute) {
		return fmt.Errorf("%w: %q for %q in %s, aborting", ErrNotAbsolute, substitute, argv[0], configPath)
	}

	if err := sys.RelaxCPULimit(); err != nil {
		return fmt.Errorf("unable to lift the cpu time limit: %w", err)
	}

	uid := sys.Getuid()

	if err := sys.Setuid(uid); err != nil {
		return fmt.Errorf("unable to drop privileges to uid %d: %w", uid, err)
	}

	logger.Debugw("executing wrapped program", tags.ProgramKey, argv[0], tags.SubstituteKey, substitute, tags.UIDKey, uid)

	if err := sys.Exec(substitute, argv, env); err != nil {
		return fmt.Errorf("could not execute wrapped program %s: %w", substitute, err)
	}

	return nil
}
