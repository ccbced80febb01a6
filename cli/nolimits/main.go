// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package main

import (
	"os"

	"github.com/spf13/afero"

	chaoslog "github.com/DataDog/chaos-usemem/log"
	"github.com/DataDog/chaos-usemem/nolimits"
	"github.com/DataDog/chaos-usemem/o11y/tags"
)

// main does not parse any flag, every argument belongs to the wrapped program
func main() {
	log := chaoslog.NewZapLogger(false)

	err := nolimits.Run(log, nolimits.NewSystem(), afero.NewOsFs(), nolimits.DefaultConfigPath, os.Args, os.Environ())

	log.Errorw("aborting", tags.ProgramKey, os.Args[0], tags.ConfigKey, nolimits.DefaultConfigPath, tags.ErrorKey, err)

	_ = log.Sync()

	os.Exit(1)
}
