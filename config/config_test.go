// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package config_test

import (
	"strconv"

	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/DataDog/chaos-usemem/config"
	"github.com/DataDog/chaos-usemem/memsize"
)

var _ = Describe("Config", func() {
	var (
		logger *zap.SugaredLogger
		fs     afero.Fs
		flags  *pflag.FlagSet
	)

	BeforeEach(func() {
		logger = zaptest.NewLogger(GinkgoT()).Sugar()
		fs = afero.NewMemMapFs()
		flags = pflag.NewFlagSet("chaos-usemem", pflag.ContinueOnError)

		Expect(config.AddFlags(flags)).To(Succeed())
	})

	load := func(osArgs ...string) (config.Config, error) {
		Expect(flags.Parse(osArgs)).To(Succeed())

		return config.Load(logger, fs, flags, flags.Args())
	}

	Context("Load", func() {
		Context("without configuration file", func() {
			It("succeeds with default values", func() {
				cfg, err := load("512M")
				Expect(err).ToNot(HaveOccurred())

				Expect(cfg).To(Equal(config.Config{
					TargetSize: 512_000_000,
					ChunkSize:  4 * 1024 * 1024,
					CPUTime:    0,
					Workers:    1,
					Verbose:    true,
				}))
			})

			It("succeeds with every flag set", func() {
				cfg, err := load("-c", "1Ki", "--cpu-time", "3", "-w", "4", "--verbose=false", "2GiB")
				Expect(err).ToNot(HaveOccurred())

				Expect(cfg.TargetSize.Bytes()).To(Equal(uint64(2 * 1024 * 1024 * 1024)))
				Expect(cfg.ChunkSize.Bytes()).To(Equal(uint64(1024)))
				Expect(cfg.CPUTime).To(Equal(uint(3)))
				Expect(cfg.Workers).To(Equal(uint(4)))
				Expect(cfg.Verbose).To(BeFalse())
			})

			It("turns verbosity off when brief is set", func() {
				cfg, err := load("--brief", "1M")
				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.Verbose).To(BeFalse())
			})

			It("allows a chunk larger than the total size", func() {
				cfg, err := load("--chunk-size", "8M", "1K")
				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.ChunkSize).To(BeNumerically(">", cfg.TargetSize))
			})
		})

		Context("invalid configuration", func() {
			It("fails without total size", func() {
				_, err := load()
				Expect(err).To(MatchError(config.ErrMissingTargetSize))
			})

			It("fails with a malformed total size", func() {
				_, err := load("5X")
				Expect(err).To(MatchError(memsize.ErrInvalidSize))
			})

			It("fails with a zero total size", func() {
				_, err := load("0")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("TargetSize must be greater than 0"))
			})

			It("fails with a malformed chunk size at flag parsing time", func() {
				Expect(flags.Parse([]string{"--chunk-size", "abc", "1M"})).ToNot(Succeed())
			})

			It("reports every violation at once", func() {
				_, err := load("--workers", "0", "--chunk-size", "0", "0")
				Expect(err).To(HaveOccurred())

				var merr *multierror.Error
				Expect(err).To(BeAssignableToTypeOf(merr))
				Expect(err.(*multierror.Error).Errors).To(HaveLen(3))
				Expect(err.Error()).To(ContainSubstring("config: Workers must be 1 or greater"))
			})

			It("rejects a cpu time a duration cannot represent", func() {
				cfg, err := load("--cpu-time", strconv.FormatUint(config.MaxCPUTime, 10), "1M")
				Expect(err).ToNot(HaveOccurred())
				Expect(uint64(cfg.CPUTime)).To(Equal(config.MaxCPUTime))

				flags = pflag.NewFlagSet("chaos-usemem", pflag.ContinueOnError)
				Expect(config.AddFlags(flags)).To(Succeed())

				_, err = load("--cpu-time", strconv.FormatUint(config.MaxCPUTime+1, 10), "1M")
				Expect(err).To(MatchError(ContainSubstring("CPUTime must be at most 9223372036 seconds")))
			})

			It("fails with a missing configuration file", func() {
				_, err := load("--config", "/etc/chaos-usemem/missing.yaml", "1M")
				Expect(err).To(MatchError(ContainSubstring("error loading configuration file")))
			})
		})

		Context("with configuration file", func() {
			const path = "/etc/chaos-usemem/config.yaml"

			BeforeEach(func() {
				Expect(afero.WriteFile(fs, path, []byte(`targetSize: 64Mi
chunkSize: 1Mi
cpuTime: 2
workers: 3
verbose: false
`), 0o644)).To(Succeed())
			})

			It("reads every value from the file", func() {
				cfg, err := load("--config", path)
				Expect(err).ToNot(HaveOccurred())

				Expect(cfg).To(Equal(config.Config{
					TargetSize: 64 * 1024 * 1024,
					ChunkSize:  1024 * 1024,
					CPUTime:    2,
					Workers:    3,
					Verbose:    false,
				}))
			})

			It("gives precedence to explicit flags and arguments", func() {
				cfg, err := load("--config", path, "-w", "5", "-c", "4K", "1G")
				Expect(err).ToNot(HaveOccurred())

				Expect(cfg.Workers).To(Equal(uint(5)))
				Expect(cfg.ChunkSize.Bytes()).To(Equal(uint64(4000)))
				Expect(cfg.TargetSize.Bytes()).To(Equal(uint64(1_000_000_000)))
				Expect(cfg.CPUTime).To(Equal(uint(2)))
			})

			It("rejects a negative number", func() {
				Expect(afero.WriteFile(fs, path, []byte("targetSize: 1M\nworkers: -2\n"), 0o644)).To(Succeed())

				_, err := load("--config", path)
				Expect(err).To(MatchError(ContainSubstring(`workers: invalid unsigned integer "-2"`)))
			})
		})
	})

	Context("Args", func() {
		It("regenerates a configuration that loads back identically", func() {
			original := config.Config{
				TargetSize: memsize.MustParse("3GiB"),
				ChunkSize:  memsize.MustParse("1500"),
				CPUTime:    7,
				Workers:    2,
				Verbose:    false,
			}

			cfg, err := load(original.Args()...)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).To(Equal(original))
		})
	})
})
