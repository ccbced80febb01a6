// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/DataDog/chaos-usemem/memsize"
	"github.com/DataDog/chaos-usemem/o11y/tags"
	sizeflag "github.com/DataDog/chaos-usemem/pflag"
)

// flag names
const (
	ChunkSizeFlag = "chunk-size"
	CPUTimeFlag   = "cpu-time"
	WorkersFlag   = "workers"
	VerboseFlag   = "verbose"
	BriefFlag     = "brief"
	ConfigFlag    = "config"
)

// configuration file keys
const (
	targetSizeKey = "targetSize"
	chunkSizeKey  = "chunkSize"
	cpuTimeKey    = "cpuTime"
	workersKey    = "workers"
	verboseKey    = "verbose"
)

// MaxCPUTime is the longest cpu burn, in seconds, a time.Duration can represent
const MaxCPUTime = uint64(math.MaxInt64 / time.Second)

// DefaultChunkSize is the size of the random chunk copied into the memory region
var DefaultChunkSize = memsize.MustParse("4Mi")

// ErrMissingTargetSize is returned when the total size is given neither as an argument nor in the configuration file
var ErrMissingTargetSize = errors.New("missing required TOTAL_SIZE argument")

// Config is the immutable description of a memory pressure run
type Config struct {
	TargetSize memsize.Size `json:"targetSize" yaml:"targetSize" validate:"gt=0"`
	ChunkSize  memsize.Size `json:"chunkSize" yaml:"chunkSize" validate:"gt=0"`
	CPUTime    uint         `json:"cpuTime" yaml:"cpuTime"`
	Workers    uint         `json:"workers" yaml:"workers" validate:"min=1"`
	Verbose    bool         `json:"verbose" yaml:"verbose"`
}

// AddFlags registers every configuration flag on the given flag set
func AddFlags(flags *pflag.FlagSet) error {
	chunkSize := DefaultChunkSize

	chunkSizeValue, err := sizeflag.NewMemorySize(&chunkSize)
	if err != nil {
		return fmt.Errorf("unable to create the %s flag: %w", ChunkSizeFlag, err)
	}

	flags.VarP(chunkSizeValue, ChunkSizeFlag, "c", "Size of the random chunk repeatedly written into memory (K, M, G suffixes, add i for powers of 1024)")
	flags.UintP(CPUTimeFlag, "t", 0, "Seconds of CPU time to waste by busy-waiting before allocating memory")
	flags.UintP(WorkersFlag, "w", 1, "Number of worker processes, each one allocating TOTAL_SIZE")
	flags.BoolP(VerboseFlag, "v", true, "Print status lines")
	flags.BoolP(BriefFlag, "b", false, "Do not print status lines")
	flags.String(ConfigFlag, "", "Configuration file path")

	return nil
}

// Load builds and validates the configuration from already parsed flags, the positional arguments
// and the configuration file named by the config flag if any;
// an explicitly set flag takes precedence over the file which takes precedence over the flag default
func Load(logger *zap.SugaredLogger, fs afero.Fs, flags *pflag.FlagSet, args []string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetFs(fs)

	bindings := map[string]string{
		chunkSizeKey: ChunkSizeFlag,
		cpuTimeKey:   CPUTimeFlag,
		workersKey:   WorkersFlag,
		verboseKey:   VerboseFlag,
	}

	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			return cfg, fmt.Errorf("flag %s is not registered", name)
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return cfg, fmt.Errorf("unable to bind flag %s: %w", name, err)
		}
	}

	configPath, err := flags.GetString(ConfigFlag)
	if err != nil {
		return cfg, fmt.Errorf("unable to retrieve configuration path from provided flag: %w", err)
	}

	// load configuration file if present first so explicit flags override its values
	if configPath != "" {
		logger.Debugw("loading configuration file", tags.ConfigKey, configPath)

		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error loading configuration file: %w", err)
		}
	}

	var errs *multierror.Error

	targetSize := v.GetString(targetSizeKey)
	if len(args) > 0 {
		targetSize = args[0]
	}

	if targetSize == "" {
		errs = multierror.Append(errs, ErrMissingTargetSize)
	} else if cfg.TargetSize, err = memsize.Parse(targetSize); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("total size: %w", err))
	}

	if cfg.ChunkSize, err = memsize.Parse(v.GetString(chunkSizeKey)); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("chunk size: %w", err))
	}

	if cfg.CPUTime, err = parseUint(v, cpuTimeKey); err != nil {
		errs = multierror.Append(errs, err)
	}

	if cfg.Workers, err = parseUint(v, workersKey); err != nil {
		errs = multierror.Append(errs, err)
	}

	cfg.Verbose = v.GetBool(verboseKey)

	if brief, err := flags.GetBool(BriefFlag); err == nil && brief {
		cfg.Verbose = false
	}

	if errs != nil {
		return cfg, multierror.Prefix(errs, "config:")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseUint reads an unsigned integer, rejecting negative values the viper cast would silently turn into 0
func parseUint(v *viper.Viper, key string) (uint, error) {
	raw := v.GetString(key)

	value, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid unsigned integer %q", key, raw)
	}

	return uint(value), nil
}

// Validate checks the configuration invariants, every violation is reported at once
func (c Config) Validate() error {
	var errs *multierror.Error

	validate, translator, err := newValidator()
	if err != nil {
		return fmt.Errorf("config: unable to create the validator: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("config: unable to validate: %w", err)
		}

		for _, fieldErr := range validationErrors {
			errs = multierror.Append(errs, errors.New(fieldErr.Translate(translator)))
		}
	}

	if uint64(c.CPUTime) > MaxCPUTime {
		errs = multierror.Append(errs, fmt.Errorf("CPUTime must be at most %d seconds, got %d", MaxCPUTime, c.CPUTime))
	}

	if _, err := c.TargetSize.Int(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("total size: %w", err))
	}

	if _, err := c.ChunkSize.Int(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("chunk size: %w", err))
	}

	if errs != nil {
		return multierror.Prefix(errs, "config:")
	}

	return nil
}

// newValidator returns a struct validator rendering its errors in english
func newValidator() (*validator.Validate, ut.Translator, error) {
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	validate := validator.New()

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, nil, err
	}

	return validate, translator, nil
}

// Args regenerates the flags and arguments describing the configuration,
// so a worker process rebuilds exactly the same configuration with Load
func (c Config) Args() []string {
	args := []string{
		fmt.Sprintf("--%s=%s", ChunkSizeFlag, c.ChunkSize),
		fmt.Sprintf("--%s=%d", CPUTimeFlag, c.CPUTime),
		fmt.Sprintf("--%s=%d", WorkersFlag, c.Workers),
		fmt.Sprintf("--%s=%t", VerboseFlag, c.Verbose),
	}

	return append(args, c.TargetSize.String())
}
