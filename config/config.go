// SPDX-License-Identifier: MIT

// Package config resolves lvlda settings from flags, LVLDA_* environment
// variables, an optional YAML file and built-in defaults, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/lda"
	"github.com/katalvlaran/lvlda/logging"
)

const (
	// EnvPrefix prefixes every environment override (train.lambda → LVLDA_TRAIN_LAMBDA).
	EnvPrefix = "LVLDA"
	// FileName is the config file looked up in the working directory.
	FileName = "lvlda"
)

// ErrInvalid marks a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	Train   Train   `mapstructure:"train"`
	Data    Data    `mapstructure:"data"`
	Labels  Labels  `mapstructure:"labels"`
	Model   Model   `mapstructure:"model"`
	History History `mapstructure:"history"`
	Log     Log     `mapstructure:"log"`
}

type Train struct {
	Lambda         float64 `mapstructure:"lambda"`
	PivotTolerance float64 `mapstructure:"pivot_tolerance"`
	Split          float64 `mapstructure:"split"`
	Seed           uint64  `mapstructure:"seed"`
}

type Data struct {
	HasHeader   bool   `mapstructure:"has_header"`
	LabelColumn int    `mapstructure:"label_column"`
	Delimiter   string `mapstructure:"delimiter"`
	Strict      bool   `mapstructure:"strict"`
}

type Labels struct {
	Positive string `mapstructure:"positive"`
	Negative string `mapstructure:"negative"`
	Unknown  string `mapstructure:"unknown"`
}

type Model struct {
	Path string `mapstructure:"path"`
}

type History struct {
	Path string `mapstructure:"path"`
}

type Log struct {
	Level         string `mapstructure:"level"`
	Path          string `mapstructure:"path"`
	RotationHours int    `mapstructure:"rotation_hours"`
	MaxAgeDays    int    `mapstructure:"max_age_days"`
}

var defaults = map[string]any{
	"train.lambda":          lda.DefaultLambda,
	"train.pivot_tolerance": 1e-12,
	"train.split":           0.8,
	"train.seed":            uint64(42),
	"data.has_header":       true,
	"data.label_column":     -1,
	"data.delimiter":        ",",
	"data.strict":           false,
	"labels.positive":       "P",
	"labels.negative":       "H",
	"labels.unknown":        "negative",
	"model.path":            "lda_model.txt",
	"history.path":          "",
	"log.level":             "info",
	"log.path":              "",
	"log.rotation_hours":    24,
	"log.max_age_days":      7,
}

// FlagKeys maps command-line flag names to configuration keys. Load binds
// every entry whose flag exists in the supplied FlagSet.
var FlagKeys = map[string]string{
	"lambda":          "train.lambda",
	"pivot-tolerance": "train.pivot_tolerance",
	"split":           "train.split",
	"seed":            "train.seed",
	"header":          "data.has_header",
	"label-column":    "data.label_column",
	"delimiter":       "data.delimiter",
	"strict":          "data.strict",
	"positive":        "labels.positive",
	"negative":        "labels.negative",
	"unknown-label":   "labels.unknown",
	"model":           "model.path",
	"history":         "history.path",
	"log-level":       "log.level",
	"log-file":        "log.path",
}

// Load resolves the configuration. path names an explicit config file (any
// format viper understands); when empty, lvlda.yaml is looked up in the
// working directory and its absence is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if !(c.Train.Split > 0 && c.Train.Split < 1) {
		return fmt.Errorf("train.split=%g outside (0,1): %w", c.Train.Split, ErrInvalid)
	}
	if math.IsNaN(c.Train.Lambda) || math.IsInf(c.Train.Lambda, 0) || c.Train.Lambda < 0 {
		return fmt.Errorf("train.lambda=%g: %w", c.Train.Lambda, ErrInvalid)
	}
	if math.IsNaN(c.Train.PivotTolerance) || math.IsInf(c.Train.PivotTolerance, 0) || c.Train.PivotTolerance < 0 {
		return fmt.Errorf("train.pivot_tolerance=%g: %w", c.Train.PivotTolerance, ErrInvalid)
	}
	if _, err := c.delimiter(); err != nil {
		return err
	}
	if _, err := c.labelMap(); err != nil {
		return fmt.Errorf("labels: %w: %w", ErrInvalid, err)
	}
	if c.Log.RotationHours <= 0 || c.Log.MaxAgeDays <= 0 {
		return fmt.Errorf("log rotation %dh / max age %dd: %w", c.Log.RotationHours, c.Log.MaxAgeDays, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w: %w", ErrInvalid, err)
	}

	return nil
}

// delimiter accepts a single character, or "tab" / `\t` for a tab.
func (c *Config) delimiter() (rune, error) {
	switch d := c.Data.Delimiter; d {
	case "tab", `\t`:
		return '\t', nil
	default:
		r, size := utf8.DecodeRuneInString(d)
		if size == 0 || size != len(d) || r == utf8.RuneError || r == '"' || r == '\n' || r == '\r' {
			return 0, fmt.Errorf("data.delimiter=%q: %w", d, ErrInvalid)
		}
		return r, nil
	}
}

func (c *Config) labelMap() (dataset.LabelMap, error) {
	policy, err := dataset.ParseUnknownPolicy(c.Labels.Unknown)
	if err != nil {
		return dataset.LabelMap{}, err
	}
	lm := dataset.LabelMap{Positive: c.Labels.Positive, Negative: c.Labels.Negative, Unknown: policy}
	if err = lm.Validate(); err != nil {
		return dataset.LabelMap{}, err
	}

	return lm, nil
}

// DatasetOptions converts the data and labels sections for the CSV readers.
func (c *Config) DatasetOptions() (dataset.Options, error) {
	delim, err := c.delimiter()
	if err != nil {
		return dataset.Options{}, err
	}
	lm, err := c.labelMap()
	if err != nil {
		return dataset.Options{}, fmt.Errorf("labels: %w: %w", ErrInvalid, err)
	}
	mode := dataset.ZeroFill
	if c.Data.Strict {
		mode = dataset.Strict
	}

	return dataset.Options{
		HasHeader:   c.Data.HasHeader,
		LabelColumn: c.Data.LabelColumn,
		Delimiter:   delim,
		Mode:        mode,
		Labels:      lm,
	}, nil
}

// TrainOptions converts the train section for lda.Fit / lda.Train.
func (c *Config) TrainOptions(log *zap.Logger) []lda.Option {
	return []lda.Option{
		lda.WithLambda(c.Train.Lambda),
		lda.WithPivotTolerance(c.Train.PivotTolerance),
		lda.WithLogger(log),
	}
}

// Logging converts the log section for logging.New.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:         c.Log.Level,
		Path:          c.Log.Path,
		RotationHours: c.Log.RotationHours,
		MaxAgeDays:    c.Log.MaxAgeDays,
	}
}
