package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

// fileConfig is the on-disk shape of ~/.flatjson.yaml (or --config): the
// same fields as jsonprinter.Options, loaded once at startup and layered
// under whatever flags a subcommand was given (flags always win).
type fileConfig struct {
	Indent                   int  `yaml:"indent"`
	Unquote                  bool `yaml:"unquote"`
	NoEnum                   bool `yaml:"noenum"`
	SkipDefault              bool `yaml:"skip_default"`
	ForceDefault             bool `yaml:"force_default"`
	AlwaysQuoteMultipleFlags bool `yaml:"always_quote_multiple_flags"`
	MaxLevels                int  `yaml:"max_levels"`
	CacheNestedRoots         bool `yaml:"cache_nested_roots"`
}

// loadConfig reads path (or ~/.flatjson.yaml if path is empty and that
// file exists) into jsonprinter.Options. A missing file at the default
// location is not an error: the zero-value Options apply.
func loadConfig(path string) (jsonprinter.Options, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return jsonprinter.Options{}, nil
		}
		candidate := filepath.Join(home, ".flatjson.yaml")
		if _, err := os.Stat(candidate); err != nil {
			return jsonprinter.Options{}, nil
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return jsonprinter.Options{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return jsonprinter.Options{}, err
	}

	return jsonprinter.Options{
		Indent:                   fc.Indent,
		Unquote:                  fc.Unquote,
		NoEnum:                   fc.NoEnum,
		SkipDefault:              fc.SkipDefault,
		ForceDefault:             fc.ForceDefault,
		AlwaysQuoteMultipleFlags: fc.AlwaysQuoteMultipleFlags,
		MaxLevels:                fc.MaxLevels,
		CacheNestedRoots:         fc.CacheNestedRoots,
	}, nil
}

// applyFlagOverrides layers any flags the user actually passed (via
// cmd.Flags().Changed) on top of opts, which should already hold the
// loaded config file's values.
func applyFlagOverrides(flags flagGetter, opts jsonprinter.Options) jsonprinter.Options {
	if flags.Changed("indent") {
		opts.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("unquote") {
		opts.Unquote, _ = flags.GetBool("unquote")
	}
	if flags.Changed("noenum") {
		opts.NoEnum, _ = flags.GetBool("noenum")
	}
	if flags.Changed("skip-default") {
		opts.SkipDefault, _ = flags.GetBool("skip-default")
	}
	if flags.Changed("force-default") {
		opts.ForceDefault, _ = flags.GetBool("force-default")
	}
	if flags.Changed("cache-nested") {
		opts.CacheNestedRoots, _ = flags.GetBool("cache-nested")
	}
	return opts
}

// flagGetter is the subset of *pflag.FlagSet applyFlagOverrides needs;
// declared locally so it can be satisfied by cmd.Flags() without importing
// pflag directly here.
type flagGetter interface {
	Changed(name string) bool
	GetInt(name string) (int, error)
	GetBool(name string) (bool, error)
}
