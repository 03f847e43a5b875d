package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/itsmostafa/bookindex/internal/pageindex"
)

const (
	// EnvPrefix is the prefix for environment overrides, e.g. BOOKINDEX_PAGE_OFFSET.
	EnvPrefix = "BOOKINDEX"

	// FileName is the config file looked up in the working directory.
	FileName = "bookindex"
)

// Load builds the run configuration from defaults, an optional config file
// and BOOKINDEX_* environment variables. A missing default config file is
// not an error; a missing explicit cfgFile is.
func Load(cfgFile string) (*pageindex.Config, error) {
	v, err := newViper(cfgFile)
	if err != nil {
		return nil, err
	}

	var cfg pageindex.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newViper sets up a viper instance with defaults and config file.
func newViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	defaults := pageindex.DefaultConfig()
	v.SetDefault("input_dir", defaults.InputDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("page_offset", defaults.PageOffset)
	v.SetDefault("final_page", defaults.FinalPage)
	v.SetDefault("threshold", defaults.Threshold)
	v.SetDefault("files.pages", defaults.Files.Pages)
	v.SetDefault("files.annotations", defaults.Files.Annotations)
	v.SetDefault("files.ignore", defaults.Files.Ignore)
	v.SetDefault("files.case_sensitive", defaults.Files.CaseSensitive)
	v.SetDefault("files.no_occurrence", defaults.Files.NoOccurrence)
	v.SetDefault("files.occurrence", defaults.Files.Occurrence)
	v.SetDefault("files.too_many", defaults.Files.TooMany)
	v.SetDefault("sections", defaults.Sections)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return v, nil
}

// Validate checks the values the scanner relies on.
func Validate(cfg *pageindex.Config) error {
	if cfg.InputDir == "" {
		return errors.New("input_dir must not be empty")
	}
	if len(cfg.Sections) == 0 {
		return errors.New("sections must list at least one section")
	}
	if cfg.Threshold < 1 {
		return fmt.Errorf("threshold must be positive, got %d", cfg.Threshold)
	}
	last := cfg.Sections[len(cfg.Sections)-1]
	if cfg.FinalPage <= last.Page {
		return fmt.Errorf("final_page %d must be after the last section start %d", cfg.FinalPage, last.Page)
	}
	return nil
}
