package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"goa.design/beans/codegen/beangen"
)

const (
	defaultConfigFile = "beangen.yaml"
	envPrefix         = "BEANGEN_"
)

// config is the CLI configuration. Sources are layered: defaults, then the
// YAML file, then BEANGEN_* environment variables, then flags.
type config struct {
	Indent      string   `yaml:"indent"`
	FieldPrefix string   `yaml:"field_prefix"`
	Workers     int      `yaml:"workers"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Debug       bool     `yaml:"debug"`
}

func defaultConfig() config {
	return config{
		Indent:  "\t",
		Workers: runtime.NumCPU(),
		Include: []string{"**/*.go"},
		Exclude: []string{"**/*_test.go", "**/testdata/**", "vendor/**"},
	}
}

// loadConfig layers the configuration sources. A missing file is not an
// error unless it was named explicitly.
func loadConfig(cmd *cobra.Command, getenv func(string) string) (config, error) {
	cfg := defaultConfig()
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return cfg, err
	}
	if err := cfg.loadFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flags.Changed("config") {
			return cfg, err
		}
	}
	if err := cfg.loadEnv(getenv); err != nil {
		return cfg, err
	}
	if err := cfg.loadFlags(cmd); err != nil {
		return cfg, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

func (c *config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *config) loadEnv(getenv func(string) string) error {
	if v := getenv(envPrefix + "INDENT"); v != "" {
		c.Indent = unescapeIndent(v)
	}
	if v := getenv(envPrefix + "FIELD_PREFIX"); v != "" {
		c.FieldPrefix = v
	}
	if v := getenv(envPrefix + "WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS: %w", envPrefix, err)
		}
		c.Workers = n
	}
	if v := getenv(envPrefix + "EXCLUDE"); v != "" {
		c.Exclude = strings.Split(v, ",")
	}
	if v := getenv(envPrefix + "DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", envPrefix, err)
		}
		c.Debug = b
	}
	return nil
}

func (c *config) loadFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("indent") {
		var v string
		v, err = flags.GetString("indent")
		c.Indent = unescapeIndent(v)
	}
	if err == nil && flags.Changed("field-prefix") {
		c.FieldPrefix, err = flags.GetString("field-prefix")
	}
	if err == nil && flags.Changed("workers") {
		c.Workers, err = flags.GetInt("workers")
	}
	if err == nil && flags.Changed("exclude") {
		c.Exclude, err = flags.GetStringSlice("exclude")
	}
	if err == nil && flags.Changed("debug") {
		c.Debug, err = flags.GetBool("debug")
	}
	return err
}

// generatorConfig returns the generator settings of c.
func (c config) generatorConfig() beangen.Config {
	return beangen.Config{Indent: c.Indent, FieldPrefix: c.FieldPrefix}
}

// unescapeIndent accepts "\t" spelled out so tabs can be given on the
// command line and in the environment.
func unescapeIndent(v string) string {
	return strings.ReplaceAll(v, `\t`, "\t")
}
