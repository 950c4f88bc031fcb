// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package target

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/ajroetker/go-hwintrinsic/hwi"
)

// EnvPrefix prefixes the environment variables that override [Config]
// fields, e.g. HWINFO_ARCH or HWINFO_DISABLED_ISAS=AVX2,FMA.
const EnvPrefix = "HWINFO"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config selects the family to inspect and the ISAs a compilation may use.
type Config struct {
	Arch         string   `mapstructure:"arch" yaml:"arch"`
	Format       string   `mapstructure:"format" yaml:"format"`
	LogLevel     string   `mapstructure:"log_level" yaml:"log_level"`
	DisabledISAs []string `mapstructure:"disabled_isas" yaml:"disabled_isas"`
}

// DefaultConfig is the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Arch:     "native",
		Format:   FormatTable,
		LogLevel: "info",
	}
}

// LoadConfig reads the YAML file at path, if path is not empty, then applies
// environment overrides on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("arch", def.Arch)
	v.SetDefault("format", def.Format)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("disabled_isas", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields that do not depend on the selected family.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ForArch(c.Arch); err != nil {
		errs = append(errs, fmt.Errorf("arch: %w", err))
	}
	if !slices.Contains([]string{FormatTable, FormatJSON, FormatYAML}, c.Format) {
		errs = append(errs, fmt.Errorf("format: unknown output format %q", c.Format))
	}
	return errors.Join(errs...)
}

// Target returns the family selected by c.
func (c *Config) Target() (hwi.Target, error) {
	return ForArch(c.Arch)
}

// Support returns the ISA context for compiling against t: the detected host
// when t is the family of the host, every implemented ISA otherwise, minus
// the disabled ISAs in either case.
func (c *Config) Support(t hwi.Target) (*Support, error) {
	var s *Support
	if t.Arch() == hostArch && t.Arch() == Native().Arch() {
		s = DetectHost()
	} else {
		s = AllSupported(t)
	}
	if len(c.DisabledISAs) == 0 {
		return s, nil
	}

	disabled := make([]hwi.ISA, 0, len(c.DisabledISAs))
	for _, name := range c.DisabledISAs {
		isa := t.Registry().ParseISA(strings.TrimSpace(name))
		if isa == hwi.ISAIllegal {
			return nil, fmt.Errorf("disabled_isas: %s has no ISA %q", t.Arch(), name)
		}
		disabled = append(disabled, isa)
	}
	return s.Without(disabled...), nil
}
