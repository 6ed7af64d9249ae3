// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/dolmetsch/dictionary"
	"github.com/cybrota/dolmetsch/translate"
	"gopkg.in/yaml.v3"
)

const configFileName = ".dolmetsch.yaml"

type DictionaryConfig struct {
	ShowProgress      bool `yaml:"show_progress"`
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type TranslateConfig struct {
	FailOnMiss           bool          `yaml:"fail_on_miss"`
	TokenCacheExpiration time.Duration `yaml:"token_cache_expiration"`
}

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Translate  TranslateConfig  `yaml:"translate"`
}

var defaultConfig = Config{
	Dictionary: DictionaryConfig{
		ShowProgress:      false,
		BloomFilterSize:   dictionary.DefaultBloomFilterSize,
		BloomFilterHashes: dictionary.DefaultBloomFilterHashes,
	},
	Translate: TranslateConfig{
		FailOnMiss:           true,
		TokenCacheExpiration: translate.DefaultTokenCacheExpiration,
	},
}

// LoadConfig reads ~/.dolmetsch.yaml, falling back to defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the configuration at configPath. Keys absent from
// the file keep their default values. A missing file yields the defaults;
// a file that does not parse is an error.
func LoadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	return &cfg, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) dictionaryOptions(progress io.Writer) dictionary.Options {
	return dictionary.Options{
		BloomFilterSize:   c.Dictionary.BloomFilterSize,
		BloomFilterHashes: c.Dictionary.BloomFilterHashes,
		ShowProgress:      c.Dictionary.ShowProgress,
		ProgressOutput:    progress,
	}
}

func (c *Config) translateOptions() translate.Options {
	return translate.Options{
		TokenCacheExpiration: c.Translate.TokenCacheExpiration,
	}
}

func displaySettings(w io.Writer, configPath string) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 Dolmetsch Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "📖 %sDictionary:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n", Green, Reset, config.Dictionary.ShowProgress)
	fmt.Fprintf(w, "  • %sbloom_filter_size%s: %d bits\n", Green, Reset, config.Dictionary.BloomFilterSize)
	fmt.Fprintf(w, "  • %sbloom_filter_hashes%s: %d\n\n", Green, Reset, config.Dictionary.BloomFilterHashes)

	fmt.Fprintf(w, "🔤 %sTranslate:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sfail_on_miss%s: %t\n", Green, Reset, config.Translate.FailOnMiss)
	if config.Translate.FailOnMiss {
		fmt.Fprintf(w, "    Unknown words make the run exit with status 1\n")
	} else {
		fmt.Fprintf(w, "    Unknown words are marked but the run exits with status 0\n")
	}
	fmt.Fprintf(w, "  • %stoken_cache_expiration%s: %s\n", Green, Reset, config.Translate.TokenCacheExpiration)

	return nil
}
