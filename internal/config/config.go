package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
)

// Duration в yaml принимает "5m", целые и дробные секунды
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func LoadConfig(c *Config) error {
	var path string

	switch os.Getenv("ENV") {
	case "local":
		path = localConfigPath
	case "dev":
		path = devConfigPath
	case "prod":
		path = configPath
	default:
		path = configPath
	}

	if err := parseConfig(c, path, CommonParseOptions); err != nil {
		return err
	}

	return c.Validate()
}

// Validate проверки, которые нельзя выразить тегами
func (c Config) Validate() error {
	switch c.Application.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Application.LogFormat)
	}

	if c.Application.UpstreamTimeout <= 0 {
		return errors.New("Application.UpstreamTimeout must be positive")
	}

	if c.Scratch.SweepInterval > 0 && c.Scratch.OrphanTTL <= 0 {
		return errors.New("Scratch.OrphanTTL is required when SweepInterval is set")
	}

	return nil
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp("clipper", "Запустить сервер", "", c, opts)
}

func readFile(cfg interface{}, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Fatal(cerr)
		}
	}()

	decoder := yaml.NewDecoder(f)

	if err = decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// UnmarshalYAML реализует InterfaceUnmarshaler (UnmarshalYAML(func(interface{}) error) error).
// Поддерживает:
// - строку parseable через time.ParseDuration, например "5m", "1h30m"
// - число (целое или дробное), интерпретируем как секунды
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// 1) Попробовать как строку ("5m"), число тоже может прийти строкой
	var s string
	if err := unmarshal(&s); err == nil {
		if dur, err := time.ParseDuration(s); err == nil {
			*d = Duration(dur)

			return nil
		}

		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*d = seconds(f)

			return nil
		}
	}

	// 2) Попробовать как float64, целые тоже сюда
	var f float64
	if err := unmarshal(&f); err == nil {
		*d = seconds(f)

		return nil
	}

	return fmt.Errorf("unsupported duration format")
}

func seconds(f float64) Duration {
	return Duration(time.Duration(f * float64(time.Second)))
}

// MarshalYAML - полезно при сериализации обратно в YAML (запишет строку "5m0s").
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
