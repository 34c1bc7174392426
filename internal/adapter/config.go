package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	m "github.com/mouse-blink/solscan/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the scan root when no --config is given.
const DefaultConfigFile = ".solscan.yaml"

// Config mirrors the optional YAML configuration file. Zero values mean
// "use the built-in default".
type Config struct {
	Extensions    []string `yaml:"extensions"`
	ExcludeDirs   []string `yaml:"exclude_dirs"`
	Disable       []string `yaml:"disable"`
	DisplayLimit  int      `yaml:"display_limit"`
	ExcerptLength int      `yaml:"excerpt_length"`
	Parallel      int      `yaml:"parallel"`
	TestDirs      []string `yaml:"test_dirs"`
	CoverageFiles []string `yaml:"coverage_files"`
	DecisionDirs  []string `yaml:"decision_dirs"`
}

// ConfigStore loads scanner configuration.
type ConfigStore interface {
	// Load reads the file at path. When required is false a missing file
	// yields a zero Config instead of an error.
	Load(path m.Path, required bool) (Config, error)
}

type configStore struct{}

// NewConfigStore constructs a YAML-backed ConfigStore.
func NewConfigStore() ConfigStore {
	return &configStore{}
}

func (cs *configStore) Load(path m.Path, required bool) (Config, error) {
	// #nosec G304 - config path is chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML configuration, rejecting unknown keys.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if cfg.DisplayLimit < 0 || cfg.ExcerptLength < 0 || cfg.Parallel < 0 {
		return Config{}, fmt.Errorf("display_limit, excerpt_length and parallel must not be negative")
	}

	return cfg, nil
}
