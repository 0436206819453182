// Package config handles loading and saving game definitions and settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/snack"
	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	GamesFile    = "games.yaml"
	SettingsFile = "settings.yaml"
)

// AttributeConfig is one comparable attribute of a game.
type AttributeConfig struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
	Kind  string `yaml:"kind"`            // categorical, boolean, numeric, numeric_inverted, set
	Field string `yaml:"field,omitempty"` // Dataset key when it differs from name
	Unit  string `yaml:"unit,omitempty"`
}

// GameConfig defines one guessing game.
type GameConfig struct {
	Name        string            `yaml:"name"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description,omitempty"`
	Dataset     string            `yaml:"dataset"`            // Relative to the data dir unless absolute
	Identity    string            `yaml:"identity,omitempty"` // Defaults to "name"
	Pool        []string          `yaml:"pool,omitempty"`     // Secret difficulties, defaults to easy+medium
	MatchSize   int               `yaml:"match_size,omitempty"`
	Attributes  []AttributeConfig `yaml:"attributes"`
	Import      *ImportConfig     `yaml:"import,omitempty"`
}

// ImportConfig configures CSV conversion for a game.
type ImportConfig struct {
	ListSeparator  string            `yaml:"list_separator,omitempty"`
	Columns        map[string]string `yaml:"columns,omitempty"`
	DifficultyFrom string            `yaml:"difficulty_from,omitempty"`
	EasyAt         float64           `yaml:"easy_at,omitempty"`
	MediumAt       float64           `yaml:"medium_at,omitempty"`
}

// Settings holds user preferences.
type Settings struct {
	DayBoundary string `yaml:"day_boundary"` // local or utc
	DataDir     string `yaml:"data_dir,omitempty"`
	Database    string `yaml:"database,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Config holds all user configuration.
type Config struct {
	Games    []GameConfig
	Settings Settings
}

// DefaultSettings returns the settings used when none are saved.
func DefaultSettings() Settings {
	return Settings{
		DayBoundary: string(engine.BoundaryLocal),
		LogLevel:    "info",
	}
}

// Boundary returns the configured day boundary.
func (s Settings) Boundary() engine.DayBoundary {
	if s.DayBoundary == string(engine.BoundaryUTC) {
		return engine.BoundaryUTC
	}
	return engine.BoundaryLocal
}

// Schema converts the game's attributes into a validated schema.
func (g GameConfig) Schema() (snack.Schema, error) {
	schema := snack.Schema{Identity: g.Identity}
	for _, a := range g.Attributes {
		kind, err := snack.ParseKind(a.Kind)
		if err != nil {
			return snack.Schema{}, fmt.Errorf("game %s: attribute %q: %w", g.Name, a.Name, err)
		}
		label := a.Label
		if label == "" {
			label = a.Name
		}
		schema.Attributes = append(schema.Attributes, snack.Attribute{
			Name:  a.Name,
			Label: label,
			Kind:  kind,
			Field: a.Field,
			Unit:  a.Unit,
		})
	}
	if err := schema.Validate(); err != nil {
		return snack.Schema{}, fmt.Errorf("game %s: %w", g.Name, err)
	}
	return schema, nil
}

// Eligible returns the difficulties of the secret pool.
func (g GameConfig) Eligible() ([]snack.Difficulty, error) {
	if len(g.Pool) == 0 {
		return engine.DefaultEligible, nil
	}
	out := make([]snack.Difficulty, 0, len(g.Pool))
	for _, p := range g.Pool {
		d, err := snack.ParseDifficulty(p)
		if err != nil {
			return nil, fmt.Errorf("game %s: pool: %w", g.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// DatasetPath resolves the dataset file against dataDir.
func (g GameConfig) DatasetPath(dataDir string) string {
	if filepath.IsAbs(g.Dataset) || dataDir == "" {
		return g.Dataset
	}
	return filepath.Join(dataDir, g.Dataset)
}

// Game returns the named game.
func (c *Config) Game(name string) (*GameConfig, error) {
	for i := range c.Games {
		if c.Games[i].Name == name {
			return &c.Games[i], nil
		}
	}
	names := make([]string, 0, len(c.Games))
	for _, g := range c.Games {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown game %q (available: %v)", name, names)
}

// LoadGames loads game definitions from a YAML file.
func LoadGames(path string) ([]GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading games file: %w", err)
	}

	var games struct {
		Games []GameConfig `yaml:"games"`
	}
	if err := yaml.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parsing games file: %w", err)
	}

	seen := make(map[string]bool, len(games.Games))
	for _, g := range games.Games {
		if g.Name == "" {
			return nil, fmt.Errorf("parsing games file: game without a name")
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("parsing games file: duplicate game %q", g.Name)
		}
		seen[g.Name] = true
	}

	return games.Games, nil
}

// SaveGames saves game definitions to a YAML file.
func SaveGames(path string, games []GameConfig) error {
	data := struct {
		Games []GameConfig `yaml:"games"`
	}{Games: games}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling games: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing games file: %w", err)
	}

	return nil
}

// LoadSettings loads settings from a YAML file, filling defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings file: %w", err)
	}

	switch engine.DayBoundary(s.DayBoundary) {
	case engine.BoundaryLocal, engine.BoundaryUTC:
	case "":
		s.DayBoundary = string(engine.BoundaryLocal)
	default:
		return s, fmt.Errorf("parsing settings file: unknown day_boundary %q", s.DayBoundary)
	}

	return s, nil
}

// SaveSettings saves settings to a YAML file.
func SaveSettings(path string, s Settings) error {
	out, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

// LoadConfig loads all configuration from a directory. A missing settings
// file is not an error; a missing games file is.
func LoadConfig(dir string) (*Config, error) {
	games, err := LoadGames(filepath.Join(dir, GamesFile))
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettings(filepath.Join(dir, SettingsFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		Games:    games,
		Settings: settings,
	}, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "snack"), nil
}
