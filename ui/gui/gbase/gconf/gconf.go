package gconf

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/rules"
	"evilboard/ui/board"
	"evilboard/ui/gui/gbase/gos"
)

const DefaultFile = "evilboard.json"

var ErrUnknownFormat = errors.New("unknown config format")

type Config struct {
	Theme    string `json:"theme" yaml:"theme"`         // light/dark
	Board    string `json:"board" yaml:"board"`         // green/brown/blue
	Role     string `json:"role" yaml:"role"`           // white/black/analyst/spectator
	Flipped  bool   `json:"flipped" yaml:"flipped"`     //
	FEN      string `json:"fen" yaml:"fen"`             // start position
	Lang     string `json:"language" yaml:"language"`   // en/ru
	WindowW  int    `json:"window_w" yaml:"window_w"`   //
	WindowH  int    `json:"window_h" yaml:"window_h"`   //
	Debug    bool   `json:"debug" yaml:"debug"`         // true/false
	LogLevel string `json:"log_level" yaml:"log_level"` // debug/info/warn/error

	file string
}

func defaultConfig() Config {
	return Config{
		Theme:    "light",
		Board:    board.GreenStyle.Name,
		Role:     "analyst",
		Flipped:  false,
		FEN:      base.FEN_START_GAME,
		Lang:     "en",
		WindowW:  800,
		WindowH:  640,
		Debug:    false,
		LogLevel: "info",
	}
}

// NewGUIConfig loads file, or returns the defaults when it does not exist.
// The format follows the extension: .json, .yaml or .yml.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}
	if _, err := formatOf(file); err != nil {
		return nil, err
	}

	data, err := gos.ReadFile(file)
	if gos.IsNotExist(err) {
		def := defaultConfig()
		def.file = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	var c Config
	if err := c.decode(file, data); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	c.file = file
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) File() string { return c.file }

func (c *Config) Save() error {
	file := c.file
	if file == "" {
		file = DefaultFile
	}
	data, err := c.encode(file)
	if err != nil {
		return err
	}
	return gos.WriteFile(file, data, 0644)
}

func (c *Config) decode(file string, data []byte) error {
	format, err := formatOf(file)
	if err != nil {
		return err
	}
	if format == "yaml" {
		return yaml.Unmarshal(data, c)
	}
	return json.Unmarshal(data, c)
}

func (c *Config) encode(file string) ([]byte, error) {
	format, err := formatOf(file)
	if err != nil {
		return nil, err
	}
	if format == "yaml" {
		return yaml.Marshal(c)
	}
	return json.MarshalIndent(c, "", "    ")
}

func formatOf(file string) (string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, file)
	}
}

// BoardStyle resolves the board colour scheme by name.
func (c *Config) BoardStyle() board.Style {
	s, _ := board.StyleFromString(c.Board)
	return s
}

func (c *Config) BoardRole() game.Role {
	r, err := game.ParseRole(c.Role)
	if err != nil {
		return game.Analyst()
	}
	return r
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if _, ok := board.StyleFromString(c.Board); !ok {
		c.Board = def.Board
	}
	if _, err := game.ParseRole(c.Role); err != nil || c.Role == "" {
		c.Role = def.Role
	}
	if _, err := rules.FromFEN(c.FEN); err != nil {
		c.FEN = def.FEN
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}
