package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/tblcli/tbl/pkg/texttable"
)

// Config holds the CLI configuration
type Config struct {
	Width         int    `json:"width"`
	Padding       int    `json:"padding"`
	Border        string `json:"border"`
	DefaultOutput string `json:"default_output,omitempty"`
}

// Defaults returns the built-in configuration: the texttable defaults with
// no preferred output mode.
func Defaults() *Config {
	base := texttable.DefaultConfig()
	return &Config{
		Width:   base.Width,
		Padding: base.Padding,
		Border:  base.Border.Vertical + base.Border.Horizontal + base.Border.Junction,
	}
}

// Load reads config from the XDG path. Missing file yields the defaults;
// keys absent from the file keep their default values.
func Load() (*Config, error) {
	path := ConfigPath()

	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json5.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the XDG config path
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to JSON (not JSON5 for writing - JSON is valid JSON5)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Get retrieves a config value by key name
func (c *Config) Get(key string) (string, error) {
	field, err := c.fieldByKey(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", field.Interface()), nil
}

// Set sets a config value by key name and saves
func (c *Config) Set(key, value string) error {
	field, err := c.fieldByKey(key)
	if err != nil {
		return err
	}
	if err := setField(field, key, value); err != nil {
		return err
	}
	return c.Save()
}

// Unset restores a config value to its default and saves
func (c *Config) Unset(key string) error {
	field, err := c.fieldByKey(key)
	if err != nil {
		return err
	}
	defaults, err := Defaults().fieldByKey(key)
	if err != nil {
		return err
	}
	field.Set(defaults)
	return c.Save()
}

// TableConfig converts the persisted settings into a texttable.Config.
// A malformed border falls back to the default glyphs.
func (c *Config) TableConfig() texttable.Config {
	cfg := texttable.DefaultConfig()
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Padding >= 0 {
		cfg.Padding = c.Padding
	}
	if border, err := ParseBorder(c.Border); err == nil {
		cfg.Border = border
	}
	return cfg
}

// ParseBorder converts a three-glyph string such as "|-+" into the
// vertical, horizontal and junction border glyphs.
func ParseBorder(s string) (texttable.Border, error) {
	glyphs := []rune(s)
	if len(glyphs) != 3 {
		return texttable.Border{}, fmt.Errorf("border must be exactly 3 characters (vertical, horizontal, junction), got %q", s)
	}
	return texttable.Border{
		Vertical:   string(glyphs[0]),
		Horizontal: string(glyphs[1]),
		Junction:   string(glyphs[2]),
	}, nil
}

// fieldByKey resolves a struct field by its json tag name
func (c *Config) fieldByKey(key string) (reflect.Value, error) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		jsonTag := t.Field(i).Tag.Get("json")
		if jsonTag == key || jsonTag == key+",omitempty" {
			return v.Field(i), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("unknown config key: %s", key)
}

// setField assigns a string value to a field, converting integer fields
func setField(field reflect.Value, key, value string) error {
	switch field.Kind() {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q is not a number", key, value)
		}
		field.SetInt(int64(n))
	default:
		field.SetString(value)
	}
	return nil
}
