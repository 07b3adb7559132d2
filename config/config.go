/*
Package config implements loading and writing the demo's config.yaml file.

Without a file, Default() reproduces the fixed settings of the demo: a
640x480 window that closes on any key.
*/
package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"unicode"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "SDL2 OpenGL ES 2"

// KeyAction describes a key that closes the window with the given return
// value.
type KeyAction struct {
	Key         sdl.Keycode
	ReturnValue int
	Description string
}

// Config holds the settings of the demo.
type Config struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	VSync      bool
	Debug      bool
	GreyStep   float32
	// when empty, any key closes the window with return value 0.
	KeyActions []KeyAction
}

type tmpKeyAction struct {
	Key         string
	ReturnValue int `yaml:"returnValue"`
	Description string
}

type tmpConfig struct {
	Title         string
	Width, Height int32
	Fullscreen    bool
	VSync         *bool `yaml:"vsync"`
	Debug         bool
	GreyStep      float32 `yaml:"greyStep"`
	KeyActions    []tmpKeyAction `yaml:"keyActions"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title: DefaultTitle, Width: 640, Height: 480,
		VSync: true, GreyStep: 0.01,
	}
}

var titleCleanup = transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cc)))

// cleanTitle normalizes the title to NFC and strips control characters.
func cleanTitle(input string) string {
	result, _, err := transform.String(titleCleanup, input)
	if err != nil {
		return input
	}
	return result
}

// MarshalYAML writes key actions by their SDL key names.
func (c *Config) MarshalYAML() (interface{}, error) {
	vsync := c.VSync
	ret := tmpConfig{
		Title: c.Title, Width: c.Width, Height: c.Height,
		Fullscreen: c.Fullscreen, VSync: &vsync, Debug: c.Debug,
		GreyStep:   c.GreyStep,
		KeyActions: make([]tmpKeyAction, len(c.KeyActions))}
	for i := range c.KeyActions {
		a := c.KeyActions[i]
		ret.KeyActions[i] = tmpKeyAction{
			Key:         sdl.GetKeyName(a.Key),
			ReturnValue: a.ReturnValue,
			Description: a.Description}
	}
	return ret, nil
}

var knownKeys = map[string]bool{
	"title": true, "width": true, "height": true, "fullscreen": true,
	"vsync": true, "debug": true, "greyStep": true, "keyActions": true,
}

// UnmarshalYAML reads a config. Missing values take their defaults.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	// node.Decode does not inherit the decoder's KnownFields setting.
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if !knownKeys[key.Value] {
				return errors.Errorf("line %d: unknown field %q", key.Line, key.Value)
			}
		}
	}
	var tmp tmpConfig
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Default()
	if tmp.Title != "" {
		c.Title = cleanTitle(tmp.Title)
	}
	if tmp.Width != 0 || tmp.Height != 0 {
		if tmp.Width <= 0 || tmp.Height <= 0 {
			return errors.Errorf("invalid size (w=%d, h=%d)", tmp.Width, tmp.Height)
		}
		c.Width, c.Height = tmp.Width, tmp.Height
	}
	if tmp.GreyStep < 0 || tmp.GreyStep >= 1 {
		return errors.Errorf("greyStep must be in [0, 1), got %v", tmp.GreyStep)
	}
	if tmp.GreyStep != 0 {
		c.GreyStep = tmp.GreyStep
	}
	if tmp.VSync != nil {
		c.VSync = *tmp.VSync
	}
	c.Fullscreen = tmp.Fullscreen
	c.Debug = tmp.Debug

	c.KeyActions = make([]KeyAction, 0, len(tmp.KeyActions))
	for i := range tmp.KeyActions {
		ta := tmp.KeyActions[i]
		a := KeyAction{Key: sdl.GetKeyFromName(ta.Key),
			ReturnValue: ta.ReturnValue, Description: ta.Description}
		if a.Key == sdl.K_UNKNOWN {
			return errors.Errorf("unknown key: %s", ta.Key)
		}
		c.KeyActions = append(c.KeyActions, a)
	}
	return nil
}

// Load reads the config at path. The file must exist.
func Load(path string) (Config, error) {
	input, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to read config")
	}
	return Parse(input)
}

// Parse decodes a YAML config. Unknown fields are rejected.
func Parse(input []byte) (Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(input))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return c, nil
}

// Write stores c at path.
func (c *Config) Write(path string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return errors.Wrap(ioutil.WriteFile(path, output, 0644), "unable to write config")
}

// Override applies command line values. Width and height only take effect
// when both are non-zero, which also leaves fullscreen mode.
func (c *Config) Override(width, height int32, fullscreen, debug bool) {
	if width != 0 && height != 0 {
		c.Width = width
		c.Height = height
		c.Fullscreen = false
	} else if fullscreen {
		c.Fullscreen = true
	}
	if debug {
		c.Debug = true
	}
}
