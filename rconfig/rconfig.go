// Package rconfig loads the route table and router settings from a TOML or
// YAML file, so the application shell can keep its routes out of code.
//
// A TOML file looks like:
//
//	use_fragment = false
//	log_level = "debug"
//
//	[[routes]]
//	path = "/"
//	view = "dashboard"
//
//	[[routes]]
//	path = "/feasibility"
//	view = "feasibility-wizard"
//
// View names are looked up in a Views registry supplied by the caller.
package rconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vugu/vgnav"
	"github.com/vugu/vgnav/internal/logging"
)

// ErrUnknownView is returned by Build when a route names a view missing from the registry.
var ErrUnknownView = errors.New("unknown view")

// ErrUnknownKey is returned by Parse when a TOML file has keys Config does not
// define.  Unknown YAML keys are rejected too, with the decoder's own error.
var ErrUnknownKey = errors.New("unknown config key")

// ErrUnknownFormat is returned for files that are neither TOML nor YAML/JSON.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is the encoding of a config file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml" // also reads JSON
)

// Config is the router configuration.
type Config struct {
	UseFragment bool          `toml:"use_fragment" yaml:"use_fragment"`
	LogLevel    string        `toml:"log_level" yaml:"log_level"`
	NotFound    string        `toml:"not_found" yaml:"not_found"` // optional view name for unmatched paths
	Routes      []RouteConfig `toml:"routes" yaml:"routes"`
}

// RouteConfig is one entry of the route table.
type RouteConfig struct {
	Path string `toml:"path" yaml:"path"`
	View string `toml:"view" yaml:"view"`
}

// Views maps view names used in the config to view instances.
type Views map[string]interface{}

// FormatForFile picks the format from the file extension.
func FormatForFile(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route config: %w", err)
	}
	cfg, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("parsing route config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config in the given format.
func Parse(b []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(b)).Decode(&cfg)
		if err != nil {
			return nil, err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrUnknownKey, undec)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &cfg, nil
}

// Build creates the route list, resolving view names against views.
// Routes keep the order they have in the config.
func (c *Config) Build(views Views) (*vgnav.RouteList, error) {
	rl := &vgnav.RouteList{}
	for _, rc := range c.Routes {
		v, ok := views[rc.View]
		if !ok {
			return nil, fmt.Errorf("route %q: %w %q", rc.Path, ErrUnknownView, rc.View)
		}
		if err := rl.AddRoute(rc.Path, v); err != nil {
			return nil, err
		}
	}
	if c.NotFound != "" {
		v, ok := views[c.NotFound]
		if !ok {
			return nil, fmt.Errorf("not found view: %w %q", ErrUnknownView, c.NotFound)
		}
		rl.SetNotFound(v)
	}
	return rl, nil
}

// NewRouter builds the route list and returns a Router backed by the
// browser history.  Views implementing vgnav.NavigatorSetter get the router
// injected.  The router still needs Mount to be called.
func (c *Config) NewRouter(views Views, eventEnv vgnav.EventEnv) (*vgnav.Router, error) {
	rl, err := c.Build(views)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		logging.SetRawLogLevel(c.LogLevel)
	}
	r := vgnav.New(rl, &vgnav.BrowserHistory{UseFragment: c.UseFragment}, eventEnv)
	vgnav.InjectNavigator(r, rl)
	return r, nil
}
