package config

import (
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/remixlab/dandelion/internal/config/loader"
)

// Config is a decoded binding configuration.
type Config struct {
	// Source is the path the configuration was loaded from, if any.
	Source string

	// Clear removes every existing binding before anything else is applied.
	Clear bool

	// Preset names the binding scheme installed first, e.g. "drag-arcball".
	Preset string

	// Sensitivity overrides the pointer sensitivities.
	Sensitivity Sensitivity

	// Bindings are applied in order after the preset.
	Bindings []Binding
}

// Sensitivity holds optional sensitivity overrides. Nil fields keep the
// agent's current value.
type Sensitivity struct {
	X *float64
	Y *float64
}

// Binding is one binding edit.
type Binding struct {
	// Target is "eye" or "frame".
	Target string
	// Shortcut is a shortcut specification such as "Ctrl+Shift+Wheel".
	Shortcut string
	// Action names the bound action, e.g. "ROTATE". Ignored when Remove is set.
	Action string
	// Clicks makes the entry a click binding when positive.
	Clicks int
	// Remove deletes the binding instead of setting it.
	Remove bool
}

type options struct {
	fs        loader.FileSystem
	envPrefix string
}

// Option configures loading.
type Option func(*options)

// WithFS reads configuration files from fsys instead of the OS file system.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv layers the environment variables with the given prefix over the
// file, e.g. DANDELION_PRESET and DANDELION_XSENS.
func WithEnv(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// Load reads and decodes the configuration file at path. The format is
// chosen by extension.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS()}
	for _, opt := range opts {
		opt(&o)
	}

	l, err := loader.ForPath(o.fs, path)
	if err != nil {
		return nil, err
	}
	data, err := l.Load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if o.envPrefix != "" {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		data = loader.DeepMerge(data, env)
	}

	cfg, err := FromMap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// LoadReader reads and decodes a configuration in the named format
// ("toml", "yaml", "yml" or "json").
func LoadReader(r io.Reader, format string) (*Config, error) {
	f, err := loader.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	l, err := loader.New(f, nil, "")
	if err != nil {
		return nil, err
	}
	data, err := l.LoadFromReader(r)
	if err != nil {
		return nil, err
	}
	return FromMap(data)
}

// FromMap decodes a configuration from a generic map as produced by the
// loaders. Unknown keys are ignored.
func FromMap(data map[string]any) (*Config, error) {
	cfg := &Config{}
	var err error

	if cfg.Clear, err = optBool(data, "clear", "clear"); err != nil {
		return nil, err
	}
	if cfg.Preset, err = optString(data, "preset", "preset"); err != nil {
		return nil, err
	}

	if raw, ok := data["sensitivity"]; ok {
		sens, ok := raw.(map[string]any)
		if !ok {
			return nil, typeError("sensitivity", "table", raw)
		}
		if cfg.Sensitivity.X, err = optFloat(sens, "x", "sensitivity.x"); err != nil {
			return nil, err
		}
		if cfg.Sensitivity.Y, err = optFloat(sens, "y", "sensitivity.y"); err != nil {
			return nil, err
		}
	}

	if raw, ok := data["bindings"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return nil, typeError("bindings", "array", raw)
		}
		for i, item := range list {
			b, err := decodeBinding(i, item)
			if err != nil {
				return nil, err
			}
			cfg.Bindings = append(cfg.Bindings, b)
		}
	}

	return cfg, nil
}

func decodeBinding(i int, raw any) (Binding, error) {
	path := fmt.Sprintf("bindings[%d]", i)
	m, ok := raw.(map[string]any)
	if !ok {
		return Binding{}, typeError(path, "table", raw)
	}

	var (
		b   Binding
		err error
	)
	if b.Target, err = optString(m, "target", path+".target"); err != nil {
		return b, err
	}
	if b.Shortcut, err = optString(m, "shortcut", path+".shortcut"); err != nil {
		return b, err
	}
	if b.Action, err = optString(m, "action", path+".action"); err != nil {
		return b, err
	}
	if b.Remove, err = optBool(m, "remove", path+".remove"); err != nil {
		return b, err
	}
	if b.Clicks, err = optInt(m, "clicks", path+".clicks"); err != nil {
		return b, err
	}
	return b, nil
}

func typeError(path, expected string, v any) error {
	actual := "nil"
	if v != nil {
		actual = reflect.TypeOf(v).String()
	}
	return &TypeError{Path: path, Expected: expected, Actual: actual}
}

func optString(m map[string]any, key, path string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", typeError(path, "string", raw)
	}
	return s, nil
}

func optBool(m map[string]any, key, path string) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, typeError(path, "bool", raw)
	}
	return b, nil
}

// optFloat accepts any numeric value. TOML and the environment yield
// int64, YAML int and JSON float64.
func optFloat(m map[string]any, key, path string) (*float64, error) {
	raw, ok := m[key]
	if !ok {
		return nil, nil
	}
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	default:
		return nil, typeError(path, "number", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, typeError(path, "finite number", raw)
	}
	return &f, nil
}

func optInt(m map[string]any, key, path string) (int, error) {
	raw, ok := m[key]
	if !ok {
		return 0, nil
	}
	switch v := raw.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, typeError(path, "integer", raw)
}
