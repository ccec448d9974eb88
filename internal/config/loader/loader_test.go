package loader

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

const tomlBindings = `
preset = "drag-arcball"

[sensitivity]
x = 1.5
y = -1.0

[[bindings]]
target = "eye"
shortcut = "Shift+Left"
action = "ZOOM_ON_REGION"

[[bindings]]
target = "frame"
shortcut = "Left"
clicks = 3
action = "CENTER_SCENE"
`

const yamlBindings = `
preset: drag-arcball
sensitivity:
  x: 1.5
  y: -1.0
bindings:
  - target: eye
    shortcut: Shift+Left
    action: ZOOM_ON_REGION
  - target: frame
    shortcut: Left
    clicks: 3
    action: CENTER_SCENE
`

const jsonBindings = `{
  "preset": "drag-arcball",
  "sensitivity": {"x": 1.5, "y": -1.0},
  "bindings": [
    {"target": "eye", "shortcut": "Shift+Left", "action": "ZOOM_ON_REGION"},
    {"target": "frame", "shortcut": "Left", "clicks": 3, "action": "CENTER_SCENE"}
  ]
}`

func TestLoadFormats(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bindings.toml", tomlBindings)
	memfs.AddFile("/bindings.yaml", yamlBindings)
	memfs.AddFile("/bindings.json", jsonBindings)

	for _, path := range []string{"/bindings.toml", "/bindings.yaml", "/bindings.json"} {
		t.Run(path, func(t *testing.T) {
			l, err := ForPath(memfs, path)
			if err != nil {
				t.Fatalf("ForPath(%q) error = %v", path, err)
			}
			config, err := l.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if config["preset"] != "drag-arcball" {
				t.Errorf("preset = %v, want drag-arcball", config["preset"])
			}

			sens, ok := config["sensitivity"].(map[string]any)
			if !ok {
				t.Fatalf("sensitivity is %T, want a map", config["sensitivity"])
			}
			if sens["x"] != 1.5 {
				t.Errorf("sensitivity.x = %v (%T), want 1.5", sens["x"], sens["x"])
			}

			bindings, ok := config["bindings"].([]any)
			if !ok || len(bindings) != 2 {
				t.Fatalf("bindings = %#v, want 2 entries", config["bindings"])
			}
			second, ok := bindings[1].(map[string]any)
			if !ok {
				t.Fatalf("bindings[1] is %T, want a map", bindings[1])
			}
			if second["action"] != "CENTER_SCENE" {
				t.Errorf("bindings[1].action = %v, want CENTER_SCENE", second["action"])
			}
			if second["clicks"] == nil {
				t.Error("bindings[1].clicks missing")
			}
		})
	}
}

func TestLoadNonExistent(t *testing.T) {
	memfs := NewMemFS()

	for _, path := range []string{"/none.toml", "/none.yml", "/none.json"} {
		l, err := ForPath(memfs, path)
		if err != nil {
			t.Fatalf("ForPath(%q) error = %v", path, err)
		}
		config, err := l.Load()
		if err != nil {
			t.Errorf("%s: expected no error for non-existent file, got: %v", path, err)
		}
		if config != nil {
			t.Errorf("%s: expected nil config for non-existent file", path)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", "preset = \"a\"\n[sensitivity\nx = 1\n")
	memfs.AddFile("/invalid.yaml", "bindings: [\n")
	memfs.AddFile("/invalid.json", `{"preset": `)
	memfs.AddFile("/array.json", `[1, 2]`)

	for _, path := range []string{"/invalid.toml", "/invalid.yaml", "/invalid.json", "/array.json"} {
		t.Run(path, func(t *testing.T) {
			l, err := ForPath(memfs, path)
			if err != nil {
				t.Fatalf("ForPath(%q) error = %v", path, err)
			}
			_, err = l.Load()
			if err == nil {
				t.Fatal("expected parse error")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Path != path {
				t.Errorf("Path = %q, want %q", parseErr.Path, path)
			}
		})
	}
}

func TestTOMLParseErrorPosition(t *testing.T) {
	l, err := New(FormatTOML, nil, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = l.LoadFromReader(strings.NewReader("preset = \"a\"\n[sensitivity\n"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Line != 2 {
		t.Errorf("Line = %d, want 2", parseErr.Line)
	}
	if parseErr.Path != "<toml>" {
		t.Errorf("Path = %q, want <toml>", parseErr.Path)
	}
	if !strings.Contains(parseErr.Error(), "line 2") {
		t.Errorf("Error() = %q, want line information", parseErr.Error())
	}
}

func TestLoadFromReader(t *testing.T) {
	tests := []struct {
		format  Format
		content string
	}{
		{FormatTOML, `preset = "move-arcball"`},
		{FormatYAML, `preset: move-arcball`},
		{FormatJSON, `{"preset": "move-arcball"}`},
	}

	for _, tt := range tests {
		l, err := New(tt.format, nil, "")
		if err != nil {
			t.Fatalf("New(%v) error = %v", tt.format, err)
		}
		config, err := l.LoadFromReader(strings.NewReader(tt.content))
		if err != nil {
			t.Fatalf("%v: LoadFromReader failed: %v", tt.format, err)
		}
		if config["preset"] != "move-arcball" {
			t.Errorf("%v: preset = %v, want move-arcball", tt.format, config["preset"])
		}
	}
}

func TestEmptyDocument(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		l, _ := New(format, nil, "")
		config, err := l.LoadFromReader(strings.NewReader(""))
		if err != nil {
			t.Fatalf("%v: LoadFromReader failed: %v", format, err)
		}
		if config == nil || len(config) != 0 {
			t.Errorf("%v: config = %v, want empty map", format, config)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"bindings.toml", FormatTOML, false},
		{"/etc/dandelion/bindings.yml", FormatYAML, false},
		{"b.YAML", FormatYAML, false},
		{"b.json", FormatJSON, false},
		{"b.ini", "", true},
		{"bindings", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v, want %v", tt.path, got, err, tt.want)
		}
	}

	if _, err := New(Format("xml"), nil, ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("New(xml) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEnvLoader(t *testing.T) {
	env := map[string]string{
		"TEST_PRESET": "move-first-person",
		"TEST_XSENS":  "2",
		"TEST_YSENS":  "-0.5",
		"TEST_OTHER":  "ignored",
	}
	l := NewEnvLoader("TEST_")
	l.lookup = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"preset": "move-first-person",
		"sensitivity": map[string]any{
			"x": int64(2),
			"y": -0.5,
		},
	}
	if !reflect.DeepEqual(config, want) {
		t.Errorf("Load() = %v, want %v", config, want)
	}

	l.AddMapping("OTHER", "extra.value")
	config, _ = l.Load()
	if extra, _ := config["extra"].(map[string]any); extra["value"] != "ignored" {
		t.Errorf("extra.value = %v, want ignored", config["extra"])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"Off", false},
		{"42", int64(42)},
		{"1.25", 1.25},
		{"drag-arcball", "drag-arcball"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.input); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.input, got, got, tt.want, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"preset": "drag-arcball"},
			expected: map[string]any{"preset": "drag-arcball"},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"preset": "drag-arcball"},
			src:      nil,
			expected: map[string]any{"preset": "drag-arcball"},
		},
		{
			name: "nested maps merge",
			dst: map[string]any{
				"sensitivity": map[string]any{"x": 1.0, "y": 1.0},
			},
			src: map[string]any{
				"sensitivity": map[string]any{"y": -1.0},
			},
			expected: map[string]any{
				"sensitivity": map[string]any{"x": 1.0, "y": -1.0},
			},
		},
		{
			name:     "scalar replaces map",
			dst:      map[string]any{"sensitivity": map[string]any{"x": 1.0}},
			src:      map[string]any{"sensitivity": 2.0},
			expected: map[string]any{"sensitivity": 2.0},
		},
		{
			name:     "slices are replaced",
			dst:      map[string]any{"bindings": []any{"a", "b"}},
			src:      map[string]any{"bindings": []any{"c"}},
			expected: map[string]any{"bindings": []any{"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DeepMerge() = %v, want %v", got, tt.expected)
			}
		})
	}
}
