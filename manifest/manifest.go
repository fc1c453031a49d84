// Package manifest describes shader programs in TOML or YAML files and
// builds them with a shader.Manager.
//
// A TOML manifest looks like:
//
//	use = "basic"
//
//	[[program]]
//	name = "basic"
//	stages = { vertex = "basic.vert", fragment = "basic.frag" }
//
//	[[program.uniform]]
//	name = "color"
//	type = "vec4"
//	value = [1.0, 0.0, 0.0, 1.0]
//
// The YAML form uses the keys "use", "programs", "stages" and "uniforms".
// Stage paths are relative to the manifest file.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/shader"
)

// ErrDuplicateStage is returned when a program lists more than one source
// for the same stage kind.
var ErrDuplicateStage = errors.New("duplicate shader stage")

// Format is a manifest encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("manifest %s: unknown format", path)
}

// Manifest lists programs to build and optionally the one to use first.
type Manifest struct {
	Use      string    `toml:"use,omitempty" yaml:"use,omitempty"`
	Programs []Program `toml:"program" yaml:"programs"`

	dir string // stage paths are resolved against dir
}

// Program is one named program.
type Program struct {
	Name     string            `toml:"name" yaml:"name"`
	Stages   map[string]string `toml:"stages" yaml:"stages"`
	Uniforms []Uniform         `toml:"uniform,omitempty" yaml:"uniforms,omitempty"`
}

// Uniform is an initial uniform value. Type is a GLSL type name; Count
// makes it an array; Value holds Count elements back to back, matrices
// column-major.
type Uniform struct {
	Name      string    `toml:"name" yaml:"name"`
	Type      string    `toml:"type" yaml:"type"`
	Value     []float64 `toml:"value" yaml:"value"`
	Count     int       `toml:"count,omitempty" yaml:"count,omitempty"`
	Transpose bool      `toml:"transpose,omitempty" yaml:"transpose,omitempty"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Decode parses and validates a manifest. Stage paths are used as given.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &m)
	case YAML:
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks names, stage kinds and uniform types.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Programs))
	for _, p := range m.Programs {
		if p.Name == "" {
			return errors.New("program without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("program %q: %w", p.Name, shader.ErrDuplicateName)
		}
		seen[p.Name] = true
		if _, err := p.stages(); err != nil {
			return fmt.Errorf("program %q: %w", p.Name, err)
		}
		for _, u := range p.Uniforms {
			if _, err := u.ShaderValue(); err != nil {
				return fmt.Errorf("program %q: %w", p.Name, err)
			}
		}
	}
	if m.Use != "" && !seen[m.Use] {
		return fmt.Errorf("use %q: %w", m.Use, shader.ErrNotFound)
	}
	return nil
}

// Program returns the program called name.
func (m *Manifest) Program(name string) (Program, bool) {
	for _, p := range m.Programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

// stage is one entry of a program's stage table.
type stage struct {
	kind shader.StageKind
	path string
}

// stages returns the program's stages in pipeline order. Two keys naming
// the same kind, such as "vertex" and "vert", are rejected.
func (p Program) stages() ([]stage, error) {
	names := make(map[shader.StageKind]string, len(p.Stages))
	out := make([]stage, 0, len(p.Stages))
	for name, path := range p.Stages {
		k, err := shader.ParseStageKind(name)
		if err != nil {
			return nil, err
		}
		if prev, ok := names[k]; ok {
			a, b := min(prev, name), max(prev, name)
			return nil, fmt.Errorf("%w: stages %q and %q are both %s", ErrDuplicateStage, a, b, k)
		}
		names[k] = name
		out = append(out, stage{kind: k, path: path})
	}
	slices.SortFunc(out, func(a, b stage) int { return int(a.kind) - int(b.kind) })
	return out, nil
}

func (m *Manifest) resolve(path string) string {
	if m.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.dir, path)
}

// Build compiles and links every program with sm, in manifest order. It
// stops at the first failure; stages added for the failed program are
// discarded so they do not end up in a later build.
func (m *Manifest) Build(sm *shader.Manager) error {
	for _, p := range m.Programs {
		if err := m.build(sm, p); err != nil {
			sm.ResetStages()
			return fmt.Errorf("program %q: %w", p.Name, err)
		}
	}
	return nil
}

func (m *Manifest) build(sm *shader.Manager, p Program) error {
	stages, err := p.stages()
	if err != nil {
		return err
	}
	for _, st := range stages {
		if err := sm.AddShader(m.resolve(st.path), st.kind); err != nil {
			return err
		}
	}
	_, err = sm.BuildProgram(p.Name)
	return err
}

// ApplyUniforms makes the program called name active and sets its
// uniforms. Every uniform is attempted; failures are joined.
func (m *Manifest) ApplyUniforms(sm *shader.Manager, name string) error {
	p, ok := m.Program(name)
	if !ok {
		return fmt.Errorf("manifest program %q: %w", name, shader.ErrNotFound)
	}
	if err := sm.UseProgram(name); err != nil {
		return err
	}
	var errs []error
	for _, u := range p.Uniforms {
		v, err := u.ShaderValue()
		if err == nil {
			err = sm.SetUniform(u.Name, v)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
