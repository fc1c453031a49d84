package shader

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// program is a linked program owned by a Manager.
type program struct {
	name      string
	handle    ProgramHandle
	locations map[string]Location
}

// Manager compiles shader stages, links them into named programs and sets
// uniforms on the active program.
//
// A Manager is not safe for concurrent use. Like the graphics context it
// drives, it must only be used from the thread that owns the context.
type Manager struct {
	driver   Driver
	loader   Loader
	logger   *slog.Logger
	required []StageKind

	stages   StageSet
	programs map[string]*program
	active   *program
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default writes to stderr at the level
// controlled by SetVerbose.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithLoader sets how AddShader reads source files.
func WithLoader(l Loader) Option {
	return func(m *Manager) {
		if l != nil {
			m.loader = l
		}
	}
}

// WithRequiredStages adds stage kinds BuildProgram insists on, on top of
// vertex and fragment.
func WithRequiredStages(kinds ...StageKind) Option {
	return func(m *Manager) {
		for _, k := range kinds {
			if !slices.Contains(m.required, k) {
				m.required = append(m.required, k)
			}
		}
	}
}

// NewManager creates a Manager that drives d.
func NewManager(d Driver, opts ...Option) *Manager {
	m := &Manager{
		driver:   d,
		loader:   ReadFile,
		logger:   defaultLogger,
		required: slices.Clone(defaultRequired),
		programs: make(map[string]*program),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// AddStage compiles source as a stage of kind and keeps it pending for the
// next BuildProgram. A pending stage of the same kind is replaced and
// deleted.
func (m *Manager) AddStage(source string, kind StageKind) error {
	if err := m.stages.Add(m.driver, source, kind); err != nil {
		m.logger.Warn("shader stage rejected", "kind", kind, "err", err)
		return err
	}
	m.logger.Debug("shader stage compiled", "kind", kind)
	return nil
}

// AddShader reads the file at path and adds it as a stage of kind.
func (m *Manager) AddShader(path string, kind StageKind) error {
	if !kind.Valid() {
		return fmt.Errorf("add shader %s: %w: %s", path, ErrUnsupportedStage, kind)
	}
	src, err := m.loader(path)
	if err != nil {
		serr := &SourceError{Path: path, Err: err}
		m.logger.Warn("shader source unreadable", "path", path, "err", err)
		return serr
	}
	if err := m.stages.Add(m.driver, src, kind); err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) && cerr.Path == "" {
			cerr.Path = path
		}
		m.logger.Warn("shader stage rejected", "kind", kind, "path", path, "err", err)
		return err
	}
	m.logger.Debug("shader stage compiled", "kind", kind, "path", path)
	return nil
}

// PendingStages returns the kinds of the stages waiting to be linked.
func (m *Manager) PendingStages() []StageKind {
	return m.stages.Kinds()
}

// ResetStages deletes every pending stage.
func (m *Manager) ResetStages() {
	m.stages.Reset(m.driver)
}

// BuildProgram links the pending stages into a program called name.
//
// It fails with ErrIncompleteStages if a required stage is missing,
// ErrDuplicateName if name is taken, or a *LinkError if linking fails. In
// all of those cases the pending stages are kept so the caller can fix a
// stage and retry. On success the stages are deleted and the set is
// emptied.
func (m *Manager) BuildProgram(name string) (ProgramHandle, error) {
	if missing := m.stages.Missing(m.required); len(missing) > 0 {
		return 0, fmt.Errorf("build program %q: %w: missing %v", name, ErrIncompleteStages, missing)
	}
	if _, ok := m.programs[name]; ok {
		return 0, fmt.Errorf("build program %q: %w", name, ErrDuplicateName)
	}

	h, err := m.driver.LinkProgram(m.stages.Handles())
	if err != nil {
		var lerr *LinkError
		if errors.As(err, &lerr) && lerr.Program == "" {
			lerr.Program = name
		}
		m.logger.Warn("shader program link failed", "program", name, "err", err)
		return 0, err
	}

	kinds := m.stages.Kinds()
	for _, sh := range m.stages.consume() {
		m.driver.DeleteStage(sh)
	}
	m.programs[name] = &program{
		name:      name,
		handle:    h,
		locations: make(map[string]Location),
	}
	m.logger.Debug("shader program built", "program", name, "stages", kinds)
	return h, nil
}

// UseProgram makes the program called name active. If there is no such
// program the active program is left unchanged.
func (m *Manager) UseProgram(name string) error {
	p, ok := m.programs[name]
	if !ok {
		return fmt.Errorf("use program %q: %w", name, ErrNotFound)
	}
	m.driver.UseProgram(p.handle)
	m.active = p
	m.logger.Debug("shader program active", "program", name)
	return nil
}

// Program returns the handle of the program called name.
func (m *Manager) Program(name string) (ProgramHandle, error) {
	p, ok := m.programs[name]
	if !ok {
		return 0, fmt.Errorf("program %q: %w", name, ErrNotFound)
	}
	return p.handle, nil
}

// Programs returns the registered program names, sorted.
func (m *Manager) Programs() []string {
	names := make([]string, 0, len(m.programs))
	for name := range m.programs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Active returns the name of the active program.
func (m *Manager) Active() (string, bool) {
	if m.active == nil {
		return "", false
	}
	return m.active.name, true
}

// Delete releases every program and pending stage. The Manager is empty
// afterwards and may be reused.
func (m *Manager) Delete() {
	m.stages.Reset(m.driver)
	for _, name := range m.Programs() {
		m.driver.DeleteProgram(m.programs[name].handle)
	}
	clear(m.programs)
	m.active = nil
}
