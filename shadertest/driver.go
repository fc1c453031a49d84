// Package shadertest provides an in-memory shader.Driver for tests.
package shadertest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-theft-auto/shader"
)

// DefaultFailMarker makes CompileStage fail when it appears in a source.
const DefaultFailMarker = "#error"

// uniformDecl matches declarations such as "uniform vec4 color;" or
// "uniform mat4 bones[32];".
var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)`)

// Call is one recorded upload.
type Call struct {
	Name      string
	Location  shader.Location
	Count     int32
	Transpose bool
	Data      any
}

type stage struct {
	kind     shader.StageKind
	uniforms []string
}

type linked struct {
	stages    []shader.StageHandle
	kinds     []shader.StageKind
	locations map[string]shader.Location
}

// Driver records everything a shader.Manager asks of it. Stage sources
// declare their uniforms with ordinary GLSL "uniform" lines; a linked
// program exposes the union of its stages' uniforms.
type Driver struct {
	// FailMarker makes CompileStage fail when found in a source.
	// Empty means DefaultFailMarker.
	FailMarker string

	// LinkLog, when set, makes LinkProgram fail with this log.
	LinkLog string

	// Used is the handle passed to the most recent UseProgram call.
	Used shader.ProgramHandle

	// Calls records uploads in order.
	Calls []Call

	// DeletedStages and DeletedPrograms record release calls in order.
	DeletedStages   []shader.StageHandle
	DeletedPrograms []shader.ProgramHandle

	next     uint32
	stages   map[shader.StageHandle]stage
	programs map[shader.ProgramHandle]linked
}

// New returns an empty Driver.
func New() *Driver {
	return &Driver{
		stages:   make(map[shader.StageHandle]stage),
		programs: make(map[shader.ProgramHandle]linked),
	}
}

var _ shader.Driver = (*Driver)(nil)

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

// CompileStage implements shader.Driver.
func (d *Driver) CompileStage(source string, kind shader.StageKind) (shader.StageHandle, error) {
	marker := d.FailMarker
	if marker == "" {
		marker = DefaultFailMarker
	}
	if i := strings.Index(source, marker); i >= 0 {
		line := strings.Count(source[:i], "\n") + 1
		return 0, &shader.CompileError{
			Kind: kind,
			Log:  fmt.Sprintf("0:%d(1): error: %s", line, strings.TrimSpace(source[i:min(len(source), i+64)])),
		}
	}
	var names []string
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		names = append(names, m[1])
	}
	h := shader.StageHandle(d.handle())
	d.stages[h] = stage{kind: kind, uniforms: names}
	return h, nil
}

// DeleteStage implements shader.Driver.
func (d *Driver) DeleteStage(h shader.StageHandle) {
	delete(d.stages, h)
	d.DeletedStages = append(d.DeletedStages, h)
}

// LinkProgram implements shader.Driver.
func (d *Driver) LinkProgram(stages []shader.StageHandle) (shader.ProgramHandle, error) {
	if d.LinkLog != "" {
		return 0, &shader.LinkError{Log: d.LinkLog}
	}
	locs := make(map[string]shader.Location)
	kinds := make([]shader.StageKind, 0, len(stages))
	for _, sh := range stages {
		st, ok := d.stages[sh]
		if !ok {
			return 0, &shader.LinkError{Log: fmt.Sprintf("error: stage %d does not exist", sh)}
		}
		kinds = append(kinds, st.kind)
		for _, name := range st.uniforms {
			if _, dup := locs[name]; !dup {
				locs[name] = shader.Location(len(locs))
			}
		}
	}
	h := shader.ProgramHandle(d.handle())
	d.programs[h] = linked{stages: slices.Clone(stages), kinds: kinds, locations: locs}
	return h, nil
}

// DeleteProgram implements shader.Driver.
func (d *Driver) DeleteProgram(h shader.ProgramHandle) {
	delete(d.programs, h)
	d.DeletedPrograms = append(d.DeletedPrograms, h)
}

// UseProgram implements shader.Driver.
func (d *Driver) UseProgram(h shader.ProgramHandle) { d.Used = h }

// UniformLocation implements shader.Driver.
func (d *Driver) UniformLocation(h shader.ProgramHandle, name string) (shader.Location, bool) {
	p, ok := d.programs[h]
	if !ok {
		return 0, false
	}
	loc, ok := p.locations[name]
	return loc, ok
}

// LiveStages returns the number of stages compiled and not yet deleted.
func (d *Driver) LiveStages() int { return len(d.stages) }

// LivePrograms returns the number of programs linked and not yet deleted.
func (d *Driver) LivePrograms() int { return len(d.programs) }

// StageKind returns the kind of a live stage.
func (d *Driver) StageKind(h shader.StageHandle) (shader.StageKind, bool) {
	st, ok := d.stages[h]
	return st.kind, ok
}

// LinkedStages returns the stages a live program was linked from, in the
// order they were passed.
func (d *Driver) LinkedStages(h shader.ProgramHandle) []shader.StageHandle {
	return d.programs[h].stages
}

// LinkedKinds returns the kinds of the stages a live program was linked
// from, in link order.
func (d *Driver) LinkedKinds(h shader.ProgramHandle) []shader.StageKind {
	return d.programs[h].kinds
}

// LastCall returns the most recent upload.
func (d *Driver) LastCall() (Call, bool) {
	if len(d.Calls) == 0 {
		return Call{}, false
	}
	return d.Calls[len(d.Calls)-1], true
}

func (d *Driver) record(name string, loc shader.Location, count int32, transpose bool, data any) {
	d.Calls = append(d.Calls, Call{Name: name, Location: loc, Count: count, Transpose: transpose, Data: data})
}
