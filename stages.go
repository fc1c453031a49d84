package shader

import "fmt"

// defaultRequired are the stages every program needs.
var defaultRequired = []StageKind{StageVertex, StageFragment}

// StageSet holds compiled stages waiting to be linked, at most one per kind.
// The zero value is an empty set.
//
// Slots are only cleared by a successful link (through Manager.BuildProgram)
// or an explicit Reset. Stages that are still pending when the next program
// is built are linked into it as well.
type StageSet struct {
	slots map[StageKind]StageHandle
}

// Add compiles source and stores it in the slot for kind. A stage already
// in the slot is deleted once the new one compiles. On failure the slot is
// left as it was.
func (s *StageSet) Add(d Driver, source string, kind StageKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedStage, kind)
	}
	h, err := d.CompileStage(source, kind)
	if err != nil {
		return err
	}
	if s.slots == nil {
		s.slots = make(map[StageKind]StageHandle)
	}
	if prev, ok := s.slots[kind]; ok {
		d.DeleteStage(prev)
	}
	s.slots[kind] = h
	return nil
}

// Has reports whether a stage of kind is pending.
func (s *StageSet) Has(kind StageKind) bool {
	_, ok := s.slots[kind]
	return ok
}

// Complete reports whether both a vertex and a fragment stage are pending.
func (s *StageSet) Complete() bool {
	return len(s.Missing(defaultRequired)) == 0
}

// Missing returns the kinds in required that have no pending stage.
func (s *StageSet) Missing(required []StageKind) []StageKind {
	var missing []StageKind
	for _, k := range required {
		if !s.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Kinds returns the pending stage kinds in pipeline order.
func (s *StageSet) Kinds() []StageKind {
	var kinds []StageKind
	for _, k := range stageOrder {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Handles returns the pending stage handles in pipeline order without
// removing them.
func (s *StageSet) Handles() []StageHandle {
	var hs []StageHandle
	for _, k := range stageOrder {
		if h, ok := s.slots[k]; ok {
			hs = append(hs, h)
		}
	}
	return hs
}

// Len returns the number of pending stages.
func (s *StageSet) Len() int { return len(s.slots) }

// consume returns the pending handles in pipeline order and empties the set.
// Ownership of the handles passes to the caller.
func (s *StageSet) consume() []StageHandle {
	hs := s.Handles()
	clear(s.slots)
	return hs
}

// Reset deletes every pending stage.
func (s *StageSet) Reset(d Driver) {
	for _, h := range s.consume() {
		d.DeleteStage(h)
	}
}
