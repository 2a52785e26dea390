package engine

import (
	"maps"
	"slices"

	"keypoll/keycode"
)

// codeSet is an immutable set of codes kept in ascending order. Writers
// build a new set and swap the pointer; readers never see a partial update.
type codeSet struct {
	codes []keycode.Code
	index map[keycode.Code]struct{}
}

var emptySet = &codeSet{}

func newCodeSet(m map[keycode.Code]struct{}) *codeSet {
	if len(m) == 0 {
		return emptySet
	}
	idx := maps.Clone(m)
	return &codeSet{
		codes: slices.Sorted(maps.Keys(idx)),
		index: idx,
	}
}

func (s *codeSet) has(c keycode.Code) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[c]
	return ok
}

func (s *codeSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.codes)
}

func (s *codeSet) list() []keycode.Code {
	if s == nil {
		return nil
	}
	return slices.Clone(s.codes)
}

// with returns s plus codes, or s itself when nothing is new.
func (s *codeSet) with(codes ...keycode.Code) *codeSet {
	changed := false
	for _, c := range codes {
		if !s.has(c) {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	m := make(map[keycode.Code]struct{}, s.len()+len(codes))
	for _, c := range s.list() {
		m[c] = struct{}{}
	}
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return newCodeSet(m)
}

// without returns s minus codes, or s itself when none were present.
func (s *codeSet) without(codes ...keycode.Code) *codeSet {
	changed := false
	for _, c := range codes {
		if s.has(c) {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	m := make(map[keycode.Code]struct{}, s.len())
	for _, c := range s.list() {
		m[c] = struct{}{}
	}
	for _, c := range codes {
		delete(m, c)
	}
	return newCodeSet(m)
}
