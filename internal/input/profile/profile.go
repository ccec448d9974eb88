// Package profile provides the binding table that maps input shortcuts to
// actions for a single target and event kind.
package profile

import (
	"iter"
	"maps"
	"slices"
)

// Profile maps shortcuts to actions. A shortcut has at most one action;
// binding it again overwrites the previous one. A binding to the null
// action of the action set is still a binding: HasBinding reports true and
// Action returns the null action with ok set.
//
// Profile is not safe for concurrent use.
type Profile[S comparable, A comparable] struct {
	bindings map[S]A
}

// New creates an empty profile.
func New[S comparable, A comparable]() *Profile[S, A] {
	return &Profile[S, A]{bindings: make(map[S]A)}
}

// SetBinding binds s to a, replacing any previous binding.
func (p *Profile[S, A]) SetBinding(s S, a A) {
	p.bindings[s] = a
}

// RemoveBinding removes the binding for s, if any.
func (p *Profile[S, A]) RemoveBinding(s S) {
	delete(p.bindings, s)
}

// HasBinding returns true if s is bound.
func (p *Profile[S, A]) HasBinding(s S) bool {
	_, ok := p.bindings[s]
	return ok
}

// Action returns the action bound to s.
func (p *Profile[S, A]) Action(s S) (A, bool) {
	a, ok := p.bindings[s]
	return a, ok
}

// IsActionBound returns true if any shortcut is bound to a.
func (p *Profile[S, A]) IsActionBound(a A) bool {
	for _, v := range p.bindings {
		if v == a {
			return true
		}
	}
	return false
}

// Len returns the number of bindings.
func (p *Profile[S, A]) Len() int {
	return len(p.bindings)
}

// RemoveBindings removes every binding.
func (p *Profile[S, A]) RemoveBindings() {
	clear(p.bindings)
}

// Retain keeps only the bindings for which keep returns true.
func (p *Profile[S, A]) Retain(keep func(S, A) bool) {
	maps.DeleteFunc(p.bindings, func(s S, a A) bool {
		return !keep(s, a)
	})
}

// All iterates over the bindings in unspecified order.
func (p *Profile[S, A]) All() iter.Seq2[S, A] {
	return maps.All(p.bindings)
}

// Shortcuts returns the bound shortcuts ordered by cmp.
func (p *Profile[S, A]) Shortcuts(cmp func(a, b S) int) []S {
	return slices.SortedFunc(maps.Keys(p.bindings), cmp)
}

// Clone returns an independent copy of the profile.
func (p *Profile[S, A]) Clone() *Profile[S, A] {
	return &Profile[S, A]{bindings: maps.Clone(p.bindings)}
}

// Equal returns true if both profiles hold exactly the same bindings.
func (p *Profile[S, A]) Equal(other *Profile[S, A]) bool {
	if other == nil {
		return false
	}
	return maps.Equal(p.bindings, other.bindings)
}
