package wae

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps window ids to their handlers.
// The zero Registry is empty and ready for use.
//
// A Registry is not safe for concurrent use. The executor only touches it
// from its own control thread. A handler may register or unregister windows
// from inside a callback only because Dispatch has already looked the handler
// up before calling it and does not touch the map afterwards.
type Registry struct {
	m map[WindowID]WindowHandler
}

// Register binds h to h.ID(). It fails with a *DuplicateIDError if the id is
// already bound, leaving the first binding in effect.
func (r *Registry) Register(h WindowHandler) error {
	id := h.ID()
	if r.m == nil {
		r.m = map[WindowID]WindowHandler{}
	}
	if _, ok := r.m[id]; ok {
		return &DuplicateIDError{ID: id}
	}
	r.m[id] = h
	return nil
}

// Unregister removes the binding for id, if any.
func (r *Registry) Unregister(id WindowID) {
	delete(r.m, id)
}

// Lookup returns the handler bound to id.
func (r *Registry) Lookup(id WindowID) (WindowHandler, bool) {
	h, ok := r.m[id]
	return h, ok
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.m)
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []WindowID {
	ids := maps.Keys(r.m)
	slices.Sort(ids)
	return ids
}
