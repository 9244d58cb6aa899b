package hitgraph

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry tracks which nodes want which events and their bubbling parents.
// One Registry belongs to one rendering surface; it is never global.
//
// Registry is safe for concurrent use. Handlers run without the lock held,
// so a handler may register or unregister nodes; the change applies from
// the next dispatch.
type Registry struct {
	mu      sync.RWMutex
	entries map[Node]*Registration
	order   []Node // registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Node]*Registration)}
}

// Register inserts or replaces the registration for node. A replaced
// registration keeps its position in registration order but its handler set
// is swapped wholesale, never merged. A nil parent ends bubbling at node.
// Panics if node is nil or not comparable.
func (r *Registry) Register(node Node, handlers Handlers, parent Node) {
	checkNode(node, "Register")
	if parent != nil {
		checkNode(parent, "Register (parent)")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if reg, ok := r.entries[node]; ok {
		reg.Handlers = handlers
		reg.Parent = parent
		return
	}
	r.entries[node] = &Registration{Node: node, Handlers: handlers, Parent: parent}
	r.order = append(r.order, node)
}

// Unregister removes the registration for node. Unknown nodes are ignored,
// so Unregister is safe to call more than once.
func (r *Registry) Unregister(node Node) {
	if !isComparable(node) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[node]; !ok {
		return
	}
	delete(r.entries, node)
	for i, n := range r.order {
		if n == node {
			copy(r.order[i:], r.order[i+1:])
			r.order[len(r.order)-1] = nil
			r.order = r.order[:len(r.order)-1]
			return
		}
	}
}

// Lookup returns a copy of the registration for node.
func (r *Registry) Lookup(node Node) (Registration, bool) {
	if !isComparable(node) {
		return Registration{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[node]
	if !ok {
		return Registration{}, false
	}
	return *reg, true
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Nodes returns the registered nodes in registration order. The returned
// slice is a copy.
func (r *Registry) Nodes() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Node, len(r.order))
	copy(out, r.order)
	return out
}

// chainLink is one step of an ancestor chain together with the handlers
// registered for it when the chain was taken.
type chainLink struct {
	node       Node
	handlers   Handlers
	registered bool
}

// snapshotChain appends node and its registered ancestors, nearest first,
// with their handlers. The whole walk runs under one read lock, so a
// dispatch sees a single consistent view however handlers later mutate the
// registry. On a cycle or depth overflow the prefix is returned with an
// error.
func (r *Registry) snapshotChain(buf []chainLink, node Node) ([]chainLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	start := len(buf)
	for n := node; n != nil; {
		for _, seen := range buf[start:] {
			if seen.node == n {
				return buf, fmt.Errorf("%w: %v revisited after %d nodes", ErrAncestorCycle, n, len(buf)-start)
			}
		}
		if len(buf)-start >= maxAncestorDepth {
			return buf, fmt.Errorf("%w: more than %d nodes", ErrAncestorDepth, maxAncestorDepth)
		}
		link := chainLink{node: n}
		var parent Node
		if reg, ok := r.entries[n]; ok {
			link.handlers, link.registered = reg.Handlers, true
			parent = reg.Parent
		}
		buf = append(buf, link)
		n = parent
	}
	return buf, nil
}

// snapshotNode returns the link for node alone.
func (r *Registry) snapshotNode(node Node) chainLink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	link := chainLink{node: node}
	if reg, ok := r.entries[node]; ok {
		link.handlers, link.registered = reg.Handlers, true
	}
	return link
}

// Contains reports whether node is currently registered.
func (r *Registry) Contains(node Node) bool {
	if !isComparable(node) {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[node]
	return ok
}

func isComparable(node Node) bool {
	if node == nil {
		return false
	}
	return reflect.TypeOf(node).Comparable()
}

func checkNode(node Node, op string) {
	if node == nil {
		panic("hitgraph: " + op + " with nil node")
	}
	if !reflect.TypeOf(node).Comparable() {
		panic(fmt.Sprintf("hitgraph: %s with non-comparable node type %T", op, node))
	}
}
