// Package pool provides a free-list object pool keyed by prototype name.
// Instances are built by the prototype's constructor when its free list is
// empty and are handed back with Put once the caller is done with them.
package pool

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/queue"
)

// ErrUnknownPrototype is returned when a name has no registered prototype
var ErrUnknownPrototype = errors.New("unknown prototype")

// Prototype describes how to build and recycle one kind of pooled value
type Prototype[T any] struct {
	// New builds a fresh instance
	New func() T
	// OnGet is called before an instance is handed out (optional)
	OnGet func(T)
	// OnPut is called when an instance returns to the pool (optional)
	OnPut func(T)
}

type entry[T any] struct {
	proto Prototype[T]
	free  *queue.Queue[T]
	size  int
}

// Pool holds one free list per registered prototype
type Pool[T any] struct {
	entries map[string]*entry[T]
}

// New creates an empty pool
func New[T any]() *Pool[T] {
	return &Pool[T]{entries: make(map[string]*entry[T])}
}

// Register adds a prototype under name, replacing any previous registration
func (p *Pool[T]) Register(name string, proto Prototype[T]) {
	p.entries[name] = &entry[T]{proto: proto, free: queue.New[T]()}
}

// Get returns a recycled instance of the named prototype, building one if none are free
func (p *Pool[T]) Get(name string) (T, error) {
	e, ok := p.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get %q: %w", name, ErrUnknownPrototype)
	}

	var v T
	if e.free.Empty() {
		v = e.proto.New()
	} else {
		v = e.free.Dequeue()
		e.size--
	}
	if e.proto.OnGet != nil {
		e.proto.OnGet(v)
	}
	return v, nil
}

// Put returns an instance to the named prototype's free list
func (p *Pool[T]) Put(name string, v T) error {
	e, ok := p.entries[name]
	if !ok {
		return fmt.Errorf("put %q: %w", name, ErrUnknownPrototype)
	}
	if e.proto.OnPut != nil {
		e.proto.OnPut(v)
	}
	e.free.Enqueue(v)
	e.size++
	return nil
}

// Free returns how many instances of the named prototype are waiting for reuse
func (p *Pool[T]) Free(name string) int {
	if e, ok := p.entries[name]; ok {
		return e.size
	}
	return 0
}
