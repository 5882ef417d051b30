package memory

import (
	"errors"
	"fmt"
	"sync"

	"os-visualizer/internal/idgen"
)

var ErrSessionNotFound = errors.New("memory session not found")

// Registry holds independent allocators keyed by session id. It is the single
// writer for each allocator: every call runs under the registry lock.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Allocator
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Allocator)}
}

// Create starts a new session and returns its id.
func (r *Registry) Create(totalSize int, strategy Strategy) (string, error) {
	allocator, err := NewAllocator(totalSize, strategy)
	if err != nil {
		return "", err
	}
	id := idgen.New()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = allocator
	return id, nil
}

// Do runs fn against the allocator of session id while holding the lock.
func (r *Registry) Do(id string, fn func(allocator *Allocator) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	allocator, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return fn(allocator)
}

func (r *Registry) Allocate(id, owner string, size int) (result AllocationResult, err error) {
	err = r.Do(id, func(allocator *Allocator) error {
		result, err = allocator.Allocate(owner, size)
		return err
	})
	return result, err
}

func (r *Registry) Free(id, owner string) (released int, err error) {
	err = r.Do(id, func(allocator *Allocator) error {
		released = allocator.Free(owner)
		return nil
	})
	return released, err
}

func (r *Registry) Reset(id string) error {
	return r.Do(id, func(allocator *Allocator) error {
		allocator.Reset()
		return nil
	})
}

func (r *Registry) Stats(id string) (stats Stats, err error) {
	err = r.Do(id, func(allocator *Allocator) error {
		stats = allocator.Stats()
		return nil
	})
	return stats, err
}

func (r *Registry) Blocks(id string) (blocks []Block, err error) {
	err = r.Do(id, func(allocator *Allocator) error {
		blocks = allocator.Blocks()
		return nil
	})
	return blocks, err
}

// Delete drops a session. Unknown ids yield ErrSessionNotFound.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
