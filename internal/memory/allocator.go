package memory

import (
	"fmt"
	"log"

	"os-visualizer/internal/errs"
)

// AllocationResult describes a successful allocation.
type AllocationResult struct {
	Block    Block    `json:"block"`
	Strategy Strategy `json:"strategy"`
	Split    bool     `json:"split"`
}

// Allocator owns one memory layout. It performs no locking: callers must
// serialize Allocate and Free on a single instance.
type Allocator struct {
	totalSize int
	strategy  Strategy
	blocks    []Block
	nextId    int
}

func NewAllocator(totalSize int, strategy Strategy) (*Allocator, error) {
	if totalSize <= 0 {
		return nil, fmt.Errorf("%w: memory size %d must be positive", errs.ErrInvalidInput, totalSize)
	}
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if strategy == "" {
		strategy = FirstFit
	}
	a := &Allocator{totalSize: totalSize, strategy: strategy}
	a.Reset()
	return a, nil
}

func (a *Allocator) TotalSize() int {
	return a.totalSize
}

func (a *Allocator) Strategy() Strategy {
	return a.strategy
}

// Reset discards every allocation and leaves a single free block.
func (a *Allocator) Reset() {
	a.nextId = 0
	a.blocks = []Block{a.newBlock(0, a.totalSize, Free, "")}
}

// Blocks returns a copy of the layout in ascending start order.
func (a *Allocator) Blocks() []Block {
	blocks := make([]Block, len(a.blocks))
	copy(blocks, a.blocks)
	return blocks
}

// Allocate places size units for owner using the allocator strategy. A larger
// block is split into an allocated head and a free remainder; an exact fit
// flips in place. When nothing fits, ErrOutOfMemory is returned and the
// layout is untouched.
func (a *Allocator) Allocate(owner string, size int) (AllocationResult, error) {
	if owner == "" {
		return AllocationResult{}, fmt.Errorf("%w: allocation owner is required", errs.ErrInvalidInput)
	}
	if size <= 0 {
		return AllocationResult{}, fmt.Errorf("%w: allocation size %d must be positive", errs.ErrInvalidInput, size)
	}

	i := a.strategy.selectBlock(a.blocks, size)
	if i == -1 {
		return AllocationResult{}, fmt.Errorf("%w: no free block of %d units for %s (free %d)", errs.ErrOutOfMemory, size, owner, a.Stats().TotalFree)
	}

	target := a.blocks[i]
	allocated := a.newBlock(target.Start, size, Allocated, owner)
	replacement := []Block{allocated}
	split := target.Size > size
	if split {
		replacement = append(replacement, Block{
			Id:    target.Id,
			Start: target.Start + size,
			Size:  target.Size - size,
			State: Free,
		})
	}

	blocks := make([]Block, 0, len(a.blocks)+1)
	blocks = append(blocks, a.blocks[:i]...)
	blocks = append(blocks, replacement...)
	blocks = append(blocks, a.blocks[i+1:]...)
	a.blocks = blocks

	log.Printf("owner: %s allocated %d units at %d (%s)", owner, size, allocated.Start, a.strategy)
	return AllocationResult{Block: allocated, Strategy: a.strategy, Split: split}, nil
}

// Free releases every block held by owner and merges adjacent free blocks.
// It returns the number of blocks released.
func (a *Allocator) Free(owner string) int {
	released := 0
	blocks := make([]Block, 0, len(a.blocks))
	for _, block := range a.blocks {
		if !block.IsFree() && block.Owner == owner {
			block.State = Free
			block.Owner = ""
			released++
		}
		blocks = append(blocks, block)
	}
	a.blocks = coalesce(blocks)
	if released > 0 {
		log.Printf("owner: %s released %d block(s)", owner, released)
	}
	return released
}

// coalesce merges every run of adjacent free blocks into one block.
func coalesce(blocks []Block) []Block {
	merged := make([]Block, 0, len(blocks))
	for _, block := range blocks {
		if n := len(merged); n > 0 && block.IsFree() && merged[n-1].IsFree() && merged[n-1].End() == block.Start {
			merged[n-1].Size += block.Size
			continue
		}
		merged = append(merged, block)
	}
	return merged
}

func (a *Allocator) newBlock(start, size int, state BlockState, owner string) Block {
	a.nextId++
	return Block{Id: a.nextId, Start: start, Size: size, State: state, Owner: owner}
}
