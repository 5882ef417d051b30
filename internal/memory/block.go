// Package memory simulates contiguous memory allocation over an ordered list
// of blocks that always partitions [0, totalSize).
package memory

type BlockState string

const (
	Free      BlockState = "free"
	Allocated BlockState = "allocated"
)

type Block struct {
	Id    int        `json:"id"`
	Start int        `json:"start"`
	Size  int        `json:"size"`
	State BlockState `json:"state"`
	Owner string     `json:"owner,omitempty"`
}

// End returns the first address past the block.
func (b Block) End() int {
	return b.Start + b.Size
}

func (b Block) IsFree() bool {
	return b.State == Free
}
