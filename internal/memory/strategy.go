package memory

import (
	"fmt"

	"os-visualizer/internal/errs"
)

// Strategy selects which free block satisfies a request.
type Strategy string

const (
	FirstFit Strategy = "firstFit"
	BestFit  Strategy = "bestFit"
	WorstFit Strategy = "worstFit"
)

// ParseStrategy maps a name to a Strategy. An empty name means FirstFit.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", FirstFit:
		return FirstFit, nil
	case BestFit:
		return BestFit, nil
	case WorstFit:
		return WorstFit, nil
	}
	return "", fmt.Errorf("%w: unknown allocation strategy %q", errs.ErrInvalidInput, name)
}

// selectBlock returns the index of the free block chosen for size, or -1.
// Blocks are scanned in ascending start order, so ties in best and worst fit
// resolve to the lowest address.
func (s Strategy) selectBlock(blocks []Block, size int) int {
	selected := -1
	for i, block := range blocks {
		if !block.IsFree() || block.Size < size {
			continue
		}
		switch s {
		case BestFit:
			if selected == -1 || block.Size < blocks[selected].Size {
				selected = i
			}
		case WorstFit:
			if selected == -1 || block.Size > blocks[selected].Size {
				selected = i
			}
		default:
			return i
		}
	}
	return selected
}
