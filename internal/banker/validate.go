package banker

import (
	"fmt"

	"os-visualizer/internal/errs"
)

// Validate checks the shape and value constraints of an allocation state.
// allocation[p][r] must never exceed maxDemand[p][r]; a negative need is never
// computed.
func Validate(allocation, maxDemand [][]int, available []int, ids []string) error {
	processCount := len(ids)
	if len(allocation) != processCount || len(maxDemand) != processCount {
		return fmt.Errorf("%w: expected %d allocation and max rows, got %d and %d", errs.ErrInvalidInput, processCount, len(allocation), len(maxDemand))
	}
	resourceCount := len(available)
	for r, v := range available {
		if v < 0 {
			return fmt.Errorf("%w: available[%d] = %d is negative", errs.ErrInvalidInput, r, v)
		}
	}
	seen := make(map[string]bool, processCount)
	for p, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: duplicate process id %q", errs.ErrInvalidInput, id)
		}
		seen[id] = true
		if len(allocation[p]) != resourceCount || len(maxDemand[p]) != resourceCount {
			return fmt.Errorf("%w: process %s must list %d resources", errs.ErrInvalidInput, id, resourceCount)
		}
		for r := 0; r < resourceCount; r++ {
			switch {
			case allocation[p][r] < 0:
				return fmt.Errorf("%w: process %s allocation[%d] is negative", errs.ErrInvalidInput, id, r)
			case maxDemand[p][r] < 0:
				return fmt.Errorf("%w: process %s max[%d] is negative", errs.ErrInvalidInput, id, r)
			case allocation[p][r] > maxDemand[p][r]:
				return fmt.Errorf("%w: process %s allocation[%d] = %d exceeds max %d", errs.ErrInvalidInput, id, r, allocation[p][r], maxDemand[p][r])
			}
		}
	}
	return nil
}
