package memory

// Stats are derived from the current layout on every call.
type Stats struct {
	TotalSize          int     `json:"total_size"`
	TotalAllocated     int     `json:"total_allocated"`
	TotalFree          int     `json:"total_free"`
	Utilization        float64 `json:"utilization"`
	UtilizationPercent float64 `json:"utilization_percent"`
	FragmentationCount int     `json:"fragmentation_count"`
	FreeBlocks         int     `json:"free_blocks"`
	AllocatedBlocks    int     `json:"allocated_blocks"`
	LargestFreeBlock   int     `json:"largest_free_block"`
}

// Stats computes usage figures. FragmentationCount is the number of free
// blocks beyond the first, a proxy for external fragmentation.
func (a *Allocator) Stats() Stats {
	stats := Stats{TotalSize: a.totalSize}
	for _, block := range a.blocks {
		if block.IsFree() {
			stats.FreeBlocks++
			if block.Size > stats.LargestFreeBlock {
				stats.LargestFreeBlock = block.Size
			}
			continue
		}
		stats.AllocatedBlocks++
		stats.TotalAllocated += block.Size
	}
	stats.TotalFree = a.totalSize - stats.TotalAllocated
	stats.Utilization = float64(stats.TotalAllocated) / float64(a.totalSize)
	stats.UtilizationPercent = stats.Utilization * 100
	if stats.FreeBlocks > 0 {
		stats.FragmentationCount = stats.FreeBlocks - 1
	}
	return stats
}
