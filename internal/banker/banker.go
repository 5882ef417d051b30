// Package banker implements the Banker's algorithm safety check over a static
// allocation state.
package banker

import (
	"fmt"
	"log"

	"os-visualizer/internal/errs"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// Check adapts a SafetyRequest to CheckSafety. Missing ids default to P1..Pn.
func Check(request *requests.SafetyRequest) (responses.SafetyResponse, error) {
	if request == nil {
		return responses.SafetyResponse{}, fmt.Errorf("%w: nil safety request", errs.ErrInvalidInput)
	}
	ids := make([]string, len(request.Processes))
	allocation := make([][]int, len(request.Processes))
	maxDemand := make([][]int, len(request.Processes))
	for i, process := range request.Processes {
		ids[i] = process.Id
		if ids[i] == "" {
			ids[i] = fmt.Sprintf("P%d", i+1)
		}
		allocation[i] = process.Allocation
		maxDemand[i] = process.Max
	}
	if request.Clamp {
		allocation = ClampAllocation(allocation, maxDemand)
	}
	return CheckSafety(allocation, maxDemand, request.Available, ids)
}

// CheckSafety runs the safety algorithm. Each pass scans processes in index
// order and completes the first unfinished one whose need fits in work, then
// restarts from index 0. The state is safe iff every process finishes; an
// unsafe state is a normal result with a partial sequence.
func CheckSafety(allocation, maxDemand [][]int, available []int, ids []string) (responses.SafetyResponse, error) {
	if err := Validate(allocation, maxDemand, available, ids); err != nil {
		return responses.SafetyResponse{}, err
	}
	log.Println("running banker's safety check for", len(ids), "processes")

	need := Need(allocation, maxDemand)
	work := append([]int(nil), available...)
	finish := make([]bool, len(ids))
	response := responses.SafetyResponse{
		Sequence: make([]string, 0, len(ids)),
		Steps:    make([]responses.SafetyStep, 0, len(ids)),
		Need:     need,
	}

	for found := true; found && len(response.Sequence) < len(ids); {
		found = false
		for i := range ids {
			if finish[i] || !fits(need[i], work) {
				continue
			}
			finish[i] = true
			for r := range work {
				work[r] += allocation[i][r]
			}
			response.Sequence = append(response.Sequence, ids[i])
			response.Steps = append(response.Steps, responses.SafetyStep{
				ProcessId:   ids[i],
				Work:        append([]int(nil), work...),
				Description: fmt.Sprintf("%s completes and releases resources", ids[i]),
			})
			found = true
			break
		}
	}

	response.Safe = len(response.Sequence) == len(ids)
	return response, nil
}

// Need returns max - allocation per cell, floored at zero.
func Need(allocation, maxDemand [][]int) [][]int {
	need := make([][]int, len(maxDemand))
	for p := range maxDemand {
		need[p] = make([]int, len(maxDemand[p]))
		for r := range maxDemand[p] {
			if v := maxDemand[p][r] - allocation[p][r]; v > 0 {
				need[p][r] = v
			}
		}
	}
	return need
}

// ClampAllocation returns a copy of allocation with every cell lowered to at
// most the matching max cell. Rows or cells missing from max are copied as is
// and left for validation to reject.
func ClampAllocation(allocation, maxDemand [][]int) [][]int {
	clamped := make([][]int, len(allocation))
	for p, row := range allocation {
		clamped[p] = append([]int(nil), row...)
		if p >= len(maxDemand) {
			continue
		}
		for r := range clamped[p] {
			if r < len(maxDemand[p]) && clamped[p][r] > maxDemand[p][r] {
				clamped[p][r] = maxDemand[p][r]
			}
		}
	}
	return clamped
}

func fits(need, work []int) bool {
	for r := range need {
		if need[r] > work[r] {
			return false
		}
	}
	return true
}
