package schedulers

import (
	"fmt"

	"os-visualizer/internal/errs"
	"os-visualizer/internal/requests"
)

// ValidateRequest rejects malformed input before any simulation runs.
func ValidateRequest(request *requests.ScheduleRequest) error {
	if request == nil {
		return fmt.Errorf("%w: nil schedule request", errs.ErrInvalidInput)
	}
	if !request.Algorithm.IsValid() {
		return fmt.Errorf("%w: unknown algorithm %q", errs.ErrInvalidInput, request.Algorithm)
	}
	if request.Algorithm == requests.RoundRobin && request.Quantum < 1 {
		return fmt.Errorf("%w: round robin requires a positive quantum, got %d", errs.ErrInvalidInput, request.Quantum)
	}
	return validateProcesses(request.Processes)
}

func validateProcesses(processes []requests.Process) error {
	seen := make(map[string]bool, len(processes))
	for i, process := range processes {
		if process.Id == "" {
			return fmt.Errorf("%w: process #%d has no id", errs.ErrInvalidInput, i)
		}
		if seen[process.Id] {
			return fmt.Errorf("%w: duplicate process id %q", errs.ErrInvalidInput, process.Id)
		}
		seen[process.Id] = true
		if process.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q arrival time %d is negative", errs.ErrInvalidInput, process.Id, process.ArrivalTime)
		}
		if process.BurstTime < 1 {
			return fmt.Errorf("%w: process %q burst time %d must be at least 1", errs.ErrInvalidInput, process.Id, process.BurstTime)
		}
	}
	return nil
}
