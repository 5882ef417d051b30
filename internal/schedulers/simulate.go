package schedulers

import (
	"fmt"

	"os-visualizer/internal/errs"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// Simulate validates request and runs the algorithm it names. The full
// timeline is computed up front; nothing is streamed.
func Simulate(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := ValidateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	switch request.Algorithm {
	case requests.FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case requests.ShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case requests.RoundRobin:
		return ScheduleRoundRobin(request)
	case requests.Priority:
		return SchedulePriority(request)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("%w: unknown algorithm %q", errs.ErrInvalidInput, request.Algorithm)
}

// CompareAll runs every algorithm over the same process set. quantum is only
// used by round robin.
func CompareAll(processes []requests.Process, quantum int) ([]responses.ScheduleResponse, error) {
	results := make([]responses.ScheduleResponse, 0, len(requests.Algorithms))
	for _, algorithm := range requests.Algorithms {
		request := &requests.ScheduleRequest{Algorithm: algorithm, Processes: processes}
		if algorithm == requests.RoundRobin {
			request.Quantum = quantum
		}
		response, err := Simulate(request)
		if err != nil {
			return nil, err
		}
		results = append(results, response)
	}
	return results, nil
}
