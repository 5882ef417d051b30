package schedulers

import (
	"os-visualizer/internal/core"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// selectionLess orders two ready processes; the smaller one is dispatched.
type selectionLess func(a, b *core.Process) bool

// scheduleNonPreemptive repeatedly picks the best ready process according to
// less and runs it to completion. When nothing has arrived yet the cpu idles
// until the earliest pending arrival.
func scheduleNonPreemptive(request *requests.ScheduleRequest, less selectionLess) (responses.ScheduleResponse, error) {
	pending := core.NewProcesses(request.Processes)
	cpu := core.NewCpu()
	completed := make([]*core.Process, 0, len(pending))

	for len(pending) > 0 {
		selected := -1
		nextArrival := -1
		for i, process := range pending {
			if process.Job.ArrivalTime > cpu.Clock() {
				if nextArrival == -1 || process.Job.ArrivalTime < nextArrival {
					nextArrival = process.Job.ArrivalTime
				}
				continue
			}
			if selected == -1 || less(process, pending[selected]) {
				selected = i
			}
		}
		if selected == -1 {
			cpu.IdleUntil(nextArrival)
			continue
		}

		process := pending[selected]
		if err := cpu.Execute(process, process.RemainingTime); err != nil {
			return responses.ScheduleResponse{}, err
		}
		completed = append(completed, process)
		pending = removeAt(pending, selected)
	}

	return generateResponse(request, completed, cpu), nil
}

// removeAt returns a new slice without the element at index i.
func removeAt(processes []*core.Process, i int) []*core.Process {
	rest := make([]*core.Process, 0, len(processes)-1)
	rest = append(rest, processes[:i]...)
	return append(rest, processes[i+1:]...)
}
