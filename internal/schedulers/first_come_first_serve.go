package schedulers

import (
	"log"
	"sort"

	"os-visualizer/internal/core"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// ScheduleFirstComeFirstServe runs each process to completion in order of
// arrival; equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := ValidateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running fcfs algorithm ...")

	processes := core.NewProcesses(request.Processes)
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Job.ArrivalTime < processes[j].Job.ArrivalTime
	})

	cpu := core.NewCpu()
	completed := make([]*core.Process, 0, len(processes))
	for _, process := range processes {
		cpu.IdleUntil(process.Job.ArrivalTime)
		if err := cpu.Execute(process, process.RemainingTime); err != nil {
			return responses.ScheduleResponse{}, err
		}
		completed = append(completed, process)
	}

	return generateResponse(request, completed, cpu), nil
}
