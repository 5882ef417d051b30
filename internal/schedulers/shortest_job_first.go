package schedulers

import (
	"log"

	"os-visualizer/internal/core"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// ScheduleShortestJobFirst is non-preemptive SJF: at every decision point the
// arrived process with the smallest burst runs to completion.
func ScheduleShortestJobFirst(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := ValidateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running sjf algorithm ...")
	return scheduleNonPreemptive(request, shortestJob)
}

func shortestJob(a, b *core.Process) bool {
	if a.Job.BurstTime != b.Job.BurstTime {
		return a.Job.BurstTime < b.Job.BurstTime
	}
	return a.Index < b.Index
}
