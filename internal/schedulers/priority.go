package schedulers

import (
	"log"

	"os-visualizer/internal/core"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// SchedulePriority is non-preemptive priority scheduling. Lower priority
// values win; ties go to the earliest arrival, then to input order.
func SchedulePriority(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := ValidateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running priority algorithm ...")
	return scheduleNonPreemptive(request, highestPriority)
}

func highestPriority(a, b *core.Process) bool {
	if a.Job.Priority != b.Job.Priority {
		return a.Job.Priority < b.Job.Priority
	}
	if a.Job.ArrivalTime != b.Job.ArrivalTime {
		return a.Job.ArrivalTime < b.Job.ArrivalTime
	}
	return a.Index < b.Index
}
