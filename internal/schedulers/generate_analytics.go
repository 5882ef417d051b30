package schedulers

import (
	"log"

	"os-visualizer/internal/core"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
	"os-visualizer/internal/util"
)

func generateResponse(request *requests.ScheduleRequest, completed []*core.Process, cpu *core.Cpu) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(completed))
	totalBurstTime := 0
	for _, process := range completed {
		processDetails = append(processDetails, generateProcessDetails(process))
		totalBurstTime += process.Job.BurstTime
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	metric := cpu.Metric()
	response := responses.ScheduleResponse{
		Algorithm:             request.Algorithm,
		Timeline:              cpu.Timeline(),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		BusyTime:              metric.BusyTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        util.Ratio(float64(totalBurstTime), float64(metric.TotalTime)) * 100,
		CpuThroughput:         util.Ratio(float64(len(completed)), float64(metric.TotalTime)),
		Details:               processDetails,
	}
	if request.Algorithm == requests.RoundRobin {
		response.Quantum = request.Quantum
	}
	return response
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	job := process.Job
	turnAroundTime := process.CompletionTime - job.ArrivalTime
	details := responses.ProcessResponse{
		ProcessId:      job.Id,
		ProcessName:    job.Name,
		ArrivalTime:    job.ArrivalTime,
		BurstTime:      job.BurstTime,
		Priority:       job.Priority,
		CompletionTime: process.CompletionTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - job.BurstTime,
		ResponseTime:   process.FirstStartTime - job.ArrivalTime,
	}
	if details.WaitingTime < 0 || details.ResponseTime < 0 {
		log.Printf("pid: %s negative metric, schedule is inconsistent: %+v", job.Id, details)
	}
	return details
}
