package responses

import "os-visualizer/internal/requests"

// ExecutionInterval is one contiguous run of a process on the CPU.
type ExecutionInterval struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ProcessName string `json:"process_name" yaml:"process_name"`
	StartTime   int    `json:"start_time" yaml:"start_time"`
	EndTime     int    `json:"end_time" yaml:"end_time"`
}

// Duration returns EndTime - StartTime.
func (e ExecutionInterval) Duration() int {
	return e.EndTime - e.StartTime
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id" yaml:"process_id"`
	ProcessName    string `json:"process_name" yaml:"process_name"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	Priority       int    `json:"priority" yaml:"priority"`
	CompletionTime int    `json:"completion_time" yaml:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
}

type ScheduleResponse struct {
	Algorithm             requests.Algorithm  `json:"algorithm" yaml:"algorithm"`
	Quantum               int                 `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Timeline              []ExecutionInterval `json:"timeline" yaml:"timeline"`
	TotalTime             int                 `json:"total_time" yaml:"total_time"`
	IdleTime              int                 `json:"idle_time" yaml:"idle_time"`
	BusyTime              int                 `json:"busy_time" yaml:"busy_time"`
	AverageWaitingTime    float64             `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64             `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64             `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64             `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64             `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details               []ProcessResponse   `json:"details" yaml:"details"`
}
