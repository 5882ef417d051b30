package requests

// Algorithm names a scheduling policy.
type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "roundRobin"
	Priority            Algorithm = "priority"
)

// Algorithms lists every supported policy in comparison order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}

// IsValid reports whether a is one of the supported policies.
func (a Algorithm) IsValid() bool {
	for _, candidate := range Algorithms {
		if a == candidate {
			return true
		}
	}
	return false
}

// Process is a process descriptor. Lower priority values mean higher priority.
type Process struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

// ScheduleRequest is the typed simulation config. Quantum is required iff
// Algorithm is RoundRobin.
type ScheduleRequest struct {
	Algorithm Algorithm `json:"algorithm"`
	Quantum   int       `json:"quantum,omitempty"`
	Processes []Process `json:"processes"`
}
