package core

import "os-visualizer/internal/requests"

// Process is the engine's working copy of a caller-owned process descriptor.
type Process struct {
	Job            requests.Process
	Index          int // position in the caller's input, used for tie breaks
	RemainingTime  int
	FirstStartTime int // -1 until first dispatch
	CompletionTime int
}

// NewProcesses copies jobs into fresh working records. The caller's slice is
// never aliased.
func NewProcesses(jobs []requests.Process) []*Process {
	processes := make([]*Process, len(jobs))
	for i, job := range jobs {
		processes[i] = &Process{
			Job:            job,
			Index:          i,
			RemainingTime:  job.BurstTime,
			FirstStartTime: -1,
		}
	}
	return processes
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool {
	return p.FirstStartTime >= 0
}

// Completed reports whether the process has consumed its whole burst.
func (p *Process) Completed() bool {
	return p.RemainingTime == 0
}
