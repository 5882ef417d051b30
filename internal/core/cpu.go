package core

import (
	"fmt"

	"os-visualizer/internal/responses"
)

type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

// Cpu is a single simulated core. It owns the simulation clock for one run,
// so every scheduling loop threads its own Cpu value instead of sharing time.
type Cpu struct {
	clock    int
	busyTime int
	idleTime int
	timeline []responses.ExecutionInterval
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]responses.ExecutionInterval, 0)}
}

// Clock returns the current simulation time.
func (c *Cpu) Clock() int {
	return c.clock
}

// Execute runs process for duration units starting at the current clock.
func (c *Cpu) Execute(process *Process, duration int) error {
	if duration < 1 || duration > process.RemainingTime {
		return fmt.Errorf("pid: %s cannot run for %d units with %d remaining", process.Job.Id, duration, process.RemainingTime)
	}
	start := c.clock
	if !process.Started() {
		process.FirstStartTime = start
	}
	c.clock += duration
	c.busyTime += duration
	process.RemainingTime -= duration
	if process.Completed() {
		process.CompletionTime = c.clock
	}
	c.timeline = append(c.timeline, responses.ExecutionInterval{
		ProcessId:   process.Job.Id,
		ProcessName: process.Job.Name,
		StartTime:   start,
		EndTime:     c.clock,
	})
	return nil
}

// IdleUntil advances the clock to t without producing an interval. Jumping
// straight to t yields the same timeline as stepping one unit at a time.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.idleTime += t - c.clock
	c.clock = t
}

// Timeline returns the intervals executed so far, ordered by start time.
func (c *Cpu) Timeline() []responses.ExecutionInterval {
	timeline := make([]responses.ExecutionInterval, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime: c.clock,
		BusyTime:  c.busyTime,
		IdleTime:  c.idleTime,
	}
}
