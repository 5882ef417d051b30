package schedulers

import (
	"log"
	"sort"

	"os-visualizer/internal/core"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// ProcessQueue is the FIFO ready queue used by round robin.
type ProcessQueue struct {
	queue []*core.Process
}

func NewProcessQueue() *ProcessQueue {
	return &ProcessQueue{queue: make([]*core.Process, 0)}
}

func (p *ProcessQueue) AddToEnd(process *core.Process) {
	p.queue = append(p.queue, process)
}

func (p *ProcessQueue) RemoveFromTop() (*core.Process, bool) {
	if len(p.queue) == 0 {
		return nil, false
	}
	item := p.queue[0]
	p.queue = p.queue[1:]
	return item, true
}

func (p *ProcessQueue) Len() int {
	return len(p.queue)
}

// ScheduleRoundRobin dispatches the head of the ready queue for at most one
// quantum. Processes that arrived while the head was running are enqueued
// before the head is put back.
//
// That ordering is a policy choice: re-enqueueing the preempted process first
// would also be a valid round robin, with different waiting times.
func ScheduleRoundRobin(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := ValidateRequest(request); err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeQuantum := request.Quantum
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

	pending := core.NewProcesses(request.Processes)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Job.ArrivalTime < pending[j].Job.ArrivalTime
	})

	cpu := core.NewCpu()
	readyQueue := NewProcessQueue()
	completed := make([]*core.Process, 0, len(pending))

	admitArrivals := func() {
		for len(pending) > 0 && pending[0].Job.ArrivalTime <= cpu.Clock() {
			readyQueue.AddToEnd(pending[0])
			pending = pending[1:]
		}
	}

	for len(pending) > 0 || readyQueue.Len() > 0 {
		admitArrivals()

		process, ok := readyQueue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(pending[0].Job.ArrivalTime)
			continue
		}

		slice := timeQuantum
		if process.RemainingTime < slice {
			slice = process.RemainingTime
		}
		if err := cpu.Execute(process, slice); err != nil {
			return responses.ScheduleResponse{}, err
		}

		admitArrivals()
		if process.Completed() {
			completed = append(completed, process)
		} else {
			readyQueue.AddToEnd(process)
		}
	}

	return generateResponse(request, completed, cpu), nil
}
