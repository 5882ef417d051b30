package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

func TestCpuExecute(t *testing.T) {
	jobs := []requests.Process{{Id: "1", Name: "P1", BurstTime: 5}}
	processes := NewProcesses(jobs)
	cpu := NewCpu()

	cpu.IdleUntil(2)
	require.NoError(t, cpu.Execute(processes[0], 3))
	assert.Equal(t, 2, processes[0].FirstStartTime)
	assert.Equal(t, 2, processes[0].RemainingTime)
	assert.False(t, processes[0].Completed())

	require.NoError(t, cpu.Execute(processes[0], 2))
	assert.True(t, processes[0].Completed())
	assert.Equal(t, 7, processes[0].CompletionTime)
	assert.Equal(t, 2, processes[0].FirstStartTime)

	assert.Equal(t, []responses.ExecutionInterval{
		{ProcessId: "1", ProcessName: "P1", StartTime: 2, EndTime: 5},
		{ProcessId: "1", ProcessName: "P1", StartTime: 5, EndTime: 7},
	}, cpu.Timeline())
	assert.Equal(t, CpuMetric{TotalTime: 7, BusyTime: 5, IdleTime: 2}, cpu.Metric())

	// the caller's descriptor is untouched
	assert.Equal(t, 5, jobs[0].BurstTime)
}

func TestCpuExecuteRejectsOverrun(t *testing.T) {
	processes := NewProcesses([]requests.Process{{Id: "1", BurstTime: 2}})
	cpu := NewCpu()
	assert.Error(t, cpu.Execute(processes[0], 3))
	assert.Error(t, cpu.Execute(processes[0], 0))
	assert.Empty(t, cpu.Timeline())
	assert.Equal(t, 0, cpu.Clock())
}

func TestCpuIdleUntilNeverMovesBackwards(t *testing.T) {
	cpu := NewCpu()
	cpu.IdleUntil(4)
	cpu.IdleUntil(1)
	assert.Equal(t, 4, cpu.Clock())
	assert.Equal(t, 4, cpu.Metric().IdleTime)
}
