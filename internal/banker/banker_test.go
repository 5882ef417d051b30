package banker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-visualizer/internal/errs"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

func classicState() ([][]int, [][]int, []int, []string) {
	allocation := [][]int{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {4, 1, 1}, {0, 0, 2}, {0, 0, 0}}
	maxDemand := [][]int{{7, 5, 3}, {3, 2, 2}, {9, 0, 2}, {4, 2, 2}, {4, 3, 3}, {1, 1, 1}}
	return allocation, maxDemand, []int{3, 3, 2}, []string{"P1", "P2", "P3", "P4", "P5", "P6"}
}

func TestCheckSafety(t *testing.T) {
	allocation, maxDemand, available, ids := classicState()
	response, err := CheckSafety(allocation, maxDemand, available, ids)
	require.NoError(t, err)

	assert.True(t, response.Safe)
	assert.Equal(t, []string{"P2", "P4", "P1", "P3", "P5", "P6"}, response.Sequence)
	assert.Equal(t, []responses.SafetyStep{
		{ProcessId: "P2", Work: []int{5, 3, 2}, Description: "P2 completes and releases resources"},
		{ProcessId: "P4", Work: []int{9, 4, 3}, Description: "P4 completes and releases resources"},
		{ProcessId: "P1", Work: []int{9, 5, 3}, Description: "P1 completes and releases resources"},
		{ProcessId: "P3", Work: []int{12, 5, 5}, Description: "P3 completes and releases resources"},
		{ProcessId: "P5", Work: []int{12, 5, 7}, Description: "P5 completes and releases resources"},
		{ProcessId: "P6", Work: []int{12, 5, 7}, Description: "P6 completes and releases resources"},
	}, response.Steps)
	assert.Equal(t, []int{7, 4, 3}, response.Need[0])
	// the caller's vector is not used as the work vector
	assert.Equal(t, []int{3, 3, 2}, available)
}

func TestCheckSafetyUnsafe(t *testing.T) {
	response, err := CheckSafety(
		[][]int{{1}, {1}, {0}},
		[][]int{{3}, {4}, {1}},
		[]int{1},
		[]string{"P1", "P2", "P3"},
	)
	require.NoError(t, err)
	assert.False(t, response.Safe)
	assert.Equal(t, []string{"P3"}, response.Sequence)
	assert.Len(t, response.Steps, 1)
}

func TestCheckSafetyNoProcesses(t *testing.T) {
	response, err := CheckSafety(nil, nil, []int{1, 2}, nil)
	require.NoError(t, err)
	assert.True(t, response.Safe)
	assert.Empty(t, response.Sequence)
}

func TestCheckSafetyIsIdempotent(t *testing.T) {
	allocation, maxDemand, available, ids := classicState()
	first, err := CheckSafety(allocation, maxDemand, available, ids)
	require.NoError(t, err)
	second, err := CheckSafety(allocation, maxDemand, available, ids)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// every process in the sequence fits in work at the time it runs
	index := map[string]int{}
	for i, id := range ids {
		index[id] = i
	}
	need := Need(allocation, maxDemand)
	work := append([]int(nil), available...)
	for _, id := range first.Sequence {
		p := index[id]
		for r := range work {
			require.LessOrEqual(t, need[p][r], work[r])
		}
		for r := range work {
			work[r] += allocation[p][r]
		}
	}
}

func TestValidate(t *testing.T) {
	var useCases = []struct {
		description string
		allocation  [][]int
		maxDemand   [][]int
		available   []int
		ids         []string
	}{
		{description: "allocation exceeds max", allocation: [][]int{{2}}, maxDemand: [][]int{{1}}, available: []int{0}, ids: []string{"P1"}},
		{description: "negative available", allocation: [][]int{{0}}, maxDemand: [][]int{{1}}, available: []int{-1}, ids: []string{"P1"}},
		{description: "negative allocation", allocation: [][]int{{-1}}, maxDemand: [][]int{{1}}, available: []int{0}, ids: []string{"P1"}},
		{description: "ragged row", allocation: [][]int{{0, 0}}, maxDemand: [][]int{{1}}, available: []int{0}, ids: []string{"P1"}},
		{description: "row count mismatch", allocation: [][]int{{0}}, maxDemand: [][]int{}, available: []int{0}, ids: []string{"P1"}},
		{description: "duplicate id", allocation: [][]int{{0}, {0}}, maxDemand: [][]int{{1}, {1}}, available: []int{0}, ids: []string{"P1", "P1"}},
	}

	for _, useCase := range useCases {
		t.Run(useCase.description, func(t *testing.T) {
			_, err := CheckSafety(useCase.allocation, useCase.maxDemand, useCase.available, useCase.ids)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestCheck(t *testing.T) {
	response, err := Check(&requests.SafetyRequest{
		Processes: []requests.ResourceProcess{
			{Allocation: []int{1, 0}, Max: []int{2, 1}},
			{Id: "B", Allocation: []int{0, 1}, Max: []int{1, 1}},
		},
		Available: []int{1, 0},
	})
	require.NoError(t, err)
	assert.True(t, response.Safe)
	assert.Equal(t, []string{"B", "P1"}, response.Sequence)
}

func TestCheckClamp(t *testing.T) {
	request := &requests.SafetyRequest{
		Processes: []requests.ResourceProcess{{Id: "P1", Allocation: []int{5}, Max: []int{3}}},
		Available: []int{0},
	}
	_, err := Check(request)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	request.Clamp = true
	response, err := Check(request)
	require.NoError(t, err)
	assert.True(t, response.Safe)
	assert.Equal(t, [][]int{{0}}, response.Need)
	assert.Equal(t, []int{3}, response.Steps[0].Work)
	// clamping works on a copy
	assert.Equal(t, []int{5}, request.Processes[0].Allocation)
}

func TestNeedIsNeverNegative(t *testing.T) {
	assert.Equal(t, [][]int{{0, 2}}, Need([][]int{{4, 1}}, [][]int{{3, 3}}))
}
