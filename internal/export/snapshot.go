// Package export serializes a finished simulation into a snapshot the user
// can save.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"os-visualizer/internal/errs"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
)

// NowFunc returns the snapshot time. Override in tests for determinism.
var NowFunc = time.Now

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a name to a Format. An empty name means JSON.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", errs.ErrInvalidInput, name)
}

// Extension returns the file extension for f.
func (f Format) Extension() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

type Metrics struct {
	AverageTurnaroundTime float64                     `json:"averageTurnaroundTime" yaml:"averageTurnaroundTime"`
	AverageWaitingTime    float64                     `json:"averageWaitingTime" yaml:"averageWaitingTime"`
	AverageResponseTime   float64                     `json:"averageResponseTime" yaml:"averageResponseTime"`
	CpuUtilization        float64                     `json:"cpuUtilization" yaml:"cpuUtilization"`
	ProcessMetrics        []responses.ProcessResponse `json:"processMetrics" yaml:"processMetrics"`
}

// Snapshot is the saved form of one simulation run.
type Snapshot struct {
	Algorithm requests.Algorithm            `json:"algorithm" yaml:"algorithm"`
	Processes []requests.Process            `json:"processes" yaml:"processes"`
	GanttData []responses.ExecutionInterval `json:"ganttData" yaml:"ganttData"`
	Metrics   Metrics                       `json:"metrics" yaml:"metrics"`
	Timestamp string                        `json:"timestamp" yaml:"timestamp"`
}

// NewSnapshot captures processes and their simulation result at NowFunc.
func NewSnapshot(processes []requests.Process, result responses.ScheduleResponse) *Snapshot {
	return &Snapshot{
		Algorithm: result.Algorithm,
		Processes: append([]requests.Process{}, processes...),
		GanttData: append([]responses.ExecutionInterval{}, result.Timeline...),
		Metrics: Metrics{
			AverageTurnaroundTime: result.AverageTurnAroundTime,
			AverageWaitingTime:    result.AverageWaitingTime,
			AverageResponseTime:   result.AverageResponseTime,
			CpuUtilization:        result.CpuUtilization,
			ProcessMetrics:        append([]responses.ProcessResponse{}, result.Details...),
		},
		Timestamp: NowFunc().UTC().Format(time.RFC3339Nano),
	}
}

// Encode renders the snapshot in the requested format.
func Encode(snapshot *Snapshot, format Format) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: nil snapshot", errs.ErrInvalidInput)
	}
	switch format {
	case YAML:
		buf := &bytes.Buffer{}
		encoder := yaml.NewEncoder(buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(snapshot); err != nil {
			return nil, fmt.Errorf("failed to encode snapshot as yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case JSON, "":
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode snapshot as json: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: unknown export format %q", errs.ErrInvalidInput, format)
}

// Decode parses data written by Encode.
func Decode(data []byte, format Format) (*Snapshot, error) {
	snapshot := &Snapshot{}
	var err error
	if format == YAML {
		err = yaml.Unmarshal(data, snapshot)
	} else {
		err = json.Unmarshal(data, snapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s snapshot: %w", format.Extension(), err)
	}
	return snapshot, nil
}
