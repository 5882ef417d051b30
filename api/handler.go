package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"os-visualizer/config"
	"os-visualizer/internal/banker"
	"os-visualizer/internal/errs"
	"os-visualizer/internal/export"
	"os-visualizer/internal/idgen"
	"os-visualizer/internal/memory"
	"os-visualizer/internal/requests"
	"os-visualizer/internal/responses"
	"os-visualizer/internal/schedulers"
	"os-visualizer/internal/tracing"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type SafetyHandler interface {
	CheckSafety(ctx *fiber.Ctx) error
}

type MemoryHandler interface {
	CreateMemory(ctx *fiber.Ctx) error
	Allocate(ctx *fiber.Ctx) error
	Free(ctx *fiber.Ctx) error
	ResetMemory(ctx *fiber.Ctx) error
	MemoryStats(ctx *fiber.Ctx) error
	MemoryBlocks(ctx *fiber.Ctx) error
	DeleteMemory(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	registry *memory.Registry
	exporter *export.Exporter
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, registry *memory.Registry, exporter *export.Exporter) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, registry: registry, exporter: exporter}
}

// Register mounts every handler under router.
func Register(router fiber.Router, h *SchedulerHandlerImpl) {
	v1 := router.Group("/v1")
	{
		v1.Post("/schedule", h.Schedule)
		v1.Post("/fcfs", h.FirstComeFirstServe)
		v1.Post("/sjf", h.ShortestJobFirst)
		v1.Post("/rr", h.RoundRobin)
		v1.Post("/priority", h.Priority)
		v1.Post("/all", h.AllAlgorithms)
		v1.Post("/export", h.Export)

		v1.Post("/bankers/safety", h.CheckSafety)

		v1.Post("/memory", h.CreateMemory)
		v1.Post("/memory/:id/allocate", h.Allocate)
		v1.Post("/memory/:id/free", h.Free)
		v1.Post("/memory/:id/reset", h.ResetMemory)
		v1.Get("/memory/:id/stats", h.MemoryStats)
		v1.Get("/memory/:id/blocks", h.MemoryBlocks)
		v1.Delete("/memory/:id", h.DeleteMemory)
	}
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.Priority)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm requests.Algorithm) error {
	request, err := s.parseScheduleRequest(ctx, algorithm)
	if err != nil {
		return invalidFormat(ctx)
	}
	response, err := s.simulate(ctx.UserContext(), request)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseScheduleRequest(ctx, "")
	if err != nil {
		return invalidFormat(ctx)
	}
	if request.Quantum == 0 {
		request.Quantum = s.config.RoundRobinTimeQuantum
	}
	var results []responses.ScheduleResponse
	err = traced(ctx.UserContext(), "schedulers.CompareAll", map[string]string{
		"processes": strconv.Itoa(len(request.Processes)),
	}, func() (err error) {
		results, err = schedulers.CompareAll(request.Processes, request.Quantum)
		return err
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"results": results})
}

func (s *SchedulerHandlerImpl) Export(ctx *fiber.Ctx) error {
	format, err := export.ParseFormat(ctx.Query("format", s.config.ExportFormat))
	if err != nil {
		return respondError(ctx, err)
	}
	request, err := s.parseScheduleRequest(ctx, "")
	if err != nil {
		return invalidFormat(ctx)
	}
	response, err := s.simulate(ctx.UserContext(), request)
	if err != nil {
		return respondError(ctx, err)
	}
	snapshot := export.NewSnapshot(request.Processes, response)
	URL, err := s.exporter.Save(ctx.UserContext(), snapshot, format)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"url": URL, "snapshot": snapshot})
}

func (s *SchedulerHandlerImpl) CheckSafety(ctx *fiber.Ctx) error {
	request := &requests.SafetyRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return invalidFormat(ctx)
	}
	var response responses.SafetyResponse
	err := traced(ctx.UserContext(), "banker.Check", map[string]string{
		"processes": strconv.Itoa(len(request.Processes)),
		"resources": strconv.Itoa(len(request.Available)),
	}, func() (err error) {
		response, err = banker.Check(request)
		return err
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) CreateMemory(ctx *fiber.Ctx) error {
	request := &requests.MemorySessionRequest{}
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			return invalidFormat(ctx)
		}
	}
	if request.TotalSize == 0 {
		request.TotalSize = s.config.MemoryTotalSize
	}
	if request.Strategy == "" {
		request.Strategy = s.config.MemoryStrategy
	}
	strategy, err := memory.ParseStrategy(request.Strategy)
	if err != nil {
		return respondError(ctx, err)
	}
	id, err := s.registry.Create(request.TotalSize, strategy)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         id,
		"total_size": request.TotalSize,
		"strategy":   strategy,
	})
}

func (s *SchedulerHandlerImpl) Allocate(ctx *fiber.Ctx) error {
	request := &requests.AllocateRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return invalidFormat(ctx)
	}
	var result memory.AllocationResult
	err := traced(ctx.UserContext(), "memory.Allocate", map[string]string{
		"owner": request.Owner,
		"size":  strconv.Itoa(request.Size),
	}, func() (err error) {
		result, err = s.registry.Allocate(ctx.Params("id"), request.Owner, request.Size)
		return err
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) Free(ctx *fiber.Ctx) error {
	request := &requests.FreeRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return invalidFormat(ctx)
	}
	released, err := s.registry.Free(ctx.Params("id"), request.Owner)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"owner": request.Owner, "released": released})
}

func (s *SchedulerHandlerImpl) ResetMemory(ctx *fiber.Ctx) error {
	if err := s.registry.Reset(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) MemoryStats(ctx *fiber.Ctx) error {
	stats, err := s.registry.Stats(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(stats)
}

func (s *SchedulerHandlerImpl) MemoryBlocks(ctx *fiber.Ctx) error {
	blocks, err := s.registry.Blocks(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"blocks": blocks})
}

func (s *SchedulerHandlerImpl) DeleteMemory(ctx *fiber.Ctx) error {
	if err := s.registry.Delete(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// parseScheduleRequest decodes the body, forces algorithm when set, fills the
// configured round robin quantum when omitted and assigns missing ids.
func (s *SchedulerHandlerImpl) parseScheduleRequest(ctx *fiber.Ctx, algorithm requests.Algorithm) (*requests.ScheduleRequest, error) {
	request := &requests.ScheduleRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, err
	}
	if algorithm != "" {
		request.Algorithm = algorithm
	}
	if request.Algorithm == requests.RoundRobin && request.Quantum == 0 {
		request.Quantum = s.config.RoundRobinTimeQuantum
	}
	processes := make([]requests.Process, len(request.Processes))
	for i, process := range request.Processes {
		if process.Id == "" {
			process.Id = idgen.New()
		}
		if process.Name == "" {
			process.Name = process.Id
		}
		processes[i] = process
	}
	request.Processes = processes
	return request, nil
}

func (s *SchedulerHandlerImpl) simulate(ctx context.Context, request *requests.ScheduleRequest) (response responses.ScheduleResponse, err error) {
	err = traced(ctx, "schedulers.Simulate", map[string]string{
		"algorithm": string(request.Algorithm),
		"processes": strconv.Itoa(len(request.Processes)),
	}, func() (err error) {
		response, err = schedulers.Simulate(request)
		return err
	})
	return response, err
}

func traced(ctx context.Context, name string, attrs map[string]string, fn func() error) error {
	_, span := tracing.StartSpan(ctx, name)
	span.WithAttributes(attrs)
	err := fn()
	tracing.EndSpan(span, err)
	return err
}

func invalidFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, errs.ErrOutOfMemory):
		status = fiber.StatusConflict
	case errors.Is(err, memory.ErrSessionNotFound):
		status = fiber.StatusNotFound
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
