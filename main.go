package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"os-visualizer/api"
	"os-visualizer/config"
	"os-visualizer/internal/export"
	"os-visualizer/internal/memory"
	"os-visualizer/internal/tracing"
)

func main() {
	cfg := config.GetSchedulerConfig()

	if cfg.TracingEnabled {
		if err := tracing.Init("os-visualizer", "0.1.0", cfg.TracingOutput); err != nil {
			log.Println("tracing disabled:", err)
		}
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	handler := api.NewSchedulerHandlerImpl(cfg, memory.NewRegistry(), export.NewExporter(nil, cfg.ExportBaseURL))
	api.Register(app.Group("/api"), handler)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
