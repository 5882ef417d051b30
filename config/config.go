package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MemoryTotalSize       int
	MemoryStrategy        string
	ExportBaseURL         string
	ExportFormat          string
	TracingEnabled        bool
	TracingOutput         string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// returns the shared configuration. A missing file falls back to defaults.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = Load("./"); err != nil {
			log.Fatalln(err)
		}
	})
	return config
}

// Load reads config.yaml from the given directories. Environment variables
// prefixed with OSVIS_ override file values, e.g. OSVIS_PORT or
// OSVIS_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix("osvis")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("memory.total_size", 1024)
	v.SetDefault("memory.strategy", "firstFit")
	v.SetDefault("export.base_url", "./exports")
	v.SetDefault("export.format", "json")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config.yaml not found, using defaults")
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MemoryTotalSize:       v.GetInt("memory.total_size"),
		MemoryStrategy:        v.GetString("memory.strategy"),
		ExportBaseURL:         v.GetString("export.base_url"),
		ExportFormat:          v.GetString("export.format"),
		TracingEnabled:        v.GetBool("tracing.enabled"),
		TracingOutput:         v.GetString("tracing.output"),
	}, nil
}
