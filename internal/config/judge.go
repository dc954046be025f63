package config

import (
	"os"
	"strconv"
	"time"

	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

// JudgeConfig carries the per-run resource ceilings and the sandbox image.
// The same limits apply to every submission; they are configuration, not part
// of the problem.
type JudgeConfig struct {
	Timeout     time.Duration
	MemoryMB    int64
	CPUFraction float64
	Image       string
}

func NewJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		Timeout:     time.Duration(getIntEnv("JUDGE_TIMEOUT_SEC", 10)) * time.Second,
		MemoryMB:    int64(getIntEnv("JUDGE_MEMORY_MB", 256)),
		CPUFraction: getFloatEnv("JUDGE_CPU_FRACTION", 0.5),
		Image:       getStrEnv("JUDGE_IMAGE", "python:3.11-slim"),
	}
}

// Limits converts the config into the value handed to every judge call.
func (c *JudgeConfig) Limits() domain.ExecutionLimits {
	return domain.ExecutionLimits{
		Timeout:     c.Timeout,
		MemoryMB:    c.MemoryMB,
		CPUFraction: c.CPUFraction,
	}
}

func getStrEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getFloatEnv(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return value
}
