package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPPort       int
	PostgresConfig *PostgresConfig
	RedisConfig    *RedisConfig
	JwtConfig      *JwtConfig
	GGAuthConfig   *GGAuthConfig
	JudgeConfig    *JudgeConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPPort:       getIntEnv("HTTP_PORT", 8082),
		PostgresConfig: NewPostgresConfig(),
		RedisConfig:    NewRedisConfig(),
		JwtConfig:      NewJwtConfig(),
		GGAuthConfig:   NewGGAuthConfig(),
		JudgeConfig:    NewJudgeConfig(),
	}
}
