package config

type RedisConfig struct {
	DB       int
	Url      string
	Password string
}

func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		DB:       getIntEnv("REDIS_DB", 0),
		Url:      getStrEnv("REDIS_ADDR", "localhost:6379"),
		Password: getStrEnv("REDIS_PASSWORD", ""),
	}
}
