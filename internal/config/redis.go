package config

type RedisConfig struct {
	DB        int    `validate:"min=0"`
	Url       string `validate:"required,hostname_port"`
	Password  string
	KeyPrefix string
}

func NewRedisConfig() *RedisConfig {
	return &RedisConfig{
		DB:        getIntEnv("REDIS_DB", 0),
		Url:       getEnv("REDIS_ADDR", "localhost:6379"),
		Password:  getEnv("REDIS_PASSWORD", ""),
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "webrequest:"),
	}
}
