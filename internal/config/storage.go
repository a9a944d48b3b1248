package config

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type StorageConfig struct {
	Driver     string `validate:"oneof=memory redis postgres sqlite"`
	MaxRecords int    `validate:"min=0"`
}

func NewStorageConfig() *StorageConfig {
	maxRecords := getIntEnv("STORAGE_MAX_RECORDS", 500)
	if maxRecords < 0 {
		maxRecords = 0
	}
	return &StorageConfig{
		Driver:     getEnv("STORAGE_DRIVER", DriverMemory),
		MaxRecords: maxRecords,
	}
}

type SqliteConfig struct {
	Path string `validate:"required"`
}

func NewSqliteConfig() *SqliteConfig {
	return &SqliteConfig{
		Path: getEnv("SQLITE_PATH", "webrequest.db"),
	}
}
