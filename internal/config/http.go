package config

type HTTPConfig struct {
	Port        int    `validate:"min=1,max=65535"`
	ServiceName string `validate:"required"`
}

func NewHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port:        getIntEnv("HTTP_PORT", 8082),
		ServiceName: getEnv("SERVICE_NAME", "websiteRequests"),
	}
}
