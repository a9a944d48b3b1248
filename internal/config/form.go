package config

import (
	"os"
	"time"
)

type FormConfig struct {
	SubmitLatency time.Duration `validate:"min=0"`
	RulesFile     string
}

func NewFormConfig() *FormConfig {
	latencyMs := getIntEnv("SUBMIT_LATENCY_MS", 1500)
	if latencyMs < 0 {
		latencyMs = 0
	}
	return &FormConfig{
		SubmitLatency: time.Duration(latencyMs) * time.Millisecond,
		RulesFile:     os.Getenv("RULES_FILE"),
	}
}

type DraftConfig struct {
	Enabled  bool
	Interval time.Duration `validate:"gt=0"`
}

func NewDraftConfig() *DraftConfig {
	intervalSec := getIntEnv("DRAFT_AUTOSAVE_INTERVAL_SEC", 30)
	if intervalSec <= 0 {
		intervalSec = 30
	}
	return &DraftConfig{
		Enabled:  os.Getenv("DRAFT_AUTOSAVE_ENABLED") == "true",
		Interval: time.Duration(intervalSec) * time.Second,
	}
}

type DisplayConfig struct {
	TimeZone string `validate:"required"`
}

func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		TimeZone: getEnv("DISPLAY_TIMEZONE", "Local"),
	}
}
