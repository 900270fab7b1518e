package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/studyplan/internal/storage"
)

type RuntimeConfig struct {
	StorePath            string
	Backend              string
	DesktopNotifications bool
	ChartHeight          int
	EditorWindow         int
	DebugLogPath         string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StorePath:            "cronograma.csv",
		Backend:              storage.BackendCSV,
		DesktopNotifications: false,
		ChartHeight:          7,
		EditorWindow:         8,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("STUDYPLAN_FILE")); v != "" {
		cfg.StorePath = v
	}
	if v := strings.TrimSpace(strings.ToLower(os.Getenv("STUDYPLAN_BACKEND"))); v != "" {
		cfg.Backend = v
	}
	if v, ok := getEnvBool("STUDYPLAN_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("STUDYPLAN_CHART_HEIGHT"); ok && v > 1 {
		cfg.ChartHeight = v
	}
	if v, ok := getEnvInt("STUDYPLAN_EDITOR_WINDOW"); ok && v > 0 {
		cfg.EditorWindow = v
	}
	if v := strings.TrimSpace(os.Getenv("STUDYPLAN_DEBUG_LOG")); v != "" {
		cfg.DebugLogPath = v
	}
	return cfg
}

func (c RuntimeConfig) StorageConfig() storage.Config {
	return storage.Config{Backend: c.Backend, Path: c.StorePath}
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
