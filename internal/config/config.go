package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// 报警显示模式
const (
	AlertModeConsole = "console" // 终端闪烁显示（默认）
	AlertModeLog     = "log"     // 仅写日志
)

// Config 生命体征监测服务配置
// 注意：参考范围是固定常量，不从配置加载
type Config struct {
	ServiceName string

	Alert struct {
		Mode          string        // console 或 log
		BlinkCycles   int           // 严重报警闪烁次数，默认 6
		BlinkInterval time.Duration // 每次闪烁间隔，默认 1秒
	}

	Monitor struct {
		Input string // 采样输入文件路径，"-" 表示 stdin
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServiceName = getEnv("SERVICE_NAME", "vitals-monitor")

	cfg.Alert.Mode = getEnv("ALERT_MODE", AlertModeConsole)
	if cfg.Alert.Mode != AlertModeConsole && cfg.Alert.Mode != AlertModeLog {
		return nil, fmt.Errorf("invalid ALERT_MODE %q: must be %q or %q", cfg.Alert.Mode, AlertModeConsole, AlertModeLog)
	}

	cycles, err := strconv.Atoi(getEnv("ALERT_BLINK_CYCLES", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_BLINK_CYCLES: %w", err)
	}
	if cycles < 0 {
		return nil, fmt.Errorf("invalid ALERT_BLINK_CYCLES %d: must not be negative", cycles)
	}
	cfg.Alert.BlinkCycles = cycles

	interval, err := time.ParseDuration(getEnv("ALERT_BLINK_INTERVAL", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_BLINK_INTERVAL: %w", err)
	}
	cfg.Alert.BlinkInterval = interval

	cfg.Monitor.Input = getEnv("MONITOR_INPUT", "-")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
