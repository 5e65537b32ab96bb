package alert

import (
	"vitals-monitor/internal/models"

	"go.uber.org/zap"
)

// LogSink 只写日志的报警输出（无终端时使用）
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) OnCritical(message string) {
	l.logger.Error("Critical vital alert",
		zap.String("alarm_level", models.AlarmLevelCritical),
		zap.String("message", message),
	)
}

func (l *LogSink) OnWarning(vitalName, message string) {
	l.logger.Warn("Vital warning",
		zap.String("alarm_level", models.AlarmLevelWarning),
		zap.String("vital", vitalName),
		zap.String("message", message),
	)
}
