package models

import (
	"time"
)

// 报警级别
const (
	AlarmLevelCritical = "CRITICAL"
	AlarmLevelWarning  = "WARNING"
)

// AlarmEvent 报警事件（单次评估内产生，不持久化）
type AlarmEvent struct {
	EventID     string    `json:"event_id"`
	VitalName   string    `json:"vital_name,omitempty"` // 严重报警没有体征名，只有报警文本
	AlarmLevel  string    `json:"alarm_level"`          // CRITICAL, WARNING
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}
