package alert

import (
	"sync"
	"time"

	"vitals-monitor/internal/evaluator"
	"vitals-monitor/internal/models"

	"github.com/google/uuid"
)

// EventRecorder 把报警记录为 AlarmEvent（仅内存，不持久化）
type EventRecorder struct {
	mu     sync.Mutex
	events []models.AlarmEvent
	now    func() time.Time
}

// NewEventRecorder 创建报警事件记录器
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{now: time.Now}
}

func (r *EventRecorder) OnCritical(message string) {
	r.record("", models.AlarmLevelCritical, message)
}

func (r *EventRecorder) OnWarning(vitalName, message string) {
	r.record(vitalName, models.AlarmLevelWarning, message)
}

func (r *EventRecorder) record(vitalName, level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, models.AlarmEvent{
		EventID:     uuid.New().String(),
		VitalName:   vitalName,
		AlarmLevel:  level,
		Message:     message,
		TriggeredAt: r.now(),
	})
}

// Events 返回记录的报警（副本），按触发顺序
func (r *EventRecorder) Events() []models.AlarmEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.AlarmEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Drain 返回并清空记录
func (r *EventRecorder) Drain() []models.AlarmEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.events
	r.events = nil
	return out
}

// MultiSink 按顺序把报警转发给多个 sink
type MultiSink []evaluator.AlertSink

func (m MultiSink) OnCritical(message string) {
	for _, s := range m {
		s.OnCritical(message)
	}
}

func (m MultiSink) OnWarning(vitalName, message string) {
	for _, s := range m {
		s.OnWarning(vitalName, message)
	}
}
