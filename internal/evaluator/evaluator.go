package evaluator

import (
	"math"
	"time"

	"vitals-monitor/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertSink 报警输出接口（由外部协作方实现）
type AlertSink interface {
	// OnCritical 严重报警，允许阻塞（例如终端闪烁显示）
	OnCritical(message string)
	// OnWarning 接近边界警告，不应阻塞
	OnWarning(vitalName, message string)
}

type nopSink struct{}

func (nopSink) OnCritical(string) {}
func (nopSink) OnWarning(string, string) {}

// VitalsEvaluator 生命体征评估器
// 无内部可变状态，可重入；每个体征（含阻塞的严重报警）处理完才处理下一个
type VitalsEvaluator struct {
	sink   AlertSink
	logger *zap.Logger
}

// NewVitalsEvaluator 创建评估器，sink 为 nil 时不输出任何报警
func NewVitalsEvaluator(sink AlertSink, logger *zap.Logger) *VitalsEvaluator {
	if sink == nil {
		sink = nopSink{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VitalsEvaluator{
		sink:   sink,
		logger: logger,
	}
}

// VerifyVital 评估单项体征，严重区间返回 false
func (e *VitalsEvaluator) VerifyVital(reading float64, p models.VitalReferenceParameters) bool {
	return e.verify(reading, p).OK
}

func (e *VitalsEvaluator) verify(reading float64, p models.VitalReferenceParameters) models.VitalResult {
	if math.IsNaN(reading) || math.IsInf(reading, 0) {
		e.logger.Warn("Non-finite vital reading, treating as out of range",
			zap.String("vital", p.VitalName),
			zap.Float64("reading", reading),
		)
	}

	zone := Classify(reading, p)
	result := models.VitalResult{
		VitalName: p.VitalName,
		Reading:   reading,
		Zone:      zone,
		OK:        !zone.IsCritical(),
	}

	switch zone {
	case models.ZoneBelowRange, models.ZoneAboveRange:
		e.sink.OnCritical(p.CriticalMessage)
	case models.ZoneNearLow:
		e.sink.OnWarning(p.VitalName, p.LowWarningMessage)
	case models.ZoneNearHigh:
		e.sink.OnWarning(p.VitalName, p.HighWarningMessage)
	}

	e.logger.Debug("Vital evaluated",
		zap.String("vital", p.VitalName),
		zap.Float64("reading", reading),
		zap.Stringer("zone", zone),
	)

	return result
}

// Evaluate 依次评估体温、脉搏、血氧，不短路
func (e *VitalsEvaluator) Evaluate(temperature, pulseRate, oxygenSaturation float64) *models.EvaluationReport {
	table := NewReferenceTable()

	results := []models.VitalResult{
		e.verify(temperature, table.Temperature),
		e.verify(pulseRate, table.PulseRate),
		e.verify(oxygenSaturation, table.OxygenSaturation),
	}

	ok := true
	for _, r := range results {
		ok = ok && r.OK
	}

	return &models.EvaluationReport{
		EvaluationID: uuid.New().String(),
		Results:      results,
		OK:           ok,
		EvaluatedAt:  time.Now(),
	}
}

// EvaluateAllVitals 三项都不在严重区间时返回 true，警告不影响结果
func (e *VitalsEvaluator) EvaluateAllVitals(temperature, pulseRate, oxygenSaturation float64) bool {
	return e.Evaluate(temperature, pulseRate, oxygenSaturation).OK
}
