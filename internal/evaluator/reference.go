package evaluator

import (
	"vitals-monitor/internal/models"
)

// 固定参考范围（体温、脉搏、血氧）
const (
	temperatureLower = 95.0
	temperatureUpper = 102.0
	pulseLower       = 60.0
	pulseUpper       = 100.0
	spo2Lower        = 90.0
	spo2Upper        = 100.0

	warningThresholdPercent = 1.5
)

// ReferenceTable 参考参数表，评估顺序即字段顺序
type ReferenceTable struct {
	Temperature      models.VitalReferenceParameters
	PulseRate        models.VitalReferenceParameters
	OxygenSaturation models.VitalReferenceParameters
}

// NewReferenceTable 每次调用都重新构建参数表，调用方独占
func NewReferenceTable() ReferenceTable {
	return ReferenceTable{
		Temperature: mustParams(
			"Body Temperature", temperatureLower, temperatureUpper, warningThresholdPercent,
			"Critical Alert: Temperature out of safe range!",
			"Caution: Temperature approaching low limit",
			"Caution: Temperature approaching high limit",
		),
		PulseRate: mustParams(
			"Pulse Rate", pulseLower, pulseUpper, warningThresholdPercent,
			"Critical Alert: Pulse rate abnormal!",
			"Caution: Pulse rate nearing bradycardia",
			"Caution: Pulse rate nearing tachycardia",
		),
		OxygenSaturation: mustParams(
			"Oxygen Saturation", spo2Lower, spo2Upper, warningThresholdPercent,
			"Critical Alert: Oxygen saturation below safe level!",
			"Caution: Oxygen saturation dropping",
			"Caution: Oxygen saturation nearing upper limit",
		),
	}
}

// mustParams 固定常量一定合法，出错说明常量被改坏了
func mustParams(
	vitalName string,
	lowerLimit, upperLimit, percent float64,
	criticalMessage, lowWarningMessage, highWarningMessage string,
) models.VitalReferenceParameters {
	p, err := NewVitalReferenceParameters(vitalName, lowerLimit, upperLimit, percent,
		criticalMessage, lowWarningMessage, highWarningMessage)
	if err != nil {
		panic(err)
	}
	return p
}
