package evaluator

import (
	"math"

	"vitals-monitor/internal/models"
)

// Classify 判断读数所处区间
// 先与接近上限边界比较：低于它只看下侧边界，否则只看上侧边界。
// 边界向安全侧包含：reading == lowerLimit 不算 BelowRange，reading == upperLimit 算 NearHigh。
// NaN 读数按 BelowRange 处理（严重，失效安全）。
func Classify(reading float64, p models.VitalReferenceParameters) models.Zone {
	if math.IsNaN(reading) {
		return models.ZoneBelowRange
	}

	tolerance := p.Tolerance()
	nearLow := p.LowerLimit + tolerance
	nearHigh := p.UpperLimit - tolerance

	if reading < nearHigh {
		return classifyLowSide(reading, p.LowerLimit, nearLow)
	}
	return classifyHighSide(reading, nearHigh, p.UpperLimit)
}

func classifyLowSide(reading, lowerLimit, nearLow float64) models.Zone {
	if reading < lowerLimit {
		return models.ZoneBelowRange
	}
	if reading < nearLow {
		return models.ZoneNearLow
	}
	return models.ZoneWithinRange
}

func classifyHighSide(reading, nearHigh, upperLimit float64) models.Zone {
	if reading <= nearHigh {
		return models.ZoneWithinRange
	}
	if reading <= upperLimit {
		return models.ZoneNearHigh
	}
	return models.ZoneAboveRange
}
