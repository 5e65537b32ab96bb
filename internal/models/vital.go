package models

import "time"

// Zone 读数相对参考范围所处的区间（沿读数轴有序）
type Zone int

const (
	ZoneBelowRange  Zone = iota // 低于下限（严重）
	ZoneNearLow                 // 接近下限（警告）
	ZoneWithinRange             // 安全范围内
	ZoneNearHigh                // 接近上限（警告）
	ZoneAboveRange              // 高于上限（严重）
)

func (z Zone) String() string {
	switch z {
	case ZoneBelowRange:
		return "BelowRange"
	case ZoneNearLow:
		return "NearLow"
	case ZoneWithinRange:
		return "WithinRange"
	case ZoneNearHigh:
		return "NearHigh"
	case ZoneAboveRange:
		return "AboveRange"
	default:
		return "Unknown"
	}
}

// IsCritical 是否为严重区间
func (z Zone) IsCritical() bool {
	return z == ZoneBelowRange || z == ZoneAboveRange
}

// IsNear 是否为接近边界的警告区间
func (z Zone) IsNear() bool {
	return z == ZoneNearLow || z == ZoneNearHigh
}

// VitalReferenceParameters 单项生命体征的参考参数（构建后不可变）
// 通过 evaluator.NewVitalReferenceParameters 构建以保证参数合法
type VitalReferenceParameters struct {
	LowerLimit              float64
	UpperLimit              float64
	WarningThresholdPercent float64 // 上限的百分比，定义"接近边界"的宽度

	VitalName          string
	CriticalMessage    string
	LowWarningMessage  string
	HighWarningMessage string
}

// Tolerance 接近边界的绝对宽度
func (p VitalReferenceParameters) Tolerance() float64 {
	return p.UpperLimit * p.WarningThresholdPercent / 100
}

// NearLowBoundary 接近下限区间的上边界
func (p VitalReferenceParameters) NearLowBoundary() float64 {
	return p.LowerLimit + p.Tolerance()
}

// NearHighBoundary 接近上限区间的下边界
func (p VitalReferenceParameters) NearHighBoundary() float64 {
	return p.UpperLimit - p.Tolerance()
}

// VitalResult 单项评估结果
type VitalResult struct {
	VitalName string  `json:"vital_name"`
	Reading   float64 `json:"reading"`
	Zone      Zone    `json:"zone"`
	OK        bool    `json:"ok"` // false 表示严重区间
}

// EvaluationReport 一次评估的完整结果
type EvaluationReport struct {
	EvaluationID string        `json:"evaluation_id"`
	Results      []VitalResult `json:"results"` // 顺序：体温、脉搏、血氧
	OK           bool          `json:"ok"`
	EvaluatedAt  time.Time     `json:"evaluated_at"`
}
