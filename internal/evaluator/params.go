package evaluator

import (
	"errors"
	"fmt"
	"math"

	"vitals-monitor/internal/models"

	"go.uber.org/multierr"
)

// ErrInvalidReferenceParameters 参考参数不合法
var ErrInvalidReferenceParameters = errors.New("invalid reference parameters")

// ConfigError 参考参数构建错误，Err 中包含全部违规项
type ConfigError struct {
	VitalName string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidReferenceParameters, e.VitalName, e.Err)
}

// Unwrap 同时暴露 ErrInvalidReferenceParameters 和各个违规项
func (e *ConfigError) Unwrap() []error {
	return append([]error{ErrInvalidReferenceParameters}, multierr.Errors(e.Err)...)
}

// NewVitalReferenceParameters 构建并校验参考参数
// 校验：上下限有限、lower < upper、百分比 > 0、两侧接近区间不重叠
func NewVitalReferenceParameters(
	vitalName string,
	lowerLimit, upperLimit, warningThresholdPercent float64,
	criticalMessage, lowWarningMessage, highWarningMessage string,
) (models.VitalReferenceParameters, error) {
	p := models.VitalReferenceParameters{
		LowerLimit:              lowerLimit,
		UpperLimit:              upperLimit,
		WarningThresholdPercent: warningThresholdPercent,
		VitalName:               vitalName,
		CriticalMessage:         criticalMessage,
		LowWarningMessage:       lowWarningMessage,
		HighWarningMessage:      highWarningMessage,
	}

	if err := validate(p); err != nil {
		return models.VitalReferenceParameters{}, &ConfigError{VitalName: vitalName, Err: err}
	}
	return p, nil
}

func validate(p models.VitalReferenceParameters) error {
	var err error

	if !isFinite(p.LowerLimit) || !isFinite(p.UpperLimit) || !isFinite(p.WarningThresholdPercent) {
		// 非有限值下后续比较没有意义
		return fmt.Errorf("limits and threshold must be finite (lower=%v upper=%v percent=%v)",
			p.LowerLimit, p.UpperLimit, p.WarningThresholdPercent)
	}

	if p.LowerLimit >= p.UpperLimit {
		err = multierr.Append(err, fmt.Errorf("lower limit %v must be below upper limit %v", p.LowerLimit, p.UpperLimit))
	}
	if p.WarningThresholdPercent <= 0 {
		err = multierr.Append(err, fmt.Errorf("warning threshold percent %v must be positive", p.WarningThresholdPercent))
	}
	if err != nil {
		return err
	}

	if nearLow, nearHigh := p.NearLowBoundary(), p.NearHighBoundary(); nearLow >= nearHigh {
		err = multierr.Append(err, fmt.Errorf("near zones overlap: near-low boundary %v is not below near-high boundary %v", nearLow, nearHigh))
	}
	if p.VitalName == "" {
		err = multierr.Append(err, errors.New("vital name is required"))
	}
	return err
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
