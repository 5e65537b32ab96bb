package evaluator

import (
	"math"
	"testing"

	"vitals-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockAlertSink 是 AlertSink 的 mock 实现
type MockAlertSink struct {
	mock.Mock
}

func (m *MockAlertSink) OnCritical(message string) {
	m.Called(message)
}

func (m *MockAlertSink) OnWarning(vitalName, message string) {
	m.Called(vitalName, message)
}

// recordingSink 按调用顺序记录报警
type recordingSink struct {
	calls []string
}

func (r *recordingSink) OnCritical(message string) {
	r.calls = append(r.calls, "critical|"+message)
}

func (r *recordingSink) OnWarning(vitalName, message string) {
	r.calls = append(r.calls, "warning|"+vitalName+"|"+message)
}

func TestVitalsEvaluator_AllWithinRange(t *testing.T) {
	sink := new(MockAlertSink)
	e := NewVitalsEvaluator(sink, zap.NewNop())

	ok := e.EvaluateAllVitals(98.0, 75.0, 97.0)

	assert.True(t, ok)
	sink.AssertNotCalled(t, "OnCritical", mock.Anything)
	sink.AssertNotCalled(t, "OnWarning", mock.Anything, mock.Anything)
}

func TestVitalsEvaluator_CriticalTemperature(t *testing.T) {
	sink := new(MockAlertSink)
	sink.On("OnCritical", "Critical Alert: Temperature out of safe range!").Return().Once()
	e := NewVitalsEvaluator(sink, zap.NewNop())

	report := e.Evaluate(104.0, 75.0, 97.0)

	assert.False(t, report.OK)
	require.Len(t, report.Results, 3)
	assert.False(t, report.Results[0].OK)
	assert.Equal(t, models.ZoneAboveRange, report.Results[0].Zone)
	// 脉搏和血氧仍然被评估
	assert.True(t, report.Results[1].OK)
	assert.True(t, report.Results[2].OK)
	assert.Equal(t, "Pulse Rate", report.Results[1].VitalName)
	assert.Equal(t, "Oxygen Saturation", report.Results[2].VitalName)

	sink.AssertExpectations(t)
	sink.AssertNumberOfCalls(t, "OnCritical", 1)
	sink.AssertNotCalled(t, "OnWarning", mock.Anything, mock.Anything)
}

func TestVitalsEvaluator_EvaluateAllVitals_CriticalFails(t *testing.T) {
	e := NewVitalsEvaluator(&recordingSink{}, nil)

	assert.False(t, e.EvaluateAllVitals(104.0, 75.0, 97.0))
	assert.False(t, e.EvaluateAllVitals(98.0, 50.0, 97.0))
	assert.False(t, e.EvaluateAllVitals(98.0, 75.0, 85.0))
}

func TestVitalsEvaluator_NearLowWarningDoesNotFail(t *testing.T) {
	sink := new(MockAlertSink)
	sink.On("OnWarning", "Body Temperature", "Caution: Temperature approaching low limit").Return().Once()
	e := NewVitalsEvaluator(sink, zap.NewNop())

	ok := e.EvaluateAllVitals(96.5, 75.0, 97.0)

	assert.True(t, ok)
	sink.AssertExpectations(t)
	sink.AssertNumberOfCalls(t, "OnWarning", 1)
	sink.AssertNotCalled(t, "OnCritical", mock.Anything)
}

func TestVitalsEvaluator_JustAboveNearLowBoundary(t *testing.T) {
	// 96.6 高于接近下限边界 96.53，属于安全范围
	sink := &recordingSink{}
	e := NewVitalsEvaluator(sink, zap.NewNop())

	assert.True(t, e.EvaluateAllVitals(96.6, 75.0, 97.0))
	assert.Empty(t, sink.calls)
}

func TestVitalsEvaluator_NearHighWarning(t *testing.T) {
	sink := &recordingSink{}
	e := NewVitalsEvaluator(sink, zap.NewNop())

	assert.True(t, e.EvaluateAllVitals(98.0, 99.0, 99.5))
	assert.Equal(t, []string{
		"warning|Pulse Rate|Caution: Pulse rate nearing tachycardia",
		"warning|Oxygen Saturation|Caution: Oxygen saturation nearing upper limit",
	}, sink.calls)
}

func TestVitalsEvaluator_SideEffectOrder(t *testing.T) {
	sink := &recordingSink{}
	e := NewVitalsEvaluator(sink, zap.NewNop())

	// 体温接近下限、脉搏严重、血氧正常
	ok := e.EvaluateAllVitals(96.0, 130.0, 97.0)

	assert.False(t, ok)
	assert.Equal(t, []string{
		"warning|Body Temperature|Caution: Temperature approaching low limit",
		"critical|Critical Alert: Pulse rate abnormal!",
	}, sink.calls)

	// 顺序反过来：体温严重、血氧接近下限
	sink.calls = nil
	ok = e.EvaluateAllVitals(94.0, 75.0, 91.0)

	assert.False(t, ok)
	assert.Equal(t, []string{
		"critical|Critical Alert: Temperature out of safe range!",
		"warning|Oxygen Saturation|Caution: Oxygen saturation dropping",
	}, sink.calls)
}

func TestVitalsEvaluator_AllCriticalNoShortCircuit(t *testing.T) {
	sink := &recordingSink{}
	e := NewVitalsEvaluator(sink, zap.NewNop())

	assert.False(t, e.EvaluateAllVitals(110.0, 20.0, 80.0))
	assert.Equal(t, []string{
		"critical|Critical Alert: Temperature out of safe range!",
		"critical|Critical Alert: Pulse rate abnormal!",
		"critical|Critical Alert: Oxygen saturation below safe level!",
	}, sink.calls)
}

func TestVitalsEvaluator_Idempotent(t *testing.T) {
	sink := &recordingSink{}
	e := NewVitalsEvaluator(sink, zap.NewNop())

	first := e.Evaluate(96.0, 130.0, 99.0)
	firstCalls := append([]string(nil), sink.calls...)

	sink.calls = nil
	second := e.Evaluate(96.0, 130.0, 99.0)

	assert.Equal(t, first.OK, second.OK)
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, firstCalls, sink.calls)
	assert.NotEqual(t, first.EvaluationID, second.EvaluationID)
}

func TestVitalsEvaluator_VerifyVital(t *testing.T) {
	sink := new(MockAlertSink)
	sink.On("OnCritical", "custom critical").Return().Once()
	sink.On("OnWarning", "Glucose", "custom high").Return().Once()
	e := NewVitalsEvaluator(sink, zap.NewNop())

	p, err := NewVitalReferenceParameters("Glucose", 70, 140, 5, "custom critical", "custom low", "custom high")
	require.NoError(t, err)

	assert.True(t, e.VerifyVital(100, p))
	assert.True(t, e.VerifyVital(135, p))
	assert.False(t, e.VerifyVital(150, p))
	sink.AssertExpectations(t)
}

func TestVitalsEvaluator_NonFiniteReading(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sink := &recordingSink{}
	e := NewVitalsEvaluator(sink, zap.New(core))

	ok := e.EvaluateAllVitals(math.NaN(), 75.0, 97.0)

	assert.False(t, ok)
	assert.Equal(t, []string{"critical|Critical Alert: Temperature out of safe range!"}, sink.calls)

	entries := logs.FilterMessage("Non-finite vital reading, treating as out of range").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Body Temperature", entries[0].ContextMap()["vital"])
}

func TestVitalsEvaluator_NilSink(t *testing.T) {
	e := NewVitalsEvaluator(nil, nil)

	assert.False(t, e.EvaluateAllVitals(104.0, 75.0, 97.0))
	assert.True(t, e.EvaluateAllVitals(98.0, 75.0, 97.0))
}
