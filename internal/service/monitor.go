package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"vitals-monitor/internal/models"

	"go.uber.org/zap"
)

// Evaluator 生命体征评估器接口
type Evaluator interface {
	Evaluate(temperature, pulseRate, oxygenSaturation float64) *models.EvaluationReport
}

// Summary 运行统计
type Summary struct {
	Evaluated int // 已评估的采样数
	Failed    int // 至少一项严重的采样数
	Skipped   int // 解析失败被跳过的行数
}

// MonitorService 逐行读取采样并评估
type MonitorService struct {
	evaluator Evaluator
	input     io.Reader
	logger    *zap.Logger

	mu      sync.Mutex
	summary Summary
}

// NewMonitorService 创建监测服务
func NewMonitorService(evaluator Evaluator, input io.Reader, logger *zap.Logger) *MonitorService {
	return &MonitorService{
		evaluator: evaluator,
		input:     input,
		logger:    logger,
	}
}

// 日志字段名，顺序与评估顺序一致
var zoneFieldKeys = []string{"temperature_zone", "pulse_zone", "spo2_zone"}

type scannedLine struct {
	number int
	text   string
}

// Start 启动服务，读到 EOF 或 ctx 取消时返回
// 评估在调用 Start 的 goroutine 上同步执行，严重报警会阻塞后续采样
func (s *MonitorService) Start(ctx context.Context) error {
	s.logger.Info("Monitor service started")

	lines := make(chan scannedLine)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.input)
		n := 0
		for scanner.Scan() {
			n++
			select {
			case lines <- scannedLine{number: n, text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			scanErr <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Monitor service stopped", s.summaryFields()...)
			return nil
		case line, ok := <-lines:
			if !ok {
				if ctx.Err() != nil {
					s.logger.Info("Monitor service stopped", s.summaryFields()...)
					return nil
				}
				select {
				case err := <-scanErr:
					return fmt.Errorf("failed to read samples: %w", err)
				default:
				}
				s.logger.Info("Monitor input exhausted", s.summaryFields()...)
				return nil
			}
			s.handleLine(line)
		}
	}
}

func (s *MonitorService) handleLine(line scannedLine) {
	sample, err := ParseSample(line.text)
	if errors.Is(err, ErrEmptyLine) {
		return
	}
	if err != nil {
		s.logger.Warn("Skipping malformed sample",
			zap.Int("line", line.number),
			zap.Error(err),
		)
		s.mu.Lock()
		s.summary.Skipped++
		s.mu.Unlock()
		return
	}

	report := s.evaluator.Evaluate(sample.Temperature, sample.PulseRate, sample.OxygenSaturation)

	s.mu.Lock()
	s.summary.Evaluated++
	if !report.OK {
		s.summary.Failed++
	}
	s.mu.Unlock()

	fields := []zap.Field{
		zap.String("evaluation_id", report.EvaluationID),
		zap.Int("line", line.number),
		zap.Bool("ok", report.OK),
	}
	for i, r := range report.Results {
		if i < len(zoneFieldKeys) {
			fields = append(fields, zap.Stringer(zoneFieldKeys[i], r.Zone))
		}
	}

	if report.OK {
		s.logger.Info("Vitals evaluated", fields...)
	} else {
		s.logger.Warn("Vitals evaluated with critical readings", fields...)
	}
}

// Summary 返回当前统计
func (s *MonitorService) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

func (s *MonitorService) summaryFields() []zap.Field {
	sum := s.Summary()
	return []zap.Field{
		zap.Int("evaluated", sum.Evaluated),
		zap.Int("failed", sum.Failed),
		zap.Int("skipped", sum.Skipped),
	}
}
