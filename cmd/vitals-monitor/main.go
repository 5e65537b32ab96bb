package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"vitals-monitor/internal/alert"
	"vitals-monitor/internal/config"
	"vitals-monitor/internal/evaluator"
	"vitals-monitor/internal/logger"
	"vitals-monitor/internal/service"

	"go.uber.org/zap"
)

func main() {
	once := flag.String("once", "", `evaluate a single sample "temperature,pulse,spo2" and exit (0 = ok, 1 = critical)`)
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	// 3. 创建评估器
	eval := evaluator.NewVitalsEvaluator(newAlertSink(cfg, log), log)

	// 单次评估模式
	if *once != "" {
		sample, err := service.ParseSample(*once)
		if err != nil {
			log.Fatal("Invalid sample", zap.String("sample", *once), zap.Error(err))
		}
		ok := eval.EvaluateAllVitals(sample.Temperature, sample.PulseRate, sample.OxygenSaturation)
		log.Sync()
		if !ok {
			os.Exit(1)
		}
		return
	}

	// 4. 打开采样输入
	input, closeInput, err := openInput(cfg.Monitor.Input)
	if err != nil {
		log.Fatal("Failed to open monitor input", zap.String("input", cfg.Monitor.Input), zap.Error(err))
	}
	defer closeInput()

	monitorService := service.NewMonitorService(eval, input, log)

	// 5. 创建上下文（支持优雅关闭）
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 6. 启动服务（严重报警阻塞时不影响信号处理）
	serviceDone := make(chan error, 1)
	go func() {
		serviceDone <- monitorService.Start(ctx)
	}()

	// 7. 等待信号或输入结束
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("Received signal, shutting down",
			zap.String("signal", sig.String()),
		)
		cancel()
	case err := <-serviceDone:
		if err != nil {
			log.Fatal("Service error", zap.Error(err))
		}
	}

	log.Info("Vitals monitor stopped")
}

// newAlertSink 根据配置选择报警输出
func newAlertSink(cfg *config.Config, log *zap.Logger) evaluator.AlertSink {
	if cfg.Alert.Mode == config.AlertModeLog {
		return alert.NewLogSink(log)
	}
	return alert.MultiSink{
		alert.NewConsoleSink(os.Stdout, cfg.Alert.BlinkCycles, cfg.Alert.BlinkInterval),
		alert.NewLogSink(log),
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
