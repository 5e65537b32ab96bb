package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyLine 空行或注释行
var ErrEmptyLine = errors.New("empty line")

// Sample 一组采样值（体温、脉搏、血氧）
type Sample struct {
	Temperature      float64
	PulseRate        float64
	OxygenSaturation float64
}

// ParseSample 解析一行采样："98.6 72 97" 或 "98.6,72,97"，# 开头为注释
func ParseSample(line string) (Sample, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Sample{}, ErrEmptyLine
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Sample{}, fmt.Errorf("expected 3 values (temperature pulse spo2), got %d", len(fields))
	}

	values := make([]float64, 3)
	names := []string{"temperature", "pulse rate", "oxygen saturation"}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Sample{}, fmt.Errorf("invalid %s %q: %w", names[i], f, err)
		}
		values[i] = v
	}

	return Sample{
		Temperature:      values[0],
		PulseRate:        values[1],
		OxygenSaturation: values[2],
	}, nil
}
