// Package report 负责诊断报告的持久化：每次分析覆盖写入固定路径，
// viewer 再从同一路径读回。报告没有其他生命周期，不是可变存储。
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"zklense/internal/config"
	"zklense/internal/logic/analyzer"
)

// Store 管理单个项目目录下的 report.json。
type Store struct {
	base string
}

func NewStore(base string) *Store {
	return &Store{base: base}
}

// Path 返回报告文件路径。
func (s *Store) Path() string {
	return config.ReportPath(s.base)
}

// Save 将报告序列化为带缩进的 JSON 并覆盖写入固定路径。
func (s *Store) Save(r *analyzer.DiagnosticReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	dir := filepath.Dir(s.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", s.Path(), err)
	}
	return nil
}

// LoadRaw 读取持久化的报告原文并校验为合法 JSON（viewer 原样转发，不反序列化为结构体）。
func (s *Store) LoadRaw() ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no report found at %s, run 'zklense simulate' first", s.Path())
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("report file %s is not valid JSON", s.Path())
	}
	return data, nil
}
