package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeromicro/go-zero/core/conf"
	"gopkg.in/yaml.v3"

	"zklense/pkg/logger"
)

const (
	// ProjectDir 项目内的 zklense 工作目录
	ProjectDir = ".zklense"
	// ConfigFile 项目配置文件名
	ConfigFile = "config.yaml"
	// ReportFile 诊断报告文件名
	ReportFile = "report.json"
)

// LogConfig 日志配置
type LogConfig struct {
	Format   string `json:"format,optional" yaml:"format"`     // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional" yaml:"log_dir"`   // 日志目录（可为相对路径或绝对路径）
	Level    string `json:"level,optional" yaml:"level"`       // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional" yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// ProjectConfig 是 .zklense/config.yaml 的结构。
// RPCURL 为空时使用 Network 对应的默认端点。
type ProjectConfig struct {
	Version   string    `json:"version,optional" yaml:"version"`
	Network   string    `json:"network,optional" yaml:"network"`         // mainnet-beta / devnet / testnet / localhost
	RPCURL    string    `json:"rpc_url,optional" yaml:"rpc_url"`         // 自定义 RPC 端点，覆盖网络默认值
	WebAppURL string    `json:"web_app_url,optional" yaml:"web_app_url"` // viewer 前端地址，可为空
	LogConf   LogConfig `json:"logger,optional" yaml:"logger"`
}

// 支持的网络及默认 RPC 端点
var networkRPCURLs = map[string]string{
	"mainnet-beta": "https://api.mainnet-beta.solana.com",
	"devnet":       "https://api.devnet.solana.com",
	"testnet":      "https://api.testnet.solana.com",
	"localhost":    "http://127.0.0.1:8899",
}

// Networks 返回受支持的网络名列表（固定顺序，用于展示）。
func Networks() []string {
	return []string{"mainnet-beta", "devnet", "testnet", "localhost"}
}

// ValidNetwork 校验网络名是否受支持。
func ValidNetwork(name string) bool {
	_, ok := networkRPCURLs[name]
	return ok
}

// DefaultRPCURL 返回网络的默认 RPC 端点，未知网络返回空串。
func DefaultRPCURL(network string) string {
	return networkRPCURLs[network]
}

// Default 返回 init 时写入的初始配置（devnet + 默认端点）。
func Default() *ProjectConfig {
	return &ProjectConfig{
		Version: "0.1.0",
		Network: "devnet",
		LogConf: LogConfig{
			Format: "console",
			Level:  "info",
		},
	}
}

// EffectiveRPCURL 返回实际生效的 RPC 端点：自定义值优先，否则取网络默认。
func (c *ProjectConfig) EffectiveRPCURL() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return DefaultRPCURL(c.Network)
}

// Dir 返回项目的 .zklense 目录路径。
func Dir(base string) string {
	return filepath.Join(base, ProjectDir)
}

// Path 返回项目配置文件路径。
func Path(base string) string {
	return filepath.Join(base, ProjectDir, ConfigFile)
}

// ReportPath 返回诊断报告文件路径。
func ReportPath(base string) string {
	return filepath.Join(base, ProjectDir, ReportFile)
}

// IsInitialized 判断项目是否已执行过 init。
func IsInitialized(base string) bool {
	_, err := os.Stat(Path(base))
	return err == nil
}

// Load 读取项目配置。文件缺失时提示先执行 init。
func Load(base string) (*ProjectConfig, error) {
	path := Path(base)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found at %s, run 'zklense init' first", path)
	}
	var c ProjectConfig
	if err := conf.Load(path, &c); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if c.Network == "" {
		c.Network = "devnet"
	}
	if !ValidNetwork(c.Network) {
		return nil, fmt.Errorf("unknown network %q in config (supported: %v)", c.Network, Networks())
	}
	return &c, nil
}

// Save 持久化项目配置（必要时创建 .zklense 目录）。
func Save(base string, c *ProjectConfig) error {
	dir := Dir(base)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(Path(base), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
