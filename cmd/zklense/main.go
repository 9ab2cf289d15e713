package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"zklense/internal/config"
	"zklense/internal/report"
	"zklense/internal/service"
	"zklense/internal/svc"
	"zklense/internal/viewer"
	"zklense/pkg/logger"
)

var projectPath string

func main() {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:           "zklense",
		Short:         "Solana ZK 证明交易成本分析工具",
		Long:          "模拟携带 ZK proof/witness 的 Solana 交易，输出 CU 用量、费用与尺寸合规诊断报告",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&projectPath, "path", "", "项目目录（默认当前目录）")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}

// basePath 解析 --path 参数，默认当前目录。
func basePath() (string, error) {
	if projectPath != "" {
		return projectPath, nil
	}
	return os.Getwd()
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "初始化项目（创建 .zklense 目录与默认配置）",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := basePath()
			if err != nil {
				return err
			}
			if config.IsInitialized(base) {
				fmt.Printf("ℹ project already initialized at %s\n", config.Path(base))
				return nil
			}
			if err := config.Save(base, config.Default()); err != nil {
				return err
			}
			fmt.Printf("✓ initialized zklense project, config at %s\n", config.Path(base))
			return nil
		},
	}
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <program-id>",
		Short: "模拟 ZK 证明验证交易并生成诊断报告",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			programID := args[0]
			if programID == "" {
				return fmt.Errorf("program ID cannot be empty")
			}

			base, err := basePath()
			if err != nil {
				return err
			}
			svcCtx, err := svc.NewServiceContext(base)
			if err != nil {
				return err
			}

			fmt.Printf("◉ simulating on %s (%s)\n", svcCtx.Config.Network, svcCtx.Config.EffectiveRPCURL())

			analyze := service.NewAnalyzeService(svcCtx, os.Stdout)
			rpt, err := analyze.Run(context.Background(), programID)
			if err != nil {
				return err
			}

			if rpt.TransactionStatus.Status == "Success" {
				fmt.Printf("✓ simulation complete, report saved to %s\n", svcCtx.Store.Path())
			} else {
				fmt.Printf("⚠ simulation completed with errors, report saved to %s\n", svcCtx.Store.Path())
			}
			return nil
		},
	}
}

func newViewCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "view",
		Short: "启动本地服务查看最近一次生成的报告",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := basePath()
			if err != nil {
				return err
			}

			store := report.NewStore(base)
			// 提前校验报告存在且为合法 JSON，缺失时直接报错而不是空转
			if _, err := store.LoadRaw(); err != nil {
				return err
			}

			srv, err := viewer.NewServer(store, port)
			if err != nil {
				return err
			}

			fmt.Printf("◉ serving report on http://127.0.0.1:%d\n", srv.Port())
			if cfg, err := config.Load(base); err == nil && cfg.WebAppURL != "" {
				fmt.Printf("◉ open viewer: %s?port=%d\n", cfg.WebAppURL, srv.Port())
			}
			fmt.Println("◉ press Ctrl+C to stop")
			return srv.Serve()
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "监听端口（0 表示随机可用端口）")
	return cmd
}
