package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"zklense/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "查看与修改项目配置（网络 / RPC 端点）",
	}
	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetNetworkCmd(),
		newConfigSetNetworkCmd(),
		newConfigListNetworksCmd(),
		newConfigGetRPCCmd(),
		newConfigSetRPCCmd(),
		newConfigResetRPCCmd(),
	)
	return cmd
}

func loadProjectConfig() (string, *config.ProjectConfig, error) {
	base, err := basePath()
	if err != nil {
		return "", nil, err
	}
	c, err := config.Load(base)
	if err != nil {
		return "", nil, err
	}
	return base, c, nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "显示当前配置",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			fmt.Println("zklense configuration")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("  version     = %s\n", c.Version)
			fmt.Printf("  network     = %s (RPC: %s)\n", c.Network, c.EffectiveRPCURL())
			if c.RPCURL != "" {
				fmt.Printf("  rpc_url     = %s (custom)\n", c.RPCURL)
			}
			if c.WebAppURL != "" {
				fmt.Printf("  web_app_url = %s\n", c.WebAppURL)
			}
			return nil
		},
	}
}

func newConfigGetNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-network",
		Short: "显示当前 Solana 网络",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			fmt.Printf("network: %s\nrpc url: %s\n", c.Network, c.EffectiveRPCURL())
			return nil
		},
	}
}

func newConfigSetNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-network <network>",
		Short: "切换 Solana 网络",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network := args[0]
			if !config.ValidNetwork(network) {
				return fmt.Errorf("unknown network %q (supported: %s)",
					network, strings.Join(config.Networks(), ", "))
			}

			base, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			if c.Network == network {
				fmt.Printf("ℹ network is already set to %s\n", network)
				return nil
			}

			old := c.Network
			c.Network = network
			if err := config.Save(base, c); err != nil {
				return err
			}
			fmt.Printf("✓ network changed: %s → %s (RPC: %s)\n", old, network, c.EffectiveRPCURL())
			return nil
		},
	}
}

func newConfigListNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-networks",
		Short: "列出可用的 Solana 网络",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			for _, network := range config.Networks() {
				marker := "○"
				if network == c.Network {
					marker = "●"
				}
				fmt.Printf("  %s %s - %s\n", marker, network, config.DefaultRPCURL(network))
			}
			fmt.Printf("\ncurrent RPC URL: %s\n", c.EffectiveRPCURL())
			return nil
		},
	}
}

func newConfigGetRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-rpc",
		Short: "显示当前 RPC 端点",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			fmt.Printf("rpc url: %s (network: %s)\n", c.EffectiveRPCURL(), c.Network)
			if c.RPCURL != "" && c.RPCURL != config.DefaultRPCURL(c.Network) {
				fmt.Printf("  (custom - default for %s is %s)\n", c.Network, config.DefaultRPCURL(c.Network))
			}
			return nil
		},
	}
}

func newConfigSetRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-rpc <url>",
		Short: "设置自定义 RPC 端点",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rpcURL := args[0]
			if !strings.HasPrefix(rpcURL, "http://") && !strings.HasPrefix(rpcURL, "https://") {
				return fmt.Errorf("RPC URL must start with http:// or https://")
			}

			base, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			if c.RPCURL == rpcURL {
				fmt.Printf("ℹ RPC URL is already set to %s\n", rpcURL)
				return nil
			}

			old := c.EffectiveRPCURL()
			c.RPCURL = rpcURL
			if err := config.Save(base, c); err != nil {
				return err
			}
			fmt.Printf("✓ RPC URL changed:\n  old: %s\n  new: %s\n", old, rpcURL)
			return nil
		},
	}
}

func newConfigResetRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-rpc",
		Short: "将 RPC 端点重置为当前网络的默认值",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, c, err := loadProjectConfig()
			if err != nil {
				return err
			}
			def := config.DefaultRPCURL(c.Network)
			if c.RPCURL == "" {
				fmt.Printf("ℹ RPC URL is already the default: %s\n", def)
				return nil
			}

			old := c.RPCURL
			c.RPCURL = ""
			if err := config.Save(base, c); err != nil {
				return err
			}
			fmt.Printf("✓ RPC URL reset for %s:\n  old: %s\n  new: %s\n", c.Network, old, def)
			return nil
		},
	}
}
