// Package rpc 封装两个外部协作方：网络执行模拟器与优先费查询。
// 超时、端点选择都收在这里；分析核心只接收已解析的普通值。
package rpc

import (
	"context"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	solrpc "github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	"zklense/internal/logic/core"
	"zklense/pkg/logger"
)

const (
	requestTimeout = 30 * time.Second

	// recentFeeSampleLimit 报告中保留的优先费采样点上限
	recentFeeSampleLimit = 50
)

// Simulator 是 Solana JSON-RPC 协作方的薄封装。
type Simulator struct {
	endpoint  string
	client    *client.Client
	rawClient solrpc.RpcClient
}

func NewSimulator(endpoint string) *Simulator {
	return &Simulator{
		endpoint:  endpoint,
		client:    client.NewClient(endpoint),
		rawClient: solrpc.NewRpcClient(endpoint),
	}
}

func (s *Simulator) Endpoint() string {
	return s.endpoint
}

// LatestBlockhash 获取最近区块哈希（构造可模拟交易所需）。
func (s *Simulator) LatestBlockhash(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	value, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("get latest blockhash: %w", err)
	}
	return value.Blockhash, nil
}

// Simulate 执行交易模拟（不提交状态），返回已解析的模拟结果。
// 模拟交易携带占位零签名，因此关闭签名校验。
func (s *Simulator) Simulate(ctx context.Context, tx types.Transaction) (*core.SimulationOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := s.client.SimulateTransactionWithConfig(ctx, tx, client.SimulateTransactionConfig{
		SigVerify: false,
	})
	if err != nil {
		return nil, fmt.Errorf("simulate transaction: %w", err)
	}

	outcome := &core.SimulationOutcome{
		Logs: res.Logs,
		Err:  res.Err,
	}
	if res.UnitConsumed != nil {
		outcome.UnitsConsumed = *res.UnitConsumed
	}
	if res.ReturnData != nil {
		outcome.ReturnData = res.ReturnData.Data
	}
	return outcome, nil
}

// RecentPrioritizationFees 查询近期优先费（best-effort）。
// 失败只告警并返回空列表——缺失该数据不应阻塞诊断报告生成。
func (s *Simulator) RecentPrioritizationFees(ctx context.Context) []core.PrioritizationFee {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.rawClient.GetRecentPrioritizationFees(ctx, []string{})
	if err != nil {
		logger.Warnf("[Simulator:RecentPrioritizationFees] 查询失败: %v", err)
		return nil
	}

	raw := resp.Result
	// 取最近的采样点（接口按 slot 升序返回，从尾部截取并倒序）
	fees := make([]core.PrioritizationFee, 0, recentFeeSampleLimit)
	for i := len(raw) - 1; i >= 0 && len(fees) < recentFeeSampleLimit; i-- {
		fees = append(fees, core.PrioritizationFee{
			Slot:              raw[i].Slot,
			PrioritizationFee: raw[i].PrioritizationFee,
		})
	}
	return fees
}
