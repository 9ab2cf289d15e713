// Package service 编排完整的分析管线：
// 读取证明产物 → 组装交易 → 网络模拟 → 解码/计费/合规 → 装配报告 → 持久化与渲染。
package service

import (
	"context"
	"fmt"
	"io"

	"zklense/internal/logic/analyzer"
	"zklense/internal/logic/core"
	"zklense/internal/logic/txadapter"
	"zklense/internal/logic/txbuilder"
	"zklense/internal/proof"
	"zklense/internal/svc"
	"zklense/internal/types"
	"zklense/pkg/logger"
)

// AnalyzeService 执行一次交易诊断分析。
type AnalyzeService struct {
	svcCtx *svc.ServiceContext
	out    io.Writer
}

func NewAnalyzeService(svcCtx *svc.ServiceContext, out io.Writer) *AnalyzeService {
	return &AnalyzeService{svcCtx: svcCtx, out: out}
}

// Run 执行分析管线并返回最终报告（已持久化）。
// programID 为目标验证程序的 base58 地址。
func (s *AnalyzeService) Run(ctx context.Context, programID string) (*analyzer.DiagnosticReport, error) {
	cfg := s.svcCtx.Config
	endpoint := cfg.EffectiveRPCURL()

	// 1. 定位并读取证明产物
	artifact, proofPath, witnessPath, err := proof.LoadArtifact(s.svcCtx.BasePath)
	if err != nil {
		return nil, err
	}
	logger.Infof("[AnalyzeService:Run] proof=%s (%d bytes), witness=%s (%d bytes)",
		proofPath, artifact.ProofSize(), witnessPath, artifact.WitnessSize())

	// 2. 获取 blockhash 并组装模拟交易
	blockhash, err := s.svcCtx.Simulator.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := txbuilder.BuildSimulationTransaction(programID, artifact, blockhash)
	if err != nil {
		return nil, err
	}

	// 3. 网络模拟（外部协作方，失败的模拟也是合法的可报告结果）
	outcome, err := s.svcCtx.Simulator.Simulate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if outcome.Failed() {
		logger.Warnf("[AnalyzeService:Run] simulation failed: %+v", outcome.Err)
	}

	// 4. 适配只读视图并测量序列化尺寸
	view, sizes, err := txadapter.Adapt(&tx)
	if err != nil {
		return nil, err
	}

	// 5. best-effort 优先费采样（失败不阻塞报告）
	recentFees := s.svcCtx.Simulator.RecentPrioritizationFees(ctx)

	// 6. 核心分析：解码 → 计费 → 合规 → 装配
	parsedProgram, err := types.TryPubkeyFromBase58(programID)
	if err != nil {
		return nil, fmt.Errorf("invalid program id: %w", err)
	}
	rpt, err := Analyze(AnalyzeInput{
		View:        view,
		Sizes:       sizes,
		Outcome:     outcome,
		ProofSize:   artifact.ProofSize(),
		WitnessSize: artifact.WitnessSize(),
		ProgramID:   parsedProgram,
		RecentFees:  recentFees,
		Network:     cfg.Network,
		RPCURL:      endpoint,
	})
	if err != nil {
		return nil, err
	}

	// 7. 持久化 + 渲染
	if err := s.svcCtx.Store.Save(rpt); err != nil {
		return nil, err
	}
	logger.Infof("[AnalyzeService:Run] report saved to %s", s.svcCtx.Store.Path())

	analyzer.RenderReport(s.out, rpt)
	return rpt, nil
}

// AnalyzeInput 聚合核心分析所需的全部已解析输入。
type AnalyzeInput struct {
	View        *core.TransactionView
	Sizes       txadapter.AdaptedSizes
	Outcome     *core.SimulationOutcome
	ProofSize   int
	WitnessSize int
	ProgramID   types.Pubkey
	RecentFees  []core.PrioritizationFee
	Network     string
	RPCURL      string
}

// Analyze 是纯计算的核心管线：decode → calculate → validate → assemble。
// 不做任何 I/O；同样输入必然得到字节一致的报告。
func Analyze(in AnalyzeInput) (*analyzer.DiagnosticReport, error) {
	overrides, err := analyzer.DecodeComputeBudget(in.View)
	if err != nil {
		return nil, err
	}

	cost := analyzer.CalculateCost(overrides, in.View.SignatureCount)
	compliance := analyzer.ValidateCompliance(in.Sizes.MessageSize, in.Sizes.TransactionSize,
		overrides, in.Outcome.UnitsConsumed)
	accounts := analyzer.BuildAccountStats(in.View)

	return analyzer.Assemble(analyzer.AssembleParams{
		ProofSize:   in.ProofSize,
		WitnessSize: in.WitnessSize,
		Overrides:   overrides,
		Cost:        cost,
		Compliance:  compliance,
		Accounts:    accounts,
		Simulation:  in.Outcome,
		ProgramID:   in.ProgramID,
		RecentFees:  in.RecentFees,
		Network:     in.Network,
		RPCURL:      in.RPCURL,
	}), nil
}
