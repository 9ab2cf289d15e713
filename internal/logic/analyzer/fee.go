package analyzer

import (
	"fmt"

	"zklense/internal/consts"
)

// CostBreakdown 是一次交易的费用拆解。lamport 字段全程保持整数，
// SOL 小数串只在报告/渲染边界生成，避免浮点漂移进入费用合计。
type CostBreakdown struct {
	BaseFee     uint64 // 签名基础费（lamports）
	PriorityFee uint64 // 优先费（lamports，截断除法）
	TotalFee    uint64 // BaseFee + PriorityFee

	NumSignatures uint64

	// Priority = PriorityFee / CULimit，CULimit 为 0 时取 0。
	// 启发式展示值（不同来源对该公式口径不一），仅用于相对排序，
	// 不进入任何正确性敏感的计算路径。
	Priority float64
}

// CalculateCost 由生效预算参数与签名数推导费用拆解。
// signatureCount 会被钳到至少 1：模拟期零签名的交易仍按一个 fee payer 计费。
func CalculateCost(o ComputeBudgetOverrides, signatureCount int) CostBreakdown {
	sigs := uint64(1)
	if signatureCount > 1 {
		sigs = uint64(signatureCount)
	}

	baseFee := sigs * consts.LamportsPerSignature
	// 整数截断除法，必须与链上 microlamports → lamports 的换算语义一致
	priorityFee := uint64(o.CULimit) * o.CUPriceMicroLamports / 1_000_000
	totalFee := baseFee + priorityFee

	priority := 0.0
	if o.CULimit > 0 {
		priority = float64(priorityFee) / float64(o.CULimit)
	}

	return CostBreakdown{
		BaseFee:       baseFee,
		PriorityFee:   priorityFee,
		TotalFee:      totalFee,
		NumSignatures: sigs,
		Priority:      priority,
	}
}

// FormatSOL 将 lamports 格式化为固定 9 位小数的 SOL 字符串。
// 纯整数除法/取余实现，与内部 lamport 表示精确对应。
func FormatSOL(lamports uint64) string {
	return fmt.Sprintf("%d.%09d", lamports/consts.LamportsPerSOL, lamports%consts.LamportsPerSOL)
}
