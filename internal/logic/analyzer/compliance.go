package analyzer

import (
	"fmt"

	"zklense/internal/consts"
	"zklense/internal/logic/core"
)

// 三档 CU 使用率建议文案。下游工具按字符串匹配解析，不得改动。
const (
	SuggestionNearBudget   = "Consider optimizing compute usage - near budget limit"
	SuggestionApproaching  = "Monitor compute usage - approaching budget limit"
	SuggestionWithinBudget = "Compute usage is within acceptable range"
)

// ComplianceReport 是尺寸与预算合规检查结果。
type ComplianceReport struct {
	MessageSize     int
	TransactionSize int

	WithinSizeLimit     bool
	ComputeUsagePercent float64
	ExceedsMaxCompute   bool

	// CULimitWarning 仅在 ExceedsMaxCompute 时非空
	CULimitWarning string
	Suggestion     string
}

// ValidateCompliance 对序列化尺寸与 CU 预算做合规判定。
// 入参均为已解析好的尺寸/计数，本函数不做 I/O、不返回错误。
func ValidateCompliance(messageSize, transactionSize int, o ComputeBudgetOverrides, unitsConsumed uint64) ComplianceReport {
	r := ComplianceReport{
		MessageSize:     messageSize,
		TransactionSize: transactionSize,
		WithinSizeLimit: messageSize <= consts.MaxTransactionSize,
	}

	// CULimit 为 0 时显式取 0，而不是除零报错
	if o.CULimit > 0 {
		r.ComputeUsagePercent = float64(unitsConsumed) / float64(o.CULimit) * 100
	}

	if o.CULimit > consts.MaxComputeUnits {
		r.ExceedsMaxCompute = true
		r.CULimitWarning = fmt.Sprintf("CU limit (%d) exceeds maximum allowed (%d)",
			o.CULimit, consts.MaxComputeUnits)
	}

	switch {
	case r.ExceedsMaxCompute:
		r.Suggestion = r.CULimitWarning
	case r.ComputeUsagePercent > 90:
		r.Suggestion = SuggestionNearBudget
	case r.ComputeUsagePercent > 70:
		r.Suggestion = SuggestionApproaching
	default:
		r.Suggestion = SuggestionWithinBudget
	}
	return r
}

// AccountStats 是账户写锁统计，供报告 accounts 分组使用。
type AccountStats struct {
	TotalAccounts          int
	WritableSigned         int
	WritableUnsigned       int
	TotalWritable          int
	ReadonlySignedAccounts int
	ReadonlyUnsigned       int
}

// BuildAccountStats 从 message header 推导账户读写统计（饱和减法，防计数异常下溢）。
func BuildAccountStats(tx *core.TransactionView) AccountStats {
	total := len(tx.AccountKeys)
	h := tx.Header

	writableSigned := satSub(int(h.NumRequiredSignatures), int(h.NumReadonlySignedAccounts))
	writableUnsigned := satSub(satSub(total, int(h.NumRequiredSignatures)), int(h.NumReadonlyUnsignedAccounts))

	return AccountStats{
		TotalAccounts:          total,
		WritableSigned:         writableSigned,
		WritableUnsigned:       writableUnsigned,
		TotalWritable:          writableSigned + writableUnsigned,
		ReadonlySignedAccounts: int(h.NumReadonlySignedAccounts),
		ReadonlyUnsigned:       int(h.NumReadonlyUnsignedAccounts),
	}
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
