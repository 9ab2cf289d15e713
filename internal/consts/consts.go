package consts

// Solana 费用与协议上限常量，必须与链上协议完全一致。
const (
	// LamportsPerSignature 每个签名收取的基础费用（lamports）
	LamportsPerSignature uint64 = 5000

	// LamportsPerSOL 1 SOL 对应的 lamports 数
	LamportsPerSOL uint64 = 1_000_000_000

	// DefaultComputeUnits 未显式设置 CU 限额时的默认预算
	DefaultComputeUnits uint32 = 200_000

	// MaxComputeUnits 单笔交易允许申请的 CU 上限
	MaxComputeUnits uint32 = 1_400_000

	// MaxTransactionSize 序列化后 message 的协议最大字节数
	MaxTransactionSize = 1232
)

// ComputeBudget 指令判别符（data[0]）。
const (
	// ComputeBudgetIxSetUnitLimit setComputeUnitLimit：data[4:8] 为 LE u32 限额
	ComputeBudgetIxSetUnitLimit uint8 = 2

	// ComputeBudgetIxSetUnitPrice setComputeUnitPrice：data[4:12] 为 LE u64 单价（microlamports/CU）
	ComputeBudgetIxSetUnitPrice uint8 = 3
)
