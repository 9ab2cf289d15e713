package consts

import "zklense/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	SystemProgramStr          = "11111111111111111111111111111111"
	ComputeBudgetProgramIdStr = "ComputeBudget111111111111111111111111111111"

	// DummyFeePayerStr 模拟交易使用的占位 fee payer（不会真正签名或广播）
	DummyFeePayerStr = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
)

var (
	SystemProgram        = types.PubkeyFromBase58(SystemProgramStr)
	ComputeBudgetProgram = types.PubkeyFromBase58(ComputeBudgetProgramIdStr)
	DummyFeePayer        = types.PubkeyFromBase58(DummyFeePayerStr)
)
