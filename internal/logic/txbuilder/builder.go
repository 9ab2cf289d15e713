// Package txbuilder 负责把证明产物组装为可供模拟的 Solana 交易：
// 一条 setComputeUnitLimit 指令加一条携带 proof‖witness payload 的 verify 指令。
package txbuilder

import (
	"encoding/binary"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"

	"zklense/internal/consts"
	"zklense/internal/logic/core"
	ztypes "zklense/internal/types"
)

// BuildComputeUnitLimitData 构造 setComputeUnitLimit 指令 payload。
// 布局与解码契约一致：data[0]=2，data[1:4] 保留置零，data[4:8] 为 LE u32 限额。
func BuildComputeUnitLimitData(units uint32) []byte {
	data := make([]byte, 8)
	data[0] = consts.ComputeBudgetIxSetUnitLimit
	binary.LittleEndian.PutUint32(data[4:], units)
	return data
}

// BuildComputeUnitPriceData 构造 setComputeUnitPrice 指令 payload。
// data[0]=3，data[4:12] 为 LE u64 单价（microlamports/CU）。
func BuildComputeUnitPriceData(price uint64) []byte {
	data := make([]byte, 12)
	data[0] = consts.ComputeBudgetIxSetUnitPrice
	binary.LittleEndian.PutUint64(data[4:], price)
	return data
}

// BuildSimulationTransaction 组装用于模拟的未签名交易。
//
// 结构与真实提交一致：
//  1. setComputeUnitLimit(MaxComputeUnits)——默认拉满预算，保证任意规模的证明都能执行完；
//  2. verify 指令：program 为目标验证程序，payload 为 proof‖witness，不引用账户。
//
// fee payer 使用占位地址，签名位填 64 字节零值——模拟端关闭签名校验，
// 但序列化尺寸与真实交易一致，尺寸合规检查因此可信。
func BuildSimulationTransaction(programID string, artifact *core.ProofArtifact, recentBlockhash string) (types.Transaction, error) {
	parsed, err := ztypes.TryPubkeyFromBase58(programID)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("invalid program id: %w", err)
	}
	verifyProgram := common.PublicKeyFromBytes(parsed[:])

	computeBudgetIx := types.Instruction{
		ProgramID: common.PublicKeyFromString(consts.ComputeBudgetProgramIdStr),
		Accounts:  []types.AccountMeta{},
		Data:      BuildComputeUnitLimitData(consts.MaxComputeUnits),
	}
	verifyIx := types.Instruction{
		ProgramID: verifyProgram,
		Accounts:  []types.AccountMeta{},
		Data:      artifact.InstructionData(),
	}

	msg := types.NewMessage(types.NewMessageParam{
		FeePayer:        common.PublicKeyFromString(consts.DummyFeePayerStr),
		RecentBlockhash: recentBlockhash,
		Instructions:    []types.Instruction{computeBudgetIx, verifyIx},
	})

	// 占位零签名：数量满足 header 要求即可通过序列化
	signatures := make([]types.Signature, msg.Header.NumRequireSignatures)
	for i := range signatures {
		signatures[i] = make([]byte, 64)
	}

	return types.Transaction{
		Message:    msg,
		Signatures: signatures,
	}, nil
}
