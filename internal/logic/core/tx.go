package core

import (
	"fmt"

	"zklense/internal/types"
)

// MessageHeader 对应 Solana message header 的三个计数字段。
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// InstructionRecord 是交易 message 中单条指令的只读视图。
// ProgramIDIndex 指向 TransactionView.AccountKeys，而非直接持有 program id，
// 这一层间接必须保留：费用与预算分析依赖按索引解析出的真实 program id。
type InstructionRecord struct {
	ProgramIDIndex int
	Accounts       []uint8
	Data           []byte
}

// TransactionView 是一次分析的输入交易结构，构建后只读不改。
type TransactionView struct {
	Instructions   []InstructionRecord
	AccountKeys    []types.Pubkey
	Header         MessageHeader
	SignatureCount int
}

// ResolveProgramID 按 ProgramIDIndex 解析指令的 program id。
// 索引越界说明调用方给出的交易结构已损坏，必须报错而不是静默替换，
// 否则指令会被错误归属，污染整个费用/预算分析。
func (tx *TransactionView) ResolveProgramID(ix InstructionRecord) (types.Pubkey, error) {
	if ix.ProgramIDIndex < 0 || ix.ProgramIDIndex >= len(tx.AccountKeys) {
		return types.Pubkey{}, fmt.Errorf(
			"program id index %d out of range: transaction has %d account keys",
			ix.ProgramIDIndex, len(tx.AccountKeys))
	}
	return tx.AccountKeys[ix.ProgramIDIndex], nil
}
