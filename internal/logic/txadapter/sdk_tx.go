// Package txadapter 将 blocto SDK 的交易结构适配为分析核心的只读视图，
// 并顺带给出规范 wire 格式下的序列化尺寸（尺寸合规检查的输入）。
package txadapter

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/types"

	"zklense/internal/logic/core"
	ztypes "zklense/internal/types"
)

// AdaptedSizes 保存交易与 message 的规范序列化字节数。
type AdaptedSizes struct {
	MessageSize     int
	TransactionSize int
}

// Adapt 构造 core.TransactionView 并测量序列化尺寸。
// 账户列表逐个校验为 32 字节；指令账户索引必须落在 u8 范围内。
// 适配失败说明交易结构已损坏，直接报错，不降级。
func Adapt(tx *types.Transaction) (*core.TransactionView, AdaptedSizes, error) {
	msg := tx.Message

	accountKeys := make([]ztypes.Pubkey, len(msg.Accounts))
	for i, acc := range msg.Accounts {
		key, err := ztypes.PubkeyFromBytes(acc.Bytes())
		if err != nil {
			return nil, AdaptedSizes{}, fmt.Errorf("invalid account key at index %d: %w", i, err)
		}
		accountKeys[i] = key
	}

	instructions := make([]core.InstructionRecord, len(msg.Instructions))
	for i, ix := range msg.Instructions {
		accounts := make([]uint8, len(ix.Accounts))
		for j, idx := range ix.Accounts {
			if idx < 0 || idx > 255 {
				return nil, AdaptedSizes{}, fmt.Errorf(
					"instruction %d account index %d out of u8 range", i, idx)
			}
			accounts[j] = uint8(idx)
		}
		instructions[i] = core.InstructionRecord{
			ProgramIDIndex: ix.ProgramIDIndex,
			Accounts:       accounts,
			Data:           ix.Data,
		}
	}

	view := &core.TransactionView{
		Instructions: instructions,
		AccountKeys:  accountKeys,
		Header: core.MessageHeader{
			NumRequiredSignatures:       msg.Header.NumRequireSignatures,
			NumReadonlySignedAccounts:   msg.Header.NumReadonlySignedAccounts,
			NumReadonlyUnsignedAccounts: msg.Header.NumReadonlyUnsignedAccounts,
		},
		SignatureCount: len(tx.Signatures),
	}

	msgBytes, err := msg.Serialize()
	if err != nil {
		return nil, AdaptedSizes{}, fmt.Errorf("serialize message: %w", err)
	}
	txBytes, err := tx.Serialize()
	if err != nil {
		return nil, AdaptedSizes{}, fmt.Errorf("serialize transaction: %w", err)
	}

	return view, AdaptedSizes{
		MessageSize:     len(msgBytes),
		TransactionSize: len(txBytes),
	}, nil
}
