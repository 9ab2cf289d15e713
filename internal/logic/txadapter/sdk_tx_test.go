package txadapter

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zklense/internal/consts"
)

func buildTestTransaction(t *testing.T) types.Transaction {
	t.Helper()

	feePayer := common.PublicKeyFromString(consts.DummyFeePayerStr)
	msg := types.NewMessage(types.NewMessageParam{
		FeePayer:        feePayer,
		RecentBlockhash: "11111111111111111111111111111111",
		Instructions: []types.Instruction{
			{
				ProgramID: common.PublicKeyFromString(consts.ComputeBudgetProgramIdStr),
				Accounts:  []types.AccountMeta{},
				Data:      []byte{2, 0, 0, 0, 0x40, 0x0D, 0x03, 0x00},
			},
		},
	})

	sigs := make([]types.Signature, msg.Header.NumRequireSignatures)
	for i := range sigs {
		sigs[i] = make([]byte, 64)
	}
	return types.Transaction{Message: msg, Signatures: sigs}
}

func TestAdapt(t *testing.T) {
	tx := buildTestTransaction(t)

	view, sizes, err := Adapt(&tx)
	require.NoError(t, err)

	// fee payer 必定排在账户表首位
	assert.Equal(t, consts.DummyFeePayerStr, view.AccountKeys[0].String())
	assert.Equal(t, uint8(1), view.Header.NumRequiredSignatures)
	assert.Equal(t, 1, view.SignatureCount)

	require.Len(t, view.Instructions, 1)
	ix := view.Instructions[0]
	assert.Equal(t, []byte{2, 0, 0, 0, 0x40, 0x0D, 0x03, 0x00}, ix.Data)

	pid, err := view.ResolveProgramID(ix)
	require.NoError(t, err)
	assert.Equal(t, consts.ComputeBudgetProgramIdStr, pid.String())

	// wire 格式：tx = shortvec(签名数) + 签名 + message
	assert.Equal(t, sizes.MessageSize+1+64, sizes.TransactionSize)
	assert.LessOrEqual(t, sizes.TransactionSize, consts.MaxTransactionSize)
}

func TestAdapt_InstructionDataShared(t *testing.T) {
	tx := buildTestTransaction(t)

	view, _, err := Adapt(&tx)
	require.NoError(t, err)

	// 视图不拷贝指令数据，账户索引落在消息账户表内
	for _, ix := range view.Instructions {
		assert.Less(t, ix.ProgramIDIndex, len(view.AccountKeys))
	}
}
