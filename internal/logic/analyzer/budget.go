package analyzer

import (
	"encoding/binary"

	"zklense/internal/consts"
	"zklense/internal/logic/core"
)

// ComputeBudgetOverrides 是从交易指令中解码出的生效预算参数。
// 一旦出现覆写指令，后续计算只使用覆写值，不与默认值合并。
type ComputeBudgetOverrides struct {
	CULimit              uint32
	CUPriceMicroLamports uint64
}

// DefaultOverrides 未发现预算指令时的缺省值：(200_000 CU, 0 microlamports)。
func DefaultOverrides() ComputeBudgetOverrides {
	return ComputeBudgetOverrides{
		CULimit:              consts.DefaultComputeUnits,
		CUPriceMicroLamports: 0,
	}
}

// DecodeComputeBudget 顺序扫描交易指令，提取 ComputeBudget 程序的
// setComputeUnitLimit / setComputeUnitPrice 覆写值。
//
// 规则：
//   - program id 必须经 AccountKeys[ProgramIDIndex] 间接解析，索引越界即报错；
//   - data[0] == 2 且 len(data) >= 8：data[4:8] LE u32 为新 CU 限额（data[1:4] 保留不用）；
//   - data[0] == 3 且 len(data) >= 12：data[4:12] LE u64 为新 CU 单价；
//   - 其他判别符或长度不足：忽略，不报错——同程序的畸形/无关指令不得中断分析；
//   - 重复指令后写覆盖先写，与链上对重复预算指令的实际生效顺序一致。
func DecodeComputeBudget(tx *core.TransactionView) (ComputeBudgetOverrides, error) {
	out := DefaultOverrides()

	for _, ix := range tx.Instructions {
		programID, err := tx.ResolveProgramID(ix)
		if err != nil {
			return ComputeBudgetOverrides{}, err
		}
		if !programID.Equals(consts.ComputeBudgetProgram) {
			continue
		}

		data := ix.Data
		if len(data) == 0 {
			continue
		}
		switch data[0] {
		case consts.ComputeBudgetIxSetUnitLimit:
			if len(data) >= 8 {
				out.CULimit = binary.LittleEndian.Uint32(data[4:8])
			}
		case consts.ComputeBudgetIxSetUnitPrice:
			if len(data) >= 12 {
				out.CUPriceMicroLamports = binary.LittleEndian.Uint64(data[4:12])
			}
		}
	}
	return out, nil
}
