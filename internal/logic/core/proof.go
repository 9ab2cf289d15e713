package core

// ProofArtifact 保存一次证明产物：proof 与 public witness 的原始字节。
// 读入后不可变；大小一律通过方法派生，不另存字段，避免失配。
type ProofArtifact struct {
	Proof   []byte
	Witness []byte
}

func (a *ProofArtifact) ProofSize() int {
	return len(a.Proof)
}

func (a *ProofArtifact) WitnessSize() int {
	return len(a.Witness)
}

// TotalSize = ProofSize + WitnessSize，对零长度输入同样成立。
func (a *ProofArtifact) TotalSize() int {
	return len(a.Proof) + len(a.Witness)
}

// InstructionData 生成链上指令 payload：proof 与 witness 的直接拼接。
func (a *ProofArtifact) InstructionData() []byte {
	data := make([]byte, 0, a.TotalSize())
	data = append(data, a.Proof...)
	data = append(data, a.Witness...)
	return data
}
