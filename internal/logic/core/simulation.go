package core

// SimulationOutcome 是网络模拟器（外部协作方）返回的执行结果。
// Err 为不透明错误值：本侧只负责原样转述，不解释 program 级错误码。
type SimulationOutcome struct {
	UnitsConsumed uint64
	Logs          []string
	Err           any
	ReturnData    []byte
}

// Failed 判定本次模拟是否执行失败。失败也是合法的可报告结果，不是异常。
func (s *SimulationOutcome) Failed() bool {
	return s.Err != nil
}

// PrioritizationFee 近期链上优先费采样点，由 RPC 协作方解析后传入。
type PrioritizationFee struct {
	Slot              uint64 `json:"slot"`
	PrioritizationFee uint64 `json:"prioritization_fee"`
}
