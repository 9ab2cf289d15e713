package analyzer

import (
	"fmt"

	"zklense/internal/consts"
	"zklense/internal/logic/core"
	"zklense/internal/types"
)

// DiagnosticReport 是分析管线唯一对外产物。分组与字段名是对外契约
// （viewer 等下游按 key 读取），与渲染目标无关；同样输入必须产出
// 逐字节一致的报告——结构里不允许出现时间戳或随机量。
type DiagnosticReport struct {
	ComputeUnits      ComputeUnitsSection     `json:"compute_units"`
	Proof             ProofSection            `json:"proof"`
	Cost              CostSection             `json:"cost"`
	TransactionStatus StatusSection           `json:"transaction_status"`
	TransactionSize   SizeSection             `json:"transaction_size"`
	TransactionLogs   LogsSection             `json:"transaction_logs"`
	Accounts          AccountsSection         `json:"accounts"`
	FeeRecommendation CostSection             `json:"fee_recommendation"`
	RecentFees        []core.PrioritizationFee `json:"recent_prioritization_fees"`
	ProgramID         string                  `json:"program_id"`
	Environment       EnvironmentSection      `json:"environment"`
}

type ComputeUnitsSection struct {
	TotalComputeUnitsConsumed uint64 `json:"total_compute_units_consumed"`
	TotalCU                   uint64 `json:"total_cu"`
	ComputeBudget             uint64 `json:"compute_budget"`
	MaxComputeUnits           uint32 `json:"max_compute_units"`
	PercentageOfBudgetUsed    string `json:"percentage_of_compute_budget_used"`
	Warning                   string `json:"warning,omitempty"`
	Suggestion                string `json:"suggestion"`
}

type ProofSection struct {
	ProofSize             int    `json:"proof_size"`
	WitnessSize           int    `json:"witness_size"`
	TotalProofWitnessSize int    `json:"total_proof_witness_size"`
	CUPerProofSize        string `json:"cu_per_proof_size"`
}

type CostSection struct {
	CostInSOL            string `json:"cost_in_sol"`
	CostInLamports       uint64 `json:"cost_in_lamports"`
	BaseFeePerSignature  uint64 `json:"base_fee_per_signature"`
	NumSignatures        uint64 `json:"num_signatures"`
	BaseFee              uint64 `json:"base_fee"`
	CULimit              uint32 `json:"cu_limit"`
	CUPriceMicroLamports uint64 `json:"cu_price_microlamports"`
	PrioritizationFee    uint64 `json:"prioritization_fee"`
	PriorityFee          uint64 `json:"priority_fee"`
	TotalFee             uint64 `json:"total_fee"`
	Priority             string `json:"priority"`
	Suggestion           string `json:"suggestion"`
}

type StatusSection struct {
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion"`
}

type SizeSection struct {
	TransactionSize       int    `json:"transaction_size"`
	MessageSize           int    `json:"message_size"`
	ProofSize             int    `json:"proof_size"`
	WitnessSize           int    `json:"witness_size"`
	TotalProofWitnessSize int    `json:"total_proof_witness_size"`
	MaxMessageSize        int    `json:"max_message_size"`
	MessageWithinSize     bool   `json:"message_within_size"`
	Message               string `json:"message"`
	Suggestion            string `json:"suggestion"`
}

type LogsSection struct {
	Logs     []string `json:"logs"`
	LogCount int      `json:"log_count"`
}

type AccountsSection struct {
	TotalAccounts            int `json:"total_accounts"`
	WritableSignedAccounts   int `json:"writable_signed_accounts"`
	WritableUnsignedAccounts int `json:"writable_unsigned_accounts"`
	TotalWritableAccounts    int `json:"total_writable_accounts"`
	ReadonlySignedAccounts   int `json:"readonly_signed_accounts"`
	ReadonlyUnsignedAccounts int `json:"readonly_unsigned_accounts"`
}

type EnvironmentSection struct {
	Network string `json:"network"`
	RPCURL  string `json:"rpc_url"`
}

// AssembleParams 汇集装配报告所需的全部已解析输入。
// 装配阶段不做网络与文件 I/O，也不重算 4.1–4.3 已得出的值。
type AssembleParams struct {
	ProofSize   int
	WitnessSize int
	Overrides   ComputeBudgetOverrides
	Cost        CostBreakdown
	Compliance  ComplianceReport
	Accounts    AccountStats
	Simulation  *core.SimulationOutcome
	ProgramID   types.Pubkey
	RecentFees  []core.PrioritizationFee
	Network     string
	RPCURL      string
}

// Assemble 将各组件输出合并为最终诊断报告。
func Assemble(p AssembleParams) *DiagnosticReport {
	sim := p.Simulation

	status := "Success"
	statusSuggestion := "Transaction simulation successful"
	errText := ""
	if sim.Failed() {
		status = "Failed"
		statusSuggestion = "Review transaction error and fix issues"
		// 不透明错误原样转述，不解释 program 级错误语义
		errText = fmt.Sprintf("%+v", sim.Err)
	}

	totalProofWitness := p.ProofSize + p.WitnessSize
	cuPerProofSize := 0.0
	if totalProofWitness > 0 {
		cuPerProofSize = float64(sim.UnitsConsumed) / float64(totalProofWitness)
	}

	feeSuggestion := "Priority fee is set"
	if p.Cost.PriorityFee == 0 {
		feeSuggestion = "Consider adding priority fee for faster confirmation"
	}

	sizeMessage := fmt.Sprintf("Success: Message size (%d) is within limits (%d)",
		p.Compliance.MessageSize, consts.MaxTransactionSize)
	sizeSuggestion := fmt.Sprintf("Transaction size (%d) is within limits", p.Compliance.MessageSize)
	if !p.Compliance.WithinSizeLimit {
		sizeMessage = fmt.Sprintf("Fail: Message size (%d) exceeds maximum (%d)",
			p.Compliance.MessageSize, consts.MaxTransactionSize)
		sizeSuggestion = fmt.Sprintf("Transaction size (%d) exceeds maximum (%d)",
			p.Compliance.MessageSize, consts.MaxTransactionSize)
	}

	logs := sim.Logs
	if logs == nil {
		logs = []string{}
	}
	recentFees := p.RecentFees
	if recentFees == nil {
		recentFees = []core.PrioritizationFee{}
	}

	cost := CostSection{
		CostInSOL:            FormatSOL(p.Cost.TotalFee),
		CostInLamports:       p.Cost.TotalFee,
		BaseFeePerSignature:  consts.LamportsPerSignature,
		NumSignatures:        p.Cost.NumSignatures,
		BaseFee:              p.Cost.BaseFee,
		CULimit:              p.Overrides.CULimit,
		CUPriceMicroLamports: p.Overrides.CUPriceMicroLamports,
		PrioritizationFee:    p.Cost.PriorityFee,
		PriorityFee:          p.Cost.PriorityFee,
		TotalFee:             p.Cost.TotalFee,
		Priority:             fmt.Sprintf("%.9f", p.Cost.Priority),
		Suggestion:           feeSuggestion,
	}

	return &DiagnosticReport{
		ComputeUnits: ComputeUnitsSection{
			TotalComputeUnitsConsumed: sim.UnitsConsumed,
			TotalCU:                   sim.UnitsConsumed,
			ComputeBudget:             uint64(p.Overrides.CULimit),
			MaxComputeUnits:           consts.MaxComputeUnits,
			PercentageOfBudgetUsed:    fmt.Sprintf("%.2f%%", p.Compliance.ComputeUsagePercent),
			Warning:                   p.Compliance.CULimitWarning,
			Suggestion:                p.Compliance.Suggestion,
		},
		Proof: ProofSection{
			ProofSize:             p.ProofSize,
			WitnessSize:           p.WitnessSize,
			TotalProofWitnessSize: totalProofWitness,
			CUPerProofSize:        fmt.Sprintf("%.4f", cuPerProofSize),
		},
		Cost: cost,
		TransactionStatus: StatusSection{
			Status:     status,
			Error:      errText,
			Suggestion: statusSuggestion,
		},
		TransactionSize: SizeSection{
			TransactionSize:       p.Compliance.TransactionSize,
			MessageSize:           p.Compliance.MessageSize,
			ProofSize:             p.ProofSize,
			WitnessSize:           p.WitnessSize,
			TotalProofWitnessSize: totalProofWitness,
			MaxMessageSize:        consts.MaxTransactionSize,
			MessageWithinSize:     p.Compliance.WithinSizeLimit,
			Message:               sizeMessage,
			Suggestion:            sizeSuggestion,
		},
		TransactionLogs: LogsSection{
			Logs:     logs,
			LogCount: len(logs),
		},
		Accounts: AccountsSection{
			TotalAccounts:            p.Accounts.TotalAccounts,
			WritableSignedAccounts:   p.Accounts.WritableSigned,
			WritableUnsignedAccounts: p.Accounts.WritableUnsigned,
			TotalWritableAccounts:    p.Accounts.TotalWritable,
			ReadonlySignedAccounts:   p.Accounts.ReadonlySignedAccounts,
			ReadonlyUnsignedAccounts: p.Accounts.ReadonlyUnsigned,
		},
		FeeRecommendation: cost,
		RecentFees:        recentFees,
		ProgramID:         p.ProgramID.String(),
		Environment: EnvironmentSection{
			Network: p.Network,
			RPCURL:  p.RPCURL,
		},
	}
}
