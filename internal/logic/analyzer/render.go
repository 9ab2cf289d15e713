package analyzer

import (
	"fmt"
	"io"
	"strings"
)

// 渲染用状态符号
const (
	markPass = "✓"
	markFail = "✗"
)

// RenderReport 将诊断报告渲染为人读的分组文本。
// 纯投影：所有数值直接取自报告字段，不重算 4.1–4.3 的任何结果。
func RenderReport(w io.Writer, r *DiagnosticReport) {
	// Compute Units
	usageOK := r.ComputeUnits.Suggestion == SuggestionWithinBudget ||
		r.ComputeUnits.Suggestion == SuggestionApproaching
	section(w, "Compute Units")
	treeLineStatus(w, "Consumed", fmt.Sprintf("%s CU", formatNumber(r.ComputeUnits.TotalComputeUnitsConsumed)), true, false)
	treeLineStatus(w, "Budget", fmt.Sprintf("%s CU", formatNumber(r.ComputeUnits.ComputeBudget)), true, false)
	treeLineStatus(w, "Usage", r.ComputeUnits.PercentageOfBudgetUsed, usageOK, true)
	if r.ComputeUnits.Warning != "" {
		fmt.Fprintf(w, "  %s Warning: %s\n", markFail, r.ComputeUnits.Warning)
	}

	// Transaction Status
	section(w, "Transaction Status")
	if r.TransactionStatus.Status == "Success" {
		fmt.Fprintf(w, "  %s Simulation Successful\n", markPass)
	} else {
		fmt.Fprintf(w, "  %s Simulation Failed\n", markFail)
		if r.TransactionStatus.Error != "" {
			fmt.Fprintf(w, "  └─ Error: %s\n", r.TransactionStatus.Error)
		}
	}

	// Transaction Size
	section(w, "Transaction Size")
	treeLineStatus(w, "Message Size", fmt.Sprintf("%d bytes", r.TransactionSize.MessageSize), r.TransactionSize.MessageWithinSize, false)
	treeLineStatus(w, "Max Size", fmt.Sprintf("%d bytes", r.TransactionSize.MaxMessageSize), true, true)

	// Cost Estimate
	section(w, "Cost Estimate")
	treeLine(w, "Signatures", fmt.Sprintf("%d × %d lamports", r.Cost.NumSignatures, r.Cost.BaseFeePerSignature), false)
	treeLine(w, "Base Fee", FormatSOL(r.Cost.BaseFee)+" SOL", false)
	treeLine(w, "Priority Fee", FormatSOL(r.Cost.PriorityFee)+" SOL", false)
	treeLine(w, "Total", r.Cost.CostInSOL+" SOL", true)

	// Proof
	section(w, "Proof")
	treeLine(w, "Proof", fmt.Sprintf("%d bytes", r.Proof.ProofSize), false)
	treeLine(w, "Witness", fmt.Sprintf("%d bytes", r.Proof.WitnessSize), false)
	treeLine(w, "Total", fmt.Sprintf("%d bytes", r.Proof.TotalProofWitnessSize), false)
	treeLine(w, "CU / byte", r.Proof.CUPerProofSize, true)

	fmt.Fprintln(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("─", len([]rune(title))+8))
}

func treeLine(w io.Writer, label, value string, last bool) {
	branch := "├─"
	if last {
		branch = "└─"
	}
	fmt.Fprintf(w, "  %s %-14s %s\n", branch, label, value)
}

func treeLineStatus(w io.Writer, label, value string, ok, last bool) {
	mark := markPass
	if !ok {
		mark = markFail
	}
	branch := "├─"
	if last {
		branch = "└─"
	}
	fmt.Fprintf(w, "  %s %-14s %s %s\n", branch, label, value, mark)
}

// formatNumber 按千位插入逗号（仅用于展示）。
func formatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
