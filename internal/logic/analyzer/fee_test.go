package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	tests := []struct {
		name            string
		overrides       ComputeBudgetOverrides
		signatureCount  int
		wantBase        uint64
		wantPriority    uint64
		wantTotal       uint64
		wantSigs        uint64
	}{
		{
			name:           "默认预算无优先费",
			overrides:      ComputeBudgetOverrides{CULimit: 200_000},
			signatureCount: 1,
			wantBase:       5000, wantPriority: 0, wantTotal: 5000, wantSigs: 1,
		},
		{
			// Scenario C: floor(200000*10000/1e6) = 2000
			name:           "带优先费",
			overrides:      ComputeBudgetOverrides{CULimit: 200_000, CUPriceMicroLamports: 10_000},
			signatureCount: 1,
			wantBase:       5000, wantPriority: 2000, wantTotal: 7000, wantSigs: 1,
		},
		{
			// 零签名仍按一个 fee payer 计费
			name:           "零签名钳到 1",
			overrides:      ComputeBudgetOverrides{CULimit: 200_000},
			signatureCount: 0,
			wantBase:       5000, wantPriority: 0, wantTotal: 5000, wantSigs: 1,
		},
		{
			name:           "多签名",
			overrides:      ComputeBudgetOverrides{CULimit: 200_000},
			signatureCount: 3,
			wantBase:       15000, wantPriority: 0, wantTotal: 15000, wantSigs: 3,
		},
		{
			// 整数截断：999_999 microlamports 归零
			name:           "优先费截断除法",
			overrides:      ComputeBudgetOverrides{CULimit: 1, CUPriceMicroLamports: 999_999},
			signatureCount: 1,
			wantBase:       5000, wantPriority: 0, wantTotal: 5000, wantSigs: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCost(tt.overrides, tt.signatureCount)
			assert.Equal(t, tt.wantBase, got.BaseFee)
			assert.Equal(t, tt.wantPriority, got.PriorityFee)
			assert.Equal(t, tt.wantTotal, got.TotalFee)
			assert.Equal(t, tt.wantSigs, got.NumSignatures)
			// total = base + priority 恒成立
			assert.Equal(t, got.BaseFee+got.PriorityFee, got.TotalFee)
		})
	}
}

func TestCalculateCost_Priority(t *testing.T) {
	// priority = priorityFee / cuLimit
	got := CalculateCost(ComputeBudgetOverrides{CULimit: 200_000, CUPriceMicroLamports: 10_000}, 1)
	assert.InDelta(t, 0.01, got.Priority, 1e-12) // 2000 / 200000

	// cuLimit = 0 时显式取 0
	got = CalculateCost(ComputeBudgetOverrides{CULimit: 0, CUPriceMicroLamports: 10_000}, 1)
	assert.Equal(t, 0.0, got.Priority)
}

func TestFormatSOL(t *testing.T) {
	tests := []struct {
		lamports uint64
		want     string
	}{
		{0, "0.000000000"},
		{5000, "0.000005000"},
		{7000, "0.000007000"},
		{1_000_000_000, "1.000000000"},
		{1_234_567_891, "1.234567891"},
		{2_000_000_001, "2.000000001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSOL(tt.lamports))
	}
}
