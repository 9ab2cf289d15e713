package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zklense/internal/consts"
	"zklense/internal/logic/core"
	"zklense/internal/logic/txbuilder"
)

// fakeRPCServer 按 JSON-RPC method 返回预置的 result 原文
func fakeRPCServer(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			Id     uint64 `json:"id"`
			Method string `json:"method"`
		}
		require.NoError(t, json.Unmarshal(body, &req))

		result, ok := results[req.Method]
		require.True(t, ok, "unexpected rpc method %s", req.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","result":%s,"id":%d}`, result, req.Id)
	}))
}

func testTransaction(t *testing.T) types.Transaction {
	t.Helper()
	artifact := &core.ProofArtifact{Proof: []byte{1, 2}, Witness: []byte{3}}
	tx, err := txbuilder.BuildSimulationTransaction(
		consts.DummyFeePayerStr, artifact, "11111111111111111111111111111111")
	require.NoError(t, err)
	return tx
}

func TestSimulator_LatestBlockhash(t *testing.T) {
	srv := fakeRPCServer(t, map[string]string{
		"getLatestBlockhash": `{"context":{"slot":100},"value":{"blockhash":"EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N","lastValidBlockHeight":200}}`,
	})
	defer srv.Close()

	got, err := NewSimulator(srv.URL).LatestBlockhash(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N", got)
}

// 成功模拟：units / logs / returnData 逐字段映射到 SimulationOutcome
func TestSimulator_Simulate(t *testing.T) {
	srv := fakeRPCServer(t, map[string]string{
		"simulateTransaction": fmt.Sprintf(
			`{"context":{"slot":123},"value":{"err":null,"logs":["Program log: verified"],"accounts":null,"unitsConsumed":150000,"returnData":{"programId":"%s","data":["aGVsbG8=","base64"]}}}`,
			consts.ComputeBudgetProgramIdStr),
	})
	defer srv.Close()

	outcome, err := NewSimulator(srv.URL).Simulate(context.Background(), testTransaction(t))
	require.NoError(t, err)

	assert.False(t, outcome.Failed())
	assert.Equal(t, uint64(150_000), outcome.UnitsConsumed)
	assert.Equal(t, []string{"Program log: verified"}, outcome.Logs)
	assert.Equal(t, []byte("hello"), outcome.ReturnData)
}

// 失败模拟是合法结果：err 原样透传，units 缺省为 0
func TestSimulator_Simulate_Failed(t *testing.T) {
	srv := fakeRPCServer(t, map[string]string{
		"simulateTransaction": `{"context":{"slot":123},"value":{"err":{"InstructionError":[1,"InvalidAccountData"]},"logs":[],"accounts":null,"unitsConsumed":null}}`,
	})
	defer srv.Close()

	outcome, err := NewSimulator(srv.URL).Simulate(context.Background(), testTransaction(t))
	require.NoError(t, err)

	assert.True(t, outcome.Failed())
	assert.Contains(t, fmt.Sprintf("%+v", outcome.Err), "InstructionError")
	assert.Equal(t, uint64(0), outcome.UnitsConsumed)
	assert.Nil(t, outcome.ReturnData)
}

// 采样截断：接口按 slot 升序返回，结果取最近 50 条并倒序
func TestSimulator_RecentPrioritizationFees(t *testing.T) {
	items := make([]string, 60)
	for i := range items {
		items[i] = fmt.Sprintf(`{"slot":%d,"prioritizationFee":%d}`, i+1, i)
	}
	srv := fakeRPCServer(t, map[string]string{
		"getRecentPrioritizationFees": "[" + strings.Join(items, ",") + "]",
	})
	defer srv.Close()

	fees := NewSimulator(srv.URL).RecentPrioritizationFees(context.Background())
	require.Len(t, fees, 50)
	assert.Equal(t, uint64(60), fees[0].Slot)
	assert.Equal(t, uint64(59), fees[0].PrioritizationFee)
	assert.Equal(t, uint64(11), fees[49].Slot)
}

// best-effort：查询失败只返回空列表，不报错
func TestSimulator_RecentPrioritizationFees_ErrorTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fees := NewSimulator(srv.URL).RecentPrioritizationFees(context.Background())
	assert.Empty(t, fees)
}
