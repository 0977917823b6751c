package alchemyrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TopiaNetwork/gastimator/gas"
	tplog "github.com/TopiaNetwork/gastimator/log"
	tplogcmm "github.com/TopiaNetwork/gastimator/log/common"
	"github.com/TopiaNetwork/gastimator/transaction"
)

func testLogger(t *testing.T) tplog.Logger {
	t.Helper()
	log, err := tplog.CreateMainLogger(tplogcmm.ErrorLevel, tplog.TextFormat, tplog.StdErrOutput, "")
	require.NoError(t, err)
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithEndpoint(server.URL, tplogcmm.ErrorLevel, testLogger(t))
}

func TestEstimateGasParsesHexResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x5208"}`))
	})

	estimated, err := client.EstimateGas(context.Background(), transaction.SampleContractCall())
	require.NoError(t, err)
	assert.Equal(t, gas.Gas(21000), estimated)
}

func TestEstimateGasAcceptsUnprefixedResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"5208"}`))
	})

	estimated, err := client.EstimateGas(context.Background(), transaction.SampleContractCall())
	require.NoError(t, err)
	assert.Equal(t, gas.Gas(21000), estimated)
}

func TestEstimateGasAllowanceMarker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Not even valid JSON; the marker check happens on the raw body.
		w.Write([]byte(`err: gas required exceeds allowance (50000)`))
	})

	tx := transaction.SampleContractCall()
	limit := gas.Gas(50000)
	tx.GasLimit = &limit

	_, err := client.EstimateGas(context.Background(), tx)
	gel, ok := gas.AsGasExceedsLimit(err)
	require.True(t, ok, "expected a gas-exceeds-limit failure, got %v", err)
	assert.Nil(t, gel.EstimatedCost, "the upstream does not disclose the cost")
	assert.Equal(t, gas.Gas(50000), gel.GasLimit, "the declared limit of the transaction is reported")
}

func TestEstimateGasAllowanceMarkerWithoutDeclaredLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`gas required exceeds allowance`))
	})

	_, err := client.EstimateGas(context.Background(), transaction.SampleContractCall())
	gel, ok := gas.AsGasExceedsLimit(err)
	require.True(t, ok)
	assert.Equal(t, gas.MaxGas, gel.GasLimit)
}

func TestEstimateGasMalformedResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"zz"}`))
	})

	_, err := client.EstimateGas(context.Background(), transaction.SampleContractCall())
	assert.Error(t, err)
}

func TestRequestEnvelope(t *testing.T) {
	var requests []rpcRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x5208"}`))
	})

	_, err := client.EstimateGas(context.Background(), transaction.SampleContractCall())
	require.NoError(t, err)
	_, err = client.EstimateGas(context.Background(), transaction.SampleContractCall())
	require.NoError(t, err)

	require.Len(t, requests, 2)
	assert.Equal(t, "2.0", requests[0].Jsonrpc)
	assert.Equal(t, "eth_estimateGas", requests[0].Method)
	assert.Len(t, requests[0].Params, 1)
	assert.Equal(t, uint64(1), requests[0].ID)
	assert.Equal(t, uint64(2), requests[1].ID, "request ids step by one")
}

func TestEstimateGasInputFieldPresence(t *testing.T) {
	tx := transaction.SampleContractCall()
	raw, err := json.Marshal(newEstimateGasInput(tx))
	require.NoError(t, err)
	assert.JSONEq(t, `{"to":"0x2e575fe17124f7ef2d22bbfb33cf3dbfc3f002d6","data":"0xd46e8dd6"}`, string(raw))

	raw, err = json.Marshal(newEstimateGasInput(transaction.SampleNativeTokenTransferGasLimit(21000)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"to":"0x2e575fe17124f7ef2d22bbfb33cf3dbfc3f002d6","value":"0x3b9aca00","gas":"0x5208"}`, string(raw))

	raw, err = json.Marshal(newEstimateGasInput(&transaction.Transaction{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestAlchemyEndpointComposition(t *testing.T) {
	client := NewClient("my-key", tplogcmm.ErrorLevel, testLogger(t))
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/my-key", client.endpoint)
}

func TestEstimateGasHonorsContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.EstimateGas(ctx, transaction.SampleContractCall())
	assert.Error(t, err)
}
