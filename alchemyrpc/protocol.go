package alchemyrpc

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/TopiaNetwork/gastimator/transaction"
)

type rpcRequest struct {
	Jsonrpc string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

type rpcResponse struct {
	Result string `json:"result"`
}

func (r *rpcResponse) resultStrip0x() string {
	return strings.TrimPrefix(r.Result, "0x")
}

// estimateGasInput is the single parameter object of eth_estimateGas.
// Every field is hex encoded with a 0x prefix and present only when the
// source transaction carries it.
type estimateGasInput struct {
	To       *common.Address `json:"to,omitempty"`
	Gas      *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice *hexutil.Big    `json:"gasPrice,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	Data     *hexutil.Bytes  `json:"data,omitempty"`
}

func newEstimateGasInput(tx *transaction.Transaction) estimateGasInput {
	input := estimateGasInput{
		To:    tx.To,
		Value: tx.Value,
	}
	if tx.GasLimit != nil {
		limit := hexutil.Uint64(tx.GasLimit.Uint64())
		input.Gas = &limit
	}
	if len(tx.Input) > 0 {
		data := tx.Input
		input.Data = &data
	}
	return input
}
