package transaction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/TopiaNetwork/gastimator/gas"
)

// Sample constructors shared by the test suites of several packages.

func sampleRecipient() *common.Address {
	addr := common.HexToAddress("0x2e575fe17124f7ef2d22bbfb33cf3dbfc3f002d6")
	return &addr
}

func sampleSender() *common.Address {
	addr := common.HexToAddress("0xb60e8dd61c5d32be8058bb8eb970870f07233155")
	return &addr
}

func uint64Ptr(v uint64) *uint64 { return &v }

func gasPtr(g gas.Gas) *gas.Gas { return &g }

// SampleNativeTokenTransfer is a cacheable pure transfer with no declared
// gas limit.
func SampleNativeTokenTransfer() *Transaction {
	return &Transaction{
		Nonce: uint64Ptr(1),
		From:  sampleSender(),
		To:    sampleRecipient(),
		Value: (*hexutil.Big)(big.NewInt(1_000_000_000)),
	}
}

// SampleNativeTokenTransferGasLimit is SampleNativeTokenTransfer with a
// declared gas limit.
func SampleNativeTokenTransferGasLimit(limit gas.Gas) *Transaction {
	tx := SampleNativeTokenTransfer()
	tx.GasLimit = gasPtr(limit)
	return tx
}

// SampleContractCreation is a cacheable creation with a minimal init code.
func SampleContractCreation() *Transaction {
	return &Transaction{
		Nonce: uint64Ptr(1),
		From:  sampleSender(),
		Input: hexutil.Bytes{0x60, 0x00, 0x60, 0x00, 0xf3}, // PUSH1 0 PUSH1 0 RETURN
	}
}

// SampleContractCreationGasLimit is SampleContractCreation with a declared
// gas limit.
func SampleContractCreationGasLimit(limit gas.Gas) *Transaction {
	tx := SampleContractCreation()
	tx.GasLimit = gasPtr(limit)
	return tx
}

// SampleContractCall is a call with input data and no native value.
func SampleContractCall() *Transaction {
	return &Transaction{
		Nonce: uint64Ptr(1),
		From:  sampleSender(),
		To:    sampleRecipient(),
		Input: hexutil.Bytes{0xd4, 0x6e, 0x8d, 0xd6},
	}
}

// SampleUncacheableContractCall is SampleContractCall without nonce and
// sender, so it never touches the cache.
func SampleUncacheableContractCall() *Transaction {
	tx := SampleContractCall()
	tx.Nonce = nil
	tx.From = nil
	return tx
}
