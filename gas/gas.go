package gas

import (
	"github.com/ethereum/go-ethereum/params"
)

// Gas is an amount of metered computational cost, totally ordered.
type Gas uint64

// MaxGas is the "no declared limit" sentinel, treated as unbounded.
const MaxGas Gas = ^Gas(0)

// NativeTokenTransferGas is the protocol-fixed cost of a pure native
// token transfer.
const NativeTokenTransferGas = Gas(params.TxGas)

// ContractCreationGas is the protocol-fixed base cost of a contract
// creation transaction.
const ContractCreationGas = Gas(params.TxGasContractCreation)

func (g Gas) Uint64() uint64 {
	return uint64(g)
}

// Min returns the smaller of a and b.
func Min(a, b Gas) Gas {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Gas) Gas {
	if a > b {
		return a
	}
	return b
}
