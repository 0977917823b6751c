package transaction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/TopiaNetwork/gastimator/gas"
)

// dynamicFeeTxType is the one-byte tag of the signed, typed wire encoding.
const dynamicFeeTxType = 0x02

// signedDynamicFeeTx is the signed EIP-1559 envelope, following the type
// tag on the wire.
type signedDynamicFeeTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasTipCap  *big.Int
	GasFeeCap  *big.Int
	Gas        uint64
	To         *common.Address `rlp:"nil"`
	Value      *big.Int
	Data       []byte
	AccessList types.AccessList
	V, R, S    *big.Int
}

// unsignedDynamicFeeTx is the bare EIP-1559 body, without type tag or
// signature fields.
type unsignedDynamicFeeTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasTipCap  *big.Int
	GasFeeCap  *big.Int
	Gas        uint64
	To         *common.Address `rlp:"nil"`
	Value      *big.Int
	Data       []byte
	AccessList types.AccessList
}

// DecodeError reports that neither wire encoding could be parsed. The
// underlying parser message is preserved for the caller.
type DecodeError struct {
	Underlying string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to RLP decode transaction: %s", e.Underlying)
}

// Decode parses the RLP wire form of a transaction. The signed, typed
// encoding is attempted first, falling back to the bare, unsigned body.
// The sender is not recovered from the signature, so decoded transactions
// are never cacheable.
func Decode(raw []byte) (*Transaction, error) {
	if tx, err := decodeSigned(raw); err == nil {
		return tx, nil
	}
	return decodeUnsigned(raw)
}

func decodeSigned(raw []byte) (*Transaction, error) {
	buf := raw
	if len(buf) > 0 && buf[0] == dynamicFeeTxType {
		buf = buf[1:]
	}
	var signed signedDynamicFeeTx
	if err := rlp.DecodeBytes(buf, &signed); err != nil {
		return nil, &DecodeError{Underlying: err.Error()}
	}
	return fromWireFields(signed.Nonce, signed.Gas, signed.To, signed.Value, signed.Data), nil
}

func decodeUnsigned(raw []byte) (*Transaction, error) {
	var unsigned unsignedDynamicFeeTx
	if err := rlp.DecodeBytes(raw, &unsigned); err != nil {
		return nil, &DecodeError{Underlying: err.Error()}
	}
	return fromWireFields(unsigned.Nonce, unsigned.Gas, unsigned.To, unsigned.Value, unsigned.Data), nil
}

func fromWireFields(nonce uint64, gasLimit uint64, to *common.Address, value *big.Int, data []byte) *Transaction {
	tx := &Transaction{
		Nonce: &nonce,
		To:    to,
		Input: data,
	}
	if value != nil && value.Sign() != 0 {
		tx.Value = (*hexutil.Big)(value)
	}
	// A zero wire gas limit means the sender declared none.
	if gasLimit != 0 {
		limit := gas.Gas(gasLimit)
		tx.GasLimit = &limit
	}
	return tx
}
