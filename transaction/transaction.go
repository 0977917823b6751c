package transaction

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/TopiaNetwork/gastimator/gas"
)

// Transaction is the immutable input of one estimation request.
//
// A nil To denotes the contract-creation sentinel. Value counts native
// tokens transferred to the recipient, or the endowment of the created
// account. Input is the call data for a call, or the init code for a
// creation, and is empty for a pure transfer.
type Transaction struct {
	Nonce    *uint64         `json:"nonce,omitempty"`
	From     *common.Address `json:"from,omitempty"`
	To       *common.Address `json:"to,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	GasLimit *gas.Gas        `json:"gasLimit,omitempty"`
	Input    hexutil.Bytes   `json:"input,omitempty"`
}

type txAlias struct {
	Nonce    *uint64         `json:"nonce"`
	From     *common.Address `json:"from"`
	To       *common.Address `json:"to"`
	Value    *hexutil.Big    `json:"value"`
	GasLimit *gas.Gas        `json:"gasLimit"`
	Input    *hexutil.Bytes  `json:"input"`
	Data     *hexutil.Bytes  `json:"data"`
}

// UnmarshalJSON accepts "data" as an alias of "input", preferring "input"
// when both are present.
func (tx *Transaction) UnmarshalJSON(raw []byte) error {
	var alias txAlias
	if err := json.Unmarshal(raw, &alias); err != nil {
		return err
	}
	tx.Nonce = alias.Nonce
	tx.From = alias.From
	tx.To = alias.To
	tx.Value = alias.Value
	tx.GasLimit = alias.GasLimit
	switch {
	case alias.Input != nil:
		tx.Input = *alias.Input
	case alias.Data != nil:
		tx.Input = *alias.Data
	default:
		tx.Input = nil
	}
	return nil
}

// IsCacheable reports whether the transaction may be read from or written
// to the gas usage cache. Without a nonce and a sender there is no way to
// tell two submissions of the "same" transaction apart.
func (tx *Transaction) IsCacheable() bool {
	return tx.Nonce != nil && tx.From != nil
}

// GasLimitElseMax returns the declared gas limit, or the unbounded
// sentinel when none was declared.
func (tx *Transaction) GasLimitElseMax() gas.Gas {
	if tx.GasLimit == nil {
		return gas.MaxGas
	}
	return *tx.GasLimit
}

func (tx *Transaction) valueIsZero() bool {
	return tx.Value == nil || tx.Value.ToInt().Sign() == 0
}

// ValueOrZero returns the native value amount, never nil.
func (tx *Transaction) ValueOrZero() *big.Int {
	if tx.Value == nil {
		return new(big.Int)
	}
	return tx.Value.ToInt()
}

// Kind classifies the transaction by its shape. Pure, total, no side
// effects.
func (tx *Transaction) Kind() gas.TransactionKind {
	hasRecipient := tx.To != nil
	valueIsZero := tx.valueIsZero()
	inputIsEmpty := len(tx.Input) == 0

	switch {
	case hasRecipient && !valueIsZero && inputIsEmpty:
		return gas.NativeTokenTransferKind()
	case !hasRecipient && !inputIsEmpty:
		return gas.ContractCreationKind()
	case hasRecipient:
		return gas.ContractCallKind(!valueIsZero)
	default:
		return gas.UnknownKind()
	}
}

// Identity is the full structural value of the transaction rendered as a
// string, used for exact-match memoization. It is injective over all
// fields, not a derived fingerprint.
func (tx *Transaction) Identity() string {
	var b strings.Builder
	if tx.Nonce != nil {
		fmt.Fprintf(&b, "n=%d|", *tx.Nonce)
	} else {
		b.WriteString("n=|")
	}
	if tx.From != nil {
		fmt.Fprintf(&b, "f=%s|", tx.From.Hex())
	} else {
		b.WriteString("f=|")
	}
	if tx.To != nil {
		fmt.Fprintf(&b, "t=%s|", tx.To.Hex())
	} else {
		b.WriteString("t=create|")
	}
	fmt.Fprintf(&b, "v=%s|", tx.ValueOrZero().String())
	if tx.GasLimit != nil {
		fmt.Fprintf(&b, "g=%d|", *tx.GasLimit)
	} else {
		b.WriteString("g=|")
	}
	fmt.Fprintf(&b, "i=%x", []byte(tx.Input))
	return b.String()
}

func (tx *Transaction) String() string {
	return "Transaction{" + tx.Identity() + "}"
}
