package gas

// KindType names the semantic shape of a transaction.
type KindType string

const (
	KindNativeTokenTransfer KindType = "native_token_transfer"
	KindContractCreation    KindType = "contract_creation"
	KindContractCall        KindType = "contract_call"
	KindUnknown             KindType = "unknown"
)

// TransactionKind is the classification of a transaction, derived from its
// fields and never stored. WithNativeTokenTransfer is only meaningful for
// KindContractCall.
type TransactionKind struct {
	Type                    KindType `json:"type"`
	WithNativeTokenTransfer bool     `json:"with_native_token_transfer,omitempty"`
}

func NativeTokenTransferKind() TransactionKind {
	return TransactionKind{Type: KindNativeTokenTransfer}
}

func ContractCreationKind() TransactionKind {
	return TransactionKind{Type: KindContractCreation}
}

func ContractCallKind(withNativeTokenTransfer bool) TransactionKind {
	return TransactionKind{Type: KindContractCall, WithNativeTokenTransfer: withNativeTokenTransfer}
}

func UnknownKind() TransactionKind {
	return TransactionKind{Type: KindUnknown}
}

func (k TransactionKind) IsNativeTokenTransfer() bool {
	return k.Type == KindNativeTokenTransfer
}
