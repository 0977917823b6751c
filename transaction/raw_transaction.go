package transaction

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// RawTransaction carries the RLP wire form of a transaction, as accepted
// by the /rlp endpoint.
type RawTransaction struct {
	Rlp []byte
}

type rawTxAlias struct {
	Rlp string `json:"rlp"`
}

// UnmarshalJSON decodes {"rlp": "<hex>"}, with or without a 0x prefix.
func (r *RawTransaction) UnmarshalJSON(raw []byte) error {
	var alias rawTxAlias
	if err := json.Unmarshal(raw, &alias); err != nil {
		return err
	}
	s := strings.TrimPrefix(alias.Rlp, "0x")
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return &StringNotHexError{BadValue: alias.Rlp}
	}
	r.Rlp = decoded
	return nil
}

func (r RawTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(rawTxAlias{Rlp: "0x" + hex.EncodeToString(r.Rlp)})
}

func (r RawTransaction) String() string {
	return hex.EncodeToString(r.Rlp)
}

// StringNotHexError reports a /rlp payload that is not valid hex.
type StringNotHexError struct {
	BadValue string
}

func (e *StringNotHexError) Error() string {
	return fmt.Sprintf("string not hex: %s", e.BadValue)
}
