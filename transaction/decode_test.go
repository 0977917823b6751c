package transaction

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TopiaNetwork/gastimator/gas"
)

// A signed and an unsigned wire encoding of the same transfer of
// 0x11c37937e08000 wei to 0x2e575f..02d6, nonce 20300, gas limit 21000.
const (
	signedTransferHex   = "02f87201824f4c83142ebf842d441366825208942e575fe17124f7ef2d22bbfb33cf3dbfc3f002d68711c37937e0800080c001a0152c51f0aa71d7698b486a34f8ffc9b61cc7a000c34d48e1cf9361d8973ba518a024216a87cb193b7e502ad9ddbcfc9674c40fe98bd4a7bda575ba03185621cd13"
	unsignedTransferHex = "ef01824f4c83142ebf842d441366825208942e575fe17124f7ef2d22bbfb33cf3dbfc3f002d68711c37937e0800080c0"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	return raw
}

func TestDecodeSignedTransfer(t *testing.T) {
	tx, err := Decode(mustHex(t, signedTransferHex))
	require.NoError(t, err)

	require.NotNil(t, tx.Nonce)
	assert.Equal(t, uint64(20300), *tx.Nonce)
	require.NotNil(t, tx.GasLimit)
	assert.Equal(t, gas.Gas(21000), *tx.GasLimit)
	require.NotNil(t, tx.To)
	assert.Equal(t, common.HexToAddress("0x2e575fe17124f7ef2d22bbfb33cf3dbfc3f002d6"), *tx.To)
	assert.Empty(t, tx.Input)
	assert.Nil(t, tx.From, "the sender is not recovered from the signature")
	assert.False(t, tx.IsCacheable())
	assert.Equal(t, gas.NativeTokenTransferKind(), tx.Kind())
}

func TestDecodeUnsignedEqualsSigned(t *testing.T) {
	signed, err := Decode(mustHex(t, signedTransferHex))
	require.NoError(t, err)
	unsigned, err := Decode(mustHex(t, unsignedTransferHex))
	require.NoError(t, err)

	assert.Equal(t, signed.Identity(), unsigned.Identity())
	assert.Equal(t, signed, unsigned)
}

func TestDecodeZeroWireGasLimitMeansNone(t *testing.T) {
	tx := fromWireFields(7, 0, nil, nil, []byte{0x60})
	assert.Nil(t, tx.GasLimit)
	assert.Equal(t, gas.MaxGas, tx.GasLimitElseMax())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xde, 0xad, 0xbe, 0xef})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "failed to RLP decode transaction")

	_, err = Decode(nil)
	assert.ErrorAs(t, err, &decodeErr)
}
