package chain

import (
	"strings"
	"testing"

	"github.com/itering/scale.go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAs(typeString string, raw []byte) interface{} {
	decoder := types.ScaleDecoder{}
	decoder.Init(types.ScaleBytes{Data: raw}, nil)
	return decoder.ProcessAndUpdateData(typeString)
}

func TestRegisterTypesDecodesBytesAsHex(t *testing.T) {
	require.NoError(t, RegisterTypes(""))

	text := []byte{0x10, '1', '2', '3', '4'}
	assert.Equal(t, "0x31323334", decodeAs("Bytes", text))
	assert.Equal(t, "0x31323334", decodeAs("Vec<u8>", text))

	account := []byte(strings.Repeat("a", 32))
	for _, typeString := range []string{"AccountId", "LookupSource", "[u8; 32]"} {
		assert.Equal(t, "0x"+strings.Repeat("61", 32), decodeAs(typeString, account), typeString)
	}
}

func TestRegisterTypesFileErrors(t *testing.T) {
	assert.Error(t, RegisterTypes("testdata/missing.json"))
}
