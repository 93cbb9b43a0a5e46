package chain

import (
	"os"

	"github.com/itering/scale.go/source"
	"github.com/itering/scale.go/types"
	"github.com/pkg/errors"
)

// byteTypes are decoded to 0x hex, never to text
var byteTypes = map[string]source.TypeStruct{
	"Bytes":        {Type: "string", TypeString: "HexBytes"},
	"Vec<u8>":      {Type: "string", TypeString: "HexBytes"},
	"AccountId":    {Type: "string", TypeString: "H256"},
	"AccountId32":  {Type: "string", TypeString: "H256"},
	"LookupSource": {Type: "string", TypeString: "H256"},
	"[u8; 32]":     {Type: "string", TypeString: "H256"},
}

// RegisterTypes registers the runtime base types and the custom types of a
// polkadot.js style types json file. An empty path registers the base types only.
func RegisterTypes(typesFile string) error {
	types.RuntimeType{}.Reg()
	types.RegCustomTypes(byteTypes)
	if typesFile == "" {
		return nil
	}

	raw, err := os.ReadFile(typesFile)
	if err != nil {
		return errors.Wrap(err, "decoder types file")
	}
	types.RegCustomTypes(source.LoadTypeRegistry(raw))
	return nil
}
