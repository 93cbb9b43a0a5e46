package support

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Bytes is a byte string rendered as 0x prefixed hex. Decoding accepts 0x
// hex and arrays of byte values.
type Bytes []byte

func BytesFromHex(s string) (Bytes, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "bytes: invalid hex %q", s)
	}
	return b, nil
}

func MustBytesFromHex(s string) Bytes {
	b, err := BytesFromHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bytes) Hex() string {
	return "0x" + hex.EncodeToString(b)
}

func (b Bytes) String() string {
	return b.Hex()
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Hex())
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var values []uint8
		if err := json.Unmarshal(data, &values); err != nil {
			return errors.Wrap(err, "bytes")
		}
		*b = values
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "bytes")
	}
	if !strings.HasPrefix(s, "0x") {
		return errors.Errorf("bytes: %q is not 0x prefixed hex", s)
	}
	decoded, err := BytesFromHex(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
