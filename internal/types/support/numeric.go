package support

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrOverflow = errors.New("value does not fit in 128 bits")

// U128 is an unsigned 128 bit integer, used for balances and fixed point
// multipliers. It marshals to a decimal string.
type U128 struct {
	v uint256.Int
}

func NewU128(x uint64) U128 {
	var u U128
	u.v.SetUint64(x)
	return u
}

// ParseU128 parses a decimal or 0x prefixed hex string
func ParseU128(s string) (U128, error) {
	var u U128
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return u, errors.Errorf("u128: invalid hex %q", s)
		}
		return U128FromBig(n)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return u, errors.Wrapf(err, "u128: invalid number %q", s)
	}
	if !d.IsInteger() {
		return u, errors.Errorf("u128: %q is not an integer", s)
	}
	return U128FromBig(d.BigInt())
}

func MustParseU128(s string) U128 {
	u, err := ParseU128(s)
	if err != nil {
		panic(err)
	}
	return u
}

func U128FromBig(n *big.Int) (U128, error) {
	var u U128
	if n.Sign() < 0 {
		return u, errors.Errorf("u128: negative value %s", n)
	}
	if n.BitLen() > 128 {
		return u, errors.Wrap(ErrOverflow, n.String())
	}
	u.v.SetFromBig(n)
	return u, nil
}

func (u U128) Big() *big.Int {
	return u.v.ToBig()
}

func (u U128) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.v.ToBig(), 0)
}

// Uint64 reports the value and whether it fits in 64 bits
func (u U128) Uint64() (uint64, bool) {
	return u.v.Uint64(), u.v.IsUint64()
}

func (u U128) IsZero() bool {
	return u.v.IsZero()
}

func (u U128) Cmp(other U128) int {
	return u.v.Cmp(&other.v)
}

func (u U128) String() string {
	return u.v.Dec()
}

func (u U128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *U128) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "u128")
		}
	}
	parsed, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
