package models

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type bigIntTransformer struct{}

// BigIntTransformer converts block heights to and from the text form of a
// numeric column
var BigIntTransformer bigIntTransformer

func (bigIntTransformer) To(value int64) string {
	return decimal.NewFromInt(value).String()
}

func (bigIntTransformer) From(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, errors.Wrapf(err, "numeric %q", value)
	}
	if !d.IsInteger() {
		return 0, errors.Errorf("numeric %q is not an integer", value)
	}
	if !d.BigInt().IsInt64() {
		return 0, errors.Errorf("numeric %q overflows int64", value)
	}
	return d.IntPart(), nil
}
