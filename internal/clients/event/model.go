package event

import (
	"go-zeropool-dictionary/internal/types/support"
)

const (
	extrinsicSuccessEvent = "System.ExtrinsicSuccess"
	extrinsicFailedEvent  = "System.ExtrinsicFailed"
)

// Decoder decodes the events of one runtime version
type Decoder interface {
	support.Chain
	StorageKey(pallet, name string, keys ...interface{}) (string, error)
	DecodeEvents(blockHeight int, rawEvents []byte) ([]support.Event, error)
}

// Outcomes maps an extrinsic index to whether it was dispatched successfully
type Outcomes map[int]bool
