// Package models holds the rows the dictionary writes to postgres.
package models

import (
	"github.com/pkg/errors"
)

const (
	EventsTable       = "events"
	ExtrinsicsTable   = "extrinsics"
	SpecVersionsTable = "spec_versions"
	MetadataTable     = "_metadata"
)

var (
	ErrEmptyId       = errors.New("empty id")
	ErrNegativeBlock = errors.New("negative block height")
	ErrNonMonotonic  = errors.New("block heights are not monotonic")
)

// Row is a record written with CopyFrom
type Row interface {
	Table() string
	Columns() []string
	Values() []interface{}
	Height() int64
}

type Event struct {
	Id          string `db:"id"` //blockHeight-eventIndex
	Module      string `db:"module"`
	Event       string `db:"event"`
	BlockHeight int64  `db:"block_height"`
}

func NewEvent(id, module, event string, blockHeight int64) (Event, error) {
	if err := validate(id, blockHeight); err != nil {
		return Event{}, errors.Wrap(err, "event")
	}
	return Event{Id: id, Module: module, Event: event, BlockHeight: blockHeight}, nil
}

func (Event) Table() string { return EventsTable }

func (Event) Columns() []string {
	return []string{"id", "module", "event", "block_height"}
}

func (e Event) Values() []interface{} {
	return []interface{}{e.Id, e.Module, e.Event, BigIntTransformer.To(e.BlockHeight)}
}

func (e Event) Height() int64 { return e.BlockHeight }

func (Event) Indexes() []string {
	return []string{"module", "event", "block_height"}
}

type Extrinsic struct {
	Id          string `db:"id"` //blockHeight-extrinsicIndex
	TxHash      string `db:"tx_hash"`
	Module      string `db:"module"`
	Call        string `db:"call"`
	BlockHeight int64  `db:"block_height"`
	Success     bool   `db:"success"`
	IsSigned    bool   `db:"is_signed"`
}

func NewExtrinsic(id, txHash, module, call string, blockHeight int64, success, isSigned bool) (Extrinsic, error) {
	if err := validate(id, blockHeight); err != nil {
		return Extrinsic{}, errors.Wrap(err, "extrinsic")
	}
	return Extrinsic{
		Id:          id,
		TxHash:      txHash,
		Module:      module,
		Call:        call,
		BlockHeight: blockHeight,
		Success:     success,
		IsSigned:    isSigned,
	}, nil
}

func (Extrinsic) Table() string { return ExtrinsicsTable }

func (Extrinsic) Columns() []string {
	return []string{"id", "tx_hash", "module", "call", "block_height", "success", "is_signed"}
}

func (e Extrinsic) Values() []interface{} {
	return []interface{}{e.Id, e.TxHash, e.Module, e.Call, BigIntTransformer.To(e.BlockHeight), e.Success, e.IsSigned}
}

func (e Extrinsic) Height() int64 { return e.BlockHeight }

func (Extrinsic) Indexes() []string {
	return []string{"tx_hash", "module", "call", "block_height"}
}

// SpecVersion marks the first block of a runtime version. Id is the spec
// version number.
type SpecVersion struct {
	Id          string `db:"id"`
	BlockHeight int64  `db:"block_height"`
}

func NewSpecVersion(id string, blockHeight int64) (SpecVersion, error) {
	if err := validate(id, blockHeight); err != nil {
		return SpecVersion{}, errors.Wrap(err, "spec version")
	}
	return SpecVersion{Id: id, BlockHeight: blockHeight}, nil
}

func (SpecVersion) Table() string { return SpecVersionsTable }

func (SpecVersion) Columns() []string {
	return []string{"id", "block_height"}
}

func (s SpecVersion) Values() []interface{} {
	return []interface{}{s.Id, BigIntTransformer.To(s.BlockHeight)}
}

func (s SpecVersion) Height() int64 { return s.BlockHeight }

func (SpecVersion) Indexes() []string {
	return nil
}

func validate(id string, blockHeight int64) error {
	if id == "" {
		return ErrEmptyId
	}
	if blockHeight < 0 {
		return errors.Wrapf(ErrNegativeBlock, "%s at %d", id, blockHeight)
	}
	return nil
}

// CheckMonotonic verifies the rows of one linear scan never go back in height
func CheckMonotonic[R Row](rows []R) error {
	for i := 1; i < len(rows); i++ {
		if rows[i].Height() < rows[i-1].Height() {
			return errors.Wrapf(ErrNonMonotonic, "%s row %d at %d follows %d", rows[i].Table(), i, rows[i].Height(), rows[i-1].Height())
		}
	}
	return nil
}

// CopyRows renders rows in the shape pgx.CopyFromRows expects
func CopyRows[R Row](rows []R) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		out[i] = row.Values()
	}
	return out
}
