// Package support defines the chain context the typed runtime accessors are
// written against, plus the value types shared by every runtime version.
package support

import (
	"context"
	"encoding/json"
)

// Chain resolves type hashes and decodes runtime items against the metadata
// of one runtime version. The boolean result of the hash lookups is false
// when the item is not defined by that metadata.
type Chain interface {
	GetCallHash(name string) (string, bool)
	GetEventHash(name string) (string, bool)
	GetConstantTypeHash(pallet, name string) (string, bool)
	GetConstant(pallet, name string, out interface{}) error
	GetStorageItemTypeHash(pallet, name string) (string, bool)
	GetStorage(ctx context.Context, blockHash, pallet, name string, out interface{}, keys ...interface{}) error
	QueryStorage(ctx context.Context, blockHash, pallet, name string, keyList [][]interface{}, out interface{}) error
	DecodeCall(call Call, out interface{}) error
	DecodeEvent(event Event, out interface{}) error
}

// Call is a dispatched call. Name is qualified as "Pallet.call_name" and Args
// holds the named arguments as a JSON object.
type Call struct {
	ID   string
	Name string
	Args json.RawMessage
}

// Event is an emitted event. Name is qualified as "Pallet.EventName". Args is
// null for events without fields, the bare value for a single field and a
// positional JSON array otherwise.
type Event struct {
	ID             string
	Name           string
	Args           json.RawMessage
	ExtrinsicIndex *int
}

type Block struct {
	Hash   string
	Height int
}

type ChainContext interface {
	Chain() Chain
}

type CallContext interface {
	ChainContext
	Call() Call
}

type EventContext interface {
	ChainContext
	Event() Event
}

type BlockContext interface {
	ChainContext
	Block() Block
}

type chainContext struct{ chain Chain }

func (c chainContext) Chain() Chain { return c.chain }

type callContext struct {
	chainContext
	call Call
}

func (c callContext) Call() Call { return c.call }

type eventContext struct {
	chainContext
	event Event
}

func (c eventContext) Event() Event { return c.event }

type blockContext struct {
	chainContext
	block Block
}

func (c blockContext) Block() Block { return c.block }

func WithChain(chain Chain) ChainContext {
	return chainContext{chain}
}

func WithCall(chain Chain, call Call) CallContext {
	return callContext{chainContext{chain}, call}
}

func WithEvent(chain Chain, event Event) EventContext {
	return eventContext{chainContext{chain}, event}
}

func WithBlock(chain Chain, block Block) BlockContext {
	return blockContext{chainContext{chain}, block}
}
