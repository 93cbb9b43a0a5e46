// Package chaintest provides an in-memory chain for testing the indexing
// clients without a node.
package chaintest

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/types/registry"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
)

// Chain reports every item with its version 1 hash from the embedded
// registry. Storage values and decoded blocks are JSON fixtures.
type Chain struct {
	mu sync.Mutex

	// Changed holds qualified names whose hash differs from version 1
	Changed map[string]bool
	// Storage is keyed by StorageKey, values are JSON
	Storage    map[string]string
	Constants  map[string]string
	Extrinsics map[string]chain.Extrinsic
	Events     map[int][]support.Event

	StorageReads int
}

var _ support.Chain = (*Chain)(nil)

func New() *Chain {
	return &Chain{
		Changed:    map[string]bool{},
		Storage:    map[string]string{},
		Constants:  map[string]string{},
		Extrinsics: map[string]chain.Extrinsic{},
		Events:     map[int][]support.Event{},
	}
}

func (c *Chain) hash(kind registry.Kind, name string) (string, bool) {
	hash, ok := registry.Default().Hash(kind, name, 1)
	if !ok {
		return "", false
	}
	if c.Changed[name] {
		return "changed" + hash, true
	}
	return hash, true
}

func (c *Chain) GetCallHash(name string) (string, bool) {
	return c.hash(registry.KindCall, name)
}

func (c *Chain) GetEventHash(name string) (string, bool) {
	return c.hash(registry.KindEvent, name)
}

func (c *Chain) GetConstantTypeHash(pallet, name string) (string, bool) {
	return c.hash(registry.KindConstant, pallet+"."+name)
}

func (c *Chain) GetStorageItemTypeHash(pallet, name string) (string, bool) {
	return c.hash(registry.KindStorage, pallet+"."+name)
}

func (c *Chain) GetConstant(pallet, name string, out interface{}) error {
	value, ok := c.Constants[pallet+"."+name]
	if !ok {
		return errors.Wrapf(chain.ErrUnknownItem, "constant %s.%s", pallet, name)
	}
	return json.Unmarshal([]byte(value), out)
}

// StorageKey renders the qualified name and keys, readable in fixtures:
// "System.Account/0x...".
func (c *Chain) StorageKey(pallet, name string, keys ...interface{}) (string, error) {
	parts := []string{pallet + "." + name}
	for _, key := range keys {
		switch k := key.(type) {
		case support.Bytes:
			parts = append(parts, k.Hex())
		case []byte:
			parts = append(parts, "0x"+hex.EncodeToString(k))
		default:
			parts = append(parts, fmt.Sprint(k))
		}
	}
	return strings.Join(parts, "/"), nil
}

func (c *Chain) value(pallet, name string, keys ...interface{}) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StorageReads++

	key, _ := c.StorageKey(pallet, name, keys...)
	if value, ok := c.Storage[key]; ok {
		return value
	}
	return "null"
}

func (c *Chain) GetStorage(_ context.Context, _, pallet, name string, out interface{}, keys ...interface{}) error {
	return json.Unmarshal([]byte(c.value(pallet, name, keys...)), out)
}

func (c *Chain) QueryStorage(_ context.Context, _, pallet, name string, keyList [][]interface{}, out interface{}) error {
	values := make([]string, len(keyList))
	for i, keys := range keyList {
		values[i] = c.value(pallet, name, keys...)
	}
	return json.Unmarshal([]byte("["+strings.Join(values, ",")+"]"), out)
}

func (c *Chain) DecodeCall(call support.Call, out interface{}) error {
	return json.Unmarshal(call.Args, out)
}

func (c *Chain) DecodeEvent(event support.Event, out interface{}) error {
	return json.Unmarshal(event.Args, out)
}

// DecodeExtrinsic looks the raw extrinsic up in Extrinsics
func (c *Chain) DecodeExtrinsic(id, rawExtrinsic string) (chain.Extrinsic, error) {
	extrinsic, ok := c.Extrinsics[rawExtrinsic]
	if !ok {
		return chain.Extrinsic{}, errors.Errorf("unknown extrinsic %s", rawExtrinsic)
	}
	extrinsic.Call.ID = id
	return extrinsic, nil
}

// DecodeEvents returns the fixture events of the block
func (c *Chain) DecodeEvents(blockHeight int, _ []byte) ([]support.Event, error) {
	return c.Events[blockHeight], nil
}
