// Package chain implements the typed accessors' chain context on top of the
// itering/scale.go metadata decoder.
package chain

import (
	"context"
	"encoding/json"
	"strings"

	"go-zeropool-dictionary/internal/types/registry"
	"go-zeropool-dictionary/internal/types/support"

	scalecodec "github.com/itering/scale.go"
	"github.com/itering/scale.go/types"
	"github.com/itering/scale.go/utiles"
	"github.com/pkg/errors"
)

var ErrUnknownItem = errors.New("item not in metadata")

// StorageReader fetches raw storage values as hex. An empty value means the
// key is not set.
type StorageReader interface {
	GetStorage(ctx context.Context, key, blockHash string) (string, error)
	QueryStorageAt(ctx context.Context, keys []string, blockHash string) ([]string, error)
}

type decodeFunc func(typeString string, raw []byte) (interface{}, error)

type constantEntry struct {
	hash      string
	valueType string
	value     string
}

type storageEntry struct {
	hash   string
	prefix string
	name   string
	layout storageLayout
}

// Chain is the support.Chain of one runtime version
type Chain struct {
	specVersion int
	metadata    *types.MetadataStruct
	storage     StorageReader
	decode      decodeFunc

	calls     map[string]string
	events    map[string]string
	constants map[string]constantEntry
	entries   map[string]storageEntry
}

var _ support.Chain = (*Chain)(nil)

// New decodes hex encoded runtime metadata and indexes it
func New(specVersion int, rawMetadata string, storage StorageReader) (*Chain, error) {
	metadata, err := DecodeMetadata(rawMetadata)
	if err != nil {
		return nil, err
	}
	return FromMetadata(specVersion, metadata, storage)
}

func DecodeMetadata(rawMetadata string) (metadata *types.MetadataStruct, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("metadata: decode: %v", r)
		}
	}()

	decoder := scalecodec.MetadataDecoder{}
	decoder.Init(utiles.HexToBytes(rawMetadata))
	if err := decoder.Process(); err != nil {
		return nil, errors.Wrap(err, "metadata: decode")
	}
	return &decoder.Metadata, nil
}

func FromMetadata(specVersion int, metadata *types.MetadataStruct, storage StorageReader) (*Chain, error) {
	view, err := viewOf(metadata)
	if err != nil {
		return nil, err
	}
	c, err := newChain(specVersion, view, storage)
	if err != nil {
		return nil, err
	}
	c.metadata = metadata
	return c, nil
}

func newChain(specVersion int, view metadataView, storage StorageReader) (*Chain, error) {
	c := &Chain{
		specVersion: specVersion,
		storage:     storage,
		calls:       map[string]string{},
		events:      map[string]string{},
		constants:   map[string]constantEntry{},
		entries:     map[string]storageEntry{},
	}
	c.decode = c.scaleDecode

	for _, module := range view.Modules {
		for _, call := range module.Calls {
			c.calls[module.Name+"."+call.Name] = callHash(call)
		}
		for _, event := range module.Events {
			c.events[module.Name+"."+event.Name] = eventHash(event)
		}
		for _, constant := range module.Constants {
			c.constants[module.Name+"."+constant.Name] = constantEntry{
				hash:      constantHash(constant),
				valueType: constant.Type,
				value:     constant.Value,
			}
		}
		for _, item := range module.Storage {
			layout, err := item.layout()
			if err != nil {
				return nil, errors.Wrap(err, module.Prefix)
			}
			c.entries[module.Prefix+"."+item.Name] = storageEntry{
				hash:   storageHash(layout),
				prefix: module.Prefix,
				name:   item.Name,
				layout: layout,
			}
		}
	}
	return c, nil
}

func (c *Chain) SpecVersion() int {
	return c.specVersion
}

// Metadata is the decoded metadata, nil for chains built without one
func (c *Chain) Metadata() *types.MetadataStruct {
	return c.metadata
}

func (c *Chain) GetCallHash(name string) (string, bool) {
	hash, ok := c.calls[name]
	return hash, ok
}

func (c *Chain) GetEventHash(name string) (string, bool) {
	hash, ok := c.events[name]
	return hash, ok
}

func (c *Chain) GetConstantTypeHash(pallet, name string) (string, bool) {
	entry, ok := c.constants[pallet+"."+name]
	return entry.hash, ok
}

func (c *Chain) GetStorageItemTypeHash(pallet, name string) (string, bool) {
	entry, ok := c.entries[pallet+"."+name]
	return entry.hash, ok
}

func (c *Chain) GetConstant(pallet, name string, out interface{}) error {
	entry, ok := c.constants[pallet+"."+name]
	if !ok {
		return errors.Wrapf(ErrUnknownItem, "constant %s.%s", pallet, name)
	}
	return c.decodeInto(entry.valueType, utiles.HexToBytes(entry.value), out)
}

func (c *Chain) DecodeCall(call support.Call, out interface{}) error {
	return errors.Wrapf(json.Unmarshal(call.Args, out), "call %s", call.Name)
}

func (c *Chain) DecodeEvent(event support.Event, out interface{}) error {
	return errors.Wrapf(json.Unmarshal(event.Args, out), "event %s", event.Name)
}

// StorageKey returns the key of a storage entry for the given keys
func (c *Chain) StorageKey(pallet, name string, keys ...interface{}) (string, error) {
	entry, ok := c.entries[pallet+"."+name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownItem, "storage %s.%s", pallet, name)
	}
	return StorageKey(entry.prefix, entry.name, entry.layout.hashers, entry.layout.keys, keys...)
}

func (c *Chain) GetStorage(ctx context.Context, blockHash, pallet, name string, out interface{}, keys ...interface{}) error {
	entry, ok := c.entries[pallet+"."+name]
	if !ok {
		return errors.Wrapf(ErrUnknownItem, "storage %s.%s", pallet, name)
	}
	key, err := StorageKey(entry.prefix, entry.name, entry.layout.hashers, entry.layout.keys, keys...)
	if err != nil {
		return err
	}
	raw, err := c.storage.GetStorage(ctx, key, blockHash)
	if err != nil {
		return errors.Wrapf(err, "storage %s.%s", pallet, name)
	}

	value, err := c.storageValue(entry, raw)
	if err != nil {
		return err
	}
	return errors.Wrapf(json.Unmarshal(value, out), "storage %s.%s", pallet, name)
}

func (c *Chain) QueryStorage(ctx context.Context, blockHash, pallet, name string, keyList [][]interface{}, out interface{}) error {
	entry, ok := c.entries[pallet+"."+name]
	if !ok {
		return errors.Wrapf(ErrUnknownItem, "storage %s.%s", pallet, name)
	}
	keys := make([]string, len(keyList))
	for i, itemKeys := range keyList {
		key, err := StorageKey(entry.prefix, entry.name, entry.layout.hashers, entry.layout.keys, itemKeys...)
		if err != nil {
			return err
		}
		keys[i] = key
	}

	raws, err := c.storage.QueryStorageAt(ctx, keys, blockHash)
	if err != nil {
		return errors.Wrapf(err, "storage %s.%s", pallet, name)
	}
	if len(raws) != len(keys) {
		return errors.Errorf("storage %s.%s: %d values for %d keys", pallet, name, len(raws), len(keys))
	}

	values := make([]json.RawMessage, len(raws))
	for i, raw := range raws {
		if values[i], err = c.storageValue(entry, raw); err != nil {
			return err
		}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return errors.Wrapf(err, "storage %s.%s", pallet, name)
	}
	return errors.Wrapf(json.Unmarshal(encoded, out), "storage %s.%s", pallet, name)
}

// storageValue decodes a raw value, falling back to the metadata default
// for Default entries. Absent Optional values are null.
func (c *Chain) storageValue(entry storageEntry, raw string) (json.RawMessage, error) {
	raw = strings.TrimPrefix(raw, "0x")
	if raw == "" {
		if entry.layout.modifier != "Default" {
			return json.RawMessage("null"), nil
		}
		raw = strings.TrimPrefix(entry.layout.fallback, "0x")
	}

	value, err := c.decode(entry.layout.value, utiles.HexToBytes(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "storage %s.%s", entry.prefix, entry.name)
	}
	return toJSON(value)
}

func (c *Chain) decodeInto(typeString string, raw []byte, out interface{}) error {
	value, err := c.decode(typeString, raw)
	if err != nil {
		return err
	}
	encoded, err := toJSON(value)
	if err != nil {
		return err
	}
	return errors.Wrapf(json.Unmarshal(encoded, out), "decode %s", typeString)
}

func (c *Chain) scaleDecode(typeString string, raw []byte) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("scale: decode %s: %v", typeString, r)
		}
	}()

	decoder := types.ScaleDecoder{}
	decoder.Init(types.ScaleBytes{Data: raw}, &types.ScaleDecoderOption{Metadata: c.metadata, Spec: c.specVersion})
	return decoder.ProcessAndUpdateData(typeString), nil
}

// Hashes records the type hash of every item of this metadata as the given
// version
func (c *Chain) Hashes(version int) *registry.Registry {
	r := registry.New()
	for name, hash := range c.calls {
		r.Set(registry.KindCall, name, version, hash)
	}
	for name, hash := range c.events {
		r.Set(registry.KindEvent, name, version, hash)
	}
	for name, entry := range c.constants {
		r.Set(registry.KindConstant, name, version, entry.hash)
	}
	for name, entry := range c.entries {
		r.Set(registry.KindStorage, name, version, entry.hash)
	}
	return r
}
