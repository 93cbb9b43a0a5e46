// Package types exposes version checked accessors for every call, event,
// constant and storage item of the runtime.
//
// An accessor is bound to one item. IsV<N> reports whether the item, as
// described by the active chain metadata, has the layout of version N, and
// AsV<N> decodes it with that layout, failing without decoding otherwise.
package types

import (
	"context"
	"sync"

	"go-zeropool-dictionary/internal/types/registry"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
)

var (
	ErrUnexpectedName    = errors.New("unexpected item name")
	ErrUnexpectedVersion = errors.New("unexpected item version")
	ErrNotDefined        = errors.New("item not defined in metadata")
)

var (
	registryMu     sync.RWMutex
	activeRegistry *registry.Registry
)

// UseRegistry replaces the hash table accessors compare against. A nil
// registry restores the embedded one.
func UseRegistry(r *registry.Registry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	activeRegistry = r
}

func expectedHash(kind registry.Kind, name string, version int) (string, bool) {
	registryMu.RLock()
	r := activeRegistry
	registryMu.RUnlock()

	if r == nil {
		r = registry.Default()
	}
	return r.Hash(kind, name, version)
}

func unexpectedVersion(name string, version int) error {
	return errors.Wrapf(ErrUnexpectedVersion, "%s is not v%d", name, version)
}

type callAccessor struct {
	ctx  support.CallContext
	name string
}

func newCallAccessor(ctx support.CallContext, name string) (callAccessor, error) {
	if got := ctx.Call().Name; got != name {
		return callAccessor{}, errors.Wrapf(ErrUnexpectedName, "expected %s, got %s", name, got)
	}
	return callAccessor{ctx: ctx, name: name}, nil
}

func (a callAccessor) is(version int) bool {
	expected, ok := expectedHash(registry.KindCall, a.name, version)
	if !ok {
		return false
	}
	actual, ok := a.ctx.Chain().GetCallHash(a.name)
	return ok && actual == expected
}

func asCall[T any](a callAccessor, version int) (T, error) {
	var out T
	if !a.is(version) {
		return out, unexpectedVersion(a.name, version)
	}
	err := a.ctx.Chain().DecodeCall(a.ctx.Call(), &out)
	return out, err
}

type eventAccessor struct {
	ctx  support.EventContext
	name string
}

func newEventAccessor(ctx support.EventContext, name string) (eventAccessor, error) {
	if got := ctx.Event().Name; got != name {
		return eventAccessor{}, errors.Wrapf(ErrUnexpectedName, "expected %s, got %s", name, got)
	}
	return eventAccessor{ctx: ctx, name: name}, nil
}

func (a eventAccessor) is(version int) bool {
	expected, ok := expectedHash(registry.KindEvent, a.name, version)
	if !ok {
		return false
	}
	actual, ok := a.ctx.Chain().GetEventHash(a.name)
	return ok && actual == expected
}

func asEvent[T any](a eventAccessor, version int) (T, error) {
	var out T
	if !a.is(version) {
		return out, unexpectedVersion(a.name, version)
	}
	err := a.ctx.Chain().DecodeEvent(a.ctx.Event(), &out)
	return out, err
}

type constantAccessor struct {
	ctx    support.ChainContext
	pallet string
	name   string
}

func newConstantAccessor(ctx support.ChainContext, pallet, name string) constantAccessor {
	return constantAccessor{ctx: ctx, pallet: pallet, name: name}
}

func (a constantAccessor) qualified() string {
	return a.pallet + "." + a.name
}

func (a constantAccessor) exists() bool {
	_, ok := a.ctx.Chain().GetConstantTypeHash(a.pallet, a.name)
	return ok
}

func (a constantAccessor) is(version int) bool {
	expected, ok := expectedHash(registry.KindConstant, a.qualified(), version)
	if !ok {
		return false
	}
	actual, ok := a.ctx.Chain().GetConstantTypeHash(a.pallet, a.name)
	return ok && actual == expected
}

func asConstant[T any](a constantAccessor, version int) (T, error) {
	var out T
	if !a.exists() {
		return out, errors.Wrap(ErrNotDefined, a.qualified())
	}
	if !a.is(version) {
		return out, unexpectedVersion(a.qualified(), version)
	}
	err := a.ctx.Chain().GetConstant(a.pallet, a.name, &out)
	return out, err
}

type storageAccessor struct {
	ctx    support.BlockContext
	pallet string
	name   string
}

func newStorageAccessor(ctx support.BlockContext, pallet, name string) storageAccessor {
	return storageAccessor{ctx: ctx, pallet: pallet, name: name}
}

func (a storageAccessor) qualified() string {
	return a.pallet + "." + a.name
}

func (a storageAccessor) exists() bool {
	_, ok := a.ctx.Chain().GetStorageItemTypeHash(a.pallet, a.name)
	return ok
}

func (a storageAccessor) is(version int) bool {
	expected, ok := expectedHash(registry.KindStorage, a.qualified(), version)
	if !ok {
		return false
	}
	actual, ok := a.ctx.Chain().GetStorageItemTypeHash(a.pallet, a.name)
	return ok && actual == expected
}

func (a storageAccessor) check(version int) error {
	if !a.exists() {
		return errors.Wrap(ErrNotDefined, a.qualified())
	}
	if !a.is(version) {
		return unexpectedVersion(a.qualified(), version)
	}
	return nil
}

func getStorage[T any](ctx context.Context, a storageAccessor, version int, keys ...interface{}) (T, error) {
	var out T
	if err := a.check(version); err != nil {
		return out, err
	}
	err := a.ctx.Chain().GetStorage(ctx, a.ctx.Block().Hash, a.pallet, a.name, &out, keys...)
	return out, err
}

func getManyStorage[T, K any](ctx context.Context, a storageAccessor, version int, keys []K) ([]T, error) {
	if err := a.check(version); err != nil {
		return nil, err
	}
	keyList := make([][]interface{}, len(keys))
	for i, key := range keys {
		keyList[i] = []interface{}{key}
	}
	var out []T
	err := a.ctx.Chain().QueryStorage(ctx, a.ctx.Block().Hash, a.pallet, a.name, keyList, &out)
	return out, err
}
