package types

import (
	"context"

	"go-zeropool-dictionary/internal/types/support"

	"github.com/stretchr/testify/mock"
)

type mockChain struct {
	mock.Mock
}

func (m *mockChain) GetCallHash(name string) (string, bool) {
	args := m.Called(name)
	return args.String(0), args.Bool(1)
}

func (m *mockChain) GetEventHash(name string) (string, bool) {
	args := m.Called(name)
	return args.String(0), args.Bool(1)
}

func (m *mockChain) GetConstantTypeHash(pallet, name string) (string, bool) {
	args := m.Called(pallet, name)
	return args.String(0), args.Bool(1)
}

func (m *mockChain) GetConstant(pallet, name string, out interface{}) error {
	return m.Called(pallet, name, out).Error(0)
}

func (m *mockChain) GetStorageItemTypeHash(pallet, name string) (string, bool) {
	args := m.Called(pallet, name)
	return args.String(0), args.Bool(1)
}

func (m *mockChain) GetStorage(ctx context.Context, blockHash, pallet, name string, out interface{}, keys ...interface{}) error {
	return m.Called(ctx, blockHash, pallet, name, out, keys).Error(0)
}

func (m *mockChain) QueryStorage(ctx context.Context, blockHash, pallet, name string, keyList [][]interface{}, out interface{}) error {
	return m.Called(ctx, blockHash, pallet, name, keyList, out).Error(0)
}

func (m *mockChain) DecodeCall(call support.Call, out interface{}) error {
	return m.Called(call, out).Error(0)
}

func (m *mockChain) DecodeEvent(event support.Event, out interface{}) error {
	return m.Called(event, out).Error(0)
}
