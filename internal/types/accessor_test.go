package types

import (
	"context"
	"encoding/json"
	"testing"

	"go-zeropool-dictionary/internal/types/registry"
	"go-zeropool-dictionary/internal/types/support"
	v1 "go-zeropool-dictionary/internal/types/v1"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const alice = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func knownHash(t *testing.T, kind registry.Kind, name string) string {
	t.Helper()
	hash, ok := registry.Default().Hash(kind, name, 1)
	require.True(t, ok, name)
	return hash
}

func TestCallNameMismatch(t *testing.T) {
	chain := &mockChain{}
	ctx := support.WithCall(chain, support.Call{ID: "1-0", Name: "Balances.transfer_keep_alive"})

	_, err := NewBalancesTransferCall(ctx)
	assert.True(t, errors.Is(err, ErrUnexpectedName))

	ctx = support.WithCall(chain, support.Call{ID: "1-1", Name: "Balances.set_balance"})
	_, err = NewBalancesTransferCall(ctx)
	assert.True(t, errors.Is(err, ErrUnexpectedName))
	assert.Contains(t, err.Error(), "expected Balances.transfer, got Balances.set_balance")
	chain.AssertExpectations(t)
}

func TestBalancesTransferCall(t *testing.T) {
	call := support.Call{
		ID:   "10-1",
		Name: "Balances.transfer",
		Args: json.RawMessage(`{"dest":"` + alice + `","value":"1000000000000"}`),
	}
	chain := &mockChain{}
	chain.On("GetCallHash", "Balances.transfer").Return(knownHash(t, registry.KindCall, "Balances.transfer"), true)
	chain.On("DecodeCall", call, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		out := args.Get(1).(*v1.BalancesTransferCall)
		require.NoError(t, json.Unmarshal(call.Args, out))
	})

	transfer, err := NewBalancesTransferCall(support.WithCall(chain, call))
	require.NoError(t, err)
	assert.True(t, transfer.IsV1())

	decoded, err := transfer.AsV1()
	require.NoError(t, err)
	assert.Equal(t, v1.LookupSourceKindId, decoded.Dest.Kind)
	assert.Equal(t, alice, decoded.Dest.Value.Hex())
	assert.Equal(t, "1000000000000", decoded.Value.String())
	chain.AssertNumberOfCalls(t, "DecodeCall", 1)
}

func TestBalancesSetBalanceCall(t *testing.T) {
	call := support.Call{
		ID:   "12-1",
		Name: "Balances.set_balance",
		Args: json.RawMessage(`{"who":"` + alice + `","new_free":"5","new_reserved":"0"}`),
	}
	chain := &mockChain{}
	chain.On("GetCallHash", "Balances.set_balance").Return(knownHash(t, registry.KindCall, "Balances.set_balance"), true)
	chain.On("DecodeCall", call, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal(call.Args, args.Get(1)))
	})

	setBalance, err := NewBalancesSetBalanceCall(support.WithCall(chain, call))
	require.NoError(t, err)

	decoded, err := setBalance.AsV1()
	require.NoError(t, err)
	assert.Equal(t, "5", decoded.NewFree.String())
	assert.True(t, decoded.NewReserved.IsZero())
	chain.AssertNumberOfCalls(t, "DecodeCall", 1)
}

func TestAsV1NeverDecodesOnMismatch(t *testing.T) {
	chain := &mockChain{}
	chain.On("GetCallHash", "Balances.transfer").Return("0000", true)

	transfer, err := NewBalancesTransferCall(support.WithCall(chain, support.Call{Name: "Balances.transfer"}))
	require.NoError(t, err)
	assert.False(t, transfer.IsV1())

	_, err = transfer.AsV1()
	assert.True(t, errors.Is(err, ErrUnexpectedVersion))
	chain.AssertNotCalled(t, "DecodeCall", mock.Anything, mock.Anything)
}

func TestDecodeErrorIsReturnedUnmodified(t *testing.T) {
	decodeErr := errors.New("scale: short input")
	call := support.Call{Name: "Timestamp.set"}
	chain := &mockChain{}
	chain.On("GetCallHash", "Timestamp.set").Return(knownHash(t, registry.KindCall, "Timestamp.set"), true)
	chain.On("DecodeCall", call, mock.Anything).Return(decodeErr)

	set, err := NewTimestampSetCall(support.WithCall(chain, call))
	require.NoError(t, err)

	_, err = set.AsV1()
	assert.Equal(t, decodeErr, err)
}

func TestUnitCall(t *testing.T) {
	call := support.Call{Name: "System.suicide"}
	chain := &mockChain{}
	chain.On("GetCallHash", "System.suicide").Return(knownHash(t, registry.KindCall, "System.suicide"), true)
	chain.On("DecodeCall", call, mock.Anything).Return(nil)

	suicide, err := NewSystemSuicideCall(support.WithCall(chain, call))
	require.NoError(t, err)

	value, err := suicide.AsV1()
	require.NoError(t, err)
	assert.Equal(t, support.Null{}, value)
}

func TestExtrinsicFailedEvent(t *testing.T) {
	event := support.Event{
		ID:   "3-2",
		Name: "System.ExtrinsicFailed",
		Args: json.RawMessage(`[{"Module":{"index":5,"error":2}},{"weight":100,"class":"Normal","pays_fee":"Yes"}]`),
	}
	chain := &mockChain{}
	chain.On("GetEventHash", "System.ExtrinsicFailed").Return(knownHash(t, registry.KindEvent, "System.ExtrinsicFailed"), true)
	chain.On("DecodeEvent", event, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal(event.Args, args.Get(1)))
	})

	failed, err := NewSystemExtrinsicFailedEvent(support.WithEvent(chain, event))
	require.NoError(t, err)
	require.True(t, failed.IsV1())

	decoded, err := failed.AsV1()
	require.NoError(t, err)
	assert.Equal(t, v1.DispatchErrorKindModule, decoded.Error.Kind)
	assert.Equal(t, uint64(100), decoded.Info.Weight)

	_, err = NewSystemExtrinsicSuccessEvent(support.WithEvent(chain, event))
	assert.True(t, errors.Is(err, ErrUnexpectedName))
}

func TestEventUndefinedInMetadata(t *testing.T) {
	chain := &mockChain{}
	chain.On("GetEventHash", "Sudo.Sudid").Return("", false)

	sudid, err := NewSudoSudidEvent(support.WithEvent(chain, support.Event{Name: "Sudo.Sudid"}))
	require.NoError(t, err)
	assert.False(t, sudid.IsV1())

	_, err = sudid.AsV1()
	assert.True(t, errors.Is(err, ErrUnexpectedVersion))
}

func TestConstant(t *testing.T) {
	chain := &mockChain{}
	chain.On("GetConstantTypeHash", "Balances", "ExistentialDeposit").
		Return(knownHash(t, registry.KindConstant, "Balances.ExistentialDeposit"), true)
	chain.On("GetConstant", "Balances", "ExistentialDeposit", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		*args.Get(2).(*support.U128) = support.NewU128(500)
	})

	deposit := NewBalancesExistentialDepositConstant(support.WithChain(chain))
	assert.True(t, deposit.IsExists())
	assert.True(t, deposit.IsV1())

	value, err := deposit.AsV1()
	require.NoError(t, err)
	assert.Equal(t, "500", value.String())
}

func TestConstantNotDefined(t *testing.T) {
	chain := &mockChain{}
	chain.On("GetConstantTypeHash", "Zeropool", "MaxLength").Return("", false)

	maxLength := NewZeropoolMaxLengthConstant(support.WithChain(chain))
	assert.False(t, maxLength.IsExists())
	assert.False(t, maxLength.IsV1())

	_, err := maxLength.AsV1()
	assert.True(t, errors.Is(err, ErrNotDefined))
	chain.AssertNotCalled(t, "GetConstant", mock.Anything, mock.Anything, mock.Anything)
}

func TestOptionalStorage(t *testing.T) {
	ctx := context.Background()
	block := support.Block{Hash: "0xabcd", Height: 7}
	chain := &mockChain{}
	chain.On("GetStorageItemTypeHash", "System", "LastRuntimeUpgrade").
		Return(knownHash(t, registry.KindStorage, "System.LastRuntimeUpgrade"), true)
	chain.On("GetStorage", ctx, "0xabcd", "System", "LastRuntimeUpgrade", mock.Anything, []interface{}(nil)).Return(nil)

	upgrade := NewSystemLastRuntimeUpgradeStorage(support.WithBlock(chain, block))
	assert.True(t, upgrade.IsExists())

	value, err := upgrade.GetAsV1(ctx)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestKeyedStorage(t *testing.T) {
	ctx := context.Background()
	account := support.MustBytesFromHex(alice)
	block := support.Block{Hash: "0xabcd", Height: 7}
	chain := &mockChain{}
	chain.On("GetStorageItemTypeHash", "System", "Account").
		Return(knownHash(t, registry.KindStorage, "System.Account"), true)
	chain.On("GetStorage", ctx, "0xabcd", "System", "Account", mock.Anything, []interface{}{account}).
		Return(nil).Run(func(args mock.Arguments) {
		args.Get(4).(*v1.AccountInfo).Nonce = 3
	})
	chain.On("QueryStorage", ctx, "0xabcd", "System", "Account", [][]interface{}{{account}, {account}}, mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		*args.Get(5).(*[]v1.AccountInfo) = []v1.AccountInfo{{Nonce: 1}, {Nonce: 2}}
	})

	accounts := NewSystemAccountStorage(support.WithBlock(chain, block))
	info, err := accounts.GetAsV1(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), info.Nonce)

	many, err := accounts.GetManyAsV1(ctx, []support.Bytes{account, account})
	require.NoError(t, err)
	require.Len(t, many, 2)
	assert.Equal(t, uint32(2), many[1].Nonce)
	chain.AssertExpectations(t)
}

func TestStorageVersionMismatch(t *testing.T) {
	chain := &mockChain{}
	chain.On("GetStorageItemTypeHash", "GrandpaFinality", "CurrentSetId").Return("ffff", true)

	setID := NewGrandpaFinalityCurrentSetIdStorage(support.WithBlock(chain, support.Block{Hash: "0x01"}))
	assert.True(t, setID.IsExists())
	assert.False(t, setID.IsV1())

	_, err := setID.GetAsV1(context.Background())
	assert.True(t, errors.Is(err, ErrUnexpectedVersion))
	chain.AssertNotCalled(t, "GetStorage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseRegistry(t *testing.T) {
	custom := registry.New()
	custom.Set(registry.KindCall, "Balances.transfer", 1, "beef")
	UseRegistry(custom)
	defer UseRegistry(nil)

	chain := &mockChain{}
	chain.On("GetCallHash", "Balances.transfer").Return("beef", true)

	transfer, err := NewBalancesTransferCall(support.WithCall(chain, support.Call{Name: "Balances.transfer"}))
	require.NoError(t, err)
	assert.True(t, transfer.IsV1())
}
