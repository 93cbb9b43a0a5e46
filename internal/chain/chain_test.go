package chain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"go-zeropool-dictionary/internal/types/registry"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice     = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	blockHash = "0x8f5a8aa3b5e0b7b5e0af26b6b3a1f2f2c4d4f1c1d1b1a19181716151413121110"
)

type fakeStorage struct {
	values    map[string]string
	err       error
	blockHash string
}

func (f *fakeStorage) GetStorage(_ context.Context, key, blockHash string) (string, error) {
	f.blockHash = blockHash
	return f.values[key], f.err
}

func (f *fakeStorage) QueryStorageAt(_ context.Context, keys []string, blockHash string) ([]string, error) {
	f.blockHash = blockHash
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = f.values[key]
	}
	return out, nil
}

type decoded struct {
	TypeName string `json:"type_name"`
	Raw      string `json:"raw"`
}

// testChain indexes testdata/metadata.json. Values decode to their type
// string and raw hex.
func testChain(t *testing.T, storage StorageReader) *Chain {
	t.Helper()
	raw, err := os.ReadFile("testdata/metadata.json")
	require.NoError(t, err)
	view, err := parseView(raw)
	require.NoError(t, err)
	c, err := newChain(9, view, storage)
	require.NoError(t, err)
	c.decode = func(typeString string, raw []byte) (interface{}, error) {
		return map[string]interface{}{"typeName": typeString, "raw": "0x" + hex.EncodeToString(raw)}, nil
	}
	return c
}

func TestTypeHashes(t *testing.T) {
	c := testChain(t, nil)

	transfer, ok := c.GetCallHash("Balances.transfer")
	require.True(t, ok)
	assert.Equal(t, "09e481ecba34b638582687055c6352c32d1f0aa4cba3305c392223dd6a117a1a", transfer)
	keepAlive, ok := c.GetCallHash("Balances.transfer_keep_alive")
	require.True(t, ok)
	assert.Equal(t, transfer, keepAlive)

	success, ok := c.GetEventHash("System.ExtrinsicSuccess")
	require.True(t, ok)
	assert.Equal(t, "1a25cd57318ad8720a42d387f464a0e698fd6e60f33848329e354c1bc9c3359d", success)

	paused, _ := c.GetEventHash("Grandpa.Paused")
	codeUpdated, _ := c.GetEventHash("System.CodeUpdated")
	assert.Equal(t, "01f2f9c28aa1d4d36a81ff042620b6677d25bf07c2bf4acc37b58658778a4fca", paused)
	assert.Equal(t, paused, codeUpdated)

	constant, ok := c.GetConstantTypeHash("System", "BlockHashCount")
	require.True(t, ok)
	assert.Equal(t, "b76f37d33f64f2d9b3234e29034ab4a73ee9da01a61ab139c27f8c841971e469", constant)

	account, ok := c.GetStorageItemTypeHash("System", "Account")
	require.True(t, ok)
	assert.Equal(t, "04d8819def26250b49dae5d8b3a0bbd8ef7190a7022ae78fba05494ced2b9973", account)

	_, ok = c.GetCallHash("Balances.set_balance")
	assert.False(t, ok)
	_, ok = c.GetStorageItemTypeHash("Grandpa", "CurrentSetId")
	assert.False(t, ok, "storage is keyed by prefix")
	_, ok = c.GetStorageItemTypeHash("GrandpaFinality", "CurrentSetId")
	assert.True(t, ok)
}

func TestCanonicalType(t *testing.T) {
	cases := map[string]string{
		"<T::Lookup as StaticLookup>::Source":   "Source",
		"Compact<T::Balance>":                   "Compact<Balance>",
		"Vec<<T as Trait>::Hash>":               "Vec<Hash>",
		"AccountInfo<T::Index, T::AccountData>": "AccountInfo<Index,AccountData>",
		"(T::BlockNumber,  T::BlockNumber)":     "(BlockNumber,BlockNumber)",
		"u32":                                   "u32",
	}
	for in, want := range cases {
		assert.Equal(t, want, canonicalType(in), in)
	}
}

func TestTypeHash(t *testing.T) {
	cases := map[string]string{
		"u32":                "b76f37d33f64f2d9b3234e29034ab4a73ee9da01a61ab139c27f8c841971e469",
		"T::BlockNumber":     "b76f37d33f64f2d9b3234e29034ab4a73ee9da01a61ab139c27f8c841971e469",
		"u128":               "a73c503ad07b8dce07ffc3646a2c7aeacb1280015e3b79887f6a9b11dae120f1",
		"Vec<u8>":            "19bb21e76ad4a4c6ae62ffc49e4711f8bc843e7f32aac152df1387e4d439a8d9",
		"Bytes":              "19bb21e76ad4a4c6ae62ffc49e4711f8bc843e7f32aac152df1387e4d439a8d9",
		"Compact<T::Moment>": "5cedb88b4764d5d98109c40baa94b2fd4eeb71422c20a84b36407ae64c0b1752",
		"(Vec<u8>, Vec<u8>)": "82469c529339b7f4bf0030b4b61666966537c2083f68732d3bf23fc8781b0203",
	}
	for in, want := range cases {
		assert.Equal(t, want, typeHash(in), in)
	}
	assert.Equal(t, []string{"Vec<(u8,u8)>", "[u8;32]", "Option<u32>"}, splitTop("Vec<(u8,u8)>,[u8;32],Option<u32>"))
	assert.NotEqual(t, typeHash("[u8;32]"), typeHash("[u8;16]"))
}

func TestHashes(t *testing.T) {
	c := testChain(t, nil)
	r := c.Hashes(1)

	hash, ok := r.Hash(registry.KindCall, "Balances.transfer", 1)
	require.True(t, ok)
	expected, _ := c.GetCallHash("Balances.transfer")
	assert.Equal(t, expected, hash)

	_, ok = r.Hash(registry.KindStorage, "GrandpaFinality.CurrentSetId", 1)
	assert.True(t, ok)
	assert.Len(t, r.Names(registry.KindConstant), 2)
}

func TestStorageKey(t *testing.T) {
	c := testChain(t, nil)

	key, err := c.StorageKey("System", "Events")
	require.NoError(t, err)
	assert.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef780d41e5e16056765bc8461851072c9d7", key)

	key, err = c.StorageKey("System", "Account", support.MustBytesFromHex(alice))
	require.NoError(t, err)
	assert.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9"+
		"de1e86a9a8c739864cf3cc5ec2bea59fd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d", key)

	hexKey, err := c.StorageKey("System", "Account", alice)
	require.NoError(t, err)
	assert.Equal(t, key, hexKey)

	key, err = c.StorageKey("System", "BlockHash", uint32(0))
	require.NoError(t, err)
	assert.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef7a44704b568d21667356a5a050c118746b4def25cfda6ef3a00000000", key)

	key, err = c.StorageKey("GrandpaFinality", "CurrentSetId")
	require.NoError(t, err)
	assert.Equal(t, "0x2371e21684d2fae99bcb4d579242f74a8a2d09463effcc78a22d75b9cb87dffc", key)
}

func TestStorageKeyErrors(t *testing.T) {
	c := testChain(t, nil)

	_, err := c.StorageKey("System", "Account")
	assert.Error(t, err)

	_, err = c.StorageKey("System", "Unknown")
	assert.True(t, errors.Is(err, ErrUnknownItem))

	_, err = c.StorageKey("System", "BlockHash", 1.5)
	assert.Error(t, err)

	_, err = StorageKey("System", "Events", []string{"Sha3"}, []string{"u32"}, uint32(1))
	assert.True(t, errors.Is(err, ErrUnsupportedHasher))
}

func TestByteVectorKey(t *testing.T) {
	key, err := StorageKey("System", "Events", []string{"Identity"}, []string{"Vec<u8>"}, support.Bytes{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef780d41e5e16056765bc8461851072c9d7"+"0c010203", key)

	key, err = StorageKey("System", "Events", []string{"Identity"}, []string{"[u8; 3]"}, support.Bytes{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef780d41e5e16056765bc8461851072c9d7"+"010203", key)
}

func TestKeyHashers(t *testing.T) {
	data := support.MustBytesFromHex(alice)
	cases := map[string]string{
		"Blake2_128": "de1e86a9a8c739864cf3cc5ec2bea59f",
		"Blake2_256": "2e3fb4c297a84c5cebc0e78257d213d0927ccc7596044c6ba013dd05522aacba",
		"Twox256":    "518366b5b1bc7c99bae0ba710af1ac66ecc0fd2f7c15bbe1eb86dbf45c7899e8",
		"Identity":   alice[2:],
	}
	for hasher, want := range cases {
		out, err := hashKey(hasher, data)
		require.NoError(t, err, hasher)
		assert.Equal(t, want, hex.EncodeToString(out), hasher)
	}

	out, err := hashKey("Twox64Concat", []byte{5, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "3d59c2d52d0bbe890500000000000000", hex.EncodeToString(out))

	out, err = hashKey("Twox128", []byte("System"))
	require.NoError(t, err)
	assert.Equal(t, "26aa394eea5630e07c48ae0c9558cef7", hex.EncodeToString(out))

	out, err = hashKey("Blake2_128Concat", data)
	require.NoError(t, err)
	assert.Equal(t, "de1e86a9a8c739864cf3cc5ec2bea59f"+alice[2:], hex.EncodeToString(out))

	_, err = hashKey("Keccak256", data)
	assert.ErrorIs(t, err, ErrUnsupportedHasher)
}

func TestCompactLength(t *testing.T) {
	cases := map[int]string{
		0:       "00",
		1:       "04",
		63:      "fc",
		64:      "0101",
		16383:   "fdff",
		16384:   "02000100",
		1 << 30: "0300000040",
	}
	for n, want := range cases {
		assert.Equal(t, want, hex.EncodeToString(compactLength(n)), n)
	}
}

func TestGetStorage(t *testing.T) {
	number, err := StorageKey("System", "Number", nil, nil)
	require.NoError(t, err)
	storage := &fakeStorage{values: map[string]string{number: "0x2a000000"}}
	c := testChain(t, storage)

	var out decoded
	require.NoError(t, c.GetStorage(context.Background(), blockHash, "System", "Number", &out))
	assert.Equal(t, decoded{TypeName: "T::BlockNumber", Raw: "0x2a000000"}, out)
	assert.Equal(t, blockHash, storage.blockHash)
}

func TestGetStorageDefault(t *testing.T) {
	c := testChain(t, &fakeStorage{})

	var out decoded
	require.NoError(t, c.GetStorage(context.Background(), blockHash, "GrandpaFinality", "CurrentSetId", &out))
	assert.Equal(t, decoded{TypeName: "SetId", Raw: "0x0000000000000000"}, out)
}

func TestGetStorageOptional(t *testing.T) {
	c := testChain(t, &fakeStorage{})

	out := &decoded{TypeName: "stale"}
	require.NoError(t, c.GetStorage(context.Background(), blockHash, "System", "LastRuntimeUpgrade", &out))
	assert.Nil(t, out)
}

func TestGetStorageErrors(t *testing.T) {
	storage := &fakeStorage{err: errors.New("connection closed")}
	c := testChain(t, storage)

	var out decoded
	err := c.GetStorage(context.Background(), blockHash, "System", "Number", &out)
	assert.EqualError(t, err, "storage System.Number: connection closed")

	err = c.GetStorage(context.Background(), blockHash, "Sudo", "Key", &out)
	assert.True(t, errors.Is(err, ErrUnknownItem))

	storage.err = nil
	c.decode = func(string, []byte) (interface{}, error) {
		return nil, errors.New("bad bytes")
	}
	err = c.GetStorage(context.Background(), blockHash, "System", "Number", &out)
	assert.EqualError(t, err, "storage System.Number: bad bytes")
}

func TestQueryStorage(t *testing.T) {
	first, err := StorageKey("System", "BlockHash", []string{"Twox64Concat"}, []string{"u32"}, uint32(0))
	require.NoError(t, err)
	storage := &fakeStorage{values: map[string]string{first: "0x01"}}
	c := testChain(t, storage)

	var out []decoded
	err = c.QueryStorage(context.Background(), blockHash, "System", "BlockHash", [][]interface{}{{uint32(0)}, {uint32(1)}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "0x01", out[0].Raw)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000000", out[1].Raw)
	assert.Equal(t, "T::Hash", out[1].TypeName)
}

func TestGetConstant(t *testing.T) {
	c := testChain(t, nil)

	var out decoded
	require.NoError(t, c.GetConstant("Balances", "ExistentialDeposit", &out))
	assert.Equal(t, decoded{TypeName: "T::Balance", Raw: "0xf4010000000000000000000000000000"}, out)

	err := c.GetConstant("Balances", "MaxLocks", &out)
	assert.True(t, errors.Is(err, ErrUnknownItem))
}

func TestDecodeCallAndEvent(t *testing.T) {
	c := testChain(t, nil)

	var args struct {
		Dest  string `json:"dest"`
		Value string `json:"value"`
	}
	call := support.Call{ID: "1-0", Name: "Balances.transfer", Args: json.RawMessage(`{"dest":"` + alice + `","value":"5"}`)}
	require.NoError(t, c.DecodeCall(call, &args))
	assert.Equal(t, alice, args.Dest)
	assert.Equal(t, "5", args.Value)

	var fields []string
	event := support.Event{ID: "1-0", Name: "Balances.Transfer", Args: json.RawMessage(`{"from":"x"}`)}
	assert.Error(t, c.DecodeEvent(event, &fields))
}

func TestParseViewErrors(t *testing.T) {
	_, err := parseView([]byte(`{"metadata":{"modules":[]}}`))
	assert.EqualError(t, err, "metadata: no modules")

	_, err = parseView([]byte(`[`))
	assert.Error(t, err)

	view, err := parseView([]byte(`{"metadata":{"modules":[{"name":"System","prefix":"System","storage":[{"name":"Odd","modifier":"Default","type":{"origin":"Unknown"}}]}]}}`))
	require.NoError(t, err)
	_, err = newChain(1, view, nil)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	value := map[string]interface{}{
		"specVersion": 3,
		"Module":      map[string]interface{}{"index": 4, "error": 1},
		"call": map[string]interface{}{
			"call_module": "Balances",
			"call_name":   "transfer",
			"call_args": []interface{}{
				map[string]interface{}{"name": "dest", "type": "LookupSource", "value": alice},
				map[string]interface{}{"name": "value", "type": "Compact<Balance>", "value": "12345678901234567890"},
			},
		},
	}

	out, err := toJSON(value)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"spec_version": 3,
		"Module": {"index": 4, "error": 1},
		"call": {"__kind": "Balances", "value": {"__kind": "transfer", "dest": "`+alice+`", "value": "12345678901234567890"}}
	}`, string(out))
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "spec_version", snakeCase("specVersion"))
	assert.Equal(t, "weight", snakeCase("weight"))
	assert.Equal(t, "ExtrinsicSuccess", snakeCase("ExtrinsicSuccess"))
	assert.Equal(t, "", snakeCase(""))
}

func TestNewExtrinsic(t *testing.T) {
	value := map[string]interface{}{
		"call_module":          "Sudo",
		"call_module_function": "sudo",
		"extrinsic_hash":       "0xaa",
		"signature":            "0x01",
		"params": []interface{}{
			map[string]interface{}{
				"name": "call",
				"type": "Call",
				"value": map[string]interface{}{
					"call_module":   "System",
					"call_function": "suicide",
					"call_args":     []interface{}{},
				},
			},
		},
	}

	extrinsic, err := NewExtrinsic("7-1", value)
	require.NoError(t, err)
	assert.Equal(t, "7-1", extrinsic.Call.ID)
	assert.Equal(t, "Sudo.sudo", extrinsic.Call.Name)
	assert.Equal(t, "0xaa", extrinsic.Hash)
	assert.True(t, extrinsic.Signed)
	assert.JSONEq(t, `{"call":{"__kind":"System","value":{"__kind":"suicide"}}}`, string(extrinsic.Call.Args))
}

func TestNewExtrinsicUnsigned(t *testing.T) {
	extrinsic, err := NewExtrinsic("7-0", map[string]interface{}{
		"call_module":          "Timestamp",
		"call_module_function": "set",
		"params":               []interface{}{map[string]interface{}{"name": "now", "value": 1600000000000}},
	})
	require.NoError(t, err)
	assert.False(t, extrinsic.Signed)
	assert.JSONEq(t, `{"now":1600000000000}`, string(extrinsic.Call.Args))

	_, err = NewExtrinsic("7-0", map[string]interface{}{"call_module": "Timestamp"})
	assert.Error(t, err)
	_, err = NewExtrinsic("7-0", []interface{}{})
	assert.Error(t, err)
}

func TestNewEvent(t *testing.T) {
	transfer, err := NewEvent("5-2", map[string]interface{}{
		"module_id":     "Balances",
		"event_id":      "Transfer",
		"phase":         0,
		"extrinsic_idx": 1,
		"params": []interface{}{
			map[string]interface{}{"type": "AccountId", "value": alice},
			map[string]interface{}{"type": "AccountId", "value": alice},
			map[string]interface{}{"type": "Balance", "value": "100"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Balances.Transfer", transfer.Name)
	assert.JSONEq(t, `["`+alice+`","`+alice+`","100"]`, string(transfer.Args))
	require.NotNil(t, transfer.ExtrinsicIndex)
	assert.Equal(t, 1, *transfer.ExtrinsicIndex)

	success, err := NewEvent("5-3", map[string]interface{}{
		"module_id": "System",
		"event_id":  "ExtrinsicSuccess",
		"params": []interface{}{
			map[string]interface{}{"type": "DispatchInfo", "value": map[string]interface{}{"weight": 10, "class": "Normal", "paysFee": "Yes"}},
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"weight":10,"class":"Normal","pays_fee":"Yes"}`, string(success.Args))
	assert.Nil(t, success.ExtrinsicIndex)

	finalization, err := NewEvent("5-6", map[string]interface{}{
		"module_id":     "Balances",
		"event_id":      "Deposit",
		"phase":         1,
		"extrinsic_idx": 0,
	})
	require.NoError(t, err)
	assert.Nil(t, finalization.ExtrinsicIndex)

	paused, err := NewEvent("5-4", map[string]interface{}{"module_id": "Grandpa", "event_id": "Paused"})
	require.NoError(t, err)
	assert.Equal(t, "null", string(paused.Args))

	_, err = NewEvent("5-5", map[string]interface{}{"event_id": "Paused"})
	assert.Error(t, err)
}

func TestSS58(t *testing.T) {
	key := support.MustBytesFromHex(alice)

	address, err := SS58(key, 42)
	require.NoError(t, err)
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", address)

	address, err = SS58(key, 0)
	require.NoError(t, err)
	assert.Equal(t, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", address)

	_, err = SS58(key[:20], 42)
	assert.Error(t, err)
	_, err = SS58(key, 20000)
	assert.Error(t, err)
}

type fakeMetadata struct {
	calls int
	err   error
}

func (f *fakeMetadata) GetMetadata(context.Context, string) (string, error) {
	f.calls++
	return "", f.err
}

func TestCache(t *testing.T) {
	source := &fakeMetadata{err: errors.New("node unavailable")}
	cache, err := NewCache(2, source, nil)
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), 9, blockHash)
	assert.EqualError(t, err, "metadata of spec version 9: node unavailable")
	assert.Equal(t, 1, source.calls)

	c := testChain(t, nil)
	cache.Put(c)
	got, err := cache.Get(context.Background(), 9, blockHash)
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.Equal(t, 1, source.calls)

	_, err = NewCache(0, source, nil)
	assert.Error(t, err)
}
