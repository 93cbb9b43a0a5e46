package v1

import (
	"encoding/json"
	"testing"

	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alice = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func TestDispatchError(t *testing.T) {
	var moduleErr DispatchError
	require.NoError(t, json.Unmarshal([]byte(`{"Module":{"index":5,"error":2}}`), &moduleErr))
	assert.Equal(t, DispatchErrorKindModule, moduleErr.Kind)
	require.NotNil(t, moduleErr.Module)
	assert.Equal(t, DispatchErrorModule{Index: 5, Error: 2}, *moduleErr.Module)

	var badOrigin DispatchError
	require.NoError(t, json.Unmarshal([]byte(`"BadOrigin"`), &badOrigin))
	assert.Equal(t, DispatchErrorKindBadOrigin, badOrigin.Kind)
	assert.Nil(t, badOrigin.Module)

	var token DispatchError
	require.NoError(t, json.Unmarshal([]byte(`{"__kind":"Token","value":"NoFunds"}`), &token))
	require.NotNil(t, token.Token)
	assert.Equal(t, "NoFunds", token.Token.Kind)

	var unknown DispatchError
	err := json.Unmarshal([]byte(`"Exhausted"`), &unknown)
	assert.True(t, errors.Is(err, support.ErrUnknownVariant))
}

func TestLookupSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  string
	}{
		{"plain account id", `"` + alice + `"`, LookupSourceKindId},
		{"tagged id", `{"__kind":"Id","value":"` + alice + `"}`, LookupSourceKindId},
		{"multi address", `{"Address32":"` + alice + `"}`, LookupSourceKindAddress32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l LookupSource
			require.NoError(t, json.Unmarshal([]byte(tt.input), &l))
			assert.Equal(t, tt.kind, l.Kind)
			assert.Equal(t, alice, l.Value.Hex())
		})
	}

	var bare LookupSource
	assert.Error(t, json.Unmarshal([]byte(`"`+alice[2:]+`"`), &bare))

	var index LookupSource
	require.NoError(t, json.Unmarshal([]byte(`{"Index":12}`), &index))
	assert.Equal(t, LookupSourceKindIndex, index.Kind)
	assert.Equal(t, uint32(12), index.Index)

	data, err := json.Marshal(index)
	require.NoError(t, err)
	assert.JSONEq(t, `{"__kind":"Index","value":12}`, string(data))
}

func TestDispatchInfo(t *testing.T) {
	var info DispatchInfo
	require.NoError(t, json.Unmarshal([]byte(`{"weight":125000000,"class":"Mandatory","pays_fee":"Yes"}`), &info))
	assert.Equal(t, uint64(125000000), info.Weight)
	assert.Equal(t, DispatchClassKindMandatory, info.Class.Kind)
	assert.Equal(t, PaysKindYes, info.PaysFee.Kind)

	err := json.Unmarshal([]byte(`{"weight":1,"class":"Urgent","pays_fee":"Yes"}`), &info)
	assert.True(t, errors.Is(err, support.ErrUnknownVariant))
}

func TestCallDecodesNestedSudo(t *testing.T) {
	input := `{
		"__kind": "Sudo",
		"value": {
			"__kind": "sudo",
			"call": {
				"__kind": "Balances",
				"value": {"__kind": "set_balance", "who": "` + alice + `", "new_free": "1000", "new_reserved": 0}
			}
		}
	}`

	var call Call
	require.NoError(t, json.Unmarshal([]byte(input), &call))
	assert.Equal(t, "Sudo.sudo", call.Name())
	require.NotNil(t, call.Sudo)
	require.NotNil(t, call.Sudo.Sudo)

	inner := call.Sudo.Sudo.Call
	assert.Equal(t, "Balances.set_balance", inner.Name())
	require.NotNil(t, inner.Balances.SetBalance)
	assert.Equal(t, "1000", inner.Balances.SetBalance.NewFree.String())
	assert.True(t, inner.Balances.SetBalance.NewReserved.IsZero())

	data, err := json.Marshal(call)
	require.NoError(t, err)
	var again Call
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, call, again)
}

func TestCallWithoutArgs(t *testing.T) {
	var call Call
	require.NoError(t, json.Unmarshal([]byte(`{"__kind":"System","value":{"__kind":"suicide"}}`), &call))
	assert.Equal(t, "System.suicide", call.Name())

	err := json.Unmarshal([]byte(`{"__kind":"RandomnessCollectiveFlip","value":{"__kind":"anything"}}`), &call)
	assert.True(t, errors.Is(err, support.ErrUnknownVariant))

	err = json.Unmarshal([]byte(`{"__kind":"Balances","value":{"__kind":"transfer"}}`), &call)
	assert.Error(t, err)
}

func TestEventRecord(t *testing.T) {
	input := `[
		{"phase":{"ApplyExtrinsic":0},"event":{"__kind":"System","value":{"__kind":"ExtrinsicSuccess","value":{"weight":10,"class":"Mandatory","pays_fee":"Yes"}}},"topics":[]},
		{"phase":{"ApplyExtrinsic":1},"event":{"__kind":"Balances","value":{"__kind":"Transfer","value":["` + alice + `","` + alice + `","42"]}},"topics":[]},
		{"phase":{"ApplyExtrinsic":1},"event":{"__kind":"System","value":{"__kind":"ExtrinsicFailed","value":[{"Module":{"index":4,"error":3}},{"weight":1,"class":"Normal","pays_fee":"No"}]}},"topics":[]},
		{"phase":"Finalization","event":{"__kind":"Grandpa","value":{"__kind":"Paused"}},"topics":[]}
	]`

	var records []EventRecord
	require.NoError(t, json.Unmarshal([]byte(input), &records))
	require.Len(t, records, 4)

	assert.Equal(t, "System.ExtrinsicSuccess", records[0].Event.Name())
	assert.Equal(t, uint64(10), records[0].Event.System.ExtrinsicSuccess.Weight)

	transfer := records[1].Event.Balances.Transfer
	require.NotNil(t, transfer)
	assert.Equal(t, alice, transfer.From.Hex())
	assert.Equal(t, "42", transfer.Amount.String())
	assert.Equal(t, uint32(1), records[1].Phase.ApplyExtrinsic)

	failed := records[2].Event.System.ExtrinsicFailed
	require.NotNil(t, failed)
	assert.Equal(t, `Module({"index":4,"error":3})`, failed.Error.String())
	assert.Equal(t, PaysKindNo, failed.Info.PaysFee.Kind)

	assert.Equal(t, PhaseKindFinalization, records[3].Phase.Kind)
	assert.Equal(t, "Grandpa.Paused", records[3].Event.Name())
}

func TestSudoEvents(t *testing.T) {
	var sudid SudoEvent
	require.NoError(t, json.Unmarshal([]byte(`{"__kind":"Sudid","value":{"Err":"BadOrigin"}}`), &sudid))
	require.NotNil(t, sudid.Sudid)
	assert.False(t, sudid.Sudid.IsOk())
	assert.Equal(t, DispatchErrorKindBadOrigin, sudid.Sudid.Err.Kind)

	var asDone SudoEvent
	require.NoError(t, json.Unmarshal([]byte(`{"__kind":"SudoAsDone","value":true}`), &asDone))
	assert.True(t, asDone.SudoAsDone)
}

func TestStoredState(t *testing.T) {
	var live StoredState
	require.NoError(t, json.Unmarshal([]byte(`"Live"`), &live))
	assert.Equal(t, StoredStateKindLive, live.Kind)

	var pending StoredState
	require.NoError(t, json.Unmarshal([]byte(`{"PendingPause":{"scheduled_at":10,"delay":5}}`), &pending))
	require.NotNil(t, pending.PendingPause)
	assert.Equal(t, PendingPause{ScheduledAt: 10, Delay: 5}, *pending.PendingPause)
}

func TestDigest(t *testing.T) {
	input := `{"logs":[
		{"PreRuntime":["0x61757261","0x0100000000000000"]},
		{"Seal":["0x61757261","0xcafe"]},
		{"Other":"0x01"}
	]}`

	var digest DigestOf
	require.NoError(t, json.Unmarshal([]byte(input), &digest))
	require.Len(t, digest.Logs, 3)
	require.NotNil(t, digest.Logs[0].Engine)
	assert.Equal(t, "aura", string(digest.Logs[0].Engine.EngineId))
	assert.Equal(t, support.Bytes{0xca, 0xfe}, digest.Logs[1].Engine.Data)
	assert.Equal(t, support.Bytes{0x01}, digest.Logs[2].Bytes)
}

func TestVerificationKey(t *testing.T) {
	var vk VerificationKey
	require.NoError(t, json.Unmarshal([]byte(`["0x0102", "5000"]`), &vk))
	assert.Equal(t, support.Bytes{1, 2}, vk.Key)
	assert.Equal(t, "5000", vk.Deposit.String())
}
