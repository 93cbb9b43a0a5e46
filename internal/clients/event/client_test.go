package event

import (
	"context"
	"encoding/json"
	"testing"

	"go-zeropool-dictionary/internal/chain/chaintest"
	"go-zeropool-dictionary/internal/models"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const failedArgs = `[{"Module":{"index":4,"error":3}},{"weight":1,"class":"Normal","pays_fee":"No"}]`

type fakeStorage struct {
	values map[string]string
	err    error
}

func (f fakeStorage) GetStorage(_ context.Context, key, blockHash string) (string, error) {
	return f.values[key+"@"+blockHash], f.err
}

func (f fakeStorage) QueryStorageAt(context.Context, []string, string) ([]string, error) {
	return nil, errors.New("not used")
}

func index(i int) *int {
	return &i
}

func testChain() *chaintest.Chain {
	c := chaintest.New()
	c.Events[7] = []support.Event{
		{ID: "7-0", Name: "System.ExtrinsicSuccess", Args: json.RawMessage(`{"weight":10,"class":"Mandatory","pays_fee":"Yes"}`), ExtrinsicIndex: index(0)},
		{ID: "7-1", Name: "Balances.Transfer", ExtrinsicIndex: index(1)},
		{ID: "7-2", Name: "System.ExtrinsicFailed", Args: json.RawMessage(failedArgs), ExtrinsicIndex: index(1)},
		{ID: "7-3", Name: "Grandpa.Paused"},
	}
	return c
}

func TestProcessBlock(t *testing.T) {
	storage := fakeStorage{values: map[string]string{"System.Events@0x07": "0x00"}}
	client := NewEventClient(storage)

	rows, outcomes, err := client.ProcessBlock(context.Background(), testChain(), 7, "0x07", 2)
	require.NoError(t, err)

	assert.Equal(t, []models.Event{
		{Id: "7-0", Module: "system", Event: "ExtrinsicSuccess", BlockHeight: 7},
		{Id: "7-1", Module: "balances", Event: "Transfer", BlockHeight: 7},
		{Id: "7-2", Module: "system", Event: "ExtrinsicFailed", BlockHeight: 7},
		{Id: "7-3", Module: "grandpa", Event: "Paused", BlockHeight: 7},
	}, rows)
	assert.Equal(t, Outcomes{0: true, 1: false}, outcomes)
}

func TestProcessBlockWithoutEvents(t *testing.T) {
	client := NewEventClient(fakeStorage{})

	rows, outcomes, err := client.ProcessBlock(context.Background(), testChain(), 7, "0x07", 2)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, outcomes)
}

func TestProcessBlockStorageFailure(t *testing.T) {
	client := NewEventClient(fakeStorage{err: errors.New("connection closed")})

	_, _, err := client.ProcessBlock(context.Background(), testChain(), 7, "0x07", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch events for block 7: connection closed")
}

func TestProcessBlockIgnoresUnknownExtrinsic(t *testing.T) {
	storage := fakeStorage{values: map[string]string{"System.Events@0x07": "0x00"}}

	rows, outcomes, err := NewEventClient(storage).ProcessBlock(context.Background(), testChain(), 7, "0x07", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, Outcomes{0: true}, outcomes)
}

func TestFailureReason(t *testing.T) {
	ctx := support.WithEvent(testChain(), support.Event{Name: "System.ExtrinsicFailed", Args: json.RawMessage(failedArgs)})

	reason, err := failureReason(ctx)
	require.NoError(t, err)
	assert.Equal(t, `Module({"index":4,"error":3})`, reason)
}

func TestFailureReasonChangedLayout(t *testing.T) {
	c := testChain()
	c.Changed["System.ExtrinsicFailed"] = true

	reason, err := failureReason(support.WithEvent(c, support.Event{Name: "System.ExtrinsicFailed"}))
	require.NoError(t, err)
	assert.Empty(t, reason)

	success, ok := outcome(support.WithEvent(c, support.Event{Name: "System.ExtrinsicFailed"}), "7-1")
	assert.True(t, ok)
	assert.False(t, success)
}

func TestOutcomeOfOtherEvents(t *testing.T) {
	_, ok := outcome(support.WithEvent(testChain(), support.Event{Name: "Balances.Transfer"}), "7-1")
	assert.False(t, ok)
}
