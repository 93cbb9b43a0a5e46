package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/chain/chaintest"
	"go-zeropool-dictionary/internal/clients/event"
	"go-zeropool-dictionary/internal/clients/extrinsic"
	"go-zeropool-dictionary/internal/clients/specversion"
	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlocks struct {
	mu        sync.Mutex
	finalized []int
	calls     int
	cancel    context.CancelFunc
	failAt    int
}

func (f *fakeBlocks) GetBlockHash(_ context.Context, blockHeight int) (string, error) {
	return fmt.Sprintf("0x%02x", blockHeight), nil
}

func (f *fakeBlocks) GetBlockBody(_ context.Context, blockHeight int, _ string) ([]string, error) {
	if f.failAt != 0 && blockHeight == f.failAt {
		return nil, errors.New("missing body")
	}
	return []string{"0x01", "0x02"}, nil
}

// GetFinalizedHeight walks through finalized, then cancels the run
func (f *fakeBlocks) GetFinalizedHeight(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.finalized) {
		f.cancel()
		return f.finalized[len(f.finalized)-1], nil
	}
	height := f.finalized[f.calls]
	f.calls++
	return height, nil
}

type fakeSpecVersions struct {
	updates []int
}

func (f *fakeSpecVersions) Update(_ context.Context, lastBlock int) (specversion.SpecVersionRangeList, error) {
	f.updates = append(f.updates, lastBlock)
	return specversion.SpecVersionRangeList{{SpecVersion: 1, First: 0, Last: lastBlock}}, nil
}

func (f *fakeSpecVersions) SpecVersionForBlock(blockHeight int) (specversion.SpecVersionRange, error) {
	return specversion.SpecVersionRange{SpecVersion: 1, First: 0, Last: blockHeight}, nil
}

func (f *fakeSpecVersions) SpecName() string {
	return "zeropool"
}

type fakeWriter struct {
	batches []postgres.Batch
	err     error
}

func (f *fakeWriter) WriteBatch(ctx context.Context, batch postgres.Batch, after ...postgres.TxFunc) error {
	if f.err != nil {
		return f.err
	}
	for _, fn := range after {
		if err := fn(ctx, nil); err != nil {
			return err
		}
	}
	f.batches = append(f.batches, batch)
	return nil
}

type fakeProgress struct {
	last     int
	progress [][2]int
	targets  []int
	specName string
	healthy  *bool
}

func (f *fakeProgress) LastProcessedHeight(context.Context) (int, error) {
	return f.last, nil
}

func (f *fakeProgress) ProgressTx(lastHeight, target int) postgres.TxFunc {
	return func(context.Context, pgx.Tx) error {
		f.progress = append(f.progress, [2]int{lastHeight, target})
		return nil
	}
}

func (f *fakeProgress) SetTargetHeight(_ context.Context, height int) error {
	f.targets = append(f.targets, height)
	return nil
}

func (f *fakeProgress) SetSpecName(_ context.Context, name string) error {
	f.specName = name
	return nil
}

func (f *fakeProgress) SetIndexerHealthy(_ context.Context, healthy bool) error {
	f.healthy = &healthy
	return nil
}

type fakeStorage struct{}

func (fakeStorage) GetStorage(context.Context, string, string) (string, error) {
	return "0x00", nil
}

func (fakeStorage) QueryStorageAt(context.Context, []string, string) ([]string, error) {
	return nil, nil
}

func index(i int) *int {
	return &i
}

func testChain() *chaintest.Chain {
	c := chaintest.New()
	c.Extrinsics["0x01"] = chain.Extrinsic{Call: support.Call{Name: "Timestamp.set", Args: json.RawMessage(`{"now":1}`)}}
	c.Extrinsics["0x02"] = chain.Extrinsic{Call: support.Call{Name: "System.remark"}, Hash: "0xaa", Signed: true}
	for height := 0; height <= 10; height++ {
		c.Events[height] = []support.Event{
			{ID: fmt.Sprintf("%d-0", height), Name: "System.ExtrinsicSuccess", ExtrinsicIndex: index(0)},
			{ID: fmt.Sprintf("%d-1", height), Name: "System.ExtrinsicSuccess", ExtrinsicIndex: index(1)},
		}
	}
	c.Events[3][1] = support.Event{ID: "3-1", Name: "System.ExtrinsicFailed", Args: json.RawMessage(`[{"Module":{"index":4,"error":3}},{"weight":1,"class":"Normal","pays_fee":"No"}]`), ExtrinsicIndex: index(1)}
	return c
}

type fixture struct {
	ctx      context.Context
	blocks   *fakeBlocks
	specs    *fakeSpecVersions
	writer   *fakeWriter
	progress *fakeProgress
	params   Params
}

func newFixture(finalized ...int) *fixture {
	ctx, cancel := context.WithCancel(context.Background())
	c := testChain()
	f := &fixture{
		ctx:      ctx,
		blocks:   &fakeBlocks{finalized: finalized, cancel: cancel},
		specs:    &fakeSpecVersions{},
		writer:   &fakeWriter{},
		progress: &fakeProgress{last: -1},
	}
	f.params = Params{
		BatchSize:    2,
		Workers:      3,
		PollInterval: time.Millisecond,
		Blocks:       f.blocks,
		Chains: func(context.Context, int, string) (BlockDecoder, error) {
			return c, nil
		},
		SpecVersions: f.specs,
		Extrinsics:   extrinsic.NewExtrinsicClient(42),
		Events:       event.NewEventClient(fakeStorage{}),
		Writer:       f.writer,
		Progress:     f.progress,
	}
	return f
}

func TestRun(t *testing.T) {
	f := newFixture(4, 6)

	err := NewOrchestrator(f.params).Run(f.ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, f.writer.batches, 4)
	assert.Equal(t, [][2]int{{1, 4}, {3, 4}, {4, 4}, {6, 6}}, f.progress.progress)
	assert.Equal(t, []int{4, 6}, f.progress.targets)
	assert.Equal(t, []int{4, 6}, f.specs.updates)
	assert.Equal(t, "zeropool", f.progress.specName)
	assert.Nil(t, f.progress.healthy)

	first := f.writer.batches[0]
	require.Len(t, first.Extrinsics, 4)
	assert.Equal(t, "0-0", first.Extrinsics[0].Id)
	assert.Equal(t, "1-1", first.Extrinsics[3].Id)
	assert.Len(t, first.Events, 4)

	second := f.writer.batches[1]
	assert.True(t, second.Extrinsics[1].Success)
	assert.Equal(t, "3-1", second.Extrinsics[3].Id)
	assert.False(t, second.Extrinsics[3].Success)
	assert.Equal(t, "remark", second.Extrinsics[3].Call)
}

func TestRunResumes(t *testing.T) {
	f := newFixture(6)
	f.progress.last = 3

	err := NewOrchestrator(f.params).Run(f.ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, f.writer.batches, 2)
	assert.Equal(t, "4-0", f.writer.batches[0].Extrinsics[0].Id)
	assert.Equal(t, [][2]int{{5, 6}, {6, 6}}, f.progress.progress)
}

func TestRunFallbackAndStartBlock(t *testing.T) {
	f := newFixture(5)
	f.params.StartBlock = 2
	f.params.Fallback = func(context.Context) (int, error) {
		return 0, nil
	}

	err := NewOrchestrator(f.params).Run(f.ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.NotEmpty(t, f.writer.batches)
	assert.Equal(t, "2-0", f.writer.batches[0].Extrinsics[0].Id)
}

func TestRunFailsOnBrokenBlock(t *testing.T) {
	f := newFixture(4)
	f.blocks.failAt = 2

	err := NewOrchestrator(f.params).Run(f.ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to process block 2")
	assert.Contains(t, err.Error(), "missing body")

	require.Len(t, f.writer.batches, 1)
	require.NotNil(t, f.progress.healthy)
	assert.False(t, *f.progress.healthy)
}

func TestRunFailsOnWrite(t *testing.T) {
	f := newFixture(4)
	f.writer.err = errors.New("copy failed")

	err := NewOrchestrator(f.params).Run(f.ctx)
	assert.EqualError(t, err, "copy failed")
	assert.Empty(t, f.progress.progress)
}
