package specversion

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go-zeropool-dictionary/internal/chain/chaintest"
	"go-zeropool-dictionary/internal/connection"
	"go-zeropool-dictionary/internal/models"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upgrade struct {
	first, version int
}

// fakeVersions serves a chain whose spec version changes at the given heights
type fakeVersions struct {
	mu       sync.Mutex
	upgrades []upgrade
	calls    int
	failAt   int
}

func (f *fakeVersions) GetBlockHash(_ context.Context, blockHeight int) (string, error) {
	return fmt.Sprintf("0x%064x", blockHeight), nil
}

func (f *fakeVersions) GetRuntimeVersion(_ context.Context, blockHash string) (connection.RuntimeVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	var height int
	if _, err := fmt.Sscanf(blockHash, "0x%x", &height); err != nil {
		return connection.RuntimeVersion{}, err
	}
	if f.failAt != 0 && height == f.failAt {
		return connection.RuntimeVersion{}, errors.New("node unavailable")
	}
	version := 0
	for _, u := range f.upgrades {
		if height >= u.first {
			version = u.version
		}
	}
	return connection.RuntimeVersion{SpecName: "zeropool", SpecVersion: version}, nil
}

type fakeRepo struct {
	saved    SpecVersionRangeList
	inserted []models.SpecVersion
}

func (r *fakeRepo) getAllSpecVersionData(context.Context) (SpecVersionRangeList, error) {
	return append(SpecVersionRangeList{}, r.saved...), nil
}

func (r *fakeRepo) insertSpecVersionsList(_ context.Context, specVersions []models.SpecVersion) error {
	r.inserted = append(r.inserted, specVersions...)
	return nil
}

func noChain(context.Context, int, string) (support.Chain, error) {
	return nil, errors.New("no metadata")
}

func testVersions() *fakeVersions {
	return &fakeVersions{upgrades: []upgrade{{0, 1}, {100, 2}, {250, 5}}}
}

func TestRunFromScratch(t *testing.T) {
	versions := testVersions()
	repo := &fakeRepo{}
	client := newSpecVersionClient(0, versions, noChain, repo)

	list, err := client.Run(context.Background(), 300)
	require.NoError(t, err)

	assert.Equal(t, SpecVersionRangeList{
		{SpecVersion: 1, First: 0, Last: 99},
		{SpecVersion: 2, First: 100, Last: 249},
		{SpecVersion: 5, First: 250, Last: 300},
	}, list)
	assert.Equal(t, []models.SpecVersion{
		{Id: "1", BlockHeight: 0},
		{Id: "2", BlockHeight: 100},
		{Id: "5", BlockHeight: 250},
	}, repo.inserted)
	assert.Equal(t, "zeropool", client.SpecName())
	// binary search, not a block by block scan
	assert.Less(t, versions.calls, 60)
}

func TestRunRecoversSavedVersions(t *testing.T) {
	repo := &fakeRepo{saved: SpecVersionRangeList{
		{SpecVersion: 1, First: 0},
		{SpecVersion: 2, First: 100},
	}}
	client := newSpecVersionClient(0, testVersions(), noChain, repo)

	list, err := client.Run(context.Background(), 300)
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, SpecVersionRange{SpecVersion: 5, First: 250, Last: 300}, list[2])
	assert.Equal(t, 249, list[1].Last)
	assert.Equal(t, []models.SpecVersion{{Id: "5", BlockHeight: 250}}, repo.inserted)
}

func TestUpdate(t *testing.T) {
	versions := testVersions()
	repo := &fakeRepo{}
	client := newSpecVersionClient(0, versions, noChain, repo)

	_, err := client.Run(context.Background(), 300)
	require.NoError(t, err)

	versions.mu.Lock()
	versions.upgrades = append(versions.upgrades, upgrade{350, 6})
	versions.mu.Unlock()

	list, err := client.Update(context.Background(), 400)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, SpecVersionRange{SpecVersion: 5, First: 250, Last: 349}, list[2])
	assert.Equal(t, SpecVersionRange{SpecVersion: 6, First: 350, Last: 400}, list[3])
	assert.Equal(t, models.SpecVersion{Id: "6", BlockHeight: 350}, repo.inserted[len(repo.inserted)-1])

	specRange, err := client.SpecVersionForBlock(120)
	require.NoError(t, err)
	assert.Equal(t, 2, specRange.SpecVersion)

	_, err = client.SpecVersionForBlock(401)
	assert.EqualError(t, err, "[SpecVersionRangeList] No spec version range contains block 401")
}

func TestUpdateBeforeRun(t *testing.T) {
	client := newSpecVersionClient(0, testVersions(), noChain, &fakeRepo{})
	_, err := client.Update(context.Background(), 10)
	assert.Error(t, err)
}

func TestRunFailsWhenVersionUnavailable(t *testing.T) {
	versions := testVersions()
	versions.failAt = 250
	client := newSpecVersionClient(0, versions, noChain, &fakeRepo{})

	_, err := client.Run(context.Background(), 300)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node unavailable")
}

func TestRunReadsRuntimeUpgrade(t *testing.T) {
	c := chaintest.New()
	c.Storage["System.LastRuntimeUpgrade"] = `{"spec_version": 2, "spec_name": "zeropool"}`

	var looked []int
	lookup := func(_ context.Context, specVersion int, _ string) (support.Chain, error) {
		looked = append(looked, specVersion)
		return c, nil
	}
	client := newSpecVersionClient(0, testVersions(), lookup, &fakeRepo{})

	_, err := client.Run(context.Background(), 300)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, looked)
	assert.Equal(t, 2, c.StorageReads)
}

func TestFillLast(t *testing.T) {
	list := SpecVersionRangeList{{SpecVersion: 1, First: 0}, {SpecVersion: 3, First: 10}}
	list.FillLast(20)
	assert.Equal(t, SpecVersionRangeList{
		{SpecVersion: 1, First: 0, Last: 9},
		{SpecVersion: 3, First: 10, Last: 20},
	}, list)

	SpecVersionRangeList{}.FillLast(20)
}

func TestRangeFromRow(t *testing.T) {
	specRange, err := rangeFromRow("12", "1500")
	require.NoError(t, err)
	assert.Equal(t, SpecVersionRange{SpecVersion: 12, First: 1500}, specRange)

	_, err = rangeFromRow("v12", "1500")
	assert.Error(t, err)
}
