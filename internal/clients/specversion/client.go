package specversion

import (
	"context"
	"strconv"
	"sync"

	"go-zeropool-dictionary/internal/connection"
	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/models"
	"go-zeropool-dictionary/internal/types"
	"go-zeropool-dictionary/internal/types/support"
)

type (
	// RuntimeVersionGetter resolves the runtime version active at a block height
	RuntimeVersionGetter interface {
		GetBlockHash(ctx context.Context, blockHeight int) (string, error)
		GetRuntimeVersion(ctx context.Context, blockHash string) (connection.RuntimeVersion, error)
	}

	// ChainLookup returns the chain of a spec version. blockHash belongs to that version.
	ChainLookup func(ctx context.Context, specVersion int, blockHash string) (support.Chain, error)

	SpecVersionClient struct {
		sync.RWMutex
		startBlock int
		versions   RuntimeVersionGetter
		chains     ChainLookup
		repo       specVersionRepo
		specList   SpecVersionRangeList
		specName   string
	}
)

func NewSpecVersionClient(
	startBlock int,
	versions RuntimeVersionGetter,
	chains ChainLookup,
	pgClient *postgres.PostgresClient,
) *SpecVersionClient {
	return newSpecVersionClient(startBlock, versions, chains, specvRepoClient{pgClient})
}

func newSpecVersionClient(startBlock int, versions RuntimeVersionGetter, chains ChainLookup, repo specVersionRepo) *SpecVersionClient {
	return &SpecVersionClient{
		startBlock: startBlock,
		versions:   versions,
		chains:     chains,
		repo:       repo,
	}
}

// Run recovers the spec versions saved by previous runs and finds the ranges
// of every later spec version up to lastBlock
func (specVClient *SpecVersionClient) Run(ctx context.Context, lastBlock int) (SpecVersionRangeList, error) {
	saved, err := specVClient.repo.getAllSpecVersionData(ctx)
	if err != nil {
		return nil, err
	}

	specVClient.Lock()
	defer specVClient.Unlock()

	if len(saved) == 0 {
		messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.SPEC_VERSION_NO_PREVIOUS_WORK).ConsoleLog()
		first, err := specVClient.getSpecVersion(ctx, specVClient.startBlock)
		if err != nil {
			return nil, err
		}
		saved = SpecVersionRangeList{{SpecVersion: first, First: specVClient.startBlock}}
		row, err := models.NewSpecVersion(strconv.Itoa(first), int64(specVClient.startBlock))
		if err != nil {
			return nil, err
		}
		if err := specVClient.repo.insertSpecVersionsList(ctx, []models.SpecVersion{row}); err != nil {
			return nil, err
		}
	} else {
		messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.SPEC_VERSION_RECOVERED).ConsoleLog()
	}

	specVClient.specList = saved
	if err := specVClient.extend(ctx, lastBlock); err != nil {
		return nil, err
	}
	return specVClient.rangesCopy(), nil
}

// Update extends the known spec version ranges up to lastBlock
func (specVClient *SpecVersionClient) Update(ctx context.Context, lastBlock int) (SpecVersionRangeList, error) {
	specVClient.Lock()
	defer specVClient.Unlock()

	if len(specVClient.specList) == 0 {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(specVClient.Update),
			nil,
			messages.SPEC_VERSION_WRONG_BLOCK,
			lastBlock,
		)
	}
	if err := specVClient.extend(ctx, lastBlock); err != nil {
		return nil, err
	}
	return specVClient.rangesCopy(), nil
}

// SpecVersionForBlock returns the spec version range containing blockHeight
func (specVClient *SpecVersionClient) SpecVersionForBlock(blockHeight int) (SpecVersionRange, error) {
	specVClient.RLock()
	defer specVClient.RUnlock()

	specRange, err := specVClient.specList.GetSpecVersionForBlock(blockHeight)
	if err != nil {
		return SpecVersionRange{}, err
	}
	return *specRange, nil
}

// SpecName returns the runtime name of the last spec version retrieved
func (specVClient *SpecVersionClient) SpecName() string {
	specVClient.RLock()
	defer specVClient.RUnlock()
	return specVClient.specName
}

// extend searches the ranges following the last known one. The caller holds the lock.
func (specVClient *SpecVersionClient) extend(ctx context.Context, lastBlock int) error {
	current := specVClient.specList[len(specVClient.specList)-1]
	if current.Last == lastBlock && current.Last != 0 {
		messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.SPEC_VERSION_UP_TO_DATE).ConsoleLog()
		return nil
	}

	var discovered []models.SpecVersion
	start := current.First
	if current.Last > start {
		start = current.Last
	}
	for {
		last, err := specVClient.getLastBlockForSpecVersion(ctx, current.SpecVersion, start, lastBlock)
		if err != nil {
			return err
		}
		messages.NewDictionaryMessage(
			messages.LOG_LEVEL_INFO,
			"",
			nil,
			messages.SPEC_VERSION_RETRIEVED,
			current.SpecVersion,
			last,
		).ConsoleLog()
		if last >= lastBlock {
			break
		}

		start = last + 1
		next, err := specVClient.getSpecVersion(ctx, start)
		if err != nil {
			return err
		}
		row, err := models.NewSpecVersion(strconv.Itoa(next), int64(start))
		if err != nil {
			return err
		}
		discovered = append(discovered, row)
		current = SpecVersionRange{SpecVersion: next, First: start}
		specVClient.specList = append(specVClient.specList, current)
		specVClient.logUpgrade(ctx, current)
	}

	if err := specVClient.repo.insertSpecVersionsList(ctx, discovered); err != nil {
		return err
	}
	specVClient.specList.FillLast(lastBlock)
	return nil
}

// logUpgrade reports the runtime upgrade recorded by the chain at the first
// block of a spec version. The record is informative, failures are only logged.
func (specVClient *SpecVersionClient) logUpgrade(ctx context.Context, specRange SpecVersionRange) {
	warn := func(err error) {
		messages.NewDictionaryMessage(
			messages.LOG_LEVEL_WARNING,
			messages.GetComponent(specVClient.logUpgrade),
			err,
			messages.SPEC_VERSION_FAILED_TO_GET,
			specRange.First,
		).ConsoleLog()
	}

	hash, err := specVClient.versions.GetBlockHash(ctx, specRange.First)
	if err != nil {
		warn(err)
		return
	}
	chain, err := specVClient.chains(ctx, specRange.SpecVersion, hash)
	if err != nil {
		warn(err)
		return
	}

	upgrade := types.NewSystemLastRuntimeUpgradeStorage(support.WithBlock(chain, support.Block{Hash: hash, Height: specRange.First}))
	if !upgrade.IsV1() {
		return
	}
	info, err := upgrade.GetAsV1(ctx)
	if err != nil {
		warn(err)
		return
	}
	if info == nil {
		return
	}
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.SPEC_VERSION_UPGRADE,
		info.SpecName,
		info.SpecVersion,
		specRange.First,
	).ConsoleLog()
}

// getSpecVersion retrieves the spec version of a block height
func (specVClient *SpecVersionClient) getSpecVersion(ctx context.Context, height int) (int, error) {
	hash, err := specVClient.versions.GetBlockHash(ctx, height)
	if err != nil {
		return -1, err
	}
	version, err := specVClient.versions.GetRuntimeVersion(ctx, hash)
	if err != nil {
		return -1, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(specVClient.getSpecVersion),
			err,
			messages.SPEC_VERSION_FAILED_TO_GET,
			height,
		)
	}
	if version.SpecName != "" {
		specVClient.specName = version.SpecName
	}
	return version.SpecVersion, nil
}

// getLastBlockForSpecVersion uses binary search to look between start and end
// block heights for the last block of a spec version. The spec version of start
// must be specVersion and spec versions never decrease with the height.
func (specVClient *SpecVersionClient) getLastBlockForSpecVersion(ctx context.Context, specVersion, start, end int) (int, error) {
	lo, hi := start, end
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		spec, err := specVClient.getSpecVersion(ctx, mid)
		if err != nil {
			return -1, err
		}
		if spec == specVersion {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

func (specVClient *SpecVersionClient) rangesCopy() SpecVersionRangeList {
	return append(SpecVersionRangeList{}, specVClient.specList...)
}
