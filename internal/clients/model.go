package clients

import (
	"context"

	"go-zeropool-dictionary/internal/clients/event"
	"go-zeropool-dictionary/internal/clients/extrinsic"
	"go-zeropool-dictionary/internal/clients/specversion"
	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/models"
)

type (
	// BlockSource reads finalized blocks, from the node rpc or its rocksdb
	BlockSource interface {
		GetBlockHash(ctx context.Context, blockHeight int) (string, error)
		GetBlockBody(ctx context.Context, blockHeight int, blockHash string) ([]string, error)
		GetFinalizedHeight(ctx context.Context) (int, error)
	}

	// BlockDecoder decodes the extrinsics and events of one runtime version
	BlockDecoder interface {
		extrinsic.Decoder
		event.Decoder
	}

	// ChainLookup returns the decoder of a spec version. blockHash belongs to that version.
	ChainLookup func(ctx context.Context, specVersion int, blockHash string) (BlockDecoder, error)

	SpecVersions interface {
		Update(ctx context.Context, lastBlock int) (specversion.SpecVersionRangeList, error)
		SpecVersionForBlock(blockHeight int) (specversion.SpecVersionRange, error)
		SpecName() string
	}

	BatchWriter interface {
		WriteBatch(ctx context.Context, batch postgres.Batch, after ...postgres.TxFunc) error
	}

	Progress interface {
		LastProcessedHeight(ctx context.Context) (int, error)
		ProgressTx(lastHeight, target int) postgres.TxFunc
		SetTargetHeight(ctx context.Context, height int) error
		SetSpecName(ctx context.Context, name string) error
		SetIndexerHealthy(ctx context.Context, healthy bool) error
	}

	// blockResult holds the rows of one block
	blockResult struct {
		specVersion int
		extrinsics  []models.Extrinsic
		events      []models.Event
	}
)
