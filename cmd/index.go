package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/clients"
	"go-zeropool-dictionary/internal/clients/event"
	"go-zeropool-dictionary/internal/clients/extrinsic"
	"go-zeropool-dictionary/internal/clients/metadata"
	"go-zeropool-dictionary/internal/clients/specversion"
	"go-zeropool-dictionary/internal/config"
	"go-zeropool-dictionary/internal/connection"
	"go-zeropool-dictionary/internal/db/postgres"
	"go-zeropool-dictionary/internal/db/rocksdb"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/metrics"
	"go-zeropool-dictionary/internal/types/registry"
	"go-zeropool-dictionary/internal/types/support"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const rowsEstimateInterval = time.Minute

// indexedItems are read through their v1 accessors while indexing
var indexedItems = []registry.Item{
	{Kind: registry.KindCall, Name: "Sudo.sudo"},
	{Kind: registry.KindCall, Name: "Sudo.sudo_as"},
	{Kind: registry.KindEvent, Name: "System.ExtrinsicSuccess"},
	{Kind: registry.KindEvent, Name: "System.ExtrinsicFailed"},
	{Kind: registry.KindStorage, Name: "System.LastRuntimeUpgrade"},
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the chain into postgres and follow new finalized blocks",
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dictionaryConfig, err := loadConfig()
	if err != nil {
		return err
	}

	rpcClient, err := connection.NewRpcClient(dictionaryConfig.ChainConfig.WsRpcEndpoint, dictionaryConfig.ChainConfig.WsConnections)
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	var blocks clients.BlockSource = rpcClient
	if dictionaryConfig.RocksdbConfig.RocksdbPath != "" {
		rockClient, err := rocksdb.OpenRocksdb(dictionaryConfig.RocksdbConfig)
		if err != nil {
			return err
		}
		defer rockClient.Close()
		blocks = rockClient
	}

	pgClient, err := postgres.Connect(ctx, dictionaryConfig.PostgresConfig)
	if err != nil {
		return err
	}
	defer pgClient.Close()
	if err := pgClient.Migrate(ctx); err != nil {
		return err
	}

	cache, err := chain.NewCache(dictionaryConfig.ClientsConfig.MetadataCacheSize, rpcClient, rpcClient)
	if err != nil {
		return err
	}

	finalized, err := blocks.GetFinalizedHeight(ctx)
	if err != nil {
		return err
	}
	if err := checkRegistry(ctx, dictionaryConfig, rpcClient, finalized); err != nil {
		return err
	}

	specVersionClient := specversion.NewSpecVersionClient(
		dictionaryConfig.ClientsConfig.StartBlock,
		rpcClient,
		func(ctx context.Context, specVersion int, blockHash string) (support.Chain, error) {
			return cache.Get(ctx, specVersion, blockHash)
		},
		pgClient,
	)
	if _, err := specVersionClient.Run(ctx, finalized); err != nil {
		return err
	}

	metaClient := metadata.NewMetadataClient(pgClient)
	info, err := chainInfo(ctx, dictionaryConfig, rpcClient, specVersionClient.SpecName())
	if err != nil {
		return err
	}
	if err := metaClient.Init(ctx, info); err != nil {
		return err
	}

	if dictionaryConfig.MetricsConfig.Enabled {
		go serveMetrics(ctx, dictionaryConfig.MetricsConfig.Address)
	}
	go refreshRowsEstimate(ctx, metaClient)

	orchestrator := clients.NewOrchestrator(clients.Params{
		BatchSize:  dictionaryConfig.ClientsConfig.BatchSize,
		Workers:    workers(dictionaryConfig.ClientsConfig),
		StartBlock: dictionaryConfig.ClientsConfig.StartBlock,
		Blocks:     blocks,
		Chains: func(ctx context.Context, specVersion int, blockHash string) (clients.BlockDecoder, error) {
			return cache.Get(ctx, specVersion, blockHash)
		},
		SpecVersions: specVersionClient,
		Extrinsics:   extrinsic.NewExtrinsicClient(dictionaryConfig.ChainConfig.SS58Prefix),
		Events:       event.NewEventClient(rpcClient),
		Writer:       pgClient,
		Progress:     metaClient,
		Fallback: func(ctx context.Context) (int, error) {
			return extrinsic.RecoverLastInsertedBlock(ctx, pgClient)
		},
	})
	defer orchestrator.Close()

	if err := orchestrator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// checkRegistry fails when the runtime at height no longer carries the
// hashes the indexed items are read with
func checkRegistry(ctx context.Context, dictionaryConfig config.Config, rpcClient *connection.RpcClient, height int) error {
	known, err := knownHashes(dictionaryConfig)
	if err != nil {
		return err
	}
	live, err := chainAt(ctx, rpcClient, height)
	if err != nil {
		return err
	}
	if err := known.Require(1, live.Hashes(1), 1, indexedItems...); err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(checkRegistry),
			err,
			messages.META_STALE_REGISTRY,
			height,
			height,
		)
	}
	return nil
}

// workers sizes the block pool, each block being fetched for both its
// extrinsics and its events
func workers(clientsConfig config.ClientsConfig) int {
	if clientsConfig.ExtrinsicsWorkers > clientsConfig.EventsWorkers {
		return clientsConfig.ExtrinsicsWorkers
	}
	return clientsConfig.EventsWorkers
}

func chainInfo(ctx context.Context, dictionaryConfig config.Config, rpcClient *connection.RpcClient, specName string) (metadata.ChainInfo, error) {
	info := metadata.ChainInfo{
		Chain:       dictionaryConfig.ChainConfig.ChainName,
		SpecName:    specName,
		NodeVersion: dictionaryConfig.IndexerVersion,
	}

	var err error
	if info.Chain == "" {
		if info.Chain, err = rpcClient.GetChainName(ctx); err != nil {
			return info, err
		}
	}
	if info.GenesisHash, err = rpcClient.GetGenesisHash(ctx); err != nil {
		return info, err
	}
	if info.NodeVersion == "" {
		if info.NodeVersion, err = rpcClient.GetNodeVersion(ctx); err != nil {
			return info, err
		}
	}
	return info, nil
}

func serveMetrics(ctx context.Context, address string) {
	if err := metrics.Serve(ctx, address); err != nil {
		messages.FromError(err).ConsoleLog()
	}
}

func refreshRowsEstimate(ctx context.Context, metaClient *metadata.MetadataClient) {
	ticker := time.NewTicker(rowsEstimateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := metaClient.UpdateRowsEstimate(ctx); err != nil && ctx.Err() == nil {
				messages.FromError(err).ConsoleLog()
			}
		}
	}
}
