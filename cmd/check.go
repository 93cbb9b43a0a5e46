package cmd

import (
	"context"
	"fmt"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/connection"
	"go-zeropool-dictionary/internal/types/registry"

	"github.com/spf13/cobra"
)

var (
	checkHeight  int
	hashesHeight int

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Compare the known item hashes with the runtime at a block",
		RunE:  runCheck,
	}

	hashesCmd = &cobra.Command{
		Use:   "hashes",
		Short: "Print the item hash registry of the runtime at a block",
		RunE:  runHashes,
	}
)

func init() {
	checkCmd.Flags().IntVar(&checkHeight, "height", 0, "block height of the runtime to check")
	hashesCmd.Flags().IntVar(&hashesHeight, "height", 0, "block height of the runtime to hash")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	dictionaryConfig, err := loadConfig()
	if err != nil {
		return err
	}
	known, err := knownHashes(dictionaryConfig)
	if err != nil {
		return err
	}

	rpcClient, err := connection.NewRpcClient(dictionaryConfig.ChainConfig.WsRpcEndpoint, 1)
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	live, err := chainAt(cmd.Context(), rpcClient, checkHeight)
	if err != nil {
		return err
	}

	changed := 0
	for _, check := range known.Compare(1, live.Hashes(1), 1) {
		if check.Status != registry.StatusMatch {
			changed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-8s %s\n", check.Kind, check.Status, check.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "spec version %d: %d items differ from v1\n", live.SpecVersion(), changed)
	return nil
}

func runHashes(cmd *cobra.Command, _ []string) error {
	dictionaryConfig, err := loadConfig()
	if err != nil {
		return err
	}

	rpcClient, err := connection.NewRpcClient(dictionaryConfig.ChainConfig.WsRpcEndpoint, 1)
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	live, err := chainAt(cmd.Context(), rpcClient, hashesHeight)
	if err != nil {
		return err
	}
	out, err := live.Hashes(1).Encode()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// chainAt builds the chain context of the runtime active at height
func chainAt(ctx context.Context, rpcClient *connection.RpcClient, height int) (*chain.Chain, error) {
	hash, err := rpcClient.GetBlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	version, err := rpcClient.GetRuntimeVersion(ctx, hash)
	if err != nil {
		return nil, err
	}
	rawMetadata, err := rpcClient.GetMetadata(ctx, hash)
	if err != nil {
		return nil, err
	}
	return chain.New(version.SpecVersion, rawMetadata, rpcClient)
}
