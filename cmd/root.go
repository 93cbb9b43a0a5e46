package cmd

import (
	"context"
	"os"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/config"
	"go-zeropool-dictionary/internal/messages"
	"go-zeropool-dictionary/internal/types"
	"go-zeropool-dictionary/internal/types/registry"

	"github.com/spf13/cobra"
)

var (
	configFilePath string

	rootCmd = &cobra.Command{
		Use:          "dictionary",
		Short:        "Zeropool substrate dictionary",
		Long:         "Indexes the events, extrinsics and spec versions of a zeropool substrate chain into postgres",
		SilenceUsage: true,
	}
)

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "path to config file (default is ./config.json)")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(hashesCmd)
}

// loadConfig reads the configuration, sets up logging and registers the
// decoder types and hash registry it names
func loadConfig() (config.Config, error) {
	if configFilePath == "" {
		messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.CONFIG_NO_CUSTOM_PATH_SPECIFIED).ConsoleLog()
	}
	dictionaryConfig, err := config.LoadConfig(configFilePath)
	if err != nil {
		return dictionaryConfig, err
	}
	messages.InitLogger(dictionaryConfig.LogConfig.Level, dictionaryConfig.LogConfig.Pretty)

	if err := chain.RegisterTypes(dictionaryConfig.ChainConfig.DecoderTypesFile); err != nil {
		return dictionaryConfig, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(loadConfig),
			err,
			messages.META_FAILED_TYPES_FILE,
			dictionaryConfig.ChainConfig.DecoderTypesFile,
		)
	}

	if path := dictionaryConfig.ChainConfig.HashRegistryFile; path != "" {
		hashes, err := registry.LoadFile(path)
		if err != nil {
			return dictionaryConfig, err
		}
		types.UseRegistry(hashes)
	}
	return dictionaryConfig, nil
}

func knownHashes(dictionaryConfig config.Config) (*registry.Registry, error) {
	if path := dictionaryConfig.ChainConfig.HashRegistryFile; path != "" {
		return registry.LoadFile(path)
	}
	return registry.Default(), nil
}
