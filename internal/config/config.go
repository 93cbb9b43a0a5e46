package config

import (
	"strings"

	"go-zeropool-dictionary/internal/messages"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultConfigFilePath = "config.json"
	envPrefix             = "DICTIONARY"
)

// LoadConfig tries to load the service config from a config file given as a parameter. If the filename is an
// empty string, it defaults to a constant file path "config.json". Every key can be overridden from the
// environment, e.g. DICTIONARY_CLIENTS_CONFIG_BATCH_SIZE for clients_config.batch_size
func LoadConfig(configFilePath string) (Config, error) {
	var dictionaryConfig Config

	configPath := defaultConfigFilePath
	if configFilePath != "" {
		configPath = configFilePath
	}
	messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.CONFIG_STARTED_LOADING, configPath).ConsoleLog()

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return dictionaryConfig, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(LoadConfig),
			err,
			messages.CONFIG_FAILED_TO_READ,
			configPath,
		)
	}

	if err := v.Unmarshal(&dictionaryConfig); err != nil {
		return dictionaryConfig, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(LoadConfig),
			err,
			messages.CONFIG_FAILED_TO_DECODE,
		)
	}

	if err := dictionaryConfig.Validate(); err != nil {
		return dictionaryConfig, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(LoadConfig),
			err,
			messages.CONFIG_INVALID,
		)
	}

	messages.NewDictionaryMessage(messages.LOG_LEVEL_SUCCESS, "", nil, messages.CONFIG_FINISHED_LOADING).ConsoleLog()
	return dictionaryConfig, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("chain_config.ws_connections", 5)
	v.SetDefault("chain_config.ss58_prefix", 42)
	v.SetDefault("clients_config.events_workers", 10)
	v.SetDefault("clients_config.extrinsics_workers", 10)
	v.SetDefault("clients_config.batch_size", 1000)
	v.SetDefault("clients_config.start_block", 1)
	v.SetDefault("clients_config.metadata_cache_size", 16)
	v.SetDefault("postgres_config.postgres_schema", "public")
	v.SetDefault("postgres_config.postgres_conn_pool", 10)
	v.SetDefault("log_config.level", "info")
	v.SetDefault("metrics_config.address", ":9090")

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{
		"version",
		"chain_config.http_rpc_endpoint",
		"chain_config.ws_rpc_endpoint",
		"chain_config.decoder_types_file",
		"chain_config.hash_registry_file",
		"chain_config.chain_name",
		"rocksdb_config.rocksdb_path",
		"rocksdb_config.rocksdb_secondary_path",
		"postgres_config.postgres_user",
		"postgres_config.postgres_password",
		"postgres_config.postgres_host",
		"postgres_config.postgres_port",
		"postgres_config.postgres_db",
		"log_config.pretty",
		"metrics_config.enabled",
	} {
		v.BindEnv(key)
	}
	return v
}

// Validate reports the first configuration value the dictionary cannot run with
func (c Config) Validate() error {
	if c.ChainConfig.WsRpcEndpoint == "" {
		return errors.New("chain_config.ws_rpc_endpoint is required")
	}
	if c.RocksdbConfig.RocksdbPath != "" && c.RocksdbConfig.RocksdbSecondaryPath == "" {
		return errors.New("rocksdb_config.rocksdb_secondary_path is required with rocksdb_path")
	}
	for name, value := range map[string]int{
		"clients_config.events_workers":      c.ClientsConfig.EventsWorkers,
		"clients_config.extrinsics_workers":  c.ClientsConfig.ExtrinsicsWorkers,
		"clients_config.batch_size":          c.ClientsConfig.BatchSize,
		"chain_config.ws_connections":        c.ChainConfig.WsConnections,
		"postgres_config.postgres_conn_pool": c.PostgresConfig.ConnPool,
	} {
		if value <= 0 {
			return errors.Errorf("%s must be positive, got %d", name, value)
		}
	}
	if c.ClientsConfig.StartBlock < 0 {
		return errors.Errorf("clients_config.start_block must not be negative, got %d", c.ClientsConfig.StartBlock)
	}
	return nil
}
