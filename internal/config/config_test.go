package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
	"version": "1.0.0",
	"chain_config": {
		"http_rpc_endpoint": "http://localhost:9933",
		"ws_rpc_endpoint": "ws://localhost:9944",
		"decoder_types_file": "zeropool.json"
	},
	"rocksdb_config": {
		"rocksdb_path": "",
		"rocksdb_secondary_path": ""
	},
	"clients_config": {
		"events_workers": 4,
		"extrinsics_workers": 6
	},
	"postgres_config": {
		"postgres_user": "postgres",
		"postgres_password": "postgres",
		"postgres_host": "localhost",
		"postgres_port": "5432",
		"postgres_db": "dictionary"
	}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.IndexerVersion)
	assert.Equal(t, "ws://localhost:9944", cfg.ChainConfig.WsRpcEndpoint)
	assert.Equal(t, "zeropool.json", cfg.ChainConfig.DecoderTypesFile)
	assert.Equal(t, 4, cfg.ClientsConfig.EventsWorkers)
	assert.Equal(t, 6, cfg.ClientsConfig.ExtrinsicsWorkers)
	assert.Equal(t, "dictionary", cfg.PostgresConfig.Db)

	// defaults
	assert.Equal(t, 1000, cfg.ClientsConfig.BatchSize)
	assert.Equal(t, 1, cfg.ClientsConfig.StartBlock)
	assert.Equal(t, 5, cfg.ChainConfig.WsConnections)
	assert.Equal(t, uint16(42), cfg.ChainConfig.SS58Prefix)
	assert.Equal(t, "public", cfg.PostgresConfig.Schema)
	assert.Equal(t, "info", cfg.LogConfig.Level)
	assert.Equal(t, ":9090", cfg.MetricsConfig.Address)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DICTIONARY_CLIENTS_CONFIG_BATCH_SIZE", "250")
	t.Setenv("DICTIONARY_POSTGRES_CONFIG_POSTGRES_HOST", "db.internal")

	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.ClientsConfig.BatchSize)
	assert.Equal(t, "db.internal", cfg.PostgresConfig.Host)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"chain_config": {"http_rpc_endpoint": "http://localhost:9933"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ws_rpc_endpoint")
}

func TestValidate(t *testing.T) {
	valid := Config{
		ChainConfig:    ChainConfig{WsRpcEndpoint: "ws://localhost:9944", WsConnections: 1},
		ClientsConfig:  ClientsConfig{EventsWorkers: 1, ExtrinsicsWorkers: 1, BatchSize: 1},
		PostgresConfig: PostgresConfig{ConnPool: 1},
	}
	assert.NoError(t, valid.Validate())

	noWorkers := valid
	noWorkers.ClientsConfig.EventsWorkers = 0
	assert.ErrorContains(t, noWorkers.Validate(), "events_workers")

	rocksdbWithoutSecondary := valid
	rocksdbWithoutSecondary.RocksdbConfig.RocksdbPath = "/data/chains/db"
	assert.ErrorContains(t, rocksdbWithoutSecondary.Validate(), "rocksdb_secondary_path")

	negativeStart := valid
	negativeStart.ClientsConfig.StartBlock = -1
	assert.ErrorContains(t, negativeStart.Validate(), "start_block")
}
