package config

type PostgresConfig struct {
	User     string `mapstructure:"postgres_user"`
	Password string `mapstructure:"postgres_password"`
	Host     string `mapstructure:"postgres_host"`
	Port     string `mapstructure:"postgres_port"`
	Db       string `mapstructure:"postgres_db"`
	Schema   string `mapstructure:"postgres_schema"`
	ConnPool int    `mapstructure:"postgres_conn_pool"`
}

type ChainConfig struct {
	HttpRpcEndpoint  string `mapstructure:"http_rpc_endpoint"`
	WsRpcEndpoint    string `mapstructure:"ws_rpc_endpoint"`
	WsConnections    int    `mapstructure:"ws_connections"`
	DecoderTypesFile string `mapstructure:"decoder_types_file"`
	// optional override of the embedded item hash registry
	HashRegistryFile string `mapstructure:"hash_registry_file"`
	ChainName        string `mapstructure:"chain_name"`
	SS58Prefix       uint16 `mapstructure:"ss58_prefix"`
}

type ClientsConfig struct {
	EventsWorkers     int `mapstructure:"events_workers"`
	ExtrinsicsWorkers int `mapstructure:"extrinsics_workers"`
	BatchSize         int `mapstructure:"batch_size"`
	StartBlock        int `mapstructure:"start_block"`
	MetadataCacheSize int `mapstructure:"metadata_cache_size"`
}

type RocksdbConfig struct {
	// empty path selects the rpc block source
	RocksdbPath          string `mapstructure:"rocksdb_path"`
	RocksdbSecondaryPath string `mapstructure:"rocksdb_secondary_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

type Config struct {
	IndexerVersion string         `mapstructure:"version"`
	ChainConfig    ChainConfig    `mapstructure:"chain_config"`
	RocksdbConfig  RocksdbConfig  `mapstructure:"rocksdb_config"`
	ClientsConfig  ClientsConfig  `mapstructure:"clients_config"`
	PostgresConfig PostgresConfig `mapstructure:"postgres_config"`
	LogConfig      LogConfig      `mapstructure:"log_config"`
	MetricsConfig  MetricsConfig  `mapstructure:"metrics_config"`
}
