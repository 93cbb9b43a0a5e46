package messages

import "runtime"

type DictionaryLogLevel string

var (
	noColor = false

	// generics
	FAILED_ATOI           = "Failed to convert string to integer"
	FAILED_TYPE_ASSERTION = "Failed type assertion"

	// configuration info messages
	CONFIG_NO_CUSTOM_PATH_SPECIFIED = "No config file path specified with --c, --config. Using default path."
	CONFIG_STARTED_LOADING          = "The dictionary configuration is loaded from %s"
	CONFIG_FAILED_TO_READ           = "Failed to read configuration file %s"
	CONFIG_FAILED_TO_DECODE         = "Failed to decode configuration"
	CONFIG_INVALID                  = "Invalid configuration"
	CONFIG_FINISHED_LOADING         = "The dictionary configuration successfully loaded"

	// rocksdb messages
	ROCKSDB_CONNECTING                      = "Connecting to rocksdb instance at %s"
	ROCKSDB_FAILED_TO_LIST_COLUMN_FAMILIES  = "Failed to list rocksdb column families"
	ROCKSDB_FAILED_TO_CONNECT               = "Failed to connect to rocksdb instance at %s"
	ROCKSDB_FAILED_LOOKUP_KEY               = "Failed to get lookup key for block %d"
	ROCKSDB_CONNECTED                       = "Successfully connected to rocksdb instance"
	ROCKSDB_FAILED_TO_GET_LAST_SYNCED_BLOCK = "Failed to get last synced block"
	ROCKSDB_FAILED_BODY                     = "Failed to retrieve block body from rocksdb"
	ROCKSDB_FAILED_TO_UPDATE_SECONDARY      = "Failed to catch up rocksdb secondary instance with primary"
	ROCKSDB_FAILED_GENESIS                  = "Failed to get genesis hash from rocksdb"
	ROCKSDB_MISSING_BLOCK                   = "Block %d is not in the rocksdb instance"

	// postgres
	POSTGRES_CONNECTING                        = "Connecting to postgres database using '%s'"
	POSTGRES_CONNECTED                         = "Successfully connected to postgres instance"
	POSTGRES_FAILED_TO_PARSE_CONNECTION_STRING = "Failed to parse postgres connection string"
	POSTGRES_FAILED_TO_CONNECT                 = "Failed to connect to postgres database"
	POSTGRES_FAILED_TO_PING                    = "Failed to ping postgres database instance"
	POSTGRES_FAILED_TO_MIGRATE                 = "Failed to create dictionary schema"
	POSTGRES_MIGRATED                          = "Dictionary schema %s is up to date"
	POSTGRES_FAILED_TO_START_TRANSACTION       = "Failed to start postgres transaction"
	POSTGRES_FAILED_TO_EXECUTE_UPDATE          = "Failed to execute update statement"
	POSTGRES_FAILED_TO_INSERT                  = "Failed to execute insert statement"
	POSTGRES_FAILED_TO_COPY_FROM               = "Postgres failed to copy from rows"
	POSTGRES_WRONG_NUMBER_OF_COPIED_ROWS       = "Postgres copied %d rows out of %d"
	POSTGRES_FAILED_TO_COMMIT_TX               = "Failed to commit postgres transaction"

	// rpc
	RPC_CONNECTING         = "Connecting %d websockets to %s"
	RPC_FAILED_TO_CONNECT  = "Failed to connect websocket to %s"
	RPC_RECONNECTING       = "Websocket %d disconnected, reconnecting"
	RPC_REQUEST_FAILED     = "Rpc request %s failed"
	RPC_FAILED_TO_DECODE   = "Failed to decode %s response"
	RPC_EMPTY_RESULT       = "Rpc request %s returned no result"
	RPC_CLIENT_CLOSED      = "Rpc client is closed"
	RPC_UNEXPECTED_CHAIN_H = "Unexpected chain height %s"

	// spec version
	SPEC_VERSION_FAILED_TO_GET        = "Failed to get spec version for block %d"
	SPEC_VERSION_FAILED_DB_LAST_BLOCK = "Failed to get last spec version block from db"
	SPEC_VERSION_FAILED_DB            = "Failed to get spec version info from db"
	SPEC_VERSION_RETRIEVED            = "Last block height for spec version %d is %d"
	SPEC_VERSION_DB_INSERT            = "Inserting spec verion data in db starting from block %d"
	SPEC_VERSION_DB_SUCCESS           = "Successfully inserted spec version info in db"
	SPEC_VERSION_UP_TO_DATE           = "Spec versions saved in db are up to date"
	SPEC_VERSION_NO_PREVIOUS_WORK     = "No spec version info was saved from previous executions"
	SPEC_VERSION_RECOVERED            = "Spec version recovered from last run"
	SPEC_VERSION_WRONG_BLOCK          = "No spec version range contains block %d"
	SPEC_VERSION_UPGRADE              = "Runtime upgraded to %s v%d at block %d"

	// metadata
	META_FAILED_TO_GET       = "Failed to get metadata for spec version %d"
	META_FAILED_SCALE_DECODE = "Failed to scale decode metadata for spec version %d"
	META_FAILED_TYPES_FILE   = "Failed to read decoder types file %s"
	META_FAILED_JSON_MARSHAL = "Failed to marshal %s into a JSON object"
	META_CLIENT_START        = "Metadata client starting"
	META_FAILED_DB           = "Failed to query the _metadata table"
	META_STALE_REGISTRY      = "Hash registry does not match the runtime at block %d, write one with `dictionary hashes --height %d` and set chain_config.hash_registry_file"

	// extrinsic
	EXTRINSIC_DECODE_FAILED   = "Failed to decode extrinsic %d for block %d"
	EXTRINSIC_FIELD_FAILED    = "Failed to get extrinsic %s for block %d"
	EXTRINSIC_SUDO_CALL       = "Block %d extrinsic %d dispatched %s through sudo"
	EXTRINSIC_FAILED_TO_FETCH = "Failed to fetch extrinsics for block %d"

	// event
	EVENT_FAILED_TO_FETCH     = "Failed to fetch events for block %d"
	EVENT_DECODE_FAILED       = "Failed to decode events for block %d"
	EVENT_FIELD_FAILED        = "Failed to get event %s for block %d"
	EVENT_EXTRINSIC_FAILED    = "Extrinsic %s failed with %s"
	EVENT_UNKNOWN_EXTRINSIC   = "Event %s in block %d points to unknown extrinsic %d"
	EVENT_FAILED_TO_READ_INFO = "Failed to read extrinsic outcome from %s"

	// orchestrator
	ORCHESTRATOR_INITIALIZING     = "Initializing client orchestrator"
	ORCHESTRATOR_START            = "Starting client orchestrator from block %d up to block %d"
	ORCHESTRATOR_CLOSE            = "Closing client orchestrator"
	ORCHESTRATOR_START_BATCH      = "Starting batch of size %d starting from block %d"
	ORCHESTRATOR_FINISH_BATCH     = "Batch finished at block %d"
	ORCHESTRATOR_FAILED_BLOCK     = "Failed to process block %d"
	ORCHESTRATOR_UP_TO_DATE       = "Dictionary is up to date at block %d"
	ORCHESTRATOR_METRICS_LISTENER = "Serving metrics on %s"
)

const (
	// log levels used by substrate dictionary
	LOG_LEVEL_INFO    DictionaryLogLevel = "INFO"
	LOG_LEVEL_ERROR   DictionaryLogLevel = "ERROR"
	LOG_LEVEL_WARNING DictionaryLogLevel = "WARNING"
	LOG_LEVEL_SUCCESS DictionaryLogLevel = "SUCCESS"
)

func init() {
	if runtime.GOOS == "windows" {
		noColor = true
	}
}

type DictionaryMessage struct {
	LogLevel       DictionaryLogLevel
	Component      string
	Err            error
	FormatString   string
	AdditionalInfo []interface{}
}
