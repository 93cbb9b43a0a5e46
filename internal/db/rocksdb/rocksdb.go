package rocksdb

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"go-zeropool-dictionary/internal/chain"
	"go-zeropool-dictionary/internal/config"
	"go-zeropool-dictionary/internal/messages"

	"github.com/linxGnu/grocksdb"
)

const (
	/// Metadata about chain
	COL_META = iota + 1
	COL_STATE
	COL_STATE_META
	/// maps hashes -> lookup keys and numbers to canon hashes
	COL_KEY_LOOKUP
	/// Part of Block
	COL_HEADER
	COL_BODY
	COL_JUSTIFICATION
	/// Stores the changes tries for querying changed storage of a block
	COL_CHANGES_TRIE
	COL_AUX
	/// Off Chain workers local storage
	COL_OFFCHAIN
	COL_CACHE
	COL_TRANSACTION
)

const (
	lookupKeyHeightLength = 4
	hashLength            = 32
)

var (
	finalizedKey = []byte("final")
	genesisKey   = []byte("gen")
)

// RockClient reads blocks from a secondary instance of the node database
type RockClient struct {
	db            *grocksdb.DB
	columnHandles []*grocksdb.ColumnFamilyHandle
	opts          *grocksdb.Options
	ro            *grocksdb.ReadOptions
}

// OpenRocksdb connect to the rocksdb instance indicated by a path argument
func OpenRocksdb(config config.RocksdbConfig) (*RockClient, error) {
	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_INFO,
		"",
		nil,
		messages.ROCKSDB_CONNECTING,
		config.RocksdbPath,
	).ConsoleLog()
	opts := grocksdb.NewDefaultOptions()
	opts.SetMaxOpenFiles(-1)
	ro := grocksdb.NewDefaultReadOptions()

	cf, err := grocksdb.ListColumnFamilies(opts, config.RocksdbPath)
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(OpenRocksdb),
			err,
			messages.ROCKSDB_FAILED_TO_LIST_COLUMN_FAMILIES,
		)
	}
	cfOpts := []*grocksdb.Options{}
	for range cf {
		cfOpts = append(cfOpts, opts)
	}

	db, handles, err := grocksdb.OpenDbAsSecondaryColumnFamilies(
		opts,
		config.RocksdbPath,
		config.RocksdbSecondaryPath,
		cf,
		cfOpts,
	)
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(OpenRocksdb),
			err,
			messages.ROCKSDB_FAILED_TO_CONNECT,
			config.RocksdbPath,
		)
	}

	messages.NewDictionaryMessage(
		messages.LOG_LEVEL_SUCCESS,
		"",
		nil,
		messages.ROCKSDB_CONNECTED,
	).ConsoleLog()

	return &RockClient{
		db,
		handles,
		opts,
		ro,
	}, nil
}

func (rc *RockClient) get(column int, key []byte) ([]byte, error) {
	value, err := rc.db.GetCF(rc.ro, rc.columnHandles[column], key)
	if err != nil {
		return nil, err
	}
	defer value.Free()
	return append([]byte{}, value.Data()...), nil
}

// GetLookupKeyForBlockHeight returns the rocksdb lookup key for a given block height
func (rc *RockClient) GetLookupKeyForBlockHeight(blockHeight int) ([]byte, error) {
	lookupKey, err := rc.get(COL_KEY_LOOKUP, blockHeightToKey(blockHeight))
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetLookupKeyForBlockHeight),
			err,
			messages.ROCKSDB_FAILED_LOOKUP_KEY,
			blockHeight,
		)
	}
	if len(lookupKey) != lookupKeyHeightLength+hashLength {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetLookupKeyForBlockHeight),
			nil,
			messages.ROCKSDB_MISSING_BLOCK,
			blockHeight,
		)
	}
	return lookupKey, nil
}

func blockHeightToKey(blockHeight int) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(blockHeight))
}

// hashFromLookupKey extracts the block hash of a height ++ hash lookup key
func hashFromLookupKey(lookupKey []byte) string {
	return "0x" + hex.EncodeToString(lookupKey[lookupKeyHeightLength:])
}

func (rc *RockClient) GetBlockHash(_ context.Context, blockHeight int) (string, error) {
	lookupKey, err := rc.GetLookupKeyForBlockHeight(blockHeight)
	if err != nil {
		return "", err
	}
	return hashFromLookupKey(lookupKey), nil
}

// GetBlockBody returns the hex encoded extrinsics of a block
func (rc *RockClient) GetBlockBody(_ context.Context, blockHeight int, _ string) ([]string, error) {
	lookupKey, err := rc.GetLookupKeyForBlockHeight(blockHeight)
	if err != nil {
		return nil, err
	}
	body, err := rc.get(COL_BODY, lookupKey)
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetBlockBody),
			err,
			messages.ROCKSDB_FAILED_BODY,
		)
	}
	extrinsics, err := chain.DecodeBody(body)
	if err != nil {
		return nil, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetBlockBody),
			err,
			messages.ROCKSDB_FAILED_BODY,
		)
	}
	return extrinsics, nil
}

// GetFinalizedHeight catches up with the primary instance and returns the
// last finalized block it synced
func (rc *RockClient) GetFinalizedHeight(_ context.Context) (int, error) {
	if err := rc.db.TryCatchUpWithPrimary(); err != nil {
		return 0, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetFinalizedHeight),
			err,
			messages.ROCKSDB_FAILED_TO_UPDATE_SECONDARY,
		)
	}

	lastElement, err := rc.get(COL_META, finalizedKey)
	if err == nil && len(lastElement) < lookupKeyHeightLength {
		err = messages.NewDictionaryMessage(messages.LOG_LEVEL_ERROR, "", nil, messages.ROCKSDB_MISSING_BLOCK, 0)
	}
	if err != nil {
		return 0, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetFinalizedHeight),
			err,
			messages.ROCKSDB_FAILED_TO_GET_LAST_SYNCED_BLOCK,
		)
	}
	return int(binary.BigEndian.Uint32(lastElement[:lookupKeyHeightLength])), nil
}

func (rc *RockClient) GetGenesisHash(_ context.Context) (string, error) {
	rawGenesis, err := rc.get(COL_META, genesisKey)
	if err != nil {
		return "", messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(rc.GetGenesisHash),
			err,
			messages.ROCKSDB_FAILED_GENESIS,
		)
	}
	return "0x" + hex.EncodeToString(rawGenesis), nil
}

func (rc *RockClient) Close() {
	for _, handle := range rc.columnHandles {
		handle.Destroy()
	}
	rc.db.Close()
	rc.ro.Destroy()
	rc.opts.Destroy()
}
