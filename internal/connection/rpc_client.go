package connection

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go-zeropool-dictionary/internal/messages"

	"github.com/itering/substrate-api-rpc/rpc"
)

// RuntimeVersion is the part of state_getRuntimeVersion the dictionary uses
type RuntimeVersion struct {
	SpecName    string `json:"specName"`
	SpecVersion int    `json:"specVersion"`
}

type header struct {
	Number string `json:"number"`
}

type signedBlock struct {
	Block struct {
		Extrinsics []string `json:"extrinsics"`
	} `json:"block"`
}

type storageChangeSet struct {
	Block   string       `json:"block"`
	Changes [][2]*string `json:"changes"`
}

// RpcClient is a substrate node client over a websocket pool
type RpcClient struct {
	ws *WsClient
}

func NewRpcClient(endpoint string, numSockets int) (*RpcClient, error) {
	ws, err := InitWSClient(endpoint, numSockets)
	if err != nil {
		return nil, err
	}
	return &RpcClient{ws: ws}, nil
}

func (c *RpcClient) Close() {
	c.ws.Close()
}

func (c *RpcClient) GetBlockHash(ctx context.Context, blockHeight int) (string, error) {
	raw, err := c.ws.send(ctx, "chain_getBlockHash", func(id int) []byte {
		return rpc.ChainGetBlockHash(id, blockHeight)
	})
	if err != nil {
		return "", err
	}
	var hash *string
	if err := decodeResult("chain_getBlockHash", raw, &hash); err != nil {
		return "", err
	}
	if hash == nil {
		return "", emptyResult(c.GetBlockHash, "chain_getBlockHash")
	}
	return *hash, nil
}

// GetFinalizedHeight returns the number of the last finalized block
func (c *RpcClient) GetFinalizedHeight(ctx context.Context) (int, error) {
	raw, err := c.ws.Call(ctx, "chain_getFinalizedHead")
	if err != nil {
		return 0, err
	}
	var hash string
	if err := decodeResult("chain_getFinalizedHead", raw, &hash); err != nil {
		return 0, err
	}

	raw, err = c.ws.Call(ctx, "chain_getHeader", hash)
	if err != nil {
		return 0, err
	}
	var h *header
	if err := decodeResult("chain_getHeader", raw, &h); err != nil {
		return 0, err
	}
	if h == nil {
		return 0, emptyResult(c.GetFinalizedHeight, "chain_getHeader")
	}
	height, err := strconv.ParseInt(strings.TrimPrefix(h.Number, "0x"), 16, 64)
	if err != nil {
		return 0, messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(c.GetFinalizedHeight),
			err,
			messages.RPC_UNEXPECTED_CHAIN_H,
			h.Number,
		)
	}
	return int(height), nil
}

// GetBlockExtrinsics returns the hex encoded extrinsics of a block
func (c *RpcClient) GetBlockExtrinsics(ctx context.Context, blockHash string) ([]string, error) {
	raw, err := c.ws.Call(ctx, "chain_getBlock", blockHash)
	if err != nil {
		return nil, err
	}
	var block *signedBlock
	if err := decodeResult("chain_getBlock", raw, &block); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, emptyResult(c.GetBlockExtrinsics, "chain_getBlock")
	}
	return block.Block.Extrinsics, nil
}

// GetBlockBody makes the client a block source. The height is only used by
// sources that index blocks by number.
func (c *RpcClient) GetBlockBody(ctx context.Context, _ int, blockHash string) ([]string, error) {
	return c.GetBlockExtrinsics(ctx, blockHash)
}

func (c *RpcClient) GetRuntimeVersion(ctx context.Context, blockHash string) (RuntimeVersion, error) {
	var version RuntimeVersion
	raw, err := c.ws.send(ctx, "state_getRuntimeVersion", func(id int) []byte {
		return rpc.ChainGetRuntimeVersion(id, blockHash)
	})
	if err != nil {
		return version, err
	}
	err = decodeResult("state_getRuntimeVersion", raw, &version)
	return version, err
}

// GetMetadata returns the hex encoded runtime metadata at a block
func (c *RpcClient) GetMetadata(ctx context.Context, blockHash string) (string, error) {
	raw, err := c.ws.send(ctx, "state_getMetadata", func(id int) []byte {
		return rpc.StateGetMetadata(id, blockHash)
	})
	if err != nil {
		return "", err
	}
	var metadata string
	err = decodeResult("state_getMetadata", raw, &metadata)
	return metadata, err
}

// GetStorage returns the hex value under key, empty when the key is not set
func (c *RpcClient) GetStorage(ctx context.Context, key, blockHash string) (string, error) {
	raw, err := c.ws.Call(ctx, "state_getStorage", key, blockHash)
	if err != nil {
		return "", err
	}
	var value *string
	if err := decodeResult("state_getStorage", raw, &value); err != nil {
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

// QueryStorageAt returns the values of keys in order, empty for unset keys
func (c *RpcClient) QueryStorageAt(ctx context.Context, keys []string, blockHash string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	raw, err := c.ws.Call(ctx, "state_queryStorageAt", keys, blockHash)
	if err != nil {
		return nil, err
	}
	var changeSets []storageChangeSet
	if err := decodeResult("state_queryStorageAt", raw, &changeSets); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(keys))
	for _, changeSet := range changeSets {
		for _, change := range changeSet.Changes {
			if change[0] != nil && change[1] != nil {
				values[*change[0]] = *change[1]
			}
		}
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = values[key]
	}
	return out, nil
}

func (c *RpcClient) GetChainName(ctx context.Context) (string, error) {
	return c.callString(ctx, "system_chain")
}

func (c *RpcClient) GetNodeVersion(ctx context.Context) (string, error) {
	return c.callString(ctx, "system_version")
}

func (c *RpcClient) GetGenesisHash(ctx context.Context) (string, error) {
	return c.GetBlockHash(ctx, 0)
}

func (c *RpcClient) callString(ctx context.Context, method string) (string, error) {
	raw, err := c.ws.Call(ctx, method)
	if err != nil {
		return "", err
	}
	var out string
	err = decodeResult(method, raw, &out)
	return out, err
}

func decodeResult(method string, raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return messages.NewDictionaryMessage(
			messages.LOG_LEVEL_ERROR,
			messages.GetComponent(decodeResult),
			err,
			messages.RPC_FAILED_TO_DECODE,
			method,
		)
	}
	return nil
}

func emptyResult(component interface{}, method string) error {
	return messages.NewDictionaryMessage(
		messages.LOG_LEVEL_ERROR,
		messages.GetComponent(component),
		nil,
		messages.RPC_EMPTY_RESULT,
		method,
	)
}
