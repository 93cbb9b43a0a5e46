package metadata

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	META_NO_TABLES           = "There are no tables in the current database"
	META_FAILED_JSON_MARSHAL = "Failed to marshal %s into a JSON object"
	META_UNEXPECTED_VALUE    = "Unexpected _metadata value for %s"

	// metadata keys
	lastProcessedHeight    = "lastProcessedHeight"
	lastProcessedTimestamp = "lastProcessedTimestamp"
	targetHeight           = "targetHeight"
	chain                  = "chain"
	specName               = "specName"
	genesisHash            = "genesisHash"
	indexerHealthy         = "indexerHealthy"
	indexerNodeVersion     = "indexerNodeVersion"
	queryNodeVersion       = "queryNodeVersion"
	rowCountEstimate       = "rowCountEstimate"
	dynamicDatasources     = "dynamicDatasources"
)

type (
	RowCountEstimate struct {
		Estimate int    `json:"estimate"`
		Table    string `json:"table"`
	}

	// ChainInfo describes the indexed chain and node
	ChainInfo struct {
		Chain       string
		SpecName    string
		GenesisHash string
		NodeVersion string
	}

	// Entry is one row of the _metadata table
	Entry struct {
		Key   string
		Value []byte
	}
)

// InitEntries returns the rows written the first time a database is indexed
func InitEntries(timestamp int64, tablesEstimates []RowCountEstimate) ([]Entry, error) {
	if tablesEstimates == nil {
		tablesEstimates = []RowCountEstimate{}
	}
	return entries([]keyValue{
		{lastProcessedHeight, -1},
		{lastProcessedTimestamp, timestamp},
		{targetHeight, 0},
		{indexerHealthy, true},
		{queryNodeVersion, ""},
		{rowCountEstimate, tablesEstimates},
		{dynamicDatasources, nil},
	})
}

// InfoEntries returns the rows describing the chain, rewritten on every start
func InfoEntries(info ChainInfo) ([]Entry, error) {
	return entries([]keyValue{
		{chain, info.Chain},
		{specName, info.SpecName},
		{genesisHash, info.GenesisHash},
		{indexerNodeVersion, info.NodeVersion},
	})
}

type keyValue struct {
	key   string
	value interface{}
}

func entries(values []keyValue) ([]Entry, error) {
	out := make([]Entry, 0, len(values))
	for _, kv := range values {
		encoded, err := json.Marshal(kv.value)
		if err != nil {
			return nil, errors.Wrapf(err, META_FAILED_JSON_MARSHAL, kv.key)
		}
		out = append(out, Entry{Key: kv.key, Value: encoded})
	}
	return out, nil
}
