package chain

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// MetadataSource fetches the hex encoded runtime metadata at a block
type MetadataSource interface {
	GetMetadata(ctx context.Context, blockHash string) (string, error)
}

// Cache keeps the decoded Chain of the most recently used spec versions
type Cache struct {
	mu       sync.Mutex
	chains   *lru.Cache
	metadata MetadataSource
	storage  StorageReader
}

func NewCache(size int, metadata MetadataSource, storage StorageReader) (*Cache, error) {
	chains, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "chain cache")
	}
	return &Cache{chains: chains, metadata: metadata, storage: storage}, nil
}

// Get returns the Chain of specVersion, fetching the metadata at blockHash
// when the version is not cached. blockHash must belong to specVersion.
func (c *Cache) Get(ctx context.Context, specVersion int, blockHash string) (*Chain, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.chains.Get(specVersion); ok {
		return cached.(*Chain), nil
	}

	raw, err := c.metadata.GetMetadata(ctx, blockHash)
	if err != nil {
		return nil, errors.Wrapf(err, "metadata of spec version %d", specVersion)
	}
	chain, err := New(specVersion, raw, c.storage)
	if err != nil {
		return nil, errors.Wrapf(err, "spec version %d", specVersion)
	}
	c.chains.Add(specVersion, chain)
	return chain, nil
}

// Put caches an already built Chain
func (c *Cache) Put(chain *Chain) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chains.Add(chain.SpecVersion(), chain)
}
