package cache

import (
	"hash/fnv"
	"sync"

	"github.com/TopiaNetwork/gastimator/gas"
	"github.com/TopiaNetwork/gastimator/transaction"
)

const shardCount = 32

// GasUsageCache memoizes the last computed gas usage per transaction
// identity. It is a best-effort layer: unbounded, no TTL, no eviction,
// process lifetime only. Lock striping keeps readers and writers on
// unrelated keys from blocking each other; same-key races are last write
// wins.
type GasUsageCache struct {
	shards [shardCount]cacheShard
}

type cacheShard struct {
	mu    sync.RWMutex
	items map[string]gas.GasUsage
}

func NewGasUsageCache() *GasUsageCache {
	c := &GasUsageCache{}
	for i := range c.shards {
		c.shards[i].items = make(map[string]gas.GasUsage)
	}
	return c
}

func (c *GasUsageCache) shardFor(key string) *cacheShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &c.shards[h.Sum32()%shardCount]
}

// Get returns the cached usage for tx. Transactions without nonce or
// sender are never consulted.
func (c *GasUsageCache) Get(tx *transaction.Transaction) (gas.GasUsage, bool) {
	if !tx.IsCacheable() {
		return gas.GasUsage{}, false
	}
	key := tx.Identity()
	shard := c.shardFor(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	usage, ok := shard.items[key]
	return usage, ok
}

// Put stores the usage for tx. A no-op unless tx is cacheable.
func (c *GasUsageCache) Put(tx *transaction.Transaction, usage gas.GasUsage) {
	if !tx.IsCacheable() {
		return
	}
	key := tx.Identity()
	shard := c.shardFor(key)
	shard.mu.Lock()
	shard.items[key] = usage
	shard.mu.Unlock()
}

// Len reports the total number of cached entries.
func (c *GasUsageCache) Len() int {
	var n int
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].items)
		c.shards[i].mu.RUnlock()
	}
	return n
}
