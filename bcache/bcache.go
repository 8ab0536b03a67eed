// Package bcache puts an LRU read cache in front of a disk. The boot path
// reads every block afresh; interactive tools that revisit the inode table
// and directory wrap their device in a cache instead.
package bcache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/jnwhiteh/minixboot/common"
)

type key struct {
	sector int
	count  int
}

// LRUCache caches the result of whole ReadSectors requests.
type LRUCache struct {
	dev   common.Disk
	cache *lru.Cache

	m      sync.Mutex
	hits   int
	misses int
}

// NewLRUCache creates a cache holding up to numslots reads from dev.
func NewLRUCache(dev common.Disk, numslots int) (*LRUCache, error) {
	cache, err := lru.New(numslots)
	if err != nil {
		return nil, err
	}
	return &LRUCache{dev: dev, cache: cache}, nil
}

func (c *LRUCache) ReadSectors(sector, count int, buf []byte) error {
	k := key{sector, count}
	n := count * common.SECTOR_SIZE
	if count <= 0 || len(buf) < n {
		return c.dev.ReadSectors(sector, count, buf)
	}

	if v, ok := c.cache.Get(k); ok {
		copy(buf[:n], v.([]byte))
		c.m.Lock()
		c.hits++
		c.m.Unlock()
		return nil
	}

	if err := c.dev.ReadSectors(sector, count, buf); err != nil {
		return err
	}
	data := make([]byte, n)
	copy(data, buf[:n])
	c.cache.Add(k, data)

	c.m.Lock()
	c.misses++
	c.m.Unlock()
	return nil
}

// Stats returns the number of reads served from the cache and the number
// passed through to the device.
func (c *LRUCache) Stats() (hits, misses int) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.hits, c.misses
}

// Invalidate drops every cached read.
func (c *LRUCache) Invalidate() {
	c.cache.Purge()
}
