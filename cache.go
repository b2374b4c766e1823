// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// cache.go 文件定义了 根服务器 的响应缓存。
// 缓存以线路形式存储完整的 DNS 回复，键为顶级域
//（区域顶点处为 "顶级域;查询类型"），淘汰策略为严格的 LRU。
// _synth 指针查询不经过名称树，其回复从不进入缓存。

package hdns

import (
	"encoding/binary"
	"io"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tochusc/hdns/dns"
)

// DefaultCacheTTL 为缓存条目的默认生存时间。
const DefaultCacheTTL = 30 * time.Minute

// cacheEntry 记录一份线路形式的回复及其写入时间。
type cacheEntry struct {
	wire []byte
	at   time.Time
}

// Cache 为根服务器的 LRU 响应缓存。
type Cache struct {
	entries *lru.Cache[string, *cacheEntry]
	ttl     time.Duration
	clock   Clock
	logger  *log.Logger
}

// NewCache 创建一个响应缓存。
//   - size: 条目数上限，不大于 0 时使用 DefaultCacheSize
//   - ttl: 条目生存时间，不大于 0 时使用 DefaultCacheTTL
func NewCache(size int, ttl time.Duration, clock Clock, logWriter io.Writer) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	entries, err := lru.New[string, *cacheEntry](size)
	if err != nil {
		panic("function NewCache failed: " + err.Error())
	}
	return &Cache{
		entries: entries,
		ttl:     ttl,
		clock:   clock,
		logger:  log.New(logWriter, "Cache: ", log.LstdFlags),
	}
}

// Get 返回键对应的线路形式回复副本；未命中或已过期时返回 nil。
func (c *Cache) Get(key string) []byte {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil
	}
	if c.clock.Now().Sub(entry.at) > c.ttl {
		c.entries.Remove(key)
		c.logger.Printf("Cache expired %s", key)
		return nil
	}
	c.logger.Printf("Cache hit %s", key)
	wire := make([]byte, len(entry.wire))
	copy(wire, entry.wire)
	return wire
}

// Set 将线路形式回复写入缓存。
func (c *Cache) Set(key string, wire []byte) {
	stored := make([]byte, len(wire))
	copy(stored, wire)
	c.entries.Add(key, &cacheEntry{wire: stored, at: c.clock.Now()})
	c.logger.Printf("Cache saved %s", key)
}

// Reset 清空缓存。
func (c *Cache) Reset() {
	c.entries.Purge()
	c.logger.Printf("Cache reset")
}

// Len 返回缓存的当前条目数。
func (c *Cache) Len() int {
	return c.entries.Len()
}

// RewriteCachedWire 将缓存的线路回复改写为与当前查询一致：
// 查询 ID 及问题部分的域名拼写（0x20 混淆）按查询数据包原样覆写。
// 覆写后的回复与缓存副本仅在这两处不同。
func RewriteCachedWire(cache []byte, query []byte) []byte {
	if len(cache) < 12 || len(query) < 12 {
		return cache
	}
	// 查询 ID
	cache[0] = query[0]
	cache[1] = query[1]
	// 问题部分的域名拼写
	if binary.BigEndian.Uint16(query[4:6]) == 0 {
		return cache
	}
	for i := 12; i < len(cache) && i < len(query); i++ {
		cache[i] = query[i]
		if cache[i] >= dns.NamePointerFlag {
			if i+1 < len(cache) && i+1 < len(query) {
				cache[i+1] = query[i+1]
			}
			break
		}
		if cache[i] == 0x00 {
			break
		}
	}
	return cache
}
