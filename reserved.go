// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// reserved.go 文件定义了 保留名称表 的内存实现 与 顶级域黑名单。
// 黑名单收录已被其他名称生态占用的顶级域，
// 对它们的查询直接进入否定回答合成，不触碰名称树。

package hdns

import "strings"

// MapReservedTable 为 map 实现的保留名称表。
type MapReservedTable map[string]*ReservedEntry

// GetByName 根据顶级域返回保留名称条目，不存在时返回 nil。
func (t MapReservedTable) GetByName(tld string) *ReservedEntry {
	return t[strings.ToLower(tld)]
}

// Blacklist 为顶级域黑名单。
type Blacklist map[string]struct{}

// NewBlacklist 由顶级域列表构建黑名单。
// 传入 nil 时使用 DefaultBlacklist。
func NewBlacklist(tlds []string) Blacklist {
	if tlds == nil {
		tlds = DefaultBlacklist
	}
	bl := make(Blacklist, len(tlds))
	for _, tld := range tlds {
		bl[strings.ToLower(tld)] = struct{}{}
	}
	return bl
}

// Has 判断顶级域是否在黑名单中。
func (bl Blacklist) Has(tld string) bool {
	_, ok := bl[tld]
	return ok
}

// DefaultBlacklist 为默认的顶级域黑名单：
// 已被其他名称生态占用、或作为其保留用途的顶级域。
var DefaultBlacklist = []string{
	"bit",  // Namecoin
	"eth",  // ENS
	"exit", // Tor
	"gnu",  // GNUnet
	"i2p",  // Invisible Internet Project
	"onion", // Tor
	"tor",  // OnioNS
	"zkey", // GNS
}
