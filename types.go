// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// types.go 文件定义了 hdns 包中所需的配置及外部协作者类型。
// 根服务器的全部外部依赖（名称树、保留名称表、ICANN 回退、时钟）
// 均以注入接口的形式表达，而非全局状态。

package hdns

import (
	"context"
	"net"
	"time"

	"github.com/tochusc/hdns/dns"
	"github.com/tochusc/hdns/naming"
)

// ServerConfig 记录 根区 DNS 服务器的相关配置
type ServerConfig struct {
	// Host 为 DNS 服务器的监听 IP 地址
	Host net.IP
	// Port 为 DNS 服务器的监听端口
	Port int
	// PublicHost 为服务器对外公布的 IP 地址，
	// 区域顶点的 NS 记录及其胶水由该地址合成。
	PublicHost net.IP
	// Key 为 32 字节的区域主密钥种子，KSK 与 ZSK 由其派生。
	Key []byte
	// CacheSize 为响应缓存的条目数上限。
	CacheSize int
	// NoSig0 为 true 时禁用逐响应的 SIG(0) 式尾部签名。
	NoSig0 bool
	// Blacklist 为跳过名称树查询的顶级域黑名单。
	Blacklist []string
	// Params 为名称拍卖的网络参数。
	Params *naming.Params
	// Timeout 为单个请求的处理期限。
	Timeout time.Duration

	// SnifferMode 为 true 时使用链路层嗅探模式收发数据包。
	SnifferMode bool
	// NetworkDevice 为嗅探模式所用网络设备的名称。
	NetworkDevice string
	// MAC 为嗅探模式下服务器的 MAC 地址。
	MAC net.HardwareAddr
	// MTU 为网络设备的最大传输单元。
	MTU int
}

// DefaultCacheSize 为响应缓存的默认条目数上限。
const DefaultCacheSize = 3000

// DefaultTimeout 为单个请求的默认处理期限。
const DefaultTimeout = 5 * time.Second

// Clock 为 UTC 时间来源，SOA 序列号及签名窗口由其推导。
type Clock interface {
	Now() time.Time
}

// SystemClock 为系统时钟实现的 Clock。
type SystemClock struct{}

// Now 返回当前的 UTC 时间。
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// TreeLookup 为名称树查询协作者：
// 根据名称哈希返回持久化的名称状态字节，名称不存在时返回 (nil, nil)。
// 该协作者由区块链层提供，测试中为内存映射上的闭包。
type TreeLookup func(ctx context.Context, nameHash [naming.NameHashLen]byte) ([]byte, error)

// ReservedEntry 表示保留名称表中的一个条目。
type ReservedEntry struct {
	// Target 为保留名称在 ICANN 名称空间下的目标域名。
	Target string
	// Value 为认领该名称可获得的金额。
	Value uint64
	// Root 为 true 时该名称在 ICANN 根区存在，未认领前动态回退。
	Root bool
}

// ReservedTable 为保留名称表协作者。
type ReservedTable interface {
	// GetByName 根据顶级域返回保留名称条目，不存在时返回 nil。
	GetByName(tld string) *ReservedEntry
}

// IcannStub 为 ICANN 回退解析协作者，
// 仅当保留名称未被认领且 root 为 true 时使用。
type IcannStub interface {
	Lookup(ctx context.Context, qname string, qtype dns.DNSType) (*dns.DNSMessage, error)
}

// Middleware 为查询拦截钩子：在黑名单检查之前被调用，
// 返回非 nil 的消息时该消息作为权威回复直接返回。
// 可用于在黑名单顶级域下托管子生态。
type Middleware func(qname string, qtype dns.DNSType) *dns.DNSMessage
