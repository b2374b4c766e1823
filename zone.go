// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// zone.go 文件定义了 根区顶点 的记录合成与 DNSSEC 签名器。
//
// 区域顶点的记录包括 SOA、NS、DNSKEY 与 DS：
//   - SOA 序列号由 UTC 日期推导（YYYYMMDDHH）；
//   - NS 指向由公网地址合成的 _synth 指针名称，并附带 A/AAAA 胶水；
//   - DNSKEY 为 KSK 与 ZSK 两把 ED25519 密钥，由持久化主密钥派生；
//   - DS 为 KSK 的 SHA-256 摘要。
//
// ZSK 按类型签名所有 RRSet；DNSKEY 及区域顶点的 DS 回答由 KSK 签名。
// ED25519 签名是确定性的：同一规范化 RRSet 的签名结果总是一致。

package hdns

import (
	"errors"
	"fmt"
	"net"

	"golang.org/x/crypto/blake2b"

	"github.com/tochusc/hdns/dns"
	"github.com/tochusc/hdns/dns/xperi"
	"github.com/tochusc/hdns/resource"
)

// ErrBadKey 表示非法的区域主密钥。
var ErrBadKey = errors.New("hdns: zone master key must be 32 bytes")

// 区域顶点记录的 TTL 及 SOA 定时参数。
const (
	apexTTL    = 86400
	soaRefresh = 1800
	soaRetry   = 900
	soaExpire  = 604800
	soaMinimum = 86400
)

// 签名有效窗口（秒）。
const (
	sigBackdate = 3600
	sigLifespan = 86400
)

// ZoneKeys 持有由主密钥派生的区域密钥对。
// 派生是确定性的：同一主密钥总是产生同一对 KSK/ZSK。
// 密钥在初始化后不可变，可被任意共享。
type ZoneKeys struct {
	kskSeed []byte
	zskSeed []byte

	// KSKRR 与 ZSKRR 为两把密钥的 DNSKEY 资源记录。
	KSKRR dns.DNSResourceRecord
	ZSKRR dns.DNSResourceRecord
	// KSKTag 与 ZSKTag 为两把密钥的 Key Tag。
	KSKTag uint16
	ZSKTag uint16
}

// deriveSeed 以域分隔标签从主密钥派生一个子密钥种子。
func deriveSeed(master []byte, label string) []byte {
	seed := blake2b.Sum256(append(append([]byte{}, master...), label...))
	return seed[:]
}

// NewZoneKeys 由 32 字节主密钥派生区域密钥对。
// 主密钥长度不合法时返回 ErrBadKey（启动期致命错误）。
func NewZoneKeys(master []byte) (*ZoneKeys, error) {
	if len(master) != 32 {
		return nil, fmt.Errorf("function NewZoneKeys failed: %w: got %d bytes", ErrBadKey, len(master))
	}
	keys := &ZoneKeys{
		kskSeed: deriveSeed(master, "hdns/ksk"),
		zskSeed: deriveSeed(master, "hdns/zsk"),
	}
	keys.KSKRR = xperi.GenerateRRDNSKEYFromSeed(".", dns.DNSKEYFlagSecureEntryPoint, keys.kskSeed, apexTTL)
	keys.ZSKRR = xperi.GenerateRRDNSKEYFromSeed(".", dns.DNSKEYFlagZoneKey, keys.zskSeed, apexTTL)
	keys.KSKTag = dns.CalculateKeyTag(*keys.KSKRR.RData.(*dns.DNSRDATADNSKEY))
	keys.ZSKTag = dns.CalculateKeyTag(*keys.ZSKRR.RData.(*dns.DNSRDATADNSKEY))
	return keys, nil
}

// ZSKPublic 返回 ZSK 的公钥字节，用于验证 SIG(0) 尾部签名。
func (keys *ZoneKeys) ZSKPublic() []byte {
	return keys.ZSKRR.RData.(*dns.DNSRDATADNSKEY).PublicKey
}

// zskPrivate 返回 ZSK 的 ed25519 种子。
func (keys *ZoneKeys) zskPrivate() []byte {
	return keys.zskSeed
}

// kskPrivate 返回 KSK 的 ed25519 种子。
func (keys *ZoneKeys) kskPrivate() []byte {
	return keys.kskSeed
}

// RootZone 合成区域顶点记录并签名 RRSet。
type RootZone struct {
	Keys       *ZoneKeys
	PublicHost net.IP
	Clock      Clock
}

// NewRootZone 创建一个根区顶点。
func NewRootZone(keys *ZoneKeys, publicHost net.IP, clock Clock) *RootZone {
	return &RootZone{
		Keys:       keys,
		PublicHost: publicHost,
		Clock:      clock,
	}
}

// Serial 返回由 UTC 日期推导的 SOA 序列号（YYYYMMDDHH）。
func (z *RootZone) Serial() uint32 {
	now := z.Clock.Now().UTC()
	return uint32(now.Year())*1000000 +
		uint32(now.Month())*10000 +
		uint32(now.Day())*100 +
		uint32(now.Hour())
}

// SynthName 返回由公网地址合成的 _synth 指针名称（绝对域名）。
func (z *RootZone) SynthName() string {
	return resource.ToPointer(z.PublicHost) + "._synth."
}

// SOARR 返回区域顶点的 SOA 资源记录。
func (z *RootZone) SOARR() dns.DNSResourceRecord {
	rdata := &dns.DNSRDATASOA{
		MName:   z.SynthName(),
		RName:   ".",
		Serial:  z.Serial(),
		Refresh: soaRefresh,
		Retry:   soaRetry,
		Expire:  soaExpire,
		Minimum: soaMinimum,
	}
	return dns.DNSResourceRecord{
		Name:  ".",
		Type:  dns.DNSRRTypeSOA,
		Class: dns.DNSClassIN,
		TTL:   apexTTL,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
}

// ApexNS 返回区域顶点的 NS 资源记录。
func (z *RootZone) ApexNS() dns.DNSResourceRecord {
	rdata := &dns.DNSRDATANS{NSDNAME: z.SynthName()}
	return dns.DNSResourceRecord{
		Name:  ".",
		Type:  dns.DNSRRTypeNS,
		Class: dns.DNSClassIN,
		TTL:   apexTTL,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
}

// ApexGlue 返回区域顶点 NS 名称的 A/AAAA 胶水记录。
func (z *RootZone) ApexGlue() dns.DNSResourceRecord {
	name := z.SynthName()
	if ip4 := z.PublicHost.To4(); ip4 != nil {
		rdata := &dns.DNSRDATAA{Address: ip4}
		return dns.DNSResourceRecord{
			Name:  name,
			Type:  dns.DNSRRTypeA,
			Class: dns.DNSClassIN,
			TTL:   apexTTL,
			RDLen: uint16(rdata.Size()),
			RData: rdata,
		}
	}
	rdata := &dns.DNSRDATAAAAA{Address: z.PublicHost.To16()}
	return dns.DNSResourceRecord{
		Name:  name,
		Type:  dns.DNSRRTypeAAAA,
		Class: dns.DNSClassIN,
		TTL:   apexTTL,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
}

// DNSKEYRRs 返回区域顶点的 DNSKEY RRSet（ZSK 在前，KSK 在后）。
func (z *RootZone) DNSKEYRRs() []dns.DNSResourceRecord {
	return []dns.DNSResourceRecord{z.Keys.ZSKRR, z.Keys.KSKRR}
}

// DSRR 返回 KSK 的 DS 资源记录（SHA-256 摘要）。
func (z *RootZone) DSRR() dns.DNSResourceRecord {
	return xperi.GenerateRRDS(".", *z.Keys.KSKRR.RData.(*dns.DNSRDATADNSKEY), dns.DNSSECDigestTypeSHA256)
}

// sigTimes 返回签名的 (过期时间, 生效时间)。
func (z *RootZone) sigTimes() (uint32, uint32) {
	now := uint32(z.Clock.Now().UTC().Unix())
	return now + sigLifespan - sigBackdate, now - sigBackdate
}

// SignRRSet 对一个 RRSet 进行签名，返回相应的 RRSIG 资源记录。
//   - withKSK 为 true 时使用 KSK 签名，否则使用 ZSK。
func (z *RootZone) SignRRSet(rrset []dns.DNSResourceRecord, withKSK bool) dns.DNSResourceRecord {
	expiration, inception := z.sigTimes()
	keyTag := z.Keys.ZSKTag
	privKey := z.Keys.zskPrivate()
	if withKSK {
		keyTag = z.Keys.KSKTag
		privKey = z.Keys.kskPrivate()
	}
	return xperi.GenerateRRRRSIG(
		rrset,
		dns.DNSSECAlgorithmED25519,
		expiration,
		inception,
		keyTag,
		".",
		privKey,
	)
}

// SignSection 按 (所有者名称, 类型) 将消息的一个部分分组签名，
// 并将生成的 RRSIG 追加到该部分之后返回。
// RRSIG 与 OPT 伪记录不参与分组。
// DNSKEY RRSet 及区域顶点的 DS RRSet 由 KSK 签名，其余由 ZSK 签名。
func (z *RootZone) SignSection(section []dns.DNSResourceRecord) []dns.DNSResourceRecord {
	groups := make(map[string][]dns.DNSResourceRecord)
	order := make([]string, 0, len(section))
	for _, rr := range section {
		if rr.Type == dns.DNSRRTypeRRSIG || dns.IsPseudoRR(&rr) {
			continue
		}
		gid := rr.Name + "\x00" + rr.Type.String()
		if _, ok := groups[gid]; !ok {
			order = append(order, gid)
		}
		groups[gid] = append(groups[gid], rr)
	}
	signed := section
	for _, gid := range order {
		rrset := groups[gid]
		withKSK := rrset[0].Type == dns.DNSRRTypeDNSKEY ||
			(rrset[0].Type == dns.DNSRRTypeDS && rrset[0].Name == ".")
		signed = append(signed, z.SignRRSet(rrset, withKSK))
	}
	return signed
}
