// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// dnssec.go 提供了一些 DNSSEC 相关的 RR 级辅助函数，
// 区域签名器（RootZone）使用它们来生成 DNSKEY、RRSIG 及 DS 资源记录。
// RDATA 级的实现位于 dns 包的 dnssec.go 文件中。

package xperi

import (
	"crypto/ed25519"

	"github.com/tochusc/hdns/dns"
)

// GenerateRRDNSKEY 生成 DNSKEY RR，并返回私钥字节
// 传入参数：
//   - zName: 区域名
//   - algo: DNSSEC 算法
//   - flag: DNSKEY Flag
//
// 返回值：
//   - DNSKEY RR
//   - 私钥字节
func GenerateRRDNSKEY(zName string, algo dns.DNSSECAlgorithm, flag dns.DNSKEYFlag) (dns.DNSResourceRecord, []byte) {
	rdata, privKey := dns.GenerateDNSKEY(algo, flag)
	rr := dns.DNSResourceRecord{
		Name:  zName,
		Type:  dns.DNSRRTypeDNSKEY,
		Class: dns.DNSClassIN,
		TTL:   86400,
		RDLen: uint16(rdata.Size()),
		RData: &rdata,
	}
	return rr, privKey
}

// GenerateRRDNSKEYFromSeed 由 32 字节的 ed25519 种子生成确定性的 DNSKEY RR。
// 相同的种子总是产生相同的 DNSKEY，用于从持久化密钥材料重建区域密钥。
func GenerateRRDNSKEYFromSeed(zName string, flag dns.DNSKEYFlag, seed []byte, ttl uint32) dns.DNSResourceRecord {
	key := ed25519.NewKeyFromSeed(seed)
	rdata := dns.DNSRDATADNSKEY{
		Flags:     flag,
		Protocol:  dns.DNSKEYProtocolValue,
		Algorithm: dns.DNSSECAlgorithmED25519,
		PublicKey: []byte(key.Public().(ed25519.PublicKey)),
	}
	return dns.DNSResourceRecord{
		Name:  zName,
		Type:  dns.DNSRRTypeDNSKEY,
		Class: dns.DNSClassIN,
		TTL:   ttl,
		RDLen: uint16(rdata.Size()),
		RData: &rdata,
	}
}

// GenerateRRRRSIG 根据传入参数生成 RRSIG RR，对 RRSET 进行签名。
// RRSET 会在签名前被规范化，因此无需外部保证传入顺序。
// 传入参数：
//   - rrSet: 要签名的 RR 集合
//   - algo: 签名算法
//   - expiration: 签名过期时间
//   - inception: 签名生效时间
//   - keyTag: 签名公钥的 Key Tag
//   - signerName: 签名者名称
//   - privKey: 签名私钥的 字节编码
//
// 返回值：
//   - RRSIG RR，其所有者名称与 TTL 与被签名的 RRSET 一致
func GenerateRRRRSIG(rrSet []dns.DNSResourceRecord, algo dns.DNSSECAlgorithm,
	expiration, inception uint32, keyTag uint16,
	signerName string, privKey []byte) dns.DNSResourceRecord {

	rdata := dns.GenerateRRSIG(rrSet, algo, expiration, inception, keyTag, signerName, privKey)
	return dns.DNSResourceRecord{
		Name:  rrSet[0].Name,
		Type:  dns.DNSRRTypeRRSIG,
		Class: dns.DNSClassIN,
		TTL:   rrSet[0].TTL,
		RDLen: uint16(rdata.Size()),
		RData: &rdata,
	}
}

// GenerateRRDS 根据参数生成 DNSKEY 的 DS RR。
// 传入参数：
//   - oName: DNSKEY 的所有者名称
//   - kRDATA: DNSKEY RDATA
//   - dType: 所使用的摘要算法类型
//
// 返回值：
//   - DS RR
func GenerateRRDS(oName string, kRDATA dns.DNSRDATADNSKEY, dType dns.DNSSECDigestType) dns.DNSResourceRecord {
	rdata := dns.GenerateDS(oName, kRDATA, dType)
	return dns.DNSResourceRecord{
		Name:  oName,
		Type:  dns.DNSRRTypeDS,
		Class: dns.DNSClassIN,
		TTL:   86400,
		RDLen: uint16(rdata.Size()),
		RData: &rdata,
	}
}
