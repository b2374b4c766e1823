// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// xperi 包实现了一些 DNSSEC 辅助函数。
//
// # dnssec.go 文件提供了一系列 RR 级的 DNSSEC 辅助函数。
//   - GenerateRRDNSKEY 根据参数生成 DNSKEY RR。
//   - GenerateRRDNSKEYFromSeed 由持久化种子确定性地重建 DNSKEY RR。
//   - GenerateRRRRSIG 根据参数对RRSET进行签名，生成 RRSIG RR。
//   - GenerateRRDS 根据参数生成 DNSKEY 的 DS RR。
package xperi
