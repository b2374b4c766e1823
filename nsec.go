// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// nsec.go 文件定义了否定回答的 NSEC 证明合成。
//
// 名称树以不透明哈希为键，不存在天然可排序的后继名称，
// 因此 NXDOMAIN 与 NODATA 的 NSEC 证明按需合成：
// 在根区合法标签空间 [0-9a-z-]（标签不以 '-' 开头或结尾）内，
// 取被查询标签的直接前驱与直接后继作为最小覆盖区间。
//
// 合成规则：
//   - 后继：标签未达 63 字节时追加 '0'；达到上限时末字符进位递增。
//   - 前驱：末字符在合法字母表内递减后以 'z' 填充至 63 字节；
//     末字符无法递减时截去它，剩余前缀为合法标签即以其为前驱，
//     否则继续向前递减；均不可得时退化为区域顶点 "."。
//   - 通配符证明：区间 (".", "0.") 覆盖 "*."
//     （合法标签均以 [0-9a-z] 开头，该区间内不存在合法名称）。
//
// 合成出的前驱/后继名称并不真实存在于区域中，严格校验
// 所有者名称存在性的验证器可能拒绝这种证明；这是已知的偏差，
// 与链上名称空间的哈希键结构共生。

package hdns

import (
	"strings"

	"github.com/tochusc/hdns/dns"
)

// 预置的 NSEC 类型位图。
var (
	// TypeMapRoot 为区域顶点的类型位图。
	TypeMapRoot = []dns.DNSType{
		dns.DNSRRTypeNS, dns.DNSRRTypeSOA, dns.DNSRRTypeRRSIG,
		dns.DNSRRTypeNSEC, dns.DNSRRTypeDNSKEY,
	}
	// TypeMapEmpty 为不存在名称的类型位图。
	TypeMapEmpty = []dns.DNSType{dns.DNSRRTypeRRSIG, dns.DNSRRTypeNSEC}
	// TypeMapNS 为仅有委托的名称的类型位图。
	TypeMapNS = []dns.DNSType{dns.DNSRRTypeNS, dns.DNSRRTypeRRSIG, dns.DNSRRTypeNSEC}
	// TypeMapTXT 为仅有 TXT 的名称的类型位图。
	TypeMapTXT = []dns.DNSType{dns.DNSRRTypeTXT, dns.DNSRRTypeRRSIG, dns.DNSRRTypeNSEC}
	// TypeMapA 为仅有 A 的名称的类型位图。
	TypeMapA = []dns.DNSType{dns.DNSRRTypeA, dns.DNSRRTypeRRSIG, dns.DNSRRTypeNSEC}
	// TypeMapAAAA 为仅有 AAAA 的名称的类型位图。
	TypeMapAAAA = []dns.DNSType{dns.DNSRRTypeAAAA, dns.DNSRRTypeRRSIG, dns.DNSRRTypeNSEC}
)

// maxLabelLen 为单个 DNS 标签的最大长度。
const maxLabelLen = 63

// decChar 在根区合法字母表内递减一个字符。
// 字母表顺序为 '-' < '0'..'9' < 'a'..'z'；'-' 不可再递减，返回 0。
func decChar(c byte) byte {
	switch {
	case c == 'a':
		return '9'
	case c == '0':
		return '-'
	case c == '-':
		return 0
	case c > 'a' && c <= 'z':
		return c - 1
	case c > '0' && c <= '9':
		return c - 1
	default:
		return 0
	}
}

// incChar 在根区合法字母表内递增一个字符，不可再递增时返回 0。
func incChar(c byte) byte {
	switch {
	case c == '9':
		return 'a'
	case c == 'z':
		return 0
	case c >= '0' && c < '9':
		return c + 1
	case c >= 'a' && c < 'z':
		return c + 1
	case c == '-':
		return '0'
	default:
		return 0
	}
}

// prevName 返回标签在合法标签空间内的直接前驱（绝对域名）。
// 无前驱时返回区域顶点 "."。
func prevName(label string) string {
	for end := len(label); end > 0; end-- {
		c := decChar(label[end-1])
		if c == 0 {
			// 末字符不可递减，缩短标签重试
			trimmed := label[:end-1]
			if trimmed != "" && trimmed[len(trimmed)-1] != '-' && trimmed[0] != '-' {
				// 去掉末字符后的前缀本身就是直接前驱
				return trimmed + "."
			}
			continue
		}
		prev := label[:end-1] + string(c)
		if prev[0] == '-' {
			continue
		}
		// 以 'z' 填充至标签长度上限，贴近被查询标签
		prev += strings.Repeat("z", maxLabelLen-len(prev))
		return prev + "."
	}
	return "."
}

// nextName 返回标签在合法标签空间内的直接后继（绝对域名）。
func nextName(label string) string {
	if len(label) < maxLabelLen {
		return label + "0."
	}
	next := []byte(label)
	for i := len(next) - 1; i >= 0; i-- {
		c := incChar(next[i])
		if c != 0 {
			next[i] = c
			return string(next[:i+1]) + "."
		}
	}
	// 全 'z' 标签没有同长后继，退化为最大标签本身
	return label + "."
}

// nsecRR 构造一条 NSEC 资源记录。
func nsecRR(owner, next string, typeBitMap []dns.DNSType) dns.DNSResourceRecord {
	rdata := &dns.DNSRDATANSEC{
		NextDomainName: next,
		TypeBitMaps:    typeBitMap,
	}
	return dns.DNSResourceRecord{
		Name:  owner,
		Type:  dns.DNSRRTypeNSEC,
		Class: dns.DNSClassIN,
		TTL:   soaMinimum,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
}

// ProveNameNX 合成覆盖被查询标签的名称证明 NSEC。
func ProveNameNX(tld string) dns.DNSResourceRecord {
	return nsecRR(prevName(tld), nextName(tld), TypeMapEmpty)
}

// ProveWildcardNX 合成覆盖 "*." 的通配符证明 NSEC。
// 合法标签均以 [0-9a-z] 开头，区间 (".", "0.") 内不存在合法名称。
func ProveWildcardNX() dns.DNSResourceRecord {
	return nsecRR(".", "0.", TypeMapEmpty)
}

// ProveNX 合成 NXDOMAIN 所需的 NSEC 证明对：
// 名称证明 与 通配符证明。
func ProveNX(tld string) []dns.DNSResourceRecord {
	return []dns.DNSResourceRecord{
		ProveNameNX(tld),
		ProveWildcardNX(),
	}
}

// ProveNoData 合成 NODATA 证明：
// 所有者名称存在、但被查询类型不存在时，
// NSEC 的所有者即为该名称，类型位图为该名称实际拥有的类型。
func ProveNoData(name string, typeBitMap []dns.DNSType) dns.DNSResourceRecord {
	return nsecRR(name, nextName(strings.TrimSuffix(name, ".")), typeBitMap)
}

// IsRootLegalQuery 判断查询名称的每个标签是否仅含根区可查询的字符。
// 除合法标签字符 [0-9a-z-] 外，服务子域查询所需的 '_' 与
// 通配符标签 '*' 同样允许出现；其余字符一律以 REFUSED 拒绝。
func IsRootLegalQuery(qname string) bool {
	if qname == "." || qname == "" {
		return true
	}
	name := strings.TrimSuffix(qname, ".")
	for _, label := range strings.Split(name, ".") {
		if len(label) == 0 || len(label) > maxLabelLen {
			return false
		}
		if label == "*" {
			continue
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || c == '-' || c == '_' {
				continue
			}
			return false
		}
	}
	return true
}
