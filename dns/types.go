// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// types.go 文件定义了dns包所使用到的 DNS 协议字段类型。
// 根区权威服务器只需要处理根区所暴露的资源记录类型，
// 因此此处仅收录 hdns 实际用到的类型，而非 IANA 注册表的全集。

package dns

import "fmt"

// DNSClass 表示DNS请求的类别，不同的类别对应不同的网络名称空间。
type DNSClass uint16

// DNSClass的常用类别

const (
	DNSClassIN  DNSClass = 1   // Internet [RFC1035]
	DNSClassCH  DNSClass = 3   // Chaos [Moon 87]
	DNSClassANY DNSClass = 255 // 任意类别
)

// String 方法返回 DNS 类别的字符串表示。
func (dnsClass DNSClass) String() string {
	switch dnsClass {
	case DNSClassIN:
		return "IN"
	case DNSClassCH:
		return "CH"
	case DNSClassANY:
		return "ANY"
	default:
		return fmt.Sprintf("Unknown DNS Class: (%d)", dnsClass)
	}
}

// DNSResponseCode 表示DNS回复响应码，用于指示DNS服务器对查询的响应结果。
type DNSResponseCode uint8

// DNS回复的响应码

const (
	DNSResponseCodeNoErr    DNSResponseCode = 0 // 无错误			[RFC1035]
	DNSResponseCodeFormErr  DNSResponseCode = 1 // 格式错误			[RFC1035]
	DNSResponseCodeServFail DNSResponseCode = 2 // 服务器失败		[RFC1035]
	DNSResponseCodeNXDomain DNSResponseCode = 3 // 不存在的域名		[RFC1035]
	DNSResponseCodeNotImp   DNSResponseCode = 4 // 未实现			[RFC1035]
	DNSResponseCodeRefused  DNSResponseCode = 5 // 查询被拒绝		[RFC1035]
	DNSResponseCodeNotAuth  DNSResponseCode = 9 // 服务器对区域无权威性	[RFC2136]
	DNSResponseCodeNotZone  DNSResponseCode = 10 // 名称不在区域中	[RFC2136]
)

// String 方法返回 DNS 响应码的字符串表示。
func (drc DNSResponseCode) String() string {
	switch drc {
	default:
		return fmt.Sprintf("Unknown DNS Response Code: (%d)", drc)
	case DNSResponseCodeNoErr:
		return "No Error"
	case DNSResponseCodeFormErr:
		return "Format Error"
	case DNSResponseCodeServFail:
		return "Server Failure"
	case DNSResponseCodeNXDomain:
		return "Non-Existent Domain"
	case DNSResponseCodeNotImp:
		return "Not Implemented"
	case DNSResponseCodeRefused:
		return "Query Refused"
	case DNSResponseCodeNotAuth:
		return "Server Not Authoritative for zone"
	case DNSResponseCodeNotZone:
		return "Name not contained in zone"
	}
}

// DNSOpCode 表示DNS操作码，用于指示DNS请求的操作类型。
type DNSOpCode uint8

// DNSOpCode常用的操作码
const (
	DNSOpCodeQuery  DNSOpCode = 0 // 标准查询
	DNSOpCodeIQuery DNSOpCode = 1 // 反向查询
	DNSOpCodeStatus DNSOpCode = 2 // 服务器状态请求
	DNSOpCodeNotify DNSOpCode = 4 // 通知
	DNSOpCodeUpdate DNSOpCode = 5 // 更新
)

// DNSType 表示 DNS资源记录 中的 TYPE 字段及 DNS问题 中的 QTYPE 字段。
//   - QTYPE 字段用于指示查询的资源记录类型。
//   - TYPE 字段用于指示资源记录的类型。
//
// QTYPE 是 TYPE 的超集，其包含了额外的查询类型。
type DNSType uint16

// 根区名称资源可能暴露的资源记录及查询类型

const (
	DNSRRTypeA          DNSType = 1   // 主机地址 [RFC1035]
	DNSRRTypeNS         DNSType = 2   // 权威名称服务器 [RFC1035]
	DNSRRTypeCNAME      DNSType = 5   // 别名的规范名称 [RFC1035]
	DNSRRTypeSOA        DNSType = 6   // 标记权威区域的开始 [RFC1035]
	DNSRRTypePTR        DNSType = 12  // 域名指针 [RFC1035]
	DNSRRTypeMX         DNSType = 15  // 邮件交换 [RFC1035]
	DNSRRTypeTXT        DNSType = 16  // 文本字符串 [RFC1035]
	DNSRRTypeRP         DNSType = 17  // 负责人员 [RFC1183]
	DNSRRTypeSIG        DNSType = 24  // 安全签名 [RFC2535][RFC2931]
	DNSRRTypeAAAA       DNSType = 28  // IP6地址 [RFC3596]
	DNSRRTypeLOC        DNSType = 29  // 位置信息 [RFC1876]
	DNSRRTypeSRV        DNSType = 33  // 服务器选择 [RFC2782]
	DNSRRTypeDNAME      DNSType = 39  // DNAME [RFC6672]
	DNSRRTypeOPT        DNSType = 41  // OPT [RFC6891][RFC3225]
	DNSRRTypeDS         DNSType = 43  // 委托签名者 [RFC4034][RFC3658]
	DNSRRTypeSSHFP      DNSType = 44  // SSH密钥指纹 [RFC4255]
	DNSRRTypeRRSIG      DNSType = 46  // RRSIG [RFC4034][RFC3755]
	DNSRRTypeNSEC       DNSType = 47  // NSEC [RFC4034][RFC3755]
	DNSRRTypeDNSKEY     DNSType = 48  // DNSKEY [RFC4034][RFC3755]
	DNSRRTypeNSEC3      DNSType = 50  // NSEC3 [RFC5155]
	DNSRRTypeTLSA       DNSType = 52  // TLSA [RFC6698]
	DNSRRTypeSMIMEA     DNSType = 53  // S/MIME证书关联 [RFC8162]
	DNSRRTypeOPENPGPKEY DNSType = 61  // OpenPGP密钥 [RFC7929]
	DNSQTypeANY         DNSType = 255 // 请求任意类型的资源记录 [RFC1035]
	DNSRRTypeURI        DNSType = 256 // URI [RFC7553]

	DNSRRTypeUnknown DNSType = 0 // 未知类型
)

// String 方法返回 DNS 资源记录类型的字符串表示。
func (dnsType DNSType) String() string {
	switch dnsType {
	default:
		return fmt.Sprintf("Unknown DNS RR Type: (%d)", dnsType)
	case DNSRRTypeA:
		return "A"
	case DNSRRTypeNS:
		return "NS"
	case DNSRRTypeCNAME:
		return "CNAME"
	case DNSRRTypeSOA:
		return "SOA"
	case DNSRRTypePTR:
		return "PTR"
	case DNSRRTypeMX:
		return "MX"
	case DNSRRTypeTXT:
		return "TXT"
	case DNSRRTypeRP:
		return "RP"
	case DNSRRTypeSIG:
		return "SIG"
	case DNSRRTypeAAAA:
		return "AAAA"
	case DNSRRTypeLOC:
		return "LOC"
	case DNSRRTypeSRV:
		return "SRV"
	case DNSRRTypeDNAME:
		return "DNAME"
	case DNSRRTypeOPT:
		return "OPT"
	case DNSRRTypeDS:
		return "DS"
	case DNSRRTypeSSHFP:
		return "SSHFP"
	case DNSRRTypeRRSIG:
		return "RRSIG"
	case DNSRRTypeNSEC:
		return "NSEC"
	case DNSRRTypeDNSKEY:
		return "DNSKEY"
	case DNSRRTypeNSEC3:
		return "NSEC3"
	case DNSRRTypeTLSA:
		return "TLSA"
	case DNSRRTypeSMIMEA:
		return "SMIMEA"
	case DNSRRTypeOPENPGPKEY:
		return "OPENPGPKEY"
	case DNSQTypeANY:
		return "ANY"
	case DNSRRTypeURI:
		return "URI"
	}
}

// DNSSECAlgorithm 表示DNSSEC记录所使用的签名算法。
// 更多信息请参阅 RFC 4034 第 5.1 节。
type DNSSECAlgorithm uint8

// DNSSEC已知的签名算法 RFC 4034 Appendix A.1.
const (
	DNSSECAlgorithmReserved        DNSSECAlgorithm = 0
	DNSSECAlgorithmRSASHA1         DNSSECAlgorithm = 5  // [RFC3110]
	DNSSECAlgorithmRSASHA256       DNSSECAlgorithm = 8  // [RFC5702]
	DNSSECAlgorithmRSASHA512       DNSSECAlgorithm = 10 // [RFC5702]
	DNSSECAlgorithmECDSAP256SHA256 DNSSECAlgorithm = 13 // [RFC6605]
	DNSSECAlgorithmECDSAP384SHA384 DNSSECAlgorithm = 14 // [RFC6605]
	DNSSECAlgorithmED25519         DNSSECAlgorithm = 15 // [RFC8080]
	DNSSECAlgorithmPRIVATEDNS      DNSSECAlgorithm = 253 // Private DNS [RFC4034 Appendix A.1.1.]
	DNSSECAlgorithmPRIVATEOID      DNSSECAlgorithm = 254 // Private OID [RFC4034 Appendix A.1.1.]
)

// DNSKEYFlag 表示DNSKEY记录的密钥标志字段。
// 更多信息请参阅 RFC 4034 第 2.1.1 节。
type DNSKEYFlag uint16

// DNSSEC已定义的密钥标志
const (
	// DNSKEYFlagOtherKey 表示其他密钥
	DNSKEYFlagOtherKey DNSKEYFlag = 0
	// DNSKEYFlagZoneKey 256 表示区域密钥 ZSK (Zone Signing Key)
	DNSKEYFlagZoneKey DNSKEYFlag = 256
	// DNSKEYFlagSecureEntryPoint 257 表示KSK (Key Signing Key) (Secure Entry Point)
	DNSKEYFlagSecureEntryPoint DNSKEYFlag = 257
)

// DNSKEYProtocol 表示DNSKEY记录的密钥协议字段。
// 更多信息请参阅 RFC 4034 第 2.1.2 节。
// 3为协议默认值，0为保留值
type DNSKEYProtocol uint8

const (
	DNSKEYProtocolReserved DNSKEYProtocol = 0
	DNSKEYProtocolValue    DNSKEYProtocol = 3
)

// DNSSECDigestType 表示DNSSEC记录的摘要类型。
type DNSSECDigestType uint8

// DNSSEC已定义的摘要类型 [RFC4034 Appendix A.2.]
const (
	DNSSECDigestTypeReserved DNSSECDigestType = 0
	DNSSECDigestTypeSHA1     DNSSECDigestType = 1
	DNSSECDigestTypeSHA256   DNSSECDigestType = 2
	DNSSECDigestTypeSHA384   DNSSECDigestType = 4
)
