// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// metarr.go 文件定义了 伪资源记录（Pseudo RR）的辅助函数。
// 目前支持的伪资源记录仅有 EDNS0 的 OPT 记录（RFC 6891）。
// OPT 记录复用了资源记录的字段：
//   - Class 字段存储请求者的最大 UDP 载荷大小；
//   - TTL 字段存储扩展响应码、EDNS版本 及 DO 位。

package dns

import (
	"encoding/binary"
	"fmt"
)

var pseudoRRType = map[DNSType]interface{}{
	DNSRRTypeOPT: nil,
}

// IsPseudoRR 判断资源记录是否为伪资源记录。
func IsPseudoRR(rr *DNSResourceRecord) bool {
	_, ok := pseudoRRType[rr.Type]
	return ok
}

// OPT TTL 编码格式
// +0 (MSB)                            +1 (LSB)
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
// |         EXTENDED-RCODE        |            VERSION            |
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
// | DO|                           Z                               |
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+

// EncodeDNSRROPTTTL 编码 OPT 伪资源记录的 TTL 字段。
func EncodeDNSRROPTTTL(ercode int, version int, do bool, z int) uint32 {
	var ttl [4]byte
	ttl[0] = uint8(ercode)
	ttl[1] = uint8(version)
	binary.BigEndian.PutUint16(ttl[2:], uint16(z))
	if do {
		ttl[2] |= 0x80
	}
	return binary.BigEndian.Uint32(ttl[:])
}

// NewDNSRROPT 创建一个 OPT 伪资源记录。
//   - udpsize: 请求者可接收的最大 UDP 载荷大小
//   - ttl: 经 EncodeDNSRROPTTTL 编码的 TTL 字段
//   - rdata: OPT RDATA，无选项时传入空的 DNSRDATAOPT
func NewDNSRROPT(udpsize int, ttl uint32, rdata *DNSRDATAOPT) *DNSResourceRecord {
	return &DNSResourceRecord{
		Name:  ".",
		Type:  DNSRRTypeOPT,
		Class: DNSClass(udpsize),
		TTL:   ttl,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
}

// DNSRROPT 为 OPT 伪资源记录的易读封装。
type DNSRROPT struct {
	rr *DNSResourceRecord
}

// NewPseudoRR 根据资源记录类型返回相应的伪资源记录封装。
func NewPseudoRR(rr *DNSResourceRecord) *DNSRROPT {
	switch rr.Type {
	case DNSRRTypeOPT:
		return &DNSRROPT{rr}
	default:
		return nil
	}
}

// UDPSize 返回 OPT 伪资源记录所声明的最大 UDP 载荷大小。
func (opt *DNSRROPT) UDPSize() int {
	return int(opt.rr.Class)
}

// DO 返回 OPT 伪资源记录的 DNSSEC OK 位。
func (opt *DNSRROPT) DO() bool {
	return (opt.rr.TTL>>15)&1 == 1
}

func (opt *DNSRROPT) String() string {
	rr := opt.rr
	ttl := rr.TTL
	ercode := int(ttl >> 24)
	version := int(ttl >> 16 & 0xff)
	do := (ttl>>15)&1 == 1
	z := int(ttl & 0x7fff)

	return fmt.Sprint(
		"### Pseudo Resource Record OPT ###\n",
		"UDP Payload Size:", int(rr.Class), "\n",
		"Extended RCODE:", ercode, "\n",
		"Version:", version, "\n",
		"DO:", do, "\n",
		"Z: ", z, "\n",
		"RData:\n", rr.RData.String(),
	)
}
