// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// rdata.go 文件定义了用于表示 DNS 资源记录 RDATA 的接口 DNSRRRDATA，
// 及根区名称资源所暴露的各个标准资源记录类型的 RDATA 实现。
// DNSSEC 相关的 RDATA 实现位于 rdata_dnssec.go 文件中。

package dns

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

// DNSRRRDATA 接口表示 DNS 资源记录的 RDATA 部分,
// 其常用方法：Size、String、Encode 和 EncodeToBuffer。
//
// RDATA 的具体格式取决于 DNS 资源记录的类型。
// 不同类型的 DNS 资源记录的 RDATA 部分的编码方式很不相同。
// 例如，
//   - 对于 A 类型的 DNS 资源记录，RDATA 部分为 4 字节的 IPv4 地址。
//   - 对于 SRV 类型的 DNS 资源记录，RDATA 部分为 优先级、权重、端口 和一个域名。
//
// 为了实现RDATA的灵活性，任何实现了 DNSRRRDATA 接口的类型
// 都可以作为 DNS 资源记录的 RDATA 部分。
type DNSRRRDATA interface {
	// Type 方法返回 RDATA 部分的类型。
	//  - 其返回值为 DNSType。
	Type() DNSType

	// Size 方法返回 RDATA 部分的大小。
	//  - 其返回值为 RDATA 部分的*准确*大小。
	Size() int

	// String 方法以*易读的形式*返回对应 资源记录 RDATA 部分的 字符串表示。
	String() string

	// Equal 方法判断两个 RDATA 部分是否相等。
	Equal(DNSRRRDATA) bool

	// Encode 方法返回编码后的 RDATA 部分。
	Encode() []byte

	// EncodeToBuffer 方法将编码后的 RDATA 部分写入缓冲区。
	//  - 其接收 缓冲区切片 作为参数。
	//  - 返回值为 写入的字节数 和 错误信息。
	EncodeToBuffer(buffer []byte) (int, error)

	// DecodeFromBuffer 方法从包含 DNS消息 的缓冲区中解码 RDATA 部分。
	// 其接受参数为：
	//  - 缓冲区
	//  - 偏移量
	//  - RDATA 部分的长度，对于某些不依赖RDLEN的RDATA，可传入0。
	// 返回值为：
	//  - 解码后的偏移量
	//  - 错误信息
	//
	// 如果出现错误，返回 -1, 及 相应报错 。
	DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error)
}

// DNSRRRDATAFactory 函数根据 DNS 资源记录的类型返回对应的 RDATA 结构体。
func DNSRRRDATAFactory(rtype DNSType) DNSRRRDATA {
	switch rtype {
	case DNSRRTypeA:
		return &DNSRDATAA{}
	case DNSRRTypeAAAA:
		return &DNSRDATAAAAA{}
	case DNSRRTypeNS:
		return &DNSRDATANS{}
	case DNSRRTypeCNAME:
		return &DNSRDATACNAME{}
	case DNSRRTypePTR:
		return &DNSRDATAPTR{}
	case DNSRRTypeDNAME:
		return &DNSRDATADNAME{}
	case DNSRRTypeSOA:
		return &DNSRDATASOA{}
	case DNSRRTypeTXT:
		return &DNSRDATATXT{}
	case DNSRRTypeSRV:
		return &DNSRDATASRV{}
	case DNSRRTypeURI:
		return &DNSRDATAURI{}
	case DNSRRTypeRP:
		return &DNSRDATARP{}
	case DNSRRTypeLOC:
		return &DNSRDATALOC{}
	case DNSRRTypeSSHFP:
		return &DNSRDATASSHFP{}
	case DNSRRTypeTLSA:
		return &DNSRDATATLSA{}
	case DNSRRTypeSMIMEA:
		return &DNSRDATASMIMEA{}
	case DNSRRTypeOPENPGPKEY:
		return &DNSRDATAOPENPGPKEY{}
	case DNSRRTypeDS:
		return &DNSRDATADS{}
	case DNSRRTypeRRSIG:
		return &DNSRDATARRSIG{}
	case DNSRRTypeSIG:
		return &DNSRDATASIG{}
	case DNSRRTypeNSEC:
		return &DNSRDATANSEC{}
	case DNSRRTypeDNSKEY:
		return &DNSRDATADNSKEY{}
	case DNSRRTypeOPT:
		return &DNSRDATAOPT{}
	default:
		return &DNSRDATAUnknown{
			RRType: rtype,
			RData:  nil,
		}
	}
}

// DNSRDATAUnknown 结构体表示未知类型的 DNS 资源记录的 RDATA 部分。
// - 其包含一个 DNS 资源记录的类型和 RDATA 部分的字节切片。
type DNSRDATAUnknown struct {
	RRType DNSType
	RData  []byte
}

func (rdata *DNSRDATAUnknown) Type() DNSType {
	return rdata.RRType
}

func (rdata *DNSRDATAUnknown) Size() int {
	return len(rdata.RData)
}

func (rdata *DNSRDATAUnknown) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Unknown RDATA: ", rdata.RData,
	)
}

func (rdata *DNSRDATAUnknown) Equal(rr DNSRRRDATA) bool {
	rru, ok := rr.(*DNSRDATAUnknown)
	if !ok {
		return false
	}
	return rdata.RRType == rru.RRType && bytes.Equal(rdata.RData, rru.RData)
}

func (rdata *DNSRDATAUnknown) Encode() []byte {
	encoded := make([]byte, len(rdata.RData))
	copy(encoded, rdata.RData)
	return encoded
}

func (rdata *DNSRDATAUnknown) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAUnknown EncodeToBuffer failed: buffer length %d is less than Unknown RDATA size %d", len(buffer), rdata.Size())
	}
	copy(buffer, rdata.RData)
	return rdata.Size(), nil
}

func (rdata *DNSRDATAUnknown) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	if len(buffer) < offset+rdLen {
		return -1, fmt.Errorf("method DNSRDATAUnknown DecodeFromBuffer failed: buffer length %d is less than offset %d + Unknown RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.RData = make([]byte, rdLen)
	copy(rdata.RData, buffer[offset:offset+rdLen])
	return offset + rdLen, nil
}

// A RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    ADDRESS                    |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATAA 结构体表示 A 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含一个32位 IPv4 地址。
//
// RFC 1035 3.4.1 节 定义了 A 类型的 DNS 资源记录的 RDATA 部分的编码格式。
// 其 Type 值为 1。
type DNSRDATAA struct {
	Address net.IP
}

func (rdata *DNSRDATAA) Type() DNSType {
	return DNSRRTypeA
}

func (rdata *DNSRDATAA) Size() int {
	return net.IPv4len
}

func (rdata *DNSRDATAA) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Address: ", rdata.Address.String(),
	)
}

func (rdata *DNSRDATAA) Equal(rr DNSRRRDATA) bool {
	rra, ok := rr.(*DNSRDATAA)
	if !ok {
		return false
	}
	return rdata.Address.Equal(rra.Address)
}

func (rdata *DNSRDATAA) Encode() []byte {
	return rdata.Address.To4()
}

func (rdata *DNSRDATAA) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAA EncodeToBuffer failed: buffer length %d is less than A RDATA size %d", len(buffer), rdata.Size())
	}
	copy(buffer, rdata.Encode())
	return rdata.Size(), nil
}

func (rdata *DNSRDATAA) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	if len(buffer) < offset+rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAA DecodeFromBuffer failed: buffer length %d is less than offset %d + A RDATA size %d", len(buffer), offset, rdata.Size())
	}
	rdata.Address = net.IPv4(buffer[offset], buffer[offset+1], buffer[offset+2], buffer[offset+3])
	return offset + rdata.Size(), nil
}

// AAAA RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                                               |
// |                    ADDRESS                    |
// |                  （128 bits）                  |
// |                                               |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATAAAAA 结构体表示 AAAA 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含一个128位 IPv6 地址。
//
// RFC 3596 2.2 节 定义了 AAAA 类型的 DNS 资源记录的 RDATA 部分的编码格式。
// 其 Type 值为 28。
type DNSRDATAAAAA struct {
	Address net.IP
}

func (rdata *DNSRDATAAAAA) Type() DNSType {
	return DNSRRTypeAAAA
}

func (rdata *DNSRDATAAAAA) Size() int {
	return net.IPv6len
}

func (rdata *DNSRDATAAAAA) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Address: ", rdata.Address.String(),
	)
}

func (rdata *DNSRDATAAAAA) Equal(rr DNSRRRDATA) bool {
	rraaaa, ok := rr.(*DNSRDATAAAAA)
	if !ok {
		return false
	}
	return rdata.Address.Equal(rraaaa.Address)
}

func (rdata *DNSRDATAAAAA) Encode() []byte {
	return rdata.Address.To16()
}

func (rdata *DNSRDATAAAAA) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAAAAA EncodeToBuffer failed: buffer length %d is less than AAAA RDATA size %d", len(buffer), rdata.Size())
	}
	copy(buffer, rdata.Encode())
	return rdata.Size(), nil
}

func (rdata *DNSRDATAAAAA) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	if len(buffer) < offset+rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAAAAA DecodeFromBuffer failed: buffer length %d is less than offset %d + AAAA RDATA size %d", len(buffer), offset, rdata.Size())
	}
	address := make(net.IP, net.IPv6len)
	copy(address, buffer[offset:offset+net.IPv6len])
	rdata.Address = address
	return offset + rdata.Size(), nil
}

// NS RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                   NSDNAME                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATANS 结构体表示 NS 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含一个 <domain-name> ，指向所查询区域的权威 DNS 服务器。
//
// RFC 1035 3.3.11 节 定义了 NS 类型的 DNS 资源记录。
// 其 Type 值为 2。
type DNSRDATANS struct {
	NSDNAME string
}

func (rdata *DNSRDATANS) Type() DNSType {
	return DNSRRTypeNS
}

func (rdata *DNSRDATANS) Size() int {
	return GetDomainNameWireLen(&rdata.NSDNAME)
}

func (rdata *DNSRDATANS) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"NS: ", rdata.NSDNAME,
	)
}

func (rdata *DNSRDATANS) Equal(rr DNSRRRDATA) bool {
	rrns, ok := rr.(*DNSRDATANS)
	if !ok {
		return false
	}
	return rdata.NSDNAME == rrns.NSDNAME
}

func (rdata *DNSRDATANS) Encode() []byte {
	return EncodeDomainName(&rdata.NSDNAME)
}

func (rdata *DNSRDATANS) EncodeToBuffer(buffer []byte) (int, error) {
	rdataSize, err := EncodeDomainNameToBuffer(&rdata.NSDNAME, buffer)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATANS EncodeToBuffer failed: encode NSDNAME failed.\n%v", err)
	}
	return rdataSize, nil
}

func (rdata *DNSRDATANS) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error
	rdata.NSDNAME, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATANS DecodeFromBuffer failed: decode NSDNAME failed.\n%v", err)
	}
	return offset, nil
}

// CNAME RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                     CNAME                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATACNAME 结构体表示 CNAME 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含一个 <domain-name> ，指向所有者名称(Owner Name)的规范名称(Canonical Name)。
//
// RFC 1035 3.3.1 节 定义了 CNAME 类型的 DNS 资源记录。
// 其 Type 值为 5。
type DNSRDATACNAME struct {
	CNAME string
}

func (rdata *DNSRDATACNAME) Type() DNSType {
	return DNSRRTypeCNAME
}

func (rdata *DNSRDATACNAME) Size() int {
	return GetDomainNameWireLen(&rdata.CNAME)
}

func (rdata *DNSRDATACNAME) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"CNAME: ", rdata.CNAME,
	)
}

func (rdata *DNSRDATACNAME) Equal(rr DNSRRRDATA) bool {
	rrcname, ok := rr.(*DNSRDATACNAME)
	if !ok {
		return false
	}
	return rdata.CNAME == rrcname.CNAME
}

func (rdata *DNSRDATACNAME) Encode() []byte {
	return EncodeDomainName(&rdata.CNAME)
}

func (rdata *DNSRDATACNAME) EncodeToBuffer(buffer []byte) (int, error) {
	encodedLen, err := EncodeDomainNameToBuffer(&rdata.CNAME, buffer)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATACNAME EncodeToBuffer failed: encode CNAME failed.\n%v", err)
	}
	return encodedLen, nil
}

func (rdata *DNSRDATACNAME) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error
	rdata.CNAME, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATACNAME DecodeFromBuffer failed: decode CNAME failed.\n%v", err)
	}
	return offset, nil
}

// DNSRDATAPTR 结构体表示 PTR 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含一个 <domain-name> ，指向名称空间中的某个位置。
//
// RFC 1035 3.3.12 节 定义了 PTR 类型的 DNS 资源记录。
// 其 Type 值为 12。
type DNSRDATAPTR struct {
	PTRDNAME string
}

func (rdata *DNSRDATAPTR) Type() DNSType {
	return DNSRRTypePTR
}

func (rdata *DNSRDATAPTR) Size() int {
	return GetDomainNameWireLen(&rdata.PTRDNAME)
}

func (rdata *DNSRDATAPTR) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"PTR: ", rdata.PTRDNAME,
	)
}

func (rdata *DNSRDATAPTR) Equal(rr DNSRRRDATA) bool {
	rrptr, ok := rr.(*DNSRDATAPTR)
	if !ok {
		return false
	}
	return rdata.PTRDNAME == rrptr.PTRDNAME
}

func (rdata *DNSRDATAPTR) Encode() []byte {
	return EncodeDomainName(&rdata.PTRDNAME)
}

func (rdata *DNSRDATAPTR) EncodeToBuffer(buffer []byte) (int, error) {
	encodedLen, err := EncodeDomainNameToBuffer(&rdata.PTRDNAME, buffer)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATAPTR EncodeToBuffer failed: encode PTRDNAME failed.\n%v", err)
	}
	return encodedLen, nil
}

func (rdata *DNSRDATAPTR) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error
	rdata.PTRDNAME, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATAPTR DecodeFromBuffer failed: decode PTRDNAME failed.\n%v", err)
	}
	return offset, nil
}

// DNSRDATADNAME 结构体表示 DNAME 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含一个 <domain-name> ，对所有者名称的整个子树进行重定向。
//
// RFC 6672 2.1 节 定义了 DNAME 类型的 DNS 资源记录。
// 其 Type 值为 39。
type DNSRDATADNAME struct {
	DNAME string
}

func (rdata *DNSRDATADNAME) Type() DNSType {
	return DNSRRTypeDNAME
}

func (rdata *DNSRDATADNAME) Size() int {
	return GetDomainNameWireLen(&rdata.DNAME)
}

func (rdata *DNSRDATADNAME) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"DNAME: ", rdata.DNAME,
	)
}

func (rdata *DNSRDATADNAME) Equal(rr DNSRRRDATA) bool {
	rrdname, ok := rr.(*DNSRDATADNAME)
	if !ok {
		return false
	}
	return rdata.DNAME == rrdname.DNAME
}

func (rdata *DNSRDATADNAME) Encode() []byte {
	return EncodeDomainName(&rdata.DNAME)
}

func (rdata *DNSRDATADNAME) EncodeToBuffer(buffer []byte) (int, error) {
	encodedLen, err := EncodeDomainNameToBuffer(&rdata.DNAME, buffer)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATADNAME EncodeToBuffer failed: encode DNAME failed.\n%v", err)
	}
	return encodedLen, nil
}

func (rdata *DNSRDATADNAME) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error
	rdata.DNAME, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATADNAME DecodeFromBuffer failed: decode DNAME failed.\n%v", err)
	}
	return offset, nil
}

// SOA RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// /                     MNAME                     /
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// /                     RNAME                     /
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    SERIAL                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    REFRESH                    |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                     RETRY                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    EXPIRE                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    MINIMUM                    |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATASOA 结构体表示 SOA 类型的 DNS 资源记录的 RDATA 部分。
// RFC 1035 3.3.13 节 定义了 SOA 类型的 DNS 资源记录。
// 其 Type 值为 6。
type DNSRDATASOA struct {
	// <domain-name> MNAME
	MName string
	// <domain-name> RNAME
	RName string
	// <serial-number> SERIAL
	Serial uint32
	// <refresh-interval> REFRESH
	Refresh uint32
	// <retry-interval> RETRY
	Retry uint32
	// <expire-limit> EXPIRE
	Expire uint32
	// <minimum> MINIMUM
	Minimum uint32
}

func (rdata *DNSRDATASOA) Type() DNSType {
	return DNSRRTypeSOA
}

func (rdata *DNSRDATASOA) Size() int {
	return GetDomainNameWireLen(&rdata.MName) +
		GetDomainNameWireLen(&rdata.RName) +
		4*5 // 4 bytes for each of SERIAL, REFRESH, RETRY, EXPIRE, MINIMUM
}

func (rdata *DNSRDATASOA) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"MName: ", rdata.MName,
		"\nRName: ", rdata.RName,
		"\nSerial: ", rdata.Serial,
		"\nRefresh: ", rdata.Refresh,
		"\nRetry: ", rdata.Retry,
		"\nExpire: ", rdata.Expire,
		"\nMinimum: ", rdata.Minimum,
	)
}

func (rdata *DNSRDATASOA) Equal(rr DNSRRRDATA) bool {
	rrsoa, ok := rr.(*DNSRDATASOA)
	if !ok {
		return false
	}
	return *rdata == *rrsoa
}

func (rdata *DNSRDATASOA) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATASOA Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATASOA) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATASOA EncodeToBuffer failed: buffer length %d is less than SOA RDATA size %d", len(buffer), rdata.Size())
	}
	offset := 0
	nLen, err := EncodeDomainNameToBuffer(&rdata.MName, buffer[offset:])
	offset += nLen
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATASOA EncodeToBuffer failed: encode MName failed.\n%v", err)
	}
	nLen, err = EncodeDomainNameToBuffer(&rdata.RName, buffer[offset:])
	offset += nLen
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATASOA EncodeToBuffer failed: encode RName failed.\n%v", err)
	}
	binary.BigEndian.PutUint32(buffer[offset:], rdata.Serial)
	binary.BigEndian.PutUint32(buffer[offset+4:], rdata.Refresh)
	binary.BigEndian.PutUint32(buffer[offset+8:], rdata.Retry)
	binary.BigEndian.PutUint32(buffer[offset+12:], rdata.Expire)
	binary.BigEndian.PutUint32(buffer[offset+16:], rdata.Minimum)
	return offset + 20, nil
}

func (rdata *DNSRDATASOA) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error

	rdata.MName, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATASOA DecodeFromBuffer failed: decode MName failed.\n%v", err)
	}

	rdata.RName, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATASOA DecodeFromBuffer failed: decode RName failed.\n%v", err)
	}

	if len(buffer) < offset+20 {
		return -1, fmt.Errorf("method DNSRDATASOA DecodeFromBuffer failed: buffer length %d is less than offset %d + SOA fixed fields size 20", len(buffer), offset)
	}
	rdata.Serial = binary.BigEndian.Uint32(buffer[offset:])
	rdata.Refresh = binary.BigEndian.Uint32(buffer[offset+4:])
	rdata.Retry = binary.BigEndian.Uint32(buffer[offset+8:])
	rdata.Expire = binary.BigEndian.Uint32(buffer[offset+12:])
	rdata.Minimum = binary.BigEndian.Uint32(buffer[offset+16:])
	return offset + 20, nil
}

// TXT RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                   TXT-DATA                    |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATATXT 结构体表示 TXT 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含<character-string>，用于存储任意文本信息。
//
// RFC 1035 3.3.14 节 定义了 TXT 类型的 DNS 资源记录。
// 其 Type 值为 16。
type DNSRDATATXT struct {
	// <character-string>
	TXT string
}

func (rdata *DNSRDATATXT) Type() DNSType {
	return DNSRRTypeTXT
}

func (rdata *DNSRDATATXT) Size() int {
	return GetCharacterStrWireLen(&rdata.TXT)
}

func (rdata *DNSRDATATXT) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"TXT: ", rdata.TXT,
	)
}

func (rdata *DNSRDATATXT) Equal(rr DNSRRRDATA) bool {
	rrtxt, ok := rr.(*DNSRDATATXT)
	if !ok {
		return false
	}
	return rdata.TXT == rrtxt.TXT
}

func (rdata *DNSRDATATXT) Encode() []byte {
	return EncodeCharacterStr(&rdata.TXT)
}

func (rdata *DNSRDATATXT) EncodeToBuffer(buffer []byte) (int, error) {
	sz, err := EncodeCharacterStrToBuffer(&rdata.TXT, buffer)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATATXT EncodeToBuffer failed: encode TXT failed.\n%v", err)
	}
	return sz, nil
}

func (rdata *DNSRDATATXT) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATATXT DecodeFromBuffer failed: buffer length %d is less than offset %d + TXT RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.TXT = DecodeCharacterStr(buffer[offset:rdEnd])
	return rdEnd, nil
}

// SRV RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                   PRIORITY                    |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    WEIGHT                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                     PORT                      |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// /                    TARGET                     /
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATASRV 结构体表示 SRV 类型的 DNS 资源记录的 RDATA 部分。
//
// RFC 2782 定义了 SRV 类型的 DNS 资源记录。
// 其 Type 值为 33。
type DNSRDATASRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (rdata *DNSRDATASRV) Type() DNSType {
	return DNSRRTypeSRV
}

func (rdata *DNSRDATASRV) Size() int {
	return 6 + GetDomainNameWireLen(&rdata.Target)
}

func (rdata *DNSRDATASRV) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Priority: ", rdata.Priority,
		"\nWeight: ", rdata.Weight,
		"\nPort: ", rdata.Port,
		"\nTarget: ", rdata.Target,
	)
}

func (rdata *DNSRDATASRV) Equal(rr DNSRRRDATA) bool {
	rrsrv, ok := rr.(*DNSRDATASRV)
	if !ok {
		return false
	}
	return *rdata == *rrsrv
}

func (rdata *DNSRDATASRV) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATASRV Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATASRV) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATASRV EncodeToBuffer failed: buffer length %d is less than SRV RDATA size %d", len(buffer), rdata.Size())
	}
	binary.BigEndian.PutUint16(buffer, rdata.Priority)
	binary.BigEndian.PutUint16(buffer[2:], rdata.Weight)
	binary.BigEndian.PutUint16(buffer[4:], rdata.Port)
	nLen, err := EncodeDomainNameToBuffer(&rdata.Target, buffer[6:])
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATASRV EncodeToBuffer failed: encode Target failed.\n%v", err)
	}
	return 6 + nLen, nil
}

func (rdata *DNSRDATASRV) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	if len(buffer) < offset+6 {
		return -1, fmt.Errorf("method DNSRDATASRV DecodeFromBuffer failed: buffer length %d is less than offset %d + SRV fixed fields size 6", len(buffer), offset)
	}
	var err error
	rdata.Priority = binary.BigEndian.Uint16(buffer[offset:])
	rdata.Weight = binary.BigEndian.Uint16(buffer[offset+2:])
	rdata.Port = binary.BigEndian.Uint16(buffer[offset+4:])
	rdata.Target, offset, err = DecodeDomainNameFromBuffer(buffer, offset+6)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATASRV DecodeFromBuffer failed: decode Target failed.\n%v", err)
	}
	return offset, nil
}

// URI RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                   PRIORITY                    |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// |                    WEIGHT                     |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// /                    TARGET                     /
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATAURI 结构体表示 URI 类型的 DNS 资源记录的 RDATA 部分。
// Target 为 URI 本身，不带长度前缀，占据 RDATA 的剩余部分。
//
// RFC 7553 4.5 节 定义了 URI 类型的 DNS 资源记录。
// 其 Type 值为 256。
type DNSRDATAURI struct {
	Priority uint16
	Weight   uint16
	Target   string
}

func (rdata *DNSRDATAURI) Type() DNSType {
	return DNSRRTypeURI
}

func (rdata *DNSRDATAURI) Size() int {
	return 4 + len(rdata.Target)
}

func (rdata *DNSRDATAURI) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Priority: ", rdata.Priority,
		"\nWeight: ", rdata.Weight,
		"\nTarget: ", rdata.Target,
	)
}

func (rdata *DNSRDATAURI) Equal(rr DNSRRRDATA) bool {
	rruri, ok := rr.(*DNSRDATAURI)
	if !ok {
		return false
	}
	return *rdata == *rruri
}

func (rdata *DNSRDATAURI) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATAURI Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATAURI) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAURI EncodeToBuffer failed: buffer length %d is less than URI RDATA size %d", len(buffer), rdata.Size())
	}
	binary.BigEndian.PutUint16(buffer, rdata.Priority)
	binary.BigEndian.PutUint16(buffer[2:], rdata.Weight)
	copy(buffer[4:], rdata.Target)
	return rdata.Size(), nil
}

func (rdata *DNSRDATAURI) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen < 4 {
		return -1, fmt.Errorf("method DNSRDATAURI DecodeFromBuffer failed: URI RDATA size %d is less than 4", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATAURI DecodeFromBuffer failed: buffer length %d is less than offset %d + URI RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.Priority = binary.BigEndian.Uint16(buffer[offset:])
	rdata.Weight = binary.BigEndian.Uint16(buffer[offset+2:])
	rdata.Target = string(buffer[offset+4 : rdEnd])
	return rdEnd, nil
}

// DNSRDATARP 结构体表示 RP 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含两个 <domain-name>：负责人的邮箱域名 和 指向附加信息 TXT 记录的域名。
//
// RFC 1183 2.2 节 定义了 RP 类型的 DNS 资源记录。
// 其 Type 值为 17。
type DNSRDATARP struct {
	MBoxDName string
	TXTDName  string
}

func (rdata *DNSRDATARP) Type() DNSType {
	return DNSRRTypeRP
}

func (rdata *DNSRDATARP) Size() int {
	return GetDomainNameWireLen(&rdata.MBoxDName) + GetDomainNameWireLen(&rdata.TXTDName)
}

func (rdata *DNSRDATARP) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"MBox: ", rdata.MBoxDName,
		"\nTXT: ", rdata.TXTDName,
	)
}

func (rdata *DNSRDATARP) Equal(rr DNSRRRDATA) bool {
	rrrp, ok := rr.(*DNSRDATARP)
	if !ok {
		return false
	}
	return *rdata == *rrrp
}

func (rdata *DNSRDATARP) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATARP Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATARP) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATARP EncodeToBuffer failed: buffer length %d is less than RP RDATA size %d", len(buffer), rdata.Size())
	}
	offset, err := EncodeDomainNameToBuffer(&rdata.MBoxDName, buffer)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATARP EncodeToBuffer failed: encode MBox failed.\n%v", err)
	}
	nLen, err := EncodeDomainNameToBuffer(&rdata.TXTDName, buffer[offset:])
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATARP EncodeToBuffer failed: encode TXT failed.\n%v", err)
	}
	return offset + nLen, nil
}

func (rdata *DNSRDATARP) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error
	rdata.MBoxDName, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATARP DecodeFromBuffer failed: decode MBox failed.\n%v", err)
	}
	rdata.TXTDName, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATARP DecodeFromBuffer failed: decode TXT failed.\n%v", err)
	}
	return offset, nil
}

// DNSRDATALOC 结构体表示 LOC 类型的 DNS 资源记录的 RDATA 部分。
// 纬度、经度 与 海拔 均为定点编码的 32 位无符号整数。
//
// RFC 1876 2 节 定义了 LOC 类型的 DNS 资源记录。
// 其 Type 值为 29。
type DNSRDATALOC struct {
	Version   uint8
	SizeExp   uint8
	HorizPre  uint8
	VertPre   uint8
	Latitude  uint32
	Longitude uint32
	Altitude  uint32
}

func (rdata *DNSRDATALOC) Type() DNSType {
	return DNSRRTypeLOC
}

func (rdata *DNSRDATALOC) Size() int {
	return 16
}

func (rdata *DNSRDATALOC) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Version: ", rdata.Version,
		"\nSize: ", rdata.SizeExp,
		"\nHoriz Pre: ", rdata.HorizPre,
		"\nVert Pre: ", rdata.VertPre,
		"\nLatitude: ", rdata.Latitude,
		"\nLongitude: ", rdata.Longitude,
		"\nAltitude: ", rdata.Altitude,
	)
}

func (rdata *DNSRDATALOC) Equal(rr DNSRRRDATA) bool {
	rrloc, ok := rr.(*DNSRDATALOC)
	if !ok {
		return false
	}
	return *rdata == *rrloc
}

func (rdata *DNSRDATALOC) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATALOC Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATALOC) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATALOC EncodeToBuffer failed: buffer length %d is less than LOC RDATA size %d", len(buffer), rdata.Size())
	}
	buffer[0] = rdata.Version
	buffer[1] = rdata.SizeExp
	buffer[2] = rdata.HorizPre
	buffer[3] = rdata.VertPre
	binary.BigEndian.PutUint32(buffer[4:], rdata.Latitude)
	binary.BigEndian.PutUint32(buffer[8:], rdata.Longitude)
	binary.BigEndian.PutUint32(buffer[12:], rdata.Altitude)
	return 16, nil
}

func (rdata *DNSRDATALOC) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	if len(buffer) < offset+16 {
		return -1, fmt.Errorf("method DNSRDATALOC DecodeFromBuffer failed: buffer length %d is less than offset %d + LOC RDATA size 16", len(buffer), offset)
	}
	rdata.Version = buffer[offset]
	rdata.SizeExp = buffer[offset+1]
	rdata.HorizPre = buffer[offset+2]
	rdata.VertPre = buffer[offset+3]
	rdata.Latitude = binary.BigEndian.Uint32(buffer[offset+4:])
	rdata.Longitude = binary.BigEndian.Uint32(buffer[offset+8:])
	rdata.Altitude = binary.BigEndian.Uint32(buffer[offset+12:])
	return offset + 16, nil
}

// DNSRDATASSHFP 结构体表示 SSHFP 类型的 DNS 资源记录的 RDATA 部分。
//
// RFC 4255 3.1 节 定义了 SSHFP 类型的 DNS 资源记录。
// 其 Type 值为 44。
type DNSRDATASSHFP struct {
	Algorithm       uint8
	FingerprintType uint8
	Fingerprint     []byte
}

func (rdata *DNSRDATASSHFP) Type() DNSType {
	return DNSRRTypeSSHFP
}

func (rdata *DNSRDATASSHFP) Size() int {
	return 2 + len(rdata.Fingerprint)
}

func (rdata *DNSRDATASSHFP) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Algorithm: ", rdata.Algorithm,
		"\nFingerprint Type: ", rdata.FingerprintType,
		"\nFingerprint: ", rdata.Fingerprint,
	)
}

func (rdata *DNSRDATASSHFP) Equal(rr DNSRRRDATA) bool {
	rrsshfp, ok := rr.(*DNSRDATASSHFP)
	if !ok {
		return false
	}
	return rdata.Algorithm == rrsshfp.Algorithm &&
		rdata.FingerprintType == rrsshfp.FingerprintType &&
		bytes.Equal(rdata.Fingerprint, rrsshfp.Fingerprint)
}

func (rdata *DNSRDATASSHFP) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATASSHFP Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATASSHFP) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATASSHFP EncodeToBuffer failed: buffer length %d is less than SSHFP RDATA size %d", len(buffer), rdata.Size())
	}
	buffer[0] = rdata.Algorithm
	buffer[1] = rdata.FingerprintType
	copy(buffer[2:], rdata.Fingerprint)
	return rdata.Size(), nil
}

func (rdata *DNSRDATASSHFP) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen < 2 {
		return -1, fmt.Errorf("method DNSRDATASSHFP DecodeFromBuffer failed: SSHFP RDATA size %d is less than 2", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATASSHFP DecodeFromBuffer failed: buffer length %d is less than offset %d + SSHFP RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.Algorithm = buffer[offset]
	rdata.FingerprintType = buffer[offset+1]
	rdata.Fingerprint = make([]byte, rdLen-2)
	copy(rdata.Fingerprint, buffer[offset+2:rdEnd])
	return rdEnd, nil
}

// TLSA RDATA 编码格式
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// | Cert. Usage   |   Selector    | Matching Type |
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
// /              Certificate Association Data     /
// +--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+

// DNSRDATATLSA 结构体表示 TLSA 类型的 DNS 资源记录的 RDATA 部分。
//
// RFC 6698 2.1 节 定义了 TLSA 类型的 DNS 资源记录。
// 其 Type 值为 52。
type DNSRDATATLSA struct {
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	Certificate  []byte
}

func (rdata *DNSRDATATLSA) Type() DNSType {
	return DNSRRTypeTLSA
}

func (rdata *DNSRDATATLSA) Size() int {
	return 3 + len(rdata.Certificate)
}

func (rdata *DNSRDATATLSA) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Usage: ", rdata.Usage,
		"\nSelector: ", rdata.Selector,
		"\nMatching Type: ", rdata.MatchingType,
		"\nCertificate: ", rdata.Certificate,
	)
}

func (rdata *DNSRDATATLSA) Equal(rr DNSRRRDATA) bool {
	rrtlsa, ok := rr.(*DNSRDATATLSA)
	if !ok {
		return false
	}
	return rdata.Usage == rrtlsa.Usage &&
		rdata.Selector == rrtlsa.Selector &&
		rdata.MatchingType == rrtlsa.MatchingType &&
		bytes.Equal(rdata.Certificate, rrtlsa.Certificate)
}

func (rdata *DNSRDATATLSA) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATATLSA Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATATLSA) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATATLSA EncodeToBuffer failed: buffer length %d is less than TLSA RDATA size %d", len(buffer), rdata.Size())
	}
	buffer[0] = rdata.Usage
	buffer[1] = rdata.Selector
	buffer[2] = rdata.MatchingType
	copy(buffer[3:], rdata.Certificate)
	return rdata.Size(), nil
}

func (rdata *DNSRDATATLSA) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen < 3 {
		return -1, fmt.Errorf("method DNSRDATATLSA DecodeFromBuffer failed: TLSA RDATA size %d is less than 3", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATATLSA DecodeFromBuffer failed: buffer length %d is less than offset %d + TLSA RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.Usage = buffer[offset]
	rdata.Selector = buffer[offset+1]
	rdata.MatchingType = buffer[offset+2]
	rdata.Certificate = make([]byte, rdLen-3)
	copy(rdata.Certificate, buffer[offset+3:rdEnd])
	return rdEnd, nil
}

// DNSRDATASMIMEA 结构体表示 SMIMEA 类型的 DNS 资源记录的 RDATA 部分。
// SMIMEA 记录的 RDATA 部分与 TLSA 记录完全相同。
//
// RFC 8162 2 节 定义了 SMIMEA 类型的 DNS 资源记录。
// 其 Type 值为 53。
type DNSRDATASMIMEA struct {
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	Certificate  []byte
}

func (rdata *DNSRDATASMIMEA) Type() DNSType {
	return DNSRRTypeSMIMEA
}

func (rdata *DNSRDATASMIMEA) Size() int {
	return 3 + len(rdata.Certificate)
}

func (rdata *DNSRDATASMIMEA) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Usage: ", rdata.Usage,
		"\nSelector: ", rdata.Selector,
		"\nMatching Type: ", rdata.MatchingType,
		"\nCertificate: ", rdata.Certificate,
	)
}

func (rdata *DNSRDATASMIMEA) Equal(rr DNSRRRDATA) bool {
	rrsmimea, ok := rr.(*DNSRDATASMIMEA)
	if !ok {
		return false
	}
	return rdata.Usage == rrsmimea.Usage &&
		rdata.Selector == rrsmimea.Selector &&
		rdata.MatchingType == rrsmimea.MatchingType &&
		bytes.Equal(rdata.Certificate, rrsmimea.Certificate)
}

func (rdata *DNSRDATASMIMEA) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATASMIMEA Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATASMIMEA) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATASMIMEA EncodeToBuffer failed: buffer length %d is less than SMIMEA RDATA size %d", len(buffer), rdata.Size())
	}
	buffer[0] = rdata.Usage
	buffer[1] = rdata.Selector
	buffer[2] = rdata.MatchingType
	copy(buffer[3:], rdata.Certificate)
	return rdata.Size(), nil
}

func (rdata *DNSRDATASMIMEA) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen < 3 {
		return -1, fmt.Errorf("method DNSRDATASMIMEA DecodeFromBuffer failed: SMIMEA RDATA size %d is less than 3", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATASMIMEA DecodeFromBuffer failed: buffer length %d is less than offset %d + SMIMEA RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.Usage = buffer[offset]
	rdata.Selector = buffer[offset+1]
	rdata.MatchingType = buffer[offset+2]
	rdata.Certificate = make([]byte, rdLen-3)
	copy(rdata.Certificate, buffer[offset+3:rdEnd])
	return rdEnd, nil
}

// DNSRDATAOPENPGPKEY 结构体表示 OPENPGPKEY 类型的 DNS 资源记录的 RDATA 部分。
//   - 其包含 OpenPGP 公钥环的传输格式字节。
//
// RFC 7929 2.1 节 定义了 OPENPGPKEY 类型的 DNS 资源记录。
// 其 Type 值为 61。
type DNSRDATAOPENPGPKEY struct {
	PublicKey []byte
}

func (rdata *DNSRDATAOPENPGPKEY) Type() DNSType {
	return DNSRRTypeOPENPGPKEY
}

func (rdata *DNSRDATAOPENPGPKEY) Size() int {
	return len(rdata.PublicKey)
}

func (rdata *DNSRDATAOPENPGPKEY) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Public Key: ", rdata.PublicKey,
	)
}

func (rdata *DNSRDATAOPENPGPKEY) Equal(rr DNSRRRDATA) bool {
	rrpgp, ok := rr.(*DNSRDATAOPENPGPKEY)
	if !ok {
		return false
	}
	return bytes.Equal(rdata.PublicKey, rrpgp.PublicKey)
}

func (rdata *DNSRDATAOPENPGPKEY) Encode() []byte {
	encoded := make([]byte, len(rdata.PublicKey))
	copy(encoded, rdata.PublicKey)
	return encoded
}

func (rdata *DNSRDATAOPENPGPKEY) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAOPENPGPKEY EncodeToBuffer failed: buffer length %d is less than OPENPGPKEY RDATA size %d", len(buffer), rdata.Size())
	}
	copy(buffer, rdata.PublicKey)
	return rdata.Size(), nil
}

func (rdata *DNSRDATAOPENPGPKEY) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATAOPENPGPKEY DecodeFromBuffer failed: buffer length %d is less than offset %d + OPENPGPKEY RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.PublicKey = make([]byte, rdLen)
	copy(rdata.PublicKey, buffer[offset:rdEnd])
	return rdEnd, nil
}
