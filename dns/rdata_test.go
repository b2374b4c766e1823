// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// rdata_test.go 文件定义了 DNS 资源记录 RDATA 的测试函数。
package dns

import (
	"bytes"
	"net"
	"testing"
)

// 待测试的 A 记录 RDATA 对象。
var testedDNSRDATAA = DNSRDATAA{
	Address: net.ParseIP("10.10.0.3"),
}

// 待测试的 A 记录 RDATA 编码后结果。
var testedDNSRDATAAEncoded = []byte{10, 10, 0, 3}

// 测试 A 记录 RDATA 的 Size 方法。
func TestDNSRDATAASize(t *testing.T) {
	size := testedDNSRDATAA.Size()
	if size != 4 {
		t.Errorf("function Size() = %d, want 4", size)
	}
}

// 测试 A 记录 RDATA 的 Encode 方法。
func TestDNSRDATAAEncode(t *testing.T) {
	encodedDNSRDATAA := testedDNSRDATAA.Encode()
	if !bytes.Equal(encodedDNSRDATAA, testedDNSRDATAAEncoded) {
		t.Errorf("function Encode() failed:\ngot:\n%v\nexpected:\n%v",
			encodedDNSRDATAA, testedDNSRDATAAEncoded)
	}
}

// 测试 A 记录 RDATA 的 EncodeToBuffer 方法。
func TestDNSRDATAAEncodeToBuffer(t *testing.T) {
	// 正常情况
	buffer := make([]byte, 4)
	_, err := testedDNSRDATAA.EncodeToBuffer(buffer)
	if err != nil {
		t.Errorf("function EncodeToBuffer() failed:\n%s", err)
	}
	if !bytes.Equal(buffer, testedDNSRDATAAEncoded) {
		t.Errorf("function EncodeToBuffer() failed:\ngot:\n%v\nexpected:\n%v",
			buffer, testedDNSRDATAAEncoded)
	}

	// 缓冲区长度不足
	buffer = make([]byte, 1)
	_, err = testedDNSRDATAA.EncodeToBuffer(buffer)
	if err == nil {
		t.Errorf("function EncodeToBuffer() failed:\n%s", "expected an error but got nil")
	}
}

// 测试 A 记录 RDATA 的 DecodeFromBuffer 方法。
func TestDNSRDATAADecodeFromBuffer(t *testing.T) {
	decodedDNSRDATAA := DNSRDATAA{}
	offset, err := decodedDNSRDATAA.DecodeFromBuffer(testedDNSRDATAAEncoded, 0, 4)
	if err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if offset != 4 {
		t.Errorf("function DecodeFromBuffer() failed:\ngot:%d\nexpected: %d", offset, 4)
	}
	if !decodedDNSRDATAA.Address.Equal(testedDNSRDATAA.Address) {
		t.Errorf("function DecodeFromBuffer() failed:\ngot:\n%v\nexpected:\n%v",
			decodedDNSRDATAA.Address, testedDNSRDATAA.Address)
	}
}

// 待测试的 NS 记录 RDATA 对象。
var testedDNSRDATANS = DNSRDATANS{
	NSDNAME: "ns.example",
}

// NS 记录 RDATA 的期望编码结果。
var testedDNSRDATANSEncoded = []byte{
	0x02, 'n', 's',
	0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
	0x00,
}

// 测试 NS 记录 RDATA 的 Size 及 Encode 方法。
func TestDNSRDATANSEncode(t *testing.T) {
	if testedDNSRDATANS.Size() != len(testedDNSRDATANSEncoded) {
		t.Errorf("function Size() = %d, want %d", testedDNSRDATANS.Size(), len(testedDNSRDATANSEncoded))
	}
	encoded := testedDNSRDATANS.Encode()
	if !bytes.Equal(encoded, testedDNSRDATANSEncoded) {
		t.Errorf("function Encode() failed:\ngot:\n%v\nexpected:\n%v",
			encoded, testedDNSRDATANSEncoded)
	}
}

// 测试 NS 记录 RDATA 的 DecodeFromBuffer 方法。
func TestDNSRDATANSDecodeFromBuffer(t *testing.T) {
	decoded := DNSRDATANS{}
	_, err := decoded.DecodeFromBuffer(testedDNSRDATANSEncoded, 0, len(testedDNSRDATANSEncoded))
	if err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if decoded.NSDNAME != testedDNSRDATANS.NSDNAME {
		t.Errorf("function DecodeFromBuffer() failed:\ngot:%s\nexpected:%s",
			decoded.NSDNAME, testedDNSRDATANS.NSDNAME)
	}
}

// 测试 SRV 记录 RDATA 的编解码往返。
func TestDNSRDATASRVRoundTrip(t *testing.T) {
	srv := DNSRDATASRV{
		Priority: 10,
		Weight:   20,
		Port:     443,
		Target:   "svc.example",
	}
	encoded := srv.Encode()
	if len(encoded) != srv.Size() {
		t.Errorf("function Size() = %d, want %d", srv.Size(), len(encoded))
	}
	decoded := DNSRDATASRV{}
	if _, err := decoded.DecodeFromBuffer(encoded, 0, len(encoded)); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if decoded != srv {
		t.Errorf("SRV round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, srv)
	}
}

// 测试 SOA 记录 RDATA 的编解码往返。
func TestDNSRDATASOARoundTrip(t *testing.T) {
	soa := DNSRDATASOA{
		MName:   "_fs00008._synth",
		RName:   ".",
		Serial:  2024111817,
		Refresh: 1800,
		Retry:   900,
		Expire:  604800,
		Minimum: 86400,
	}
	encoded := soa.Encode()
	if len(encoded) != soa.Size() {
		t.Errorf("function Size() = %d, want %d", soa.Size(), len(encoded))
	}
	decoded := DNSRDATASOA{}
	if _, err := decoded.DecodeFromBuffer(encoded, 0, len(encoded)); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if decoded != soa {
		t.Errorf("SOA round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, soa)
	}
}

// 测试 TLSA 记录 RDATA 的编解码往返。
func TestDNSRDATATLSARoundTrip(t *testing.T) {
	tlsa := DNSRDATATLSA{
		Usage:        3,
		Selector:     1,
		MatchingType: 1,
		Certificate:  []byte{0xde, 0xad, 0xbe, 0xef},
	}
	encoded := tlsa.Encode()
	if len(encoded) != tlsa.Size() {
		t.Errorf("function Size() = %d, want %d", tlsa.Size(), len(encoded))
	}
	decoded := DNSRDATATLSA{}
	if _, err := decoded.DecodeFromBuffer(encoded, 0, len(encoded)); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if !decoded.Equal(&tlsa) {
		t.Errorf("TLSA round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, tlsa)
	}
}

// 测试 NSEC 记录的类型位图编解码。
func TestTypeBitMaps(t *testing.T) {
	typeList := []DNSType{DNSRRTypeNS, DNSRRTypeSOA, DNSRRTypeRRSIG, DNSRRTypeNSEC, DNSRRTypeDNSKEY}
	encoded := EncodeTypeBitMaps(typeList)
	decoded := DecodeTypeBitMaps(encoded)
	if len(decoded) != len(typeList) {
		t.Errorf("TypeBitMaps round trip failed:\ngot:%v\nexpected:%v", decoded, typeList)
	}
	for i, rrType := range []DNSType{DNSRRTypeNS, DNSRRTypeSOA, DNSRRTypeRRSIG, DNSRRTypeNSEC, DNSRRTypeDNSKEY} {
		found := false
		for _, got := range decoded {
			if got == rrType {
				found = true
			}
		}
		if !found {
			t.Errorf("TypeBitMaps round trip failed: type#%d %s missing", i, rrType)
		}
	}
}

// 测试 NSEC 记录 RDATA 的编解码往返。
func TestDNSRDATANSECRoundTrip(t *testing.T) {
	nsec := DNSRDATANSEC{
		NextDomainName: "icecream0",
		TypeBitMaps:    []DNSType{DNSRRTypeRRSIG, DNSRRTypeNSEC},
	}
	encoded := nsec.Encode()
	if len(encoded) != nsec.Size() {
		t.Errorf("function Size() = %d, want %d", nsec.Size(), len(encoded))
	}
	decoded := DNSRDATANSEC{}
	if _, err := decoded.DecodeFromBuffer(encoded, 0, len(encoded)); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if !decoded.Equal(&nsec) {
		t.Errorf("NSEC round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, nsec)
	}
}

// 测试 RRSIG 记录 RDATA 的编解码往返。
func TestDNSRDATARRSIGRoundTrip(t *testing.T) {
	rrsig := DNSRDATARRSIG{
		TypeCovered: DNSRRTypeA,
		Algorithm:   DNSSECAlgorithmED25519,
		Labels:      1,
		OriginalTTL: 3600,
		Expiration:  1700000000,
		Inception:   1690000000,
		KeyTag:      12345,
		SignerName:  ".",
		Signature:   bytes.Repeat([]byte{0xab}, 64),
	}
	encoded := rrsig.Encode()
	if len(encoded) != rrsig.Size() {
		t.Errorf("function Size() = %d, want %d", rrsig.Size(), len(encoded))
	}
	decoded := DNSRDATARRSIG{}
	if _, err := decoded.DecodeFromBuffer(encoded, 0, len(encoded)); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if !decoded.Equal(&rrsig) {
		t.Errorf("RRSIG round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, rrsig)
	}
}

// 测试未知类型 RDATA 的原样往返。
func TestDNSRDATAUnknownRoundTrip(t *testing.T) {
	unknown := DNSRDATAUnknown{
		RRType: DNSType(999),
		RData:  []byte{0x01, 0x02, 0x03},
	}
	encoded := unknown.Encode()
	decoded := DNSRDATAUnknown{RRType: DNSType(999)}
	if _, err := decoded.DecodeFromBuffer(encoded, 0, len(encoded)); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if !decoded.Equal(&unknown) {
		t.Errorf("Unknown RDATA round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, unknown)
	}
}

// 测试完整资源记录（含 RDATA 工厂分派）的编解码往返。
func TestDNSResourceRecordRoundTrip(t *testing.T) {
	rr := DNSResourceRecord{
		Name:  "example",
		Type:  DNSRRTypeAAAA,
		Class: DNSClassIN,
		TTL:   21600,
		RData: &DNSRDATAAAAA{Address: net.ParseIP("::2")},
	}
	encoded := rr.Encode()
	if len(encoded) != rr.Size() {
		t.Errorf("function Size() = %d, want %d", rr.Size(), len(encoded))
	}
	decoded := DNSResourceRecord{}
	if _, err := decoded.DecodeFromBuffer(encoded, 0); err != nil {
		t.Errorf("function DecodeFromBuffer() failed:\n%s", err)
	}
	if !decoded.Equal(&rr) {
		t.Errorf("resource record round trip failed:\ngot:\n%v\nexpected:\n%v", decoded, rr)
	}
}
