// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// standard_test.go 文件定义了对 standard.go 文件的测试函数。
package dns

import (
	"bytes"
	"testing"
)

// 待测试的域名。
var testedDomainName = "ns1.example"

// 域名的期望编码结果。
var testedDomainNameEncoded = []byte{
	0x03, 'n', 's', '1',
	0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
	0x00,
}

// 测试域名的编码格式长度计算。
func TestGetDomainNameWireLen(t *testing.T) {
	wireLen := GetDomainNameWireLen(&testedDomainName)
	if wireLen != len(testedDomainNameEncoded) {
		t.Errorf("function GetDomainNameWireLen() = %d, want %d", wireLen, len(testedDomainNameEncoded))
	}

	rootName := "."
	if GetDomainNameWireLen(&rootName) != 1 {
		t.Errorf("function GetDomainNameWireLen(\".\") failed: want 1")
	}

	absName := "example."
	if GetDomainNameWireLen(&absName) != 9 {
		t.Errorf("function GetDomainNameWireLen(\"example.\") = %d, want 9", GetDomainNameWireLen(&absName))
	}
}

// 测试域名的编码。
func TestEncodeDomainName(t *testing.T) {
	encodedName := EncodeDomainName(&testedDomainName)
	if !bytes.Equal(encodedName, testedDomainNameEncoded) {
		t.Errorf("function EncodeDomainName() failed:\ngot:\n%v\nexpected:\n%v",
			encodedName, testedDomainNameEncoded)
	}

	rootName := "."
	if !bytes.Equal(EncodeDomainName(&rootName), []byte{0x00}) {
		t.Errorf("function EncodeDomainName(\".\") failed: want 0x00")
	}
}

// 测试域名的解码。
func TestDecodeDomainNameFromBuffer(t *testing.T) {
	// 正常情况
	decodedName, offset, err := DecodeDomainNameFromBuffer(testedDomainNameEncoded, 0)
	if err != nil {
		t.Errorf("function DecodeDomainNameFromBuffer() failed:\n%s", err)
	}
	if decodedName != testedDomainName {
		t.Errorf("function DecodeDomainNameFromBuffer() failed:\ngot:%s\nexpected:%s",
			decodedName, testedDomainName)
	}
	if offset != len(testedDomainNameEncoded) {
		t.Errorf("function DecodeDomainNameFromBuffer() failed:\ngot offset:%d\nexpected:%d",
			offset, len(testedDomainNameEncoded))
	}

	// 压缩指针
	pointered := append(append([]byte{}, testedDomainNameEncoded...), 0xC0, 0x00)
	decodedName, offset, err = DecodeDomainNameFromBuffer(pointered, len(testedDomainNameEncoded))
	if err != nil {
		t.Errorf("function DecodeDomainNameFromBuffer() failed on pointer:\n%s", err)
	}
	if decodedName != testedDomainName {
		t.Errorf("function DecodeDomainNameFromBuffer() failed on pointer:\ngot:%s\nexpected:%s",
			decodedName, testedDomainName)
	}
	if offset != len(pointered) {
		t.Errorf("function DecodeDomainNameFromBuffer() failed on pointer:\ngot offset:%d\nexpected:%d",
			offset, len(pointered))
	}

	// 缓冲区长度不足
	_, _, err = DecodeDomainNameFromBuffer(testedDomainNameEncoded[:3], 0)
	if err == nil {
		t.Errorf("function DecodeDomainNameFromBuffer() failed:\n%s", "expected an error but got nil")
	}
}

// 测试域名的标签计数及上级域名。
func TestDomainNameHelpers(t *testing.T) {
	name := "a.b.c"
	if CountDomainNameLabels(&name) != 3 {
		t.Errorf("function CountDomainNameLabels() failed: want 3")
	}
	rootName := "."
	if CountDomainNameLabels(&rootName) != 0 {
		t.Errorf("function CountDomainNameLabels(\".\") failed: want 0")
	}
	if GetUpperDomainName(&name) != "b.c" {
		t.Errorf("function GetUpperDomainName() failed: want b.c, got %s", GetUpperDomainName(&name))
	}

	absName := "Example.COM."
	labels := SplitDomainName(&absName)
	if len(labels) != 2 || labels[0] != "example" || labels[1] != "com" {
		t.Errorf("function SplitDomainName() failed: got %v", labels)
	}
}

// 测试 <character-string> 的编解码。
func TestCharacterStr(t *testing.T) {
	str := "hns:tor"
	encoded := EncodeCharacterStr(&str)
	expected := append([]byte{byte(len(str))}, []byte(str)...)
	if !bytes.Equal(encoded, expected) {
		t.Errorf("function EncodeCharacterStr() failed:\ngot:\n%v\nexpected:\n%v", encoded, expected)
	}
	if GetCharacterStrWireLen(&str) != len(expected) {
		t.Errorf("function GetCharacterStrWireLen() failed: want %d", len(expected))
	}
	decoded := DecodeCharacterStr(encoded)
	if decoded != str {
		t.Errorf("function DecodeCharacterStr() failed: got %s, want %s", decoded, str)
	}

	empty := ""
	if !bytes.Equal(EncodeCharacterStr(&empty), []byte{0x00}) {
		t.Errorf("function EncodeCharacterStr(\"\") failed: want 0x00")
	}
}

// 测试域名的规范化。
func TestCanonicalizeDomainName(t *testing.T) {
	name := "Example"
	if CanonicalizeDomainName(&name) != "example." {
		t.Errorf("function CanonicalizeDomainName() failed: got %s", CanonicalizeDomainName(&name))
	}
	rootName := "."
	if CanonicalizeDomainName(&rootName) != "." {
		t.Errorf("function CanonicalizeDomainName(\".\") failed")
	}
}

// 测试 RRSet 的规范化排序。
func TestCanonicalizeRRSet(t *testing.T) {
	rrSet := []DNSResourceRecord{
		{Name: "Example.", Type: DNSRRTypeNS, Class: DNSClassIN, TTL: 3600,
			RData: &DNSRDATANS{NSDNAME: "ns2.example."}},
		{Name: "Example.", Type: DNSRRTypeNS, Class: DNSClassIN, TTL: 3600,
			RData: &DNSRDATANS{NSDNAME: "ns1.example."}},
	}
	canonical := CanonicalizeRRSet(rrSet)
	if canonical[0].Name != "example." {
		t.Errorf("function CanonicalizeRRSet() failed: owner name not canonicalized")
	}
	if canonical[0].RData.(*DNSRDATANS).NSDNAME != "ns1.example." {
		t.Errorf("function CanonicalizeRRSet() failed: RRSet not sorted by RDATA")
	}
	// 原 RRSet 不应被修改
	if rrSet[0].RData.(*DNSRDATANS).NSDNAME != "ns2.example." {
		t.Errorf("function CanonicalizeRRSet() failed: original RRSet mutated")
	}
}
