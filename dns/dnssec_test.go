// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// dnssec_test.go 文件定义了对 dnssec.go 文件的测试函数。
package dns

import (
	"bytes"
	"crypto/ed25519"
	"net"
	"testing"
)

// 测试用的确定性 ED25519 种子。
var testedSeed = bytes.Repeat([]byte{0x42}, 32)

// ed25519PublicFromSeed 由种子重建 ed25519 公钥字节。
func ed25519PublicFromSeed(seed []byte) []byte {
	key := ed25519.NewKeyFromSeed(seed)
	return []byte(key.Public().(ed25519.PublicKey))
}

// testedDNSKEY 由确定性种子生成的 DNSKEY RDATA。
func testedDNSKEY(t *testing.T) DNSRDATADNSKEY {
	t.Helper()
	return DNSRDATADNSKEY{
		Flags:     DNSKEYFlagZoneKey,
		Protocol:  DNSKEYProtocolValue,
		Algorithm: DNSSECAlgorithmED25519,
		PublicKey: ed25519PublicFromSeed(testedSeed),
	}
}

// 测试 Key Tag 计算的稳定性。
func TestCalculateKeyTag(t *testing.T) {
	key := testedDNSKEY(t)
	tag1 := CalculateKeyTag(key)
	tag2 := CalculateKeyTag(key)
	if tag1 != tag2 {
		t.Errorf("function CalculateKeyTag() is not stable: %d != %d", tag1, tag2)
	}
}

// 测试 ED25519 签名的确定性及可验证性。
func TestED25519SignVerify(t *testing.T) {
	algorithmer := DNSSECAlgorithmerFactory(DNSSECAlgorithmED25519)
	data := []byte("the quick brown fox")

	sig1, err := algorithmer.Sign(data, testedSeed)
	if err != nil {
		t.Fatalf("function Sign() failed:\n%s", err)
	}
	sig2, err := algorithmer.Sign(data, testedSeed)
	if err != nil {
		t.Fatalf("function Sign() failed:\n%s", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Errorf("function Sign() is not deterministic")
	}

	pubKey := ed25519PublicFromSeed(testedSeed)
	if !algorithmer.Verify(data, sig1, pubKey) {
		t.Errorf("function Verify() failed on a valid signature")
	}
	if algorithmer.Verify(append(data, 'x'), sig1, pubKey) {
		t.Errorf("function Verify() accepted a signature over different data")
	}
}

// 测试 私有DNS算法（253）的签名及验证。
func TestPrivateAlgorithmSignVerify(t *testing.T) {
	algorithmer := DNSSECAlgorithmerFactory(DNSSECAlgorithmPRIVATEDNS)
	data := []byte("response body")

	sig, err := algorithmer.Sign(data, testedSeed)
	if err != nil {
		t.Fatalf("function Sign() failed:\n%s", err)
	}
	pubKey := ed25519PublicFromSeed(testedSeed)
	if !algorithmer.Verify(data, sig, pubKey) {
		t.Errorf("function Verify() failed on a valid signature")
	}
}

// 测试 GenerateRRSIG 的确定性：同一 RRSet 的两次签名完全一致，
// 且传入顺序不影响签名（规范化排序）。
func TestGenerateRRSIGDeterministic(t *testing.T) {
	rrSet := []DNSResourceRecord{
		{Name: "example.", Type: DNSRRTypeA, Class: DNSClassIN, TTL: 3600,
			RData: &DNSRDATAA{Address: net.ParseIP("10.0.0.2")}},
		{Name: "example.", Type: DNSRRTypeA, Class: DNSClassIN, TTL: 3600,
			RData: &DNSRDATAA{Address: net.ParseIP("10.0.0.1")}},
	}
	reversed := []DNSResourceRecord{rrSet[1], rrSet[0]}

	sig1 := GenerateRRSIG(rrSet, DNSSECAlgorithmED25519, 1700000000, 1690000000, 12345, ".", testedSeed)
	sig2 := GenerateRRSIG(reversed, DNSSECAlgorithmED25519, 1700000000, 1690000000, 12345, ".", testedSeed)
	if !bytes.Equal(sig1.Signature, sig2.Signature) {
		t.Errorf("function GenerateRRSIG() depends on RRSet order")
	}
	if sig1.Labels != 1 {
		t.Errorf("function GenerateRRSIG() failed: Labels = %d, want 1", sig1.Labels)
	}
	if sig1.TypeCovered != DNSRRTypeA {
		t.Errorf("function GenerateRRSIG() failed: TypeCovered = %s, want A", sig1.TypeCovered)
	}
}

// 测试 DS 摘要的生成。
func TestGenerateDS(t *testing.T) {
	key := testedDNSKEY(t)
	ds := GenerateDS(".", key, DNSSECDigestTypeSHA256)
	if ds.KeyTag != CalculateKeyTag(key) {
		t.Errorf("function GenerateDS() failed: key tag mismatch")
	}
	if ds.DigestType != DNSSECDigestTypeSHA256 {
		t.Errorf("function GenerateDS() failed: digest type mismatch")
	}
	if len(ds.Digest) != 32 {
		t.Errorf("function GenerateDS() failed: digest length %d, want 32", len(ds.Digest))
	}
	// 同一 DNSKEY 的摘要应当稳定
	again := GenerateDS(".", key, DNSSECDigestTypeSHA256)
	if !bytes.Equal(ds.Digest, again.Digest) {
		t.Errorf("function GenerateDS() is not stable")
	}
}
