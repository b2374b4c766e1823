// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// zone_test.go 文件定义了对 zone.go 与 sig0.go 文件的测试函数。
package hdns

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/tochusc/hdns/dns"
)

// testClock 为固定时间的 Clock 实现。
type testClock struct {
	now time.Time
}

func (c testClock) Now() time.Time {
	return c.now
}

// 测试用的固定时钟：2024-11-18 17:30:00 UTC。
var fixedClock = testClock{
	now: time.Date(2024, 11, 18, 17, 30, 0, 0, time.UTC),
}

// 测试用的区域主密钥。
var testMasterKey = bytes.Repeat([]byte{0x01}, 32)

// newTestZone 创建一个固定时钟、固定密钥的根区顶点。
func newTestZone(t *testing.T) *RootZone {
	t.Helper()
	keys, err := NewZoneKeys(testMasterKey)
	if err != nil {
		t.Fatalf("function NewZoneKeys failed:\n%s", err)
	}
	return NewRootZone(keys, net.ParseIP("127.0.0.1"), fixedClock)
}

// 测试主密钥长度检查。
func TestNewZoneKeysBadKey(t *testing.T) {
	if _, err := NewZoneKeys([]byte{0x01}); err == nil {
		t.Errorf("function NewZoneKeys() failed: expected an error on short key")
	}
}

// 测试密钥派生的确定性。
func TestZoneKeysDeterministic(t *testing.T) {
	keys1, _ := NewZoneKeys(testMasterKey)
	keys2, _ := NewZoneKeys(testMasterKey)
	if keys1.KSKTag != keys2.KSKTag || keys1.ZSKTag != keys2.ZSKTag {
		t.Errorf("zone key derivation is not deterministic")
	}
	if !bytes.Equal(keys1.ZSKPublic(), keys2.ZSKPublic()) {
		t.Errorf("zsk public key derivation is not deterministic")
	}
}

// 测试 SOA 序列号的日期推导（YYYYMMDDHH）。
func TestZoneSerial(t *testing.T) {
	zone := newTestZone(t)
	if serial := zone.Serial(); serial != 2024111817 {
		t.Errorf("method Serial() = %d, want 2024111817", serial)
	}
}

// 测试区域顶点 NS 的 _synth 指针名称。
func TestZoneSynthName(t *testing.T) {
	zone := newTestZone(t)
	if name := zone.SynthName(); name != "_fs00008._synth." {
		t.Errorf("method SynthName() = %s, want _fs00008._synth.", name)
	}
	glue := zone.ApexGlue()
	if glue.Type != dns.DNSRRTypeA {
		t.Errorf("method ApexGlue() type = %s, want A", glue.Type)
	}
	if !glue.RData.(*dns.DNSRDATAA).Address.Equal(net.ParseIP("127.0.0.1")) {
		t.Errorf("method ApexGlue() address mismatch")
	}
}

// 测试 DS 记录的摘要。
func TestZoneDSRR(t *testing.T) {
	zone := newTestZone(t)
	ds := zone.DSRR()
	rdata := ds.RData.(*dns.DNSRDATADS)
	if rdata.KeyTag != zone.Keys.KSKTag {
		t.Errorf("DS key tag = %d, want %d", rdata.KeyTag, zone.Keys.KSKTag)
	}
	if rdata.DigestType != dns.DNSSECDigestTypeSHA256 || len(rdata.Digest) != 32 {
		t.Errorf("DS digest malformed: type %d, %d bytes", rdata.DigestType, len(rdata.Digest))
	}
}

// 测试部分签名的分组与密钥选择：
// 普通 RRSet 由 ZSK 签名，DNSKEY RRSet 由 KSK 签名。
func TestZoneSignSection(t *testing.T) {
	zone := newTestZone(t)

	section := []dns.DNSResourceRecord{zone.ApexNS()}
	signed := zone.SignSection(section)
	if len(signed) != 2 {
		t.Fatalf("method SignSection() = %d records, want 2", len(signed))
	}
	sig := signed[1].RData.(*dns.DNSRDATARRSIG)
	if sig.KeyTag != zone.Keys.ZSKTag {
		t.Errorf("NS RRSIG key tag = %d, want ZSK %d", sig.KeyTag, zone.Keys.ZSKTag)
	}
	if sig.TypeCovered != dns.DNSRRTypeNS || sig.SignerName != "." {
		t.Errorf("NS RRSIG malformed: covered %s, signer %s", sig.TypeCovered, sig.SignerName)
	}

	keySection := zone.SignSection(zone.DNSKEYRRs())
	keySig := keySection[len(keySection)-1].RData.(*dns.DNSRDATARRSIG)
	if keySig.KeyTag != zone.Keys.KSKTag {
		t.Errorf("DNSKEY RRSIG key tag = %d, want KSK %d", keySig.KeyTag, zone.Keys.KSKTag)
	}
}

// 测试 SIG(0) 式尾部签名的追加与验证。
func TestSIG0RoundTrip(t *testing.T) {
	zone := newTestZone(t)

	msg := dns.DNSMessage{
		Header: dns.DNSHeader{ID: 0x1234, QR: true, AA: true, QDCount: 1},
		Question: dns.DNSQuestionSection{
			{Name: "example", Type: dns.DNSRRTypeNS, Class: dns.DNSClassIN},
		},
	}
	wire := msg.Encode()

	signed, err := AppendSIG0(wire, zone.Keys, fixedClock)
	if err != nil {
		t.Fatalf("function AppendSIG0 failed:\n%s", err)
	}
	if len(signed) <= len(wire) {
		t.Fatalf("function AppendSIG0 did not append a trailer")
	}
	if !VerifySIG0(signed, zone.Keys.ZSKPublic()) {
		t.Errorf("function VerifySIG0 failed on a valid trailer")
	}

	// 篡改消息本体后验证应当失败
	tampered := make([]byte, len(signed))
	copy(tampered, signed)
	tampered[2] ^= 0x01
	if VerifySIG0(tampered, zone.Keys.ZSKPublic()) {
		t.Errorf("function VerifySIG0 accepted a tampered message")
	}
}
