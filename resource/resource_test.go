// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// resource_test.go 文件定义了对 resource.go 与 record.go 文件的测试函数。
package resource

import (
	"bytes"
	"errors"
	"net"
	"testing"
)

// testedResource 构造一个覆盖多数记录类型的名称资源。
func testedResource() *Resource {
	return &Resource{
		TTL: 21600,
		Records: []Record{
			&HostRecord{Target: Target{Type: TargetINET4, Inet4: net.IPv4(10, 20, 30, 40)}},
			&HostRecord{Target: Target{Type: TargetINET6, Inet6: net.ParseIP("2001:db8::1")}},
			&HostRecord{Target: Target{Type: TargetONION, Onion: bytes.Repeat([]byte{0x01}, OnionAddrLen)}},
			NewNS(Target{Type: TargetGLUE, Name: "ns1.example.", Inet4: net.IPv4(127, 0, 0, 53)}),
			NewNS(Target{Type: TargetNAME, Name: "one."}),
			&ServiceRecord{
				Service:  "https",
				Protocol: "tcp",
				Priority: 1,
				Weight:   10,
				Target:   Target{Type: TargetNAME, Name: "svc.example."},
				Port:     443,
			},
			NewURI("https://example.com/page"),
			NewEmail("hostmaster@example.com"),
			NewText("hello world"),
			&LocationRecord{Version: 0, SizeExp: 0x12, HorizPre: 0x16, VertPre: 0x13,
				Latitude: 2147483648, Longitude: 2147483648, Altitude: 10000000},
			&MagnetRecord{NID: "btih", Info: []byte{0xde, 0xad}},
			&DSRecord{KeyTag: 30000, Algorithm: 15, DigestType: 2, Digest: bytes.Repeat([]byte{0x17}, 32)},
			&TLSRecord{Protocol: "tcp", Port: 443, Usage: 3, Selector: 1, MatchingType: 1,
				Certificate: []byte{0xbe, 0xef}},
			&SSHRecord{Algorithm: 4, KeyType: 2, Fingerprint: bytes.Repeat([]byte{0x55}, 32)},
			&AddrRecord{Currency: "hns", Address: "hs1qabcdef"},
		},
	}
}

// 测试名称资源的编码长度一致性：encode 的长度等于 GetSize。
func TestResourceGetSize(t *testing.T) {
	rs := testedResource()
	encoded, err := rs.Encode()
	if err != nil {
		t.Fatalf("method Resource Encode failed:\n%s", err)
	}
	if len(encoded) != rs.GetSize() {
		t.Errorf("method GetSize() = %d, want %d", rs.GetSize(), len(encoded))
	}
}

// 测试名称资源的编解码往返：
// decode(encode(R)) 的再编码与首次编码逐字节一致。
func TestResourceRoundTrip(t *testing.T) {
	rs := testedResource()
	encoded, err := rs.Encode()
	if err != nil {
		t.Fatalf("method Resource Encode failed:\n%s", err)
	}

	decoded, err := DecodeResource(encoded)
	if err != nil {
		t.Fatalf("function DecodeResource failed:\n%s", err)
	}
	if decoded.TTL != rs.TTL || decoded.Compat != rs.Compat {
		t.Errorf("resource header round trip failed: ttl %d compat %v", decoded.TTL, decoded.Compat)
	}
	if len(decoded.Records) != len(rs.Records) {
		t.Fatalf("resource record count round trip failed: %d != %d", len(decoded.Records), len(rs.Records))
	}

	reEncoded, err := decoded.Encode()
	if err != nil {
		t.Fatalf("re-encode failed:\n%s", err)
	}
	if !bytes.Equal(encoded, reEncoded) {
		t.Errorf("resource round trip failed:\ngot:\n%v\nexpected:\n%v", reEncoded, encoded)
	}
}

// 测试 compat 位与 TTL 字段的编解码。
func TestResourceTTLField(t *testing.T) {
	rs := &Resource{TTL: 128, Compat: true}
	encoded, err := rs.Encode()
	if err != nil {
		t.Fatalf("method Resource Encode failed:\n%s", err)
	}
	// field = (compat<<15) | (128>>6) = 0x8002
	if encoded[1] != 0x80 || encoded[2] != 0x02 {
		t.Errorf("ttl field encoding failed: %02x%02x", encoded[1], encoded[2])
	}

	decoded, err := DecodeResource(encoded)
	if err != nil {
		t.Fatalf("function DecodeResource failed:\n%s", err)
	}
	if decoded.TTL != 128 || !decoded.Compat {
		t.Errorf("ttl field decoding failed: ttl %d compat %v", decoded.TTL, decoded.Compat)
	}

	// 线路上 TTL 为 0 时解码为 64
	zeroTTL := []byte{0x00, 0x00, 0x00, 0x00}
	decoded, err = DecodeResource(zeroTTL)
	if err != nil {
		t.Fatalf("function DecodeResource failed:\n%s", err)
	}
	if decoded.TTL != DefaultTTL {
		t.Errorf("zero ttl decoding failed: %d, want %d", decoded.TTL, DefaultTTL)
	}
}

// 测试非零版本的拒绝。
func TestResourceBadVersion(t *testing.T) {
	if _, err := DecodeResource([]byte{0x01, 0x00, 0x00, 0x00}); !errors.Is(err, ErrBadVersion) {
		t.Errorf("function DecodeResource failed: expected ErrBadVersion, got %v", err)
	}
}

// 测试未知标签记录的原样往返。
func TestResourceExtraRecord(t *testing.T) {
	rs := &Resource{
		TTL: 64,
		Records: []Record{
			&ExtraRecord{Tag: 200, Data: []byte{0x01, 0x02, 0x03}},
		},
	}
	encoded, err := rs.Encode()
	if err != nil {
		t.Fatalf("method Resource Encode failed:\n%s", err)
	}
	decoded, err := DecodeResource(encoded)
	if err != nil {
		t.Fatalf("function DecodeResource failed:\n%s", err)
	}
	extra, ok := decoded.Records[0].(*ExtraRecord)
	if !ok {
		t.Fatalf("unknown tag not preserved as ExtraRecord: %T", decoded.Records[0])
	}
	if extra.Tag != 200 || !bytes.Equal(extra.Data, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("extra record round trip failed: %v", extra)
	}
	reEncoded, err := decoded.Encode()
	if err != nil {
		t.Fatalf("re-encode failed:\n%s", err)
	}
	if !bytes.Equal(encoded, reEncoded) {
		t.Errorf("extra record bytes not preserved verbatim")
	}
}

// 测试主机列表中 NAME 标签的 CANONICAL 化。
func TestResourceLegacyNameTag(t *testing.T) {
	// 手工构造：version 0, field 0, 符号表空, 标签 5 + 压缩字符串 "ab."
	wire := []byte{0x00, 0x00, 0x00, 0x00, 5, 3, 'a', 'b', '.'}
	decoded, err := DecodeResource(wire)
	if err != nil {
		t.Fatalf("function DecodeResource failed:\n%s", err)
	}
	canonical, ok := decoded.Records[0].(*CanonicalRecord)
	if !ok {
		t.Fatalf("legacy NAME tag not decoded as CANONICAL: %T", decoded.Records[0])
	}
	if canonical.Target.Type != TargetNAME || canonical.Target.Name != "ab." {
		t.Errorf("legacy NAME tag round trip failed: %v", canonical.Target)
	}
}

// 测试资源不变式的拒绝。
func TestResourceSanity(t *testing.T) {
	// 两条 CANONICAL
	rs := &Resource{
		TTL: 64,
		Records: []Record{
			NewCanonical(Target{Type: TargetNAME, Name: "a."}),
			NewCanonical(Target{Type: TargetNAME, Name: "b."}),
		},
	}
	if _, err := rs.Encode(); !errors.Is(err, ErrDuplicateCanonical) {
		t.Errorf("expected ErrDuplicateCanonical, got %v", err)
	}

	// CANONICAL 不允许是洋葱端点
	rs = &Resource{
		TTL: 64,
		Records: []Record{
			NewCanonical(Target{Type: TargetONION, Onion: make([]byte, OnionAddrLen)}),
		},
	}
	if _, err := rs.Encode(); !errors.Is(err, ErrTorCanonical) {
		t.Errorf("expected ErrTorCanonical, got %v", err)
	}

	// DELEGATE 必须是 HNS 名称
	rs = &Resource{
		TTL: 64,
		Records: []Record{
			NewDelegate(Target{Type: TargetINET4, Inet4: net.IPv4(1, 2, 3, 4)}),
		},
	}
	if _, err := rs.Encode(); !errors.Is(err, ErrBadDelegate) {
		t.Errorf("expected ErrBadDelegate, got %v", err)
	}

	// NS 不允许是洋葱端点
	rs = &Resource{
		TTL: 64,
		Records: []Record{
			NewNS(Target{Type: TargetONIONNG, Onion: make([]byte, OnionNGAddrLen)}),
		},
	}
	if _, err := rs.Encode(); !errors.Is(err, ErrTorNS) {
		t.Errorf("expected ErrTorNS, got %v", err)
	}

	// 无地址的 GLUE
	rs = &Resource{
		TTL: 64,
		Records: []Record{
			NewNS(Target{Type: TargetGLUE, Name: "ns."}),
		},
	}
	if _, err := rs.Encode(); err == nil {
		t.Errorf("expected an error on glue without address")
	}
}

// 测试记录字段的尺寸上限。
func TestRecordFieldLimits(t *testing.T) {
	sym := NewSymbols()

	ds := &DSRecord{Digest: make([]byte, MaxDigestLen+1)}
	if _, err := ds.Write(make([]byte, 512), sym); !errors.Is(err, ErrFieldTooLarge) {
		t.Errorf("expected ErrFieldTooLarge for DS digest, got %v", err)
	}

	magnet := &MagnetRecord{NID: "btih", Info: make([]byte, MaxMagnetInfoLen+1)}
	if _, err := magnet.Write(make([]byte, 512), sym); !errors.Is(err, ErrFieldTooLarge) {
		t.Errorf("expected ErrFieldTooLarge for magnet info, got %v", err)
	}

	pgp := &PGPRecord{PublicKey: make([]byte, MaxPGPKeyLen+1)}
	if _, err := pgp.Write(make([]byte, 1024), sym); !errors.Is(err, ErrFieldTooLarge) {
		t.Errorf("expected ErrFieldTooLarge for pgp key, got %v", err)
	}

	tlsRec := &TLSRecord{Protocol: "tcp", Certificate: make([]byte, MaxCertificateLen+1)}
	if _, err := tlsRec.Write(make([]byte, 512), sym); !errors.Is(err, ErrFieldTooLarge) {
		t.Errorf("expected ErrFieldTooLarge for certificate, got %v", err)
	}
}

// 测试访问器。
func TestResourceAccessors(t *testing.T) {
	rs := testedResource()
	if len(rs.Hosts()) != 3 {
		t.Errorf("method Hosts() = %d targets, want 3", len(rs.Hosts()))
	}
	if len(rs.NS()) != 2 {
		t.Errorf("method NS() = %d targets, want 2", len(rs.NS()))
	}
	if len(rs.Services()) != 1 || rs.Services()[0].Port != 443 {
		t.Errorf("method Services() failed: %v", rs.Services())
	}
	if len(rs.Texts()) != 1 || rs.Texts()[0] != "hello world" {
		t.Errorf("method Texts() failed: %v", rs.Texts())
	}
	if rs.Canonical() != nil {
		t.Errorf("method Canonical() failed: want nil")
	}
	if rs.Delegate() != nil {
		t.Errorf("method Delegate() failed: want nil")
	}
}
