// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// ip_test.go 文件定义了对 ip.go 文件的测试函数。
package resource

import (
	"net"
	"testing"
)

// 测试 IP 地址零段压缩的往返及长度一致性。
func TestIPPackUnpack(t *testing.T) {
	samples := []string{
		"127.0.0.2",
		"10.10.0.3",
		"::2",
		"::",
		"2001:db8::1",
		"fe80::1:2:3:4",
		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff",
	}
	for _, sample := range samples {
		ip := net.ParseIP(sample)
		packed := IPPack(ip)
		if len(packed) != IPSize(ip) {
			t.Errorf("function IPSize(%s) = %d, want %d", sample, IPSize(ip), len(packed))
		}
		unpacked, err := IPUnpack(packed)
		if err != nil {
			t.Fatalf("function IPUnpack(%s) failed:\n%s", sample, err)
		}
		if !unpacked.Equal(ip) {
			t.Errorf("ip round trip failed:\ngot:%s\nexpected:%s", unpacked, sample)
		}
	}
}

// 测试压缩不变式：全零地址不压缩，其余地址去掉最长零段。
func TestIPPackInvariants(t *testing.T) {
	// 全零地址：前缀字节 0x00，带全部 16 字节
	packed := IPPack(net.ParseIP("::"))
	if len(packed) != 17 || packed[0] != 0x00 {
		t.Errorf("function IPPack(\"::\") failed: %v", packed)
	}

	// ::2：最长零段为前 15 字节，剩余 1 字节
	packed = IPPack(net.ParseIP("::2"))
	if len(packed) != 2 {
		t.Errorf("function IPPack(\"::2\") failed: %d bytes, want 2", len(packed))
	}
	start := int(packed[0] >> 4)
	length := int(packed[0] & 0x0F)
	if start != 0 || length != 15 {
		t.Errorf("function IPPack(\"::2\") failed: start %d, len %d", start, length)
	}
}

// 测试非法压缩编码的拒绝。
func TestIPUnpackErrors(t *testing.T) {
	if _, err := IPUnpack(nil); err == nil {
		t.Errorf("function IPUnpack(nil) failed: expected an error but got nil")
	}
	// start+len > 16
	if _, err := IPUnpack([]byte{0xFF}); err == nil {
		t.Errorf("function IPUnpack() failed: expected an error on start+len > 16")
	}
	// 数据字节数与前缀不符
	if _, err := IPUnpack([]byte{0x0F, 0x02, 0x03}); err == nil {
		t.Errorf("function IPUnpack() failed: expected an error on bad data length")
	}
}

// 测试 _synth 指针标签的编码向量。
func TestToPointerVectors(t *testing.T) {
	// 127.0.0.2 -> _fs0000g
	if pointer := ToPointer(net.ParseIP("127.0.0.2")); pointer != "_fs0000g" {
		t.Errorf("function ToPointer(127.0.0.2) = %s, want _fs0000g", pointer)
	}
	// 127.0.0.1 -> _fs00008
	if pointer := ToPointer(net.ParseIP("127.0.0.1")); pointer != "_fs00008" {
		t.Errorf("function ToPointer(127.0.0.1) = %s, want _fs00008", pointer)
	}
	// ::2 -> 26 个 base32hex 字符
	pointer := ToPointer(net.ParseIP("::2"))
	if pointer != "_00000000000000000000000008" {
		t.Errorf("function ToPointer(::2) = %s, want _00000000000000000000000008", pointer)
	}
}

// 测试 _synth 指针标签的解码及往返。
func TestFromPointer(t *testing.T) {
	ip, err := FromPointer("_fs0000g")
	if err != nil {
		t.Fatalf("function FromPointer(_fs0000g) failed:\n%s", err)
	}
	if !ip.Equal(net.ParseIP("127.0.0.2")) {
		t.Errorf("function FromPointer(_fs0000g) = %s, want 127.0.0.2", ip)
	}

	ip, err = FromPointer("_00000000000000000000000008")
	if err != nil {
		t.Fatalf("function FromPointer() failed on AAAA pointer:\n%s", err)
	}
	if !ip.Equal(net.ParseIP("::2")) {
		t.Errorf("function FromPointer() = %s, want ::2", ip)
	}

	// 往返性质
	for _, sample := range []string{"1.2.3.4", "255.255.255.255", "2001:db8::42"} {
		original := net.ParseIP(sample)
		decoded, err := FromPointer(ToPointer(original))
		if err != nil {
			t.Fatalf("pointer round trip failed for %s:\n%s", sample, err)
		}
		if !decoded.Equal(original) {
			t.Errorf("pointer round trip failed:\ngot:%s\nexpected:%s", decoded, sample)
		}
	}

	// 非法标签
	for _, bad := range []string{"", "fs0000g", "_", "_!!!", "_abc"} {
		if _, err := FromPointer(bad); err == nil {
			t.Errorf("function FromPointer(%q) failed: expected an error but got nil", bad)
		}
	}
}
