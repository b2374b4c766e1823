// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// ip.go 文件定义了 IP 地址的零段压缩 与 _synth 指针标签的编解码。
//
// # 零段压缩
//
// IPv6 地址按最长连续零字节段压缩：
// 首字节为 (start<<4)|len，start 为零段起点，len 为零段长度，
// 其后为去掉零段的剩余字节。读取方向中部补零即可还原。
// 不变式：start<16、len<16、start+len≤16；
// 全零地址不做压缩（len 记为 0，带全部 16 字节写出）。
//
// # _synth 指针标签
//
// 指针标签形如 "_<base32hex>"，base32hex 为 IP 地址原始字节
// （IPv4 为 4 字节，IPv6 为 16 字节）的无填充小写 base32hex 编码。
// 解码出的字节长度区分地址族。
// 该标签使得 裸 IP 地址 可以作为 DNS 名称被引用，
// 从而为 SRV/NS 等只能指向名称的记录提供 A/AAAA 胶水。

package resource

import (
	"encoding/base32"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrBadPointer 表示非法的 _synth 指针标签。
var ErrBadPointer = errors.New("resource: bad synth pointer label")

// ErrBadIPPack 表示非法的压缩 IP 编码。
var ErrBadIPPack = errors.New("resource: bad packed ip")

// base32Hex 为无填充的 base32hex 编码器（RFC 4648 第 7 节字母表）。
var base32Hex = base32.HexEncoding.WithPadding(base32.NoPadding)

// zeroRun 返回 16 字节地址中最长连续零字节段的 (起点, 长度)。
// 若存在多个等长零段，取最靠前者；全零地址返回 (0, 0)（不做压缩）。
func zeroRun(ip []byte) (int, int) {
	bestStart, bestLen := 0, 0
	start, length := 0, 0
	for i := 0; i < len(ip); i++ {
		if ip[i] == 0 {
			if length == 0 {
				start = i
			}
			length++
			if length > bestLen {
				bestStart, bestLen = start, length
			}
		} else {
			length = 0
		}
	}
	if bestLen == len(ip) {
		// 全零地址不压缩
		return 0, 0
	}
	return bestStart, bestLen
}

// IPSize 返回 IP 地址的压缩编码长度。
func IPSize(ip net.IP) int {
	b := ip.To16()
	_, length := zeroRun(b)
	return 1 + 16 - length
}

// IPPack 将 IP 地址压缩编码为字节切片。
// 地址总是以 16 字节形式（IPv4 为 v4-mapped 形式）参与压缩。
func IPPack(ip net.IP) []byte {
	b := ip.To16()
	start, length := zeroRun(b)
	packed := make([]byte, 0, 1+16-length)
	packed = append(packed, byte(start<<4|length))
	packed = append(packed, b[:start]...)
	packed = append(packed, b[start+length:]...)
	return packed
}

// IPUnpack 解码压缩的 IP 地址，返回 16 字节形式的地址。
// 如果出现错误，返回 nil 和 相应报错。
func IPUnpack(data []byte) (net.IP, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("function IPUnpack failed: %w: empty", ErrBadIPPack)
	}
	start := int(data[0] >> 4)
	length := int(data[0] & 0x0F)
	if start+length > 16 {
		return nil, fmt.Errorf("function IPUnpack failed: %w: start %d + len %d > 16", ErrBadIPPack, start, length)
	}
	rest := data[1:]
	if len(rest) != 16-length {
		return nil, fmt.Errorf("function IPUnpack failed: %w: %d data bytes, want %d", ErrBadIPPack, len(rest), 16-length)
	}
	ip := make(net.IP, 16)
	copy(ip[:start], rest[:start])
	copy(ip[start+length:], rest[start:])
	return ip, nil
}

// ToPointer 将 IP 地址编码为 _synth 指针标签（不含 "._synth." 后缀）。
// IPv4 地址编码其 4 字节原始形式，IPv6 地址编码其 16 字节原始形式。
func ToPointer(ip net.IP) string {
	b := ip.To4()
	if b == nil {
		b = ip.To16()
	}
	return "_" + strings.ToLower(base32Hex.EncodeToString(b))
}

// FromPointer 解码 _synth 指针标签为 IP 地址。
//   - 其接收参数为 指针标签（不含 "._synth." 后缀），
//   - 返回值为 解码后的 IP 地址 和 错误信息。
//
// 解码出的字节长度必须为 4（IPv4）或 16（IPv6），否则返回 ErrBadPointer。
func FromPointer(label string) (net.IP, error) {
	if len(label) < 2 || label[0] != '_' {
		return nil, fmt.Errorf("function FromPointer failed: %w: %q", ErrBadPointer, label)
	}
	data, err := base32Hex.DecodeString(strings.ToUpper(label[1:]))
	if err != nil {
		return nil, fmt.Errorf("function FromPointer failed: %w: %q", ErrBadPointer, label)
	}
	switch len(data) {
	case net.IPv4len:
		return net.IPv4(data[0], data[1], data[2], data[3]), nil
	case net.IPv6len:
		return net.IP(data), nil
	default:
		return nil, fmt.Errorf("function FromPointer failed: %w: decoded %d bytes", ErrBadPointer, len(data))
	}
}

// IsPointer 判断标签是否具有 _synth 指针标签的形式。
func IsPointer(label string) bool {
	ip, err := FromPointer(label)
	return err == nil && ip != nil
}
