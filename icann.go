// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// icann.go 文件定义了 ICANN 回退所使用的存根解析器。
// 当顶级域在保留名称表中且 root 为 true、而名称树中尚无该名称时，
// 根服务器将查询转发给 ICANN 名称空间的上游解析器，
// 并在转发回复前去除 AD 位。

package hdns

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/tochusc/hdns/dns"
)

// StubResolver 为 UDP 存根实现的 IcannStub。
type StubResolver struct {
	// Upstream 为上游解析器地址（host:port）。
	Upstream string
	// Timeout 为单次查询的超时时间。
	Timeout time.Duration
}

// NewStubResolver 创建一个指向上游解析器的存根。
func NewStubResolver(upstream string) *StubResolver {
	return &StubResolver{
		Upstream: upstream,
		Timeout:  3 * time.Second,
	}
}

// Lookup 向上游解析器发起查询并返回其回复。
// 回复的 AD 位会被清除；上游不可达或超时时返回错误。
func (s *StubResolver) Lookup(ctx context.Context, qname string, qtype dns.DNSType) (*dns.DNSMessage, error) {
	qry := dns.DNSMessage{
		Header: dns.DNSHeader{
			ID:      uint16(time.Now().UnixNano() & 0xFFFF),
			QR:      false,
			OpCode:  dns.DNSOpCodeQuery,
			RD:      true,
			QDCount: 1,
		},
		Question: dns.DNSQuestionSection{
			{Name: qname, Type: qtype, Class: dns.DNSClassIN},
		},
	}

	conn, err := net.Dial("udp", s.Upstream)
	if err != nil {
		return nil, fmt.Errorf("method StubResolver Lookup failed: dial upstream failed: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(s.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetDeadline(deadline)

	if _, err := conn.Write(qry.Encode()); err != nil {
		return nil, fmt.Errorf("method StubResolver Lookup failed: write query failed: %w", err)
	}

	buffer := make([]byte, 4096)
	n, err := conn.Read(buffer)
	if err != nil {
		return nil, fmt.Errorf("method StubResolver Lookup failed: read response failed: %w", err)
	}

	resp := &dns.DNSMessage{}
	if _, err := resp.DecodeFromBuffer(buffer[:n], 0); err != nil {
		return nil, fmt.Errorf("method StubResolver Lookup failed: decode response failed: %w", err)
	}

	// 去除 AD 位（保留字段中的第 2 位）
	resp.Header.Z &^= 0x02
	return resp, nil
}
