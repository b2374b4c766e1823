// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// resolver_test.go 文件定义了根区解析器的端到端测试。
// 名称树由内存映射上的闭包模拟。
package hdns

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/tochusc/hdns/dns"
	"github.com/tochusc/hdns/naming"
	"github.com/tochusc/hdns/resource"
)

// memTree 由内存映射构造名称树查询协作者。
func memTree(entries map[[naming.NameHashLen]byte][]byte) TreeLookup {
	return func(ctx context.Context, nameHash [naming.NameHashLen]byte) ([]byte, error) {
		return entries[nameHash], nil
	}
}

// newTestResolver 创建一个固定时钟、固定密钥的解析器。
func newTestResolver(t *testing.T, tree TreeLookup) *RootResolver {
	t.Helper()
	if tree == nil {
		tree = memTree(nil)
	}
	conf := ServerConfig{
		Host:       net.ParseIP("127.0.0.1"),
		Port:       5300,
		PublicHost: net.ParseIP("127.0.0.1"),
		Key:        testMasterKey,
		Params:     &naming.MainNetParams,
	}
	resolver, err := NewRootResolver(conf, tree, nil, nil, fixedClock, nil)
	if err != nil {
		t.Fatalf("function NewRootResolver failed:\n%s", err)
	}
	return resolver
}

// newQuery 构造一个查询消息。
func newQuery(qname string, qtype dns.DNSType) dns.DNSMessage {
	return dns.DNSMessage{
		Header: dns.DNSHeader{
			ID:      0x4242,
			OpCode:  dns.DNSOpCodeQuery,
			RD:      false,
			QDCount: 1,
		},
		Question: dns.DNSQuestionSection{
			{Name: qname, Type: qtype, Class: dns.DNSClassIN},
		},
	}
}

// countType 统计部分中指定类型的资源记录数量。
func countType(section []dns.DNSResourceRecord, rrType dns.DNSType) int {
	count := 0
	for i := range section {
		if section[i].Type == rrType {
			count++
		}
	}
	return count
}

// findType 返回部分中第一条指定类型的资源记录。
func findType(section []dns.DNSResourceRecord, rrType dns.DNSType) *dns.DNSResourceRecord {
	for i := range section {
		if section[i].Type == rrType {
			return &section[i]
		}
	}
	return nil
}

// 场景一：_synth 指针的 A 查询。
func TestSynthAQuery(t *testing.T) {
	resolver := newTestResolver(t, nil)
	resp, err := resolver.Resolve(newQuery("_fs0000g._synth", dns.DNSRRTypeA))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}

	a := findType(resp.Answer, dns.DNSRRTypeA)
	if a == nil {
		t.Fatalf("synth A answer missing:\n%s", resp.String())
	}
	if !a.RData.(*dns.DNSRDATAA).Address.Equal(net.ParseIP("127.0.0.2")) {
		t.Errorf("synth A answer = %s, want 127.0.0.2", a.RData.(*dns.DNSRDATAA).Address)
	}
	if countType(resp.Answer, dns.DNSRRTypeRRSIG) == 0 {
		t.Errorf("synth A answer is unsigned")
	}
}

// 场景二：_synth 指针的 AAAA 查询。
func TestSynthAAAAQuery(t *testing.T) {
	resolver := newTestResolver(t, nil)
	resp, err := resolver.Resolve(newQuery("_00000000000000000000000008._synth", dns.DNSRRTypeAAAA))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}

	aaaa := findType(resp.Answer, dns.DNSRRTypeAAAA)
	if aaaa == nil {
		t.Fatalf("synth AAAA answer missing:\n%s", resp.String())
	}
	if !aaaa.RData.(*dns.DNSRDATAAAAA).Address.Equal(net.ParseIP("::2")) {
		t.Errorf("synth AAAA answer = %s, want ::2", aaaa.RData.(*dns.DNSRDATAAAAA).Address)
	}
}

// 场景三：区域顶点的 NS 查询。
func TestApexNSQuery(t *testing.T) {
	resolver := newTestResolver(t, nil)
	resp, err := resolver.Resolve(newQuery(".", dns.DNSRRTypeNS))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}

	ns := findType(resp.Answer, dns.DNSRRTypeNS)
	if ns == nil {
		t.Fatalf("apex NS answer missing:\n%s", resp.String())
	}
	if ns.RData.(*dns.DNSRDATANS).NSDNAME != "_fs00008._synth." {
		t.Errorf("apex NS = %s, want _fs00008._synth.", ns.RData.(*dns.DNSRDATANS).NSDNAME)
	}

	glue := findType(resp.Additional, dns.DNSRRTypeA)
	if glue == nil {
		t.Fatalf("apex NS glue missing")
	}
	if !glue.RData.(*dns.DNSRDATAA).Address.Equal(net.ParseIP("127.0.0.1")) {
		t.Errorf("apex glue = %s, want 127.0.0.1", glue.RData.(*dns.DNSRDATAA).Address)
	}

	if countType(resp.Answer, dns.DNSRRTypeRRSIG) == 0 ||
		countType(resp.Additional, dns.DNSRRTypeRRSIG) == 0 {
		t.Errorf("apex NS answer or glue is unsigned")
	}
}

// 场景四：空名称树上的 NXDOMAIN。
func TestNXDomain(t *testing.T) {
	resolver := newTestResolver(t, nil)
	resp, err := resolver.Resolve(newQuery("icecream", dns.DNSRRTypeNS))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}

	if resp.Header.RCode != dns.DNSResponseCodeNXDomain {
		t.Errorf("rcode = %s, want NXDOMAIN", resp.Header.RCode)
	}
	if !resp.Header.AA {
		t.Errorf("AA flag not set on NXDOMAIN")
	}
	if countType(resp.Authority, dns.DNSRRTypeSOA) != 1 {
		t.Errorf("authority has %d SOA records, want 1", countType(resp.Authority, dns.DNSRRTypeSOA))
	}
	if countType(resp.Authority, dns.DNSRRTypeNSEC) != 2 {
		t.Errorf("authority has %d NSEC records, want 2", countType(resp.Authority, dns.DNSRRTypeNSEC))
	}

	// 名称证明应当在字典序上覆盖被查询标签
	nameProof := findType(resp.Authority, dns.DNSRRTypeNSEC)
	rdata := nameProof.RData.(*dns.DNSRDATANSEC)
	if !(nameProof.Name < "icecream." && "icecream." < rdata.NextDomainName) {
		t.Errorf("NSEC does not cover icecream.: owner %s, next %s",
			nameProof.Name, rdata.NextDomainName)
	}
}

// servedNameState 构造一个 CLOSED 且携带资源数据的名称状态。
func servedNameState(t *testing.T, name string, rs *resource.Resource) *naming.NameState {
	t.Helper()
	data, err := rs.Encode()
	if err != nil {
		t.Fatalf("method Resource Encode failed:\n%s", err)
	}
	ns, err := naming.OpenName(name, 1)
	if err != nil {
		t.Fatalf("function OpenName failed:\n%s", err)
	}
	if err := ns.Apply(naming.CovenantRegister, 3300, naming.Outpoint{}, 0, data); err != nil {
		t.Fatalf("method Apply(REGISTER) failed:\n%s", err)
	}
	return ns
}

// 场景五：已注册名称的 NS 查询。
func TestNameServe(t *testing.T) {
	rs := &resource.Resource{
		TTL: 21600,
		Records: []resource.Record{
			resource.NewNS(resource.Target{Type: resource.TargetNAME, Name: "one."}),
		},
	}
	ns := servedNameState(t, "example", rs)
	resolver := newTestResolver(t, memTree(map[[naming.NameHashLen]byte][]byte{
		ns.NameHash: ns.Encode(),
	}))

	resp, err := resolver.Resolve(newQuery("example", dns.DNSRRTypeNS))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}

	nsAnswer := findType(resp.Answer, dns.DNSRRTypeNS)
	if nsAnswer == nil {
		t.Fatalf("NS answer missing:\n%s", resp.String())
	}
	if nsAnswer.RData.(*dns.DNSRDATANS).NSDNAME != "one." {
		t.Errorf("NS answer = %s, want one.", nsAnswer.RData.(*dns.DNSRDATANS).NSDNAME)
	}
	if countType(resp.Answer, dns.DNSRRTypeRRSIG) == 0 {
		t.Errorf("NS answer is unsigned")
	}
	// 名称端点没有胶水
	if countType(resp.Additional, dns.DNSRRTypeA) != 0 ||
		countType(resp.Additional, dns.DNSRRTypeAAAA) != 0 {
		t.Errorf("unexpected glue in additional section:\n%s", resp.Additional.String())
	}
}

// 场景六：黑名单顶级域跳过名称树。
func TestBlacklistedTLD(t *testing.T) {
	treeCalled := false
	tree := func(ctx context.Context, nameHash [naming.NameHashLen]byte) ([]byte, error) {
		treeCalled = true
		return nil, nil
	}
	resolver := newTestResolver(t, tree)

	resp, err := resolver.Resolve(newQuery("bit", dns.DNSRRTypeNS))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}
	if treeCalled {
		t.Errorf("tree lookup was not skipped for blacklisted tld")
	}
	if resp.Header.RCode != dns.DNSResponseCodeNXDomain {
		t.Errorf("rcode = %s, want NXDOMAIN", resp.Header.RCode)
	}
	if countType(resp.Authority, dns.DNSRRTypeSOA) != 1 ||
		countType(resp.Authority, dns.DNSRRTypeNSEC) != 2 {
		t.Errorf("blacklisted tld proof malformed:\n%s", resp.Authority.String())
	}
}

// 测试非法查询名称的 REFUSED。
func TestRefusedQuery(t *testing.T) {
	resolver := newTestResolver(t, nil)
	resp, err := resolver.Resolve(newQuery("bad!name", dns.DNSRRTypeA))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}
	if resp.Header.RCode != dns.DNSResponseCodeRefused {
		t.Errorf("rcode = %s, want REFUSED", resp.Header.RCode)
	}
	if len(resp.Answer) != 0 || countType(resp.Authority, dns.DNSRRTypeNSEC) != 0 {
		t.Errorf("REFUSED response carries synthesized records")
	}
}

// 测试缓存的逐字节一致性，及 _synth 查询不进入缓存。
func TestCacheByteIdentity(t *testing.T) {
	resolver := newTestResolver(t, nil)
	packet := newQuery("icecream", dns.DNSRRTypeNS).Encode()

	first, err := resolver.ResolveWire(packet)
	if err != nil {
		t.Fatalf("method ResolveWire failed:\n%s", err)
	}
	if resolver.cache.Len() != 1 {
		t.Errorf("cache length = %d, want 1", resolver.cache.Len())
	}

	second, err := resolver.ResolveWire(packet)
	if err != nil {
		t.Fatalf("method ResolveWire failed:\n%s", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("cached response is not byte-identical")
	}

	// _synth 查询不进入缓存
	synthPacket := newQuery("_fs0000g._synth", dns.DNSRRTypeA).Encode()
	if _, err := resolver.ResolveWire(synthPacket); err != nil {
		t.Fatalf("method ResolveWire failed:\n%s", err)
	}
	if resolver.cache.Len() != 1 {
		t.Errorf("synth query populated the cache: length %d", resolver.cache.Len())
	}
}

// 测试 SIG(0) 式尾部签名默认启用并可验证，配置可禁用。
func TestResolverSIG0(t *testing.T) {
	resolver := newTestResolver(t, nil)
	wire, err := resolver.ResolveWire(newQuery("icecream", dns.DNSRRTypeNS).Encode())
	if err != nil {
		t.Fatalf("method ResolveWire failed:\n%s", err)
	}
	if !VerifySIG0(wire, resolver.Zone().Keys.ZSKPublic()) {
		t.Errorf("response trailer signature does not verify")
	}

	conf := ServerConfig{
		Host:       net.ParseIP("127.0.0.1"),
		PublicHost: net.ParseIP("127.0.0.1"),
		Key:        testMasterKey,
		NoSig0:     true,
	}
	noSig, err := NewRootResolver(conf, memTree(nil), nil, nil, fixedClock, nil)
	if err != nil {
		t.Fatalf("function NewRootResolver failed:\n%s", err)
	}
	wire, err = noSig.ResolveWire(newQuery("icecream", dns.DNSRRTypeNS).Encode())
	if err != nil {
		t.Fatalf("method ResolveWire failed:\n%s", err)
	}
	if VerifySIG0(wire, noSig.Zone().Keys.ZSKPublic()) {
		t.Errorf("NoSig0 response still carries a trailer signature")
	}
}

// 测试中间件钩子在黑名单之前拦截查询。
func TestMiddlewareHook(t *testing.T) {
	resolver := newTestResolver(t, nil)
	resolver.SetMiddleware(func(qname string, qtype dns.DNSType) *dns.DNSMessage {
		if qname != "bit." {
			return nil
		}
		resp := dns.DNSMessage{
			Header: dns.DNSHeader{QR: true, AA: true, RCode: dns.DNSResponseCodeNoErr},
			Answer: []dns.DNSResourceRecord{
				{Name: "bit.", Type: dns.DNSRRTypeTXT, Class: dns.DNSClassIN, TTL: 300,
					RData: &dns.DNSRDATATXT{TXT: "intercepted"}},
			},
		}
		resp.FixCount()
		return &resp
	})

	resp, err := resolver.Resolve(newQuery("bit", dns.DNSRRTypeTXT))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}
	txt := findType(resp.Answer, dns.DNSRRTypeTXT)
	if txt == nil || txt.RData.(*dns.DNSRDATATXT).TXT != "intercepted" {
		t.Errorf("middleware interception failed:\n%s", resp.String())
	}
}

// 测试已注册名称的地址回答与 Tor 提示。
func TestNameServeAddresses(t *testing.T) {
	rs := &resource.Resource{
		TTL: 21600,
		Records: []resource.Record{
			&resource.HostRecord{Target: resource.Target{
				Type: resource.TargetINET4, Inet4: net.IPv4(10, 20, 30, 40)}},
			&resource.HostRecord{Target: resource.Target{
				Type: resource.TargetONION, Onion: bytes.Repeat([]byte{0x02}, resource.OnionAddrLen)}},
		},
	}
	ns := servedNameState(t, "addrs", rs)
	resolver := newTestResolver(t, memTree(map[[naming.NameHashLen]byte][]byte{
		ns.NameHash: ns.Encode(),
	}))

	resp, err := resolver.Resolve(newQuery("addrs", dns.DNSRRTypeA))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}
	a := findType(resp.Answer, dns.DNSRRTypeA)
	if a == nil || !a.RData.(*dns.DNSRDATAA).Address.Equal(net.ParseIP("10.20.30.40")) {
		t.Fatalf("A answer missing or wrong:\n%s", resp.String())
	}
	// 洋葱端点触发 Tor 提示 TXT
	txt := findType(resp.Answer, dns.DNSRRTypeTXT)
	if txt == nil || txt.RData.(*dns.DNSRDATATXT).TXT != "hns:tor" {
		t.Errorf("tor hint TXT missing:\n%s", resp.Answer.String())
	}
}

// 测试 ICANN 动态回退：保留且未认领的顶级域转发至上游。
func TestReservedFallback(t *testing.T) {
	upstream := &stubIcann{}
	conf := ServerConfig{
		Host:       net.ParseIP("127.0.0.1"),
		PublicHost: net.ParseIP("127.0.0.1"),
		Key:        testMasterKey,
	}
	reserved := MapReservedTable{
		"com": {Target: "com.", Root: true},
		"pro": {Target: "pro.", Root: false},
	}
	resolver, err := NewRootResolver(conf, memTree(nil), reserved, upstream, fixedClock, nil)
	if err != nil {
		t.Fatalf("function NewRootResolver failed:\n%s", err)
	}

	resp, err := resolver.Resolve(newQuery("com", dns.DNSRRTypeNS))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}
	if !upstream.called {
		t.Errorf("icann stub was not consulted for reserved root tld")
	}
	if findType(resp.Answer, dns.DNSRRTypeNS) == nil {
		t.Errorf("fallback answer missing:\n%s", resp.String())
	}

	// root 为 false 的保留名称不回退
	upstream.called = false
	resp, err = resolver.Resolve(newQuery("pro", dns.DNSRRTypeNS))
	if err != nil {
		t.Fatalf("method Resolve failed:\n%s", err)
	}
	if upstream.called {
		t.Errorf("icann stub consulted for non-root reserved tld")
	}
	if resp.Header.RCode != dns.DNSResponseCodeNXDomain {
		t.Errorf("rcode = %s, want NXDOMAIN", resp.Header.RCode)
	}
}

// stubIcann 为测试用的 ICANN 回退实现。
type stubIcann struct {
	called bool
}

func (s *stubIcann) Lookup(ctx context.Context, qname string, qtype dns.DNSType) (*dns.DNSMessage, error) {
	s.called = true
	resp := &dns.DNSMessage{
		Header: dns.DNSHeader{QR: true, RCode: dns.DNSResponseCodeNoErr},
		Answer: []dns.DNSResourceRecord{
			{Name: qname, Type: dns.DNSRRTypeNS, Class: dns.DNSClassIN, TTL: 172800,
				RData: &dns.DNSRDATANS{NSDNAME: "a.gtld-servers.net."}},
		},
	}
	resp.FixCount()
	return resp, nil
}
