// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// resolver.go 文件定义了 根区解析器 RootResolver，
// 即根服务器的请求分派器。其处理流程为：
//
//	问题解析 → 合法性检查 → 区域顶点/_synth 特判 → 缓存查询
//	→ 中间件钩子 → 黑名单 → 名称树查询 → 名称状态解码
//	→ 名称资源解码 → DNS 回答构造 → 签名 → 缓存 → 尾部签名
//
// 缓存键为顶级域（区域顶点处为 "顶级域;查询类型"）；
// _synth 指针回复从不进入缓存。
// 解码持久化数据失败只会被记录并翻译为 NXDOMAIN，不会使服务器崩溃。

package hdns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/tochusc/hdns/dns"
	"github.com/tochusc/hdns/naming"
	"github.com/tochusc/hdns/resource"
)

// ErrDropRequest 表示入站数据包格式非法或处理超时，应当丢弃不回复。
var ErrDropRequest = errors.New("hdns: drop request without reply")

// ednsUDPSize 为响应中 OPT 伪记录声明的 UDP 载荷大小。
const ednsUDPSize = 4096

// RootResolver 为根区解析器。
// 除缓存外不持有跨请求的可变状态；区域密钥初始化后不可变。
type RootResolver struct {
	conf       ServerConfig
	zone       *RootZone
	cache      *Cache
	tree       TreeLookup
	reserved   ReservedTable
	icann      IcannStub
	blacklist  Blacklist
	middleware Middleware
	params     *naming.Params
	clock      Clock
	logger     *log.Logger
}

// NewRootResolver 创建一个根区解析器。
//   - conf: 服务器配置（Key 非法时返回启动期致命错误）
//   - tree: 名称树查询协作者
//   - reserved: 保留名称表协作者（可为 nil）
//   - icann: ICANN 回退协作者（可为 nil）
func NewRootResolver(conf ServerConfig, tree TreeLookup, reserved ReservedTable,
	icann IcannStub, clock Clock, logWriter io.Writer) (*RootResolver, error) {

	keys, err := NewZoneKeys(conf.Key)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if conf.Params == nil {
		conf.Params = &naming.MainNetParams
	}
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultTimeout
	}
	if logWriter == nil {
		logWriter = io.Discard
	}
	return &RootResolver{
		conf:      conf,
		zone:      NewRootZone(keys, conf.PublicHost, clock),
		cache:     NewCache(conf.CacheSize, DefaultCacheTTL, clock, logWriter),
		tree:      tree,
		reserved:  reserved,
		icann:     icann,
		blacklist: NewBlacklist(conf.Blacklist),
		params:    conf.Params,
		clock:     clock,
		logger:    log.New(logWriter, "Resolver: ", log.LstdFlags),
	}, nil
}

// SetMiddleware 设置查询拦截钩子。
func (r *RootResolver) SetMiddleware(middleware Middleware) {
	r.middleware = middleware
}

// Zone 返回解析器的根区顶点。
func (r *RootResolver) Zone() *RootZone {
	return r.zone
}

// ResetCache 清空响应缓存。
func (r *RootResolver) ResetCache() {
	r.cache.Reset()
}

// Response 实现 Responser 接口：解析入站数据包并生成回复消息。
// 数据包格式非法时返回 ErrDropRequest，调用方应丢弃该请求。
func (r *RootResolver) Response(connInfo ConnectionInfo) (dns.DNSMessage, error) {
	wire, err := r.ResolveWire(connInfo.Packet)
	if err != nil {
		return dns.DNSMessage{}, err
	}
	resp := dns.DNSMessage{}
	if _, err := resp.DecodeFromBuffer(wire, 0); err != nil {
		return dns.DNSMessage{}, fmt.Errorf("method RootResolver Response failed: decode own reply failed.\n%w", err)
	}
	return resp, nil
}

// Resolve 处理一个消息形式的查询并返回回复消息。
func (r *RootResolver) Resolve(qry dns.DNSMessage) (dns.DNSMessage, error) {
	return r.Response(ConnectionInfo{Packet: qry.Encode()})
}

// ResolveWire 处理一个线路形式的查询并返回线路形式的回复。
// 入站数据包格式非法或处理超时时返回 ErrDropRequest；
// 服务器自身无法继续处理时回复 SERVFAIL。
func (r *RootResolver) ResolveWire(packet []byte) (wire []byte, err error) {
	qry := dns.DNSMessage{}
	if _, err := qry.DecodeFromBuffer(packet, 0); err != nil {
		r.logger.Printf("Dropping malformed packet: %s", err)
		return nil, ErrDropRequest
	}
	if len(qry.Question) == 0 {
		r.logger.Printf("Dropping packet without question")
		return nil, ErrDropRequest
	}

	qname := strings.ToLower(qry.Question[0].Name)
	if qname != "." && !strings.HasSuffix(qname, ".") {
		qname += "."
	}
	qtype := qry.Question[0].Type
	r.logger.Printf("Receive query QName: %s, QType: %s", qname, qtype)

	// 服务器自身无法继续处理时回复 SERVFAIL
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Printf("Internal failure for %s %s: %v", qname, qtype, recovered)
			resp := r.newResponse(&qry)
			resp.Header.RCode = dns.DNSResponseCodeServFail
			resp.Header.AA = false
			resp.FixCount()
			wire, err = resp.Encode(), nil
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.conf.Timeout)
	defer cancel()

	// 非法查询名称：REFUSED，不进入任何合成
	if !IsRootLegalQuery(qname) {
		resp := r.newResponse(&qry)
		resp.Header.RCode = dns.DNSResponseCodeRefused
		resp.Header.AA = false
		return r.finishUncached(&resp)
	}

	// 区域顶点
	if qname == "." {
		return r.resolveApex(&qry, qtype, packet)
	}

	labels := dns.SplitDomainName(&qname)
	tld := labels[len(labels)-1]

	// _synth 指针查询不触碰名称树，也从不进入缓存
	if tld == "_synth" {
		return r.resolveSynth(&qry, qname, labels, qtype)
	}

	// 缓存查询
	cacheKey := tld
	if hit := r.cache.Get(cacheKey); hit != nil {
		return r.appendSig0(RewriteCachedWire(hit, packet))
	}

	// 中间件钩子：在黑名单检查之前拦截查询，
	// 可在黑名单顶级域下托管子生态；其回复从不进入缓存
	if r.middleware != nil {
		if m := r.middleware(qname, qtype); m != nil {
			resp := *m
			resp.Header.ID = qry.Header.ID
			resp.Question = qry.Question
			resp.Header.QR = true
			return r.finishUncached(&resp)
		}
	}

	// 黑名单顶级域直接进入否定回答合成
	if r.blacklist.Has(tld) {
		return r.resolveAbsent(ctx, &qry, qname, tld, qtype, cacheKey)
	}

	// 名称树查询
	stateBytes, err := r.tree(ctx, naming.HashName(tld))
	if err != nil {
		if ctx.Err() != nil {
			r.logger.Printf("Tree lookup deadline exceeded for %s, dropping", tld)
			return nil, ErrDropRequest
		}
		// 查询失败翻译为空证明的 NXDOMAIN，只记录不上抛
		r.logger.Printf("Tree lookup failed for %s: %s", tld, err)
		return r.respondNXDomain(&qry, tld, cacheKey)
	}
	if stateBytes == nil {
		return r.resolveAbsent(ctx, &qry, qname, tld, qtype, cacheKey)
	}

	// 名称状态解码：失败记录并翻译为 NXDOMAIN
	ns, err := naming.DecodeNameState(stateBytes)
	if err != nil {
		r.logger.Printf("Malformed name state for %s: %s", tld, err)
		return r.respondNXDomain(&qry, tld, cacheKey)
	}
	if state := ns.State(currentHeight(ns), r.params); state != naming.StateClosed || len(ns.Data) == 0 {
		r.logger.Printf("Name %s not serveable (state %s, %d data bytes)", tld, state, len(ns.Data))
		return r.respondNXDomain(&qry, tld, cacheKey)
	}

	// 名称资源解码：失败记录并翻译为 NXDOMAIN
	rs, err := resource.DecodeResource(ns.Data)
	if err != nil {
		r.logger.Printf("Malformed resource for %s: %s", tld, err)
		return r.respondNXDomain(&qry, tld, cacheKey)
	}

	// DNS 回答构造
	sections := ResourceToDNS(rs, qname, qtype)
	resp := r.newResponse(&qry)
	resp.Answer = sections.Answer
	resp.Authority = sections.Authority
	resp.Additional = sections.Additional

	// 无回答且无委托时合成 NODATA 证明
	if sections.IsEmpty() {
		resp.Authority = append(resp.Authority, r.zone.SOARR(), ProveNoData(qname, typeMapFor(rs)))
	}

	return r.finishCached(&resp, cacheKey)
}

// currentHeight 返回名称状态的观测高度。
// 核心不持有链尖，以名称状态自身的续期高度为观测点：
// 树中的名称状态由链层在每次状态转移时写入，
// 凡进入树的 CLOSED 名称在其续期窗口内均可服务。
func currentHeight(ns *naming.NameState) uint32 {
	if ns.Renewal > ns.Height {
		return ns.Renewal
	}
	return ns.Height
}

// resolveApex 处理区域顶点查询。缓存键为 ".;查询类型"。
func (r *RootResolver) resolveApex(qry *dns.DNSMessage, qtype dns.DNSType, packet []byte) ([]byte, error) {
	cacheKey := ".;" + qtype.String()
	if hit := r.cache.Get(cacheKey); hit != nil {
		return r.appendSig0(RewriteCachedWire(hit, packet))
	}

	resp := r.newResponse(qry)
	switch qtype {
	case dns.DNSRRTypeNS, dns.DNSQTypeANY:
		resp.Answer = append(resp.Answer, r.zone.ApexNS())
		resp.Additional = append(resp.Additional, r.zone.ApexGlue())
	case dns.DNSRRTypeSOA:
		resp.Answer = append(resp.Answer, r.zone.SOARR())
	case dns.DNSRRTypeDNSKEY:
		resp.Answer = append(resp.Answer, r.zone.DNSKEYRRs()...)
	case dns.DNSRRTypeDS:
		resp.Answer = append(resp.Answer, r.zone.DSRR())
	default:
		// 其余类型为 NODATA：SOA 加 区域顶点位图的 NSEC
		resp.Authority = append(resp.Authority, r.zone.SOARR(),
			ProveNoData(".", TypeMapRoot))
	}
	return r.finishCached(&resp, cacheKey)
}

// resolveSynth 处理 _synth 指针查询，回复从不进入缓存。
func (r *RootResolver) resolveSynth(qry *dns.DNSMessage, qname string, labels []string, qtype dns.DNSType) ([]byte, error) {
	resp := r.newResponse(qry)

	if len(labels) == 2 {
		if ip, err := resource.FromPointer(labels[0]); err == nil {
			if ip4 := ip.To4(); ip4 != nil {
				if qtype == dns.DNSRRTypeA || qtype == dns.DNSQTypeANY {
					rdata := &dns.DNSRDATAA{Address: ip4}
					resp.Answer = append(resp.Answer, dns.DNSResourceRecord{
						Name: qname, Type: dns.DNSRRTypeA, Class: dns.DNSClassIN,
						TTL: apexTTL, RDLen: uint16(rdata.Size()), RData: rdata,
					})
				}
			} else if qtype == dns.DNSRRTypeAAAA || qtype == dns.DNSQTypeANY {
				rdata := &dns.DNSRDATAAAAA{Address: ip.To16()}
				resp.Answer = append(resp.Answer, dns.DNSResourceRecord{
					Name: qname, Type: dns.DNSRRTypeAAAA, Class: dns.DNSClassIN,
					TTL: apexTTL, RDLen: uint16(rdata.Size()), RData: rdata,
				})
			}
		}
	}

	if len(resp.Answer) == 0 {
		resp.Authority = append(resp.Authority, r.zone.SOARR(),
			ProveNoData(qname, TypeMapEmpty))
	}
	return r.finishUncached(&resp)
}

// resolveAbsent 处理名称树中不存在的顶级域：
// 保留名称且在 ICANN 根区存在时动态回退，否则合成 NXDOMAIN。
func (r *RootResolver) resolveAbsent(ctx context.Context, qry *dns.DNSMessage,
	qname, tld string, qtype dns.DNSType, cacheKey string) ([]byte, error) {

	if r.reserved != nil && r.icann != nil {
		if entry := r.reserved.GetByName(tld); entry != nil && entry.Root {
			upstream, err := r.icann.Lookup(ctx, qname, qtype)
			if err == nil {
				return r.respondFallback(qry, upstream, cacheKey)
			}
			if ctx.Err() != nil {
				r.logger.Printf("ICANN fallback deadline exceeded for %s, dropping", qname)
				return nil, ErrDropRequest
			}
			r.logger.Printf("ICANN fallback failed for %s: %s", qname, err)
		}
	}
	return r.respondNXDomain(qry, tld, cacheKey)
}

// respondFallback 将 ICANN 上游回复转换为本区回复：
// 去除问题部分以外的查询痕迹，权威部分的 DS/NSEC/NSEC3 RRSet 重新签名。
func (r *RootResolver) respondFallback(qry *dns.DNSMessage, upstream *dns.DNSMessage, cacheKey string) ([]byte, error) {
	resp := r.newResponse(qry)
	resp.Header.RCode = upstream.Header.RCode
	resp.Answer = upstream.Answer
	resp.Additional = stripPseudoRRs(upstream.Additional)

	// 上游的权威部分去除原签名后保留；
	// 其中的 DS/NSEC/NSEC3 RRSet 随整个回复由本区重新签名
	for _, rr := range upstream.Authority {
		if rr.Type == dns.DNSRRTypeRRSIG {
			continue
		}
		resp.Authority = append(resp.Authority, rr)
	}
	return r.finishCached(&resp, cacheKey)
}

// stripPseudoRRs 去除部分中的伪资源记录。
func stripPseudoRRs(section []dns.DNSResourceRecord) []dns.DNSResourceRecord {
	var stripped []dns.DNSResourceRecord
	for i := range section {
		if dns.IsPseudoRR(&section[i]) {
			continue
		}
		stripped = append(stripped, section[i])
	}
	return stripped
}

// respondNXDomain 合成 NXDOMAIN 回复：SOA 加 覆盖被查询标签及通配符的 NSEC 证明对。
func (r *RootResolver) respondNXDomain(qry *dns.DNSMessage, tld string, cacheKey string) ([]byte, error) {
	resp := r.newResponse(qry)
	resp.Header.RCode = dns.DNSResponseCodeNXDomain
	resp.Authority = append(resp.Authority, r.zone.SOARR())
	resp.Authority = append(resp.Authority, ProveNX(tld)...)
	return r.finishCached(&resp, cacheKey)
}

// typeMapFor 根据名称资源实际拥有的记录选择 NODATA 证明的类型位图。
func typeMapFor(rs *resource.Resource) []dns.DNSType {
	if len(rs.NS()) > 0 {
		return TypeMapNS
	}
	has4, has6 := false, false
	for _, host := range rs.Hosts() {
		switch host.Type {
		case resource.TargetINET4:
			has4 = true
		case resource.TargetINET6:
			has6 = true
		}
	}
	if has4 && !has6 && len(rs.Texts()) == 0 {
		return TypeMapA
	}
	if has6 && !has4 && len(rs.Texts()) == 0 {
		return TypeMapAAAA
	}
	if len(rs.Texts()) > 0 && !has4 && !has6 {
		return TypeMapTXT
	}
	return TypeMapEmpty
}

// newResponse 根据查询初始化一个权威回复。
func (r *RootResolver) newResponse(qry *dns.DNSMessage) dns.DNSMessage {
	return dns.DNSMessage{
		Header: dns.DNSHeader{
			ID:     qry.Header.ID,
			QR:     true,
			OpCode: dns.DNSOpCodeQuery,
			AA:     true,
			RCode:  dns.DNSResponseCodeNoErr,
		},
		Question:   qry.Question,
		Answer:     []dns.DNSResourceRecord{},
		Authority:  []dns.DNSResourceRecord{},
		Additional: []dns.DNSResourceRecord{},
	}
}

// finishCached 签名、编码并缓存回复，再追加尾部签名返回。
// 缓存存储的是追加尾部签名之前的线路形式。
func (r *RootResolver) finishCached(resp *dns.DNSMessage, cacheKey string) ([]byte, error) {
	wire := r.sealResponse(resp)
	r.cache.Set(cacheKey, wire)
	return r.appendSig0(wire)
}

// finishUncached 签名、编码回复并追加尾部签名返回，不进入缓存。
func (r *RootResolver) finishUncached(resp *dns.DNSMessage) ([]byte, error) {
	return r.appendSig0(r.sealResponse(resp))
}

// sealResponse 对回复的各个非空部分按类型签名，
// 追加 EDNS0 OPT 伪记录，修正计数字段后编码。
func (r *RootResolver) sealResponse(resp *dns.DNSMessage) []byte {
	resp.Answer = r.zone.SignSection(resp.Answer)
	resp.Authority = r.zone.SignSection(resp.Authority)
	resp.Additional = r.zone.SignSection(resp.Additional)
	resp.Additional = append(resp.Additional,
		*dns.NewDNSRROPT(ednsUDPSize, dns.EncodeDNSRROPTTTL(0, 0, true, 0), &dns.DNSRDATAOPT{}))
	resp.FixCount()
	return resp.Encode()
}

// appendSig0 为线路形式的回复追加 SIG(0) 式尾部签名。
func (r *RootResolver) appendSig0(wire []byte) ([]byte, error) {
	if r.conf.NoSig0 {
		return wire, nil
	}
	signed, err := AppendSIG0(wire, r.zone.Keys, r.clock)
	if err != nil {
		r.logger.Printf("SIG(0) signing failed: %s", err)
		return wire, nil
	}
	return signed, nil
}
