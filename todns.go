// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// todns.go 文件定义了 名称资源 到 DNS 消息各部分 的翻译。
//
// 翻译按查询名称的标签数分派：
//   - 1 个标签（顶级域本身）：由 hosts/canonical/delegate/ns/service/
//     uri/text/loc/ds/ssh/rp 按查询类型构造回答；
//     无回答而有 CNAME 时回答 CNAME；有 NS 时在权威部分返回委托。
//   - 2 个标签：最左标签若为 _base32hex 指针且地址族与查询匹配，
//     返回合成的地址记录。
//   - 3 个标签：尝试解码 SRV/TLSA/SMIMEA/OPENPGPKEY 子域名。
//   - 其余 ≥2 个标签：有 NS 时返回委托，有 DELEGATE 时返回 DNAME。
//
// 端点为裸 IP 的 NS/SRV 目标以 _synth 指针名称表达，
// 并在附加部分给出相应的 A/AAAA 胶水；
// GLUE 端点的胶水地址为零时省略对应的记录。

package hdns

import (
	"encoding/base32"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/tochusc/hdns/dns"
	"github.com/tochusc/hdns/resource"
)

// AnswerSections 聚合翻译产生的 DNS 消息各部分。
type AnswerSections struct {
	Answer     []dns.DNSResourceRecord
	Authority  []dns.DNSResourceRecord
	Additional []dns.DNSResourceRecord
}

// IsEmpty 判断各部分是否均为空。
func (s *AnswerSections) IsEmpty() bool {
	return len(s.Answer) == 0 && len(s.Authority) == 0 && len(s.Additional) == 0
}

// onionBase32 为洋葱地址的 base32 编码器（小写、无填充）。
var onionBase32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// dnsBuilder 持有一次翻译的输入。
type dnsBuilder struct {
	rs    *resource.Resource
	qname string
	tld   string
	ttl   uint32
}

// ResourceToDNS 将名称资源翻译为对给定查询的 DNS 消息各部分。
//   - rs: 解码后的名称资源
//   - qname: 小写的绝对查询名称
//   - qtype: 查询类型
func ResourceToDNS(rs *resource.Resource, qname string, qtype dns.DNSType) *AnswerSections {
	labels := dns.SplitDomainName(&qname)
	builder := &dnsBuilder{
		rs:    rs,
		qname: qname,
		tld:   labels[len(labels)-1] + ".",
		ttl:   rs.TTL,
	}

	switch len(labels) {
	case 1:
		return builder.answerTLD(qtype)
	case 2:
		return builder.answerPointer(labels, qtype)
	case 3:
		return builder.answerSubdomain(labels, qtype)
	default:
		return builder.referral()
	}
}

// rr 构造一条属于本次翻译的资源记录。
func (b *dnsBuilder) rr(name string, rtype dns.DNSType, rdata dns.DNSRRRDATA) dns.DNSResourceRecord {
	return dns.DNSResourceRecord{
		Name:  name,
		Type:  rtype,
		Class: dns.DNSClassIN,
		TTL:   b.ttl,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
}

// absName 将 HNS 名称规范为小写的绝对域名。
func absName(name string) string {
	lowered := strings.ToLower(name)
	if lowered == "" {
		return "."
	}
	if lowered[len(lowered)-1] != '.' {
		return lowered + "."
	}
	return lowered
}

// pointerName 返回裸 IP 端点在本顶级域下的 _synth 指针名称。
func (b *dnsBuilder) pointerName(t *resource.Target) string {
	switch t.Type {
	case resource.TargetINET4:
		return resource.ToPointer(t.Inet4) + "." + b.tld
	case resource.TargetINET6:
		return resource.ToPointer(t.Inet6) + "." + b.tld
	}
	return "."
}

// answerTLD 构造顶级域本身的回答。
func (b *dnsBuilder) answerTLD(qtype dns.DNSType) *AnswerSections {
	sections := &AnswerSections{}

	switch qtype {
	case dns.DNSRRTypeA:
		b.appendAddrAnswers(sections, true, false)
	case dns.DNSRRTypeAAAA:
		b.appendAddrAnswers(sections, false, true)
	case dns.DNSQTypeANY:
		b.appendAddrAnswers(sections, true, true)
		b.appendNSAnswers(sections)
		b.appendTXTAnswers(sections)
	case dns.DNSRRTypeCNAME:
		b.appendCNAMEAnswer(sections)
	case dns.DNSRRTypeDNAME:
		b.appendDNAMEAnswer(sections)
	case dns.DNSRRTypeNS:
		b.appendNSAnswers(sections)
	case dns.DNSRRTypeTXT:
		b.appendTXTAnswers(sections)
	case dns.DNSRRTypeSRV:
		b.appendSRVAnswers(sections)
	case dns.DNSRRTypeURI:
		for _, uri := range b.rs.URIs() {
			sections.Answer = append(sections.Answer,
				b.rr(b.tld, dns.DNSRRTypeURI, &dns.DNSRDATAURI{Target: uri}))
		}
	case dns.DNSRRTypeRP:
		for _, email := range b.rs.Emails() {
			sections.Answer = append(sections.Answer,
				b.rr(b.tld, dns.DNSRRTypeRP, &dns.DNSRDATARP{
					MBoxDName: emailToDomainName(email),
					TXTDName:  ".",
				}))
		}
	case dns.DNSRRTypeLOC:
		for _, loc := range b.rs.Locations() {
			sections.Answer = append(sections.Answer,
				b.rr(b.tld, dns.DNSRRTypeLOC, &dns.DNSRDATALOC{
					Version:   loc.Version,
					SizeExp:   loc.SizeExp,
					HorizPre:  loc.HorizPre,
					VertPre:   loc.VertPre,
					Latitude:  loc.Latitude,
					Longitude: loc.Longitude,
					Altitude:  loc.Altitude,
				}))
		}
	case dns.DNSRRTypeDS:
		for _, ds := range b.rs.DSRecords() {
			sections.Answer = append(sections.Answer,
				b.rr(b.tld, dns.DNSRRTypeDS, &dns.DNSRDATADS{
					KeyTag:     ds.KeyTag,
					Algorithm:  dns.DNSSECAlgorithm(ds.Algorithm),
					DigestType: dns.DNSSECDigestType(ds.DigestType),
					Digest:     ds.Digest,
				}))
		}
	case dns.DNSRRTypeSSHFP:
		for _, ssh := range b.rs.SSHRecords() {
			sections.Answer = append(sections.Answer,
				b.rr(b.tld, dns.DNSRRTypeSSHFP, &dns.DNSRDATASSHFP{
					Algorithm:       ssh.Algorithm,
					FingerprintType: ssh.KeyType,
					Fingerprint:     ssh.Fingerprint,
				}))
		}
	}

	// 无回答而有规范名称时回答 CNAME
	if len(sections.Answer) == 0 && qtype != dns.DNSRRTypeCNAME {
		if canonical := b.rs.Canonical(); canonical != nil && canonical.Type == resource.TargetNAME {
			b.appendCNAMEAnswer(sections)
		}
	}

	// 仍无回答时返回委托
	if len(sections.Answer) == 0 {
		return b.referral()
	}
	return sections
}

// appendAddrAnswers 追加主机端点的 A/AAAA 回答。
// 主机中存在洋葱端点且查询为地址类型时，追加 Tor 提示 TXT 记录。
func (b *dnsBuilder) appendAddrAnswers(sections *AnswerSections, want4, want6 bool) {
	hasTor := false
	for _, host := range b.rs.Hosts() {
		switch host.Type {
		case resource.TargetINET4:
			if want4 {
				sections.Answer = append(sections.Answer,
					b.rr(b.tld, dns.DNSRRTypeA, &dns.DNSRDATAA{Address: host.Inet4}))
			}
		case resource.TargetINET6:
			if want6 {
				sections.Answer = append(sections.Answer,
					b.rr(b.tld, dns.DNSRRTypeAAAA, &dns.DNSRDATAAAAA{Address: host.Inet6}))
			}
		case resource.TargetONION, resource.TargetONIONNG:
			hasTor = true
		}
	}
	// 规范名称为裸地址端点时同样参与地址回答
	if canonical := b.rs.Canonical(); canonical != nil {
		switch canonical.Type {
		case resource.TargetINET4:
			if want4 {
				sections.Answer = append(sections.Answer,
					b.rr(b.tld, dns.DNSRRTypeA, &dns.DNSRDATAA{Address: canonical.Inet4}))
			}
		case resource.TargetINET6:
			if want6 {
				sections.Answer = append(sections.Answer,
					b.rr(b.tld, dns.DNSRRTypeAAAA, &dns.DNSRDATAAAAA{Address: canonical.Inet6}))
			}
		}
	}
	if hasTor {
		sections.Answer = append(sections.Answer,
			b.rr(b.tld, dns.DNSRRTypeTXT, &dns.DNSRDATATXT{TXT: "hns:tor"}))
		for _, host := range b.rs.Hosts() {
			if host.IsTor() {
				onion := strings.ToLower(onionBase32.EncodeToString(host.Onion)) + ".onion"
				sections.Answer = append(sections.Answer,
					b.rr(b.tld, dns.DNSRRTypeTXT, &dns.DNSRDATATXT{TXT: onion}))
			}
		}
	}
}

// appendCNAMEAnswer 追加规范名称回答。
func (b *dnsBuilder) appendCNAMEAnswer(sections *AnswerSections) {
	canonical := b.rs.Canonical()
	if canonical == nil || canonical.Type != resource.TargetNAME {
		return
	}
	sections.Answer = append(sections.Answer,
		b.rr(b.tld, dns.DNSRRTypeCNAME, &dns.DNSRDATACNAME{CNAME: absName(canonical.Name)}))
}

// appendDNAMEAnswer 追加子树重定向回答。
func (b *dnsBuilder) appendDNAMEAnswer(sections *AnswerSections) {
	delegate := b.rs.Delegate()
	if delegate == nil {
		return
	}
	sections.Answer = append(sections.Answer,
		b.rr(b.tld, dns.DNSRRTypeDNAME, &dns.DNSRDATADNAME{DNAME: absName(delegate.Name)}))
}

// appendNSAnswers 追加 NS 回答及其胶水。
func (b *dnsBuilder) appendNSAnswers(sections *AnswerSections) {
	for i := range b.rs.NS() {
		target := b.rs.NS()[i]
		nsName, glue := b.targetToName(&target)
		sections.Answer = append(sections.Answer,
			b.rr(b.tld, dns.DNSRRTypeNS, &dns.DNSRDATANS{NSDNAME: nsName}))
		sections.Additional = append(sections.Additional, glue...)
	}
}

// appendTXTAnswers 追加文本回答。
func (b *dnsBuilder) appendTXTAnswers(sections *AnswerSections) {
	for _, text := range b.rs.Texts() {
		sections.Answer = append(sections.Answer,
			b.rr(b.tld, dns.DNSRRTypeTXT, &dns.DNSRDATATXT{TXT: text}))
	}
}

// appendSRVAnswers 追加顶级域本身的 SRV 回答。
func (b *dnsBuilder) appendSRVAnswers(sections *AnswerSections) {
	for _, service := range b.rs.Services() {
		target, glue := b.targetToName(&service.Target)
		sections.Answer = append(sections.Answer,
			b.rr(b.tld, dns.DNSRRTypeSRV, &dns.DNSRDATASRV{
				Priority: uint16(service.Priority),
				Weight:   uint16(service.Weight),
				Port:     service.Port,
				Target:   target,
			}))
		sections.Additional = append(sections.Additional, glue...)
	}
}

// targetToName 将端点表达为 DNS 名称，并给出所需的胶水记录：
//   - NAME 端点：名称本身，无胶水；
//   - GLUE 端点：名称本身，非零地址作为 A/AAAA 胶水；
//   - 裸 IP 端点：本顶级域下的 _synth 指针名称，地址本身作为胶水。
func (b *dnsBuilder) targetToName(t *resource.Target) (string, []dns.DNSResourceRecord) {
	switch t.Type {
	case resource.TargetNAME:
		return absName(t.Name), nil
	case resource.TargetGLUE:
		name := absName(t.Name)
		var glue []dns.DNSResourceRecord
		if ip4 := t.Inet4.To4(); ip4 != nil && !ip4.IsUnspecified() {
			glue = append(glue, b.rr(name, dns.DNSRRTypeA, &dns.DNSRDATAA{Address: ip4}))
		}
		if ip6 := t.Inet6.To16(); ip6 != nil && !ip6.IsUnspecified() {
			glue = append(glue, b.rr(name, dns.DNSRRTypeAAAA, &dns.DNSRDATAAAAA{Address: ip6}))
		}
		return name, glue
	case resource.TargetINET4:
		name := b.pointerName(t)
		return name, []dns.DNSResourceRecord{
			b.rr(name, dns.DNSRRTypeA, &dns.DNSRDATAA{Address: t.Inet4}),
		}
	case resource.TargetINET6:
		name := b.pointerName(t)
		return name, []dns.DNSResourceRecord{
			b.rr(name, dns.DNSRRTypeAAAA, &dns.DNSRDATAAAAA{Address: t.Inet6}),
		}
	}
	return ".", nil
}

// answerPointer 构造 2 标签查询的回答：最左标签为 _synth 指针时
// 合成地址记录，否则走委托路径。
func (b *dnsBuilder) answerPointer(labels []string, qtype dns.DNSType) *AnswerSections {
	ip, err := resource.FromPointer(labels[0])
	if err != nil {
		return b.referral()
	}

	// 指针名称与 NS 胶水冲突时让位于委托
	if b.pointerCollides() {
		return b.referral()
	}

	sections := &AnswerSections{}
	if ip4 := ip.To4(); ip4 != nil {
		if qtype == dns.DNSRRTypeA || qtype == dns.DNSQTypeANY {
			sections.Answer = append(sections.Answer,
				b.rr(b.qname, dns.DNSRRTypeA, &dns.DNSRDATAA{Address: ip4}))
		}
	} else {
		if qtype == dns.DNSRRTypeAAAA || qtype == dns.DNSQTypeANY {
			sections.Answer = append(sections.Answer,
				b.rr(b.qname, dns.DNSRRTypeAAAA, &dns.DNSRDATAAAAA{Address: ip}))
		}
	}
	return sections
}

// pointerCollides 判断被查询的指针名称是否与委托胶水名称冲突。
func (b *dnsBuilder) pointerCollides() bool {
	for i := range b.rs.NS() {
		target := b.rs.NS()[i]
		if target.Type == resource.TargetGLUE && absName(target.Name) == b.qname {
			return true
		}
	}
	return false
}

// answerSubdomain 构造 3 标签查询的回答：
// 依次尝试 SRV、TLSA、SMIMEA、OPENPGPKEY 子域名解码，
// 均不匹配时走委托路径。
func (b *dnsBuilder) answerSubdomain(labels []string, qtype dns.DNSType) *AnswerSections {
	first, second := labels[0], labels[1]

	if strings.HasPrefix(first, "_") && strings.HasPrefix(second, "_") {
		if port, err := strconv.Atoi(first[1:]); err == nil {
			return b.answerTLSA(second[1:], uint16(port), qtype)
		}
		return b.answerSRV(first[1:], second[1:], qtype)
	}
	if second == "_smimecert" {
		return b.answerSMIMEA(first, qtype)
	}
	if second == "_openpgpkey" {
		return b.answerOPENPGPKEY(first, qtype)
	}
	return b.referral()
}

// answerSRV 构造 _service._proto.<tld> 的 SRV 回答。
func (b *dnsBuilder) answerSRV(service, protocol string, qtype dns.DNSType) *AnswerSections {
	sections := &AnswerSections{}
	if qtype != dns.DNSRRTypeSRV && qtype != dns.DNSQTypeANY {
		return sections
	}
	for _, candidate := range b.rs.Services() {
		if !strings.EqualFold(candidate.Service, service) ||
			!strings.EqualFold(candidate.Protocol, protocol) {
			continue
		}
		target, glue := b.targetToName(&candidate.Target)
		sections.Answer = append(sections.Answer,
			b.rr(b.qname, dns.DNSRRTypeSRV, &dns.DNSRDATASRV{
				Priority: uint16(candidate.Priority),
				Weight:   uint16(candidate.Weight),
				Port:     candidate.Port,
				Target:   target,
			}))
		sections.Additional = append(sections.Additional, glue...)
	}
	return sections
}

// answerTLSA 构造 _port._proto.<tld> 的 TLSA 回答。
func (b *dnsBuilder) answerTLSA(protocol string, port uint16, qtype dns.DNSType) *AnswerSections {
	sections := &AnswerSections{}
	if qtype != dns.DNSRRTypeTLSA && qtype != dns.DNSQTypeANY {
		return sections
	}
	for _, candidate := range b.rs.TLSRecords() {
		if candidate.Port != port || !strings.EqualFold(candidate.Protocol, protocol) {
			continue
		}
		sections.Answer = append(sections.Answer,
			b.rr(b.qname, dns.DNSRRTypeTLSA, &dns.DNSRDATATLSA{
				Usage:        candidate.Usage,
				Selector:     candidate.Selector,
				MatchingType: candidate.MatchingType,
				Certificate:  candidate.Certificate,
			}))
	}
	return sections
}

// answerSMIMEA 构造 <hash>._smimecert.<tld> 的 SMIMEA 回答。
func (b *dnsBuilder) answerSMIMEA(hashLabel string, qtype dns.DNSType) *AnswerSections {
	sections := &AnswerSections{}
	if qtype != dns.DNSRRTypeSMIMEA && qtype != dns.DNSQTypeANY {
		return sections
	}
	hash, err := hex.DecodeString(hashLabel)
	if err != nil || len(hash) != resource.SMIMEHashLen {
		return sections
	}
	for _, candidate := range b.rs.SMIMERecords() {
		if !hashEqual(candidate.Hash, hash) {
			continue
		}
		sections.Answer = append(sections.Answer,
			b.rr(b.qname, dns.DNSRRTypeSMIMEA, &dns.DNSRDATASMIMEA{
				Usage:        candidate.Usage,
				Selector:     candidate.Selector,
				MatchingType: candidate.MatchingType,
				Certificate:  candidate.Certificate,
			}))
	}
	return sections
}

// answerOPENPGPKEY 构造 <hash>._openpgpkey.<tld> 的 OPENPGPKEY 回答。
func (b *dnsBuilder) answerOPENPGPKEY(hashLabel string, qtype dns.DNSType) *AnswerSections {
	sections := &AnswerSections{}
	if qtype != dns.DNSRRTypeOPENPGPKEY && qtype != dns.DNSQTypeANY {
		return sections
	}
	hash, err := hex.DecodeString(hashLabel)
	if err != nil || len(hash) != resource.SMIMEHashLen {
		return sections
	}
	for _, candidate := range b.rs.PGPRecords() {
		if !hashEqual(candidate.Hash, hash) {
			continue
		}
		sections.Answer = append(sections.Answer,
			b.rr(b.qname, dns.DNSRRTypeOPENPGPKEY, &dns.DNSRDATAOPENPGPKEY{
				PublicKey: candidate.PublicKey,
			}))
	}
	return sections
}

// hashEqual 比较记录哈希与标签哈希。
func hashEqual(recorded [resource.SMIMEHashLen]byte, label []byte) bool {
	if len(label) != resource.SMIMEHashLen {
		return false
	}
	for i := range recorded {
		if recorded[i] != label[i] {
			return false
		}
	}
	return true
}

// referral 构造委托回复：
// 有 NS 时权威部分为 NS 与 DS、附加部分为胶水；
// 有 DELEGATE 时回答 DNAME；两者皆无时为空的权威回复。
func (b *dnsBuilder) referral() *AnswerSections {
	sections := &AnswerSections{}
	nsSet := b.rs.NS()
	if len(nsSet) > 0 {
		for i := range nsSet {
			target := nsSet[i]
			nsName, glue := b.targetToName(&target)
			sections.Authority = append(sections.Authority,
				b.rr(b.tld, dns.DNSRRTypeNS, &dns.DNSRDATANS{NSDNAME: nsName}))
			sections.Additional = append(sections.Additional, glue...)
		}
		for _, ds := range b.rs.DSRecords() {
			sections.Authority = append(sections.Authority,
				b.rr(b.tld, dns.DNSRRTypeDS, &dns.DNSRDATADS{
					KeyTag:     ds.KeyTag,
					Algorithm:  dns.DNSSECAlgorithm(ds.Algorithm),
					DigestType: dns.DNSSECDigestType(ds.DigestType),
					Digest:     ds.Digest,
				}))
		}
		return sections
	}
	if delegate := b.rs.Delegate(); delegate != nil {
		b.appendDNAMEAnswer(sections)
	}
	return sections
}

// emailToDomainName 将邮箱地址表达为 RP 记录所需的域名形式。
func emailToDomainName(email string) string {
	replaced := strings.ReplaceAll(email, "@", ".")
	return absName(replaced)
}
