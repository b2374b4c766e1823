// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// sig0.go 文件定义了逐响应的 SIG(0) 式尾部签名。
//
// 尾部签名是附加在回复末尾的一条 SIG 资源记录（RFC 2931 风格），
// 使用私有DNS算法（253）：对 SIG RDATA（不含签名字段）与回复本体拼接后的
// BLAKE2b-256 摘要进行 ed25519 签名，
// 签名密钥为区域的 ZSK。签名覆盖 ARCOUNT 已递增的完整回复本体。
// 该签名默认启用，可通过配置 NoSig0 禁用。

package hdns

import (
	"encoding/binary"
	"fmt"

	"github.com/tochusc/hdns/dns"
)

// sig0Fudge 为尾部签名有效窗口的半径（秒）。
const sig0Fudge = 21600

// AppendSIG0 为编码后的回复追加 SIG(0) 式尾部签名。
//   - wire: 回复的线路形式
//   - keys: 区域密钥对（以 ZSK 签名）
//   - clock: 时间来源
//
// 返回值为 追加签名后的线路形式 和 错误信息。
func AppendSIG0(wire []byte, keys *ZoneKeys, clock Clock) ([]byte, error) {
	if len(wire) < 12 {
		return nil, fmt.Errorf("function AppendSIG0 failed: message length %d is less than header size 12", len(wire))
	}

	// 递增 ARCOUNT 后的回复本体即为签名覆盖范围
	body := make([]byte, len(wire))
	copy(body, wire)
	arCount := binary.BigEndian.Uint16(body[10:12])
	binary.BigEndian.PutUint16(body[10:12], arCount+1)

	now := uint32(clock.Now().UTC().Unix())
	rdata := &dns.DNSRDATASIG{
		DNSRDATARRSIG: dns.DNSRDATARRSIG{
			TypeCovered: 0,
			Algorithm:   dns.DNSSECAlgorithmPRIVATEDNS,
			Labels:      0,
			OriginalTTL: 0,
			Expiration:  now + sig0Fudge,
			Inception:   now - sig0Fudge,
			KeyTag:      keys.ZSKTag,
			SignerName:  ".",
		},
	}

	// signature = ed25519(zsk, blake2b256(rdata_pre | body))
	pre := rdata.Encode()
	plain := make([]byte, 0, len(pre)+len(body))
	plain = append(plain, pre...)
	plain = append(plain, body...)
	signer := dns.DNSSECAlgorithmerFactory(dns.DNSSECAlgorithmPRIVATEDNS)
	signature, err := signer.Sign(plain, keys.zskPrivate())
	if err != nil {
		return nil, fmt.Errorf("function AppendSIG0 failed: sign failed.\n%w", err)
	}
	rdata.Signature = signature

	sigRR := dns.DNSResourceRecord{
		Name:  ".",
		Type:  dns.DNSRRTypeSIG,
		Class: dns.DNSClassANY,
		TTL:   0,
		RDLen: uint16(rdata.Size()),
		RData: rdata,
	}
	return append(body, sigRR.Encode()...), nil
}

// VerifySIG0 验证回复的 SIG(0) 式尾部签名。
//   - wire: 带尾部签名的回复线路形式
//   - pubKey: 区域 ZSK 的公钥字节
//
// 返回值为 签名是否有效。
func VerifySIG0(wire []byte, pubKey []byte) bool {
	msg := dns.DNSMessage{}
	if _, err := msg.DecodeFromBuffer(wire, 0); err != nil {
		return false
	}
	arCount := len(msg.Additional)
	if arCount == 0 {
		return false
	}
	last := msg.Additional[arCount-1]
	if last.Type != dns.DNSRRTypeSIG {
		return false
	}
	rdata, ok := last.RData.(*dns.DNSRDATASIG)
	if !ok || rdata.Algorithm != dns.DNSSECAlgorithmPRIVATEDNS {
		return false
	}

	// 去掉尾部 SIG 记录后的本体即为签名覆盖范围
	body := make([]byte, len(wire)-last.Size())
	copy(body, wire[:len(wire)-last.Size()])

	signature := rdata.Signature
	pre := *rdata
	pre.Signature = nil
	plain := make([]byte, 0, pre.Size()+len(body))
	plain = append(plain, pre.Encode()...)
	plain = append(plain, body...)
	verifier := dns.DNSSECAlgorithmerFactory(dns.DNSSECAlgorithmPRIVATEDNS)
	return verifier.Verify(plain, signature, pubKey)
}
