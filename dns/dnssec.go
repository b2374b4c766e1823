// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// dnssec.go 文件定义了 DNSSEC 所使用到的一些工具函数，
// 包括 Key Tag 计算、密钥生成、RRSIG 签名生成及 DS 摘要生成。
// 区域签名密钥采用 ED25519 算法（RFC 8080），其签名是确定性的：
// 对同一规范化 RRSet 的两次签名结果完全一致。

package dns

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// ParseKeyBase64 解析 Base64 编码的密钥为字节切片
func ParseKeyBase64(keyb64 string) []byte {
	keyBytes, err := base64.StdEncoding.DecodeString(keyb64)
	if err != nil {
		panic(fmt.Sprintf("failed to decode base64 key: %s", err))
	}
	return keyBytes
}

// CalculateKeyTag 计算 DNSKEY 的 Key Tag
//   - 传入 DNSKEY RDATA
//   - 返回 Key Tag
//
// Key Tag 是 DNSKEY 的一个 16 位无符号整数，用于快速识别 DNSKEY
func CalculateKeyTag(key DNSRDATADNSKEY) uint16 {
	rdata := key.Encode()
	var ac uint32
	for i := 0; i < len(rdata); i++ {
		if i&1 == 1 {
			ac += uint32(rdata[i])
		} else {
			ac += uint32(rdata[i]) << 8
		}
	}
	ac += ac >> 16 & 0xFFFF
	return uint16(ac & 0xFFFF)
}

// GenerateDNSKEY 生成公钥的 DNSKEY RDATA, 并返回私钥字节
// 传入参数：
//   - algo: DNSSEC 算法
//   - flag: DNSKEY Flag
//
// 返回值：
//   - 公钥 DNSKEY RDATA
//   - 私钥字节
func GenerateDNSKEY(algo DNSSECAlgorithm, flag DNSKEYFlag) (DNSRDATADNSKEY, []byte) {
	algorithmer := DNSSECAlgorithmerFactory(algo)
	privKey, pubKey := algorithmer.GenerateKey()
	return DNSRDATADNSKEY{
		Flags:     flag,
		Protocol:  DNSKEYProtocolValue,
		Algorithm: algo,
		PublicKey: pubKey,
	}, privKey
}

// GenerateRRSIG 生成 RRSIG RDATA。
// 传入的 RRSet 会先被规范化（所有者名称小写、按 RDATA 编码字节序排序）
// 再作为签名输入，因此无需外部保证传入顺序。
// 传入参数：
//   - rrSet: 要签名的 RR 集合
//   - algo: 签名算法
//   - expiration: 签名过期时间
//   - inception: 签名生效时间
//   - keyTag: 签名公钥的 Key Tag
//   - signerName: 签名者名称
//   - privKey: 签名私钥的 字节编码
//
// 返回值：
//   - RRSIG RDATA
//
// signature = sign(RRSIG_RDATA | RR(1) | RR(2) | ...)
func GenerateRRSIG(rrSet []DNSResourceRecord, algo DNSSECAlgorithm,
	expiration, inception uint32, keyTag uint16,
	signerName string, privKey []byte) DNSRDATARRSIG {

	// 规范化RRSET，Canonicalize the RRs
	canonicalSet := CanonicalizeRRSet(rrSet)

	labels := uint8(CountDomainNameLabels(&canonicalSet[0].Name))
	if len(canonicalSet[0].Name) > 0 && canonicalSet[0].Name[0] == '*' {
		// 通配符所有者名称的 Labels 不计入 "*" 标签
		labels--
	}

	// signature = sign(RRSIG_RDATA | RR(1) | RR(2) | ...)
	// RRSIG_RDATA
	rrsig := DNSRDATARRSIG{
		TypeCovered: canonicalSet[0].Type,
		Algorithm:   algo,
		Labels:      labels,
		OriginalTTL: canonicalSet[0].TTL,
		Expiration:  expiration,
		Inception:   inception,
		KeyTag:      keyTag,
		SignerName:  CanonicalizeDomainName(&signerName),
		Signature:   []byte{},
	}

	plainLen := rrsig.Size()
	for i := range canonicalSet {
		plainLen += canonicalSet[i].Size()
	}
	plainText := make([]byte, plainLen)
	offset, err := rrsig.EncodeToBuffer(plainText)
	if err != nil {
		panic(fmt.Sprintf("failed to encode RRSIG RDATA: %s", err))
	}
	// RR = owner | type | class | TTL | RDATA length | RDATA
	for i := range canonicalSet {
		increment, err := canonicalSet[i].EncodeToBuffer(plainText[offset:])
		if err != nil {
			panic(fmt.Sprintf("failed to encode RR: %s", err))
		}
		offset += increment
	}

	if offset != plainLen {
		panic("failed to encode RRSIG plaintext: unexpected offset")
	}

	var signature []byte
	algorithmer := DNSSECAlgorithmerFactory(algo)
	signature, err = algorithmer.Sign(plainText, privKey)
	if err != nil {
		panic(fmt.Sprintf("failed to sign RRSIG: %s", err))
	}

	rrsig.Signature = signature

	return rrsig
}

// GenerateDS 生成DNSKEY的 DS RDATA
// 传入参数：
//   - oName: DNSKEY 的所有者名称
//   - kRDATA: DNSKEY RDATA
//   - dType: 所使用的摘要算法类型
//
// 返回值：
//   - DS RDATA
//
// digest = digest_algorithm( DNSKEY owner name | DNSKEY RDATA);
func GenerateDS(oName string, kRDATA DNSRDATADNSKEY, dType DNSSECDigestType) DNSRDATADS {
	// 1. 计算 DNSKEY 的 Key Tag
	keyTag := CalculateKeyTag(kRDATA)

	// 2. 构建明文
	cName := CanonicalizeDomainName(&oName)
	pText := make([]byte, GetDomainNameWireLen(&cName)+kRDATA.Size())
	offset, err := EncodeDomainNameToBuffer(&cName, pText)
	if err != nil {
		panic(fmt.Sprintf("failed to write domain name: %s", err))
	}
	_, err = kRDATA.EncodeToBuffer(pText[offset:])
	if err != nil {
		panic(fmt.Sprintf("failed to encode DNSKEY RDATA: %s", err))
	}

	var digest []byte
	// 3. 计算摘要
	switch dType {
	case DNSSECDigestTypeSHA1:
		nDigest := sha1.Sum(pText)
		digest = nDigest[:]
	case DNSSECDigestTypeSHA256:
		nDigest := sha256.Sum256(pText)
		digest = nDigest[:]
	case DNSSECDigestTypeSHA384:
		nDigest := sha512.Sum384(pText)
		digest = nDigest[:]
	default:
		panic(fmt.Sprintf("unsupported digest type: %d", dType))
	}

	// 4. 构建 DS RDATA
	return DNSRDATADS{
		KeyTag:     keyTag,
		Algorithm:  kRDATA.Algorithm,
		DigestType: dType,
		Digest:     digest,
	}
}

// DNSSECAlgorithmer DNSSEC 算法接口
type DNSSECAlgorithmer interface {
	// Sign 使用私钥对数据进行签名
	Sign(data, privKey []byte) ([]byte, error)
	// Verify 使用公钥验证签名
	Verify(data, signature, pubKey []byte) bool
	// GenerateKey 生成密钥对，返回 私钥字节 和 公钥字节
	GenerateKey() ([]byte, []byte)
}

// DNSSECAlgorithmerFactory 根据算法生成相应的 DNSSECAlgorithmer
func DNSSECAlgorithmerFactory(algo DNSSECAlgorithm) DNSSECAlgorithmer {
	switch algo {
	case DNSSECAlgorithmRSASHA256:
		return RSASHA256{}
	case DNSSECAlgorithmECDSAP256SHA256:
		return ECDSAP256SHA256{}
	case DNSSECAlgorithmED25519:
		return ED25519{}
	case DNSSECAlgorithmPRIVATEDNS:
		return PrivateED25519BLAKE2b{}
	default:
		panic(fmt.Sprintf("unsupported algorithm: %d", algo))
	}
}

type RSASHA256 struct{}

func (RSASHA256) Sign(data, privKey []byte) ([]byte, error) {
	// 计算明文摘要
	digest := sha256.Sum256(data)

	// 重建 RSA 私钥
	pKey, err := x509.ParsePKCS1PrivateKey(privKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %s", err)
	}

	// 签名
	signature, err := rsa.SignPKCS1v15(nil, pKey, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %s", err)
	}

	return signature, nil
}

func (RSASHA256) Verify(data, signature, pubKey []byte) bool {
	digest := sha256.Sum256(data)
	pKey, err := x509.ParsePKCS1PublicKey(pubKey)
	if err != nil {
		return false
	}
	return rsa.VerifyPKCS1v15(pKey, crypto.SHA256, digest[:], signature) == nil
}

func (RSASHA256) GenerateKey() ([]byte, []byte) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(fmt.Sprintf("failed to generate RSA key: %s", err))
	}

	privKeyBytes := x509.MarshalPKCS1PrivateKey(privKey)
	pubKeyBytes := x509.MarshalPKCS1PublicKey(&privKey.PublicKey)

	return privKeyBytes, pubKeyBytes
}

type ECDSAP256SHA256 struct{}

func (ECDSAP256SHA256) Sign(data, privKey []byte) ([]byte, error) {
	// 计算明文摘要
	digest := sha256.Sum256(data)

	// 重建 ECDSA 私钥
	curve := elliptic.P256()
	pKey := new(ecdsa.PrivateKey)
	pKey.PublicKey.Curve = curve
	pKey.D = new(big.Int).SetBytes(privKey)
	pKey.PublicKey.X, pKey.PublicKey.Y = curve.ScalarBaseMult(privKey)

	// 签名
	r, s, err := ecdsa.Sign(rand.Reader, pKey, digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %s", err)
	}

	// RFC 6605: signature = r | s，各占曲线字节长
	signature := make([]byte, 64)
	r.FillBytes(signature[:32])
	s.FillBytes(signature[32:])

	return signature, nil
}

func (ECDSAP256SHA256) Verify(data, signature, pubKey []byte) bool {
	if len(signature) != 64 || len(pubKey) != 64 {
		return false
	}
	digest := sha256.Sum256(data)
	key := ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(pubKey[:32]),
		Y:     new(big.Int).SetBytes(pubKey[32:]),
	}
	r := new(big.Int).SetBytes(signature[:32])
	s := new(big.Int).SetBytes(signature[32:])
	return ecdsa.Verify(&key, digest[:], r, s)
}

func (ECDSAP256SHA256) GenerateKey() ([]byte, []byte) {
	privKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ECDSA key: %s", err))
	}
	privKeyBytes := make([]byte, 32)
	privKey.D.FillBytes(privKeyBytes)
	pubKeyBytes := make([]byte, 64)
	privKey.PublicKey.X.FillBytes(pubKeyBytes[:32])
	privKey.PublicKey.Y.FillBytes(pubKeyBytes[32:])
	return privKeyBytes, pubKeyBytes
}

// ED25519 实现了 RFC 8080 定义的 DNSSEC ED25519 签名算法。
// 私钥字节为 32 字节的 ed25519 种子，公钥字节为 32 字节的公钥本身。
type ED25519 struct{}

func (ED25519) Sign(data, privKey []byte) ([]byte, error) {
	if len(privKey) != ed25519.SeedSize {
		return nil, fmt.Errorf("bad ed25519 seed length: %d", len(privKey))
	}
	key := ed25519.NewKeyFromSeed(privKey)
	return ed25519.Sign(key, data), nil
}

func (ED25519) Verify(data, signature, pubKey []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), data, signature)
}

func (ED25519) GenerateKey() ([]byte, []byte) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ed25519 key: %s", err))
	}
	return privKey.Seed(), []byte(pubKey)
}

// PrivateED25519BLAKE2b 为 私有DNS算法（253）的具体实现：
// 对数据的 BLAKE2b-256 摘要进行 ed25519 签名。
// 该算法用于逐响应的 SIG(0) 式尾部签名。
type PrivateED25519BLAKE2b struct{}

func (PrivateED25519BLAKE2b) Sign(data, privKey []byte) ([]byte, error) {
	if len(privKey) != ed25519.SeedSize {
		return nil, fmt.Errorf("bad ed25519 seed length: %d", len(privKey))
	}
	digest := blake2b.Sum256(data)
	key := ed25519.NewKeyFromSeed(privKey)
	return ed25519.Sign(key, digest[:]), nil
}

func (PrivateED25519BLAKE2b) Verify(data, signature, pubKey []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize {
		return false
	}
	digest := blake2b.Sum256(data)
	return ed25519.Verify(ed25519.PublicKey(pubKey), digest[:], signature)
}

func (PrivateED25519BLAKE2b) GenerateKey() ([]byte, []byte) {
	return ED25519{}.GenerateKey()
}
