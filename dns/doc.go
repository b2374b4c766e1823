// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// dns 包使用Go的内置实现，提供了 DNS消息 的编解码功能，可以用于任意构造和解析 DNS消息。
//
// [DNSMessage] 表示 DNS协议 的消息结构。
//
//	type DNSMessage struct {
//		// DNS消息 头部
//		Header DNSHeader // DNS 头部（Header）
//		// DNS消息的各个部分（Section）
//		Question   DNSQuestionSection // DNS 查询部分（Questions Section）
//		Answer     DNSResponseSection // DNS 回答部分（Answers Section）
//		Authority  DNSResponseSection // DNS 权威部分（Authority Section）
//		Additional DNSResponseSection // DNS 附加部分（Additional Section）
//	}
//
// dns包中的每个结构体基本都实现了以下方法：
//   - func (s *struct) DecodeFromBuffer(buffer []byte, offset int) (int, error)
//   - func (s *struct) Encode() []byte
//   - func (s *struct) EncodeToBuffer(buffer []byte) (int, error)
//   - func (s *struct) Size() int
//   - func (s *struct) String() string
//   - [少部分实现]func (s *struct) Equal(other *struct) bool
//
// 这些方法使得可以方便地对 DNS 消息进行编解码。
//
// dns包对 DNS 消息的格式没有强制限制，并且支持对 未知类型的资源记录 进行编解码，
// 这使得其可以承载 根区名称资源 所暴露的全部资源记录类型，
// 包括 DNSSEC 所需的 RRSIG、NSEC、DNSKEY、DS 记录，
// 以及 SIG(0) 式尾部签名所使用的 SIG 记录。
//
// dnssec.go 文件提供了一系列 DNSSEC 辅助函数：
//
//   - ParseKeyBase64 用于解析 Base64 编码的 DNSKEY 为字节形式。
//
//   - CalculateKeyTag 用于计算 DNSKEY 的 Key Tag。
//
//   - GenerateDNSKEY 根据参数生成 DNSKEY RDATA。
//
//   - GenerateRRSIG 根据参数对规范化后的 RRSET 进行签名，生成 RRSIG RDATA。
//
//   - GenerateDS 根据参数生成 DNSKEY 的 DS RDATA。
//
// 区域签名密钥使用 ED25519 算法（RFC 8080），其签名为确定性签名；
// 私有DNS算法（253）则实现为 对 BLAKE2b-256 摘要的 ed25519 签名，
// 用于逐响应的 SIG(0) 式尾部签名。
package dns
