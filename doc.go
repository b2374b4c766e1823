// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// # 简体中文
//
// HDNS 是一个 Handshake 式根区命名协议节点的权威 DNS 服务器：
// 区块链是名称注册表的权威来源，本服务器将其状态以
// DNSSEC 签名的根区形式暴露给 DNS 客户端。
//
// # HDNSServer
//
// [HDNSServer] 是对根区服务器的最顶层封装。
//
// HDNSServer 包含以下三部分：
//   - ServerConfig: 服务器配置
//   - Netter: 数据包监听器
//   - RootResolver: 根区解析器
//
// [Netter] 接收、发送数据包，并维护连接状态。
//
// [RootResolver] 分派查询：问题解析 → 缓存查询 → 名称树查询 →
// 名称状态/名称资源解码 → DNS 回答构造 → DNSSEC 签名。
//
// 示例
//
//	通过下述几行代码，可以一键启动一个 HDNS 根区服务器：
//
//	server, err := hdns.NewHDNSServer(conf, tree, reserved, icann, os.Stdout)
//	if err != nil {
//		log.Fatal(err)
//	}
//	server.Open()
//
// # 外部协作者
//
// 服务器的全部外部依赖以注入接口表达：
//   - [TreeLookup]: 名称树查询，由区块链层提供；测试中为内存映射上的闭包。
//   - [ReservedTable]: 保留名称表；保留且未认领的顶级域经 [IcannStub] 动态回退。
//   - [Clock]: UTC 时间来源，SOA 序列号（YYYYMMDDHH）与签名窗口由其推导。
//
// # 子包
//
//   - dns 包提供 DNS消息 的编解码及 DNSSEC 签名工具；
//   - resource 包提供链上名称资源的序列化/压缩格式；
//   - naming 包提供名称拍卖状态机（OPENING → BIDDING → REVEAL →
//     CLOSED → REVOKED/EXPIRED）；
//   - dns/xperi 提供 RR 级 DNSSEC 辅助函数；
//   - dns/xlayers 提供 gopacket 层适配。
//
// # English
//
// HDNS is the authoritative DNS server of a Handshake-style root-zone
// naming protocol node: the blockchain is the authoritative name
// registry, and this server exposes its state as a DNSSEC-signed root
// zone.
//
// HDNSServer consists of three parts: the ServerConfig, the Netter
// (packet listener) and the RootResolver (request dispatcher). The
// resolver pipeline is: question parsing → cache lookup → name-tree
// lookup → name-state/resource decoding → DNS answer building →
// DNSSEC signing. Negative answers carry synthesized minimal-cover
// NSEC proofs; responses additionally carry a SIG(0)-style trailer
// signature under a private DNS algorithm unless disabled.
//
// All external collaborators (TreeLookup, ReservedTable, IcannStub,
// Clock) are injected interfaces, never globals.
package hdns
