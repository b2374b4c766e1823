// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// server.go 文件定义了 HDNS 服务器的最顶层封装。
// HDNS 服务器监听指定端口，接收 DNS 请求，
// 由根区解析器生成权威回复并发送。
// 服务器为单事件循环模型：每个请求的处理中只在
// 名称树查询 与 ICANN 回退 两处可能悬挂。

package hdns

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/tochusc/hdns/dns"
)

// HDNSServer 表示 HDNS 根区服务器
// 其包含以下三部分：
//   - Config: 服务器配置
//   - Netter: 数据包监听器
//   - Resolver: 根区解析器
type HDNSServer struct {
	Config   ServerConfig
	Netter   *Netter
	Resolver *RootResolver

	logger *log.Logger
}

// NewHDNSServer 创建一个 HDNS 服务器。
//   - conf: 服务器配置
//   - tree: 名称树查询协作者
//   - reserved: 保留名称表协作者（可为 nil）
//   - icann: ICANN 回退协作者（可为 nil）
//   - logWriter: 日志输出（nil 时丢弃日志）
func NewHDNSServer(conf ServerConfig, tree TreeLookup, reserved ReservedTable,
	icann IcannStub, logWriter io.Writer) (*HDNSServer, error) {

	if logWriter == nil {
		logWriter = io.Discard
	}
	resolver, err := NewRootResolver(conf, tree, reserved, icann, SystemClock{}, logWriter)
	if err != nil {
		return nil, err
	}
	return &HDNSServer{
		Config: conf,
		Netter: NewNetter(NetterConfig{
			Host:    conf.Host,
			Port:    conf.Port,
			Timeout: conf.Timeout,
		}, logWriter),
		Resolver: resolver,
		logger:   log.New(logWriter, "HDNS: ", log.LstdFlags),
	}, nil
}

// Open 打开监听器并进入事件循环。
// Close 关闭监听器后事件循环不再收到新请求，但 Open 本身不会返回。
func (s *HDNSServer) Open() error {
	s.logger.Printf("HDNS root server starts on %s:%d", s.Config.Host, s.Config.Port)

	if s.Config.SnifferMode {
		return s.runSniffer()
	}

	connChan, err := s.Netter.Sniff()
	if err != nil {
		return err
	}
	for connInfo := range connChan {
		wire, err := s.Resolver.ResolveWire(connInfo.Packet)
		if err != nil {
			// 格式非法或超时的请求直接丢弃
			continue
		}
		s.Netter.Send(connInfo, wire)
	}
	return nil
}

// runSniffer 以链路层嗅探模式运行事件循环。
func (s *HDNSServer) runSniffer() error {
	sniffer, err := NewSniffer(s.Config, os.Stdout)
	if err != nil {
		return err
	}
	defer sniffer.Close()

	sender, err := NewSender(s.Config)
	if err != nil {
		return err
	}
	defer sender.Close()

	parser := Parser{}
	for pkt := range sniffer.Sniff() {
		qInfo, err := parser.Parse(pkt)
		if err != nil {
			continue
		}
		s.logger.Printf("[%s]Receive query from IP:%s, QName: %s, QType: %s",
			time.Now().Format(time.ANSIC), qInfo.IP, qInfo.DNS.Question[0].Name, qInfo.DNS.Question[0].Type)

		resp, err := s.Resolver.Resolve(*qInfo.DNS)
		if err != nil {
			continue
		}
		sInfo, err := sender.Send(ResponseInfo{
			MAC:  qInfo.MAC,
			IP:   qInfo.IP,
			Port: qInfo.Port,
			DNS:  &resp,
		})
		if err != nil {
			s.logger.Printf("Error sending response: %s", err)
			continue
		}
		s.logger.Printf("[%s]Send response to IP: %s, FragmentsNum: %d, TotalSize: %d",
			time.Now().Format(time.ANSIC), sInfo.IP, sInfo.FragmentsNum, sInfo.TotalSize)
	}
	return nil
}

// Close 关闭服务器的监听器。
func (s *HDNSServer) Close() {
	s.Netter.Close()
	s.logger.Printf("HDNS root server closed")
}

// Resolve 直接处理一个消息形式的查询，返回权威回复。
func (s *HDNSServer) Resolve(qry dns.DNSMessage) (dns.DNSMessage, error) {
	return s.Resolver.Resolve(qry)
}

// ResetCache 清空响应缓存。
func (s *HDNSServer) ResetCache() {
	s.Resolver.ResetCache()
}

// Responser 是一个 DNS 回复器 接口。
// 实现该接口的结构体将根据链接信息生成 DNS 回复消息。
// RootResolver 为其权威实现；自定义实现可用于测试或实验。
type Responser interface {
	// Response 根据链接信息生成 DNS 回复消息。
	// 其参数为：
	//   - connInfo ConnectionInfo，链接信息
	// 返回值为：
	//   - dns.DNSMessage，DNS 回复消息
	//   - error，错误信息
	Response(ConnectionInfo) (dns.DNSMessage, error)
}

// 编译期检查：RootResolver 实现 Responser 接口。
var _ Responser = (*RootResolver)(nil)
