// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// netter.go 文件定义了 数据包监听器 Netter。
// Netter 监听 UDP 与 TCP 端口，将入站数据包送入链接信息通道，
// 并负责将回复发送回请求方。

package hdns

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"time"
)

// NetterConfig 结构体用于记录网络监听器的配置
type NetterConfig struct {
	Host net.IP
	Port int
	// Timeout 为单个 TCP 链接的读写期限。
	Timeout time.Duration
}

// Netter 数据包监听器：接收、解析、发送数据包，并维护连接状态。
type Netter struct {
	Config NetterConfig

	logger *log.Logger

	mu       sync.Mutex
	pktConn  net.PacketConn
	listener net.Listener
	closed   bool
}

// NewNetter 创建一个数据包监听器。
func NewNetter(conf NetterConfig, logWriter io.Writer) *Netter {
	if logWriter == nil {
		logWriter = io.Discard
	}
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultTimeout
	}
	return &Netter{
		Config: conf,
		logger: log.New(logWriter, "Netter: ", log.LstdFlags),
	}
}

// listenAddr 返回监听地址字符串。
func (n *Netter) listenAddr() string {
	host := ""
	if n.Config.Host != nil {
		host = n.Config.Host.String()
	}
	return fmt.Sprintf("%s:%d", host, n.Config.Port)
}

// Sniff 函数用于监听配置的端口，并返回链接信息通道
// 其返回值为：chan ConnectionInfo，链接信息通道
func (n *Netter) Sniff() (chan ConnectionInfo, error) {
	connChan := make(chan ConnectionInfo)

	// udp
	pktConn, err := net.ListenPacket("udp", n.listenAddr())
	if err != nil {
		return nil, fmt.Errorf("method Netter Sniff failed: listen udp failed: %w", err)
	}

	// tcp
	listener, err := net.Listen("tcp", n.listenAddr())
	if err != nil {
		pktConn.Close()
		return nil, fmt.Errorf("method Netter Sniff failed: listen tcp failed: %w", err)
	}

	n.mu.Lock()
	n.pktConn = pktConn
	n.listener = listener
	n.mu.Unlock()

	go n.handlePktConn(pktConn, connChan)
	go n.handleListener(listener, connChan)

	return connChan, nil
}

// Close 关闭监听器，停止接收新的数据包。
func (n *Netter) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	if n.pktConn != nil {
		n.pktConn.Close()
	}
	if n.listener != nil {
		n.listener.Close()
	}
}

// isClosed 判断监听器是否已关闭。
func (n *Netter) isClosed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// handleListener 函数用于处理 TCP 链接
// 其接收参数为：
//   - lstr: net.Listener，TCP 监听器
//   - connChan: chan ConnectionInfo，链接信息通道
//
// 该函数将会接受 TCP 链接，并将其发送到链接信息通道中
func (n *Netter) handleListener(lstr net.Listener, connChan chan ConnectionInfo) {
	for {
		conn, err := lstr.Accept()
		if err != nil {
			if n.isClosed() {
				return
			}
			n.logger.Printf("Error accepting tcp connection: %s", err)
			continue
		}
		go n.handleStreamConn(conn, connChan)
	}
}

// handlePktConn 函数用于处理 数据包 链接
// 其接收参数为：
//   - pktConn: net.PacketConn，数据包链接
//   - connChan: chan ConnectionInfo，链接信息通道
//
// 该函数将会读取 数据包链接 中的数据，并将其发送到链接信息通道中
func (n *Netter) handlePktConn(pktConn net.PacketConn, connChan chan ConnectionInfo) {
	buf := make([]byte, 65535)

	for {
		sz, addr, err := pktConn.ReadFrom(buf)
		if err != nil {
			if n.isClosed() {
				return
			}
			n.logger.Printf("Error reading udp packet: %s", err)
			continue
		}

		pkt := make([]byte, sz)
		copy(pkt, buf[:sz])
		connChan <- ConnectionInfo{
			Protocol:   ProtocolUDP,
			Address:    addr,
			PacketConn: pktConn,
			Packet:     pkt,
		}
	}
}

// handleStreamConn 函数用于处理 流式链接
// 其接收参数为：
//   - conn: net.Conn，流式链接
//   - connChan: chan ConnectionInfo，链接信息通道
//
// 该函数将会读取 流式链接 中的数据（2 字节长度前缀的 DNS 消息），
// 并将其发送到链接信息通道中
func (n *Netter) handleStreamConn(conn net.Conn, connChan chan ConnectionInfo) {
	conn.SetDeadline(time.Now().Add(n.Config.Timeout))

	lenBuf := make([]byte, 2)
	if _, err := io.ReadFull(conn, lenBuf); err != nil {
		n.logger.Printf("Error reading tcp length prefix: %s", err)
		conn.Close()
		return
	}
	msgSz := int(binary.BigEndian.Uint16(lenBuf))

	pkt := make([]byte, msgSz)
	if _, err := io.ReadFull(conn, pkt); err != nil {
		n.logger.Printf("Error reading tcp packet: %s", err)
		conn.Close()
		return
	}

	connChan <- ConnectionInfo{
		Protocol:   ProtocolTCP,
		Address:    conn.RemoteAddr(),
		StreamConn: conn,
		Packet:     pkt,
	}
}

// ConnectionInfo 结构体用于记录链接信息
// 其包含以下字段：
//   - Protocol: Protocol，网络协议
//   - Address: net.Addr，地址
//   - StreamConn: net.Conn，TCP 链接
//   - PacketConn: net.PacketConn，UDP 链接
//   - Packet: []byte，数据包
type ConnectionInfo struct {
	Protocol Protocol // 网络协议
	Address  net.Addr // 地址

	StreamConn net.Conn       // TCP 链接
	PacketConn net.PacketConn // UDP 链接

	Packet []byte // 数据包
}

// Protocol 用于表示网络协议
type Protocol string

const (
	ProtocolUDP Protocol = "udp"
	ProtocolTCP Protocol = "tcp"
)

func (p *Protocol) String() string {
	if *p == ProtocolUDP {
		return "UDP"
	}
	if *p == ProtocolTCP {
		return "TCP"
	}
	return "Unknown"
}

// Send 函数用于发送数据包
// 其接收参数为：
//   - connInfo: ConnectionInfo，链接信息
//   - data: []byte，数据包
//
// TCP 回复带 2 字节长度前缀并在发送后关闭链接。
func (n *Netter) Send(connInfo ConnectionInfo, data []byte) {
	if connInfo.Protocol == ProtocolUDP {
		_, err := connInfo.PacketConn.WriteTo(data, connInfo.Address)
		if err != nil {
			n.logger.Printf("Error writing udp packet: %s", err)
		}
	}

	if connInfo.Protocol == ProtocolTCP {
		pktSize := len(data)
		if pktSize > 0xffff {
			pktSize = 0xffff
			n.logger.Printf("Warning: packet size exceeds 0xffff, truncating")
		}

		lenByte := make([]byte, 2)
		binary.BigEndian.PutUint16(lenByte, uint16(pktSize))

		connInfo.StreamConn.Write(append(lenByte, data[:pktSize]...))
		connInfo.StreamConn.Close()
	}
}
