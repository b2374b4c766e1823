// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// sniffer.go 文件定义了链路层嗅探模式的收发路径。
//
// 嗅探模式不经过内核套接字：
//   - Sniffer 以 BPF 过滤器捕获指向本机端口的入站数据包；
//   - Parser 使用 gopacket 解析 以太网/IPv4/UDP/DNS 各层；
//   - Sender 将回复按 MTU 分片后直接注入链路层。
//
// 该模式用于需要完全掌控线路行为的部署；常规部署使用 Netter。

package hdns

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"github.com/tochusc/hdns/dns"
	"github.com/tochusc/hdns/dns/xlayers"
)

// QueryInfo 记录嗅探模式下一次 DNS 查询的相关信息
// 其包括有：
//   - MAC: net.HardwareAddr，发出 DNS 请求的 MAC 地址
//   - IP: net.IP，发出 DNS 请求的 IP 地址
//   - Port: int，发出 DNS 请求的端口
//   - DNS: *dns.DNSMessage，DNS 查询消息
type QueryInfo struct {
	MAC  net.HardwareAddr
	IP   net.IP
	Port int
	DNS  *dns.DNSMessage
}

func (q *QueryInfo) String() string {
	return fmt.Sprintf("Receive query from IP: %s, Port: %d, DNS Message:\n%s", q.IP, q.Port, q.DNS.String())
}

// ResponseInfo 记录嗅探模式下一次 DNS 回复的相关信息
type ResponseInfo struct {
	MAC  net.HardwareAddr
	IP   net.IP
	Port int
	DNS  *dns.DNSMessage
}

func (s *ResponseInfo) String() string {
	return fmt.Sprintf("Response to IP: %s, Port: %d, DNS Message:\n%s", s.IP, s.Port, s.DNS.String())
}

// SendInfo 记录嗅探模式下发送 DNS 回复的统计信息
type SendInfo struct {
	MAC          net.HardwareAddr
	IP           net.IP
	Port         int
	FragmentsNum int
	TotalSize    int
}

func (s *SendInfo) String() string {
	return fmt.Sprintf("Send response to IP: %s, Port: %d, FragmentsNum: %d, TotalSize: %d", s.IP, s.Port, s.FragmentsNum, s.TotalSize)
}

// Sniffer 记录了链路层嗅探器的相关信息
// 其包括有：
//   - Handle: pcap.Handle，嗅探器的数据包处理器
//   - Config: ServerConfig，服务器配置
type Sniffer struct {
	Handle *pcap.Handle
	Config ServerConfig

	logger *log.Logger
}

// NewSniffer 创建一个新的 Sniffer 实例。
// 其打开配置的网络设备，设置指向本机端口的 BPF 过滤器，
// 并将处理方向限定为接收方向。
func NewSniffer(conf ServerConfig, logWriter io.Writer) (*Sniffer, error) {
	if logWriter == nil {
		logWriter = io.Discard
	}
	handle, err := pcap.OpenLive(conf.NetworkDevice, int32(conf.MTU), false, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("function NewSniffer failed: open device failed: %w", err)
	}

	filter := fmt.Sprintf("ip and udp dst port %d", conf.Port)
	if err := handle.SetBPFFilter(filter); err != nil {
		handle.Close()
		return nil, fmt.Errorf("function NewSniffer failed: set bpf filter failed: %w", err)
	}
	if err := handle.SetDirection(pcap.DirectionIn); err != nil {
		handle.Close()
		return nil, fmt.Errorf("function NewSniffer failed: set direction failed: %w", err)
	}

	return &Sniffer{
		Handle: handle,
		Config: conf,
		logger: log.New(logWriter, "Sniffer: ", log.LstdFlags),
	}, nil
}

// Sniff 返回捕获到的原始数据包通道。
func (sniffer *Sniffer) Sniff() chan []byte {
	packetSource := gopacket.NewPacketSource(sniffer.Handle, sniffer.Handle.LinkType())

	pktChan := make(chan []byte)
	go func() {
		for packet := range packetSource.Packets() {
			pktChan <- packet.Data()
		}
		close(pktChan)
	}()

	return pktChan
}

// Close 关闭嗅探器。
func (sniffer *Sniffer) Close() {
	sniffer.Handle.Close()
}

// Parser 结构体用于解析链路层捕获的 DNS 查询。
// Parser 使用 google/gopacket 库解析 以太网/IPv4/UDP/DNS 各层，
// DNS 层由 xlayers 包的封装解码。
type Parser struct{}

// Parse 解析一个链路层数据包为查询信息。
func (parser Parser) Parse(pkt []byte) (QueryInfo, error) {
	var eth layers.Ethernet
	var ipv4 layers.IPv4
	var udp layers.UDP
	var dnsLayer xlayers.DNS
	var decodedLayers []gopacket.LayerType

	layerParser := gopacket.NewDecodingLayerParser(layers.LayerTypeEthernet,
		&eth, &ipv4, &udp, &dnsLayer)

	err := layerParser.DecodeLayers(pkt, &decodedLayers)
	if err != nil {
		return QueryInfo{}, err
	}

	return QueryInfo{
		MAC:  eth.SrcMAC,
		IP:   ipv4.SrcIP,
		Port: int(udp.SrcPort),
		DNS:  &dnsLayer.DNSMessage,
	}, nil
}

// Sender 结构体用于在链路层发送 DNS 回复。
// 回复在 UDP 层序列化后按 MTU 分片，逐片注入网络设备。
type Sender struct {
	Handle *pcap.Handle
	sConf  ServerConfig
}

// NewSender 创建一个 Sender 实例。
func NewSender(sConf ServerConfig) (*Sender, error) {
	handle, err := pcap.OpenLive(sConf.NetworkDevice, int32(sConf.MTU), false, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("function NewSender failed: open device failed: %w", err)
	}
	return &Sender{Handle: handle, sConf: sConf}, nil
}

// Send 函数用于发送 DNS 回复。
func (sender *Sender) Send(rInfo ResponseInfo) (SendInfo, error) {
	sInfo := SendInfo{
		MAC:  rInfo.MAC,
		IP:   rInfo.IP,
		Port: rInfo.Port,
	}

	// 序列化DNS及UDP层
	udpPayload, err := serializeToUDP(rInfo, sender.sConf)
	if err != nil {
		return sInfo, fmt.Errorf("function serializeToUDP failed: %w", err)
	}

	// 分片
	fragments, err := Fragment(udpPayload, sender.sConf.MTU, 20)
	if err != nil {
		return sInfo, fmt.Errorf("function Fragment failed: %w", err)
	}

	// 计算每个分片的载荷大小：MTU - IP头部长度
	payloadSize := (sender.sConf.MTU - 20) &^ 7

	// 生成随机IP标识符
	ipID := rand.Intn(65536)

	for i, fragment := range fragments {
		moreFragments := 1
		if i == len(fragments)-1 {
			moreFragments = 0
		}
		pkt, err := fragmentToBytes(ipID, rInfo.MAC, rInfo.IP, moreFragments, i*payloadSize/8, fragment, sender.sConf)
		if err != nil {
			return sInfo, fmt.Errorf("function fragmentToBytes failed: %w", err)
		}
		if err := sender.Handle.WritePacketData(pkt); err != nil {
			return sInfo, fmt.Errorf("function pcap.Handle.WritePacketData failed: %w", err)
		}
		sInfo.FragmentsNum++
		sInfo.TotalSize += len(pkt)
	}
	return sInfo, nil
}

// Close 关闭发送器。
func (sender *Sender) Close() {
	sender.Handle.Close()
}

// Fragment 函数用于对数据包进行分片。
func Fragment(payload []byte, mtu, ipHeaderLen int) ([][]byte, error) {
	if mtu <= ipHeaderLen {
		return nil, fmt.Errorf("function Fragment failed: MTU must be greater than IP header length")
	}

	// 计算每个分片的载荷大小：MTU - IP头部长度
	// 确保每个分片的载荷大小是8的倍数
	payloadSize := (mtu - ipHeaderLen) &^ 7

	// 计算分片数量，初始化分片数组
	fragNum := (len(payload) + payloadSize - 1) / payloadSize
	fragments := make([][]byte, 0, fragNum)

	// 分片
	for trvlr := 0; trvlr < len(payload); trvlr += payloadSize {
		end := trvlr + payloadSize
		if end > len(payload) {
			end = len(payload)
		}
		fragments = append(fragments, payload[trvlr:end])
	}
	return fragments, nil
}

// fragmentToBytes 函数用于将一个分片序列化为链路层字节流。
func fragmentToBytes(ipID int, dstMac net.HardwareAddr, dstIP net.IP,
	moreFragments int, offset int, payload []byte, sConf ServerConfig) ([]byte, error) {

	// 以太网层
	eth := &layers.Ethernet{
		SrcMAC:       sConf.MAC,
		DstMAC:       dstMac,
		EthernetType: layers.EthernetTypeIPv4,
	}

	// IPv4层
	ipv4 := &layers.IPv4{
		Version:    4,
		Id:         uint16(ipID),
		Flags:      layers.IPv4Flag(moreFragments),
		FragOffset: uint16(offset),
		TTL:        64,
		Protocol:   layers.IPProtocolUDP,
		SrcIP:      sConf.Host,
		DstIP:      dstIP,
	}

	// 设置序列化选项
	options := gopacket.SerializeOptions{
		ComputeChecksums: true,
		FixLengths:       true,
	}

	// IPv4层序列化
	ipv4Buffer := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(
		ipv4Buffer,
		options,
		ipv4,
		gopacket.Payload(payload),
	)
	if err != nil {
		return nil, err
	}

	// 以太网层序列化
	ethernetBuffer := gopacket.NewSerializeBuffer()
	err = gopacket.SerializeLayers(
		ethernetBuffer,
		options,
		eth,
		gopacket.Payload(ipv4Buffer.Bytes()),
	)
	if err != nil {
		return nil, err
	}
	return ethernetBuffer.Bytes(), nil
}

// serializeToUDP 函数用于将 DNS 回复序列化到 UDP 层。
func serializeToUDP(rInfo ResponseInfo, sConf ServerConfig) ([]byte, error) {
	udp := &layers.UDP{
		SrcPort: layers.UDPPort(sConf.Port),
		DstPort: layers.UDPPort(rInfo.Port),
	}
	dnsLayer := &xlayers.DNS{
		DNSMessage: *rInfo.DNS,
	}

	// DNS层序列化
	dnsBuffer := gopacket.NewSerializeBuffer()
	options := gopacket.SerializeOptions{
		ComputeChecksums: true,
		FixLengths:       true,
	}
	if err := dnsLayer.SerializeTo(dnsBuffer, options); err != nil {
		return nil, err
	}

	// UDP层序列化
	udp.SetNetworkLayerForChecksum(&layers.IPv4{
		SrcIP:    sConf.Host,
		DstIP:    rInfo.IP,
		Protocol: layers.IPProtocolUDP,
	})
	udpBuffer := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(
		udpBuffer,
		options,
		udp,
		gopacket.Payload(dnsBuffer.Bytes()),
	)
	if err != nil {
		return nil, err
	}
	return udpBuffer.Bytes(), nil
}
