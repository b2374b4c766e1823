// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// main.go 为一键启动 HDNS 根区服务器的示例。
// 服务器配置从 hdns.yml 读取；名称树由内存映射模拟，
// 预置一个带有 NS 委托的名称 "example"。

package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tochusc/hdns"
	"github.com/tochusc/hdns/naming"
	"github.com/tochusc/hdns/resource"
)

// fileConfig 为 hdns.yml 的结构。
type fileConfig struct {
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	PublicHost string   `yaml:"public_host"`
	Key        string   `yaml:"key"`
	CacheSize  int      `yaml:"cache_size"`
	NoSig0     bool     `yaml:"no_sig0"`
	Blacklist  []string `yaml:"blacklist"`
	Upstream   string   `yaml:"upstream"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf := &fileConfig{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// demoTree 构造一个内存名称树，预置名称 "example"。
func demoTree() (hdns.TreeLookup, error) {
	rs := &resource.Resource{
		TTL: 21600,
		Records: []resource.Record{
			resource.NewNS(resource.Target{
				Type:  resource.TargetGLUE,
				Name:  "ns1.example.",
				Inet4: net.IPv4(127, 0, 0, 53),
			}),
		},
	}
	data, err := rs.Encode()
	if err != nil {
		return nil, err
	}

	ns, err := naming.OpenName("example", 1)
	if err != nil {
		return nil, err
	}
	if err := ns.Apply(naming.CovenantClaim, 1, naming.Outpoint{}, 0, nil); err != nil {
		return nil, err
	}
	if err := ns.Apply(naming.CovenantRegister, 1, naming.Outpoint{}, 0, data); err != nil {
		return nil, err
	}

	tree := map[[naming.NameHashLen]byte][]byte{
		ns.NameHash: ns.Encode(),
	}
	return func(ctx context.Context, nameHash [naming.NameHashLen]byte) ([]byte, error) {
		return tree[nameHash], nil
	}, nil
}

func main() {
	path := "hdns.yml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	fileConf, err := loadConfig(path)
	if err != nil {
		fmt.Println("Error loading config: ", err)
		os.Exit(1)
	}

	conf := hdns.ServerConfig{
		Host:       net.ParseIP(fileConf.Host),
		Port:       fileConf.Port,
		PublicHost: net.ParseIP(fileConf.PublicHost),
		Key:        []byte(fileConf.Key),
		CacheSize:  fileConf.CacheSize,
		NoSig0:     fileConf.NoSig0,
		Blacklist:  fileConf.Blacklist,
		Params:     &naming.MainNetParams,
	}

	tree, err := demoTree()
	if err != nil {
		fmt.Println("Error building demo tree: ", err)
		os.Exit(1)
	}

	reserved := hdns.MapReservedTable{
		"com": {Target: "com.", Root: true},
		"org": {Target: "org.", Root: true},
	}

	server, err := hdns.NewHDNSServer(conf, tree, reserved,
		hdns.NewStubResolver(fileConf.Upstream), os.Stdout)
	if err != nil {
		fmt.Println("Error creating server: ", err)
		os.Exit(1)
	}
	if err := server.Open(); err != nil {
		fmt.Println("Error running server: ", err)
		os.Exit(1)
	}
}
