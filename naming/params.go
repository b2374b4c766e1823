// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// params.go 文件定义了名称拍卖机制的网络参数。
// 不同网络（主网、测试网、回归测试网）使用不同的窗口长度，
// 名称状态机根据这些参数由区块高度推导名称所处的拍卖阶段。

package naming

// Params 记录一个网络的名称拍卖参数（均以区块数计）。
type Params struct {
	// Name 为网络名称。
	Name string
	// TreeInterval 为名称树的提交间隔，开标后经过该间隔方可出价。
	TreeInterval uint32
	// BiddingPeriod 为出价窗口长度。
	BiddingPeriod uint32
	// RevealPeriod 为亮价窗口长度。
	RevealPeriod uint32
	// RenewalWindow 为续期窗口长度，超过该窗口未续期的名称过期。
	RenewalWindow uint32
	// TransferLockup 为所有权转移的锁定期。
	TransferLockup uint32
	// CoinbaseMaturity 为coinbase输出的成熟期。
	CoinbaseMaturity uint32
}

// MainNetParams 为主网的名称拍卖参数。
var MainNetParams = Params{
	Name:             "main",
	TreeInterval:     36,
	BiddingPeriod:    720,
	RevealPeriod:     1440,
	RenewalWindow:    105120,
	TransferLockup:   288,
	CoinbaseMaturity: 100,
}

// TestNetParams 为测试网的名称拍卖参数。
var TestNetParams = Params{
	Name:             "testnet",
	TreeInterval:     18,
	BiddingPeriod:    360,
	RevealPeriod:     720,
	RenewalWindow:    52560,
	TransferLockup:   144,
	CoinbaseMaturity: 100,
}

// RegressionNetParams 为回归测试网的名称拍卖参数，
// 其窗口被压缩到便于测试的长度。
var RegressionNetParams = Params{
	Name:             "regtest",
	TreeInterval:     5,
	BiddingPeriod:    10,
	RevealPeriod:     20,
	RenewalWindow:    10000,
	TransferLockup:   10,
	CoinbaseMaturity: 2,
}
