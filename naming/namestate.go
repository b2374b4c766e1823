// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// namestate.go 文件定义了链上名称的状态自动机。
//
// 名称状态由契约（covenant）转移驱动，所处拍卖阶段由区块高度推导：
//
//	OPENING → BIDDING → REVEAL → CLOSED → REVOKED/EXPIRED
//
// DNS 层只消费 CLOSED 且 Data 非空的名称状态，
// 其 Data 字节解码为名称资源（resource.Resource）。

package naming

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// NameHashLen 为名称哈希的长度（BLAKE2b-256）。
const NameHashLen = 32

// MaxNameLen 为名称（单个 DNS 标签）的最大长度。
const MaxNameLen = 63

// MaxDataLen 为名称状态携带的资源数据的最大长度。
const MaxDataLen = 512

// 名称状态的解码错误。
var (
	ErrBadNameState = errors.New("naming: malformed name state")
	ErrBadName      = errors.New("naming: name is not root-legal")
)

// State 表示名称所处的拍卖阶段。
type State uint8

const (
	// StateOpening 开标间隔，尚不可出价。
	StateOpening State = iota
	// StateBidding 出价窗口。
	StateBidding
	// StateReveal 亮价窗口。
	StateReveal
	// StateClosed 拍卖结束，名称可注册资源并被 DNS 层服务。
	StateClosed
	// StateRevoked 名称被显式吊销，直至过期前不可用。
	StateRevoked
	// StateExpired 名称超过续期窗口未续期，已过期。
	StateExpired
)

// String 方法返回拍卖阶段的字符串表示。
func (s State) String() string {
	switch s {
	case StateOpening:
		return "OPENING"
	case StateBidding:
		return "BIDDING"
	case StateReveal:
		return "REVEAL"
	case StateClosed:
		return "CLOSED"
	case StateRevoked:
		return "REVOKED"
	case StateExpired:
		return "EXPIRED"
	default:
		return fmt.Sprintf("Unknown State: (%d)", uint8(s))
	}
}

// Covenant 表示驱动名称状态转移的契约类型。
type Covenant uint8

const (
	CovenantNone     Covenant = 0
	CovenantClaim    Covenant = 1
	CovenantOpen     Covenant = 2
	CovenantBid      Covenant = 3
	CovenantReveal   Covenant = 4
	CovenantRedeem   Covenant = 5
	CovenantRegister Covenant = 6
	CovenantUpdate   Covenant = 7
	CovenantRenew    Covenant = 8
	CovenantTransfer Covenant = 9
	CovenantFinalize Covenant = 10
	CovenantRevoke   Covenant = 11
)

// Outpoint 表示名称所有者的交易输出点。
type Outpoint struct {
	Hash  [32]byte
	Index uint32
}

// NameState 表示一个链上名称的完整状态。
type NameState struct {
	// NameHash 为名称的 BLAKE2b-256 哈希，是名称树的键。
	NameHash [NameHashLen]byte
	// Name 为名称本身（单个根区标签）。
	Name string
	// Height 为开标所在的区块高度。
	Height uint32
	// Renewal 为最近一次注册/续期所在的区块高度。
	Renewal uint32
	// Owner 为当前所有者的输出点。
	Owner Outpoint
	// Value 为中标者实际支付的金额（次高价）。
	Value uint64
	// Highest 为最高出价金额。
	Highest uint64
	// Data 为注册的资源数据（名称资源的编码字节）。
	Data []byte
	// TransferHeight 为所有权转移发起的高度，0 表示没有进行中的转移。
	TransferHeight uint32
	// Claimed 为保留名称认领所在的高度，0 表示非认领名称。
	Claimed uint32
	// Renewals 为累计续期次数。
	Renewals uint32
	// Weak 标记弱认领名称。
	Weak bool
	// Revoked 标记名称已被显式吊销。
	Revoked bool
}

// HashName 计算名称的 BLAKE2b-256 哈希，即名称树的键。
func HashName(name string) [NameHashLen]byte {
	return blake2b.Sum256([]byte(name))
}

// IsNameRootLegal 判断名称是否为合法的根区标签：
// 仅含 [0-9a-z-]、不以 '-' 开头或结尾、长度 1~63。
func IsNameRootLegal(name string) bool {
	if len(name) == 0 || len(name) > MaxNameLen {
		return false
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || c == '-' {
			continue
		}
		return false
	}
	return true
}

// OpenName 由 OPEN 契约创建一个新的名称状态。
func OpenName(name string, height uint32) (*NameState, error) {
	if !IsNameRootLegal(name) {
		return nil, fmt.Errorf("function OpenName failed: %w: %q", ErrBadName, name)
	}
	ns := &NameState{
		NameHash: HashName(name),
		Name:     name,
		Height:   height,
		Renewal:  height,
	}
	return ns, nil
}

// State 根据区块高度与网络参数推导名称所处的拍卖阶段。
func (ns *NameState) State(height uint32, params *Params) State {
	if height >= ns.Renewal+params.RenewalWindow {
		return StateExpired
	}
	if ns.Revoked {
		return StateRevoked
	}
	if ns.Claimed != 0 {
		// 认领名称没有拍卖窗口
		return StateClosed
	}
	openPeriod := ns.Height + params.TreeInterval
	if height < openPeriod {
		return StateOpening
	}
	if height < openPeriod+params.BiddingPeriod {
		return StateBidding
	}
	if height < openPeriod+params.BiddingPeriod+params.RevealPeriod {
		return StateReveal
	}
	return StateClosed
}

// Apply 将契约转移应用到名称状态上。
//   - cov: 契约类型
//   - height: 契约所在的区块高度
//   - owner: 契约产生的新所有者输出点（仅部分契约使用）
//   - value: 契约携带的金额（BID 为出价额，REVEAL 为揭示额）
//   - data: 契约携带的资源数据（REGISTER/UPDATE 使用）
//
// 返回值为 错误信息。
func (ns *NameState) Apply(cov Covenant, height uint32, owner Outpoint, value uint64, data []byte) error {
	switch cov {
	case CovenantClaim:
		ns.Claimed = height
		ns.Renewal = height
		ns.Owner = owner
	case CovenantOpen:
		ns.Height = height
		ns.Renewal = height
	case CovenantBid:
		if value > ns.Highest {
			ns.Value = ns.Highest
			ns.Highest = value
			ns.Owner = owner
		} else if value > ns.Value {
			ns.Value = value
		}
	case CovenantReveal:
		if value > ns.Highest {
			ns.Value = ns.Highest
			ns.Highest = value
			ns.Owner = owner
		} else if value > ns.Value {
			ns.Value = value
		}
	case CovenantRedeem:
		// 落选出价赎回，不改变名称状态
	case CovenantRegister:
		if len(data) > MaxDataLen {
			return fmt.Errorf("method NameState Apply failed: %w: data %d bytes", ErrBadNameState, len(data))
		}
		ns.Data = data
		ns.Renewal = height
	case CovenantUpdate:
		if len(data) > MaxDataLen {
			return fmt.Errorf("method NameState Apply failed: %w: data %d bytes", ErrBadNameState, len(data))
		}
		ns.Data = data
	case CovenantRenew:
		ns.Renewal = height
		ns.Renewals++
	case CovenantTransfer:
		ns.TransferHeight = height
	case CovenantFinalize:
		ns.Owner = owner
		ns.TransferHeight = 0
	case CovenantRevoke:
		ns.Revoked = true
		ns.Data = nil
	default:
		return fmt.Errorf("method NameState Apply failed: unknown covenant %d", cov)
	}
	return nil
}

// 状态标志位。
const (
	flagWeak    = 1 << 0
	flagRevoked = 1 << 1
)

// Size 返回名称状态的编码长度。
func (ns *NameState) Size() int {
	return NameHashLen + 1 + len(ns.Name) +
		4 + 4 + 32 + 4 + 8 + 8 + 4 + 4 + 4 + 1 +
		2 + len(ns.Data)
}

// Encode 将名称状态编码为字节切片。
func (ns *NameState) Encode() []byte {
	buffer := make([]byte, ns.Size())
	_, err := ns.EncodeToBuffer(buffer)
	if err != nil {
		panic(fmt.Sprintf("method NameState Encode failed:\n%v", err))
	}
	return buffer
}

// EncodeToBuffer 将名称状态编码到传入的缓冲区中。
//   - 返回值为 写入字节数 和 错误信息。
//
// 如果出现错误，返回 -1 和 相应报错。
func (ns *NameState) EncodeToBuffer(buffer []byte) (int, error) {
	size := ns.Size()
	if len(buffer) < size {
		return -1, fmt.Errorf("method NameState EncodeToBuffer failed: buffer length %d is less than NameState size %d", len(buffer), size)
	}
	if len(ns.Name) > MaxNameLen {
		return -1, fmt.Errorf("method NameState EncodeToBuffer failed: %w: name %d bytes", ErrBadName, len(ns.Name))
	}
	if len(ns.Data) > MaxDataLen {
		return -1, fmt.Errorf("method NameState EncodeToBuffer failed: %w: data %d bytes", ErrBadNameState, len(ns.Data))
	}
	offset := 0
	copy(buffer[offset:], ns.NameHash[:])
	offset += NameHashLen
	buffer[offset] = byte(len(ns.Name))
	offset++
	copy(buffer[offset:], ns.Name)
	offset += len(ns.Name)
	binary.BigEndian.PutUint32(buffer[offset:], ns.Height)
	binary.BigEndian.PutUint32(buffer[offset+4:], ns.Renewal)
	offset += 8
	copy(buffer[offset:], ns.Owner.Hash[:])
	offset += 32
	binary.BigEndian.PutUint32(buffer[offset:], ns.Owner.Index)
	offset += 4
	binary.BigEndian.PutUint64(buffer[offset:], ns.Value)
	binary.BigEndian.PutUint64(buffer[offset+8:], ns.Highest)
	offset += 16
	binary.BigEndian.PutUint32(buffer[offset:], ns.TransferHeight)
	binary.BigEndian.PutUint32(buffer[offset+4:], ns.Claimed)
	binary.BigEndian.PutUint32(buffer[offset+8:], ns.Renewals)
	offset += 12
	flags := byte(0)
	if ns.Weak {
		flags |= flagWeak
	}
	if ns.Revoked {
		flags |= flagRevoked
	}
	buffer[offset] = flags
	offset++
	binary.BigEndian.PutUint16(buffer[offset:], uint16(len(ns.Data)))
	offset += 2
	copy(buffer[offset:], ns.Data)
	offset += len(ns.Data)
	return offset, nil
}

// DecodeNameState 从字节切片解码名称状态。
//   - 返回值为 解码后的名称状态 和 错误信息。
func DecodeNameState(data []byte) (*NameState, error) {
	ns := &NameState{}
	offset := 0
	need := func(n int) error {
		if len(data) < offset+n {
			return fmt.Errorf("function DecodeNameState failed: %w: require %d bytes, got %d", ErrBadNameState, offset+n, len(data))
		}
		return nil
	}

	if err := need(NameHashLen + 1); err != nil {
		return nil, err
	}
	copy(ns.NameHash[:], data[offset:])
	offset += NameHashLen
	nameLen := int(data[offset])
	offset++
	if nameLen > MaxNameLen {
		return nil, fmt.Errorf("function DecodeNameState failed: %w: name %d bytes", ErrBadName, nameLen)
	}
	if err := need(nameLen); err != nil {
		return nil, err
	}
	ns.Name = string(data[offset : offset+nameLen])
	offset += nameLen

	if err := need(8 + 32 + 4 + 16 + 12 + 1 + 2); err != nil {
		return nil, err
	}
	ns.Height = binary.BigEndian.Uint32(data[offset:])
	ns.Renewal = binary.BigEndian.Uint32(data[offset+4:])
	offset += 8
	copy(ns.Owner.Hash[:], data[offset:])
	offset += 32
	ns.Owner.Index = binary.BigEndian.Uint32(data[offset:])
	offset += 4
	ns.Value = binary.BigEndian.Uint64(data[offset:])
	ns.Highest = binary.BigEndian.Uint64(data[offset+8:])
	offset += 16
	ns.TransferHeight = binary.BigEndian.Uint32(data[offset:])
	ns.Claimed = binary.BigEndian.Uint32(data[offset+4:])
	ns.Renewals = binary.BigEndian.Uint32(data[offset+8:])
	offset += 12
	flags := data[offset]
	ns.Weak = flags&flagWeak != 0
	ns.Revoked = flags&flagRevoked != 0
	offset++
	dataLen := int(binary.BigEndian.Uint16(data[offset:]))
	offset += 2
	if dataLen > MaxDataLen {
		return nil, fmt.Errorf("function DecodeNameState failed: %w: data %d bytes", ErrBadNameState, dataLen)
	}
	if err := need(dataLen); err != nil {
		return nil, err
	}
	if dataLen > 0 {
		ns.Data = make([]byte, dataLen)
		copy(ns.Data, data[offset:])
	}
	offset += dataLen
	if offset != len(data) {
		return nil, fmt.Errorf("function DecodeNameState failed: %w: %d trailing bytes", ErrBadNameState, len(data)-offset)
	}
	return ns, nil
}

// String 以*易读的形式*返回名称状态的字符串表示。
func (ns *NameState) String() string {
	return fmt.Sprintf("namestate %q height %d renewal %d revoked %v data %d bytes",
		ns.Name, ns.Height, ns.Renewal, ns.Revoked, len(ns.Data))
}
