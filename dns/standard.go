// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// standard.go 文件定义了 DNS 所使用到的一些标准化函数
// 其目前包括 <domain-name>, <character-string> 的编解码函数，
// 以及 DNSSEC 签名所需的 RRSet 规范化函数。
// 关于 <domain-name> 及 <character-string> 的详细定义
// 请参阅 RFC 1035 3.3节 Standard RRs。
//
// # <domain-name>
//
// 对于 <domain-name> 的编码，可接受 绝对域名 及 相对域名，
// 绝对域名 以 '.' 结尾，相对域名后不以'.'结尾。
// 传入的 相对域名 会视作为 绝对域名 进行编码。
//
// 而 <domain-name> 的解码则均以 相对域名 的形式返回结果。
// 当域名为 根域名 时，返回"."。
//
// DNS 域名存在压缩格式，即使用 指针 指向位于 DNS消息 其他位置的域名。
// 指针占据两个字节，高两位为 11，低14位为指向的位置。
// 详细内容请参阅 RFC 1035 4.1.4. Message compression
//
// # <character-string>
//
// DNS 字符串的编码格式为：字符串长度 + 字符串内容。
// 长度字节为0时，表示空字符串，长度最大为255。

package dns

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// GetDomainNameWireLen 返回域名的 编码格式长度。
//   - 其接收参数为 域名字符串 的指针，
//   - 返回值为域名的 编码格式长度。
//
// 可以接收绝对域名及相对域名，所有域名均以绝对域名的长度计算。
func GetDomainNameWireLen(name *string) int {
	nameLength := len(*name)
	if nameLength == 0 {
		return 1
	}
	if (*name)[nameLength-1] == '.' {
		// 根域名
		if nameLength == 1 {
			return 1
		}
		return nameLength + 1
	}
	return nameLength + 2
}

// GetUpperDomainName 返回域名的上级域名。
// 如果传入域名为根域名，则返回根域名本身。
func GetUpperDomainName(name *string) string {
	if len(*name) == 0 || (*name)[0] == '.' {
		return "."
	}
	idx := strings.Index(*name, ".")
	if idx == -1 || idx == len(*name)-1 {
		return "."
	}
	return (*name)[idx+1:]
}

// SplitDomainName 分割域名，其接受域名字符串，并返回分割后的标签切片。
// 标签均以小写形式返回，若域名为根域名，则返回长度为0的字符串切片。
func SplitDomainName(name *string) []string {
	lowered := strings.ToLower(strings.TrimSuffix(*name, "."))
	if lowered == "" {
		return []string{}
	}
	return strings.Split(lowered, ".")
}

// CountDomainNameLabels 返回域名的标签数量。
func CountDomainNameLabels(name *string) int {
	if len(*name) == 0 || *name == "." {
		return 0
	}
	labelNum := 0
	nameLen := len(*name)
	if (*name)[nameLen-1] == '.' {
		nameLen--
	}
	for i := 0; i < nameLen; i++ {
		if (*name)[i] == '.' {
			labelNum++
		}
	}
	return labelNum + 1
}

// EncodeDomainName 编码域名，其接受字符串，并返回编码后的字节切片。
// 可以接收绝对域名及相对域名，生成的域名都会以'.'(0x00)结尾。
func EncodeDomainName(name *string) []byte {
	encodedLen := GetDomainNameWireLen(name)
	byteArray := make([]byte, encodedLen)

	// 根域名，返回0x00
	if encodedLen == 1 {
		byteArray[0] = 0x00
		return byteArray
	}

	labelLength := 0
	for index := range *name {
		if (*name)[index] == '.' {
			byteArray[index-labelLength] = byte(labelLength)
			copy(byteArray[index-labelLength+1:], (*name)[index-labelLength:index])
			labelLength = 0
		} else {
			labelLength++
		}
	}
	if labelLength != 0 {
		byteArray[encodedLen-labelLength-2] = byte(labelLength)
		copy(byteArray[encodedLen-labelLength-1:], (*name)[len(*name)-labelLength:])
	}
	return byteArray
}

// EncodeDomainNameToBuffer 将域名编码到字节切片中。
//   - 其接收参数为 域名字符串 和 字节切片，
//   - 返回值为 编码后长度 及 报错信息。
//
// 如果出现错误，返回 -1, 及 相应报错 。
func EncodeDomainNameToBuffer(name *string, buffer []byte) (int, error) {
	encodedLen := GetDomainNameWireLen(name)
	if len(buffer) < encodedLen {
		return -1, fmt.Errorf(
			"function EncodeDomainNameToBuffer failed: buffer is too small, require %d byte size, but got %d",
			encodedLen, len(buffer))
	}

	if encodedLen == 1 {
		buffer[0] = 0x00
		return 1, nil
	}

	labelLength := 0
	for index := range *name {
		if (*name)[index] == '.' {
			buffer[index-labelLength] = byte(labelLength)
			copy(buffer[index-labelLength+1:], (*name)[index-labelLength:index])
			labelLength = 0
		} else {
			labelLength++
		}
	}
	if labelLength != 0 {
		buffer[encodedLen-labelLength-2] = byte(labelLength)
		copy(buffer[encodedLen-labelLength-1:], (*name)[len(*name)-labelLength:])
	}
	return encodedLen, nil
}

// NamePointerFlag 为域名压缩指针的标志字节。
const NamePointerFlag = 0xC0

// DecodeDomainNameFromBuffer 从 DNS 报文中解码域名。
//   - 其接收参数为 DNS 报文 和 域名的偏移量，
//   - 返回值为 解码后的域名, 解码后的偏移量 及 报错信息。
//
// 如果出现错误，返回空字符串，-1 及 相应报错 。
func DecodeDomainNameFromBuffer(data []byte, offset int) (string, int, error) {
	name := make([]byte, 0, 32)
	nameLength := 0
	dataLength := len(data)

	if dataLength < offset+1 {
		return "", -1, fmt.Errorf(
			"function DecodeDomainNameFromBuffer failed: buffer is too small, require %d byte size, but got %d",
			offset+1, dataLength)
	}

	for ; data[offset+nameLength] != 0x00; nameLength++ {
		labelLength := int(data[offset+nameLength])
		if labelLength >= NamePointerFlag {
			// 指针指向其他位置
			if dataLength < offset+nameLength+2 {
				return "", -1, fmt.Errorf(
					"function DecodeDomainNameFromBuffer failed: name pointer at %d is truncated",
					offset+nameLength)
			}
			pointer := int(data[offset+nameLength])<<8 + int(data[offset+nameLength+1])
			pointer &= 0x3FFF
			if pointer >= offset+nameLength {
				return "", -1, fmt.Errorf(
					"function DecodeDomainNameFromBuffer failed: name pointer %d is not backward", pointer)
			}
			decodedName, _, err := DecodeDomainNameFromBuffer(data, pointer)
			if err != nil {
				return "", -1, err
			}
			name = append(name, []byte(decodedName)...)
			return string(name), offset + nameLength + 2, nil
		}

		if dataLength < offset+nameLength+labelLength+1 {
			return "", -1, fmt.Errorf(
				"function DecodeDomainNameFromBuffer failed: buffer is too small, require %d byte size, but got %d",
				offset+nameLength+1+labelLength, dataLength)
		}

		name = append(name, data[offset+nameLength+1:offset+nameLength+1+labelLength]...)
		name = append(name, '.')
		nameLength += labelLength
	}
	// 去掉最后的'.'
	if nameLength != 0 {
		name = name[:len(name)-1]
	} else {
		return ".", offset + 1, nil
	}
	return string(name), offset + nameLength + 1, nil
}

// GetCharacterStrWireLen 返回字符串的 编码格式长度。
func GetCharacterStrWireLen(cStr *string) int {
	strLen := len(*cStr)
	if strLen == 0 {
		return 1
	}

	frags := (strLen + 254) / 255
	return strLen + frags
}

// EncodeCharacterStr 编码字符串，其接受字符串，并返回编码后的字节切片。
func EncodeCharacterStr(cStr *string) []byte {
	strLen := len(*cStr)
	if strLen == 0 {
		return []byte{0x00}
	}

	encodedLen := GetCharacterStrWireLen(cStr)
	byteArray := make([]byte, encodedLen)

	rawTvlr := 0
	enTvlr := 0
	for rawTvlr+255 < strLen {
		byteArray[enTvlr] = 255
		copy(byteArray[enTvlr+1:], (*cStr)[rawTvlr:rawTvlr+255])
		rawTvlr += 255
		enTvlr += 256
	}
	if rawTvlr < strLen {
		byteArray[enTvlr] = byte(strLen - rawTvlr)
		copy(byteArray[enTvlr+1:], (*cStr)[rawTvlr:])
	}
	return byteArray
}

// EncodeCharacterStrToBuffer 将字符串编码到字节切片中。
//   - 其接收参数为 字符串 和 字节切片，
//   - 返回值为 编码后长度 及 报错信息。
func EncodeCharacterStrToBuffer(cStr *string, buffer []byte) (int, error) {
	encodedLen := GetCharacterStrWireLen(cStr)
	if len(buffer) < encodedLen {
		return -1, fmt.Errorf(
			"function EncodeCharacterStrToBuffer failed: buffer is too small, require %d byte size, but got %d",
			encodedLen, len(buffer))
	}

	strLen := len(*cStr)
	if strLen == 0 {
		buffer[0] = 0x00
		return 1, nil
	}

	rawTvlr := 0
	enTvlr := 0
	for rawTvlr+255 < strLen {
		buffer[enTvlr] = 255
		copy(buffer[enTvlr+1:], (*cStr)[rawTvlr:rawTvlr+255])
		rawTvlr += 255
		enTvlr += 256
	}
	if rawTvlr < strLen {
		buffer[enTvlr] = byte(strLen - rawTvlr)
		copy(buffer[enTvlr+1:], (*cStr)[rawTvlr:])
	}
	return encodedLen, nil
}

// DecodeCharacterStr 解码字符串，其接受字节切片，并返回解码后字符串。
func DecodeCharacterStr(data []byte) string {
	dLen := len(data)
	if dLen <= 1 {
		return ""
	}

	rstBytes := make([]byte, dLen)

	rawTvlr := 0
	deTvlr := 0
	for rawTvlr < dLen {
		strLen := int(data[rawTvlr])
		if rawTvlr+1+strLen > dLen {
			strLen = dLen - rawTvlr - 1
		}
		copy(rstBytes[deTvlr:], data[rawTvlr+1:rawTvlr+strLen+1])
		rawTvlr += strLen + 1
		deTvlr += strLen
	}
	return string(rstBytes[:deTvlr])
}

// CanonicalizeDomainName 返回域名的规范形式：小写的绝对域名。
// DNSSEC 签名将域名的规范形式作为签名输入，
// 详细内容请参阅 RFC 4034 6.1. Canonical DNS Name Order。
func CanonicalizeDomainName(name *string) string {
	if len(*name) == 0 || (*name)[0] == '.' {
		return "."
	}
	lowered := strings.ToLower(*name)
	if lowered[len(lowered)-1] != '.' {
		lowered += "."
	}
	return lowered
}

// CanonicalSortRRSet 对 RRSet 进行规范化排序。
// RRSet 内的资源记录按 RDATA 的编码字节序升序排列，
// 详细内容请参阅 RFC 4034 6.3. Canonical RR Ordering within an RRset。
func CanonicalSortRRSet(rrSet []DNSResourceRecord) {
	sort.SliceStable(rrSet, func(i, j int) bool {
		rdataBytesI := rrSet[i].RData.Encode()
		rdataBytesJ := rrSet[j].RData.Encode()
		return string(rdataBytesI) < string(rdataBytesJ)
	})
}

// CanonicalizeRRSet 返回 RRSet 的规范形式：
// 域名规范化（小写、绝对）后按 RDATA 编码字节序排序的副本。
// 原 RRSet 不会被修改。
func CanonicalizeRRSet(rrSet []DNSResourceRecord) []DNSResourceRecord {
	canonical := make([]DNSResourceRecord, len(rrSet))
	copy(canonical, rrSet)
	for i := range canonical {
		canonical[i].Name = CanonicalizeDomainName(&canonical[i].Name)
	}
	CanonicalSortRRSet(canonical)
	return canonical
}

// CompressDNSMessage 对编码后的 DNS 消息进行域名压缩。
// 压缩后的消息与原消息语义等价，但所有重复出现的域名会被替换为压缩指针。
func CompressDNSMessage(msg []byte) ([]byte, error) {
	if len(msg) < 12 {
		return nil, fmt.Errorf("function CompressDNSMessage failed: message length %d is less than header size 12", len(msg))
	}
	cMsg := make([]byte, 0, len(msg))
	// 从头部字段提取信息
	nQD := binary.BigEndian.Uint16(msg[4:6])
	nAN := binary.BigEndian.Uint16(msg[6:8])
	nNS := binary.BigEndian.Uint16(msg[8:10])
	nAR := binary.BigEndian.Uint16(msg[10:12])

	cMsg = append(cMsg, msg[:12]...)
	cOffset, mOffset := 12, 12

	nameMap := make(map[string]int)

	cFunc := func() error {
		name, nOffset, err := DecodeDomainNameFromBuffer(msg, mOffset)
		if err != nil {
			return fmt.Errorf("function CompressDNSMessage failed: %s", err)
		}
		nLen := nOffset - mOffset
		name = CanonicalizeDomainName(&name)
		if _, ok := nameMap[name]; !ok {
			nameMap[name] = cOffset
			cMsg = append(cMsg, msg[mOffset:mOffset+nLen]...)
			cOffset += nLen
			mOffset += nLen
		} else {
			ptr := 0xC000 | nameMap[name]
			cMsg = append(cMsg, byte(ptr>>8), byte(ptr&0xFF))
			cOffset += 2
			mOffset += nLen
		}
		return nil
	}

	// 处理查询部分
	for i := 0; i < int(nQD); i++ {
		// 压缩域名
		if err := cFunc(); err != nil {
			return cMsg, err
		}
		// 处理其他字段
		cMsg = append(cMsg, msg[mOffset:mOffset+4]...)

		cOffset += 4
		mOffset += 4
	}
	// 处理其他部分
	for i := 0; i < int(nAN)+int(nNS)+int(nAR); i++ {
		err := cFunc()
		if err != nil {
			return cMsg, err
		}
		// 处理其他字段
		rdlen := binary.BigEndian.Uint16(msg[mOffset+8 : mOffset+10])
		cMsg = append(cMsg, msg[mOffset:mOffset+10+int(rdlen)]...)
		cOffset += 10 + int(rdlen)
		mOffset += 10 + int(rdlen)
	}

	return cMsg, nil
}
