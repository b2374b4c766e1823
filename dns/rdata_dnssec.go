// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// rdata_dnssec.go 文件定义了 DNSSEC 所使用的资源记录类型的 RDATA 实现，
// 包括 RRSIG、SIG、DNSKEY、DS、NSEC 及 EDNS0 的 OPT 伪记录。

package dns

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// RRSIG RDATA 编码格式
// 1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3
// 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |          Type Covered        |   Algorithm   |     Labels     |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                          Original TTL                         |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                      Signature Expiration                     |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |                      Signature Inception                      |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |            Key Tag           |                                /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+          Signer's Name        /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// /                            Signature                          /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

// DNSRDATARRSIG 结构体表示 RRSIG 类型的 DNS 资源记录的 RDATA 部分。
//
// RFC 4034 3.1 节 定义了 RRSIG 类型的 DNS 资源记录的 RDATA 部分的编码格式。
// 其 Type 值为 46。
type DNSRDATARRSIG struct {
	TypeCovered                        DNSType
	Algorithm                          DNSSECAlgorithm
	Labels                             uint8
	OriginalTTL, Expiration, Inception uint32
	KeyTag                             uint16
	SignerName                         string
	Signature                          []byte
}

func (rdata *DNSRDATARRSIG) Type() DNSType {
	return DNSRRTypeRRSIG
}

func (rdata *DNSRDATARRSIG) Size() int {
	return 18 + GetDomainNameWireLen(&rdata.SignerName) + len(rdata.Signature)
}

func (rdata *DNSRDATARRSIG) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Type Covered: ", rdata.TypeCovered,
		"\nAlgorithm: ", rdata.Algorithm,
		"\nLabels: ", rdata.Labels,
		"\nOriginal TTL: ", rdata.OriginalTTL,
		"\nExpiration: ", rdata.Expiration,
		"\nInception: ", rdata.Inception,
		"\nKey Tag: ", rdata.KeyTag,
		"\nSigner Name: ", rdata.SignerName,
		"\nSignature: ", rdata.Signature,
	)
}

func (rdata *DNSRDATARRSIG) Equal(rr DNSRRRDATA) bool {
	rrsig, ok := rr.(*DNSRDATARRSIG)
	if !ok {
		return false
	}
	return rdata.TypeCovered == rrsig.TypeCovered &&
		rdata.Algorithm == rrsig.Algorithm &&
		rdata.Labels == rrsig.Labels &&
		rdata.OriginalTTL == rrsig.OriginalTTL &&
		rdata.Expiration == rrsig.Expiration &&
		rdata.Inception == rrsig.Inception &&
		rdata.KeyTag == rrsig.KeyTag &&
		rdata.SignerName == rrsig.SignerName &&
		bytes.Equal(rdata.Signature, rrsig.Signature)
}

func (rdata *DNSRDATARRSIG) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATARRSIG Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATARRSIG) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATARRSIG EncodeToBuffer failed: buffer length %d is less than RRSIG RDATA size %d", len(buffer), rdata.Size())
	}
	binary.BigEndian.PutUint16(buffer, uint16(rdata.TypeCovered))
	buffer[2] = byte(rdata.Algorithm)
	buffer[3] = rdata.Labels
	binary.BigEndian.PutUint32(buffer[4:], rdata.OriginalTTL)
	binary.BigEndian.PutUint32(buffer[8:], rdata.Expiration)
	binary.BigEndian.PutUint32(buffer[12:], rdata.Inception)
	binary.BigEndian.PutUint16(buffer[16:], rdata.KeyTag)
	offset, err := EncodeDomainNameToBuffer(&rdata.SignerName, buffer[18:])
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATARRSIG EncodeToBuffer failed: encode Signer Name failed.\n%v", err)
	}
	copy(buffer[offset+18:], rdata.Signature)
	return rdata.Size(), nil
}

func (rdata *DNSRDATARRSIG) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	if rdLen < 18 {
		return -1, fmt.Errorf("method DNSRDATARRSIG DecodeFromBuffer failed: RRSIG RDATA size %d is less than 18", rdLen)
	}
	rdEnd := offset + rdLen
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATARRSIG DecodeFromBuffer failed: buffer length %d is less than offset %d + RRSIG RDATA size %d", len(buffer), offset, rdLen)
	}
	var err error
	rdata.TypeCovered = DNSType(binary.BigEndian.Uint16(buffer[offset:]))
	rdata.Algorithm = DNSSECAlgorithm(buffer[offset+2])
	rdata.Labels = buffer[offset+3]
	rdata.OriginalTTL = binary.BigEndian.Uint32(buffer[offset+4:])
	rdata.Expiration = binary.BigEndian.Uint32(buffer[offset+8:])
	rdata.Inception = binary.BigEndian.Uint32(buffer[offset+12:])
	rdata.KeyTag = binary.BigEndian.Uint16(buffer[offset+16:])
	rdata.SignerName, offset, err = DecodeDomainNameFromBuffer(buffer, offset+18)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATARRSIG DecodeFromBuffer failed: decode Signer Name failed.\n%v", err)
	}
	rdata.Signature = make([]byte, rdEnd-offset)
	copy(rdata.Signature, buffer[offset:rdEnd])
	return rdEnd, nil
}

// DNSRDATASIG 结构体表示 SIG 类型的 DNS 资源记录的 RDATA 部分。
// SIG 记录的 RDATA 部分与 RRSIG 记录完全相同，
// SIG(0) 事务签名（RFC 2931）即使用该记录类型，
// 其 Type Covered 字段为 0。
// 其 Type 值为 24。
type DNSRDATASIG struct {
	DNSRDATARRSIG
}

func (rdata *DNSRDATASIG) Type() DNSType {
	return DNSRRTypeSIG
}

func (rdata *DNSRDATASIG) Equal(rr DNSRRRDATA) bool {
	rrsig, ok := rr.(*DNSRDATASIG)
	if !ok {
		return false
	}
	return rdata.DNSRDATARRSIG.Equal(&rrsig.DNSRDATARRSIG)
}

// DNSKEY RDATA 编码格式
// 1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3
// 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |             Flags            |    Protocol   |    Algorithm   |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// /                           Public Key                          /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

// DNSRDATADNSKEY 结构体表示 DNSKEY 类型的 DNS 资源记录的 RDATA 部分。
// PublicKey 为密钥的原始字节形式（注意：不是Base64编码后的形式）。
//
// RFC 4034 2.1 节 定义了 DNSKEY 类型的 DNS 资源记录的 RDATA 部分的编码格式。
// 其 Type 值为 48。
type DNSRDATADNSKEY struct {
	Flags     DNSKEYFlag
	Protocol  DNSKEYProtocol
	Algorithm DNSSECAlgorithm
	PublicKey []byte
}

func (rdata *DNSRDATADNSKEY) Type() DNSType {
	return DNSRRTypeDNSKEY
}

func (rdata *DNSRDATADNSKEY) Size() int {
	return 4 + len(rdata.PublicKey)
}

func (rdata *DNSRDATADNSKEY) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Flags: ", rdata.Flags,
		"\nProtocol: ", rdata.Protocol,
		"\nAlgorithm: ", rdata.Algorithm,
		"\nPublic Key: ", rdata.PublicKey,
	)
}

func (rdata *DNSRDATADNSKEY) Equal(rr DNSRRRDATA) bool {
	rrkey, ok := rr.(*DNSRDATADNSKEY)
	if !ok {
		return false
	}
	return rdata.Flags == rrkey.Flags &&
		rdata.Protocol == rrkey.Protocol &&
		rdata.Algorithm == rrkey.Algorithm &&
		bytes.Equal(rdata.PublicKey, rrkey.PublicKey)
}

func (rdata *DNSRDATADNSKEY) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATADNSKEY Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATADNSKEY) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATADNSKEY EncodeToBuffer failed: buffer length %d is less than DNSKEY RDATA size %d", len(buffer), rdata.Size())
	}
	binary.BigEndian.PutUint16(buffer, uint16(rdata.Flags))
	buffer[2] = uint8(rdata.Protocol)
	buffer[3] = byte(rdata.Algorithm)
	copy(buffer[4:], rdata.PublicKey)
	return rdata.Size(), nil
}

func (rdata *DNSRDATADNSKEY) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen < 4 {
		return -1, fmt.Errorf("method DNSRDATADNSKEY DecodeFromBuffer failed: DNSKEY RDATA size %d is less than 4", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATADNSKEY DecodeFromBuffer failed: buffer length %d is less than offset %d + DNSKEY RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.Flags = DNSKEYFlag(binary.BigEndian.Uint16(buffer[offset:]))
	rdata.Protocol = DNSKEYProtocol(buffer[offset+2])
	rdata.Algorithm = DNSSECAlgorithm(buffer[offset+3])
	rdata.PublicKey = make([]byte, rdLen-4)
	copy(rdata.PublicKey, buffer[offset+4:rdEnd])
	return rdEnd, nil
}

// DS RDATA 编码格式
// 1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3
// 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// |           Key Tag            |   Algorithm   |   Digest Type  |
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// /                            Digest                             /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

// DNSRDATADS 结构体表示 DS 类型的 DNS 资源记录的 RDATA 部分。
//
// RFC 4034 5.1 节 定义了 DS 类型的 DNS 资源记录的 RDATA 部分的编码格式。
// 其 Type 值为 43。
type DNSRDATADS struct {
	KeyTag     uint16
	Algorithm  DNSSECAlgorithm
	DigestType DNSSECDigestType
	Digest     []byte
}

func (rdata *DNSRDATADS) Type() DNSType {
	return DNSRRTypeDS
}

func (rdata *DNSRDATADS) Size() int {
	return 4 + len(rdata.Digest)
}

func (rdata *DNSRDATADS) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Key Tag: ", rdata.KeyTag,
		"\nAlgorithm: ", rdata.Algorithm,
		"\nDigest Type: ", rdata.DigestType,
		"\nDigest: ", rdata.Digest,
	)
}

func (rdata *DNSRDATADS) Equal(rr DNSRRRDATA) bool {
	rrds, ok := rr.(*DNSRDATADS)
	if !ok {
		return false
	}
	return rdata.KeyTag == rrds.KeyTag &&
		rdata.Algorithm == rrds.Algorithm &&
		rdata.DigestType == rrds.DigestType &&
		bytes.Equal(rdata.Digest, rrds.Digest)
}

func (rdata *DNSRDATADS) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATADS Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATADS) EncodeToBuffer(buffer []byte) (int, error) {
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATADS EncodeToBuffer failed: buffer length %d is less than DS RDATA size %d", len(buffer), rdata.Size())
	}
	binary.BigEndian.PutUint16(buffer, rdata.KeyTag)
	buffer[2] = byte(rdata.Algorithm)
	buffer[3] = byte(rdata.DigestType)
	copy(buffer[4:], rdata.Digest)
	return rdata.Size(), nil
}

func (rdata *DNSRDATADS) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen < 4 {
		return -1, fmt.Errorf("method DNSRDATADS DecodeFromBuffer failed: DS RDATA size %d is less than 4", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATADS DecodeFromBuffer failed: buffer length %d is less than offset %d + DS RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.KeyTag = binary.BigEndian.Uint16(buffer[offset:])
	rdata.Algorithm = DNSSECAlgorithm(buffer[offset+2])
	rdata.DigestType = DNSSECDigestType(buffer[offset+3])
	rdata.Digest = make([]byte, rdLen-4)
	copy(rdata.Digest, buffer[offset+4:rdEnd])
	return rdEnd, nil
}

// NSEC RDATA 编码格式
// 1 1 1 1 1 1 1 1 1 1 2 2 2 2 2 2 2 2 2 2 3 3
// 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// /                       Next Domain Name                        /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
// /                        Type Bit Maps                          /
// +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+

// DNSRDATANSEC 结构体表示 NSEC 类型的 DNS 资源记录的 RDATA 部分。
// 其用于断言 Next Domain Name 与所有者名称之间不存在任何名称，
// 及所有者名称上只存在 Type Bit Maps 中列出的资源记录类型。
//
// RFC 4034 4.1 节 定义了 NSEC 类型的 DNS 资源记录的 RDATA 部分的编码格式。
// 其 Type 值为 47。
type DNSRDATANSEC struct {
	NextDomainName string
	// Type Bit Maps Field = ( Window Block # | Bitmap Length | Bitmap )+
	TypeBitMaps []DNSType
}

func (rdata *DNSRDATANSEC) Type() DNSType {
	return DNSRRTypeNSEC
}

func (rdata *DNSRDATANSEC) Size() int {
	return GetDomainNameWireLen(&rdata.NextDomainName) + len(EncodeTypeBitMaps(rdata.TypeBitMaps))
}

func (rdata *DNSRDATANSEC) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Next Domain Name: ", rdata.NextDomainName,
		"\nType Bit Maps: ", rdata.TypeBitMaps,
	)
}

func (rdata *DNSRDATANSEC) Equal(rr DNSRRRDATA) bool {
	rrnsec, ok := rr.(*DNSRDATANSEC)
	if !ok {
		return false
	}

	typeList := make([]int, 0, len(rdata.TypeBitMaps))
	for _, t := range rdata.TypeBitMaps {
		typeList = append(typeList, int(t))
	}
	sort.Ints(typeList)

	rrTypeList := make([]int, 0, len(rrnsec.TypeBitMaps))
	for _, t := range rrnsec.TypeBitMaps {
		rrTypeList = append(rrTypeList, int(t))
	}
	sort.Ints(rrTypeList)

	if len(typeList) != len(rrTypeList) {
		return false
	}
	for i := 0; i < len(typeList); i++ {
		if typeList[i] != rrTypeList[i] {
			return false
		}
	}

	return rdata.NextDomainName == rrnsec.NextDomainName
}

func (rdata *DNSRDATANSEC) Encode() []byte {
	nextDomainName := EncodeDomainName(&rdata.NextDomainName)
	typeBitMaps := EncodeTypeBitMaps(rdata.TypeBitMaps)
	bytesArray := make([]byte, len(nextDomainName)+len(typeBitMaps))
	copy(bytesArray, nextDomainName)
	copy(bytesArray[len(nextDomainName):], typeBitMaps)
	return bytesArray
}

func (rdata *DNSRDATANSEC) EncodeToBuffer(buffer []byte) (int, error) {
	encoded := rdata.Encode()
	if len(buffer) < len(encoded) {
		return -1, fmt.Errorf("method DNSRDATANSEC EncodeToBuffer failed: buffer length %d is less than NSEC RDATA size %d", len(buffer), len(encoded))
	}
	copy(buffer, encoded)
	return len(encoded), nil
}

func (rdata *DNSRDATANSEC) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	var err error
	var rdEnd = offset + rdLen
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATANSEC DecodeFromBuffer failed: buffer length %d is less than offset %d + NSEC RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.NextDomainName, offset, err = DecodeDomainNameFromBuffer(buffer, offset)
	if err != nil {
		return -1, fmt.Errorf("method DNSRDATANSEC DecodeFromBuffer failed: decode Next Domain Name failed.\n%v", err)
	}
	rdata.TypeBitMaps = DecodeTypeBitMaps(buffer[offset:rdEnd])
	return rdEnd, nil
}

// EncodeTypeBitMaps 将资源记录类型列表编码为 NSEC 的 Type Bit Maps 字段。
// Type Bit Maps Field = ( Window Block # | Bitmap Length | Bitmap )+
func EncodeTypeBitMaps(typeList []DNSType) []byte {
	var bytesArray []byte

	numericalList := make([]int, 0, len(typeList))
	for _, t := range typeList {
		numericalList = append(numericalList, int(t))
	}
	sort.Ints(numericalList)

	type bitMap struct {
		index  uint8
		length uint8
		bits   []byte
	}
	var typeBitMaps []bitMap

	tBitMap := bitMap{
		index:  0,
		length: 0,
		bits:   []byte{},
	}

	for _, t := range numericalList {
		if tBitMap.index < uint8(t/256) {
			if tBitMap.length > 0 {
				typeBitMaps = append(typeBitMaps, tBitMap)
			}
			tBitMap = bitMap{
				index:  uint8(t / 256),
				length: 0,
				bits:   []byte{},
			}
		}
		inWindow := t % 256
		z := inWindow / 8

		for len(tBitMap.bits) <= z {
			tBitMap.bits = append(tBitMap.bits, 0)
		}
		tBitMap.bits[z] |= 0x80 >> (inWindow % 8)

		if uint8(z+1) > tBitMap.length {
			tBitMap.length = uint8(z + 1)
		}
	}
	if tBitMap.length > 0 {
		typeBitMaps = append(typeBitMaps, tBitMap)
	}

	for _, t := range typeBitMaps {
		bytesArray = append(bytesArray, t.index)
		bytesArray = append(bytesArray, t.length)
		bytesArray = append(bytesArray, t.bits...)
	}

	return bytesArray
}

// DecodeTypeBitMaps 解码 NSEC 的 Type Bit Maps 字段为资源记录类型列表。
func DecodeTypeBitMaps(typeBitMaps []byte) []DNSType {
	var typeList []DNSType
	for i := 0; i+2 <= len(typeBitMaps); {
		index := int(typeBitMaps[i])
		length := int(typeBitMaps[i+1])
		if i+2+length > len(typeBitMaps) {
			break
		}
		for j := 0; j < length; j++ {
			for k := 0; k < 8; k++ {
				if typeBitMaps[i+2+j]&(0x80>>k) != 0 {
					typeList = append(typeList, DNSType(index*256+j*8+k))
				}
			}
		}
		i += 2 + length
	}
	return typeList
}

// OPT RDATA 编码格式
// +0 (MSB)                            +1 (LSB)
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
// |                          OPTION-CODE                          |
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
// |                         OPTION-LENGTH                         |
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
// /                          OPTION-DATA                          /
// +---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+

// DNSRDATAOPT 结构体表示 OPT 伪资源记录的 RDATA 部分。
// RFC 6891 定义了 EDNS0 的 OPT 伪资源记录，其 Type 值为 41。
type DNSRDATAOPT struct {
	OptionCode   uint16
	OptionLength uint16
	OptionData   []byte
}

func (rdata *DNSRDATAOPT) Type() DNSType {
	return DNSRRTypeOPT
}

func (rdata *DNSRDATAOPT) Size() int {
	if len(rdata.OptionData) == 0 && rdata.OptionCode == 0 && rdata.OptionLength == 0 {
		// 无选项的空 OPT RDATA
		return 0
	}
	return 4 + len(rdata.OptionData)
}

func (rdata *DNSRDATAOPT) String() string {
	return fmt.Sprint(
		"### RDATA Section ###\n",
		"Option Code: ", rdata.OptionCode,
		"\nOption Length: ", rdata.OptionLength,
		"\nOption Data: ", rdata.OptionData,
	)
}

func (rdata *DNSRDATAOPT) Equal(rr DNSRRRDATA) bool {
	rropt, ok := rr.(*DNSRDATAOPT)
	if !ok {
		return false
	}
	return rdata.OptionCode == rropt.OptionCode &&
		rdata.OptionLength == rropt.OptionLength &&
		bytes.Equal(rdata.OptionData, rropt.OptionData)
}

func (rdata *DNSRDATAOPT) Encode() []byte {
	bytesArray := make([]byte, rdata.Size())
	_, err := rdata.EncodeToBuffer(bytesArray)
	if err != nil {
		panic(fmt.Sprintf("method DNSRDATAOPT Encode failed:\n%v", err))
	}
	return bytesArray
}

func (rdata *DNSRDATAOPT) EncodeToBuffer(buffer []byte) (int, error) {
	if rdata.Size() == 0 {
		return 0, nil
	}
	if len(buffer) < rdata.Size() {
		return -1, fmt.Errorf("method DNSRDATAOPT EncodeToBuffer failed: buffer length %d is less than OPT RDATA size %d", len(buffer), rdata.Size())
	}
	binary.BigEndian.PutUint16(buffer, rdata.OptionCode)
	binary.BigEndian.PutUint16(buffer[2:], rdata.OptionLength)
	copy(buffer[4:], rdata.OptionData)
	return rdata.Size(), nil
}

func (rdata *DNSRDATAOPT) DecodeFromBuffer(buffer []byte, offset int, rdLen int) (int, error) {
	rdEnd := offset + rdLen
	if rdLen == 0 {
		return offset, nil
	}
	if rdLen < 4 {
		return -1, fmt.Errorf("method DNSRDATAOPT DecodeFromBuffer failed: OPT RDATA size %d is less than 4", rdLen)
	}
	if len(buffer) < rdEnd {
		return -1, fmt.Errorf("method DNSRDATAOPT DecodeFromBuffer failed: buffer length %d is less than offset %d + OPT RDATA size %d", len(buffer), offset, rdLen)
	}
	rdata.OptionCode = binary.BigEndian.Uint16(buffer[offset:])
	rdata.OptionLength = binary.BigEndian.Uint16(buffer[offset+2:])
	rdata.OptionData = make([]byte, rdLen-4)
	copy(rdata.OptionData, buffer[offset+4:rdEnd])
	return rdEnd, nil
}
