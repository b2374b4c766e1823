// Copyright 2024 TochusC AOSP Lab. All rights reserved.

// compress_test.go 文件定义了对 compress.go 文件的测试函数。
package resource

import (
	"errors"
	"testing"
)

// 测试字符串的片段切分。
func TestSplitString(t *testing.T) {
	parts := SplitString("https://example.com")
	// "https" | "://" | "example" | "." | "com"
	if len(parts) != 5 {
		t.Fatalf("function SplitString() failed: got %d parts: %v", len(parts), parts)
	}
	if !parts[0].IsWord || parts[0].Str != "https" {
		t.Errorf("function SplitString() failed: part#0 = %v", parts[0])
	}
	if !parts[1].IsWord || parts[1].Str != "://" {
		t.Errorf("function SplitString() failed: \"://\" not promoted: %v", parts[1])
	}
	if parts[3].IsWord || parts[3].Str != "." {
		t.Errorf("function SplitString() failed: part#3 = %v", parts[3])
	}
	// "com" 长度恰为 3，应当是单词
	if !parts[4].IsWord || parts[4].Str != "com" {
		t.Errorf("function SplitString() failed: part#4 = %v", parts[4])
	}

	// 长度不足 3 的单词片段应被降级
	parts = SplitString("ab.cd")
	for _, part := range parts {
		if part.IsWord {
			t.Errorf("function SplitString() failed: short run promoted: %v", part)
		}
	}
}

// 测试符号表的收录上限。
func TestSymbolsCap(t *testing.T) {
	sym := NewSymbols()
	for i := 0; i < 200; i++ {
		sym.Add(string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + "word" + string(rune('0'+i%10)) + string(rune('0'+(i/10)%10)))
	}
	if sym.Count() > MaxSymbols {
		t.Errorf("Symbols table exceeded cap: %d", sym.Count())
	}
}

// 测试字符串的压缩与解压往返。
func TestWriteReadString(t *testing.T) {
	sym := NewSymbols()
	str := "https://example.com/path"
	sym.AddString(str)

	buffer := make([]byte, sym.SizeString(str))
	n, err := sym.WriteString(buffer, str)
	if err != nil {
		t.Fatalf("method WriteString() failed:\n%s", err)
	}
	if n != len(buffer) {
		t.Errorf("method WriteString() wrote %d bytes, SizeString() = %d", n, len(buffer))
	}
	// 压缩后应当短于原文
	if n >= len(str) {
		t.Errorf("method WriteString() did not compress: %d >= %d", n, len(str))
	}

	decoded, offset, err := sym.ReadString(buffer, 0)
	if err != nil {
		t.Fatalf("method ReadString() failed:\n%s", err)
	}
	if decoded != str {
		t.Errorf("string round trip failed:\ngot:%q\nexpected:%q", decoded, str)
	}
	if offset != len(buffer) {
		t.Errorf("method ReadString() offset = %d, want %d", offset, len(buffer))
	}
}

// 测试未收录单词的字面量直通。
func TestWriteStringLiteral(t *testing.T) {
	sym := NewSymbols()
	str := "plain words only"
	buffer := make([]byte, sym.SizeString(str))
	if _, err := sym.WriteString(buffer, str); err != nil {
		t.Fatalf("method WriteString() failed:\n%s", err)
	}
	decoded, _, err := sym.ReadString(buffer, 0)
	if err != nil {
		t.Fatalf("method ReadString() failed:\n%s", err)
	}
	if decoded != str {
		t.Errorf("literal round trip failed:\ngot:%q\nexpected:%q", decoded, str)
	}
}

// 测试非法符号索引的拒绝。
func TestReadStringBadSymbolIndex(t *testing.T) {
	sym := NewSymbols()
	// 长度 1，内容为指向空表的索引 0
	buffer := []byte{0x01, 0x80}
	_, _, err := sym.ReadString(buffer, 0)
	if !errors.Is(err, ErrBadSymbolIndex) {
		t.Errorf("method ReadString() failed: expected ErrBadSymbolIndex, got %v", err)
	}
}

// 测试非可打印字节的拒绝。
func TestReadStringNonPrintable(t *testing.T) {
	sym := NewSymbols()
	buffer := []byte{0x01, 0x7F}
	_, _, err := sym.ReadString(buffer, 0)
	if !errors.Is(err, ErrNonPrintable) {
		t.Errorf("method ReadString() failed: expected ErrNonPrintable, got %v", err)
	}

	// TAB 允许出现
	buffer = []byte{0x01, 0x09}
	decoded, _, err := sym.ReadString(buffer, 0)
	if err != nil || decoded != "\t" {
		t.Errorf("method ReadString() failed on TAB: %q, %v", decoded, err)
	}
}

// 测试解压超限的拒绝。
func TestReadStringTooLarge(t *testing.T) {
	sym := NewSymbols()
	// 一个 32 字节的单词，索引引用 9 次即超出 255 字节
	sym.Add("abcdefghijklmnopqrstuvwxyz012345")
	buffer := make([]byte, 10)
	buffer[0] = 9
	for i := 1; i <= 9; i++ {
		buffer[i] = 0x80
	}
	_, _, err := sym.ReadString(buffer, 0)
	if !errors.Is(err, ErrStringTooLarge) {
		t.Errorf("method ReadString() failed: expected ErrStringTooLarge, got %v", err)
	}
}

// 测试任意可打印字符串在自建符号表下的往返。
func TestCompressionRoundTripProperty(t *testing.T) {
	samples := []string{
		"",
		".",
		"a",
		"hns:tor",
		"magnet:?xt=urn:btih:deadbeef",
		"some-long_identifier with spaces and https://urls.example/paths",
		"\ttabs\nand\rnewlines allowed",
	}
	for _, sample := range samples {
		sym := NewSymbols()
		sym.AddString(sample)
		buffer := make([]byte, sym.SizeString(sample))
		if _, err := sym.WriteString(buffer, sample); err != nil {
			t.Fatalf("method WriteString(%q) failed:\n%s", sample, err)
		}
		decoded, _, err := sym.ReadString(buffer, 0)
		if err != nil {
			t.Fatalf("method ReadString(%q) failed:\n%s", sample, err)
		}
		if decoded != sample {
			t.Errorf("round trip failed:\ngot:%q\nexpected:%q", decoded, sample)
		}
	}
}
