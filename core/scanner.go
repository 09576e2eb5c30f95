package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Scanner ASCII DXF 词法器，每两行构成一个组码对
type Scanner struct {
	reader *bufio.Reader
	line   int
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// NewScannerWithCodePage 按 IANA 代码页名称 (如 windows-1252) 解码，R2007 之前的文件不是 UTF-8
func NewScannerWithCodePage(r io.Reader, codePage string) (*Scanner, error) {
	if codePage == "" {
		return NewScanner(r), nil
	}
	enc, err := ianaindex.IANA.Encoding(codePage)
	if err != nil {
		return nil, fmt.Errorf("unknown code page %q: %w", codePage, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported code page %q", codePage)
	}
	return NewScanner(enc.NewDecoder().Reader(r)), nil
}

// Line 最近读取的行号
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Next() (CodePair, error) {
	// 1. 读取 Code 行
	codeLine, err := s.readLine()
	if err != nil {
		return CodePair{}, err
	}

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.Next()
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return CodePair{}, fmt.Errorf("line %d: invalid group code %q: %w", s.line, codeStr, err)
	}

	// 2. 读取 Value 行
	valueLine, err := s.readLine()
	if err != nil {
		// Value 行如果 EOF 也是不完整的
		if err == io.EOF {
			return CodePair{}, ErrUnexpectedEOF
		}
		return CodePair{}, err
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	return ParsePair(code, strings.TrimRight(valueLine, "\r\n"))
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			s.line++
			return line, nil
		}
		return "", err
	}
	s.line++
	return line, nil
}
