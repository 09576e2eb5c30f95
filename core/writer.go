package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Writer 以 ASCII DXF 格式输出组码对
type Writer struct {
	buf *bufio.Writer
	out io.Writer // 编码器在缓冲之前，每次写入都是完整的字符
}

func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{buf: buf, out: buf}
}

// NewWriterWithCodePage 输出时按代码页编码字符串
func NewWriterWithCodePage(w io.Writer, codePage string) (*Writer, error) {
	if codePage == "" {
		return NewWriter(w), nil
	}
	enc, err := ianaindex.IANA.Encoding(codePage)
	if err != nil {
		return nil, fmt.Errorf("unknown code page %q: %w", codePage, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported code page %q", codePage)
	}
	buf := bufio.NewWriter(w)
	return &Writer{buf: buf, out: enc.NewEncoder().Writer(buf)}, nil
}

func (w *Writer) WritePair(p CodePair) error {
	if s, ok := p.Value.(string); ok && strings.ContainsAny(s, "\r\n") {
		return &ValueError{Pair: p, Want: TypeString, Err: ErrLineBreak}
	}
	// 组码右对齐三位
	if _, err := fmt.Fprintf(w.out, "%3d\r\n%s\r\n", p.Code, p.ValueString()); err != nil {
		return err
	}
	return nil
}

func (w *Writer) Flush() error {
	return w.buf.Flush()
}
