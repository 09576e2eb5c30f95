package entities

import (
	"strings"
	"unicode/utf8"

	"github.com/zooyer/dxf-codec/core"
)

const (
	mtextMarker = "AcDbMText"
	// 单个组码 1 或 3 的最大字节数
	mtextChunkSize = 250
)

// FullText 组码 3 的各段加上组码 1 的结尾
func (m *MText) FullText() string {
	return strings.Join(m.ExtendedText, "") + m.Text
}

// splitChunks 按字节切分，不拆开多字节字符
func splitChunks(s string, size int) []string {
	var chunks []string
	for len(s) > size {
		n := size
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		chunks = append(chunks, s[:n])
		s = s[n:]
	}
	return append(chunks, s)
}

// mtextTextField 超长的文本拆成多段组码 3，最后一段用组码 1
func mtextTextField(m *MText) field {
	return field{
		codes: []int{3, 1},
		apply: func(p core.CodePair) error {
			s, err := p.AsString()
			if err != nil {
				return err
			}
			if p.Code == 3 {
				m.ExtendedText = append(m.ExtendedText, s)
			} else {
				m.Text = s
			}
			return nil
		},
		emit: func() []core.CodePair {
			var pairs []core.CodePair
			for _, s := range m.ExtendedText {
				for _, c := range splitChunks(s, mtextChunkSize) {
					pairs = append(pairs, core.NewString(3, c))
				}
			}
			chunks := splitChunks(m.Text, mtextChunkSize)
			for _, c := range chunks[:len(chunks)-1] {
				pairs = append(pairs, core.NewString(3, c))
			}
			return append(pairs, core.NewString(1, chunks[len(chunks)-1]))
		},
	}
}

// mtextState 组码 75 出现后，组码 50 不再是旋转角，
// 第一次是分栏数，之后每次追加一个栏高。
// AcDbMText 之前的 48/420/430 属于公共字段
type mtextState struct {
	text   *MText
	common *Common

	lastMarker string
	columns    bool
	countRead  bool
}

func (s *mtextState) claim(p core.CodePair) (bool, error) {
	var err error
	m := s.text
	if s.lastMarker != mtextMarker {
		switch p.Code {
		case 100:
			// 只记录，不占用
			s.lastMarker, err = p.AsString()
			return false, err
		case 48, 420, 430:
			return true, s.common.apply(p, nil)
		}
		return false, nil
	}
	switch p.Code {
	case 50:
		var f float64
		if f, err = p.AsFloat(); err != nil {
			break
		}
		switch {
		case !s.columns:
			m.RotationAngle = f
		case !s.countRead:
			m.ColumnCount = int32(f)
			s.countRead = true
		default:
			m.ColumnHeights = append(m.ColumnHeights, f)
		}
	case 75:
		m.ColumnType, err = p.AsShort()
		s.columns = true
	case 76:
		var n int16
		n, err = p.AsShort()
		m.ColumnCount = int32(n)
	case 78:
		m.IsColumnFlowReversed, err = p.AsBool()
	case 79:
		m.IsColumnAutoHeight, err = p.AsBool()
	case 48:
		m.ColumnWidth, err = p.AsFloat()
	case 49:
		m.ColumnGutter, err = p.AsFloat()
	default:
		return false, nil
	}
	return true, err
}
