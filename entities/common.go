package entities

import (
	"io"
	"strings"

	"github.com/zooyer/dxf-codec/core"
)

// Common 存放所有实体通用的属性
type Common struct {
	Handle         core.Handle
	Owner          core.Handle
	IsInPaperSpace bool
	Layer          string
	LineTypeName   string
	Color          core.Color
	LineWeight     int16
	LineTypeScale  float64
	IsVisible      bool
	Color24Bit     int32
	ColorName      string
	Transparency   int32
	ExtensionData  []ExtensionGroup
	XData          []XData
}

// ExtensionGroup 102 组码包围的应用数据，如 {ACAD_REACTORS
type ExtensionGroup struct {
	Name  string
	Items []core.CodePair
}

// XData 扩展数据块，内容对本包不透明
type XData struct {
	Application string
	Items       []core.CodePair
}

func NewCommon() Common {
	return Common{
		Layer:         "0",
		LineTypeName:  "BYLAYER",
		Color:         core.ColorByLayer,
		LineTypeScale: 1,
		IsVisible:     true,
	}
}

// apply 处理公共组码，不认识的组码直接忽略
func (c *Common) apply(p core.CodePair, src *core.PutBack) (err error) {
	switch p.Code {
	case 5:
		c.Handle, err = p.AsHandle()
	case 330:
		c.Owner, err = p.AsHandle()
	case 67:
		c.IsInPaperSpace, err = p.AsBool()
	case 8:
		c.Layer, err = p.AsString()
	case 6:
		c.LineTypeName, err = p.AsString()
	case 62:
		var v int16
		v, err = p.AsShort()
		c.Color = core.Color(v)
	case 370:
		c.LineWeight, err = p.AsShort()
	case 48:
		c.LineTypeScale, err = p.AsFloat()
	case 60:
		// 0 可见，1 不可见
		var v int16
		v, err = p.AsShort()
		c.IsVisible = v == 0
	case 420:
		c.Color24Bit, err = p.AsInt()
	case 430:
		c.ColorName, err = p.AsString()
	case 440:
		c.Transparency, err = p.AsInt()
	case 102:
		err = c.readExtensionGroup(p, src)
	case 1001:
		err = c.readXData(p, src)
	}
	return err
}

func (c *Common) readExtensionGroup(start core.CodePair, src *core.PutBack) error {
	name, err := start.AsString()
	if err != nil {
		return err
	}
	if !strings.HasPrefix(name, "{") {
		return &core.UnexpectedPairError{Pair: start, Reason: "expected extension group start"}
	}
	group := ExtensionGroup{Name: name[1:]}
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return err
		}
		if p.Code == 102 {
			if s, _ := p.AsString(); s == "}" {
				break
			}
			return &core.UnexpectedPairError{Pair: p, Reason: "nested extension group"}
		}
		if p.IsMarker() {
			return &core.UnexpectedPairError{Pair: p, Reason: "unterminated extension group"}
		}
		group.Items = append(group.Items, p)
	}
	c.ExtensionData = append(c.ExtensionData, group)
	return nil
}

// readXData 1001 之后连续的 1000-1071 组码都属于同一个应用
func (c *Common) readXData(start core.CodePair, src *core.PutBack) error {
	app, err := start.AsString()
	if err != nil {
		return err
	}
	x := XData{Application: app}
	for {
		p, err := src.Next()
		if err != nil {
			// 扩展数据在文件末尾结束时交给调用方判断
			if err == io.EOF {
				break
			}
			return err
		}
		if p.Code < 1000 || p.Code == 1001 {
			src.PutBack(p)
			break
		}
		x.Items = append(x.Items, p)
	}
	c.XData = append(c.XData, x)
	return nil
}

func (c *Common) write(version core.AcadVersion, writeHandles bool, out core.Sink) error {
	var pairs []core.CodePair
	if writeHandles && c.Handle != 0 {
		pairs = append(pairs, core.NewString(5, c.Handle.String()))
	}
	if version >= core.R14 {
		for _, g := range c.ExtensionData {
			pairs = append(pairs, core.NewString(102, "{"+g.Name))
			pairs = append(pairs, g.Items...)
			pairs = append(pairs, core.NewString(102, "}"))
		}
	}
	if version >= core.R2000 && c.Owner != 0 {
		pairs = append(pairs, core.NewString(330, c.Owner.String()))
	}
	if version >= core.R13 {
		pairs = append(pairs, core.NewString(100, "AcDbEntity"))
	}
	if c.IsInPaperSpace {
		pairs = append(pairs, core.NewShort(67, 1))
	}
	pairs = append(pairs, core.NewString(8, c.Layer))
	if c.LineTypeName != "BYLAYER" {
		pairs = append(pairs, core.NewString(6, c.LineTypeName))
	}
	if c.Color != core.ColorByLayer {
		pairs = append(pairs, core.NewShort(62, int16(c.Color)))
	}
	if version >= core.R2000 && c.LineWeight != 0 {
		pairs = append(pairs, core.NewShort(370, c.LineWeight))
	}
	if version >= core.R13 {
		if c.LineTypeScale != 1 {
			pairs = append(pairs, core.NewFloat(48, c.LineTypeScale))
		}
		if !c.IsVisible {
			pairs = append(pairs, core.NewShort(60, 1))
		}
	}
	if version >= core.R2004 {
		if c.Color24Bit != 0 {
			pairs = append(pairs, core.NewInt(420, c.Color24Bit))
		}
		if c.ColorName != "" {
			pairs = append(pairs, core.NewString(430, c.ColorName))
		}
		if c.Transparency != 0 {
			pairs = append(pairs, core.NewInt(440, c.Transparency))
		}
	}
	for _, p := range pairs {
		if err := out.WritePair(p); err != nil {
			return err
		}
	}
	return nil
}

func (x XData) write(out core.Sink) error {
	if err := out.WritePair(core.NewString(1001, x.Application)); err != nil {
		return err
	}
	for _, p := range x.Items {
		if err := out.WritePair(p); err != nil {
			return err
		}
	}
	return nil
}
