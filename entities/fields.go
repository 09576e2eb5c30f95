package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

// field 把一个或多个组码绑定到实体字段上，读写共用同一张表
type field struct {
	codes []int
	since core.AcadVersion
	cond  func() bool
	apply func(p core.CodePair) error
	emit  func() []core.CodePair
	// check 在写出任何组码之前校验取值
	check func() error
	// finish 在实体读完后执行一次，返回因轴长度不一致被丢弃的坐标数
	finish func() int
}

// from 只在 v 及之后的版本写出
func (f field) from(v core.AcadVersion) field {
	f.since = v
	return f
}

// when 满足条件才写出
func (f field) when(cond func() bool) field {
	f.cond = cond
	return f
}

func (f field) matches(code int) bool {
	for _, c := range f.codes {
		if c == code {
			return true
		}
	}
	return false
}

type fieldTable []field

// apply 找到绑定该组码的字段并赋值，没有则返回 false
func (t fieldTable) apply(p core.CodePair) (bool, error) {
	for _, f := range t {
		if f.apply != nil && f.matches(p.Code) {
			return true, f.apply(p)
		}
	}
	return false, nil
}

func (f field) active(version core.AcadVersion) bool {
	return version >= f.since && (f.cond == nil || f.cond())
}

func (t fieldTable) write(version core.AcadVersion, out core.Sink) error {
	for _, f := range t {
		if f.check != nil && f.active(version) {
			if err := f.check(); err != nil {
				return err
			}
		}
	}
	for _, f := range t {
		if !f.active(version) {
			continue
		}
		for _, p := range f.emit() {
			if err := out.WritePair(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t fieldTable) finish() (dropped int) {
	for _, f := range t {
		if f.finish != nil {
			dropped += f.finish()
		}
	}
	return dropped
}

func marker(name string) field {
	return field{emit: func() []core.CodePair { return []core.CodePair{core.NewString(100, name)} }}
}

// writeOnly 读取时忽略的派生值，例如顶点数量
func writeOnly(value func() core.CodePair) field {
	return field{emit: func() []core.CodePair { return []core.CodePair{value()} }}
}

func stringField(code int, v *string) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = p.AsString()
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewString(code, *v)} },
	}
}

func floatField(code int, v *float64) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = p.AsFloat()
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewFloat(code, *v)} },
	}
}

func shortField(code int, v *int16) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = p.AsShort()
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewShort(code, *v)} },
	}
}

func intField(code int, v *int32) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = p.AsInt()
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewInt(code, *v)} },
	}
}

// boolField 290-299 写成 bool，其它组码写成 0/1 的 short
func boolField(code int, v *bool) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = p.AsBool()
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{boolPair(code, *v)} },
	}
}

func boolPair(code int, b bool) core.CodePair {
	if core.ExpectedType(code) == core.TypeBool {
		return core.NewBool(code, b)
	}
	if b {
		return core.NewShort(code, 1)
	}
	return core.NewShort(code, 0)
}

func handleField(code int, v *core.Handle) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = p.AsHandle()
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewString(code, v.String())} },
	}
}

func colorField(code int, v *core.Color) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) error {
			c, err := p.AsShort()
			*v = core.Color(c)
			return err
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewShort(code, int16(*v))} },
	}
}

func enumField[T enum16](code int, v *T, name string) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) (err error) {
			*v, err = decodeEnum[T](p, name)
			return
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewShort(code, int16(*v))} },
	}
}

// pointField 绑定 code, code+10, code+20 三个坐标
func pointField(code int, v *core.Point) field {
	return field{
		codes: []int{code, code + 10, code + 20},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err != nil {
				return err
			}
			switch p.Code {
			case code:
				v.X = f
			case code + 10:
				v.Y = f
			default:
				v.Z = f
			}
			return nil
		},
		emit: func() []core.CodePair {
			return []core.CodePair{core.NewFloat(code, v.X), core.NewFloat(code+10, v.Y), core.NewFloat(code+20, v.Z)}
		},
	}
}

// point2Field 只有 X/Y 两个分量
func point2Field(code int, v *core.Point) field {
	return field{
		codes: []int{code, code + 10},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err != nil {
				return err
			}
			if p.Code == code {
				v.X = f
			} else {
				v.Y = f
			}
			return nil
		},
		emit: func() []core.CodePair {
			return []core.CodePair{core.NewFloat(code, v.X), core.NewFloat(code+10, v.Y)}
		},
	}
}

func vectorField(code int, v *core.Vector) field {
	return field{
		codes: []int{code, code + 10, code + 20},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err != nil {
				return err
			}
			switch p.Code {
			case code:
				v.X = f
			case code + 10:
				v.Y = f
			default:
				v.Z = f
			}
			return nil
		},
		emit: func() []core.CodePair {
			return []core.CodePair{core.NewFloat(code, v.X), core.NewFloat(code+10, v.Y), core.NewFloat(code+20, v.Z)}
		},
	}
}

func floatsField(code int, v *[]float64) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err == nil {
				*v = append(*v, f)
			}
			return err
		},
		emit: func() []core.CodePair {
			pairs := make([]core.CodePair, 0, len(*v))
			for _, f := range *v {
				pairs = append(pairs, core.NewFloat(code, f))
			}
			return pairs
		},
	}
}

func handlesField(code int, v *[]core.Handle) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) error {
			h, err := p.AsHandle()
			if err == nil {
				*v = append(*v, h)
			}
			return err
		},
		emit: func() []core.CodePair {
			pairs := make([]core.CodePair, 0, len(*v))
			for _, h := range *v {
				pairs = append(pairs, core.NewString(code, h.String()))
			}
			return pairs
		},
	}
}

// axes 平行坐标累加器，只在单个实体解析期间存在
type axes struct {
	x, y, z []float64
}

func (a *axes) add(axis int, f float64) {
	switch axis {
	case 0:
		a.x = append(a.x, f)
	case 1:
		a.y = append(a.y, f)
	default:
		a.z = append(a.z, f)
	}
}

// pointsField 点列表在文件中以 code/code+10/code+20 交错出现，
// 读取时按轴分别累加，实体结束后再合并
func pointsField(code int, v *[]core.Point) field {
	acc := &axes{}
	return field{
		codes: []int{code, code + 10, code + 20},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err == nil {
				acc.add((p.Code-code)/10, f)
			}
			return err
		},
		emit: func() []core.CodePair {
			pairs := make([]core.CodePair, 0, 3*len(*v))
			for _, pt := range *v {
				pairs = append(pairs, core.NewFloat(code, pt.X), core.NewFloat(code+10, pt.Y), core.NewFloat(code+20, pt.Z))
			}
			return pairs
		},
		finish: func() int {
			pts, dropped := AssemblePoints(acc.x, acc.y, acc.z)
			*v = pts
			*acc = axes{}
			return dropped
		},
	}
}

// points2Field 二维点列表，Z 恒为 0
func points2Field(code int, v *[]core.Point) field {
	acc := &axes{}
	return field{
		codes: []int{code, code + 10},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err == nil {
				acc.add((p.Code-code)/10, f)
			}
			return err
		},
		emit: func() []core.CodePair {
			pairs := make([]core.CodePair, 0, 2*len(*v))
			for _, pt := range *v {
				pairs = append(pairs, core.NewFloat(code, pt.X), core.NewFloat(code+10, pt.Y))
			}
			return pairs
		},
		finish: func() int {
			pts, dropped := AssemblePoints(acc.x, acc.y, nil)
			*v = pts
			*acc = axes{}
			return dropped
		},
	}
}

func vectorsField(code int, v *[]core.Vector) field {
	acc := &axes{}
	return field{
		codes: []int{code, code + 10, code + 20},
		apply: func(p core.CodePair) error {
			f, err := p.AsFloat()
			if err == nil {
				acc.add((p.Code-code)/10, f)
			}
			return err
		},
		emit: func() []core.CodePair {
			pairs := make([]core.CodePair, 0, 3*len(*v))
			for _, d := range *v {
				pairs = append(pairs, core.NewFloat(code, d.X), core.NewFloat(code+10, d.Y), core.NewFloat(code+20, d.Z))
			}
			return pairs
		},
		finish: func() int {
			vs, dropped := AssembleVectors(acc.x, acc.y, acc.z)
			*v = vs
			*acc = axes{}
			return dropped
		},
	}
}

// interleave 把几个列表字段按元素交错写出，例如 MLINE 的 11/12/13
func interleave(fields ...field) field {
	var codes []int
	for _, f := range fields {
		codes = append(codes, f.codes...)
	}
	return field{
		codes: codes,
		apply: func(p core.CodePair) error {
			for _, f := range fields {
				if f.matches(p.Code) {
					return f.apply(p)
				}
			}
			return nil
		},
		emit: func() []core.CodePair {
			groups := make([][]core.CodePair, len(fields))
			for i, f := range fields {
				groups[i] = f.emit()
			}
			var pairs []core.CodePair
			for pos := 0; ; pos++ {
				wrote := false
				for i, g := range groups {
					n := len(fields[i].codes)
					if pos*n < len(g) {
						pairs = append(pairs, g[pos*n:pos*n+n]...)
						wrote = true
					}
				}
				if !wrote {
					return pairs
				}
			}
		},
		finish: func() int {
			dropped := 0
			for _, f := range fields {
				if f.finish != nil {
					dropped += f.finish()
				}
			}
			return dropped
		},
	}
}
