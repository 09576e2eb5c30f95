package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

// 组码 70 的高位标志
const (
	dimFlagBlockReferenceOnly = 32
	dimFlagOrdinateX          = 64
	dimFlagUserLocation       = 128
)

// DimensionBase 五种尺寸标注共有的字段
type DimensionBase struct {
	Version                                   ObjectVersion
	BlockName                                 string
	DefinitionPoint1                          core.Point
	TextMidPoint                              core.Point
	DimensionType                             DimensionType
	IsBlockReferenceReferencedByThisBlockOnly bool
	IsOrdinateXType                           bool
	IsAtUserDefinedLocation                   bool
	AttachmentPoint                           AttachmentPoint
	TextLineSpacingStyle                      TextLineSpacingStyle
	TextLineSpacingFactor                     float64
	ActualMeasurement                         float64
	Text                                      string
	TextRotationAngle                         float64
	HorizontalDirectionAngle                  float64
	Normal                                    core.Vector
	DimensionStyleName                        string
}

func newDimensionBase() DimensionBase {
	return DimensionBase{
		AttachmentPoint:       AttachmentPointTopLeft,
		TextLineSpacingStyle:  TextLineSpacingStyleAtLeast,
		TextLineSpacingFactor: 1,
		Normal:                core.ZAxis,
		DimensionStyleName:    "STANDARD",
	}
}

// PackedType 把类型和三个标志合成组码 70 的值，不设置其它位
func (d *DimensionBase) PackedType() int16 {
	v := int16(d.DimensionType) & 0x0F
	if d.IsBlockReferenceReferencedByThisBlockOnly {
		v |= dimFlagBlockReferenceOnly
	}
	if d.IsOrdinateXType {
		v |= dimFlagOrdinateX
	}
	if d.IsAtUserDefinedLocation {
		v |= dimFlagUserLocation
	}
	return v
}

// SetPackedType 拆分组码 70：低 4 位是类型，32/64/128 是标志
func (d *DimensionBase) SetPackedType(v int16) error {
	return d.setPackedType(core.NewShort(70, v))
}

func (d *DimensionBase) setPackedType(p core.CodePair) error {
	v, err := p.AsShort()
	if err != nil {
		return err
	}
	t := DimensionType(v & 0x0F)
	if !t.IsValid() {
		return &core.EnumError{Pair: p, Enum: "DimensionType"}
	}
	d.DimensionType = t
	d.IsBlockReferenceReferencedByThisBlockOnly = v&dimFlagBlockReferenceOnly != 0
	d.IsOrdinateXType = v&dimFlagOrdinateX != 0
	d.IsAtUserDefinedLocation = v&dimFlagUserLocation != 0
	return nil
}

type RotatedDimension struct {
	DimensionBase
	InsertionPoint     core.Point
	DefinitionPoint2   core.Point
	DefinitionPoint3   core.Point
	RotationAngle      float64
	ExtensionLineAngle float64
}

type RadialDimension struct {
	DimensionBase
	DefinitionPoint2 core.Point
	LeaderLength     float64
}

type DiameterDimension struct {
	DimensionBase
	DefinitionPoint2 core.Point
	LeaderLength     float64
}

type AngularThreePointDimension struct {
	DimensionBase
	DefinitionPoint2 core.Point
	DefinitionPoint3 core.Point
	DefinitionPoint4 core.Point
	DefinitionPoint5 core.Point
}

type OrdinateDimension struct {
	DimensionBase
	DefinitionPoint2 core.Point
	DefinitionPoint3 core.Point
}

func NewRotatedDimension() *RotatedDimension {
	return &RotatedDimension{DimensionBase: newDimensionBase()}
}

func NewRadialDimension() *RadialDimension {
	return &RadialDimension{DimensionBase: newDimensionBase()}
}

func NewDiameterDimension() *DiameterDimension {
	return &DiameterDimension{DimensionBase: newDimensionBase()}
}

func NewAngularThreePointDimension() *AngularThreePointDimension {
	return &AngularThreePointDimension{DimensionBase: newDimensionBase()}
}

func NewOrdinateDimension() *OrdinateDimension {
	return &OrdinateDimension{DimensionBase: newDimensionBase()}
}

// commitDimension 根据子类标记创建具体的标注，沿用已缓存的公共部分
func commitDimension(subclassName string, base DimensionBase) EntityType {
	switch subclassName {
	case "AcDbAlignedDimension":
		return &RotatedDimension{DimensionBase: base}
	case "AcDbRadialDimension":
		return &RadialDimension{DimensionBase: base}
	case "AcDbDiametricDimension":
		return &DiameterDimension{DimensionBase: base}
	case "AcDb3PointAngularDimension":
		return &AngularThreePointDimension{DimensionBase: base}
	case "AcDbOrdinateDimension":
		return &OrdinateDimension{DimensionBase: base}
	}
	return nil
}

// dimensionBaseOf 取出标注的公共部分，不是标注返回 nil
func dimensionBaseOf(t EntityType) *DimensionBase {
	switch d := t.(type) {
	case *RotatedDimension:
		return &d.DimensionBase
	case *RadialDimension:
		return &d.DimensionBase
	case *DiameterDimension:
		return &d.DimensionBase
	case *AngularThreePointDimension:
		return &d.DimensionBase
	case *OrdinateDimension:
		return &d.DimensionBase
	}
	return nil
}

func dimensionBaseFields(d *DimensionBase) fieldTable {
	packed := field{
		codes: []int{70},
		apply: d.setPackedType,
		emit:  func() []core.CodePair { return []core.CodePair{core.NewShort(70, d.PackedType())} },
	}
	return fieldTable{
		subclass("AcDbDimension"),
		enumField(280, &d.Version, "ObjectVersion").from(core.R2010),
		stringField(2, &d.BlockName),
		pointField(10, &d.DefinitionPoint1),
		pointField(11, &d.TextMidPoint),
		packed,
		enumField(71, &d.AttachmentPoint, "AttachmentPoint").from(core.R2000),
		enumField(72, &d.TextLineSpacingStyle, "TextLineSpacingStyle").from(core.R2000),
		floatField(41, &d.TextLineSpacingFactor).from(core.R2000),
		floatField(42, &d.ActualMeasurement).from(core.R2000),
		stringField(1, &d.Text),
		floatField(53, &d.TextRotationAngle).from(core.R2000),
		floatField(51, &d.HorizontalDirectionAngle),
		vectorField(210, &d.Normal),
		stringField(3, &d.DimensionStyleName).from(core.R13),
	}
}

// dimensionFields 各标注子类自己的字段；旋转标注的两个子类标记只在 R13 之后写出，
// 其余子类的标记总是写出
func dimensionFields(t EntityType) fieldTable {
	switch d := t.(type) {
	case *RotatedDimension:
		return fieldTable{
			subclass("AcDbAlignedDimension"),
			pointField(12, &d.InsertionPoint),
			pointField(13, &d.DefinitionPoint2),
			pointField(14, &d.DefinitionPoint3),
			floatField(50, &d.RotationAngle),
			floatField(52, &d.ExtensionLineAngle),
			subclass("AcDbRotatedDimension"),
		}
	case *RadialDimension:
		return fieldTable{
			marker("AcDbRadialDimension"),
			pointField(15, &d.DefinitionPoint2),
			floatField(40, &d.LeaderLength),
		}
	case *DiameterDimension:
		return fieldTable{
			marker("AcDbDiametricDimension"),
			pointField(15, &d.DefinitionPoint2),
			floatField(40, &d.LeaderLength),
		}
	case *AngularThreePointDimension:
		return fieldTable{
			marker("AcDb3PointAngularDimension"),
			pointField(13, &d.DefinitionPoint2),
			pointField(14, &d.DefinitionPoint3),
			pointField(15, &d.DefinitionPoint4),
			pointField(16, &d.DefinitionPoint5),
		}
	case *OrdinateDimension:
		return fieldTable{
			marker("AcDbOrdinateDimension"),
			pointField(13, &d.DefinitionPoint2),
			pointField(14, &d.DefinitionPoint3),
		}
	}
	return nil
}

// dimPhase 标注解析的两个阶段：dimBuffering 与 dimCommitted
type dimPhase interface {
	step(p core.CodePair) (next dimPhase, claimed bool, err error)
}

// dimBuffering 还没见到子类标记，公共字段先缓存起来
type dimBuffering struct {
	base   *DimensionBase
	fields fieldTable
}

func newDimBuffering() *dimBuffering {
	base := newDimensionBase()
	return &dimBuffering{base: &base, fields: dimensionBaseFields(&base)}
}

func (b *dimBuffering) step(p core.CodePair) (dimPhase, bool, error) {
	if p.Code == 100 {
		name, err := p.AsString()
		if err != nil {
			return b, true, err
		}
		if dim := commitDimension(name, *b.base); dim != nil {
			return &dimCommitted{dim: dim, fields: dimensionFields(dim)}, true, nil
		}
		// AcDbDimension 等其它子类标记
		return b, true, nil
	}
	ok, err := b.fields.apply(p)
	return b, ok, err
}

// dimCommitted 已确定具体类型
type dimCommitted struct {
	dim    EntityType
	fields fieldTable
}

func (c *dimCommitted) step(p core.CodePair) (dimPhase, bool, error) {
	ok, err := c.fields.apply(p)
	return c, ok, err
}

// readDimension 读取一个 DIMENSION，子类始终没有确定时返回 nil
func readDimension(src *core.PutBack) (*Entity, error) {
	common := NewCommon()
	var phase dimPhase = newDimBuffering()
	for {
		p, err := src.NextInEntity()
		if err != nil {
			return nil, err
		}
		if p.IsMarker() {
			src.PutBack(p)
			break
		}
		next, claimed, err := phase.step(p)
		if err != nil {
			return nil, err
		}
		phase = next
		if !claimed {
			if err = common.apply(p, src); err != nil {
				return nil, err
			}
		}
	}

	switch s := phase.(type) {
	case *dimCommitted:
		return &Entity{Common: common, Specific: s.dim}, nil
	default:
		return nil, nil
	}
}

// writeDimension 公共部分之后紧跟子类字段
func writeDimension(t EntityType, version core.AcadVersion, out core.Sink) error {
	base := dimensionBaseOf(t)
	if err := dimensionBaseFields(base).write(version, out); err != nil {
		return err
	}
	return dimensionFields(t).write(version, out)
}
