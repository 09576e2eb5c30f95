package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

// EntityType 实体的具体类型，是一个封闭集合：只有本包内定义的类型实现它
type EntityType interface {
	TypeString() string
	entityType()
}

// Entity 由公共属性和具体类型两部分组成
type Entity struct {
	Common   Common
	Specific EntityType
}

// NewEntity 用默认的公共属性创建实体
func NewEntity(specific EntityType) *Entity {
	return &Entity{
		Common:   NewCommon(),
		Specific: specific,
	}
}

func (e *Entity) Type() string { return e.Specific.TypeString() }

func (e *Entity) Layer() string { return e.Common.Layer }

// newEntityType 根据实体名称生产对应的结构体，DIMENSION 由 readDimension 单独处理
func newEntityType(typeName string) EntityType {
	switch typeName {
	case "LINE":
		return NewLine(core.Point{}, core.Point{})
	case "CIRCLE":
		return NewCircle(core.Point{}, 0)
	case "ARC":
		return NewArc(core.Point{}, 0, 0, 360)
	case "ELLIPSE":
		return NewEllipse()
	case "POINT":
		return NewModelPoint(core.Point{})
	case "TEXT":
		return NewText()
	case "SOLID":
		return &Solid{ExtrusionDirection: core.ZAxis}
	case "3DFACE":
		return &Face3D{}
	case "INSERT":
		return NewInsert("")
	case "POLYLINE":
		return NewPolyline()
	case "VERTEX":
		return NewVertex(core.Point{})
	case "SEQEND":
		return &Seqend{}
	case "LWPOLYLINE":
		return NewLwPolyline()
	case "MTEXT":
		return NewMText()
	case "ATTRIB":
		return NewAttribute()
	case "ATTDEF":
		return NewAttributeDefinition()
	case "IMAGE":
		return &Image{RasterImage: newRasterImage()}
	case "WIPEOUT":
		return &Wipeout{RasterImage: newRasterImage()}
	case "LEADER":
		return NewLeader()
	case "MLINE":
		return NewMLine()
	case "SECTION":
		return &Section{VerticalDirection: core.ZAxis, IndicatorColor: core.ColorByLayer}
	case "SPLINE":
		return NewSpline()
	case "DGNUNDERLAY":
		return &DgnUnderlay{Underlay: newUnderlay()}
	case "DWFUNDERLAY":
		return &DwfUnderlay{Underlay: newUnderlay()}
	case "PDFUNDERLAY":
		return &PdfUnderlay{Underlay: newUnderlay()}
	}
	return nil
}

// minVersion 该类型最早出现的格式版本，更早的版本写出时整个实体被省略
func minVersion(t EntityType) core.AcadVersion {
	switch t.(type) {
	case *Ellipse, *MText, *Leader, *MLine, *Spline:
		return core.R13
	case *LwPolyline, *Image:
		return core.R14
	case *Wipeout:
		return core.R2000
	case *Section, *DgnUnderlay, *DwfUnderlay, *PdfUnderlay:
		return core.R2007
	}
	return core.R10
}

// SupportedOn 该实体能否以 version 写出
func SupportedOn(t EntityType, version core.AcadVersion) bool {
	return version >= minVersion(t)
}
