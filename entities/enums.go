package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

//go:generate go tool go-enum --marshal=false

// 枚举都以 int16 存储，解码时校验定义域

// ENUM(RotatedHorizontalOrVertical, Aligned, Angular, Diameter, Radius, AngularThreePoint, Ordinate)
type DimensionType int16

// ENUM(TopLeft=1, TopCenter, TopRight, MiddleLeft, MiddleCenter, MiddleRight, BottomLeft, BottomCenter, BottomRight)
type AttachmentPoint int16

// ENUM(AtLeast=1, Exact)
type TextLineSpacingStyle int16

// ENUM(AtLeast=1, Exact)
type MTextLineSpacingStyle int16

// ObjectVersion 对象版本 (组码 280)，目前只定义了 0
// ENUM(R2010)
type ObjectVersion int16

// ENUM(Left, Center, Right, Aligned, Middle, Fit)
type HorizontalTextJustification int16

// ENUM(Baseline, Bottom, Middle, Top)
type VerticalTextJustification int16

// ENUM(MultilineAttribute=2, ConstantMultilineAttributeDefinition=4)
type MTextFlag int16

// ENUM(LeftToRight=1, TopToBottom=3, ByStyle=5)
type DrawingDirection int16

// BackgroundFillSetting 以 int32 存储 (组码 90)
// ENUM(Off, UseBackgroundFillColor, UseDrawingWindowColor)
type BackgroundFillSetting int32

// ENUM(Rectangular=1, Polygonal)
type ImageClippingBoundaryType int16

type enum16 interface {
	~int16
	IsValid() bool
}

// decodeEnum 把 short 值映射到枚举，越界返回 EnumError
func decodeEnum[T enum16](p core.CodePair, name string) (T, error) {
	v, err := p.AsShort()
	if err != nil {
		return 0, err
	}
	e := T(v)
	if !e.IsValid() {
		return 0, &core.EnumError{Pair: p, Enum: name}
	}
	return e, nil
}
