package entities

import (
	"math"

	"github.com/zooyer/dxf-codec/core"
)

// subclass 子类标记只在 R13 之后出现
func subclass(name string) field {
	return marker(name).from(core.R13)
}

func countOf(code int, n func() int) field {
	f := writeOnly(func() core.CodePair { return core.NewShort(code, int16(n())) })
	f.check = func() error { return checkRange(code, int64(n()), core.TypeShort, math.MaxInt16) }
	return f
}

func countOf32(code int, n func() int) field {
	f := writeOnly(func() core.CodePair { return core.NewInt(code, int32(n())) })
	f.check = func() error { return checkRange(code, int64(n()), core.TypeInt, math.MaxInt32) }
	return f
}

// checkRange 计数写成 short 或 int 之前检查是否溢出
func checkRange(code int, n int64, want core.ValueType, limit int64) error {
	if n > limit {
		return &core.ValueError{Pair: core.NewLong(code, n), Want: want, Err: core.ErrOverflow}
	}
	return nil
}

// genericFields 返回绑定到 t 上的组码表，读写共用。
// 尺寸标注没有通用表，由 dimension.go 单独处理。
func genericFields(t EntityType) fieldTable {
	switch e := t.(type) {
	case *Line:
		return fieldTable{
			subclass("AcDbLine"),
			floatField(39, &e.Thickness),
			pointField(10, &e.P1),
			pointField(11, &e.P2),
			vectorField(210, &e.ExtrusionDirection),
		}
	case *Circle:
		return fieldTable{
			subclass("AcDbCircle"),
			floatField(39, &e.Thickness),
			pointField(10, &e.Center),
			floatField(40, &e.Radius),
			vectorField(210, &e.Normal),
		}
	case *Arc:
		return fieldTable{
			subclass("AcDbCircle"),
			floatField(39, &e.Thickness),
			pointField(10, &e.Center),
			floatField(40, &e.Radius),
			vectorField(210, &e.Normal),
			subclass("AcDbArc"),
			floatField(50, &e.StartAngle),
			floatField(51, &e.EndAngle),
		}
	case *Ellipse:
		return fieldTable{
			subclass("AcDbEllipse"),
			pointField(10, &e.Center),
			vectorField(11, &e.MajorAxis),
			vectorField(210, &e.Normal),
			floatField(40, &e.MinorAxisRatio),
			floatField(41, &e.StartParameter),
			floatField(42, &e.EndParameter),
		}
	case *ModelPoint:
		return fieldTable{
			subclass("AcDbPoint"),
			pointField(10, &e.Location),
			floatField(39, &e.Thickness),
			vectorField(210, &e.Normal),
			floatField(50, &e.Angle),
		}
	case *Text:
		return fieldTable{
			subclass("AcDbText"),
			floatField(39, &e.Thickness),
			pointField(10, &e.Location),
			floatField(40, &e.TextHeight),
			stringField(1, &e.Value),
			floatField(50, &e.Rotation),
			floatField(41, &e.RelativeXScaleFactor),
			floatField(51, &e.ObliqueAngle),
			stringField(7, &e.TextStyleName),
			shortField(71, &e.TextGenerationFlags),
			enumField(72, &e.HorizontalTextJustification, "HorizontalTextJustification"),
			pointField(11, &e.SecondAlignmentPoint),
			vectorField(210, &e.Normal),
			subclass("AcDbText"),
			enumField(73, &e.VerticalTextJustification, "VerticalTextJustification"),
		}
	case *Solid:
		return fieldTable{
			subclass("AcDbTrace"),
			pointField(10, &e.FirstCorner),
			pointField(11, &e.SecondCorner),
			pointField(12, &e.ThirdCorner),
			pointField(13, &e.FourthCorner),
			floatField(39, &e.Thickness),
			vectorField(210, &e.ExtrusionDirection),
		}
	case *Face3D:
		return fieldTable{
			subclass("AcDbFace"),
			pointField(10, &e.FirstCorner),
			pointField(11, &e.SecondCorner),
			pointField(12, &e.ThirdCorner),
			pointField(13, &e.FourthCorner),
			shortField(70, &e.EdgeFlags),
		}
	case *Insert:
		follow := boolField(66, &e.HasAttributes)
		follow.emit = func() []core.CodePair { return []core.CodePair{core.NewShort(66, 1)} }
		return fieldTable{
			subclass("AcDbBlockReference"),
			follow.when(func() bool { return len(e.Attributes) > 0 }),
			stringField(2, &e.Name),
			pointField(10, &e.Location),
			floatField(41, &e.XScaleFactor),
			floatField(42, &e.YScaleFactor),
			floatField(43, &e.ZScaleFactor),
			floatField(50, &e.Rotation),
			shortField(70, &e.ColumnCount),
			shortField(71, &e.RowCount),
			floatField(44, &e.ColumnSpacing),
			floatField(45, &e.RowSpacing),
			vectorField(210, &e.Normal),
		}
	case *Polyline:
		return fieldTable{
			subclass("AcDb2dPolyline"),
			writeOnly(func() core.CodePair { return core.NewShort(66, 1) }),
			pointField(10, &e.Location),
			floatField(39, &e.Thickness),
			shortField(70, &e.Flags),
			floatField(40, &e.DefaultStartingWidth),
			floatField(41, &e.DefaultEndingWidth),
			shortField(71, &e.PolygonMeshMVertexCount),
			shortField(72, &e.PolygonMeshNVertexCount),
			shortField(73, &e.SmoothSurfaceMDensity),
			shortField(74, &e.SmoothSurfaceNDensity),
			shortField(75, &e.SurfaceType),
			vectorField(210, &e.Normal),
		}
	case *Vertex:
		return fieldTable{
			subclass("AcDbVertex"),
			subclass("AcDb2dVertex"),
			pointField(10, &e.Location),
			floatField(40, &e.StartingWidth),
			floatField(41, &e.EndingWidth),
			floatField(42, &e.Bulge),
			shortField(70, &e.Flags),
			floatField(50, &e.CurveFitTangentDirection),
			shortField(71, &e.PolyfaceMeshVertexIndex1).from(core.R13),
			shortField(72, &e.PolyfaceMeshVertexIndex2).from(core.R13),
			shortField(73, &e.PolyfaceMeshVertexIndex3).from(core.R13),
			shortField(74, &e.PolyfaceMeshVertexIndex4).from(core.R13),
			intField(91, &e.Identifier).from(core.R2010),
		}
	case *Seqend:
		return nil
	case *LwPolyline:
		return fieldTable{
			subclass("AcDbPolyline"),
			countOf32(90, func() int { return len(e.Vertices) }),
			shortField(70, &e.Flags),
			floatField(43, &e.ConstantWidth),
			floatField(38, &e.Elevation),
			floatField(39, &e.Thickness),
			lwVerticesField(e),
			vectorField(210, &e.ExtrusionDirection),
		}
	case *MText:
		return fieldTable{
			subclass("AcDbMText"),
			pointField(10, &e.InsertionPoint),
			floatField(40, &e.InitialTextHeight),
			floatField(41, &e.ReferenceRectangleWidth),
			enumField(71, &e.AttachmentPoint, "AttachmentPoint"),
			enumField(72, &e.DrawingDirection, "DrawingDirection"),
			mtextTextField(e),
			stringField(7, &e.TextStyleName),
			vectorField(210, &e.ExtrusionDirection),
			vectorField(11, &e.XAxisDirection),
			floatField(42, &e.HorizontalWidth),
			floatField(43, &e.VerticalHeight),
			floatField(50, &e.RotationAngle),
			enumField(73, &e.LineSpacingStyle, "MTextLineSpacingStyle"),
			floatField(44, &e.LineSpacingFactor),
			backgroundFillField(90, &e.BackgroundFillSetting).from(core.R2004),
			intField(420, &e.BackgroundColorRGB).from(core.R2004),
			stringField(430, &e.BackgroundColorName).from(core.R2004),
			floatField(45, &e.FillBoxScale).from(core.R2004),
			colorField(63, &e.BackgroundFillColor).from(core.R2004),
			intField(441, &e.BackgroundFillColorTransparency).from(core.R2004),
			mtextColumnsField(e).from(core.R2018),
		}
	case *Attribute:
		return attributeFields(&e.AttributeText, "AcDbAttribute",
			stringField(2, &e.AttributeTag),
		)
	case *AttributeDefinition:
		return attributeFields(&e.AttributeText, "AcDbAttributeDefinition",
			stringField(3, &e.Prompt),
			stringField(2, &e.TextTag),
		)
	case *Image:
		return rasterImageFields(&e.RasterImage, "AcDbRasterImage")
	case *Wipeout:
		return rasterImageFields(&e.RasterImage, "AcDbWipeout")
	case *Leader:
		return fieldTable{
			subclass("AcDbLeader"),
			stringField(3, &e.DimensionStyleName),
			boolField(71, &e.UseArrowheads),
			shortField(72, &e.PathType),
			shortField(73, &e.AnnotationType),
			shortField(74, &e.HooklineDirection),
			boolField(75, &e.UseHookline),
			floatField(40, &e.TextAnnotationHeight),
			floatField(41, &e.TextAnnotationWidth),
			countOf(76, func() int { return len(e.Vertices) }),
			pointsField(10, &e.Vertices),
			colorField(77, &e.OverrideColor),
			handleField(340, &e.AssociatedAnnotation),
			vectorField(210, &e.Normal),
			vectorField(211, &e.Right),
			vectorField(212, &e.BlockOffset),
			vectorField(213, &e.AnnotationOffset),
		}
	case *MLine:
		return fieldTable{
			subclass("AcDbMline"),
			stringField(2, &e.StyleName),
			handleField(340, &e.Style),
			floatField(40, &e.ScaleFactor),
			shortField(70, &e.Justification),
			shortField(71, &e.Flags),
			countOf(72, func() int { return len(e.Vertices) }),
			shortField(73, &e.StyleElementCount),
			pointField(10, &e.StartPoint),
			vectorField(210, &e.Normal),
			interleave(
				pointsField(11, &e.Vertices),
				vectorsField(12, &e.SegmentDirections),
				vectorsField(13, &e.MiterDirections),
			),
		}
	case *Section:
		return fieldTable{
			subclass("AcDbSection"),
			intField(90, &e.State),
			intField(91, &e.Flags),
			stringField(1, &e.Name),
			vectorField(10, &e.VerticalDirection),
			floatField(40, &e.TopHeight),
			floatField(41, &e.BottomHeight),
			shortField(70, &e.IndicatorTransparency),
			colorField(63, &e.IndicatorColor),
			countOf32(92, func() int { return len(e.Vertices) }),
			pointsField(11, &e.Vertices),
			countOf32(93, func() int { return len(e.BackLineVertices) }),
			pointsField(12, &e.BackLineVertices),
			handleField(360, &e.GeometrySettings),
		}
	case *Spline:
		return fieldTable{
			subclass("AcDbSpline"),
			vectorField(210, &e.Normal),
			shortField(70, &e.Flags),
			shortField(71, &e.DegreeOfCurve),
			countOf(72, func() int { return len(e.KnotValues) }),
			countOf(73, func() int { return len(e.ControlPoints) }),
			countOf(74, func() int { return len(e.FitPoints) }),
			floatField(42, &e.KnotTolerance),
			floatField(43, &e.ControlPointTolerance),
			floatField(44, &e.FitTolerance),
			pointField(12, &e.StartTangent),
			pointField(13, &e.EndTangent),
			floatsField(40, &e.KnotValues),
			floatsField(41, &e.Weights),
			pointsField(10, &e.ControlPoints),
			pointsField(11, &e.FitPoints),
		}
	case *DgnUnderlay:
		return underlayFields(&e.Underlay)
	case *DwfUnderlay:
		return underlayFields(&e.Underlay)
	case *PdfUnderlay:
		return underlayFields(&e.Underlay)
	case *RotatedDimension, *RadialDimension, *DiameterDimension, *AngularThreePointDimension, *OrdinateDimension:
		return nil
	}
	return nil
}

// attributeFields ATTRIB/ATTDEF 的写出顺序。10/40/70/280/2 等组码的读取由
// attribState 根据上下文处理，这里只在写出时使用。
func attributeFields(a *AttributeText, name string, tags ...field) fieldTable {
	t := fieldTable{
		subclass("AcDbText"),
		floatField(39, &a.Thickness),
		pointField(10, &a.Location),
		floatField(40, &a.TextHeight),
		stringField(1, &a.Value),
		floatField(50, &a.Rotation),
		floatField(41, &a.RelativeXScaleFactor),
		floatField(51, &a.ObliqueAngle),
		stringField(7, &a.TextStyleName),
		shortField(71, &a.TextGenerationFlags),
		enumField(72, &a.HorizontalTextJustification, "HorizontalTextJustification"),
		pointField(11, &a.SecondAlignmentPoint),
		vectorField(210, &a.Normal),
		subclass(name),
		enumField(280, &a.Version, "ObjectVersion").from(core.R2010),
	}
	t = append(t, tags...)
	return append(t,
		shortField(70, &a.Flags),
		shortField(73, &a.FieldLength),
		enumField(74, &a.VerticalTextJustification, "VerticalTextJustification"),
		boolField(280, &a.IsLockedInBlock).from(core.R2010),
		marker("AcDbXrecord").from(core.R2010),
		boolField(280, &a.KeepDuplicateRecords).from(core.R2010),
		enumField(70, &a.MTextFlag, "MTextFlag").from(core.R2010),
		boolField(70, &a.IsReallyLocked).from(core.R2010),
		shortField(70, &a.SecondaryAttributeCount).from(core.R2010),
		handlesField(340, &a.SecondaryAttributes).from(core.R2010),
		pointField(10, &a.AlignmentPoint).from(core.R2010),
		floatField(40, &a.AnnotationScale).from(core.R2010),
		stringField(2, &a.XRecordTag).from(core.R2010),
	)
}

func rasterImageFields(r *RasterImage, name string) fieldTable {
	return fieldTable{
		subclass(name),
		intField(90, &r.ClassVersion),
		pointField(10, &r.Location),
		vectorField(11, &r.UVector),
		vectorField(12, &r.VVector),
		point2Field(13, &r.ImageSize),
		handleField(340, &r.ImageDefinition),
		shortField(70, &r.DisplayOptionsFlags),
		boolField(280, &r.UseClipping),
		shortField(281, &r.Brightness),
		shortField(282, &r.Contrast),
		shortField(283, &r.Fade),
		handleField(360, &r.ImageDefReactor),
		enumField(71, &r.ClippingType, "ImageClippingBoundaryType"),
		countOf32(91, func() int { return len(r.ClippingVertices) }),
		points2Field(14, &r.ClippingVertices),
	}
}

func underlayFields(u *Underlay) fieldTable {
	return fieldTable{
		subclass("AcDbUnderlayReference"),
		handleField(340, &u.Definition),
		pointField(10, &u.Location),
		floatField(41, &u.XScale),
		floatField(42, &u.YScale),
		floatField(43, &u.ZScale),
		floatField(50, &u.Rotation),
		vectorField(210, &u.Normal),
		shortField(280, &u.Flags),
		shortField(281, &u.Contrast),
		shortField(282, &u.Fade),
		points2Field(11, &u.Points),
	}
}

// backgroundFillField 背景填充是 int32 枚举 (组码 90)
func backgroundFillField(code int, v *BackgroundFillSetting) field {
	return field{
		codes: []int{code},
		apply: func(p core.CodePair) error {
			i, err := p.AsInt()
			if err != nil {
				return err
			}
			b := BackgroundFillSetting(i)
			if !b.IsValid() {
				return &core.EnumError{Pair: p, Enum: "BackgroundFillSetting"}
			}
			*v = b
			return nil
		},
		emit: func() []core.CodePair { return []core.CodePair{core.NewInt(code, int32(*v))} },
	}
}

// lwVerticesField 只负责写出，读取在 lwpolyline.go
func lwVerticesField(l *LwPolyline) field {
	return field{emit: func() []core.CodePair {
		pairs := make([]core.CodePair, 0, 6*len(l.Vertices))
		for _, v := range l.Vertices {
			pairs = append(pairs, core.NewFloat(10, v.X), core.NewFloat(20, v.Y))
			if v.ID != 0 {
				pairs = append(pairs, core.NewInt(91, v.ID))
			}
			pairs = append(pairs,
				core.NewFloat(40, v.StartingWidth),
				core.NewFloat(41, v.EndingWidth),
				core.NewFloat(42, v.Bulge),
			)
		}
		return pairs
	}}
}

// mtextColumnsField 分栏数据，读取在 mtext.go
func mtextColumnsField(m *MText) field {
	f := field{emit: func() []core.CodePair {
		pairs := []core.CodePair{
			core.NewShort(75, m.ColumnType),
			core.NewShort(76, int16(m.ColumnCount)),
			boolPair(78, m.IsColumnFlowReversed),
			boolPair(79, m.IsColumnAutoHeight),
			core.NewFloat(48, m.ColumnWidth),
			core.NewFloat(49, m.ColumnGutter),
			core.NewFloat(50, float64(m.ColumnCount)),
		}
		for _, h := range m.ColumnHeights {
			pairs = append(pairs, core.NewFloat(50, h))
		}
		return pairs
	}}
	f.check = func() error { return checkRange(76, int64(m.ColumnCount), core.TypeShort, math.MaxInt16) }
	return f.when(func() bool { return m.ColumnType != 0 })
}
