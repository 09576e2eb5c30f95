package entities

import (
	"math"

	"github.com/zooyer/dxf-codec/core"
)

type Line struct {
	Thickness          float64
	P1, P2             core.Point
	ExtrusionDirection core.Vector
}

func NewLine(p1, p2 core.Point) *Line {
	return &Line{P1: p1, P2: p2, ExtrusionDirection: core.ZAxis}
}

type Circle struct {
	Thickness float64
	Center    core.Point
	Radius    float64
	Normal    core.Vector
}

func NewCircle(center core.Point, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius, Normal: core.ZAxis}
}

type Arc struct {
	Thickness  float64
	Center     core.Point
	Radius     float64
	Normal     core.Vector
	StartAngle float64
	EndAngle   float64
}

func NewArc(center core.Point, radius, start, end float64) *Arc {
	return &Arc{Center: center, Radius: radius, StartAngle: start, EndAngle: end, Normal: core.ZAxis}
}

type Ellipse struct {
	Center         core.Point
	MajorAxis      core.Vector
	Normal         core.Vector
	MinorAxisRatio float64
	StartParameter float64
	EndParameter   float64
}

func NewEllipse() *Ellipse {
	return &Ellipse{MajorAxis: core.Vector{X: 1}, Normal: core.ZAxis, MinorAxisRatio: 1, EndParameter: 2 * math.Pi}
}

// ModelPoint 对应 POINT 实体
type ModelPoint struct {
	Location  core.Point
	Thickness float64
	Normal    core.Vector
	Angle     float64
}

func NewModelPoint(p core.Point) *ModelPoint {
	return &ModelPoint{Location: p, Normal: core.ZAxis}
}

type Text struct {
	Thickness                   float64
	Location                    core.Point
	TextHeight                  float64
	Value                       string
	Rotation                    float64
	RelativeXScaleFactor        float64
	ObliqueAngle                float64
	TextStyleName               string
	TextGenerationFlags         int16
	HorizontalTextJustification HorizontalTextJustification
	SecondAlignmentPoint        core.Point
	Normal                      core.Vector
	VerticalTextJustification   VerticalTextJustification
}

func NewText() *Text {
	return &Text{TextHeight: 1, RelativeXScaleFactor: 1, TextStyleName: "STANDARD", Normal: core.ZAxis}
}

type Solid struct {
	FirstCorner, SecondCorner, ThirdCorner, FourthCorner core.Point
	Thickness                                            float64
	ExtrusionDirection                                   core.Vector
}

type Face3D struct {
	FirstCorner, SecondCorner, ThirdCorner, FourthCorner core.Point
	EdgeFlags                                            int16
}

// Insert 块引用，ATTRIB 在读取后被收进 Attributes
type Insert struct {
	Name          string
	Location      core.Point
	XScaleFactor  float64
	YScaleFactor  float64
	ZScaleFactor  float64
	Rotation      float64
	ColumnCount   int16
	RowCount      int16
	ColumnSpacing float64
	RowSpacing    float64
	Normal        core.Vector
	HasAttributes bool
	Attributes    []Attribute
}

func NewInsert(name string) *Insert {
	return &Insert{
		Name:         name,
		XScaleFactor: 1, YScaleFactor: 1, ZScaleFactor: 1, // 默认缩放为 1
		ColumnCount: 1, RowCount: 1,
		Normal: core.ZAxis,
	}
}

// Polyline 的顶点在文件中是独立的 VERTEX 实体，后跟 SEQEND
type Polyline struct {
	Location                core.Point
	Thickness               float64
	Flags                   int16
	DefaultStartingWidth    float64
	DefaultEndingWidth      float64
	PolygonMeshMVertexCount int16
	PolygonMeshNVertexCount int16
	SmoothSurfaceMDensity   int16
	SmoothSurfaceNDensity   int16
	SurfaceType             int16
	Normal                  core.Vector
	Vertices                []Vertex
}

func NewPolyline() *Polyline {
	return &Polyline{Normal: core.ZAxis}
}

type Vertex struct {
	Location                 core.Point
	StartingWidth            float64
	EndingWidth              float64
	Bulge                    float64
	Flags                    int16
	CurveFitTangentDirection float64
	PolyfaceMeshVertexIndex1 int16
	PolyfaceMeshVertexIndex2 int16
	PolyfaceMeshVertexIndex3 int16
	PolyfaceMeshVertexIndex4 int16
	Identifier               int32
}

func NewVertex(location core.Point) *Vertex {
	return &Vertex{Location: location}
}

type Seqend struct{}

// LwPolylineVertex 轻量多段线的单个顶点
type LwPolylineVertex struct {
	X, Y          float64
	ID            int32
	StartingWidth float64
	EndingWidth   float64
	Bulge         float64
}

type LwPolyline struct {
	Flags              int16
	ConstantWidth      float64
	Elevation          float64
	Thickness          float64
	Vertices           []LwPolylineVertex
	ExtrusionDirection core.Vector
}

func NewLwPolyline() *LwPolyline {
	return &LwPolyline{ExtrusionDirection: core.ZAxis}
}

func (l *LwPolyline) IsClosed() bool { return l.Flags&1 != 0 }

type MText struct {
	InsertionPoint                  core.Point
	InitialTextHeight               float64
	ReferenceRectangleWidth         float64
	AttachmentPoint                 AttachmentPoint
	DrawingDirection                DrawingDirection
	ExtendedText                    []string
	Text                            string
	TextStyleName                   string
	ExtrusionDirection              core.Vector
	XAxisDirection                  core.Vector
	HorizontalWidth                 float64
	VerticalHeight                  float64
	RotationAngle                   float64
	LineSpacingStyle                MTextLineSpacingStyle
	LineSpacingFactor               float64
	BackgroundFillSetting           BackgroundFillSetting
	BackgroundColorRGB              int32
	BackgroundColorName             string
	FillBoxScale                    float64
	BackgroundFillColor             core.Color
	BackgroundFillColorTransparency int32
	ColumnType                      int16
	ColumnCount                     int32
	IsColumnFlowReversed            bool
	IsColumnAutoHeight              bool
	ColumnWidth                     float64
	ColumnGutter                    float64
	ColumnHeights                   []float64
}

func NewMText() *MText {
	return &MText{
		InitialTextHeight:   1,
		AttachmentPoint:     AttachmentPointTopLeft,
		DrawingDirection:    DrawingDirectionLeftToRight,
		TextStyleName:       "STANDARD",
		ExtrusionDirection:  core.ZAxis,
		XAxisDirection:      core.Vector{X: 1},
		LineSpacingStyle:    MTextLineSpacingStyleAtLeast,
		LineSpacingFactor:   1,
		FillBoxScale:        1,
		BackgroundFillColor: core.ColorByBlock,
	}
}

// AttributeText ATTRIB 与 ATTDEF 共有的字段
type AttributeText struct {
	Thickness                   float64
	Location                    core.Point
	TextHeight                  float64
	Value                       string
	Rotation                    float64
	RelativeXScaleFactor        float64
	ObliqueAngle                float64
	TextStyleName               string
	TextGenerationFlags         int16
	HorizontalTextJustification HorizontalTextJustification
	SecondAlignmentPoint        core.Point
	Normal                      core.Vector
	Version                     ObjectVersion
	Flags                       int16
	FieldLength                 int16
	VerticalTextJustification   VerticalTextJustification
	IsLockedInBlock             bool
	// AcDbXrecord 子类
	KeepDuplicateRecords    bool
	MTextFlag               MTextFlag
	IsReallyLocked          bool
	SecondaryAttributeCount int16
	SecondaryAttributes     []core.Handle
	AlignmentPoint          core.Point
	AnnotationScale         float64
	XRecordTag              string
	// MText 关联的多行文字记录，只保存句柄
	MText core.Handle
}

func newAttributeText() AttributeText {
	return AttributeText{
		TextHeight:           1,
		RelativeXScaleFactor: 1,
		TextStyleName:        "STANDARD",
		Normal:               core.ZAxis,
		MTextFlag:            MTextFlagMultilineAttribute,
		AnnotationScale:      1,
	}
}

type Attribute struct {
	AttributeText
	AttributeTag string
}

func NewAttribute() *Attribute {
	return &Attribute{AttributeText: newAttributeText()}
}

type AttributeDefinition struct {
	AttributeText
	Prompt  string
	TextTag string
}

func NewAttributeDefinition() *AttributeDefinition {
	return &AttributeDefinition{AttributeText: newAttributeText()}
}

// RasterImage IMAGE 与 WIPEOUT 共用的布局
type RasterImage struct {
	ClassVersion        int32
	Location            core.Point
	UVector             core.Vector
	VVector             core.Vector
	ImageSize           core.Point
	ImageDefinition     core.Handle
	DisplayOptionsFlags int16
	UseClipping         bool
	Brightness          int16
	Contrast            int16
	Fade                int16
	ImageDefReactor     core.Handle
	ClippingType        ImageClippingBoundaryType
	ClippingVertices    []core.Point
}

func newRasterImage() RasterImage {
	return RasterImage{
		UVector:             core.Vector{X: 1},
		VVector:             core.Vector{Y: 1},
		DisplayOptionsFlags: 7,
		Brightness:          50,
		Contrast:            50,
		ClippingType:        ImageClippingBoundaryTypeRectangular,
	}
}

type Image struct{ RasterImage }

type Wipeout struct{ RasterImage }

type Leader struct {
	DimensionStyleName   string
	UseArrowheads        bool
	PathType             int16
	AnnotationType       int16
	HooklineDirection    int16
	UseHookline          bool
	TextAnnotationHeight float64
	TextAnnotationWidth  float64
	Vertices             []core.Point
	OverrideColor        core.Color
	AssociatedAnnotation core.Handle
	Normal               core.Vector
	Right                core.Vector
	BlockOffset          core.Vector
	AnnotationOffset     core.Vector
}

func NewLeader() *Leader {
	return &Leader{
		DimensionStyleName: "STANDARD",
		UseArrowheads:      true,
		AnnotationType:     3,
		OverrideColor:      core.ColorByBlock,
		Normal:             core.ZAxis,
		Right:              core.Vector{X: 1},
	}
}

type MLine struct {
	StyleName         string
	Style             core.Handle
	ScaleFactor       float64
	Justification     int16
	Flags             int16
	StyleElementCount int16
	StartPoint        core.Point
	Normal            core.Vector
	Vertices          []core.Point
	SegmentDirections []core.Vector
	MiterDirections   []core.Vector
}

func NewMLine() *MLine {
	return &MLine{StyleName: "STANDARD", ScaleFactor: 1, Normal: core.ZAxis}
}

type Section struct {
	State                 int32
	Flags                 int32
	Name                  string
	VerticalDirection     core.Vector
	TopHeight             float64
	BottomHeight          float64
	IndicatorTransparency int16
	IndicatorColor        core.Color
	Vertices              []core.Point
	BackLineVertices      []core.Point
	GeometrySettings      core.Handle
}

type Spline struct {
	Normal                core.Vector
	Flags                 int16
	DegreeOfCurve         int16
	KnotTolerance         float64
	ControlPointTolerance float64
	FitTolerance          float64
	StartTangent          core.Point
	EndTangent            core.Point
	KnotValues            []float64
	Weights               []float64
	ControlPoints         []core.Point
	FitPoints             []core.Point
}

func NewSpline() *Spline {
	return &Spline{Normal: core.ZAxis, DegreeOfCurve: 1, KnotTolerance: 1e-7, ControlPointTolerance: 1e-7, FitTolerance: 1e-10}
}

// Underlay DGN/DWF/PDF 参考底图共用的布局
type Underlay struct {
	Definition core.Handle
	Location   core.Point
	XScale     float64
	YScale     float64
	ZScale     float64
	Rotation   float64
	Normal     core.Vector
	Flags      int16
	Contrast   int16
	Fade       int16
	Points     []core.Point
}

func newUnderlay() Underlay {
	return Underlay{XScale: 1, YScale: 1, ZScale: 1, Normal: core.ZAxis, Contrast: 100}
}

type DgnUnderlay struct{ Underlay }

type DwfUnderlay struct{ Underlay }

type PdfUnderlay struct{ Underlay }

func (*Line) TypeString() string                       { return "LINE" }
func (*Circle) TypeString() string                     { return "CIRCLE" }
func (*Arc) TypeString() string                        { return "ARC" }
func (*Ellipse) TypeString() string                    { return "ELLIPSE" }
func (*ModelPoint) TypeString() string                 { return "POINT" }
func (*Text) TypeString() string                       { return "TEXT" }
func (*Solid) TypeString() string                      { return "SOLID" }
func (*Face3D) TypeString() string                     { return "3DFACE" }
func (*Insert) TypeString() string                     { return "INSERT" }
func (*Polyline) TypeString() string                   { return "POLYLINE" }
func (*Vertex) TypeString() string                     { return "VERTEX" }
func (*Seqend) TypeString() string                     { return "SEQEND" }
func (*LwPolyline) TypeString() string                 { return "LWPOLYLINE" }
func (*MText) TypeString() string                      { return "MTEXT" }
func (*Attribute) TypeString() string                  { return "ATTRIB" }
func (*AttributeDefinition) TypeString() string        { return "ATTDEF" }
func (*RotatedDimension) TypeString() string           { return "DIMENSION" }
func (*RadialDimension) TypeString() string            { return "DIMENSION" }
func (*DiameterDimension) TypeString() string          { return "DIMENSION" }
func (*AngularThreePointDimension) TypeString() string { return "DIMENSION" }
func (*OrdinateDimension) TypeString() string          { return "DIMENSION" }
func (*Image) TypeString() string                      { return "IMAGE" }
func (*Wipeout) TypeString() string                    { return "WIPEOUT" }
func (*Leader) TypeString() string                     { return "LEADER" }
func (*MLine) TypeString() string                      { return "MLINE" }
func (*Section) TypeString() string                    { return "SECTION" }
func (*Spline) TypeString() string                     { return "SPLINE" }
func (*DgnUnderlay) TypeString() string                { return "DGNUNDERLAY" }
func (*DwfUnderlay) TypeString() string                { return "DWFUNDERLAY" }
func (*PdfUnderlay) TypeString() string                { return "PDFUNDERLAY" }

func (*Line) entityType()                       {}
func (*Circle) entityType()                     {}
func (*Arc) entityType()                        {}
func (*Ellipse) entityType()                    {}
func (*ModelPoint) entityType()                 {}
func (*Text) entityType()                       {}
func (*Solid) entityType()                      {}
func (*Face3D) entityType()                     {}
func (*Insert) entityType()                     {}
func (*Polyline) entityType()                   {}
func (*Vertex) entityType()                     {}
func (*Seqend) entityType()                     {}
func (*LwPolyline) entityType()                 {}
func (*MText) entityType()                      {}
func (*Attribute) entityType()                  {}
func (*AttributeDefinition) entityType()        {}
func (*RotatedDimension) entityType()           {}
func (*RadialDimension) entityType()            {}
func (*DiameterDimension) entityType()          {}
func (*AngularThreePointDimension) entityType() {}
func (*OrdinateDimension) entityType()          {}
func (*Image) entityType()                      {}
func (*Wipeout) entityType()                    {}
func (*Leader) entityType()                     {}
func (*MLine) entityType()                      {}
func (*Section) entityType()                    {}
func (*Spline) entityType()                     {}
func (*DgnUnderlay) entityType()                {}
func (*DwfUnderlay) entityType()                {}
func (*PdfUnderlay) entityType()                {}
