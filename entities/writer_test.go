package entities

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf-codec/core"
)

func writePairs(t *testing.T, version core.AcadVersion, list ...*Entity) core.Pairs {
	t.Helper()
	var pairs core.Pairs
	w := NewWriter(&pairs, version, WithHandles(true))
	require.NoError(t, w.WriteAll(list))
	return pairs
}

func roundTrip(t *testing.T, version core.AcadVersion, list ...*Entity) []*Entity {
	t.Helper()
	pairs := writePairs(t, version, list...)
	pairs = append(pairs, endsec())
	got, err := ReadAll(pairs.Source())
	require.NoError(t, err)
	return got
}

func markers(pairs core.Pairs) []string {
	var names []string
	for _, p := range pairs {
		if p.IsMarker() {
			s, _ := p.AsString()
			names = append(names, s)
		}
	}
	return names
}

func indexOf(pairs core.Pairs, want core.CodePair) int {
	for i, p := range pairs {
		if p == want {
			return i
		}
	}
	return -1
}

func sampleEntities() []*Entity {
	line := NewEntity(NewLine(core.NewPoint(1, 2, 3), core.NewPoint(4, 5, 6)))
	line.Common.Handle = 0x2A
	line.Common.Owner = 0x1F
	line.Common.Layer = "WALLS"
	line.Common.LineTypeName = "DASHED"
	line.Common.Color = 1
	line.Common.LineWeight = 25
	line.Common.LineTypeScale = 2
	line.Common.IsVisible = false
	line.Common.IsInPaperSpace = true
	line.Common.Color24Bit = 0xFF0000
	line.Common.ColorName = "red"
	line.Common.Transparency = 0x020000FF
	line.Common.ExtensionData = []ExtensionGroup{{Name: "ACAD_REACTORS", Items: []core.CodePair{str(330, "1F")}}}
	line.Common.XData = []XData{{Application: "APP", Items: []core.CodePair{str(1000, "x"), core.NewFloat(1040, 1.5)}}}

	arc := NewArc(core.NewPoint(1, 1, 0), 2, 15, 270)
	arc.Thickness = 0.5

	ellipse := NewEllipse()
	ellipse.Center = core.NewPoint(3, 4, 0)
	ellipse.MajorAxis = core.NewVector(2, 0, 0)
	ellipse.MinorAxisRatio = 0.5

	point := NewModelPoint(core.NewPoint(-1, -2, -3))
	point.Angle = 45

	text := NewText()
	text.Value = "hello"
	text.Location = core.NewPoint(1, 2, 0)
	text.HorizontalTextJustification = HorizontalTextJustificationCenter
	text.VerticalTextJustification = VerticalTextJustificationTop
	text.SecondAlignmentPoint = core.NewPoint(3, 4, 0)

	solid := &Solid{
		FirstCorner:        core.NewPoint(0, 0, 0),
		SecondCorner:       core.NewPoint(1, 0, 0),
		ThirdCorner:        core.NewPoint(0, 1, 0),
		FourthCorner:       core.NewPoint(1, 1, 0),
		ExtrusionDirection: core.ZAxis,
	}
	face := &Face3D{SecondCorner: core.NewPoint(1, 0, 0), ThirdCorner: core.NewPoint(1, 1, 1), EdgeFlags: 3}

	lw := NewLwPolyline()
	lw.Flags = 1
	lw.ConstantWidth = 0.25
	lw.Vertices = []LwPolylineVertex{{X: 1, Y: 2}, {X: 3, Y: 4, ID: 9, Bulge: 0.5}}

	mtext := NewMText()
	mtext.Text = "first"
	mtext.ExtendedText = []string{"chunk1", "chunk2"}
	mtext.RotationAngle = 30
	mtext.BackgroundFillSetting = BackgroundFillSettingUseBackgroundFillColor
	mtext.AttachmentPoint = AttachmentPointMiddleCenter

	attdef := NewAttributeDefinition()
	attdef.TextTag = "TAG"
	attdef.Prompt = "Enter value"
	attdef.Flags = 2
	attdef.IsLockedInBlock = true
	attdef.SecondaryAttributeCount = 1
	attdef.SecondaryAttributes = []core.Handle{0xA1}
	attdef.AlignmentPoint = core.NewPoint(1, 1, 1)
	attdef.XRecordTag = "X"

	image := &Image{RasterImage: newRasterImage()}
	image.ImageSize = core.NewPoint(640, 480, 0)
	image.ImageDefinition = 0x3C
	image.ClippingType = ImageClippingBoundaryTypePolygonal
	image.ClippingVertices = []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(640, 0, 0), core.NewPoint(640, 480, 0)}

	wipeout := &Wipeout{RasterImage: newRasterImage()}
	wipeout.Location = core.NewPoint(5, 5, 0)

	leader := NewLeader()
	leader.Vertices = []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(2, 2, 0), core.NewPoint(4, 2, 0)}
	leader.UseHookline = true

	mline := NewMLine()
	mline.Vertices = []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(5, 0, 0)}
	mline.SegmentDirections = []core.Vector{core.NewVector(1, 0, 0), core.NewVector(1, 0, 0)}
	mline.MiterDirections = []core.Vector{core.NewVector(0, 1, 0), core.NewVector(0, 1, 0)}

	section := &Section{
		Name:              "A-A",
		VerticalDirection: core.ZAxis,
		IndicatorColor:    core.ColorByLayer,
		Vertices:          []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(10, 0, 0)},
		BackLineVertices:  []core.Point{core.NewPoint(0, 5, 0)},
	}

	spline := NewSpline()
	spline.DegreeOfCurve = 3
	spline.KnotValues = []float64{0, 0, 0, 0, 1, 1, 1, 1}
	spline.Weights = []float64{1, 1, 1, 1}
	spline.ControlPoints = []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(1, 2, 0), core.NewPoint(3, 2, 0), core.NewPoint(4, 0, 0)}
	spline.FitPoints = []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(4, 0, 0)}

	pdf := &PdfUnderlay{Underlay: newUnderlay()}
	pdf.Definition = 0x4D
	pdf.Points = []core.Point{core.NewPoint(0, 0, 0), core.NewPoint(1, 1, 0)}

	dgn := &DgnUnderlay{Underlay: newUnderlay()}
	dwf := &DwfUnderlay{Underlay: newUnderlay()}
	dwf.Rotation = 90

	return []*Entity{
		line,
		NewEntity(NewCircle(core.NewPoint(0, 0, 0), 5)),
		NewEntity(arc),
		NewEntity(ellipse),
		NewEntity(point),
		NewEntity(text),
		NewEntity(solid),
		NewEntity(face),
		NewEntity(lw),
		NewEntity(mtext),
		NewEntity(attdef),
		NewEntity(image),
		NewEntity(wipeout),
		NewEntity(leader),
		NewEntity(mline),
		NewEntity(section),
		NewEntity(spline),
		NewEntity(pdf),
		NewEntity(dgn),
		NewEntity(dwf),
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	want := sampleEntities()
	got := roundTrip(t, core.R2018, sampleEntities()...)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i], "entity %d (%s)", i, want[i].Type())
	}
}

func TestWriter_RoundTripR12(t *testing.T) {
	text := NewText()
	text.Value = "legacy"
	circle := NewCircle(core.NewPoint(1, 1, 0), 3)
	want := []*Entity{NewEntity(text), NewEntity(circle)}

	pairs := writePairs(t, core.R12, want...)
	for _, p := range pairs {
		assert.NotEqual(t, 100, p.Code, "R12 has no subclass markers")
	}

	got := roundTrip(t, core.R12, want...)
	assert.Equal(t, want, got)
}

func TestWriter_VersionGate(t *testing.T) {
	tests := []struct {
		specific EntityType
		version  core.AcadVersion
		written  bool
	}{
		{NewEllipse(), core.R12, false},
		{NewEllipse(), core.R13, true},
		{NewLwPolyline(), core.R13, false},
		{NewLwPolyline(), core.R14, true},
		{&Wipeout{RasterImage: newRasterImage()}, core.R14, false},
		{&Section{}, core.R2004, false},
		{&PdfUnderlay{Underlay: newUnderlay()}, core.R2007, true},
		{NewLine(core.Point{}, core.Point{}), core.R10, true},
	}

	for _, tt := range tests {
		pairs := writePairs(t, tt.version, NewEntity(tt.specific))
		assert.Equal(t, tt.written, len(pairs) > 0, "%s on %s", tt.specific.TypeString(), tt.version)
		assert.Equal(t, tt.written, SupportedOn(tt.specific, tt.version))
	}
}

func TestWriter_EmitOrder(t *testing.T) {
	line := NewEntity(NewLine(core.Point{}, core.NewPoint(1, 0, 0)))
	line.Common.Handle = 0x10
	line.Common.XData = []XData{{Application: "APP"}}

	pairs := writePairs(t, core.R2000, line)
	require.NotEmpty(t, pairs)
	assert.Equal(t, str(0, "LINE"), pairs[0])
	assert.Equal(t, str(5, "10"), pairs[1])
	assert.Equal(t, str(100, "AcDbEntity"), pairs[2])
	assert.Less(t, indexOf(pairs, str(8, "0")), indexOf(pairs, str(100, "AcDbLine")))
	assert.Equal(t, str(1001, "APP"), pairs[len(pairs)-1])

	var noHandles core.Pairs
	require.NoError(t, NewWriter(&noHandles, core.R2000).WriteEntity(line))
	assert.Equal(t, -1, indexOf(noHandles, str(5, "10")))
}

func TestWriter_PolylineTrailing(t *testing.T) {
	poly := NewPolyline()
	poly.Flags = 1
	poly.Vertices = []Vertex{
		*NewVertex(core.NewPoint(0, 0, 0)),
		*NewVertex(core.NewPoint(1, 0, 0)),
		{Location: core.NewPoint(1, 1, 0), Bulge: 0.5, Identifier: 4},
	}
	e := NewEntity(poly)
	e.Common.Layer = "PL"
	e.Common.XData = []XData{{Application: "APP"}}

	pairs := writePairs(t, core.R2018, e)
	assert.Equal(t, []string{"POLYLINE", "VERTEX", "VERTEX", "VERTEX", "SEQEND"}, markers(pairs))
	assert.Greater(t, indexOf(pairs, str(1001, "APP")), indexOf(pairs, str(0, "SEQEND")))

	// 顶点使用默认的公共属性
	seqend := indexOf(pairs, str(0, "SEQEND"))
	assert.Equal(t, str(8, "0"), pairs[seqend+2])

	got := roundTrip(t, core.R2018, NewEntity(poly))
	require.Len(t, got, 1)
	assert.Equal(t, poly.Vertices, got[0].Specific.(*Polyline).Vertices)
	assert.Equal(t, int16(1), got[0].Specific.(*Polyline).Flags)

	// 没有顶点时仍然写出 SEQEND
	pairs = writePairs(t, core.R12, NewEntity(NewPolyline()))
	assert.Equal(t, []string{"POLYLINE", "SEQEND"}, markers(pairs))
}

func TestWriter_InsertAttributes(t *testing.T) {
	insert := NewInsert("DOOR")
	insert.Location = core.NewPoint(10, 20, 0)
	insert.Rotation = 90

	pairs := writePairs(t, core.R2018, NewEntity(insert))
	assert.Equal(t, []string{"INSERT"}, markers(pairs))
	assert.Equal(t, -1, indexOf(pairs, short(66, 1)))

	attr := NewAttribute()
	attr.AttributeTag = "WIDTH"
	attr.Value = "900"
	insert.Attributes = []Attribute{*attr}
	insert.HasAttributes = true

	pairs = writePairs(t, core.R2018, NewEntity(insert))
	assert.Equal(t, []string{"INSERT", "ATTRIB", "SEQEND"}, markers(pairs))
	assert.NotEqual(t, -1, indexOf(pairs, short(66, 1)))

	got := roundTrip(t, core.R2018, NewEntity(insert))
	require.Len(t, got, 1)
	assert.Equal(t, insert, got[0].Specific)
}

func TestWriter_MTextColumns(t *testing.T) {
	m := NewMText()
	m.Text = "columns"
	m.RotationAngle = 10
	m.ColumnType = 2
	m.ColumnCount = 3
	m.IsColumnAutoHeight = true
	m.ColumnWidth = 12
	m.ColumnGutter = 2
	m.ColumnHeights = []float64{5, 6, 7}

	got := roundTrip(t, core.R2018, NewEntity(m))
	require.Len(t, got, 1)
	assert.Equal(t, m, got[0].Specific)

	// R2018 之前不写分栏
	pairs := writePairs(t, core.R2013, NewEntity(m))
	assert.Equal(t, -1, indexOf(pairs, short(75, 2)))
}

func TestWriter_MTextCommonFields(t *testing.T) {
	m := NewMText()
	m.Text = "styled"
	m.BackgroundColorRGB = 0x112233
	e := NewEntity(m)
	e.Common.LineTypeScale = 2
	e.Common.Color24Bit = 0x00FF00
	e.Common.ColorName = "green"

	got := roundTrip(t, core.R2018, e)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
	assert.Equal(t, 0.0, got[0].Specific.(*MText).ColumnWidth)

	// 分栏宽度与线型比例同时存在
	m.ColumnType = 1
	m.ColumnCount = 2
	m.ColumnWidth = 7
	got = roundTrip(t, core.R2018, e)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestWriter_MTextLongText(t *testing.T) {
	m := NewMText()
	m.ExtendedText = []string{strings.Repeat("a", 600)}
	m.Text = strings.Repeat("é", 200) + "end"

	pairs := writePairs(t, core.R2018, NewEntity(m))
	var codes []int
	for _, p := range pairs {
		if p.Code != 1 && p.Code != 3 {
			continue
		}
		s, _ := p.AsString()
		assert.LessOrEqual(t, len(s), mtextChunkSize)
		assert.True(t, utf8.ValidString(s), "chunk split inside a character")
		codes = append(codes, p.Code)
	}
	// 600 字节拆成三段，403 字节拆成两段，最后一段用组码 1
	assert.Equal(t, []int{3, 3, 3, 3, 1}, codes)

	got := roundTrip(t, core.R2018, NewEntity(m))
	require.Len(t, got, 1)
	assert.Equal(t, m.FullText(), got[0].Specific.(*MText).FullText())
}

func TestWriter_CountOverflow(t *testing.T) {
	s := NewSpline()
	s.KnotValues = make([]float64, math.MaxInt16+1)

	var pairs core.Pairs
	err := NewWriter(&pairs, core.R2018).WriteEntity(NewEntity(s))
	assert.ErrorIs(t, err, core.ErrOverflow)
	assert.True(t, core.IsValueError(err))
	// 校验在写出实体字段之前完成
	assert.Equal(t, -1, indexOf(pairs, str(100, "AcDbSpline")))

	s.KnotValues = s.KnotValues[:math.MaxInt16]
	pairs = nil
	require.NoError(t, NewWriter(&pairs, core.R2018).WriteEntity(NewEntity(s)))
	assert.NotEqual(t, -1, indexOf(pairs, short(72, math.MaxInt16)))

	m := NewMText()
	m.ColumnType = 1
	m.ColumnCount = math.MaxInt16 + 1
	pairs = nil
	err = NewWriter(&pairs, core.R2018).WriteEntity(NewEntity(m))
	assert.ErrorIs(t, err, core.ErrOverflow)
}

func TestCollect(t *testing.T) {
	list := []*Entity{
		NewEntity(NewPolyline()),
		NewEntity(NewVertex(core.NewPoint(1, 0, 0))),
		NewEntity(NewVertex(core.NewPoint(2, 0, 0))),
		NewEntity(&Seqend{}),
		NewEntity(NewInsert("NOATTR")),
		NewEntity(NewAttribute()),
		NewEntity(NewLine(core.Point{}, core.Point{})),
	}

	got := Collect(list)
	require.Len(t, got, 4)
	assert.Len(t, got[0].Specific.(*Polyline).Vertices, 2)
	assert.Equal(t, "INSERT", got[1].Type())
	// 没有 66 标志的 INSERT 不收集后面的 ATTRIB
	assert.Equal(t, "ATTRIB", got[2].Type())
	assert.Equal(t, "LINE", got[3].Type())
}
