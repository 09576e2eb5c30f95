package dxf

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/zooyer/dxf-codec/core"
	"github.com/zooyer/dxf-codec/entities"
)

const minimalR12 = `  0
SECTION
  2
HEADER
  9
$ACADVER
  1
AC1009
  9
$INSBASE
 10
0.0
 20
0.0
 30
0.0
  0
ENDSEC
  0
SECTION
  2
TABLES
  0
TABLE
  2
LAYER
  0
ENDTAB
  0
ENDSEC
  0
SECTION
  2
ENTITIES
  0
LINE
  8
WALLS
 10
1.0
 20
2.0
 30
0.0
 11
3.0
 21
4.0
 31
0.0
  0
HATCH
  8
0
  0
CIRCLE
  8
0
 10
5.0
 20
5.0
 30
0.0
 40
2.5
  0
ENDSEC
  0
EOF
`

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(minimalR12), WithLogger(testLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, core.R12, doc.Version)
	assert.Empty(t, doc.Blocks)
	require.Len(t, doc.Entities, 2)

	line := doc.Entities[0]
	assert.Equal(t, "WALLS", line.Layer())
	assert.Equal(t, core.NewPoint(1, 2, 0), line.Specific.(*entities.Line).P1)
	assert.Equal(t, core.NewPoint(3, 4, 0), line.Specific.(*entities.Line).P2)
	assert.Equal(t, 2.5, doc.Entities[1].Specific.(*entities.Circle).Radius)
}

func TestLoad_Errors(t *testing.T) {
	// 实体段没有 ENDSEC
	truncated := minimalR12[:strings.Index(minimalR12, "  0\nENDSEC\n  0\nEOF")]
	_, err := Load(strings.NewReader(truncated))
	assert.ErrorIs(t, err, core.ErrUnexpectedEOF)

	bad := strings.Replace(minimalR12, "2.5", "radius", 1)
	_, err = Load(strings.NewReader(bad))
	assert.True(t, core.IsValueError(err))

	_, err = Load(strings.NewReader(strings.Replace(minimalR12, "AC1009", "AC9999", 1)))
	assert.Error(t, err)
}

func sampleDocument(version core.AcadVersion) *Document {
	doc := NewDocument(version)

	door := entities.NewLine(core.NewPoint(0, 0, 0), core.NewPoint(0.9, 0, 0))
	doc.Blocks["DOOR"] = &Block{
		Name:      "DOOR",
		Layer:     "0",
		BasePoint: core.NewPoint(0, 0, 0),
		Entities:  []*entities.Entity{entities.NewEntity(door)},
	}
	doc.Blocks["WINDOW"] = &Block{
		Name:      "WINDOW",
		Layer:     "GLASS",
		BasePoint: core.NewPoint(1, 1, 0),
	}

	attr := entities.NewAttribute()
	attr.AttributeTag = "WIDTH"
	attr.Value = "900"
	insert := entities.NewInsert("DOOR")
	insert.Location = core.NewPoint(10, 20, 0)
	insert.HasAttributes = true
	insert.Attributes = []entities.Attribute{*attr}

	text := entities.NewText()
	text.Value = "café"
	text.Location = core.NewPoint(0.1, 0.2, 0)

	poly := entities.NewPolyline()
	poly.Vertices = []entities.Vertex{
		*entities.NewVertex(core.NewPoint(0, 0, 0)),
		*entities.NewVertex(core.NewPoint(1.5, 2.25, 0)),
	}

	doc.Entities = []*entities.Entity{
		entities.NewEntity(insert),
		entities.NewEntity(text),
		entities.NewEntity(poly),
	}
	return doc
}

func TestSaveLoad(t *testing.T) {
	for _, version := range []core.AcadVersion{core.R12, core.R2000, core.R2018} {
		t.Run(version.String(), func(t *testing.T) {
			want := sampleDocument(version)

			var buf bytes.Buffer
			require.NoError(t, want.Save(&buf))
			assert.True(t, strings.HasSuffix(buf.String(), "  0\r\nEOF\r\n"))

			got, err := Load(&buf, WithLogger(testLogger(t)))
			require.NoError(t, err)

			assert.Equal(t, version, got.Version)
			assert.Equal(t, want.Blocks, got.Blocks)
			assert.Equal(t, want.Entities, got.Entities)
		})
	}
}

func TestSaveLoad_CodePage(t *testing.T) {
	want := sampleDocument(core.R2000)
	want.CodePage = "windows-1252"

	var buf bytes.Buffer
	require.NoError(t, want.Save(&buf))
	assert.Contains(t, buf.String(), "caf\xe9")

	got, err := Load(&buf, WithCodePage("windows-1252"))
	require.NoError(t, err)
	assert.Equal(t, "café", got.Entities[1].Specific.(*entities.Text).Value)
}

func TestSaveFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sample.dxf")

	want := sampleDocument(core.R2018)
	want.WriteHandles = true
	want.Entities[1].Common.Handle = 0x2B
	require.NoError(t, want.SaveFile(filename))

	got, err := Open(filename)
	require.NoError(t, err)
	assert.Equal(t, core.Handle(0x2B), got.Entities[1].Common.Handle)
	assert.Len(t, got.Entities, 3)

	_, err = Open(filepath.Join(t.TempDir(), "missing.dxf"))
	assert.Error(t, err)
}

func TestSave_LineBreak(t *testing.T) {
	doc := sampleDocument(core.R2000)
	doc.Entities[1].Specific.(*entities.Text).Value = "two\nlines"

	var buf bytes.Buffer
	err := doc.Save(&buf)
	assert.ErrorIs(t, err, core.ErrLineBreak)
}
