package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf-codec/core"
)

func TestDimension_PackedType(t *testing.T) {
	for typ := DimensionTypeRotatedHorizontalOrVertical; typ <= DimensionTypeOrdinate; typ++ {
		for flags := 0; flags < 8; flags++ {
			d := newDimensionBase()
			d.DimensionType = typ
			d.IsBlockReferenceReferencedByThisBlockOnly = flags&1 != 0
			d.IsOrdinateXType = flags&2 != 0
			d.IsAtUserDefinedLocation = flags&4 != 0

			packed := d.PackedType()
			assert.Equal(t, int16(typ), packed&0x0F)

			var back DimensionBase
			require.NoError(t, back.SetPackedType(packed))
			assert.Equal(t, d.DimensionType, back.DimensionType)
			assert.Equal(t, d.IsBlockReferenceReferencedByThisBlockOnly, back.IsBlockReferenceReferencedByThisBlockOnly)
			assert.Equal(t, d.IsOrdinateXType, back.IsOrdinateXType)
			assert.Equal(t, d.IsAtUserDefinedLocation, back.IsAtUserDefinedLocation)
		}
	}

	var d DimensionBase
	require.NoError(t, d.SetPackedType(32|128|4))
	assert.Equal(t, DimensionTypeRadius, d.DimensionType)
	assert.True(t, d.IsBlockReferenceReferencedByThisBlockOnly)
	assert.False(t, d.IsOrdinateXType)
	assert.True(t, d.IsAtUserDefinedLocation)

	assert.True(t, core.IsEnumError(d.SetPackedType(7)))
	assert.True(t, core.IsEnumError(d.SetPackedType(64|15)))
}

func TestDimension_Resolve(t *testing.T) {
	list, err := readPairs(t,
		str(0, "DIMENSION"),
		str(5, "3F"),
		str(100, "AcDbEntity"),
		str(8, "DIMS"),
		str(100, "AcDbDimension"),
		str(2, "*D1"),
		num(10, 1), num(20, 2), num(30, 0),
		short(70, 32|3),
		str(1, "<>"),
		str(3, "ISO-25"),
		str(100, "AcDbDiametricDimension"),
		num(15, 4), num(25, 5), num(35, 0),
		num(40, 2.5),
		endsec(),
	)
	require.NoError(t, err)
	require.Len(t, list, 1)

	e := list[0]
	assert.Equal(t, "DIMENSION", e.Type())
	assert.Equal(t, "DIMS", e.Layer())
	assert.Equal(t, core.Handle(0x3F), e.Common.Handle)

	d, ok := e.Specific.(*DiameterDimension)
	require.True(t, ok)
	assert.Equal(t, "*D1", d.BlockName)
	assert.Equal(t, core.NewPoint(1, 2, 0), d.DefinitionPoint1)
	assert.Equal(t, DimensionTypeDiameter, d.DimensionType)
	assert.True(t, d.IsBlockReferenceReferencedByThisBlockOnly)
	assert.Equal(t, "<>", d.Text)
	assert.Equal(t, "ISO-25", d.DimensionStyleName)
	assert.Equal(t, core.NewPoint(4, 5, 0), d.DefinitionPoint2)
	assert.Equal(t, 2.5, d.LeaderLength)
}

func TestDimension_DiscardedWithoutSubclass(t *testing.T) {
	list, err := readPairs(t,
		str(0, "DIMENSION"),
		str(8, "0"),
		str(2, "*D2"),
		short(70, 1),
		str(100, "AcDbDimension"),
		str(0, "LINE"),
		num(10, 1),
		endsec(),
	)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "LINE", list[0].Type())
}

func TestDimension_RoundTrip(t *testing.T) {
	rotated := NewRotatedDimension()
	rotated.BlockName = "*D3"
	rotated.DefinitionPoint1 = core.NewPoint(10, 0, 0)
	rotated.TextMidPoint = core.NewPoint(5, 1, 0)
	rotated.DefinitionPoint2 = core.NewPoint(0, 0, 0)
	rotated.DefinitionPoint3 = core.NewPoint(10, 0, 0)
	rotated.RotationAngle = 90
	rotated.IsAtUserDefinedLocation = true
	rotated.ActualMeasurement = 10

	radial := NewRadialDimension()
	radial.DimensionType = DimensionTypeRadius
	radial.DefinitionPoint2 = core.NewPoint(3, 0, 0)

	diameter := NewDiameterDimension()
	diameter.DimensionType = DimensionTypeDiameter
	diameter.LeaderLength = 1.5

	angular := NewAngularThreePointDimension()
	angular.DimensionType = DimensionTypeAngularThreePoint
	angular.DefinitionPoint5 = core.NewPoint(1, 1, 0)

	ordinate := NewOrdinateDimension()
	ordinate.DimensionType = DimensionTypeOrdinate
	ordinate.IsOrdinateXType = true
	ordinate.AttachmentPoint = AttachmentPointBottomRight
	ordinate.TextLineSpacingStyle = TextLineSpacingStyleExact

	want := []*Entity{
		NewEntity(rotated),
		NewEntity(radial),
		NewEntity(diameter),
		NewEntity(angular),
		NewEntity(ordinate),
	}
	want[0].Common.Layer = "DIMS"

	got := roundTrip(t, core.R2018, want...)
	assert.Equal(t, want, got)
}

func TestDimension_R12Markers(t *testing.T) {
	rotated := NewRotatedDimension()
	rotated.BlockName = "*D4"
	pairs := writePairs(t, core.R12, NewEntity(rotated))
	assert.Equal(t, -1, indexOf(pairs, str(100, "AcDbAlignedDimension")))
	assert.Equal(t, -1, indexOf(pairs, str(100, "AcDbDimension")))

	// 没有子类标记，读回时被丢弃
	got := roundTrip(t, core.R12, NewEntity(rotated))
	assert.Empty(t, got)

	pairs = writePairs(t, core.R13, NewEntity(rotated))
	assert.NotEqual(t, -1, indexOf(pairs, str(100, "AcDbAlignedDimension")))
	assert.NotEqual(t, -1, indexOf(pairs, str(100, "AcDbRotatedDimension")))

	// 其它标注的子类标记总是写出
	radial := NewRadialDimension()
	radial.LeaderLength = 2
	pairs = writePairs(t, core.R12, NewEntity(radial))
	assert.NotEqual(t, -1, indexOf(pairs, str(100, "AcDbRadialDimension")))

	got = roundTrip(t, core.R12, NewEntity(radial))
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Specific.(*RadialDimension).LeaderLength)
}
