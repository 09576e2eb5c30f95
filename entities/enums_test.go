package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf-codec/core"
)

func TestDecodeEnum(t *testing.T) {
	for _, tt := range []struct {
		value int16
		want  DrawingDirection
		ok    bool
	}{
		{1, DrawingDirectionLeftToRight, true},
		{2, 0, false},
		{3, DrawingDirectionTopToBottom, true},
		{4, 0, false},
		{5, DrawingDirectionByStyle, true},
		{0, 0, false},
	} {
		got, err := decodeEnum[DrawingDirection](core.NewShort(72, tt.value), "DrawingDirection")
		if !tt.ok {
			assert.True(t, core.IsEnumError(err), "value %d", tt.value)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := decodeEnum[AttachmentPoint](core.NewString(71, "x"), "AttachmentPoint")
	assert.True(t, core.IsValueError(err))
}

func TestParseEnum(t *testing.T) {
	d, err := ParseDrawingDirection("ByStyle")
	require.NoError(t, err)
	assert.Equal(t, DrawingDirectionByStyle, d)
	assert.Equal(t, "TopToBottom", DrawingDirectionTopToBottom.String())
	assert.Equal(t, "DrawingDirection(2)", DrawingDirection(2).String())

	_, err = ParseDrawingDirection("Diagonal")
	assert.ErrorIs(t, err, ErrInvalidDrawingDirection)

	assert.True(t, MTextFlagConstantMultilineAttributeDefinition.IsValid())
	assert.False(t, MTextFlag(3).IsValid())
	assert.True(t, ObjectVersionR2010.IsValid())
	assert.Equal(t, AttachmentPoint(9), AttachmentPointBottomRight)
	assert.Equal(t, ImageClippingBoundaryType(2), ImageClippingBoundaryTypePolygonal)
}
