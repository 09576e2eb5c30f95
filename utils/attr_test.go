package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zooyer/dxf-codec/core"
	"github.com/zooyer/dxf-codec/entities"
)

func TestAttrs(t *testing.T) {
	ins := entities.NewInsert("WINDOW")
	ins.Location = core.NewPoint(1, 2, 0)

	assert.Empty(t, GetAttrs(ins))
	assert.Equal(t, "", GetAttr(ins, "WIDTH"))

	SetAttr(ins, "WIDTH", "1200")
	SetAttr(ins, "HEIGHT", "1500")
	assert.True(t, ins.HasAttributes)
	assert.Len(t, ins.Attributes, 2)
	assert.Equal(t, ins.Location, ins.Attributes[0].Location)

	SetAttr(ins, "WIDTH", "900")
	assert.Len(t, ins.Attributes, 2)
	assert.Equal(t, map[string]string{"WIDTH": "900", "HEIGHT": "1500"}, GetAttrs(ins))
	assert.Equal(t, "1500", GetAttr(ins, "HEIGHT"))
}
