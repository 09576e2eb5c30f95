package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dxf "github.com/zooyer/dxf-codec"
	"github.com/zooyer/dxf-codec/core"
	"github.com/zooyer/dxf-codec/entities"
	"github.com/zooyer/dxf-codec/utils"
)

func TestParseAssignments(t *testing.T) {
	list, err := parseAssignments([]string{"WIDTH=1200", " NOTE =a=b", "EMPTY="})
	require.NoError(t, err)
	assert.Equal(t, []assignment{
		{tag: "WIDTH", value: "1200"},
		{tag: "NOTE", value: "a=b"},
		{tag: "EMPTY", value: ""},
	}, list)

	_, err = parseAssignments([]string{"WIDTH"})
	assert.Error(t, err)
	_, err = parseAssignments([]string{"=1"})
	assert.Error(t, err)
}

func TestApplyAssignments(t *testing.T) {
	doc := dxf.NewDocument(core.R2018)

	door := entities.NewInsert("DOOR")
	utils.SetAttr(door, "WIDTH", "900")
	window := entities.NewInsert("WINDOW")
	nested := entities.NewInsert("DOOR")

	doc.Entities = []*entities.Entity{
		entities.NewEntity(door),
		entities.NewEntity(window),
		entities.NewEntity(entities.NewLine(core.NewPoint(0, 0, 0), core.NewPoint(1, 0, 0))),
	}
	doc.Blocks["ROOM"] = &dxf.Block{Name: "ROOM", Entities: []*entities.Entity{entities.NewEntity(nested)}}

	n := applyAssignments(doc, "DOOR", []assignment{{tag: "WIDTH", value: "1200"}, {tag: "SIDE", value: "L"}})
	assert.Equal(t, 2, n)
	assert.Equal(t, map[string]string{"WIDTH": "1200", "SIDE": "L"}, utils.GetAttrs(door))
	assert.Equal(t, map[string]string{"WIDTH": "1200", "SIDE": "L"}, utils.GetAttrs(nested))
	assert.Empty(t, window.Attributes)
	assert.True(t, nested.HasAttributes)

	assert.Equal(t, 3, applyAssignments(doc, "", []assignment{{tag: "FLOOR", value: "2"}}))
	assert.Equal(t, "2", utils.GetAttr(window, "FLOOR"))
	assert.Zero(t, applyAssignments(doc, "", nil))
}
